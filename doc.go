/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mocknotify lets tests send notifications to the listeners that
// the code under test registered on a mocked observable.
//
// Code under test usually registers listeners on its collaborators:
//
//	func (c *Component) Start(o Observable) {
//		o.AddMyListener(c)
//		o.AddPropertyChangeListenerFor("state", c)
//	}
//
// When the collaborator is a mock, nobody keeps those listeners and there is
// no way to fire an event at the component. mocknotify detects the
// registration methods of the mock, redirects them into a listener registry
// and returns a notifier that fans out calls to the registered listeners:
//
//	m := &MockObservable{}                  // testify or mockgen mock
//	n := mocknotify.MustCreateNotifierFor(m)
//	component.Start(m)
//
//	err := mocknotify.Notify(n, func(l MyListener) { l.SomethingChanged(42) })
//	require.NoError(t, err)
//
//	component.Stop(m)
//	mocknotify.AssertAllListenersUnregistered(t, n)
//
// # Detection
//
// Registration methods are found by detectors, tried in priority order:
//
//   - property-change style: AddPropertyChangeListener(l) and
//     AddPropertyChangeListenerFor(name, l), with the beans package;
//   - typical style: AddXxxListener(l) / RemoveXxxListener(l), where every
//     listener parameter is an interface whose name ends with "Listener" and
//     every other parameter is a selector;
//   - observer style: AddObserver(o) / DeleteObserver(o), with the observer
//     package.
//
// Custom detectors registered with RegisterListenerDefinitionDetector are
// tried before the built-in ones. Every method is claimed by one detector at
// most.
//
// # Selectors
//
// The non-listener parameters of a registration method form its selector.
// AddKeyedListener("key", l) registers l with selector("key") and a
// notification for selector("key") reaches it; a notification without a
// selector reaches the listeners registered with the empty selector only.
//
// # Mocking tools
//
// Registration handlers stub the detected methods in the mock. Handlers for
// github.com/stretchr/testify/mock and go.uber.org/mock/gomock are built in;
// others are added with RegisterListenerRegistrationHandler. Registrations
// the testify mock recorded before the notifier was created are replayed.
// gomock keeps no call history, so create the notifier before the code under
// test registers its listeners.
//
// # Notifier
//
// A notifier implements apis.Notifier. Depending on what was detected it
// also provides beans.PropertyChangeNotifier or observer.ObservableNotifier
// (see As) and, unless disabled with config.IgnoreListenerInterfaces, acts as
// every detected listener type (see apis.Notifier.AsListener and
// apis.Notifier.Invoke).
//
// By default a notification without matching listeners fails with
// apis.ErrListenersNotFound; config.LenientListenerListCheck turns this off.
//
// # Global state
//
// Detectors, handlers, settings and the logger are process-wide and held in
// an immutable snapshot. Reads never lock; every change builds a new
// snapshot and swaps it in atomically. Tests that change the global state
// should restore it with Reset.
package mocknotify
