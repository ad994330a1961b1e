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

package mocknotify

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"dirpx.dev/mocknotify/apis"
)

// AssertThatAllListenersAreUnregistered returns an
// *apis.UnregisteredListenersError if a notifier had no registration at all
// or still has registered listeners. The error lists, per notifier, the mock
// and every outstanding (listener type, selector) pair.
func AssertThatAllListenersAreUnregistered(notifiers ...apis.ListenersNotifier) error {
	var offenders []apis.UnregisteredListeners
	for _, n := range notifiers {
		if n == nil || n.AllListenersAreUnregistered() {
			continue
		}
		o := apis.UnregisteredListeners{Mock: n.ObservableMock(), Keys: n.ListenersWithSelector()}
		if id, ok := n.(interface{ ID() uuid.UUID }); ok {
			o.ID = id.ID()
		}
		offenders = append(offenders, o)
	}
	if len(offenders) == 0 {
		return nil
	}
	return &apis.UnregisteredListenersError{Offenders: offenders}
}

// AssertAllListenersUnregistered reports a failure to t unless every
// notifier had all its listeners unregistered.
func AssertAllListenersUnregistered(t assert.TestingT, notifiers ...apis.ListenersNotifier) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.NoError(t, AssertThatAllListenersAreUnregistered(notifiers...), "all listeners are unregistered")
}
