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

package factory

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

var (
	notifierType          = reflect.TypeFor[apis.Notifier]()
	listenersNotifierType = reflect.TypeFor[apis.ListenersNotifier]()
)

// Compile-time check: *notifier must satisfy apis.Notifier.
var _ apis.Notifier = (*notifier)(nil)

// notifier is the apis.Notifier built for one mock.
type notifier struct {
	apis.ListenersNotifier

	id         uuid.UUID
	registry   apis.ListenerRegistry
	additional []apis.AdditionalInterface
	// listeners are the listener types the notifier acts as; empty unless
	// listener interfaces are implemented.
	listeners []reflect.Type
	table     dispatch
}

func newNotifier(id uuid.UUID, reg apis.ListenerRegistry, def apis.ListenersDefinition, settings apis.Settings) *notifier {
	n := &notifier{
		ListenersNotifier: reg,
		id:                id,
		registry:          reg,
		additional:        def.AdditionalInterfaces(),
	}
	if settings.ImplementListenerInterfaces {
		n.listeners = def.DetectedListeners()
	}
	n.table = n.buildDispatch(def.CustomNotificationDelegates())
	return n
}

// ID returns the notifier identity.
func (n *notifier) ID() uuid.UUID {
	return n.id
}

// Invoke resolves method through the dispatch table and calls it.
func (n *notifier) Invoke(method string, args ...any) ([]any, error) {
	return n.table.invoke(n, method, args)
}

// Interfaces returns the implemented interfaces.
func (n *notifier) Interfaces() []reflect.Type {
	out := make([]reflect.Type, 0, len(n.additional)+1+len(n.listeners))
	for _, ai := range n.additional {
		out = append(out, ai.Type)
	}
	out = append(out, notifierType)
	return append(out, n.listeners...)
}

// Implements reports whether one of the implemented interfaces includes iface.
func (n *notifier) Implements(iface reflect.Type) bool {
	if iface == nil || iface.Kind() != reflect.Interface {
		return false
	}
	for _, t := range n.Interfaces() {
		if t.Implements(iface) {
			return true
		}
	}
	return false
}

// Capability returns a value implementing iface: the notifier itself for the
// base interfaces, the bound facade for additional interfaces.
func (n *notifier) Capability(iface reflect.Type) (any, bool) {
	if iface == nil || iface.Kind() != reflect.Interface {
		return nil, false
	}
	if notifierType.Implements(iface) {
		return n, true
	}
	for _, ai := range n.additional {
		if ai.Bind == nil || !ai.Type.Implements(iface) {
			continue
		}
		if v := ai.Bind(n); v != nil && reflect.TypeOf(v).Implements(iface) {
			return v, true
		}
	}
	return nil, false
}

// AsListener returns a fan-out over all listeners of iface registered with
// the empty selector.
func (n *notifier) AsListener(iface reflect.Type) (apis.Fanout, error) {
	for _, t := range n.listeners {
		if t == iface {
			return n.registry.NotifierFor(iface)
		}
	}
	return nil, fmt.Errorf("%w: notifier %s does not implement listener %v", apis.ErrIllegalArgument, n.id, iface)
}

func (n *notifier) String() string {
	return fmt.Sprintf("Notifier{id: %s, mock: %s, registered: %d}", n.id, uref.Name(n.ObservableMock()), n.NumberOfRegisteredListeners())
}
