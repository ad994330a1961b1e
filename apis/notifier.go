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

package apis

import (
	"reflect"

	"github.com/google/uuid"
)

// Notifier is the object returned for a mock. It exposes the registry and
// every capability detected for the mock.
//
// Custom notification delegates are honored by Invoke and by the values
// returned from Capability. The embedded ListenersNotifier methods called
// directly always answer from the registry.
type Notifier interface {
	ListenersNotifier

	// ID returns the notifier identity.
	ID() uuid.UUID
	// Invoke calls method by name with flattened args, resolving it through
	// the notifier dispatch table. Results exclude a trailing error.
	Invoke(method string, args ...any) ([]any, error)
	// Implements reports whether the notifier implements the interface iface.
	Implements(iface reflect.Type) bool
	// Interfaces returns the implemented interfaces: additional interfaces,
	// the base ListenersNotifier and, if enabled, the detected listener types.
	Interfaces() []reflect.Type
	// Capability returns a value implementing the additional interface iface.
	Capability(iface reflect.Type) (any, bool)
	// AsListener returns a fan-out over all listeners of the detected listener
	// type iface. It fails with ErrIllegalArgument if listener interfaces are
	// not implemented by this notifier.
	AsListener(iface reflect.Type) (Fanout, error)
}

// Settings control notifier creation.
type Settings struct {
	// StrictCheckListenerList makes lookups without matching listeners fail
	// with ErrListenersNotFound.
	StrictCheckListenerList bool
	// ImplementListenerInterfaces makes the notifier implement the detected
	// listener interfaces.
	ImplementListenerInterfaces bool
}

// Arg returns args[i] as T. Missing or nil arguments yield the zero T.
func Arg[T any](args []any, i int) T {
	var zero T
	if i < 0 || i >= len(args) || args[i] == nil {
		return zero
	}
	v, ok := args[i].(T)
	if !ok {
		return zero
	}
	return v
}
