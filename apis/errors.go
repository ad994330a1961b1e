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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"

	uref "dirpx.dev/mocknotify/utils/reflect"
)

var (
	// ErrRegistrationMethodsNotDetected is returned when no detector claimed a
	// method of the mocked type.
	ErrRegistrationMethodsNotDetected = errors.New("mocknotify: registration methods not detected")
	// ErrMockingToolNotDetected is returned when no registration handler
	// recognizes the mock.
	ErrMockingToolNotDetected = errors.New("mocknotify: mocking tool not detected")
	// ErrListenersNotFound is returned by strict lookups without any match.
	ErrListenersNotFound = errors.New("mocknotify: listeners not found")
	// ErrUnregisteredListenersFound is returned by the unregistration assertion.
	ErrUnregisteredListenersFound = errors.New("mocknotify: unregistered listeners found")
	// ErrImplementation marks a bug in a detector, a handler or the wiring.
	ErrImplementation = errors.New("mocknotify: implementation error")
	// ErrIllegalArgument is returned for arguments of the wrong kind.
	ErrIllegalArgument = errors.New("mocknotify: illegal argument")
	// ErrMethodNotFound is returned when a notifier cannot resolve a method.
	ErrMethodNotFound = errors.New("mocknotify: method not found")
)

// UnregisteredListeners describes one notifier with outstanding listeners.
type UnregisteredListeners struct {
	// Mock is the mock of the notifier.
	Mock any
	// ID is the notifier identity, if known.
	ID uuid.UUID
	// Keys are the outstanding registrations.
	Keys []ListenerKey
}

// UnregisteredListenersError lists every notifier with outstanding listeners.
type UnregisteredListenersError struct {
	Offenders []UnregisteredListeners
}

func (e *UnregisteredListenersError) Error() string {
	var b strings.Builder
	b.WriteString(ErrUnregisteredListenersFound.Error())
	for _, o := range e.Offenders {
		fmt.Fprintf(&b, "\n  mock %s", mockName(o.Mock))
		if o.ID != uuid.Nil {
			fmt.Fprintf(&b, " (notifier %s)", o.ID)
		}
		b.WriteString(":")
		for _, k := range o.Keys {
			b.WriteString("\n    " + k.String())
		}
	}
	return b.String()
}

func (e *UnregisteredListenersError) Unwrap() error {
	return ErrUnregisteredListenersFound
}

func mockName(mock any) string {
	if mock == nil {
		return "<nil>"
	}
	if reflect.ValueOf(mock).Kind() == reflect.Ptr {
		return fmt.Sprintf("%s@%p", uref.Name(mock), mock)
	}
	return uref.Name(mock)
}
