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

import "reflect"

// RegistrationFunc redirects one registration call into c. args are the
// flattened call arguments; the result values exclude a trailing error.
type RegistrationFunc func(c ListenerContainer, m Method, args []any) ([]any, error)

// RegistrationDelegate binds a registration method of the mocked type to the
// registry mutation it performs.
type RegistrationDelegate struct {
	// Source is the add or remove method on the mocked type.
	Source Method
	// Destination performs the registry mutation.
	Destination RegistrationFunc
}

// NotificationFunc implements a notifier method on top of the registry.
type NotificationFunc func(n ListenersNotifier, m Method, args []any) ([]any, error)

// NotificationDelegate overrides every other dispatch rule for Source.
type NotificationDelegate struct {
	Source      Method
	Destination NotificationFunc
}

// DefaultMethodFunc is the default body of a method of an additional
// interface. self is the composite notifier, so the body may call other
// notifier methods through self.Invoke.
type DefaultMethodFunc func(self Notifier, args []any) ([]any, error)

// AdditionalInterface is a convenience interface the notifier implements on
// top of the base one.
type AdditionalInterface struct {
	// Type is the interface type.
	Type reflect.Type
	// Defaults holds the default method bodies keyed by method name.
	Defaults map[string]DefaultMethodFunc
	// Bind returns a value implementing Type on top of n. It may be nil, in
	// which case the interface is reachable through Invoke only.
	Bind func(n Notifier) any
}

// ListenersDefinition is the result of one detection run.
type ListenersDefinition interface {
	// HasListenerDetected reports whether any listener type was detected.
	HasListenerDetected() bool
	// DetectedListeners returns the detected listener types in detection order.
	DetectedListeners() []reflect.Type
	// Registrations returns the registration delegates in detection order.
	Registrations() []RegistrationDelegate
	// CustomNotificationDelegates returns notifier methods overriding any other
	// dispatch rule.
	CustomNotificationDelegates() []NotificationDelegate
	// AdditionalInterfaces returns the interfaces the notifier should implement.
	AdditionalInterfaces() []AdditionalInterface
}

// Detector recognizes listener registration methods.
type Detector interface {
	// Detect inspects methods and returns what it recognized. A definition
	// without any detected listener is not an error.
	Detect(methods []Method) (ListenersDefinition, error)
}
