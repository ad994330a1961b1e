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

package detector

import (
	"fmt"
	"reflect"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// Definition is the ListenersDefinition built by detectors. Its sets keep
// insertion order.
type Definition struct {
	listeners     []reflect.Type
	registrations []apis.RegistrationDelegate
	notifications []apis.NotificationDelegate
	interfaces    []apis.AdditionalInterface
}

// NewDefinition returns an empty Definition.
func NewDefinition() *Definition {
	return &Definition{}
}

// AddDetectedListener adds the listener interface type t.
func (d *Definition) AddDetectedListener(t reflect.Type) error {
	if err := requireInterface("listener", t); err != nil {
		return err
	}
	for _, l := range d.listeners {
		if l == t {
			return nil
		}
	}
	d.listeners = append(d.listeners, t)
	return nil
}

// AddRegistration adds a registration delegate.
func (d *Definition) AddRegistration(r apis.RegistrationDelegate) {
	d.registrations = append(d.registrations, r)
}

// AddNotification adds a custom notification delegate.
func (d *Definition) AddNotification(n apis.NotificationDelegate) {
	d.notifications = append(d.notifications, n)
}

// AddAdditionalInterface adds an interface the notifier should implement.
func (d *Definition) AddAdditionalInterface(ai apis.AdditionalInterface) error {
	if err := requireInterface("additional interface", ai.Type); err != nil {
		return err
	}
	for _, known := range d.interfaces {
		if known.Type == ai.Type {
			return nil
		}
	}
	d.interfaces = append(d.interfaces, ai)
	return nil
}

// Merge adds everything from o.
func (d *Definition) Merge(o apis.ListenersDefinition) error {
	for _, t := range o.DetectedListeners() {
		if err := d.AddDetectedListener(t); err != nil {
			return err
		}
	}
	for _, r := range o.Registrations() {
		d.AddRegistration(r)
	}
	for _, n := range o.CustomNotificationDelegates() {
		d.AddNotification(n)
	}
	for _, ai := range o.AdditionalInterfaces() {
		if err := d.AddAdditionalInterface(ai); err != nil {
			return err
		}
	}
	return nil
}

func (d *Definition) HasListenerDetected() bool {
	return len(d.listeners) > 0
}

func (d *Definition) DetectedListeners() []reflect.Type {
	return append([]reflect.Type(nil), d.listeners...)
}

func (d *Definition) Registrations() []apis.RegistrationDelegate {
	return append([]apis.RegistrationDelegate(nil), d.registrations...)
}

func (d *Definition) CustomNotificationDelegates() []apis.NotificationDelegate {
	return append([]apis.NotificationDelegate(nil), d.notifications...)
}

func (d *Definition) AdditionalInterfaces() []apis.AdditionalInterface {
	return append([]apis.AdditionalInterface(nil), d.interfaces...)
}

func requireInterface(what string, t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Interface {
		name := "nil"
		if t != nil {
			name = uref.TypeName(t)
		}
		return fmt.Errorf("%w: %s %s is not an interface", apis.ErrIllegalArgument, what, name)
	}
	return nil
}
