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

// Package beans holds the property-change listener style: a listener receives
// a PropertyChangeEvent for every change of a named (or unnamed) property.
package beans

import (
	"fmt"
	"reflect"

	uref "dirpx.dev/mocknotify/utils/reflect"
)

// PropertyChangeEvent describes a change of a property of Source.
type PropertyChangeEvent struct {
	// Source is the object whose property changed.
	Source any
	// PropertyName is the changed property. Empty means unnamed.
	PropertyName string
	// OldValue is the value before the change.
	OldValue any
	// NewValue is the value after the change.
	NewValue any
	// Indexed reports whether the change is for one element of an indexed property.
	Indexed bool
	// Index is the element index of an indexed change.
	Index int
}

func (e *PropertyChangeEvent) String() string {
	if e.Indexed {
		return fmt.Sprintf("PropertyChangeEvent{source: %s, property: %q[%d], old: %v, new: %v}",
			uref.Name(e.Source), e.PropertyName, e.Index, e.OldValue, e.NewValue)
	}
	return fmt.Sprintf("PropertyChangeEvent{source: %s, property: %q, old: %v, new: %v}",
		uref.Name(e.Source), e.PropertyName, e.OldValue, e.NewValue)
}

// PropertyChangeListener receives property change events.
type PropertyChangeListener interface {
	PropertyChange(evt *PropertyChangeEvent)
}

// PropertyChangeListenerFunc adapts a function to PropertyChangeListener.
// Functions are not comparable, so a func listener cannot be removed again.
type PropertyChangeListenerFunc func(evt *PropertyChangeEvent)

func (f PropertyChangeListenerFunc) PropertyChange(evt *PropertyChangeEvent) {
	f(evt)
}

// ListenerType is the reflect.Type of PropertyChangeListener.
var ListenerType = reflect.TypeFor[PropertyChangeListener]()
