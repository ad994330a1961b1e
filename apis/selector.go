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
	"fmt"
	"reflect"
	"strings"

	uref "dirpx.dev/mocknotify/utils/reflect"
)

// Selector is an immutable, ordered tuple of values used as an additional
// registration and lookup key, e.g. the property name in
// AddPropertyChangeListenerFor(name, listener).
//
// NewSelector() is the empty selector. NewSelector(nil) holds one nil value
// and is different from the empty one.
type Selector struct {
	values []any
}

// NewSelector creates a selector from values.
func NewSelector(values ...any) Selector {
	if len(values) == 0 {
		return Selector{}
	}
	return Selector{values: append([]any(nil), values...)}
}

// Len returns the number of values in the selector.
func (s Selector) Len() int {
	return len(s.values)
}

// Values returns a copy of the selector values.
func (s Selector) Values() []any {
	return append([]any(nil), s.values...)
}

// Equal reports whether s and o have the same length and equal values.
func (s Selector) Equal(o Selector) bool {
	if len(s.values) != len(o.values) {
		return false
	}
	for i := range s.values {
		if !uref.Equal(s.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

// String returns "selector(v1, v2, ...)".
func (s Selector) String() string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		if v == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = fmt.Sprint(v)
	}
	return "selector(" + strings.Join(parts, ", ") + ")"
}

// ListenerKey identifies a registration bucket: a listener type together
// with the selector it was registered with.
type ListenerKey struct {
	// Type is the listener interface type.
	Type reflect.Type
	// Selector is the selector used by registration.
	Selector Selector
}

// Equal reports whether k and o denote the same bucket.
func (k ListenerKey) Equal(o ListenerKey) bool {
	return k.Type == o.Type && k.Selector.Equal(o.Selector)
}

// String returns "(pkg.Type, selector(...))".
func (k ListenerKey) String() string {
	return "(" + uref.TypeName(k.Type) + ", " + k.Selector.String() + ")"
}
