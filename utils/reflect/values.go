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

package reflect

import (
	"reflect"
)

// Zero returns a reasonable empty value of type t.
//
// Slices are returned empty but non-nil and maps are freshly allocated, so
// callers may append or store into them. Everything else gets its zero value
// (0, false, "", nil).
func Zero(t reflect.Type) reflect.Value {
	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0)
	case reflect.Map:
		return reflect.MakeMap(t)
	default:
		return reflect.Zero(t)
	}
}

// Defaults returns Zero for every type in types, as interface values.
func Defaults(types []reflect.Type) []any {
	out := make([]any, len(types))
	for i, t := range types {
		out[i] = Zero(t).Interface()
	}
	return out
}

// Equal reports whether a and b are equal.
//
// Two nils are equal. Values of the same comparable dynamic type are compared
// with ==, which keeps pointer identity for pointers. Anything else falls back
// to reflect.DeepEqual.
func Equal(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	// Comparable types may still hold non-comparable values in interface fields.
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}

// Results converts results into reflect values of the given out types.
// Missing or nil results become Zero values, a trailing error type receives err.
func Results(out []reflect.Type, results []any, err error) []reflect.Value {
	vals := make([]reflect.Value, len(out))
	ri := 0
	for i, t := range out {
		if i == len(out)-1 && t == errorType {
			if err != nil {
				vals[i] = reflect.ValueOf(&err).Elem()
			} else {
				vals[i] = reflect.Zero(t)
			}
			continue
		}
		v := Zero(t)
		if ri < len(results) && results[ri] != nil {
			if rv := reflect.ValueOf(results[ri]); rv.Type().AssignableTo(t) {
				v = reflect.New(t).Elem()
				v.Set(rv)
			}
		}
		vals[i] = v
		ri++
	}
	return vals
}

var errorType = reflect.TypeFor[error]()

// ErrorType returns the reflect.Type of the error interface.
func ErrorType() reflect.Type {
	return errorType
}
