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

// ReachableMethods returns the exported methods callable on v, sorted by
// name. Methods for which skip returns true are left out; mocking tools use
// it to hide the methods they generate or promote into a mock.
//
// Go has no overloading, so the result is unique by name.
func ReachableMethods(v any, skip func(name string) bool) []reflect.Method {
	if v == nil {
		return nil
	}
	t := reflect.TypeOf(v)
	out := make([]reflect.Method, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() {
			continue
		}
		if skip != nil && skip(m.Name) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Signature returns the parameter and result types of m without the
// receiver. Interface methods carry no receiver; concrete methods do.
func Signature(m reflect.Method, hasReceiver bool) (in, out []reflect.Type, variadic bool) {
	ft := m.Type
	first := 0
	if hasReceiver {
		first = 1
	}
	in = make([]reflect.Type, 0, ft.NumIn()-first)
	for i := first; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}
	out = make([]reflect.Type, 0, ft.NumOut())
	for i := 0; i < ft.NumOut(); i++ {
		out = append(out, ft.Out(i))
	}
	return in, out, ft.IsVariadic()
}

// MethodNames returns the names of all methods of t.
func MethodNames(t reflect.Type) map[string]bool {
	names := make(map[string]bool, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names[t.Method(i).Name] = true
	}
	return names
}
