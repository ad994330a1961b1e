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
	"strings"

	uref "dirpx.dev/mocknotify/utils/reflect"
)

// Method describes a method signature detached from any receiver.
// Detectors, delegates and the notifier dispatch table work on Method values,
// never on live receivers.
type Method struct {
	// Name is the method name.
	Name string
	// In holds the parameter types. For a variadic method the last one is a slice.
	In []reflect.Type
	// Out holds the result types.
	Out []reflect.Type
	// Variadic reports whether the last parameter is variadic.
	Variadic bool
}

// MethodOf builds a Method from a reflect.Method. hasReceiver must be true
// for methods obtained from a concrete type and false for interface methods.
func MethodOf(m reflect.Method, hasReceiver bool) Method {
	in, out, variadic := uref.Signature(m, hasReceiver)
	return Method{Name: m.Name, In: in, Out: out, Variadic: variadic}
}

// InterfaceMethods returns the methods declared by the interface type iface.
func InterfaceMethods(iface reflect.Type) []Method {
	out := make([]Method, 0, iface.NumMethod())
	for i := 0; i < iface.NumMethod(); i++ {
		out = append(out, MethodOf(iface.Method(i), false))
	}
	return out
}

// Equal reports whether m and o have the same name and signature.
func (m Method) Equal(o Method) bool {
	if m.Name != o.Name || m.Variadic != o.Variadic || len(m.In) != len(o.In) || len(m.Out) != len(o.Out) {
		return false
	}
	for i := range m.In {
		if m.In[i] != o.In[i] {
			return false
		}
	}
	for i := range m.Out {
		if m.Out[i] != o.Out[i] {
			return false
		}
	}
	return true
}

// Accepts reports whether flattened args fit the parameters of m.
func (m Method) Accepts(args []any) bool {
	return uref.Accepts(m.In, m.Variadic, args)
}

// Flatten maps recorded call arguments to their flattened form.
func (m Method) Flatten(args []any) []any {
	return uref.Flatten(m.In, m.Variadic, args)
}

// ReturnsError reports whether the last result of m is an error.
func (m Method) ReturnsError() bool {
	return len(m.Out) > 0 && m.Out[len(m.Out)-1] == uref.ErrorType()
}

// Results returns the result types without a trailing error.
func (m Method) Results() []reflect.Type {
	if m.ReturnsError() {
		return m.Out[:len(m.Out)-1]
	}
	return m.Out
}

// String returns a Go-like signature, e.g. "AddListener(pkg.Listener, ...string)".
func (m Method) String() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, t := range m.In {
		if i > 0 {
			b.WriteString(", ")
		}
		if m.Variadic && i == len(m.In)-1 {
			b.WriteString("..." + t.Elem().String())
			continue
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	switch len(m.Out) {
	case 0:
	case 1:
		b.WriteString(" " + m.Out[0].String())
	default:
		parts := make([]string, len(m.Out))
		for i, t := range m.Out {
			parts[i] = t.String()
		}
		b.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	return b.String()
}
