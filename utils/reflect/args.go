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
	"errors"
	"fmt"
	"reflect"
)

// ErrReflectArguments is returned when call arguments do not fit a signature.
var ErrReflectArguments = errors.New("reflect: arguments do not match signature")

// Flatten expands a trailing variadic slice into individual arguments.
//
// Mocking tools record variadic calls either flattened (gomock, mockery) or
// with the variadic part as a single slice argument (hand-written testify
// mocks). Flatten maps both shapes to the flattened one. Arguments that are
// already flattened are returned as a copy.
func Flatten(in []reflect.Type, variadic bool, args []any) []any {
	n := len(in)
	if variadic && n > 0 && len(args) == n && args[n-1] != nil {
		if rv := reflect.ValueOf(args[n-1]); rv.Type() == in[n-1] {
			out := make([]any, 0, n-1+rv.Len())
			out = append(out, args[:n-1]...)
			for i := 0; i < rv.Len(); i++ {
				out = append(out, rv.Index(i).Interface())
			}
			return out
		}
	}
	return append([]any(nil), args...)
}

// Accepts reports whether flattened args can be passed to a function with
// parameter types in.
func Accepts(in []reflect.Type, variadic bool, args []any) bool {
	n := len(in)
	if !variadic && len(args) != n {
		return false
	}
	if variadic && len(args) < n-1 {
		return false
	}
	for i, a := range args {
		if !assignable(ParamType(in, variadic, i), a) {
			return false
		}
	}
	return true
}

// ParamType returns the type expected at flattened argument position i.
func ParamType(in []reflect.Type, variadic bool, i int) reflect.Type {
	n := len(in)
	if variadic && i >= n-1 {
		return in[n-1].Elem()
	}
	return in[i]
}

// Values converts flattened args into reflect values for a call.
// A nil argument becomes the zero value of its parameter type.
func Values(in []reflect.Type, variadic bool, args []any) ([]reflect.Value, error) {
	if !Accepts(in, variadic, args) {
		return nil, fmt.Errorf("%w: %d argument(s) %v for parameters %v", ErrReflectArguments, len(args), args, in)
	}
	vals := make([]reflect.Value, len(args))
	for i, a := range args {
		t := ParamType(in, variadic, i)
		if a == nil {
			vals[i] = reflect.Zero(t)
			continue
		}
		v := reflect.New(t).Elem()
		v.Set(reflect.ValueOf(a))
		vals[i] = v
	}
	return vals, nil
}

// Interfaces converts call values (as received by a reflect.MakeFunc
// implementation) into flattened interface arguments.
func Interfaces(vals []reflect.Value, variadic bool) []any {
	out := make([]any, 0, len(vals))
	for i, v := range vals {
		if variadic && i == len(vals)-1 {
			for j := 0; j < v.Len(); j++ {
				out = append(out, v.Index(j).Interface())
			}
			continue
		}
		out = append(out, v.Interface())
	}
	return out
}

func assignable(t reflect.Type, a any) bool {
	if a == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return true
		default:
			return false
		}
	}
	return reflect.TypeOf(a).AssignableTo(t)
}
