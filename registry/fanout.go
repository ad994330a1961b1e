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

package registry

import (
	"fmt"
	"reflect"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// fanout calls a listener method on a fixed list of listeners.
type fanout struct {
	typ       reflect.Type
	listeners []any
}

// NewFanout returns a fan-out over listeners of the interface listenerType.
// Listeners not implementing listenerType are rejected with ErrIllegalArgument.
func NewFanout(listenerType reflect.Type, listeners ...any) (apis.Fanout, error) {
	if listenerType == nil || listenerType.Kind() != reflect.Interface {
		return nil, fmt.Errorf("%w: listener type %v is not an interface", apis.ErrIllegalArgument, listenerType)
	}
	for _, l := range listeners {
		if l == nil || !reflect.TypeOf(l).Implements(listenerType) {
			return nil, fmt.Errorf("%w: %s does not implement %s", apis.ErrIllegalArgument, uref.Name(l), uref.TypeName(listenerType))
		}
	}
	return &fanout{typ: listenerType, listeners: append([]any(nil), listeners...)}, nil
}

func (f *fanout) ListenerType() reflect.Type {
	return f.typ
}

func (f *fanout) Listeners() []any {
	return append([]any(nil), f.listeners...)
}

// Call invokes method on every listener in order with the same arguments.
// The results of the last invocation are returned; without listeners the
// zero results of method are returned. A listener returning a non-nil error
// stops the fan-out and that error is returned unchanged. Panics propagate.
func (f *fanout) Call(method string, args ...any) ([]any, error) {
	im, ok := f.typ.MethodByName(method)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no method %s", apis.ErrMethodNotFound, uref.TypeName(f.typ), method)
	}
	m := apis.MethodOf(im, false)
	in, err := uref.Values(m.In, m.Variadic, m.Flatten(args))
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %w", apis.ErrIllegalArgument, uref.TypeName(f.typ), m, err)
	}

	results := uref.Defaults(m.Results())
	for _, l := range f.listeners {
		out := reflect.ValueOf(l).MethodByName(method).Call(in)
		var callErr error
		if m.ReturnsError() {
			if e := out[len(out)-1]; !e.IsNil() {
				callErr = e.Interface().(error)
			}
			out = out[:len(out)-1]
		}
		results = make([]any, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		if callErr != nil {
			return results, callErr
		}
	}
	return results, nil
}

func (f *fanout) String() string {
	return fmt.Sprintf("Fanout{%s, listeners: %d}", uref.TypeName(f.typ), len(f.listeners))
}
