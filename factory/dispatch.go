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

package factory

import (
	"fmt"
	"reflect"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// handle is one candidate implementation of a notifier method.
type handle struct {
	method apis.Method
	call   func(args []any) ([]any, error)
}

// dispatch maps a method name to its candidates in resolution order.
type dispatch map[string][]handle

func (d dispatch) add(m apis.Method, call func(args []any) ([]any, error)) {
	d[m.Name] = append(d[m.Name], handle{method: m, call: call})
}

// invoke calls the first candidate accepting args.
func (d dispatch) invoke(n *notifier, method string, args []any) ([]any, error) {
	for _, h := range d[method] {
		flat := h.method.Flatten(args)
		if h.method.Accepts(flat) {
			return h.call(flat)
		}
	}
	return nil, fmt.Errorf("%w: %w: no invocation handle for %s with %d argument(s) on notifier %s",
		apis.ErrImplementation, apis.ErrMethodNotFound, method, len(args), n.id)
}

// ownMethods are notifier methods answered by the notifier itself.
var ownMethods = []string{"ID", "Implements", "Interfaces", "Capability", "AsListener"}

// buildDispatch resolves every method once, in this order:
//
//	custom notification delegates,
//	default methods of additional interfaces,
//	base notifier methods,
//	other exported registry methods,
//	fan-out to the implemented listener types.
func (n *notifier) buildDispatch(custom []apis.NotificationDelegate) dispatch {
	d := dispatch{}

	for _, nd := range custom {
		d.add(nd.Source, func(args []any) ([]any, error) {
			return nd.Destination(n.registry, nd.Source, args)
		})
	}

	for _, ai := range n.additional {
		for _, m := range apis.InterfaceMethods(ai.Type) {
			body, ok := ai.Defaults[m.Name]
			if !ok {
				continue
			}
			d.add(m, func(args []any) ([]any, error) {
				return body(n, args)
			})
		}
	}

	for _, m := range apis.InterfaceMethods(listenersNotifierType) {
		d.add(m, reflectCall(reflect.ValueOf(n.registry).MethodByName(m.Name), m))
	}
	self := reflect.ValueOf(n)
	for _, name := range ownMethods {
		rm, _ := notifierType.MethodByName(name)
		m := apis.MethodOf(rm, false)
		d.add(m, reflectCall(self.MethodByName(name), m))
	}

	for _, rm := range uref.ReachableMethods(n.registry, nil) {
		m := apis.MethodOf(rm, true)
		d.add(m, reflectCall(reflect.ValueOf(n.registry).MethodByName(m.Name), m))
	}

	for _, lt := range n.listeners {
		for _, m := range apis.InterfaceMethods(lt) {
			name := m.Name
			d.add(m, func(args []any) ([]any, error) {
				f, err := n.registry.NotifierFor(lt)
				if err != nil {
					return nil, err
				}
				return f.Call(name, args...)
			})
		}
	}
	return d
}

// reflectCall calls fn with flattened args. A trailing error result is
// returned as the error.
func reflectCall(fn reflect.Value, m apis.Method) func(args []any) ([]any, error) {
	return func(args []any) ([]any, error) {
		in, err := uref.Values(m.In, m.Variadic, args)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", apis.ErrIllegalArgument, m, err)
		}
		out := fn.Call(in)
		var callErr error
		if m.ReturnsError() {
			if e := out[len(out)-1]; !e.IsNil() {
				callErr = e.Interface().(error)
			}
			out = out[:len(out)-1]
		}
		results := make([]any, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results, callErr
	}
}
