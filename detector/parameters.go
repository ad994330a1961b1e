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
)

// parameters splits the parameters of a registration method into listener
// and selector positions.
type parameters struct {
	method    apis.Method
	listeners []int
	selectors []int
}

// listenerTypes returns the types of the listener parameters.
func (p *parameters) listenerTypes() []reflect.Type {
	out := make([]reflect.Type, len(p.listeners))
	for i, li := range p.listeners {
		out[i] = p.method.In[li]
	}
	return out
}

// selector builds the selector from the flattened call arguments. A missing
// variadic part adds nothing, every variadic element adds one value.
func (p *parameters) selector(m apis.Method, args []any) (apis.Selector, error) {
	if err := p.check(m, args); err != nil {
		return apis.Selector{}, err
	}
	n := len(p.method.In)
	values := make([]any, 0, len(args))
	for _, si := range p.selectors {
		if p.method.Variadic && si == n-1 {
			values = append(values, args[n-1:]...)
			continue
		}
		values = append(values, args[si])
	}
	return apis.NewSelector(values...), nil
}

// check verifies that the call belongs to the method p was built for.
func (p *parameters) check(m apis.Method, args []any) error {
	n := len(p.method.In)
	ok := m.Equal(p.method)
	if ok && p.method.Variadic {
		ok = len(args) >= n-1
	} else if ok {
		ok = len(args) == n
	}
	if !ok {
		return fmt.Errorf("%w: selector for unexpected call (expected: %s with %d argument(s), was: %s with %d argument(s))",
			apis.ErrImplementation, p.method.Name, n, m.Name, len(args))
	}
	return nil
}

func (p *parameters) listenerArgs(args []any) ([]any, error) {
	out := make([]any, len(p.listeners))
	for i, li := range p.listeners {
		if args[li] == nil {
			return nil, fmt.Errorf("%w: nil listener passed to %s", apis.ErrIllegalArgument, p.method)
		}
		out[i] = args[li]
	}
	return out, nil
}

// add registers every listener argument of the call in c.
func (p *parameters) add(c apis.ListenerContainer, m apis.Method, args []any) ([]any, error) {
	sel, err := p.selector(m, args)
	if err != nil {
		return nil, err
	}
	listeners, err := p.listenerArgs(args)
	if err != nil {
		return nil, err
	}
	for i, l := range listeners {
		c.AddListener(sel, p.method.In[p.listeners[i]], l)
	}
	return nil, nil
}

// remove deregisters every listener argument of the call from c.
func (p *parameters) remove(c apis.ListenerContainer, m apis.Method, args []any) ([]any, error) {
	sel, err := p.selector(m, args)
	if err != nil {
		return nil, err
	}
	listeners, err := p.listenerArgs(args)
	if err != nil {
		return nil, err
	}
	for i, l := range listeners {
		c.RemoveListener(sel, p.method.In[p.listeners[i]], l)
	}
	return nil, nil
}
