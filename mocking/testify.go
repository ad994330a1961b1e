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

package mocking

import (
	"fmt"
	"reflect"

	"github.com/stretchr/testify/mock"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// DefaultMaxVariadicArity bounds the number of variadic elements a testify
// stub of a variadic method accepts in flattened form.
const DefaultMaxVariadicArity = 8

// Compile-time check: *TestifyHandler must satisfy the handler interfaces.
var (
	_ apis.RegistrationHandler   = (*TestifyHandler)(nil)
	_ apis.SyntheticMethodFilter = (*TestifyHandler)(nil)
)

var mockType = reflect.TypeFor[mock.Mock]()

// TestifyHandler adapts mocks built on github.com/stretchr/testify/mock,
// i.e. structs embedding mock.Mock.
//
// mock.Mock exposes no lock, so PreviousRegistrations reads Calls and
// RegisterInMock reorders ExpectedCalls unguarded. Do not call the mock from
// other goroutines while the notifier is being created.
type TestifyHandler struct {
	maxVariadicArity int
	synthetic        map[string]bool
}

// NewTestifyHandler returns a handler for testify mocks.
func NewTestifyHandler() *TestifyHandler {
	return &TestifyHandler{
		maxVariadicArity: DefaultMaxVariadicArity,
		synthetic:        uref.MethodNames(reflect.PointerTo(mockType)),
	}
}

// EntityName returns "TestifyHandler".
func (h *TestifyHandler) EntityName() string {
	return "TestifyHandler"
}

// CanHandle reports whether v is a pointer to a struct embedding mock.Mock.
func (h *TestifyHandler) CanHandle(v any) bool {
	return mockOf(v) != nil
}

// IsSyntheticMethod reports whether name is promoted from mock.Mock.
func (h *TestifyHandler) IsSyntheticMethod(name string) bool {
	return h.synthetic[name]
}

// RegisterInMock stubs d.Source to call d.Destination for any arguments.
// The stub is put in front of the expectations already present, is optional
// and returns zero values.
//
// Hand-written mocks pass variadic parts either as one slice or flattened, so
// a variadic method is stubbed for both.
func (h *TestifyHandler) RegisterInMock(c apis.ListenerContainer, d apis.RegistrationDelegate) error {
	m := mockOf(c.ObservableMock())
	if m == nil {
		return fmt.Errorf("%w: %s is not a testify mock", apis.ErrImplementation, uref.Name(c.ObservableMock()))
	}

	run := func(args mock.Arguments) {
		if _, err := d.Destination(c, d.Source, d.Source.Flatten(args)); err != nil {
			implementationPanic(d, err)
		}
	}
	returns := uref.Defaults(d.Source.Out)

	n := len(d.Source.In)
	arities := []int{n}
	if d.Source.Variadic {
		for a := n - 1; a <= n-1+h.maxVariadicArity; a++ {
			if a != n {
				arities = append(arities, a)
			}
		}
	}
	for _, a := range arities {
		call := m.On(d.Source.Name, anything(a)...).Return(returns...).Maybe().Run(run)
		promote(m, call)
	}
	return nil
}

// PreviousRegistrations returns the calls recorded by the mock.
func (h *TestifyHandler) PreviousRegistrations(v any) []apis.Invocation {
	m := mockOf(v)
	if m == nil {
		return nil
	}
	out := make([]apis.Invocation, 0, len(m.Calls))
	for _, call := range m.Calls {
		out = append(out, apis.Invocation{Method: call.Method, Args: append([]any(nil), call.Arguments...)})
	}
	return out
}

func anything(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = mock.Anything
	}
	return out
}

// promote moves call in front of the other expectations of m, so it wins
// over stubs for the same method set up by the test before.
func promote(m *mock.Mock, call *mock.Call) {
	for i, c := range m.ExpectedCalls {
		if c != call {
			continue
		}
		copy(m.ExpectedCalls[1:i+1], m.ExpectedCalls[:i])
		m.ExpectedCalls[0] = call
		return
	}
}

// mockOf returns the mock.Mock embedded in v, or nil.
func mockOf(v any) *mock.Mock {
	if v == nil {
		return nil
	}
	if m, ok := v.(*mock.Mock); ok {
		return m
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Type().Field(i)
		if !f.Anonymous || !f.IsExported() {
			continue
		}
		switch f.Type {
		case mockType:
			return rv.Field(i).Addr().Interface().(*mock.Mock)
		case reflect.PointerTo(mockType):
			if fv := rv.Field(i); !fv.IsNil() {
				return fv.Interface().(*mock.Mock)
			}
		}
	}
	return nil
}
