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
	"unsafe"

	"go.uber.org/mock/gomock"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// Compile-time check: *GomockHandler must satisfy the handler interfaces.
var (
	_ apis.RegistrationHandler   = (*GomockHandler)(nil)
	_ apis.SyntheticMethodFilter = (*GomockHandler)(nil)
)

var controllerType = reflect.TypeFor[*gomock.Controller]()

// GomockHandler adapts mocks generated by mockgen (go.uber.org/mock).
//
// gomock keeps no call history, so registrations made before the notifier
// was created are lost. Expectations recorded by the test before the
// notifier take precedence over the redirect.
type GomockHandler struct{}

// NewGomockHandler returns a handler for mockgen mocks.
func NewGomockHandler() *GomockHandler {
	return &GomockHandler{}
}

// EntityName returns "GomockHandler".
func (h *GomockHandler) EntityName() string {
	return "GomockHandler"
}

// CanHandle reports whether v is a mockgen mock with a controller.
func (h *GomockHandler) CanHandle(v any) bool {
	return controllerOf(v) != nil
}

// IsSyntheticMethod reports whether name is generated by mockgen.
func (h *GomockHandler) IsSyntheticMethod(name string) bool {
	return name == "EXPECT"
}

// RegisterInMock records an expectation on d.Source that matches any
// arguments, any number of times, and calls d.Destination.
func (h *GomockHandler) RegisterInMock(c apis.ListenerContainer, d apis.RegistrationDelegate) error {
	v := c.ObservableMock()
	ctrl := controllerOf(v)
	if ctrl == nil {
		return fmt.Errorf("%w: %s is not a gomock mock", apis.ErrImplementation, uref.Name(v))
	}
	mv := reflect.ValueOf(v).MethodByName(d.Source.Name)
	if !mv.IsValid() {
		return fmt.Errorf("%w: %s has no method %s", apis.ErrImplementation, uref.Name(v), d.Source.Name)
	}
	mt := mv.Type()

	matchers := make([]any, mt.NumIn())
	for i := range matchers {
		matchers[i] = gomock.Any()
	}
	out := make([]reflect.Type, mt.NumOut())
	for i := range out {
		out[i] = mt.Out(i)
	}

	bridge := reflect.MakeFunc(mt, func(in []reflect.Value) []reflect.Value {
		res, err := d.Destination(c, d.Source, uref.Interfaces(in, mt.IsVariadic()))
		if err != nil {
			implementationPanic(d, err)
		}
		return uref.Results(out, res, nil)
	})

	ctrl.RecordCallWithMethodType(v, d.Source.Name, mt, matchers...).
		DoAndReturn(bridge.Interface()).
		AnyTimes()
	return nil
}

// PreviousRegistrations returns nil: gomock keeps no call history.
func (h *GomockHandler) PreviousRegistrations(any) []apis.Invocation {
	return nil
}

// controllerOf returns the controller of a mockgen mock, or nil.
func controllerOf(v any) *gomock.Controller {
	if v == nil {
		return nil
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
		f := rv.Field(i)
		if f.Type() != controllerType {
			continue
		}
		// mockgen keeps the controller in an unexported field.
		ctrl := reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem().Interface().(*gomock.Controller)
		if ctrl != nil {
			return ctrl
		}
	}
	return nil
}
