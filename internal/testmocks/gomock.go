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

package testmocks

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"dirpx.dev/mocknotify/beans"
	"dirpx.dev/mocknotify/observer"
)

// MockObservable is a mock of Observable in the shape mockgen generates.
type MockObservable struct {
	ctrl     *gomock.Controller
	recorder *MockObservableMockRecorder
	isgomock struct{}
}

// MockObservableMockRecorder is the mock recorder for MockObservable.
type MockObservableMockRecorder struct {
	mock *MockObservable
}

// NewMockObservable creates a new mock instance.
func NewMockObservable(ctrl *gomock.Controller) *MockObservable {
	mock := &MockObservable{ctrl: ctrl}
	mock.recorder = &MockObservableMockRecorder{mock}
	return mock
}

var _ Observable = (*MockObservable)(nil)

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockObservable) EXPECT() *MockObservableMockRecorder {
	return m.recorder
}

func (m *MockObservable) AddMyListener(l MyListener) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddMyListener", l)
}

// AddMyListener indicates an expected call of AddMyListener.
func (mr *MockObservableMockRecorder) AddMyListener(l any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddMyListener", reflect.TypeOf((*MockObservable)(nil).AddMyListener), l)
}

func (m *MockObservable) RemoveMyListener(l MyListener) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RemoveMyListener", l)
}

func (m *MockObservable) AddKeyedListener(key string, l MyListener, more ...string) {
	m.ctrl.T.Helper()
	varargs := []any{key, l}
	for _, a := range more {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "AddKeyedListener", varargs...)
}

func (m *MockObservable) RemoveKeyedListener(key string, l MyListener, more ...string) {
	m.ctrl.T.Helper()
	varargs := []any{key, l}
	for _, a := range more {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "RemoveKeyedListener", varargs...)
}

func (m *MockObservable) AddMyAnotherListener(l MyAnotherListener) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddMyAnotherListener", l)
}

func (m *MockObservable) RemoveMyAnotherListener(l MyAnotherListener) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RemoveMyAnotherListener", l)
}

func (m *MockObservable) AddVoteListener(l VoteListener) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddVoteListener", l)
	ret0, _ := ret[0].(error)
	return ret0
}

func (m *MockObservable) RemoveVoteListener(l VoteListener) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveVoteListener", l)
	ret0, _ := ret[0].(error)
	return ret0
}

func (m *MockObservable) AddPropertyChangeListener(l beans.PropertyChangeListener) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddPropertyChangeListener", l)
}

func (m *MockObservable) AddPropertyChangeListenerFor(name string, l beans.PropertyChangeListener) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddPropertyChangeListenerFor", name, l)
}

func (m *MockObservable) RemovePropertyChangeListener(l beans.PropertyChangeListener) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RemovePropertyChangeListener", l)
}

func (m *MockObservable) RemovePropertyChangeListenerFor(name string, l beans.PropertyChangeListener) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RemovePropertyChangeListenerFor", name, l)
}

func (m *MockObservable) AddObserver(o observer.Observer) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddObserver", o)
}

func (m *MockObservable) DeleteObserver(o observer.Observer) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DeleteObserver", o)
}

func (m *MockObservable) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockObservableMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockObservable)(nil).Name))
}
