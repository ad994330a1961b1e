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
	"github.com/stretchr/testify/mock"

	"dirpx.dev/mocknotify/beans"
	"dirpx.dev/mocknotify/observer"
)

// TestifyObservable is a testify mock of Observable. Variadic parts are
// passed to Called as one slice.
type TestifyObservable struct {
	mock.Mock
}

var _ Observable = (*TestifyObservable)(nil)

func (m *TestifyObservable) AddMyListener(l MyListener) {
	m.Called(l)
}

func (m *TestifyObservable) RemoveMyListener(l MyListener) {
	m.Called(l)
}

func (m *TestifyObservable) AddKeyedListener(key string, l MyListener, more ...string) {
	m.Called(key, l, more)
}

func (m *TestifyObservable) RemoveKeyedListener(key string, l MyListener, more ...string) {
	m.Called(key, l, more)
}

func (m *TestifyObservable) AddMyAnotherListener(l MyAnotherListener) {
	m.Called(l)
}

func (m *TestifyObservable) RemoveMyAnotherListener(l MyAnotherListener) {
	m.Called(l)
}

func (m *TestifyObservable) AddVoteListener(l VoteListener) error {
	return m.Called(l).Error(0)
}

func (m *TestifyObservable) RemoveVoteListener(l VoteListener) error {
	return m.Called(l).Error(0)
}

func (m *TestifyObservable) AddPropertyChangeListener(l beans.PropertyChangeListener) {
	m.Called(l)
}

func (m *TestifyObservable) AddPropertyChangeListenerFor(name string, l beans.PropertyChangeListener) {
	m.Called(name, l)
}

func (m *TestifyObservable) RemovePropertyChangeListener(l beans.PropertyChangeListener) {
	m.Called(l)
}

func (m *TestifyObservable) RemovePropertyChangeListenerFor(name string, l beans.PropertyChangeListener) {
	m.Called(name, l)
}

func (m *TestifyObservable) AddObserver(o observer.Observer) {
	m.Called(o)
}

func (m *TestifyObservable) DeleteObserver(o observer.Observer) {
	m.Called(o)
}

func (m *TestifyObservable) Name() string {
	return m.Called().String(0)
}

// TestifyFlatObservable is a testify mock passing variadic parts flattened,
// the way mockery generates them.
type TestifyFlatObservable struct {
	mock.Mock
}

func (m *TestifyFlatObservable) AddKeyedListener(key string, l MyListener, more ...string) {
	args := []any{key, l}
	for _, s := range more {
		args = append(args, s)
	}
	m.Called(args...)
}

func (m *TestifyFlatObservable) RemoveKeyedListener(key string, l MyListener, more ...string) {
	args := []any{key, l}
	for _, s := range more {
		args = append(args, s)
	}
	m.Called(args...)
}

// TestifyNoListeners is a testify mock of NoListeners.
type TestifyNoListeners struct {
	mock.Mock
}

func (m *TestifyNoListeners) Name() string {
	return m.Called().String(0)
}

func (m *TestifyNoListeners) Size() int {
	return m.Called().Int(0)
}

// MockMyListener is a testify mock of MyListener.
type MockMyListener struct {
	mock.Mock
}

func (m *MockMyListener) SomethingChanged(value int) {
	m.Called(value)
}
