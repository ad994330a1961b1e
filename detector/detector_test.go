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

package detector_test

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mocknotify/apis"
	"dirpx.dev/mocknotify/beans"
	"dirpx.dev/mocknotify/detector"
	"dirpx.dev/mocknotify/observer"
	"dirpx.dev/mocknotify/registry"
)

type MyListener interface {
	OnChange(value int)
}

type MyAnotherListener interface {
	OnOther(name string)
}

type Handler interface {
	Handle()
}

// Observable with every supported registration style.
type Observable interface {
	AddPropertyChangeListener(l beans.PropertyChangeListener)
	AddPropertyChangeListenerFor(name string, l beans.PropertyChangeListener)
	RemovePropertyChangeListener(l beans.PropertyChangeListener)
	RemovePropertyChangeListenerFor(name string, l beans.PropertyChangeListener)

	AddMyListener(l MyListener)
	AddKeyedListener(key string, l MyListener, more ...string)
	RemoveMyListener(l MyListener)
	RemoveKeyedListener(key string, l MyListener, more ...string)
	AddListeners(l1 MyListener, sel int, l2 MyAnotherListener)
	RemoveMyAnotherListener(l MyAnotherListener)

	AddObserver(o observer.Observer)
	DeleteObserver(o observer.Observer)

	AddHandler(h Handler)
	Size() int
}

var observableType = reflect.TypeFor[Observable]()

func methods() []apis.Method {
	return apis.InterfaceMethods(observableType)
}

func method(t *testing.T, name string) apis.Method {
	t.Helper()
	m, ok := observableType.MethodByName(name)
	require.True(t, ok, name)
	return apis.MethodOf(m, false)
}

func registrationNames(def apis.ListenersDefinition) []string {
	var out []string
	for _, r := range def.Registrations() {
		out = append(out, r.Source.Name)
	}
	return out
}

func delegate(t *testing.T, def apis.ListenersDefinition, name string) apis.RegistrationDelegate {
	t.Helper()
	for _, r := range def.Registrations() {
		if r.Source.Name == name {
			return r
		}
	}
	t.Fatalf("no delegate for %s", name)
	return apis.RegistrationDelegate{}
}

type myListener struct{}

func (myListener) OnChange(int) {}

type anotherListener struct{}

func (anotherListener) OnOther(string) {}

func TestPropertyChangeDetector(t *testing.T) {
	def, err := detector.NewPropertyChangeDetector().Detect(methods())
	require.NoError(t, err)

	assert.True(t, def.HasListenerDetected())
	assert.Equal(t, []reflect.Type{beans.ListenerType}, def.DetectedListeners())
	assert.ElementsMatch(t, []string{
		"AddPropertyChangeListener", "AddPropertyChangeListenerFor",
		"RemovePropertyChangeListener", "RemovePropertyChangeListenerFor",
	}, registrationNames(def))
	require.Len(t, def.AdditionalInterfaces(), 1)
	assert.Equal(t, beans.NotifierType, def.AdditionalInterfaces()[0].Type)
	assert.Empty(t, def.CustomNotificationDelegates())
}

func TestPropertyChangeDetector_Selectors(t *testing.T) {
	def, err := detector.NewPropertyChangeDetector().Detect(methods())
	require.NoError(t, err)
	reg := registry.New("mock", true)
	l := beans.PropertyChangeListenerFunc(func(*beans.PropertyChangeEvent) {})

	add := delegate(t, def, "AddPropertyChangeListenerFor")
	_, err = add.Destination(reg, add.Source, []any{"prop", l})
	require.NoError(t, err)
	addAll := delegate(t, def, "AddPropertyChangeListener")
	_, err = addAll.Destination(reg, addAll.Source, []any{l})
	require.NoError(t, err)

	assert.Len(t, reg.Listeners(beans.ListenerType, apis.NewSelector("prop")), 1)
	assert.Len(t, reg.Listeners(beans.ListenerType, apis.NewSelector()), 1)
}

func TestTypicalListenerDetector(t *testing.T) {
	def, err := detector.NewTypicalListenerDetector().Detect(methods())
	require.NoError(t, err)

	assert.ElementsMatch(t, []reflect.Type{
		beans.ListenerType, reflect.TypeFor[MyListener](), reflect.TypeFor[MyAnotherListener](),
	}, def.DetectedListeners())
	names := registrationNames(def)
	assert.Contains(t, names, "AddMyListener")
	assert.Contains(t, names, "AddKeyedListener")
	assert.Contains(t, names, "RemoveKeyedListener")
	assert.Contains(t, names, "AddListeners")
	assert.Contains(t, names, "RemoveMyAnotherListener")
	assert.NotContains(t, names, "AddHandler")
	assert.NotContains(t, names, "AddObserver")
	assert.Empty(t, def.AdditionalInterfaces())
}

func TestTypicalListenerDetector_CustomPatterns(t *testing.T) {
	d := detector.NewTypicalListenerDetector(
		detector.WithListenerPattern(regexp.MustCompile(`^Handler$`)),
		detector.WithAddPattern(regexp.MustCompile(`^AddHandler$`)),
		detector.WithRemovePattern(nil),
	)
	def, err := d.Detect(methods())
	require.NoError(t, err)

	assert.Equal(t, []string{"AddHandler"}, registrationNames(def))
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Handler]()}, def.DetectedListeners())
}

func TestObservableDetector(t *testing.T) {
	def, err := detector.NewObservableDetector().Detect(methods())
	require.NoError(t, err)

	assert.Equal(t, []reflect.Type{observer.ObserverType}, def.DetectedListeners())
	assert.ElementsMatch(t, []string{"AddObserver", "DeleteObserver"}, registrationNames(def))
	require.Len(t, def.AdditionalInterfaces(), 1)
	assert.Equal(t, observer.NotifierType, def.AdditionalInterfaces()[0].Type)
	require.Len(t, def.CustomNotificationDelegates(), 1)
	assert.Equal(t, "CountObservers", def.CustomNotificationDelegates()[0].Source.Name)
}

func TestDetect_RemoveOnlyDoesNotDetectListener(t *testing.T) {
	only := []apis.Method{method(t, "RemoveMyAnotherListener")}
	def, err := detector.NewTypicalListenerDetector().Detect(only)
	require.NoError(t, err)

	assert.False(t, def.HasListenerDetected())
	assert.Len(t, def.Registrations(), 1)
}

func TestDetect_NothingFound(t *testing.T) {
	def, err := detector.NewObservableDetector().Detect([]apis.Method{method(t, "Size")})
	require.NoError(t, err)
	assert.False(t, def.HasListenerDetected())
	assert.Empty(t, def.Registrations())
	assert.Empty(t, def.AdditionalInterfaces())
}

func TestDelegate_VarargSelector(t *testing.T) {
	def, err := detector.NewTypicalListenerDetector().Detect(methods())
	require.NoError(t, err)
	add := delegate(t, def, "AddKeyedListener")
	remove := delegate(t, def, "RemoveKeyedListener")
	reg := registry.New("mock", true)
	l := myListener{}
	lt := reflect.TypeFor[MyListener]()

	_, err = add.Destination(reg, add.Source, []any{"k", l})
	require.NoError(t, err)
	_, err = add.Destination(reg, add.Source, []any{"k", l, "a"})
	require.NoError(t, err)
	_, err = add.Destination(reg, add.Source, []any{"k", l, "a", "b"})
	require.NoError(t, err)

	assert.Len(t, reg.Listeners(lt, apis.NewSelector("k")), 1)
	assert.Len(t, reg.Listeners(lt, apis.NewSelector("k", "a")), 1)
	assert.Len(t, reg.Listeners(lt, apis.NewSelector("k", "a", "b")), 1)

	_, err = remove.Destination(reg, remove.Source, []any{"k", l, "a", "b"})
	require.NoError(t, err)
	assert.Empty(t, reg.Listeners(lt, apis.NewSelector("k", "a", "b")))
	assert.Equal(t, 2, reg.NumberOfRegisteredListeners())
}

func TestDelegate_MultipleListenerParameters(t *testing.T) {
	def, err := detector.NewTypicalListenerDetector().Detect(methods())
	require.NoError(t, err)
	add := delegate(t, def, "AddListeners")
	reg := registry.New("mock", true)

	_, err = add.Destination(reg, add.Source, []any{myListener{}, 7, anotherListener{}})
	require.NoError(t, err)

	assert.Len(t, reg.Listeners(reflect.TypeFor[MyListener](), apis.NewSelector(7)), 1)
	assert.Len(t, reg.Listeners(reflect.TypeFor[MyAnotherListener](), apis.NewSelector(7)), 1)
	assert.Equal(t, 2, reg.NumberOfListenerRegistrations())
}

func TestDelegate_ImplementationError(t *testing.T) {
	def, err := detector.NewTypicalListenerDetector().Detect(methods())
	require.NoError(t, err)
	add := delegate(t, def, "AddKeyedListener")
	reg := registry.New("mock", true)

	_, err = add.Destination(reg, method(t, "AddMyListener"), []any{myListener{}})
	assert.ErrorIs(t, err, apis.ErrImplementation)

	_, err = add.Destination(reg, add.Source, []any{"k"})
	assert.ErrorIs(t, err, apis.ErrImplementation)

	plain := delegate(t, def, "AddMyListener")
	_, err = plain.Destination(reg, plain.Source, []any{myListener{}, "extra"})
	assert.ErrorIs(t, err, apis.ErrImplementation)

	_, err = plain.Destination(reg, plain.Source, []any{nil})
	assert.ErrorIs(t, err, apis.ErrIllegalArgument)
	assert.Equal(t, 0, reg.NumberOfListenerRegistrations())
}

func TestChain_NoDoubleClaim(t *testing.T) {
	chain := detector.NewChain(detector.Defaults()...)
	def, err := chain.Detect(methods())
	require.NoError(t, err)

	counts := map[string]int{}
	for _, n := range registrationNames(def) {
		counts[n]++
	}
	for n, c := range counts {
		assert.Equal(t, 1, c, n)
	}
	assert.Equal(t, 1, counts["AddPropertyChangeListener"])
	assert.Equal(t, 1, counts["AddObserver"])
	assert.Equal(t, 1, counts["AddMyListener"])
	assert.Len(t, def.AdditionalInterfaces(), 2)
	assert.Contains(t, def.DetectedListeners(), beans.ListenerType)
	assert.Contains(t, def.DetectedListeners(), observer.ObserverType)
}

func TestChain_CustomDetectorFirst(t *testing.T) {
	custom := &detector.Rules{
		Label: "Custom",
		IsListenerType: func(t reflect.Type, _ apis.Method) bool {
			return t == reflect.TypeFor[MyListener]()
		},
		IsAddMethod: func(m apis.Method) bool { return m.Name == "AddMyListener" },
	}
	chain := detector.NewChain(append([]apis.Detector{custom, nil}, detector.Defaults()...)...)
	assert.Len(t, chain.Detectors(), 4)

	def, err := chain.Detect(methods())
	require.NoError(t, err)
	n := 0
	for _, name := range registrationNames(def) {
		if name == "AddMyListener" {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

type Empty interface {
	Size() int
}

func TestChain_NotDetected(t *testing.T) {
	chain := detector.NewChain(detector.Defaults()...)
	_, err := chain.DetectFor(&struct{ Empty }{}, apis.InterfaceMethods(reflect.TypeFor[Empty]()))

	require.Error(t, err)
	assert.ErrorIs(t, err, apis.ErrRegistrationMethodsNotDetected)
	assert.Contains(t, err.Error(), "PropertyChangeDetector")
	assert.Contains(t, err.Error(), "TypicalListenerDetector")
	assert.Contains(t, err.Error(), "ObservableDetector")
}

type RemoveOnly interface {
	RemoveMyListener(l MyListener)
	RemoveMyAnotherListener(l MyAnotherListener)
}

func TestChain_RemoveOnlyIsNotDetected(t *testing.T) {
	chain := detector.NewChain(detector.Defaults()...)
	_, err := chain.DetectFor(&struct{ RemoveOnly }{}, apis.InterfaceMethods(reflect.TypeFor[RemoveOnly]()))
	assert.ErrorIs(t, err, apis.ErrRegistrationMethodsNotDetected)
}

func TestChain_RemoveOnlyLeavesMethodsToLaterDetectors(t *testing.T) {
	removeOnly := &detector.Rules{
		Label:          "RemoveOnly",
		IsListenerType: func(t reflect.Type, _ apis.Method) bool { return t == reflect.TypeFor[MyListener]() },
		IsRemoveMethod: func(m apis.Method) bool { return m.Name == "RemoveMyListener" },
	}
	chain := detector.NewChain(removeOnly, detector.NewTypicalListenerDetector())
	def, err := chain.Detect(methods())
	require.NoError(t, err)

	counts := map[string]int{}
	for _, n := range registrationNames(def) {
		counts[n]++
	}
	assert.Equal(t, 1, counts["RemoveMyListener"])
	assert.Contains(t, def.DetectedListeners(), reflect.TypeFor[MyListener]())
}

func TestDefinition_RejectsNonInterfaces(t *testing.T) {
	def := detector.NewDefinition()
	assert.ErrorIs(t, def.AddDetectedListener(reflect.TypeFor[int]()), apis.ErrIllegalArgument)
	assert.ErrorIs(t, def.AddAdditionalInterface(apis.AdditionalInterface{Type: reflect.TypeFor[myListener]()}), apis.ErrIllegalArgument)
	assert.ErrorIs(t, def.AddDetectedListener(nil), apis.ErrIllegalArgument)

	require.NoError(t, def.AddDetectedListener(reflect.TypeFor[MyListener]()))
	require.NoError(t, def.AddDetectedListener(reflect.TypeFor[MyListener]()))
	assert.Len(t, def.DetectedListeners(), 1)
}
