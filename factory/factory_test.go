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

package factory_test

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dirpx.dev/mocknotify/apis"
	"dirpx.dev/mocknotify/beans"
	"dirpx.dev/mocknotify/config"
	"dirpx.dev/mocknotify/detector"
	"dirpx.dev/mocknotify/factory"
	"dirpx.dev/mocknotify/internal/testmocks"
	"dirpx.dev/mocknotify/mocking"
	"dirpx.dev/mocknotify/observer"
)

var (
	myListenerType      = reflect.TypeFor[testmocks.MyListener]()
	anotherListenerType = reflect.TypeFor[testmocks.MyAnotherListener]()
)

func newFactory(opts ...factory.Option) *factory.Factory {
	return factory.New(detector.Defaults(), mocking.Defaults(), opts...)
}

// plainObservable has registration methods but is not a mock.
type plainObservable struct{}

func (plainObservable) AddMyListener(testmocks.MyListener)    {}
func (plainObservable) RemoveMyListener(testmocks.MyListener) {}

func TestCreate_Errors(t *testing.T) {
	f := newFactory()

	_, err := f.Create(nil, config.DefaultSettings())
	assert.ErrorIs(t, err, apis.ErrIllegalArgument)

	_, err = f.Create(&testmocks.TestifyNoListeners{}, config.DefaultSettings())
	assert.ErrorIs(t, err, apis.ErrRegistrationMethodsNotDetected)

	_, err = f.Create(&plainObservable{}, config.DefaultSettings())
	assert.ErrorIs(t, err, apis.ErrMockingToolNotDetected)
}

func TestCreate_RedirectsRegistrations(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)
	assert.Same(t, m, n.ObservableMock())
	assert.False(t, n.AllListenersAreUnregistered(), "no registration yet")

	c := testmocks.NewComponent(1, nil)
	c.Attach(m)
	assert.Equal(t, 7, n.NumberOfRegisteredListeners())
	assert.Equal(t, 7, n.NumberOfListenerRegistrations())
	assert.Len(t, n.Listeners(myListenerType), 2)
	assert.Len(t, n.Listeners(myListenerType, apis.NewSelector("key", "a", "b")), 1)

	c.Detach(m)
	assert.Equal(t, 0, n.NumberOfRegisteredListeners())
	assert.Equal(t, 7, n.NumberOfListenerDeregistrations())
	assert.True(t, n.AllListenersAreUnregistered())
}

func TestCreate_ReplaysPreviousRegistrations(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	m.On("AddMyListener", mock.Anything).Return()
	m.On("RemoveMyListener", mock.Anything).Return()
	m.On("AddKeyedListener", mock.Anything, mock.Anything, mock.Anything).Return()

	kept := testmocks.NewComponent(0, nil)
	gone := testmocks.NewComponent(0, nil)
	m.AddMyListener(kept)
	m.AddMyListener(gone)
	m.RemoveMyListener(gone)
	m.AddKeyedListener("k", kept, "x")

	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, []any{kept}, n.Listeners(myListenerType, apis.NewSelector()))
	assert.Equal(t, []any{kept}, n.Listeners(myListenerType, apis.NewSelector("k", "x")))
	assert.Equal(t, 3, n.NumberOfListenerRegistrations())
	assert.Equal(t, 1, n.NumberOfListenerDeregistrations())
}

func TestCreate_StubsWinOverEarlierExpectations(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	m.On("AddVoteListener", mock.Anything).Return(errors.New("user stub"))

	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)

	assert.NoError(t, m.AddVoteListener(testmocks.NewComponent(3, nil)))
	assert.Equal(t, 1, n.NumberOfRegisteredListeners())
}

func TestInvoke_ListenerFanout(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)

	boom := errors.New("boom")
	c1, c2 := testmocks.NewComponent(1, nil), testmocks.NewComponent(2, boom)
	m.AddMyListener(c1)
	m.AddMyListener(c2)
	m.AddVoteListener(c1)
	m.AddVoteListener(c2)
	m.AddMyAnotherListener(c2)

	_, err = n.Invoke("SomethingChanged", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, c1.Values)
	assert.Equal(t, []int{5}, c2.Values)

	res, err := n.Invoke("Vote", "topic")
	require.NoError(t, err)
	assert.Equal(t, []any{2}, res, "last listener wins")

	_, err = n.Invoke("SomethingOtherChanged", "x")
	assert.ErrorIs(t, err, boom)

	_, err = n.Invoke("SomethingChanged", "not an int")
	assert.ErrorIs(t, err, apis.ErrMethodNotFound)

	assert.True(t, n.Implements(myListenerType))
	assert.True(t, n.Implements(anotherListenerType))

	f, err := n.AsListener(myListenerType)
	require.NoError(t, err)
	_, err = f.Call("SomethingChanged", 6)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, c1.Values)
}

func TestInvoke_BaseMethods(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)
	m.AddMyListener(testmocks.NewComponent(0, nil))

	res, err := n.Invoke("NumberOfRegisteredListeners")
	require.NoError(t, err)
	assert.Equal(t, []any{1}, res)

	res, err = n.Invoke("ID")
	require.NoError(t, err)
	assert.Equal(t, []any{n.ID()}, res)

	_, err = n.Invoke("NoSuchMethod")
	assert.ErrorIs(t, err, apis.ErrImplementation)
}

func TestInvoke_StrictListenerList(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)

	_, err = n.Invoke("SomethingChanged", 1)
	assert.ErrorIs(t, err, apis.ErrListenersNotFound)

	n.SetStrictCheckListenerList(false)
	_, err = n.Invoke("SomethingChanged", 1)
	assert.NoError(t, err)

	lenient, err := newFactory().Create(&testmocks.TestifyObservable{}, config.NewSettings(config.LenientListenerListCheck()))
	require.NoError(t, err)
	assert.False(t, lenient.StrictCheckListenerList())
	res, err := lenient.Invoke("Vote", "t")
	require.NoError(t, err)
	assert.Equal(t, []any{0}, res)
}

func TestIgnoreListenerInterfaces(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	n, err := newFactory().Create(m, config.NewSettings(config.IgnoreListenerInterfaces()))
	require.NoError(t, err)
	m.AddMyListener(testmocks.NewComponent(0, nil))

	assert.False(t, n.Implements(myListenerType))
	assert.True(t, n.Implements(beans.NotifierType))

	_, err = n.Invoke("SomethingChanged", 1)
	assert.ErrorIs(t, err, apis.ErrMethodNotFound)
	_, err = n.AsListener(myListenerType)
	assert.ErrorIs(t, err, apis.ErrIllegalArgument)
}

func TestCapability(t *testing.T) {
	n, err := newFactory().Create(&testmocks.TestifyObservable{}, config.DefaultSettings())
	require.NoError(t, err)

	types := n.Interfaces()
	assert.Contains(t, types, beans.NotifierType)
	assert.Contains(t, types, observer.NotifierType)
	assert.Contains(t, types, reflect.TypeFor[apis.Notifier]())

	v, ok := n.Capability(reflect.TypeFor[apis.ListenersNotifier]())
	require.True(t, ok)
	assert.Same(t, n, v)

	v, ok = n.Capability(beans.NotifierType)
	require.True(t, ok)
	assert.Implements(t, (*beans.PropertyChangeNotifier)(nil), v)

	_, ok = n.Capability(reflect.TypeFor[error]())
	assert.False(t, ok)
	_, ok = n.Capability(reflect.TypeOf(0))
	assert.False(t, ok)
}

func TestPropertyChange(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)

	all, named := testmocks.NewComponent(0, nil), testmocks.NewComponent(0, nil)
	m.AddPropertyChangeListener(all)
	m.AddPropertyChangeListenerFor("prop", named)

	v, ok := n.Capability(beans.NotifierType)
	require.True(t, ok)
	pcn := v.(beans.PropertyChangeNotifier)

	require.NoError(t, pcn.FirePropertyChange("prop", "a", "b"))
	require.NoError(t, pcn.FirePropertyChange("other", "a", "b"))
	require.NoError(t, pcn.FirePropertyChange("prop", "same", "same"))
	require.NoError(t, pcn.FireIntPropertyChange("prop", 1, 1))
	require.NoError(t, pcn.FireBoolIndexedPropertyChange("prop", 2, false, true))

	require.Len(t, all.Events, 3)
	require.Len(t, named.Events, 2)
	assert.Equal(t, "b", named.Events[0].NewValue)
	assert.Same(t, m, named.Events[0].Source)
	assert.True(t, named.Events[1].Indexed)
	assert.Equal(t, 2, named.Events[1].Index)

	assert.True(t, pcn.HasListeners("prop"))
	assert.Len(t, pcn.PropertyChangeListeners(), 2)
	assert.Len(t, pcn.PropertyChangeListenersFor("prop"), 1)
	assert.Empty(t, pcn.PropertyChangeListenersFor(""))
}

func TestPropertyChange_NilEvent(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)
	c := testmocks.NewComponent(0, nil)
	m.AddPropertyChangeListener(c)

	v, ok := n.Capability(beans.NotifierType)
	require.True(t, ok)
	err = v.(beans.PropertyChangeNotifier).FirePropertyChangeEvent(nil)
	assert.ErrorIs(t, err, apis.ErrIllegalArgument)
	assert.Empty(t, c.Events)
}

func TestCustomDelegate_InvokeOnly(t *testing.T) {
	countMethod, _ := reflect.TypeFor[apis.ListenersNotifier]().MethodByName("NumberOfRegisteredListeners")
	custom := &detector.Rules{
		Label:          "Counting",
		IsListenerType: func(t reflect.Type, _ apis.Method) bool { return t == myListenerType },
		IsAddMethod:    func(m apis.Method) bool { return m.Name == "AddMyListener" },
		NotificationDelegates: func() []apis.NotificationDelegate {
			return []apis.NotificationDelegate{{
				Source: apis.MethodOf(countMethod, false),
				Destination: func(apis.ListenersNotifier, apis.Method, []any) ([]any, error) {
					return []any{42}, nil
				},
			}}
		},
	}
	f := factory.New(append([]apis.Detector{custom}, detector.Defaults()...), mocking.Defaults())

	m := &testmocks.TestifyObservable{}
	n, err := f.Create(m, config.DefaultSettings())
	require.NoError(t, err)
	m.AddMyListener(testmocks.NewComponent(0, nil))

	res, err := n.Invoke("NumberOfRegisteredListeners")
	require.NoError(t, err)
	assert.Equal(t, []any{42}, res)
	assert.Equal(t, 1, n.NumberOfRegisteredListeners())
}

func TestObserver(t *testing.T) {
	m := &testmocks.TestifyObservable{}
	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)

	c := testmocks.NewComponent(0, nil)
	m.AddObserver(c)

	v, ok := n.Capability(observer.NotifierType)
	require.True(t, ok)
	on := v.(observer.ObservableNotifier)

	assert.Equal(t, 1, on.CountObservers())
	require.NoError(t, on.NotifyObservers())
	require.NoError(t, on.NotifyObserversWith("arg"))
	assert.Equal(t, []any{nil, "arg"}, c.Updates)
	assert.Same(t, m, c.Sources[0])

	res, err := n.Invoke("CountObservers")
	require.NoError(t, err)
	assert.Equal(t, []any{1}, res)
}

func TestCreate_Gomock(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := testmocks.NewMockObservable(ctrl)
	n, err := newFactory().Create(m, config.DefaultSettings())
	require.NoError(t, err)

	c := testmocks.NewComponent(4, nil)
	c.Attach(m)
	assert.Equal(t, 7, n.NumberOfRegisteredListeners())

	res, err := n.Invoke("Vote", "t")
	require.NoError(t, err)
	assert.Equal(t, []any{4}, res)

	c.Detach(m)
	assert.True(t, n.AllListenersAreUnregistered())
}

func TestCreate_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := &testmocks.TestifyObservable{}
	m.On("AddMyListener", mock.Anything).Return()
	m.AddMyListener(testmocks.NewComponent(0, nil))

	n, err := newFactory(factory.WithLogger(logger)).Create(m, config.DefaultSettings())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "notifier created")
	assert.Contains(t, out, "notifier_id="+n.ID().String())
	assert.Contains(t, out, "handler=TestifyHandler")
	assert.Contains(t, out, "replayed=1")
	assert.Contains(t, out, "registration replayed")
}

func TestCreate_DistinctIDs(t *testing.T) {
	f := newFactory()
	n1, err := f.Create(&testmocks.TestifyObservable{}, config.DefaultSettings())
	require.NoError(t, err)
	n2, err := f.Create(&testmocks.TestifyObservable{}, config.DefaultSettings())
	require.NoError(t, err)
	assert.NotEqual(t, n1.ID(), n2.ID())
}
