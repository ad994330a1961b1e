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

// Package observer holds the classic Observer/Observable listener style.
package observer

import (
	"reflect"

	"dirpx.dev/mocknotify/apis"
)

// Observer is notified by an Observable.
type Observer interface {
	// Update is called with the notifying observable (may be nil) and an
	// optional argument.
	Update(o Observable, arg any)
}

// Observable accepts observers.
type Observable interface {
	AddObserver(o Observer)
	DeleteObserver(o Observer)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(o Observable, arg any)

func (f ObserverFunc) Update(o Observable, arg any) {
	f(o, arg)
}

// ObservableNotifier is implemented by notifiers of mocks with observers.
type ObservableNotifier interface {
	apis.Notifier

	// NotifyObservers calls Update(source, nil) on every registered observer.
	NotifyObservers() error
	// NotifyObserversWith calls Update(source, arg) on every registered observer.
	NotifyObserversWith(arg any) error
	// CountObservers returns the number of registered observers.
	CountObservers() int
}

var (
	// ObserverType is the reflect.Type of Observer.
	ObserverType = reflect.TypeFor[Observer]()
	// NotifierType is the reflect.Type of ObservableNotifier.
	NotifierType = reflect.TypeFor[ObservableNotifier]()
)

// NotifierInterface describes ObservableNotifier as an additional notifier
// interface. The source passed to observers is the mock if it implements
// Observable, nil otherwise.
func NotifierInterface() apis.AdditionalInterface {
	return apis.AdditionalInterface{
		Type: NotifierType,
		Defaults: map[string]apis.DefaultMethodFunc{
			"NotifyObservers": func(self apis.Notifier, _ []any) ([]any, error) {
				return self.Invoke("NotifyObserversWith", nil)
			},
			"NotifyObserversWith": notifyObserversWith,
		},
		Bind: func(n apis.Notifier) any { return notifier{n} },
	}
}

// NotificationDelegates returns the custom notifier methods: CountObservers
// is answered from the registry directly.
func NotificationDelegates() []apis.NotificationDelegate {
	m, _ := NotifierType.MethodByName("CountObservers")
	return []apis.NotificationDelegate{{
		Source: apis.MethodOf(m, false),
		Destination: func(n apis.ListenersNotifier, _ apis.Method, _ []any) ([]any, error) {
			return []any{len(n.Listeners(ObserverType))}, nil
		},
	}}
}

func notifyObserversWith(self apis.Notifier, args []any) ([]any, error) {
	var source Observable
	if o, ok := self.ObservableMock().(Observable); ok {
		source = o
	}
	f, err := self.NotifierFor(ObserverType)
	if err != nil {
		return nil, err
	}
	_, err = f.Call("Update", source, apis.Arg[any](args, 0))
	return nil, err
}

// notifier implements ObservableNotifier through the notifier dispatch.
type notifier struct {
	apis.Notifier
}

func (n notifier) NotifyObservers() error {
	_, err := n.Invoke("NotifyObservers")
	return err
}

func (n notifier) NotifyObserversWith(arg any) error {
	_, err := n.Invoke("NotifyObserversWith", arg)
	return err
}

func (n notifier) CountObservers() int {
	res, _ := n.Invoke("CountObservers")
	return apis.Arg[int](res, 0)
}
