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

package beans

import (
	"fmt"
	"reflect"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// PropertyChangeNotifier is implemented by notifiers of mocks with
// property-change listeners.
//
// Events of a named property go to the listeners registered for all
// properties and to the listeners registered for that name. Events with an
// empty property name go to the listeners for all properties only.
type PropertyChangeNotifier interface {
	apis.Notifier

	// FirePropertyChange sends an event unless oldValue is non-nil and equal
	// to newValue.
	FirePropertyChange(name string, oldValue, newValue any) error
	// FireIntPropertyChange sends an event if the values differ.
	FireIntPropertyChange(name string, oldValue, newValue int) error
	// FireBoolPropertyChange sends an event if the values differ.
	FireBoolPropertyChange(name string, oldValue, newValue bool) error
	// FirePropertyChangeEvent sends evt as is. A nil evt is ErrIllegalArgument.
	FirePropertyChangeEvent(evt *PropertyChangeEvent) error
	// FireIndexedPropertyChange sends an indexed event unless oldValue is
	// non-nil and equal to newValue.
	FireIndexedPropertyChange(name string, index int, oldValue, newValue any) error
	FireIntIndexedPropertyChange(name string, index int, oldValue, newValue int) error
	FireBoolIndexedPropertyChange(name string, index int, oldValue, newValue bool) error

	// HasListeners reports whether an event for name would reach any listener.
	HasListeners(name string) bool
	// PropertyChangeListeners returns all registered listeners.
	PropertyChangeListeners() []PropertyChangeListener
	// PropertyChangeListenersFor returns the listeners registered for name.
	PropertyChangeListenersFor(name string) []PropertyChangeListener
}

// NotifierType is the reflect.Type of PropertyChangeNotifier.
var NotifierType = reflect.TypeFor[PropertyChangeNotifier]()

// NotifierInterface describes PropertyChangeNotifier as an additional
// notifier interface.
func NotifierInterface() apis.AdditionalInterface {
	return apis.AdditionalInterface{
		Type: NotifierType,
		Defaults: map[string]apis.DefaultMethodFunc{
			"FirePropertyChange":            firePropertyChange,
			"FireIntPropertyChange":         fireComparable[int]("FirePropertyChange"),
			"FireBoolPropertyChange":        fireComparable[bool]("FirePropertyChange"),
			"FirePropertyChangeEvent":       firePropertyChangeEvent,
			"FireIndexedPropertyChange":     fireIndexedPropertyChange,
			"FireIntIndexedPropertyChange":  fireIndexedComparable[int],
			"FireBoolIndexedPropertyChange": fireIndexedComparable[bool],
			"HasListeners":                  hasListeners,
			"PropertyChangeListeners":       propertyChangeListeners,
			"PropertyChangeListenersFor":    propertyChangeListenersFor,
		},
		Bind: func(n apis.Notifier) any { return notifier{n} },
	}
}

func changed(oldValue, newValue any) bool {
	return oldValue == nil || !uref.Equal(oldValue, newValue)
}

func firePropertyChange(self apis.Notifier, args []any) ([]any, error) {
	name, oldValue, newValue := apis.Arg[string](args, 0), args[1], args[2]
	if !changed(oldValue, newValue) {
		return nil, nil
	}
	return self.Invoke("FirePropertyChangeEvent", &PropertyChangeEvent{
		Source:       self.ObservableMock(),
		PropertyName: name,
		OldValue:     oldValue,
		NewValue:     newValue,
	})
}

func fireComparable[T comparable](target string) apis.DefaultMethodFunc {
	return func(self apis.Notifier, args []any) ([]any, error) {
		oldValue, newValue := apis.Arg[T](args, 1), apis.Arg[T](args, 2)
		if oldValue == newValue {
			return nil, nil
		}
		return self.Invoke(target, args[0], oldValue, newValue)
	}
}

func fireIndexedPropertyChange(self apis.Notifier, args []any) ([]any, error) {
	name, index, oldValue, newValue := apis.Arg[string](args, 0), apis.Arg[int](args, 1), args[2], args[3]
	if !changed(oldValue, newValue) {
		return nil, nil
	}
	return self.Invoke("FirePropertyChangeEvent", &PropertyChangeEvent{
		Source:       self.ObservableMock(),
		PropertyName: name,
		OldValue:     oldValue,
		NewValue:     newValue,
		Indexed:      true,
		Index:        index,
	})
}

func fireIndexedComparable[T comparable](self apis.Notifier, args []any) ([]any, error) {
	oldValue, newValue := apis.Arg[T](args, 2), apis.Arg[T](args, 3)
	if oldValue == newValue {
		return nil, nil
	}
	return self.Invoke("FireIndexedPropertyChange", args[0], args[1], oldValue, newValue)
}

func firePropertyChangeEvent(self apis.Notifier, args []any) ([]any, error) {
	evt := apis.Arg[*PropertyChangeEvent](args, 0)
	if evt == nil {
		return nil, fmt.Errorf("%w: nil property change event", apis.ErrIllegalArgument)
	}
	selectors := []apis.Selector{apis.NewSelector()}
	if evt.PropertyName != "" {
		selectors = append(selectors, apis.NewSelector(evt.PropertyName))
	}
	f, err := self.NotifierFor(ListenerType, selectors...)
	if err != nil {
		return nil, err
	}
	_, err = f.Call("PropertyChange", evt)
	return nil, err
}

func hasListeners(self apis.Notifier, args []any) ([]any, error) {
	name := apis.Arg[string](args, 0)
	has := self.NumberOfRegisteredListeners() > 0 &&
		(len(self.Listeners(ListenerType, apis.NewSelector())) > 0 ||
			name != "" && len(self.Listeners(ListenerType, apis.NewSelector(name))) > 0)
	return []any{has}, nil
}

func propertyChangeListeners(self apis.Notifier, _ []any) ([]any, error) {
	return []any{toListeners(self.Listeners(ListenerType))}, nil
}

func propertyChangeListenersFor(self apis.Notifier, args []any) ([]any, error) {
	name := apis.Arg[string](args, 0)
	if name == "" {
		return []any{[]PropertyChangeListener{}}, nil
	}
	return []any{toListeners(self.Listeners(ListenerType, apis.NewSelector(name)))}, nil
}

func toListeners(ls []any) []PropertyChangeListener {
	out := make([]PropertyChangeListener, 0, len(ls))
	for _, l := range ls {
		if pl, ok := l.(PropertyChangeListener); ok {
			out = append(out, pl)
		}
	}
	return out
}

// notifier implements PropertyChangeNotifier by invoking every method
// through the notifier dispatch, so custom delegates take precedence.
type notifier struct {
	apis.Notifier
}

func (n notifier) FirePropertyChange(name string, oldValue, newValue any) error {
	_, err := n.Invoke("FirePropertyChange", name, oldValue, newValue)
	return err
}

func (n notifier) FireIntPropertyChange(name string, oldValue, newValue int) error {
	_, err := n.Invoke("FireIntPropertyChange", name, oldValue, newValue)
	return err
}

func (n notifier) FireBoolPropertyChange(name string, oldValue, newValue bool) error {
	_, err := n.Invoke("FireBoolPropertyChange", name, oldValue, newValue)
	return err
}

func (n notifier) FirePropertyChangeEvent(evt *PropertyChangeEvent) error {
	_, err := n.Invoke("FirePropertyChangeEvent", evt)
	return err
}

func (n notifier) FireIndexedPropertyChange(name string, index int, oldValue, newValue any) error {
	_, err := n.Invoke("FireIndexedPropertyChange", name, index, oldValue, newValue)
	return err
}

func (n notifier) FireIntIndexedPropertyChange(name string, index int, oldValue, newValue int) error {
	_, err := n.Invoke("FireIntIndexedPropertyChange", name, index, oldValue, newValue)
	return err
}

func (n notifier) FireBoolIndexedPropertyChange(name string, index int, oldValue, newValue bool) error {
	_, err := n.Invoke("FireBoolIndexedPropertyChange", name, index, oldValue, newValue)
	return err
}

func (n notifier) HasListeners(name string) bool {
	res, err := n.Invoke("HasListeners", name)
	if err != nil {
		return false
	}
	return apis.Arg[bool](res, 0)
}

func (n notifier) PropertyChangeListeners() []PropertyChangeListener {
	res, _ := n.Invoke("PropertyChangeListeners")
	return apis.Arg[[]PropertyChangeListener](res, 0)
}

func (n notifier) PropertyChangeListenersFor(name string) []PropertyChangeListener {
	res, _ := n.Invoke("PropertyChangeListenersFor", name)
	return apis.Arg[[]PropertyChangeListener](res, 0)
}
