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

package mocknotify

import (
	"fmt"
	"reflect"

	"dirpx.dev/mocknotify/apis"
)

// Selector creates a selector from values.
func Selector(values ...any) apis.Selector {
	return apis.NewSelector(values...)
}

// NotifierFor returns a fan-out over the listeners of type L registered with
// any of selectors; no selectors means the empty selector.
func NotifierFor[L any](n apis.ListenersNotifier, selectors ...apis.Selector) (apis.Fanout, error) {
	return n.NotifierFor(reflect.TypeFor[L](), selectors...)
}

// Listeners returns the listeners of type L registered with any of selectors,
// or all of them when no selector is given.
func Listeners[L any](n apis.ListenersNotifier, selectors ...apis.Selector) []L {
	ls := n.Listeners(reflect.TypeFor[L](), selectors...)
	out := make([]L, 0, len(ls))
	for _, l := range ls {
		if tl, ok := l.(L); ok {
			out = append(out, tl)
		}
	}
	return out
}

// Notify calls fn for every listener of type L registered with any of
// selectors, in order. See apis.ListenersNotifier.NotifierFor for the lookup
// rules.
//
//	err := mocknotify.Notify(n, func(l MyListener) { l.SomethingChanged(42) })
func Notify[L any](n apis.ListenersNotifier, fn func(L), selectors ...apis.Selector) error {
	return NotifyErr(n, func(l L) error {
		fn(l)
		return nil
	}, selectors...)
}

// NotifyErr is Notify for listener methods returning an error. The first
// error stops the notification and is returned unchanged.
func NotifyErr[L any](n apis.ListenersNotifier, fn func(L) error, selectors ...apis.Selector) error {
	ls, err := typedListeners[L](n, selectors)
	if err != nil {
		return err
	}
	for _, l := range ls {
		if err := fn(l); err != nil {
			return err
		}
	}
	return nil
}

// NotifyResult is Notify for listener methods returning a value. It returns
// the value of the last call, or the zero R if no listener was called.
func NotifyResult[L, R any](n apis.ListenersNotifier, fn func(L) R, selectors ...apis.Selector) (R, error) {
	var last R
	ls, err := typedListeners[L](n, selectors)
	if err != nil {
		return last, err
	}
	for _, l := range ls {
		last = fn(l)
	}
	return last, nil
}

func typedListeners[L any](n apis.ListenersNotifier, selectors []apis.Selector) ([]L, error) {
	f, err := NotifierFor[L](n, selectors...)
	if err != nil {
		return nil, err
	}
	ls := f.Listeners()
	out := make([]L, len(ls))
	for i, l := range ls {
		tl, ok := l.(L)
		if !ok {
			return nil, fmt.Errorf("%w: listener %T is not a %v", apis.ErrImplementation, l, reflect.TypeFor[L]())
		}
		out[i] = tl
	}
	return out, nil
}

// As returns the notifier as T: the notifier itself for the base interfaces,
// the matching additional interface otherwise.
//
//	pcn, ok := mocknotify.As[beans.PropertyChangeNotifier](n)
func As[T any](n apis.Notifier) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	if t, ok := n.(T); ok {
		return t, true
	}
	v, ok := n.Capability(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// MustAs is like As but panics if n does not implement T.
func MustAs[T any](n apis.Notifier) T {
	t, ok := As[T](n)
	if !ok {
		panic(fmt.Errorf("%w: notifier does not implement %v", apis.ErrIllegalArgument, reflect.TypeFor[T]()))
	}
	return t
}
