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

package registry

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// New constructs a ListenerRegistry for the mocked observable.
// strict sets the initial lookup mode, see apis.Settings.
func New(observable any, strict bool) apis.ListenerRegistry {
	r := &registry{observable: observable}
	r.strict.Store(strict)
	return r
}

// registry is a ListenerRegistry backed by sync.Map.
type registry struct {
	// observable is the mock the listeners are registered on.
	observable any
	// strict is the lookup mode.
	strict atomic.Bool

	// mu guards types.
	mu sync.Mutex
	// types lists listener types in order of first registration.
	types []reflect.Type
	// m maps a listener type to its buckets.
	m sync.Map // map[reflect.Type]*typeBuckets

	// registrations and deregistrations only change under a typeBuckets lock.
	registrations   atomic.Int64
	deregistrations atomic.Int64
}

// typeBuckets holds the buckets of one listener type.
type typeBuckets struct {
	mu sync.Mutex
	// list holds non-empty buckets in creation order.
	list []*bucket
}

// bucket holds the listeners registered with one selector.
type bucket struct {
	selector  apis.Selector
	listeners []any
}

// ObservableMock returns the mock the registry belongs to.
func (r *registry) ObservableMock() any {
	return r.observable
}

// AddListener appends listener to the bucket (listenerType, selector).
func (r *registry) AddListener(selector apis.Selector, listenerType reflect.Type, listener any) {
	tb := r.bucketsFor(listenerType)

	tb.mu.Lock()
	defer tb.mu.Unlock()

	if b := tb.find(selector); b != nil {
		b.listeners = append(b.listeners, listener)
	} else {
		tb.list = append(tb.list, &bucket{selector: selector, listeners: []any{listener}})
	}
	r.registrations.Add(1)
}

// RemoveListener removes the first occurrence of listener from the bucket
// (listenerType, selector). A bucket that becomes empty is dropped.
func (r *registry) RemoveListener(selector apis.Selector, listenerType reflect.Type, listener any) {
	v, ok := r.m.Load(listenerType)
	if !ok {
		return
	}
	tb := v.(*typeBuckets)

	tb.mu.Lock()
	defer tb.mu.Unlock()

	for bi, b := range tb.list {
		if !b.selector.Equal(selector) {
			continue
		}
		for li, l := range b.listeners {
			if !uref.Equal(l, listener) {
				continue
			}
			b.listeners = append(b.listeners[:li:li], b.listeners[li+1:]...)
			if len(b.listeners) == 0 {
				tb.list = append(tb.list[:bi:bi], tb.list[bi+1:]...)
			}
			r.deregistrations.Add(1)
			return
		}
		return
	}
}

// bucketsFor returns the buckets of listenerType, creating them on demand.
func (r *registry) bucketsFor(listenerType reflect.Type) *typeBuckets {
	// Fast read path.
	if v, ok := r.m.Load(listenerType); ok {
		return v.(*typeBuckets)
	}

	// Write path: keep types consistent with m.
	r.mu.Lock()
	defer r.mu.Unlock()

	v, loaded := r.m.LoadOrStore(listenerType, &typeBuckets{})
	if !loaded {
		r.types = append(r.types, listenerType)
	}
	return v.(*typeBuckets)
}

// find returns the bucket for selector or nil. Caller holds tb.mu.
func (tb *typeBuckets) find(selector apis.Selector) *bucket {
	for _, b := range tb.list {
		if b.selector.Equal(selector) {
			return b
		}
	}
	return nil
}

// snapshot returns copies of the buckets. Selectors are immutable.
func (tb *typeBuckets) snapshot() []bucket {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	out := make([]bucket, len(tb.list))
	for i, b := range tb.list {
		out[i] = bucket{selector: b.selector, listeners: append([]any(nil), b.listeners...)}
	}
	return out
}

// typesSnapshot returns the known listener types in registration order.
func (r *registry) typesSnapshot() []reflect.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]reflect.Type(nil), r.types...)
}

// bucketsOf returns a snapshot of the buckets of listenerType.
func (r *registry) bucketsOf(listenerType reflect.Type) []bucket {
	v, ok := r.m.Load(listenerType)
	if !ok {
		return nil
	}
	return v.(*typeBuckets).snapshot()
}

// Listeners returns the listeners of listenerType registered with any of
// selectors. Without selectors all listeners of listenerType are returned.
// Equal selectors are taken into account once.
func (r *registry) Listeners(listenerType reflect.Type, selectors ...apis.Selector) []any {
	buckets := r.bucketsOf(listenerType)
	var out []any
	if len(selectors) == 0 {
		for _, b := range buckets {
			out = append(out, b.listeners...)
		}
		return out
	}
	for _, sel := range distinct(selectors) {
		for _, b := range buckets {
			if b.selector.Equal(sel) {
				out = append(out, b.listeners...)
				break
			}
		}
	}
	return out
}

// NotifierFor returns a fan-out over the listeners of listenerType
// registered with any of selectors; no selectors means the empty selector.
func (r *registry) NotifierFor(listenerType reflect.Type, selectors ...apis.Selector) (apis.Fanout, error) {
	if listenerType == nil || listenerType.Kind() != reflect.Interface {
		return nil, fmt.Errorf("%w: listener type %v is not an interface", apis.ErrIllegalArgument, listenerType)
	}
	if len(selectors) == 0 {
		selectors = []apis.Selector{apis.NewSelector()}
	}
	listeners := r.Listeners(listenerType, selectors...)
	if len(listeners) == 0 && r.StrictCheckListenerList() {
		return nil, listenersNotFound(listenerType, selectors)
	}
	return &fanout{typ: listenerType, listeners: listeners}, nil
}

// SetStrictCheckListenerList switches strict lookup on or off.
func (r *registry) SetStrictCheckListenerList(strict bool) {
	r.strict.Store(strict)
}

// StrictCheckListenerList reports whether strict lookup is on.
func (r *registry) StrictCheckListenerList() bool {
	return r.strict.Load()
}

// NumberOfRegisteredListeners returns the number of listeners registered now.
func (r *registry) NumberOfRegisteredListeners() int {
	return int(r.registrations.Load() - r.deregistrations.Load())
}

// NumberOfListenerRegistrations returns the number of AddListener calls.
func (r *registry) NumberOfListenerRegistrations() int {
	return int(r.registrations.Load())
}

// NumberOfListenerDeregistrations returns the number of successful RemoveListener calls.
func (r *registry) NumberOfListenerDeregistrations() int {
	return int(r.deregistrations.Load())
}

// AllListenersAreUnregistered reports whether at least one listener was
// registered and every one of them was removed again.
func (r *registry) AllListenersAreUnregistered() bool {
	return r.NumberOfListenerRegistrations() > 0 && r.NumberOfRegisteredListeners() == 0
}

// AllListeners returns every registered listener.
func (r *registry) AllListeners() []any {
	var out []any
	for _, t := range r.typesSnapshot() {
		out = append(out, r.Listeners(t)...)
	}
	return out
}

// ListenersWithSelector returns the keys of all non-empty buckets.
func (r *registry) ListenersWithSelector() []apis.ListenerKey {
	var out []apis.ListenerKey
	for _, t := range r.typesSnapshot() {
		for _, b := range r.bucketsOf(t) {
			out = append(out, apis.ListenerKey{Type: t, Selector: b.selector})
		}
	}
	return out
}

// String returns a short diagnostic description.
func (r *registry) String() string {
	return fmt.Sprintf("ListenerRegistry{mock: %s, registered: %d, registrations: %d, deregistrations: %d}",
		uref.Name(r.observable), r.NumberOfRegisteredListeners(),
		r.NumberOfListenerRegistrations(), r.NumberOfListenerDeregistrations())
}

func distinct(selectors []apis.Selector) []apis.Selector {
	out := make([]apis.Selector, 0, len(selectors))
next:
	for _, s := range selectors {
		for _, seen := range out {
			if seen.Equal(s) {
				continue next
			}
		}
		out = append(out, s)
	}
	return out
}

func listenersNotFound(listenerType reflect.Type, selectors []apis.Selector) error {
	parts := make([]string, len(selectors))
	for i, s := range selectors {
		parts[i] = s.String()
	}
	return fmt.Errorf("%w: no listener registered for %s with selectors [%s]",
		apis.ErrListenersNotFound, uref.TypeName(listenerType), strings.Join(parts, ", "))
}
