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

package apis

import "reflect"

// ListenerContainer is the mutation side of a listener registry. Registration
// delegates only need this view of it.
type ListenerContainer interface {
	// ObservableMock returns the mock the registry belongs to.
	ObservableMock() any
	// AddListener appends listener to the bucket (listenerType, selector).
	AddListener(selector Selector, listenerType reflect.Type, listener any)
	// RemoveListener removes one equal occurrence of listener from the bucket
	// (listenerType, selector). Removing an absent listener is a no-op.
	RemoveListener(selector Selector, listenerType reflect.Type, listener any)
}

// ListenersNotifier is the query and notification side of a listener registry.
// Every notifier exposes it.
type ListenersNotifier interface {
	// NotifierFor returns a fan-out over the listeners of listenerType registered
	// with any of selectors. No selectors means the empty selector.
	NotifierFor(listenerType reflect.Type, selectors ...Selector) (Fanout, error)
	// SetStrictCheckListenerList switches strict lookup on or off.
	SetStrictCheckListenerList(strict bool)
	// StrictCheckListenerList reports whether strict lookup is on.
	StrictCheckListenerList() bool
	// ObservableMock returns the mock this notifier was created for.
	ObservableMock() any

	NumberOfRegisteredListeners() int
	NumberOfListenerRegistrations() int
	NumberOfListenerDeregistrations() int
	// AllListenersAreUnregistered reports whether at least one listener was
	// registered and none is registered now.
	AllListenersAreUnregistered() bool

	// AllListeners returns every registered listener.
	AllListeners() []any
	// Listeners returns the listeners of listenerType registered with any of
	// selectors, or with any selector at all when none is given.
	Listeners(listenerType reflect.Type, selectors ...Selector) []any
	// ListenersWithSelector returns the keys of all non-empty buckets.
	ListenersWithSelector() []ListenerKey
}

// ListenerRegistry stores listeners keyed by listener type and selector.
type ListenerRegistry interface {
	ListenerContainer
	ListenersNotifier
}

// Fanout forwards a method call to every listener of one listener type.
type Fanout interface {
	// ListenerType returns the listener interface type.
	ListenerType() reflect.Type
	// Listeners returns the listeners the call goes to, in call order.
	Listeners() []any
	// Call invokes method with args on every listener in order and returns the
	// results of the last invocation. A trailing error result is returned as
	// err and stops the fan-out when non-nil.
	Call(method string, args ...any) ([]any, error)
}
