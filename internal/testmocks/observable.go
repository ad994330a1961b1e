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

// Package testmocks holds observables, listeners and their mocks shared by
// the tests of this module.
package testmocks

import (
	"sync"

	"dirpx.dev/mocknotify/beans"
	"dirpx.dev/mocknotify/observer"
)

// MyListener is a listener of the typical style.
type MyListener interface {
	SomethingChanged(value int)
}

// MyAnotherListener is a listener of the typical style that may fail.
type MyAnotherListener interface {
	SomethingOtherChanged(name string) error
}

// VoteListener returns a value per notification.
type VoteListener interface {
	Vote(topic string) int
}

// Observable has listeners of every built-in style.
type Observable interface {
	AddMyListener(l MyListener)
	RemoveMyListener(l MyListener)
	AddKeyedListener(key string, l MyListener, more ...string)
	RemoveKeyedListener(key string, l MyListener, more ...string)
	AddMyAnotherListener(l MyAnotherListener)
	RemoveMyAnotherListener(l MyAnotherListener)
	AddVoteListener(l VoteListener) error
	RemoveVoteListener(l VoteListener) error

	AddPropertyChangeListener(l beans.PropertyChangeListener)
	AddPropertyChangeListenerFor(name string, l beans.PropertyChangeListener)
	RemovePropertyChangeListener(l beans.PropertyChangeListener)
	RemovePropertyChangeListenerFor(name string, l beans.PropertyChangeListener)

	AddObserver(o observer.Observer)
	DeleteObserver(o observer.Observer)

	Name() string
}

// NoListeners has no registration method at all.
type NoListeners interface {
	Name() string
	Size() int
}

// Component is a piece of code under test that registers itself on an
// Observable and records what it receives.
type Component struct {
	mu       sync.Mutex
	Values   []int
	Names    []string
	Events   []*beans.PropertyChangeEvent
	Updates  []any
	Sources  []observer.Observable
	vote     int
	otherErr error
}

// NewComponent returns a component answering votes with vote and returning
// otherErr from SomethingOtherChanged.
func NewComponent(vote int, otherErr error) *Component {
	return &Component{vote: vote, otherErr: otherErr}
}

func (c *Component) SomethingChanged(value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Values = append(c.Values, value)
}

func (c *Component) SomethingOtherChanged(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Names = append(c.Names, name)
	return c.otherErr
}

func (c *Component) Vote(string) int {
	return c.vote
}

func (c *Component) PropertyChange(evt *beans.PropertyChangeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Events = append(c.Events, evt)
}

func (c *Component) Update(o observer.Observable, arg any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sources = append(c.Sources, o)
	c.Updates = append(c.Updates, arg)
}

// Attach registers c as every kind of listener on o.
func (c *Component) Attach(o Observable) {
	o.AddMyListener(c)
	o.AddKeyedListener("key", c, "a", "b")
	o.AddMyAnotherListener(c)
	_ = o.AddVoteListener(c)
	o.AddPropertyChangeListener(c)
	o.AddPropertyChangeListenerFor("prop", c)
	o.AddObserver(c)
}

// Detach undoes Attach.
func (c *Component) Detach(o Observable) {
	o.RemoveMyListener(c)
	o.RemoveKeyedListener("key", c, "a", "b")
	o.RemoveMyAnotherListener(c)
	_ = o.RemoveVoteListener(c)
	o.RemovePropertyChangeListener(c)
	o.RemovePropertyChangeListenerFor("prop", c)
	o.DeleteObserver(c)
}
