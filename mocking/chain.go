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

// Package mocking adapts mocking tools: it stubs registration methods of a
// mock so that calls reach the listener registry.
package mocking

import (
	"fmt"
	"strings"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// Defaults returns the built-in handlers: testify, then gomock.
func Defaults() []apis.RegistrationHandler {
	return []apis.RegistrationHandler{
		NewTestifyHandler(),
		NewGomockHandler(),
	}
}

// Chain selects the handler for a mock. The first handler accepting the mock
// wins.
type Chain struct {
	handlers []apis.RegistrationHandler
}

// NewChain builds a chain from handlers, skipping nils.
func NewChain(handlers ...apis.RegistrationHandler) *Chain {
	c := &Chain{handlers: make([]apis.RegistrationHandler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			c.handlers = append(c.handlers, h)
		}
	}
	return c
}

// Handlers returns the handlers in order.
func (c *Chain) Handlers() []apis.RegistrationHandler {
	return append([]apis.RegistrationHandler(nil), c.handlers...)
}

// Find returns the first handler accepting mock or ErrMockingToolNotDetected.
func (c *Chain) Find(mock any) (apis.RegistrationHandler, error) {
	if mock != nil {
		for _, h := range c.handlers {
			if h.CanHandle(mock) {
				return h, nil
			}
		}
	}
	names := make([]string, len(c.handlers))
	for i, h := range c.handlers {
		names[i] = uref.Name(h)
	}
	return nil, fmt.Errorf("%w: %s is not a mock of any of [%s]",
		apis.ErrMockingToolNotDetected, uref.Name(mock), strings.Join(names, ", "))
}

// implementationPanic reports a failing registration delegate. Stubs have no
// error channel back to the code under test.
func implementationPanic(d apis.RegistrationDelegate, err error) {
	panic(fmt.Errorf("%w: registration %s failed: %w", apis.ErrImplementation, d.Source, err))
}
