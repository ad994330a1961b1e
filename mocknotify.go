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
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"dirpx.dev/mocknotify/apis"
	"dirpx.dev/mocknotify/builder"
	"dirpx.dev/mocknotify/config"
	"dirpx.dev/mocknotify/detector"
	"dirpx.dev/mocknotify/mocking"
)

// init initializes the global state.
func init() {
	st.Store(defaultState(builder.New()))
}

// ErrNilFactory is returned when a builder returns a nil factory.
var ErrNilFactory = errors.New("mocknotify: builder returned nil factory")

// state is an immutable snapshot of the process-wide configuration.
type state struct {
	settings  apis.Settings
	detectors []apis.Detector
	handlers  []apis.RegistrationHandler
	logger    *slog.Logger
	bld       apis.Builder
	fac       apis.NotifierFactory
}

var (
	// st holds the current snapshot. Readers never lock.
	st atomic.Pointer[state]
	// buildMu serializes writers.
	buildMu sync.Mutex
)

func defaultState(b apis.Builder) *state {
	s := &state{
		settings:  config.DefaultSettings(),
		detectors: detector.Defaults(),
		handlers:  mocking.Defaults(),
		bld:       b,
	}
	s.fac = b.BuildFactory(s.detectors, s.handlers, nil, nil)
	if s.fac == nil {
		panic(ErrNilFactory)
	}
	return s
}

// update builds the next state from a copy of the current one and stores it.
// The factory is rebuilt if rebuild is true.
func update(rebuild bool, mutate func(s *state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.detectors = append([]apis.Detector(nil), old.detectors...)
	next.handlers = append([]apis.RegistrationHandler(nil), old.handlers...)
	mutate(&next)

	if rebuild {
		next.fac = next.bld.BuildFactory(next.detectors, next.handlers, old.fac, next.logger)
		if next.fac == nil {
			panic(ErrNilFactory)
		}
	}
	st.Store(&next)
}

// CreateNotifierFor returns a notifier for mock using the global detectors,
// handlers and settings. opts adjust a copy of the global settings for this
// call only.
func CreateNotifierFor(mock any, opts ...config.Option) (apis.Notifier, error) {
	s := st.Load()
	return s.fac.Create(mock, config.Apply(s.settings, opts...))
}

// MustCreateNotifierFor is like CreateNotifierFor but panics on error.
func MustCreateNotifierFor(mock any, opts ...config.Option) apis.Notifier {
	n, err := CreateNotifierFor(mock, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// RegisterListenerDefinitionDetector adds d in front of all detectors, so the
// last registered detector is tried first. nil is ignored.
func RegisterListenerDefinitionDetector(d apis.Detector) {
	if d == nil {
		return
	}
	update(true, func(s *state) {
		s.detectors = append([]apis.Detector{d}, s.detectors...)
	})
}

// RegisterListenerRegistrationHandler adds h after all handlers. nil is ignored.
func RegisterListenerRegistrationHandler(h apis.RegistrationHandler) {
	if h == nil {
		return
	}
	update(true, func(s *state) {
		s.handlers = append(s.handlers, h)
	})
}

// UpdateNotifierSettings applies opts to the global settings.
// Notifiers created before are not affected.
func UpdateNotifierSettings(opts ...config.Option) {
	update(false, func(s *state) {
		s.settings = config.Apply(s.settings, opts...)
	})
}

// Settings returns the global settings.
func Settings() apis.Settings {
	return st.Load().settings
}

// Detectors returns the global detectors in priority order.
func Detectors() []apis.Detector {
	return append([]apis.Detector(nil), st.Load().detectors...)
}

// Handlers returns the global registration handlers in order.
func Handlers() []apis.RegistrationHandler {
	return append([]apis.RegistrationHandler(nil), st.Load().handlers...)
}

// SetLogger sets the logger of notifier creation. nil means slog.Default().
func SetLogger(l *slog.Logger) {
	update(true, func(s *state) {
		s.logger = l
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds the factory with it.
// nil is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(true, func(s *state) {
		s.bld = b
	})
}

// Reset restores the default detectors, handlers, settings, logger and
// builder. Tests changing the global state should call it in t.Cleanup.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(defaultState(builder.New()))
}
