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

// Package factory creates notifiers for mocks: it detects the registration
// methods of a mock, redirects them into a fresh listener registry and
// builds the notifier on top of it.
package factory

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"dirpx.dev/mocknotify/apis"
	"dirpx.dev/mocknotify/detector"
	"dirpx.dev/mocknotify/mocking"
	"dirpx.dev/mocknotify/registry"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// Factory creates notifiers. It is immutable and safe for concurrent use.
type Factory struct {
	detectors *detector.Chain
	handlers  *mocking.Chain
	logger    *slog.Logger
}

// Compile-time check: *Factory must satisfy apis.NotifierFactory.
var _ apis.NotifierFactory = (*Factory)(nil)

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger. nil means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		f.logger = l
	}
}

// New builds a Factory. detectors are tried in order, as are handlers.
func New(detectors []apis.Detector, handlers []apis.RegistrationHandler, opts ...Option) *Factory {
	f := &Factory{
		detectors: detector.NewChain(detectors...),
		handlers:  mocking.NewChain(handlers...),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	return f
}

// Create returns a notifier for mock.
//
// Registration methods are detected first, so a mock without any fails with
// ErrRegistrationMethodsNotDetected even if no mocking tool recognizes it.
// Registrations the mocking tool recorded before are replayed into the new
// registry, then every registration method is stubbed to redirect into it.
func (f *Factory) Create(mock any, settings apis.Settings) (apis.Notifier, error) {
	if mock == nil {
		return nil, fmt.Errorf("%w: mock is nil", apis.ErrIllegalArgument)
	}

	handler, handlerErr := f.handlers.Find(mock)
	var skip func(string) bool
	if filter, ok := handler.(apis.SyntheticMethodFilter); ok {
		skip = filter.IsSyntheticMethod
	}

	methods := make([]apis.Method, 0)
	for _, m := range uref.ReachableMethods(mock, skip) {
		methods = append(methods, apis.MethodOf(m, true))
	}
	def, err := f.detectors.DetectFor(mock, methods)
	if err != nil {
		return nil, err
	}
	if handlerErr != nil {
		return nil, handlerErr
	}

	reg := registry.New(mock, settings.StrictCheckListenerList)
	replayed, err := f.replay(reg, handler, def.Registrations())
	if err != nil {
		return nil, err
	}
	for _, d := range def.Registrations() {
		if err := handler.RegisterInMock(reg, d); err != nil {
			return nil, fmt.Errorf("stub %s on %s: %w", d.Source.Name, uref.Name(mock), err)
		}
	}

	n := newNotifier(uuid.New(), reg, def, settings)
	f.logger.Debug("notifier created",
		"notifier_id", n.ID(),
		"mock", uref.Name(mock),
		"handler", uref.Name(handler),
		"listeners", typeNames(def),
		"stubbed_methods", len(def.Registrations()),
		"replayed", replayed,
		"strict", settings.StrictCheckListenerList,
		"implement_listeners", settings.ImplementListenerInterfaces)
	return n, nil
}

// replay passes registrations recorded before the registry existed through
// the matching delegate. It returns the number of replayed calls.
func (f *Factory) replay(reg apis.ListenerRegistry, h apis.RegistrationHandler, delegates []apis.RegistrationDelegate) (int, error) {
	replayed := 0
	for _, inv := range h.PreviousRegistrations(reg.ObservableMock()) {
		for _, d := range delegates {
			if d.Source.Name != inv.Method {
				continue
			}
			args := d.Source.Flatten(inv.Args)
			if !d.Source.Accepts(args) {
				continue
			}
			if _, err := d.Destination(reg, d.Source, args); err != nil {
				return replayed, fmt.Errorf("replay %s: %w", d.Source, err)
			}
			f.logger.Debug("registration replayed", "method", inv.Method, "args", len(args))
			replayed++
			break
		}
	}
	return replayed, nil
}

func typeNames(def apis.ListenersDefinition) []string {
	listeners := def.DetectedListeners()
	out := make([]string, len(listeners))
	for i, t := range listeners {
		out[i] = uref.TypeName(t)
	}
	return out
}
