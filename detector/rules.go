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

// Package detector recognizes listener registration methods of mocked types.
package detector

import (
	"reflect"

	"dirpx.dev/mocknotify/apis"
)

// Rules is a Detector driven by predicates.
//
// A parameter is a listener parameter if its type is an interface and
// IsListenerType holds. Methods with at least one listener parameter are
// classified by IsAddMethod and IsRemoveMethod; all other parameters form
// the selector, in declaration order.
type Rules struct {
	// Label names the detector in diagnostics.
	Label string
	// IsListenerType reports whether parameter type t of m is a listener.
	IsListenerType func(t reflect.Type, m apis.Method) bool
	// IsAddMethod reports whether m registers listeners.
	IsAddMethod func(m apis.Method) bool
	// IsRemoveMethod reports whether m deregisters listeners.
	IsRemoveMethod func(m apis.Method) bool
	// AdditionalInterfaces are added when a listener was detected. Optional.
	AdditionalInterfaces func() []apis.AdditionalInterface
	// NotificationDelegates are added when a listener was detected. Optional.
	NotificationDelegates func() []apis.NotificationDelegate
}

// EntityName returns the detector label.
func (r *Rules) EntityName() string {
	if r.Label == "" {
		return "Rules"
	}
	return r.Label
}

// Detect implements apis.Detector.
func (r *Rules) Detect(methods []apis.Method) (apis.ListenersDefinition, error) {
	def := NewDefinition()
	for _, m := range methods {
		p := r.parameters(m)
		if p == nil {
			continue
		}
		switch {
		case r.IsAddMethod != nil && r.IsAddMethod(m):
			def.AddRegistration(apis.RegistrationDelegate{Source: m, Destination: p.add})
			for _, t := range p.listenerTypes() {
				if err := def.AddDetectedListener(t); err != nil {
					return nil, err
				}
			}
		case r.IsRemoveMethod != nil && r.IsRemoveMethod(m):
			def.AddRegistration(apis.RegistrationDelegate{Source: m, Destination: p.remove})
		}
	}

	if !def.HasListenerDetected() {
		return def, nil
	}
	if r.AdditionalInterfaces != nil {
		for _, ai := range r.AdditionalInterfaces() {
			if err := def.AddAdditionalInterface(ai); err != nil {
				return nil, err
			}
		}
	}
	if r.NotificationDelegates != nil {
		for _, n := range r.NotificationDelegates() {
			def.AddNotification(n)
		}
	}
	return def, nil
}

// parameters returns nil if m has no listener parameter.
func (r *Rules) parameters(m apis.Method) *parameters {
	p := &parameters{method: m}
	for i, t := range m.In {
		if t.Kind() == reflect.Interface && r.IsListenerType != nil && r.IsListenerType(t, m) {
			p.listeners = append(p.listeners, i)
			continue
		}
		p.selectors = append(p.selectors, i)
	}
	if len(p.listeners) == 0 {
		return nil
	}
	return p
}
