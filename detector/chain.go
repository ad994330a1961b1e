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

package detector

import (
	"fmt"
	"strings"

	"dirpx.dev/mocknotify/apis"
	uref "dirpx.dev/mocknotify/utils/reflect"
)

// Chain runs detectors in order. A method claimed by one detector is not
// offered to the following ones.
type Chain struct {
	detectors []apis.Detector
}

// NewChain builds a chain from detectors, skipping nils.
func NewChain(detectors ...apis.Detector) *Chain {
	c := &Chain{detectors: make([]apis.Detector, 0, len(detectors))}
	for _, d := range detectors {
		if d != nil {
			c.detectors = append(c.detectors, d)
		}
	}
	return c
}

// Detectors returns the detectors in order.
func (c *Chain) Detectors() []apis.Detector {
	return append([]apis.Detector(nil), c.detectors...)
}

// Detect implements apis.Detector. It fails with
// ErrRegistrationMethodsNotDetected if no method was claimed.
func (c *Chain) Detect(methods []apis.Method) (apis.ListenersDefinition, error) {
	return c.DetectFor(nil, methods)
}

// DetectFor is Detect with the mocked object named in errors.
func (c *Chain) DetectFor(mock any, methods []apis.Method) (apis.ListenersDefinition, error) {
	merged := NewDefinition()
	pool := append([]apis.Method(nil), methods...)
	for _, d := range c.detectors {
		def, err := d.Detect(pool)
		if err != nil {
			return nil, fmt.Errorf("detector %s: %w", uref.Name(d), err)
		}
		// A definition without a listener claims nothing, not even its
		// removal methods.
		if def == nil || !def.HasListenerDetected() {
			continue
		}
		if err := merged.Merge(def); err != nil {
			return nil, fmt.Errorf("detector %s: %w", uref.Name(d), err)
		}
		pool = unclaimed(pool, def.Registrations())
	}

	if len(merged.Registrations()) == 0 {
		return nil, fmt.Errorf("%w: mock %s, detectors [%s]",
			apis.ErrRegistrationMethodsNotDetected, uref.Name(mock), c.names())
	}
	return merged, nil
}

// EntityName returns "Chain".
func (c *Chain) EntityName() string {
	return "Chain"
}

func (c *Chain) names() string {
	names := make([]string, len(c.detectors))
	for i, d := range c.detectors {
		names[i] = uref.Name(d)
	}
	return strings.Join(names, ", ")
}

func unclaimed(pool []apis.Method, claimed []apis.RegistrationDelegate) []apis.Method {
	out := pool[:0:0]
next:
	for _, m := range pool {
		for _, r := range claimed {
			if r.Source.Equal(m) {
				continue next
			}
		}
		out = append(out, m)
	}
	return out
}
