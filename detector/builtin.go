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
	"reflect"
	"regexp"
	"strings"

	"dirpx.dev/mocknotify/apis"
	"dirpx.dev/mocknotify/beans"
	"dirpx.dev/mocknotify/observer"
)

const (
	// DefaultListenerPattern matches listener type names of the typical style.
	DefaultListenerPattern = `^.*Listener$`
	// DefaultAddPattern matches add methods of the typical style.
	DefaultAddPattern = `^Add(.*)Listeners?$`
	// DefaultRemovePattern matches remove methods of the typical style.
	DefaultRemovePattern = `^Remove(.*)Listeners?$`
)

const (
	addPropertyChangeListener    = "AddPropertyChangeListener"
	removePropertyChangeListener = "RemovePropertyChangeListener"
)

// Defaults returns the built-in detectors in their default order:
// property-change, typical, observable.
func Defaults() []apis.Detector {
	return []apis.Detector{
		NewPropertyChangeDetector(),
		NewTypicalListenerDetector(),
		NewObservableDetector(),
	}
}

// NewPropertyChangeDetector detects beans.PropertyChangeListener registration.
//
// Add methods are named AddPropertyChangeListener* and take the listener,
// optionally preceded by a property name:
//
//	AddPropertyChangeListener(l beans.PropertyChangeListener)
//	AddPropertyChangeListenerFor(name string, l beans.PropertyChangeListener)
//
// Remove methods are symmetric. The notifier implements beans.PropertyChangeNotifier.
func NewPropertyChangeDetector() *Rules {
	return &Rules{
		Label: "PropertyChangeDetector",
		IsListenerType: func(t reflect.Type, _ apis.Method) bool {
			return t.Implements(beans.ListenerType)
		},
		IsAddMethod: func(m apis.Method) bool {
			return strings.HasPrefix(m.Name, addPropertyChangeListener) && propertyChangeShape(m)
		},
		IsRemoveMethod: func(m apis.Method) bool {
			return strings.HasPrefix(m.Name, removePropertyChangeListener) && propertyChangeShape(m)
		},
		AdditionalInterfaces: func() []apis.AdditionalInterface {
			return []apis.AdditionalInterface{beans.NotifierInterface()}
		},
	}
}

func propertyChangeShape(m apis.Method) bool {
	if m.Variadic {
		return false
	}
	switch len(m.In) {
	case 1:
		return true
	case 2:
		return m.In[0].Kind() == reflect.String
	default:
		return false
	}
}

// NewObservableDetector detects observer.Observer registration through
// AddObserver and DeleteObserver. The notifier implements
// observer.ObservableNotifier.
func NewObservableDetector() *Rules {
	return &Rules{
		Label: "ObservableDetector",
		IsListenerType: func(t reflect.Type, _ apis.Method) bool {
			return t == observer.ObserverType
		},
		IsAddMethod: func(m apis.Method) bool {
			return m.Name == "AddObserver"
		},
		IsRemoveMethod: func(m apis.Method) bool {
			return m.Name == "DeleteObserver"
		},
		AdditionalInterfaces: func() []apis.AdditionalInterface {
			return []apis.AdditionalInterface{observer.NotifierInterface()}
		},
		NotificationDelegates: observer.NotificationDelegates,
	}
}

// TypicalOption configures NewTypicalListenerDetector.
type TypicalOption func(*typical)

type typical struct {
	listener *regexp.Regexp
	add      *regexp.Regexp
	remove   *regexp.Regexp
}

// WithListenerPattern sets the pattern listener type names must match.
func WithListenerPattern(re *regexp.Regexp) TypicalOption {
	return func(t *typical) {
		if re != nil {
			t.listener = re
		}
	}
}

// WithAddPattern sets the pattern add method names must match.
func WithAddPattern(re *regexp.Regexp) TypicalOption {
	return func(t *typical) {
		if re != nil {
			t.add = re
		}
	}
}

// WithRemovePattern sets the pattern remove method names must match.
func WithRemovePattern(re *regexp.Regexp) TypicalOption {
	return func(t *typical) {
		if re != nil {
			t.remove = re
		}
	}
}

var (
	defaultListenerRe = regexp.MustCompile(DefaultListenerPattern)
	defaultAddRe      = regexp.MustCompile(DefaultAddPattern)
	defaultRemoveRe   = regexp.MustCompile(DefaultRemovePattern)
)

// NewTypicalListenerDetector detects AddXxxListener / RemoveXxxListener
// methods taking interfaces named XxxListener. The notifier gets no
// additional interface; it can act as the detected listener types instead.
func NewTypicalListenerDetector(opts ...TypicalOption) *Rules {
	cfg := typical{listener: defaultListenerRe, add: defaultAddRe, remove: defaultRemoveRe}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Rules{
		Label: "TypicalListenerDetector",
		IsListenerType: func(t reflect.Type, _ apis.Method) bool {
			return cfg.listener.MatchString(t.Name())
		},
		IsAddMethod: func(m apis.Method) bool {
			return cfg.add.MatchString(m.Name)
		},
		IsRemoveMethod: func(m apis.Method) bool {
			return cfg.remove.MatchString(m.Name)
		},
	}
}
