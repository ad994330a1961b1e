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

package config

import (
	"dirpx.dev/mocknotify/apis"
)

const (
	// DefaultStrictCheckListenerList represents the default for StrictCheckListenerList.
	// When true, notifying a listener type without registered listeners fails.
	DefaultStrictCheckListenerList = true
	// DefaultImplementListenerInterfaces represents the default for ImplementListenerInterfaces.
	// When true, a notifier can act as every detected listener type.
	DefaultImplementListenerInterfaces = true
)

// NewSettings constructs apis.Settings from the default settings and opts.
func NewSettings(opts ...Option) apis.Settings {
	return Apply(DefaultSettings(), opts...)
}

// DefaultSettings are the settings used when none are provided.
func DefaultSettings() apis.Settings {
	return apis.Settings{
		StrictCheckListenerList:     DefaultStrictCheckListenerList,
		ImplementListenerInterfaces: DefaultImplementListenerInterfaces,
	}
}

// Apply returns a copy of base with opts applied. base itself is not changed.
func Apply(base apis.Settings, opts ...Option) apis.Settings {
	s := base
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// Option is a functional option that mutates apis.Settings during construction.
type Option func(*apis.Settings)

// WithStrictCheckListenerList sets the StrictCheckListenerList option.
func WithStrictCheckListenerList(strict bool) Option {
	return func(s *apis.Settings) {
		s.StrictCheckListenerList = strict
	}
}

// StrictListenerListCheck is WithStrictCheckListenerList(true).
func StrictListenerListCheck() Option {
	return WithStrictCheckListenerList(true)
}

// LenientListenerListCheck is WithStrictCheckListenerList(false).
func LenientListenerListCheck() Option {
	return WithStrictCheckListenerList(false)
}

// WithImplementListenerInterfaces sets the ImplementListenerInterfaces option.
func WithImplementListenerInterfaces(implement bool) Option {
	return func(s *apis.Settings) {
		s.ImplementListenerInterfaces = implement
	}
}

// ImplementListenerInterfaces is WithImplementListenerInterfaces(true).
func ImplementListenerInterfaces() Option {
	return WithImplementListenerInterfaces(true)
}

// IgnoreListenerInterfaces is WithImplementListenerInterfaces(false).
func IgnoreListenerInterfaces() Option {
	return WithImplementListenerInterfaces(false)
}
