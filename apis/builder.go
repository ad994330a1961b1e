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

import "log/slog"

// NotifierFactory creates notifiers for mocks.
type NotifierFactory interface {
	// Create returns a notifier for mock, configured by settings.
	Create(mock any, settings Settings) (Notifier, error)
}

// Builder composes a NotifierFactory from detectors and registration handlers.
// Implementations may reuse state from the previous factory (prev), or ignore it.
type Builder interface {
	// BuildFactory constructs a NotifierFactory. Detectors and handlers are
	// tried in the given order. A nil logger means slog.Default().
	BuildFactory(detectors []Detector, handlers []RegistrationHandler, prev NotifierFactory, logger *slog.Logger) NotifierFactory
}
