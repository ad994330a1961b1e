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

package builder

import (
	"log/slog"

	"dirpx.dev/mocknotify/apis"
	"dirpx.dev/mocknotify/factory"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildFactory builds a factory.Factory over the given detectors and
// handlers. The previous factory carries no state worth keeping.
func (b *builder) BuildFactory(detectors []apis.Detector, handlers []apis.RegistrationHandler, _ apis.NotifierFactory, logger *slog.Logger) apis.NotifierFactory {
	return factory.New(detectors, handlers, factory.WithLogger(logger))
}
