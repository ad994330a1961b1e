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

// Invocation is a call recorded by a mocking tool.
type Invocation struct {
	// Method is the called method name.
	Method string
	// Args holds the arguments as the tool recorded them.
	Args []any
}

// RegistrationHandler adapts one mocking tool.
type RegistrationHandler interface {
	// CanHandle reports whether mock was produced by the tool.
	CanHandle(mock any) bool
	// RegisterInMock stubs d.Source on the mock owned by c so that every future
	// call is redirected to d.Destination.
	RegisterInMock(c ListenerContainer, d RegistrationDelegate) error
	// PreviousRegistrations returns the calls already made on mock in call
	// order. Tools without call history return nil.
	PreviousRegistrations(mock any) []Invocation
}

// SyntheticMethodFilter is implemented by handlers whose mocks carry methods
// generated or promoted by the tool itself. Those methods are hidden from
// detection.
type SyntheticMethodFilter interface {
	IsSyntheticMethod(name string) bool
}
