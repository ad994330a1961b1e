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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	uref "dirpx.dev/mocknotify/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}
type W[T any] struct{ V T }

type named struct{}

func (named) EntityName() string { return "custom" }

func TestNormalize_BasicContainers(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"slice", reflect.TypeOf([]A{}), reflect.TypeOf(A{})},
		{"array", reflect.TypeOf([2]A{}), reflect.TypeOf(A{})},
		{"chan", reflect.TypeOf((chan A)(nil)), reflect.TypeOf(A{})},
		{"map elem", reflect.TypeOf(map[string]A{}), reflect.TypeOf(A{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, uref.DefaultMaxUnwrap)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	tPP := reflect.TypeOf((**A)(nil))

	if _, err := uref.Normalize(tPP, 1); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("maxUnwrap=1: got %v, want ErrReflectTypeNotNamed", err)
	}
	if got, err := uref.Normalize(tPP, 0); err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("maxUnwrap=0 (default): got (%v,%v), want (A,nil)", got, err)
	}
}

func TestNormalize_Errors(t *testing.T) {
	if _, err := uref.Normalize(nil, 0); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: got %v, want ErrReflectNilType", err)
	}
	anon := struct{ X int }{}
	if _, err := uref.Normalize(reflect.TypeOf(anon), 0); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("anonymous struct: got %v, want ErrReflectTypeNotNamed", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf(map[string]struct{ X int }{}), 0); err == nil {
		t.Fatalf("map of anonymous struct: expected error, got nil")
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"nil", nil, "nil"},
		{"struct", reflect.TypeOf(A{}), "reflect_test.A"},
		{"ptr", reflect.TypeOf(&A{}), "reflect_test.A"},
		{"generic", reflect.TypeOf(G[int]{}), "reflect_test.G"},
		{"interface", reflect.TypeFor[error](), "error"},
		{"builtin", reflect.TypeOf(0), "int"},
		{"anonymous", reflect.TypeOf(struct{}{}), "struct {}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.TypeName(tc.typ); got != tc.want {
				t.Fatalf("TypeName(%v) = %q, want %q", tc.typ, got, tc.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	if got := uref.Name(nil); got != "nil" {
		t.Fatalf("Name(nil) = %q", got)
	}
	if got := uref.Name(named{}); got != "custom" {
		t.Fatalf("Name(named{}) = %q, want custom", got)
	}
	if got := uref.Name(&A{}); got != "reflect_test.A" {
		t.Fatalf("Name(&A{}) = %q, want reflect_test.A", got)
	}
}

// TypeName is pure; this only smoke-tests it under the race detector.
func TestTypeName_Concurrent(t *testing.T) {
	want := map[reflect.Type]string{
		reflect.TypeOf(A{}):            "reflect_test.A",
		reflect.TypeOf(&A{}):           "reflect_test.A",
		reflect.TypeOf([]A{}):          "reflect_test.A",
		reflect.TypeOf(map[string]A{}): "reflect_test.A",
		reflect.TypeOf(G[int]{}):       "reflect_test.G",
		reflect.TypeOf(W[G[int]]{}):    "reflect_test.W",
		reflect.TypeOf(0):              "int",
	}
	types := make([]reflect.Type, 0, len(want))
	for typ := range want {
		types = append(types, typ)
	}

	var wg sync.WaitGroup
	for w := 0; w < runtime.GOMAXPROCS(0)*4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				typ := types[(w+i)%len(types)]
				if got := uref.TypeName(typ); got != want[typ] {
					t.Errorf("TypeName(%v) = %q, want %q", typ, got, want[typ])
					return
				}
			}
		}(w)
	}
	wg.Wait()
}

func BenchmarkTypeName(b *testing.B) {
	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&A{}),
		reflect.TypeOf(map[string]A{}),
		reflect.TypeOf(G[int]{}),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = uref.TypeName(types[i%len(types)])
	}
}
