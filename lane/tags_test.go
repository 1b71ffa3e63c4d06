// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lane

import "testing"

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"int32/128", Of[int32](FixedTag128{}).Lanes(), 4},
		{"int32/256", Of[int32](FixedTag256{}).Lanes(), 8},
		{"int32/512", Of[int32](FixedTag512{}).Lanes(), 16},
		{"int64/256", Of[int64](FixedTag256{}).Lanes(), 4},
		{"int8/512", Of[int8](FixedTag512{}).Lanes(), 64},
		{"int16/scalar", Of[int16](ScalarTag{}).Lanes(), 1},
		{"zero desc", Desc[int32]{}.Lanes(), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: Lanes() = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestFixedRange(t *testing.T) {
	for _, n := range []int{0, -1, MaxLaneCount + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Fixed(%d) did not panic", n)
				}
			}()
			Fixed[int32](n)
		}()
	}
	if got := Fixed[int32](MaxLaneCount).Lanes(); got != MaxLaneCount {
		t.Errorf("Fixed(%d).Lanes() = %d", MaxLaneCount, got)
	}
}

func TestScalableMatchesDispatch(t *testing.T) {
	if CurrentWidth() == 0 {
		t.Fatal("CurrentWidth() is 0; dispatch init did not run")
	}
	if got, want := Scalable[int32]().Lanes(), CurrentWidth()/4; got != want {
		t.Errorf("Scalable[int32]().Lanes() = %d, want %d", got, want)
	}
	if got, want := MaxLanes[int64](), CurrentWidth()/8; got != want {
		t.Errorf("MaxLanes[int64]() = %d, want %d", got, want)
	}
	if CurrentName() == "unknown" {
		t.Errorf("CurrentName() = %q", CurrentName())
	}
	t.Logf("dispatch level %s, width %d bytes", CurrentName(), CurrentWidth())
}

func TestDescString(t *testing.T) {
	if got := Fixed[int32](8).String(); got != "8xint32" {
		t.Errorf("String() = %q, want %q", got, "8xint32")
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("LANES_NO_SIMD", "")
	if NoSimdEnv() {
		t.Error("NoSimdEnv() true with empty variable")
	}
	t.Setenv("LANES_NO_SIMD", "false")
	if NoSimdEnv() {
		t.Error("NoSimdEnv() true with \"false\"")
	}
	t.Setenv("LANES_NO_SIMD", "yes")
	if !NoSimdEnv() {
		t.Error("NoSimdEnv() false with \"yes\"")
	}
}
