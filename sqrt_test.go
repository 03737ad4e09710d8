// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "testing"

func TestSqrt(t *testing.T) {
	tests := []struct {
		x     string
		scale int
		want  string
	}{
		{"2", 50, "1.41421356237309504880168872420969807856967187537694"},
		{"4", 0, "2"},
		{"0", 5, "0"},
		{"1", 10, "1.0000000000"},
		{"0.25", 2, "0.50"},
	}
	for _, test := range tests {
		x := mustParse(t, test.x, 10)
		z := New(0)
		if err := z.Sqrt(x, test.scale, nil); err != nil {
			t.Fatalf("Sqrt(%s) error: %v", test.x, err)
		}
		if got := numString(t, z); got != test.want {
			t.Errorf("Sqrt(%s) scale %d = %s, want %s", test.x, test.scale, got, test.want)
		}
	}
}

func TestSqrtNegative(t *testing.T) {
	x := mustParse(t, "4", 10)
	x.SetNeg(true)
	z := New(0)
	err := z.Sqrt(x, 5, nil)
	if cause := cause(err); cause != StatusNegSqrt {
		t.Fatalf("Sqrt(-4): cause = %v, want StatusNegSqrt", cause)
	}
}

func TestSqrtAliasing(t *testing.T) {
	x := mustParse(t, "4", 10)
	if err := x.Sqrt(x, 0, nil); err != nil {
		t.Fatal(err)
	}
	if got := numString(t, x); got != "2" {
		t.Fatalf("x.Sqrt(x) = %s, want 2", got)
	}
}
