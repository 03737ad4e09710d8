// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

// cause unwraps err (as wrapped by errWrap) down to its underlying Status.
func cause(err error) Status {
	s, _ := errors.Cause(err).(Status)
	return s
}

// mustParse parses val in the given base, failing the test on error.
func mustParse(t *testing.T, val string, base int) *Number {
	t.Helper()
	n := New(0)
	if err := n.Parse(val, base, nil); err != nil {
		t.Fatalf("Parse(%q, %d) = %v", val, base, err)
	}
	return n
}

func TestNewIsZero(t *testing.T) {
	n := New(8)
	if !n.IsZero() {
		t.Fatalf("New(8) not zero: %+v", n)
	}
	if n.Neg() {
		t.Fatalf("New(8) has neg set")
	}
}

func TestOneAndTen(t *testing.T) {
	one := New(0)
	one.One()
	if got, err := one.Uint64(); err != nil || got != 1 {
		t.Fatalf("One() = %v, %v; want 1, nil", got, err)
	}

	ten := New(0)
	ten.Ten()
	if got, err := ten.Uint64(); err != nil || got != 10 {
		t.Fatalf("Ten() = %v, %v; want 10, nil", got, err)
	}
}

func TestSetNegOnZeroIsNoOp(t *testing.T) {
	n := New(0)
	n.SetNeg(true)
	if n.Neg() {
		t.Fatalf("SetNeg(true) took effect on zero value")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := mustParse(t, "123.45", 10)
	b := New(0)
	b.Copy(a)
	b.SetNeg(true)

	if a.Neg() {
		t.Fatalf("mutating copy affected source")
	}
	if Cmp(a, b, nil) <= 0 {
		t.Fatalf("expected b < a after negating copy")
	}
}

func TestCopyOntoSelfIsNoOp(t *testing.T) {
	a := mustParse(t, "42", 10)
	a.Copy(a)
	if got, err := a.Uint64(); err != nil || got != 42 {
		t.Fatalf("self-copy corrupted value: %v, %v", got, err)
	}
}

func TestTruncateExtendRoundTrip(t *testing.T) {
	n := mustParse(t, "123.456", 10)
	n.Extend(2)
	if n.Rdx() != 5 {
		t.Fatalf("Extend(2): rdx = %d, want 5", n.Rdx())
	}
	n.Truncate(2)
	if n.Rdx() != 3 {
		t.Fatalf("Truncate(2): rdx = %d, want 3", n.Rdx())
	}
	if Cmp(n, mustParse(t, "123.456", 10), nil) != 0 {
		t.Fatalf("Extend then Truncate changed value")
	}
}

func TestStringAndFormat(t *testing.T) {
	n := mustParse(t, "255", 10)
	n.SetNeg(true)

	if got := n.String(); got != "-255" {
		t.Fatalf("String() = %s, want -255", got)
	}
	if got := fmt.Sprintf("%v", n); got != "-255" {
		t.Fatalf("%%v = %s, want -255", got)
	}
	if got := fmt.Sprintf("%x", n); got != "-ff" {
		t.Fatalf("%%x = %s, want -ff", got)
	}
	if got := fmt.Sprintf("%X", n); got != "-FF" {
		t.Fatalf("%%X = %s, want -FF", got)
	}
}

func TestIntLen(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"0", 0},
		{"7", 1},
		{"123.456", 3},
		{"0.001", 0},
	}
	for _, test := range tests {
		n := mustParse(t, test.val, 10)
		if got := n.IntLen(); got != test.want {
			t.Errorf("IntLen(%q) = %d, want %d", test.val, got, test.want)
		}
	}
}
