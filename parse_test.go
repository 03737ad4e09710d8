// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "testing"

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		val  string
		want string
	}{
		{"0", "0"},
		{"007", "7"},
		{"123.456", "123.456"},
		{"0.5", "0.5"},
		{".5", "0.5"},
		{"000.000", "0"},
		{"", "0"},
	}
	for _, test := range tests {
		n := mustParse(t, test.val, 10)
		if got := numString(t, n); got != test.want {
			t.Errorf("Parse(%q) = %s, want %s", test.val, got, test.want)
		}
	}
}

// TestParseTrailingDot verifies that a trailing '.' with nothing after it
// is equivalent to no dot at all, in every base.
func TestParseTrailingDot(t *testing.T) {
	tests := []struct {
		val  string
		base int
	}{
		{"10.", 10},
		{"FF.", 16},
		{"101.", 2},
	}
	for _, test := range tests {
		withDot := mustParse(t, test.val, test.base)
		withoutDot := mustParse(t, test.val[:len(test.val)-1], test.base)
		if Cmp(withDot, withoutDot, nil) != 0 {
			t.Errorf("Parse(%q, %d) != Parse(%q, %d): %s vs %s",
				test.val, test.base, test.val[:len(test.val)-1], test.base,
				numString(t, withDot), numString(t, withoutDot))
		}
		if withDot.Rdx() != 0 {
			t.Errorf("Parse(%q, %d) left a nonzero rdx: %d", test.val, test.base, withDot.Rdx())
		}
	}
}

func TestParseBaseConversion(t *testing.T) {
	n := mustParse(t, "FF", 16)
	if got := numString(t, n); got != "255" {
		t.Fatalf("Parse(\"FF\", 16) = %s, want 255", got)
	}
}

func TestParseBaseFractional(t *testing.T) {
	// 1A.8 base 16 == 1*16 + 10 + 8/16 == 26.5
	n := mustParse(t, "1A.8", 16)
	if got := numString(t, n); got != "26.5" {
		t.Fatalf("Parse(\"1A.8\", 16) = %s, want 26.5", got)
	}
}

func TestParseBinary(t *testing.T) {
	n := mustParse(t, "1011", 2)
	if got := numString(t, n); got != "11" {
		t.Fatalf("Parse(\"1011\", 2) = %s, want 11", got)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		val  string
		base int
	}{
		{"12.3.4", 10},
		{"19", 9},
		{"G", 16},
		{"2", 2},
		{"-5", 10},
	}
	for _, test := range tests {
		n := New(0)
		err := n.Parse(test.val, test.base, nil)
		if cause := cause(err); cause != StatusBadString {
			t.Errorf("Parse(%q, %d): cause = %v, want StatusBadString", test.val, test.base, cause)
		}
	}
}

func TestValidDigitString(t *testing.T) {
	tests := []struct {
		val  string
		base int
		want bool
	}{
		{"", 10, true},
		{"0123456789", 10, true},
		{"ABCDEF", 16, true},
		{"G", 16, false},
		{"9", 8, false},
		{"7", 8, true},
		{"1.2.3", 10, false},
		{"1.2", 10, true},
	}
	for _, test := range tests {
		if got := ValidDigitString(test.val, test.base); got != test.want {
			t.Errorf("ValidDigitString(%q, %d) = %v, want %v", test.val, test.base, got, test.want)
		}
	}
}
