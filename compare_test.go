// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "testing"

func TestCmpNilOperands(t *testing.T) {
	pos := mustParse(t, "5", 10)
	neg := mustParse(t, "5", 10)
	neg.SetNeg(true)

	tests := []struct {
		name string
		a, b *Number
		want int
	}{
		{"nil,nil", nil, nil, 0},
		{"nil,positive", nil, pos, -1},
		{"nil,negative", nil, neg, 1},
		{"positive,nil", pos, nil, 1},
		{"negative,nil", neg, nil, -1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := sign(Cmp(test.a, test.b, nil)); got != test.want {
				t.Errorf("Cmp(%s) sign = %d, want %d", test.name, got, test.want)
			}
		})
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func TestCmpOrdering(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"1", "2", -1},
		{"2", "1", 1},
		{"-1", "1", -1},
		{"1", "-1", 1},
		{"-5", "-2", -1},
		{"-2", "-5", 1},
		{"1.5", "1.05", 1},
		{"1.05", "1.5", -1},
		{"100", "99.999", 1},
		{"0.1", "0.10", 0},
	}
	for _, test := range tests {
		a := mustParseSigned(t, test.a)
		b := mustParseSigned(t, test.b)
		if got := sign(Cmp(a, b, nil)); got != test.want {
			t.Errorf("Cmp(%s, %s) sign = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

// mustParseSigned parses a base-10 literal that may carry a leading '-'.
func mustParseSigned(t *testing.T, val string) *Number {
	t.Helper()
	neg := false
	if len(val) > 0 && val[0] == '-' {
		neg = true
		val = val[1:]
	}
	n := mustParse(t, val, 10)
	n.SetNeg(neg)
	return n
}
