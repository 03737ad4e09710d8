// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "math"

// Uint64 converts n to an unsigned 64-bit integer, ignoring any fractional
// digits (the conversion only reads n's integer part). It returns
// StatusNegative if n is negative and StatusOverflow if the integer part
// does not fit a uint64.
//
// This is the Go-idiomatic home for what the reference implementation calls
// bc_num_ulong: Pow uses it to turn its exponent operand into a machine
// integer before exponentiation by squaring, and base-conversion parsing
// and printing use it to move single digits in and out of Number form.
func (n *Number) Uint64() (uint64, error) {
	if n.neg {
		return 0, StatusNegative
	}

	var result uint64
	pow := uint64(1)
	for i := n.rdx; i < n.length; i++ {
		prev := result
		result += uint64(n.digits[i]) * pow
		pow *= 10
		if result < prev {
			return 0, StatusOverflow
		}
	}
	return result, nil
}

// SetUint64 sets n to the value of x, an unsigned integer, and returns n.
func (n *Number) SetUint64(x uint64) *Number {
	n.Zero()
	if x == 0 {
		return n
	}

	digits := int(math.Ceil(math.Log10(float64(math.MaxUint64) + 1.0)))
	n.ensure(digits)

	i := 0
	for x != 0 {
		n.digits[i] = int8(x % 10)
		x /= 10
		i++
	}
	n.length = i
	return n
}
