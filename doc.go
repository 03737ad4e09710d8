// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bcnum implements the arbitrary-precision decimal arithmetic core of a
POSIX bc-style calculator.

A Number represents a signed decimal value as a little-endian slice of base-10
digits together with an explicit radix position (rdx): the count of digits
that lie to the right of the decimal point. Unlike math/big.Float, a Number
never normalizes to a binary mantissa — every digit slot holds a value in
[0,9] and all arithmetic is performed directly in base 10, the same
representation used by the reference bc implementation this package is
modeled on.

The zero value of Number is not ready for use; call New or (*Number).Init
first:

	n := bcnum.New(0) // n is a *Number of value 0

Operations follow the (z, x, y, scale) convention familiar from math/big:
the receiver (or first argument) names the result, and operands are passed
explicitly. Unlike math/big, operations report failure via an error instead
of a panic, because bc's operations are fallible in ways a calculator must be
able to report to its user (division by zero, a non-integer exponent, a
malformed literal) rather than crash on:

	c := bcnum.New(0)
	if err := c.Add(a, b, scale, nil); err != nil {
		// handle err
	}

Every binary operation accepts a *Signal, a cooperative interrupt flag
polled in each operation's inner loop; see the Signal type. Passing a nil
Signal disables interruption.

For a friendlier, stateful wrapper that bundles a default scale, an
interrupt Signal and an output sink, see the companion context package.
*/
package bcnum
