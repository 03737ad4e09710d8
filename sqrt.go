// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// Sqrt sets z to the square root of x, truncated to scale fractional
// digits, using Newton's iteration x ← (x + a/x)/2 with a bespoke
// initial-guess heuristic based on x's integer digit count. It returns
// StatusNegSqrt if x is negative. z may alias x.
func (z *Number) Sqrt(x *Number, scale int, sig *Signal) error {
	req := maxInt(scale, x.rdx) + (x.IntLen()+1)>>1 + 1

	ptrX := x
	if z == x {
		snapshot := *x
		ptrX = &snapshot
		z.Init(req)
	} else {
		z.Expand(req)
	}

	if ptrX.length == 0 {
		z.Zero()
		return nil
	}
	if ptrX.neg {
		return StatusNegSqrt
	}
	if isOne(ptrX) {
		z.One()
		z.Extend(scale)
		return nil
	}

	clear(z.digits)

	length := ptrX.length
	scale = maxInt(scale, ptrX.rdx) + 1

	x0 := New(length)
	x1 := New(length)

	half := New(DefSize)
	half.One()
	half.digits[0] = 5
	half.rdx = 1

	length += scale
	f := New(length)
	fprime := New(length + scale)

	x0.One()

	pow := ptrX.IntLen()
	if pow > 0 {
		if pow&1 != 0 {
			x0.digits[0] = 2
			pow--
		} else {
			x0.digits[0] = 6
			pow -= 2
		}
		x0.Extend(pow)
		x0.rdx -= pow
	}

	cmp := 1
	x0.rdx = 0
	digits := 0
	resrdx := scale + 1
	limit := x0.IntLen() + resrdx

	for !sig.IsSet() && cmp != 0 && digits <= limit {
		if err := f.Div(ptrX, x0, resrdx, sig); err != nil {
			return err
		}
		if err := fprime.Add(x0, f, resrdx, sig); err != nil {
			return err
		}
		if err := x1.Mul(fprime, half, resrdx, sig); err != nil {
			return err
		}

		cmp = Cmp(x1, x0, sig)
		abs := cmp
		if abs < 0 {
			abs = -abs
		}
		digits = x1.length - abs

		x0, x1 = x1, x0
	}

	if sig.IsSet() {
		return StatusSignal
	}

	z.Copy(x0)

	scale--
	if z.rdx > scale {
		z.Truncate(z.rdx - scale)
	} else if z.rdx < scale {
		z.Extend(scale - z.rdx)
	}

	z.validate()
	return nil
}
