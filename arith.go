// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// binaryOp is the algorithmic routine behind one of Add/Sub/Mul/Div/Mod/Pow.
// It may assume c does not alias a or b — binary snapshots aliasing inputs
// before calling into op.
type binaryOp func(a, b, c *Number, scale int, sig *Signal) error

// binary is the single entry point Add/Sub/Mul/Div/Mod/Pow all funnel
// through. It detects c aliasing a or b, takes a shallow snapshot of c's
// prior value in that case so op can treat a and b as distinct from c, then
// sizes c for the result and invokes op.
func binary(a, b, c *Number, scale int, op binaryOp, req int, sig *Signal) error {
	ptrA, ptrB := a, b
	var (
		snapshot  Number
		needsInit bool
	)

	if c == a {
		snapshot = *c
		ptrA = &snapshot
		needsInit = true
	}
	if c == b {
		if c == a {
			ptrB = ptrA
		} else {
			snapshot = *c
			ptrB = &snapshot
			needsInit = true
		}
	}

	if needsInit {
		c.Init(req)
	} else {
		c.Expand(req)
	}

	if err := op(ptrA, ptrB, c, scale, sig); err != nil {
		return err
	}
	c.validate()
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// addReq computes the BC_NUM_AREQ digit-capacity bound shared by Add and
// Sub: enough room for the aligned radix plus the larger integer part plus
// one digit of carry.
func addReq(a, b *Number) int {
	return maxInt(a.rdx, b.rdx) + maxInt(a.IntLen(), b.IntLen()) + 1
}

// mulReq computes the BC_NUM_MREQ digit-capacity bound shared by Mul, Div
// and Mod.
func mulReq(a, b *Number, scale int) int {
	return a.IntLen() + b.IntLen() + maxInt(scale, a.rdx+b.rdx)
}

// Add sets c = a + b, keeping max(a.Rdx(), b.Rdx()) fractional digits (scale
// is not applied: addition never truncates), and returns an error
// (typically *Signal interruption) if the operation did not complete. c may
// alias a and/or b.
func (c *Number) Add(a, b *Number, scale int, sig *Signal) error {
	op := algAdd
	if a.neg != b.neg {
		op = algSubWith(false)
	}
	return errWrap(binary(a, b, c, scale, op, addReq(a, b), sig), "Add")
}

// Sub sets c = a - b, keeping max(a.Rdx(), b.Rdx()) fractional digits (scale
// is not applied: subtraction never truncates), and returns an error if the
// operation did not complete. c may alias a and/or b.
func (c *Number) Sub(a, b *Number, scale int, sig *Signal) error {
	op := algSubWith(true)
	if a.neg != b.neg {
		op = algAdd
	}
	return errWrap(binary(a, b, c, scale, op, addReq(a, b), sig), "Sub")
}

// Mul sets c = a * b, truncated to at least scale fractional digits (raised
// if necessary to cover both operands' radixes), and returns an error if
// the operation did not complete. c may alias a and/or b.
func (c *Number) Mul(a, b *Number, scale int, sig *Signal) error {
	return errWrap(binary(a, b, c, scale, algMul, mulReq(a, b, scale), sig), "Mul")
}

// Div sets c = a / b, computed to scale fractional digits, and returns an
// error — StatusDivideByZero if b is zero — if the operation did not
// complete. c may alias a and/or b.
func (c *Number) Div(a, b *Number, scale int, sig *Signal) error {
	return errWrap(binary(a, b, c, scale, algDiv, mulReq(a, b, scale), sig), "Div")
}

// Mod sets c = a - (a/b)*b (the remainder of truncating division),
// computed with an internal quotient at scale fractional digits, and
// returns an error — StatusDivideByZero if b is zero — if the operation
// did not complete. c may alias a and/or b.
func (c *Number) Mod(a, b *Number, scale int, sig *Signal) error {
	return errWrap(binary(a, b, c, scale, algMod, mulReq(a, b, scale), sig), "Mod")
}

// Pow sets c = a**b for an integer b (positive, negative or zero), computed
// to scale fractional digits, and returns an error — StatusNonInteger if b
// has a fractional part, StatusOverflow if |b| does not fit a uint64 — if
// the operation did not complete. c may alias a and/or b.
func (c *Number) Pow(a, b *Number, scale int, sig *Signal) error {
	return errWrap(binary(a, b, c, scale, algPow, a.length*b.length+1, sig), "Pow")
}

// Inv sets c = 1/a, computed to scale fractional digits.
func (c *Number) Inv(a *Number, scale int, sig *Signal) error {
	one := New(DefSize)
	one.One()
	return c.Div(one, a, scale, sig)
}

// algAdd is unsigned magnitude addition, used whenever Add's operands
// share a sign or Sub's operands differ in sign. scale is unused — the
// caller has already sized c and truncation, if any, is the caller's
// concern for this operation (add/sub never truncate per bc's semantics).
func algAdd(a, b, c *Number, scale int, sig *Signal) error {
	if a.length == 0 {
		c.Copy(b)
		return nil
	}
	if b.length == 0 {
		c.Copy(a)
		return nil
	}

	c.neg = a.neg
	clear(c.digits)
	c.rdx = maxInt(a.rdx, b.rdx)
	minRdx := minInt(a.rdx, b.rdx)
	c.length = 0

	var (
		tailSrc    []int8
		diff       int
		aAligned   []int8
		bAligned   []int8
	)
	if a.rdx > b.rdx {
		diff = a.rdx - b.rdx
		tailSrc = a.digits
		aAligned = a.digits[diff:]
		bAligned = b.digits
	} else {
		diff = b.rdx - a.rdx
		tailSrc = b.digits
		aAligned = a.digits
		bAligned = b.digits[diff:]
	}

	for i := 0; i < diff; i++ {
		c.digits[i] = tailSrc[i]
		c.length++
	}

	aInt := a.IntLen()
	bInt := b.IntLen()
	var (
		minInt2 int
		maxLen  int
		longSrc []int8
	)
	if aInt > bInt {
		minInt2 = bInt
		maxLen = aInt
		longSrc = aAligned
	} else {
		minInt2 = aInt
		maxLen = bInt
		longSrc = bAligned
	}

	var carry int8
	i := 0
	overlap := minRdx + minInt2
	for ; i < overlap; i++ {
		if sig.IsSet() {
			return StatusSignal
		}
		sum := aAligned[i] + bAligned[i] + carry
		c.digits[diff+i] = sum % 10
		carry = sum / 10
		c.length++
	}

	top := maxLen + minRdx
	for ; i < top; i++ {
		if sig.IsSet() {
			return StatusSignal
		}
		sum := c.digits[diff+i] + longSrc[i] + carry
		c.digits[diff+i] = sum % 10
		carry = sum / 10
		c.length++
	}

	if carry != 0 {
		c.digits[c.length] = carry
		c.length++
	}

	return nil
}

// algSubWith returns the subtraction algorithm with its sub flag bound.
// The reference implementation repurposes the scale parameter slot as a
// sub boolean (a comment in num.c admits as much); bcnum instead closes
// over the flag, keeping the binaryOp signature honest.
func algSubWith(sub bool) binaryOp {
	return func(a, b, c *Number, _ int, sig *Signal) error {
		return algSub(a, b, c, sub, sig)
	}
}

// algSub implements both add-with-opposite-signs and subtract-with-same-
// signs. sub tells it which case it's handling, which determines the
// result's sign.
func algSub(a, b, c *Number, sub bool, sig *Signal) error {
	if a.length == 0 {
		c.Copy(b)
		if sub {
			c.SetNeg(!b.neg)
		}
		if b.length == 0 {
			c.neg = false
		}
		return nil
	}
	if b.length == 0 {
		c.Copy(a)
		return nil
	}

	aNeg, bNeg := a.neg, b.neg
	a.neg, b.neg = false, false
	cmp := Cmp(a, b, sig)
	a.neg, b.neg = aNeg, bNeg

	if cmp == 0 {
		c.Zero()
		return nil
	}

	var minuend, subtrahend *Number
	var neg bool
	if cmp > 0 {
		neg = a.neg
		minuend, subtrahend = a, b
	} else {
		if sub {
			neg = !b.neg
		} else {
			neg = b.neg
		}
		minuend, subtrahend = b, a
	}

	c.Copy(minuend)
	c.neg = neg

	start := 0
	if c.rdx < subtrahend.rdx {
		c.Extend(subtrahend.rdx - c.rdx)
	} else {
		start = c.rdx - subtrahend.rdx
	}

	if err := subArrays(c.digits[start:], subtrahend.digits, subtrahend.length, sig); err != nil {
		return err
	}

	for c.length > c.rdx && c.digits[c.length-1] == 0 {
		c.length--
	}

	return nil
}

// subArrays performs in-place n1 -= n2 over length little-endian digits,
// propagating borrows. Digits transiently go negative during the borrow
// chain (down to -9) before the loop restores them to [0,9].
func subArrays(n1, n2 []int8, length int, sig *Signal) error {
	for i := 0; i < length; i++ {
		if sig.IsSet() {
			return StatusSignal
		}
		n1[i] -= n2[i]
		for j := 0; n1[i+j] < 0; {
			n1[i+j] += 10
			j++
			n1[i+j]--
		}
	}
	return nil
}

// algMul is classical schoolbook long multiplication.
func algMul(a, b, c *Number, scale int, sig *Signal) error {
	if a.length == 0 || b.length == 0 {
		c.Zero()
		return nil
	}
	if isOne(a) {
		c.Copy(b)
		if a.neg {
			c.SetNeg(!c.neg)
		}
		return nil
	}
	if isOne(b) {
		c.Copy(a)
		if b.neg {
			c.SetNeg(!c.neg)
		}
		return nil
	}

	scale = maxInt(scale, a.rdx)
	scale = maxInt(scale, b.rdx)
	c.rdx = a.rdx + b.rdx

	clear(c.digits)
	c.length = 0
	var carry int8
	length := 0

	for i := 0; i < b.length; i++ {
		if sig.IsSet() {
			return StatusSignal
		}
		for j := 0; j < a.length; j++ {
			c.digits[i+j] += a.digits[j]*b.digits[i] + carry
			carry = c.digits[i+j] / 10
			c.digits[i+j] %= 10
		}
		if carry != 0 {
			c.digits[i+a.length] += carry
			carry = 0
			length = maxInt(length, i+a.length+1)
		} else {
			length = maxInt(length, i+a.length)
		}
	}

	c.length = maxInt(length, c.rdx)
	c.neg = a.neg != b.neg
	if c.length == 0 {
		c.neg = false
	}

	if c.rdx > scale {
		c.Truncate(c.rdx - scale)
	}
	c.FixLen()

	return nil
}

// isOne reports whether n is exactly the integer 1.
func isOne(n *Number) bool {
	return n.length == 1 && n.rdx == 0 && n.digits[0] == 1
}

// algDiv is classical long division, producing one quotient digit per
// position by repeated subtraction.
func algDiv(a, b, c *Number, scale int, sig *Signal) error {
	if b.length == 0 {
		return StatusDivideByZero
	}
	if a.length == 0 {
		c.Zero()
		return nil
	}
	if isOne(b) {
		c.Copy(a)
		if b.neg {
			c.SetNeg(!c.neg)
		}
		if c.rdx < scale {
			c.Extend(scale - c.rdx)
		} else {
			c.Truncate(c.rdx - scale)
		}
		c.FixLen()
		return nil
	}

	req := mulReq(a, b, scale)
	work := New(req + 2)
	work.Copy(a)

	blen := b.length
	if blen > work.length {
		work.Expand(blen + 2)
		work.Extend(blen - work.length)
	}

	if b.rdx > work.rdx {
		work.Extend(b.rdx - work.rdx)
	}
	work.rdx -= b.rdx

	if scale > work.rdx {
		work.Extend(scale - work.rdx)
	}

	if b.rdx == b.length {
		zero := true
		i := 0
		for ; zero && i < blen; i++ {
			zero = b.digits[blen-i-1] == 0
		}
		if zero {
			return StatusDivideByZero
		}
		blen -= i - 1
	}

	if cap(work.digits) == work.length {
		work.Expand(work.length + 1)
	}
	work.digits[work.length] = 0
	work.length++
	end := work.length - blen

	c.Expand(work.length)
	c.Zero()
	c.rdx = work.rdx
	c.length = work.length

	bdig := b.digits
	for i := end - 1; i >= 0; i-- {
		if sig.IsSet() {
			return StatusSignal
		}
		window := work.digits[i:]
		var q int8
		for window[blen] != 0 || compareArrays(window, bdig, blen, sig) >= 0 {
			if err := subArrays(window, bdig, blen, sig); err != nil {
				return err
			}
			q++
		}
		c.digits[i] = q
	}

	c.neg = a.neg != b.neg
	if c.rdx > scale {
		c.Truncate(c.rdx - scale)
	}
	c.FixLen()

	return nil
}

// algMod computes c = a - (a/b)*b, the remainder of truncating division.
func algMod(a, b, c *Number, scale int, sig *Signal) error {
	if b.length == 0 {
		return StatusDivideByZero
	}
	if a.length == 0 {
		c.Zero()
		return nil
	}

	q := New(a.length + b.length + scale)
	if err := q.Div(a, b, scale, sig); err != nil {
		return err
	}

	c.rdx = maxInt(scale+b.rdx, a.rdx)

	prod := New(a.length + b.length + scale)
	if err := prod.Mul(q, b, scale, sig); err != nil {
		return err
	}
	return c.Sub(a, prod, scale, sig)
}

// algPow implements fast exponentiation by squaring; only integer exponents
// are accepted.
func algPow(a, b, c *Number, scale int, sig *Signal) error {
	if b.rdx != 0 {
		return StatusNonInteger
	}
	if b.length == 0 {
		c.One()
		return nil
	}
	if a.length == 0 {
		c.Zero()
		return nil
	}
	if isOne(b) {
		if !b.neg {
			c.Copy(a)
			return nil
		}
		return c.Inv(a, scale, sig)
	}

	neg := b.neg
	b.neg = false
	pow, err := b.Uint64()
	b.neg = neg
	if err != nil {
		return err
	}

	base := New(a.length)
	base.Copy(a)

	if !neg {
		scale = minInt(a.rdx*int(pow), maxInt(scale, a.rdx))
	}

	powrdx := a.rdx
	for pow&1 == 0 {
		if sig.IsSet() {
			return StatusSignal
		}
		powrdx <<= 1
		if err := base.Mul(base, base, powrdx, sig); err != nil {
			return err
		}
		pow >>= 1
	}

	c.Copy(base)
	if sig.IsSet() {
		return StatusSignal
	}

	resrdx := powrdx
	for pow >>= 1; pow != 0; pow >>= 1 {
		if sig.IsSet() {
			return StatusSignal
		}
		powrdx <<= 1
		if err := base.Mul(base, base, powrdx, sig); err != nil {
			return err
		}
		if pow&1 != 0 {
			resrdx += powrdx
			if err := c.Mul(c, base, resrdx, sig); err != nil {
				return err
			}
		}
	}

	if neg {
		if err := c.Inv(c, scale, sig); err != nil {
			return err
		}
	}
	if sig.IsSet() {
		return StatusSignal
	}

	if c.rdx > scale {
		c.Truncate(c.rdx - scale)
	}

	zero := true
	for i := 0; zero && i < c.length; i++ {
		zero = c.digits[i] == 0
	}
	if zero {
		c.Zero()
	}

	return nil
}
