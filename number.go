// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"github.com/pkg/errors"
)

// debugBcnum enables invariant checks at every externally observable
// boundary. Mirrors debugDecimal in the teacher package: a compile-time
// constant so the checks are dead code (and free) when false.
const debugBcnum = true

// MinBase, MaxInputBase, DefSize and PrintWidth are the fixed constants of
// the bc numeric model: the smallest accepted base, the largest base a
// literal may be written in, the default digit-store capacity, and the
// column at which Print wraps output with a trailing backslash-newline.
const (
	MinBase      = 2
	MaxInputBase = 16
	DefSize      = 16
	PrintWidth   = 69
)

// BaseMax is the largest base Print will accept. It is a build-time
// constant in the reference implementation; bcnum fixes it at the size of
// its hex-digit alphabet.
const BaseMax = 10 + ('Z' - 'A' + 1)

// hexDigits maps a digit value in [0, BaseMax) to its printable character.
const hexDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Number is a signed, arbitrary-precision decimal value.
//
// digits is little-endian: digits[0] is the least-significant digit — the
// one farthest to the right of the decimal point when rdx > 0, or the ones
// place when rdx == 0. length is the count of significant digits; positions
// at or beyond length are kept zeroed. rdx is the number of digits of
// digits that lie to the right of the decimal point, so the integer part
// has length-rdx digits.
//
// The zero value is not a valid Number; use New or Init.
type Number struct {
	digits []int8
	length int
	rdx    int
	neg    bool
}

// New returns a Number initialized to zero with at least the given digit
// capacity.
func New(capacity int) *Number {
	n := new(Number)
	n.Init(capacity)
	return n
}

// Init allocates zeroed digit storage for at least max(request, DefSize)
// digits and resets n to zero. It is the only constructor operation callers
// need before reusing a Number's storage for a fresh value.
func (n *Number) Init(request int) {
	if request < DefSize {
		request = DefSize
	}
	n.digits = make([]int8, request)
	n.length = 0
	n.rdx = 0
	n.neg = false
}

// Expand grows n's digit storage to at least request digits, preserving its
// value. It is a no-op if n already has enough capacity.
func (n *Number) Expand(request int) {
	if request <= cap(n.digits) {
		return
	}
	grown := make([]int8, request)
	copy(grown, n.digits)
	n.digits = grown
}

// Copy sets d to a copy of s's value. Copying a Number onto itself is a
// no-op.
func (d *Number) Copy(s *Number) {
	if d == s {
		return
	}
	d.Expand(cap(s.digits))
	d.length = s.length
	d.rdx = s.rdx
	d.neg = s.neg
	clear(d.digits)
	copy(d.digits[:d.length], s.digits[:s.length])
}

// Zero resets n to the canonical zero value.
func (n *Number) Zero() {
	clear(n.digits)
	n.length = 0
	n.rdx = 0
	n.neg = false
}

// One sets n to the literal value 1.
func (n *Number) One() {
	n.Zero()
	n.ensure(1)
	n.digits[0] = 1
	n.length = 1
}

// Ten sets n to the literal value 10.
func (n *Number) Ten() {
	n.Zero()
	n.ensure(2)
	n.digits[0] = 0
	n.digits[1] = 1
	n.length = 2
}

// IsZero reports whether n holds the canonical zero value.
func (n *Number) IsZero() bool {
	return n.length == 0
}

// Neg reports whether n is negative. Canonical zero is always non-negative.
func (n *Number) Neg() bool {
	return n.neg
}

// SetNeg sets n's sign flag. Setting it on a zero value is a no-op: zero has
// no sign.
func (n *Number) SetNeg(neg bool) {
	if n.length == 0 {
		return
	}
	n.neg = neg
}

// Rdx returns the number of digits of n that lie to the right of the
// decimal point.
func (n *Number) Rdx() int {
	return n.rdx
}

// Len returns the number of significant digits held by n.
func (n *Number) Len() int {
	return n.length
}

// IntLen returns the number of digits in n's integer part.
func (n *Number) IntLen() int {
	return n.length - n.rdx
}

// ensure grows digit storage in place, same shape as Expand but used
// internally where we already know the exact slot count needed.
func (n *Number) ensure(request int) {
	if n.digits == nil {
		n.Init(request)
		return
	}
	n.Expand(request)
}

// Truncate drops the k least-significant digits of n. It requires k <= n.rdx.
func (n *Number) Truncate(k int) {
	if debugBcnum && k > n.rdx {
		panic("bcnum: Truncate: k > rdx")
	}
	if k == 0 {
		return
	}
	copy(n.digits, n.digits[k:n.length])
	n.length -= k
	n.rdx -= k
	clearTail(n.digits, n.length)
}

// Extend inserts k zero digits at the low (least-significant) end of n,
// increasing both its length and its rdx by k.
func (n *Number) Extend(k int) {
	if k == 0 {
		return
	}
	total := n.length + k
	n.ensure(total)
	copy(n.digits[k:total], n.digits[:n.length])
	clear(n.digits[:k])
	n.length += k
	n.rdx += k
}

// FixLen drops trailing (most-significant) zero digits above the radix
// point, canonicalizing to zero if nothing significant remains, and
// ensures length never falls below rdx.
func (n *Number) FixLen() {
	for n.length > 0 && n.digits[n.length-1] == 0 {
		n.length--
	}
	if n.length == 0 {
		n.rdx = 0
		n.neg = false
	} else if n.length < n.rdx {
		n.length = n.rdx
	}
}

// clearTail zeroes digits[from:] without shrinking the slice, preserving
// the digit store's "positions at or beyond length are zero" invariant.
func clearTail(digits []int8, from int) {
	clear(digits[from:])
}

// validate panics if n violates any externally-observable invariant. Only
// called from debugBcnum-gated call sites, and only by tests/internal
// callers — it is not part of the public API.
func (n *Number) validate() {
	if !debugBcnum {
		return
	}
	if n.length == 0 && (n.rdx != 0 || n.neg) {
		panic("bcnum: invalid zero Number: rdx or neg set on empty value")
	}
	if n.rdx > n.length {
		panic("bcnum: invalid Number: rdx > length")
	}
	for i := 0; i < n.length; i++ {
		if n.digits[i] < 0 || n.digits[i] > 9 {
			panic("bcnum: invalid Number: digit out of range")
		}
	}
	for i := n.length; i < len(n.digits); i++ {
		if n.digits[i] != 0 {
			panic("bcnum: invalid Number: nonzero digit beyond length")
		}
	}
	if n.length > 0 && n.digits[n.length-1] == 0 && n.length != n.rdx {
		panic("bcnum: invalid Number: unstripped leading zero")
	}
}

// errWrap annotates err (if non-nil) with op, preserving the underlying
// Status for errors.As/errors.Is via github.com/pkg/errors' cause chain.
func errWrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "bcnum: %s", op)
}
