// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// Cmp returns a value whose sign is the sign of a-b. Either operand may be
// nil: an absent operand compares below a non-negative operand (zero
// included) and above a negative one, so a nil a yields -1 or 1 and a nil b
// yields 1 or -1 by the other operand's sign; two nils compare equal.
//
// The magnitude of the returned value is one plus the index of the highest
// digit at which a and b differ — not simply -1/0/1 — because Sqrt's
// Newton iteration uses that magnitude as a convergence measure (the
// number of stable leading digits). Callers that only care about ordering
// should compare the result against 0, not against ±1.
//
// sig is polled at every digit compared and, when raised, the comparison
// stops early and returns whatever partial result it has reached — the
// same short-circuit the reference bc_num_cmp performs against its global
// signal flag. A nil sig disables this.
func Cmp(a, b *Number, sig *Signal) int {
	if a == nil {
		if b == nil {
			return 0
		}
		if b.neg {
			return 1
		}
		return -1
	}
	if b == nil {
		if a.neg {
			return -1
		}
		return 1
	}

	neg := 1
	if a.neg {
		if b.neg {
			neg = -1
		} else {
			return -1
		}
	} else if b.neg {
		return 1
	}

	if a.length == 0 {
		if b.length == 0 {
			return 0
		}
		if b.neg {
			return 1
		}
		return -1
	} else if b.length == 0 {
		if a.neg {
			return -1
		}
		return 1
	}

	aInt := a.IntLen()
	bInt := b.IntLen()
	if d := aInt - bInt; d != 0 {
		return d * neg
	}

	aLonger := a.rdx > b.rdx
	var (
		min    int
		diff   int
		maxDig []int8
		minDig []int8
	)
	if aLonger {
		min = b.rdx
		diff = a.rdx - b.rdx
		maxDig = a.digits[diff:]
		minDig = b.digits
	} else {
		min = a.rdx
		diff = b.rdx - a.rdx
		maxDig = b.digits[diff:]
		minDig = a.digits
	}

	if cmp := compareArrays(maxDig, minDig, bInt+min, sig); cmp != 0 {
		if aLonger {
			return cmp * neg
		}
		return -cmp * neg
	}

	var longer []int8
	if aLonger {
		longer = a.digits
	} else {
		longer = b.digits
	}
	for i := diff - 1; i >= 0 && !sig.IsSet(); i-- {
		if longer[i] != 0 {
			if aLonger {
				return neg
			}
			return -neg
		}
	}

	return 0
}

// compareArrays compares the magnitudes of two little-endian digit arrays
// over their most significant length digits, most-significant digit first.
// Shared between Cmp and the long-division quotient-digit search in algDiv.
//
// The returned magnitude equals one plus the index of the highest differing
// digit, which both Cmp and Sqrt rely on as a convergence signal — do not
// collapse it to a plain -1/0/1 sign.
func compareArrays(a, b []int8, length int, sig *Signal) int {
	i := length - 1
	var c int8
	for ; i >= 0 && !sig.IsSet(); i-- {
		c = a[i] - b[i]
		if c != 0 {
			break
		}
	}
	if c < 0 {
		return -(i + 1)
	}
	return i + 1
}
