// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// Parse sets n to the value encoded by val, a literal written in the given
// base (2..MaxInputBase). It returns StatusBadString if val contains
// anything but digits 0-9, uppercase letters valid for base, and at most
// one '.'.
//
// A trailing '.' with nothing after it (e.g. "10.") is treated the same as
// no dot at all, i.e. a pure integer — the reference implementation's
// parser has an edge case here whose intent the upstream source leaves
// ambiguous; bcnum resolves it this way deliberately and tests it.
func (n *Number) Parse(val string, base int, sig *Signal) error {
	if !ValidDigitString(val, base) {
		return StatusBadString
	}
	var err error
	if base == 10 {
		err = parseDecimalInto(n, val)
	} else {
		baseNum := New(DefSize)
		baseNum.SetUint64(uint64(base))
		err = parseBaseInto(n, val, baseNum, sig)
	}
	if err != nil {
		return err
	}
	n.validate()
	return nil
}

// ValidDigitString reports whether val is a syntactically valid numeric
// literal in the given base: only digits 0-9 and uppercase A-F..Z (as
// needed by base), and at most one '.'.
func ValidDigitString(val string, base int) bool {
	if len(val) == 0 {
		return true
	}

	small := base <= 10
	var maxDigit byte
	if small {
		maxDigit = byte('0' + base)
	} else {
		maxDigit = byte('A' + (base - 10))
	}

	dotSeen := false
	for i := 0; i < len(val); i++ {
		c := val[i]
		if c == '.' {
			if dotSeen {
				return false
			}
			dotSeen = true
			continue
		}
		if small {
			if c < '0' || c >= maxDigit {
				return false
			}
			continue
		}
		if c >= '0' && c <= '9' {
			continue
		}
		if c < 'A' || c >= maxDigit {
			return false
		}
	}
	return true
}

// digitValue converts a validated literal character to its numeric value.
func digitValue(c byte) uint64 {
	if c <= '9' {
		return uint64(c - '0')
	}
	return uint64(c-'A') + 10
}

// parseDecimalInto is the base-10 fast path: the stored digits are the
// literal's digits, so no arithmetic is required.
func parseDecimalInto(n *Number, val string) error {
	i := 0
	for i < len(val) && val[i] == '0' {
		i++
	}
	val = val[i:]

	n.Zero()
	if len(val) == 0 {
		return nil
	}

	allZero := true
	for i := 0; i < len(val); i++ {
		if val[i] != '0' && val[i] != '.' {
			allZero = false
			break
		}
	}
	if allZero {
		return nil
	}

	// A trailing dot is equivalent to no dot (see Parse's doc comment).
	if val[len(val)-1] == '.' {
		val = val[:len(val)-1]
	}

	dot := -1
	for i := 0; i < len(val); i++ {
		if val[i] == '.' {
			dot = i
			break
		}
	}

	rdx := 0
	if dot >= 0 {
		rdx = len(val) - (dot + 1)
	}

	n.ensure(len(val))
	length := 0
	for i := len(val) - 1; i >= 0; i-- {
		if val[i] == '.' {
			continue
		}
		n.digits[length] = int8(val[i] - '0')
		length++
	}
	n.length = length
	n.rdx = rdx

	return nil
}

// parseBaseInto handles bases other than 10: the integer part is
// accumulated as Σ digit_i·base^i via repeated multiply/add, and the
// fractional part is accumulated in a parallel numerator/denominator pair
// before being divided down and combined with the integer part.
func parseBaseInto(n *Number, val string, base *Number, sig *Signal) error {
	n.Zero()

	allZero := true
	for i := 0; i < len(val); i++ {
		if val[i] != '.' && val[i] != '0' {
			allZero = false
			break
		}
	}
	if allZero {
		return nil
	}

	temp := New(DefSize)
	mult := New(DefSize)

	i := 0
	for ; i < len(val) && val[i] != '.'; i++ {
		temp.SetUint64(digitValue(val[i]))
		if err := mult.Mul(n, base, 0, sig); err != nil {
			return err
		}
		if err := n.Add(mult, temp, 0, sig); err != nil {
			return err
		}
	}

	if i == len(val) {
		return nil
	}
	// val[i] == '.'

	result := New(base.length)
	mult.One()
	digits := 0

	for i++; i < len(val); i++ {
		temp.SetUint64(digitValue(val[i]))
		if err := result.Mul(result, base, 0, sig); err != nil {
			return err
		}
		if err := result.Add(result, temp, 0, sig); err != nil {
			return err
		}
		if err := mult.Mul(mult, base, 0, sig); err != nil {
			return err
		}
		digits++
	}

	if digits == 0 {
		// Trailing dot: equivalent to no dot at all.
		return nil
	}

	if err := result.Div(result, mult, digits, sig); err != nil {
		return err
	}
	if err := n.Add(n, result, digits, sig); err != nil {
		return err
	}

	if n.length > 0 && n.rdx < digits {
		n.Extend(digits - n.rdx)
	}

	return nil
}
