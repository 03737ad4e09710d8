// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// Print writes n in the given output base (2..BaseMax) to w, updating
// *nchars — the running column count of the current output line — and
// wrapping with a trailing backslash-newline once the line would exceed
// lineLen columns, matching the classic PRINT_WIDTH convention. If newline
// is true a trailing '\n' is written and *nchars reset to 0.
//
// Any failure to write to w is reported as StatusIOErr, wrapped with the
// underlying error.
func (n *Number) Print(w io.Writer, base int, newline bool, nchars *int, lineLen int, sig *Signal) error {
	if *nchars >= lineLen {
		if err := emitWrap(w, nchars); err != nil {
			return err
		}
	}

	var err error
	switch {
	case n.length == 0:
		err = putChar(w, '0')
		*nchars++
	case base == 10:
		err = n.printDecimal(w, nchars, lineLen)
	default:
		err = n.printBase(w, base, nchars, lineLen, sig)
	}
	if err != nil {
		return err
	}

	if newline {
		if err := putChar(w, '\n'); err != nil {
			return err
		}
		*nchars = 0
	}
	return nil
}

func putChar(w io.Writer, c byte) error {
	if _, err := w.Write([]byte{c}); err != nil {
		return errors.Wrapf(StatusIOErr, "bcnum: Print: %v", err)
	}
	return nil
}

func emitWrap(w io.Writer, nchars *int) error {
	if err := putChar(w, '\\'); err != nil {
		return err
	}
	if err := putChar(w, '\n'); err != nil {
		return err
	}
	*nchars = 0
	return nil
}

// printDecimal prints n base 10 directly from its stored digits — no
// conversion is needed since the digits already are the base-10 digits.
func (n *Number) printDecimal(w io.Writer, nchars *int, lineLen int) error {
	if n.neg {
		if err := putChar(w, '-'); err != nil {
			return err
		}
		*nchars++
	}
	if n.length == n.rdx {
		if err := printHexDigit(w, 0, 1, false, nchars, lineLen); err != nil {
			return err
		}
	}
	for i := n.length - 1; i >= 0; i-- {
		if err := printHexDigit(w, int(n.digits[i]), 1, i == n.rdx-1, nchars, lineLen); err != nil {
			return err
		}
	}
	return nil
}

// printHexDigit prints a single digit 0..35 as one character, used for
// output bases up to MaxInputBase. radix requests a '.' immediately before
// the digit.
func printHexDigit(w io.Writer, value, width int, radix bool, nchars *int, lineLen int) error {
	if radix {
		width++
	}
	if *nchars+width >= lineLen {
		if err := emitWrap(w, nchars); err != nil {
			return err
		}
	}
	if radix {
		if err := putChar(w, '.'); err != nil {
			return err
		}
	}
	if err := putChar(w, hexDigits[value]); err != nil {
		return err
	}
	*nchars += width
	return nil
}

// printWideDigit prints a digit as a zero-padded, width-wide decimal
// number, used for output bases above MaxInputBase. Digits are separated by
// a space, or
// preceded by '.' when radix marks the first fractional digit.
func printWideDigit(w io.Writer, value, width int, radix bool, nchars *int, lineLen int) error {
	if *nchars == lineLen-1 {
		if err := emitWrap(w, nchars); err != nil {
			return err
		}
	}
	if *nchars != 0 || radix {
		sep := byte(' ')
		if radix {
			sep = '.'
		}
		if err := putChar(w, sep); err != nil {
			return err
		}
		*nchars++
	}

	pow := 1
	for i := 0; i < width-1; i++ {
		pow *= 10
	}
	for i := 0; i < width; i++ {
		if *nchars == lineLen-1 {
			if err := emitWrap(w, nchars); err != nil {
				return err
			}
		}
		d := value / pow
		value -= d * pow
		if err := putChar(w, byte(d)+'0'); err != nil {
			return err
		}
		pow /= 10
		*nchars++
	}
	return nil
}

type digitPrinter func(w io.Writer, value, width int, radix bool, nchars *int, lineLen int) error

// printBase prints n in an arbitrary output base by repeatedly dividing
// out the integer part (collecting digits on a stack to reverse their
// order) and repeatedly multiplying the fractional part to peel off
// fractional digits one at a time.
func (n *Number) printBase(w io.Writer, base int, nchars *int, lineLen int, sig *Signal) error {
	neg := n.neg
	n.neg = false
	defer func() { n.neg = neg }()

	if neg {
		if err := putChar(w, '-'); err != nil {
			return err
		}
		*nchars++
	}

	var width int
	var digit digitPrinter
	if base <= MaxInputBase {
		width = 1
		digit = printHexDigit
	} else {
		width = int(math.Floor(math.Log10(float64(base-1)))) + 1
		digit = printWideDigit
	}

	baseNum := New(DefSize)
	baseNum.SetUint64(uint64(base))

	intp := New(n.length)
	intp.Copy(n)
	intp.Truncate(intp.rdx)

	fracp := New(n.rdx)
	if err := fracp.Sub(n, intp, 0, sig); err != nil {
		return err
	}

	digitNum := New(DefSize)
	stack := make([]int, 0, intp.IntLen())
	for intp.length > 0 {
		if err := digitNum.Mod(intp, baseNum, 0, sig); err != nil {
			return err
		}
		v, err := digitNum.Uint64()
		if err != nil {
			return err
		}
		stack = append(stack, int(v))
		if err := intp.Div(intp, baseNum, 0, sig); err != nil {
			return err
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if err := digit(w, stack[i], width, false, nchars, lineLen); err != nil {
			return err
		}
	}

	if n.rdx == 0 {
		return nil
	}

	fracLen := New(n.IntLen() + 1)
	fracLen.One()
	radix := true

	for fracLen.length <= n.rdx {
		if err := fracp.Mul(fracp, baseNum, n.rdx, sig); err != nil {
			return err
		}
		v, err := fracp.Uint64()
		if err != nil {
			return err
		}
		whole := New(DefSize)
		whole.SetUint64(v)
		if err := fracp.Sub(fracp, whole, 0, sig); err != nil {
			return err
		}
		if err := digit(w, int(v), width, radix, nchars, lineLen); err != nil {
			return err
		}
		radix = false
		if err := fracLen.Mul(fracLen, baseNum, 0, sig); err != nil {
			return err
		}
	}

	return nil
}
