// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a stateful wrapper around bcnum.Number that
// bundles a default scale, an interrupt Signal and an output sink, so
// callers building a calculator loop don't have to thread those three
// values through every call by hand.
//
// Operators of the form
//
//	func (c *Context) BinaryOp(z, x, y *bcnum.Number) *bcnum.Number
//
// set z to the result of x Op y computed at c's scale and return z. If an
// operation fails (division by zero, a non-integer exponent, ...) the
// Context remembers the first such error and every subsequent operation
// becomes a no-op, simply returning its z argument, until (*Context).Err is
// called to retrieve and clear it. This mirrors the error-latching
// behavior of IEEE-754 style contexts: a calculator program can chain a
// sequence of operations and check for failure once at the end rather than
// after every step.
package context

import (
	"io"

	"github.com/dndm/bcnum"
)

// A Context wraps bcnum.Number operations with a default scale, a shared
// interrupt Signal and an output sink.
type Context struct {
	scale   int
	sig     *bcnum.Signal
	w       io.Writer
	nchars  int
	lineLen int
	err     error
}

// New returns a Context with the given default scale. Output defaults to
// io.Discard until SetOutput is called.
func New(scale int) *Context {
	return &Context{
		scale:   scale,
		sig:     new(bcnum.Signal),
		w:       io.Discard,
		lineLen: bcnum.PrintWidth,
	}
}

// Scale returns c's default scale.
func (c *Context) Scale() int {
	return c.scale
}

// SetScale sets c's default scale and returns c.
func (c *Context) SetScale(scale int) *Context {
	c.scale = scale
	return c
}

// Signal returns the interrupt Signal shared by every operation c performs.
// Raising it from another goroutine aborts any operation currently in
// progress on c.
func (c *Context) Signal() *bcnum.Signal {
	return c.sig
}

// SetOutput sets the sink Print writes to and returns c. It also resets
// the output column tracker, so it should not be called mid-line.
func (c *Context) SetOutput(w io.Writer) *Context {
	c.w = w
	c.nchars = 0
	return c
}

// SetLineLength sets the column at which Print wraps output and returns c.
func (c *Context) SetLineLength(n int) *Context {
	c.lineLen = n
	return c
}

// Err returns the first error encountered since the last call to Err, and
// clears c's error state so subsequent operations run again.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// New returns a new bcnum.Number with value 0.
func (c *Context) New() *bcnum.Number {
	return bcnum.New(0)
}

// NewUint64 returns a new bcnum.Number set to the value of x.
func (c *Context) NewUint64(x uint64) *bcnum.Number {
	return c.New().SetUint64(x)
}

// Add sets z = x + y at c's scale and returns z.
func (c *Context) Add(z, x, y *bcnum.Number) *bcnum.Number {
	if c.err != nil {
		return z
	}
	if err := z.Add(x, y, c.scale, c.sig); err != nil {
		c.err = err
	}
	return z
}

// Sub sets z = x - y at c's scale and returns z.
func (c *Context) Sub(z, x, y *bcnum.Number) *bcnum.Number {
	if c.err != nil {
		return z
	}
	if err := z.Sub(x, y, c.scale, c.sig); err != nil {
		c.err = err
	}
	return z
}

// Mul sets z = x * y at c's scale and returns z.
func (c *Context) Mul(z, x, y *bcnum.Number) *bcnum.Number {
	if c.err != nil {
		return z
	}
	if err := z.Mul(x, y, c.scale, c.sig); err != nil {
		c.err = err
	}
	return z
}

// Div sets z = x / y at c's scale and returns z. Dividing by zero latches
// StatusDivideByZero.
func (c *Context) Div(z, x, y *bcnum.Number) *bcnum.Number {
	if c.err != nil {
		return z
	}
	if err := z.Div(x, y, c.scale, c.sig); err != nil {
		c.err = err
	}
	return z
}

// Mod sets z = x - (x/y)*y at c's scale and returns z.
func (c *Context) Mod(z, x, y *bcnum.Number) *bcnum.Number {
	if c.err != nil {
		return z
	}
	if err := z.Mod(x, y, c.scale, c.sig); err != nil {
		c.err = err
	}
	return z
}

// Pow sets z = x**y at c's scale and returns z. y must be an integer.
func (c *Context) Pow(z, x, y *bcnum.Number) *bcnum.Number {
	if c.err != nil {
		return z
	}
	if err := z.Pow(x, y, c.scale, c.sig); err != nil {
		c.err = err
	}
	return z
}

// Sqrt sets z to the square root of x at c's scale and returns z.
func (c *Context) Sqrt(z, x *bcnum.Number) *bcnum.Number {
	if c.err != nil {
		return z
	}
	if err := z.Sqrt(x, c.scale, c.sig); err != nil {
		c.err = err
	}
	return z
}

// Parse sets z to the value of val read in the given base and returns z.
func (c *Context) Parse(z *bcnum.Number, val string, base int) *bcnum.Number {
	if c.err != nil {
		return z
	}
	if err := z.Parse(val, base, c.sig); err != nil {
		c.err = err
	}
	return z
}

// Print writes n to c's output sink in the given base and returns c.
func (c *Context) Print(n *bcnum.Number, base int, newline bool) *Context {
	if c.err != nil {
		return c
	}
	if err := n.Print(c.w, base, newline, &c.nchars, c.lineLen, c.sig); err != nil {
		c.err = err
	}
	return c
}
