// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "sync/atomic"

// Signal is a cooperative interrupt flag polled by the inner loops of
// Cmp, Add, Sub, Mul, Div, Mod, Pow and Sqrt. It is the explicit-parameter
// replacement for the process-wide signal flag the reference bc
// implementation consults through a global: passing it as a parameter
// keeps the kernel free of package-level mutable state while preserving
// the same cooperative-cancellation behavior.
//
// A nil *Signal is always clear: operations given a nil Signal never
// interrupt.
//
// The zero value of Signal is a clear flag, ready to use.
type Signal struct {
	set atomic.Bool
}

// Raise marks s as interrupted. Safe to call from a signal handler or any
// other goroutine concurrently with the operation polling s.
func (s *Signal) Raise() {
	if s != nil {
		s.set.Store(true)
	}
}

// Clear resets s to the non-interrupted state.
func (s *Signal) Clear() {
	if s != nil {
		s.set.Store(false)
	}
}

// IsSet reports whether s has been raised. A nil receiver is never set.
func (s *Signal) IsSet() bool {
	return s != nil && s.set.Load()
}
