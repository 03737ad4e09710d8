// Copyright 2024 The bcnum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"fmt"
	"strings"
)

// String returns n's base-10 representation, e.g. "-123.45". It has no
// counterpart in the reference implementation — bc_num_print only ever
// wrote to stdout — but is the natural Go extension for a value type,
// following the teacher package's Decimal.String.
func (n *Number) String() string {
	var b strings.Builder
	nchars := 0
	// Print only fails when writing to its sink fails; strings.Builder
	// never does.
	_ = n.Print(&b, 10, false, &nchars, PrintWidth, nil)
	return b.String()
}

// Format implements fmt.Formatter. 'v' and 's' print n base 10; 'x' and 'X'
// print n in hexadecimal (base 16), lowercase for 'x' and uppercase for
// 'X'; any other verb reports
// itself as unsupported, matching fmt's convention for types that only
// handle a subset of verbs.
func (n *Number) Format(f fmt.State, verb rune) {
	var base int
	switch verb {
	case 'v', 's':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		fmt.Fprintf(f, "%%!%c(*bcnum.Number=%s)", verb, n.String())
		return
	}

	var b strings.Builder
	nchars := 0
	_ = n.Print(&b, base, false, &nchars, PrintWidth, nil)
	s := b.String()
	if verb == 'x' {
		s = strings.ToLower(s)
	}
	fmt.Fprint(f, s)
}
