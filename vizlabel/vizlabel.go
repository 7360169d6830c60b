// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vizlabel formats axis and legend labels for plots of
// measurement data.
package vizlabel

import (
	"strconv"
	"strings"
)

const ellipsis = "..."

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

func superscript(n int) string {
	var sb strings.Builder
	for _, r := range strconv.Itoa(n) {
		sb.WriteRune(superscripts[r])
	}
	return sb.String()
}

// Exp formats val in power-of-ten notation for tick labels on axes
// that span several orders of magnitude. For example, 10000 becomes
// "10⁴" and 20000 becomes "2·10⁴". The optional prefix is prepended
// verbatim (e.g. "N = ").
//
// If decimal is set, one digit of the mantissa is shifted after the
// decimal point, so 25000 becomes "2.5·10⁴" rather than "25·10³".
// Values that are not a multiple of a positive power of ten are
// formatted plainly.
func Exp(val float64, prefix string, decimal bool) string {
	exp := 0
	rem := int(val)
	for rem%10 == 0 && rem > 0 {
		exp++
		rem /= 10
	}
	switch {
	case rem > 1 && exp >= 1:
		if decimal {
			mant := strconv.FormatFloat(float64(rem)/10, 'f', -1, 64)
			return prefix + mant + "·10" + superscript(exp+1)
		}
		return prefix + strconv.Itoa(rem) + "·10" + superscript(exp)
	case rem > 1:
		return prefix + strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return prefix + "10" + superscript(exp)
	}
}

// Shorten caps every label at max runes. Labels over the limit are
// truncated so that, with the trailing "..." marker, they are exactly
// max runes long. The input is not modified.
func Shorten(labels []string, max int) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		rs := []rune(l)
		if len(rs) <= max {
			out[i] = l
			continue
		}
		if max <= 0 {
			out[i] = ""
			continue
		}
		if max <= len(ellipsis) {
			// No room for text at all; the marker itself
			// gets cut down.
			out[i] = ellipsis[:max]
			continue
		}
		out[i] = string(rs[:max-len(ellipsis)]) + ellipsis
	}
	return out
}
