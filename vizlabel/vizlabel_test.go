// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizlabel

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExp(t *testing.T) {
	check := func(val float64, prefix string, decimal bool, want string) {
		t.Helper()
		if got := Exp(val, prefix, decimal); got != want {
			t.Errorf("Exp(%v, %q, %v) = %q, want %q", val, prefix, decimal, got, want)
		}
	}

	check(1, "", false, "10⁰")
	check(10, "", false, "10¹")
	check(10000, "", false, "10⁴")
	check(20000, "", false, "2·10⁴")
	check(25000, "", false, "25·10³")
	check(25000, "", true, "2.5·10⁴")
	check(1000000000000, "", false, "10¹²")
	check(42, "", false, "42")
	check(10000, "N = ", false, "N = 10⁴")
	check(0, "", false, "10⁰")
}

func TestShorten(t *testing.T) {
	in := []string{"short", "exactly-20-chars-abc", "a rather long benchmark name", "ünïcödé-label-that-is-long"}
	out := Shorten(in, 20)

	for i, l := range out {
		if utf8.RuneCountInString(l) > 20 {
			t.Errorf("label %d %q is %d runes, want <= 20", i, l, utf8.RuneCountInString(l))
		}
	}
	if out[0] != "short" {
		t.Errorf("short label modified: %q", out[0])
	}
	if out[1] != "exactly-20-chars-abc" {
		t.Errorf("boundary label modified: %q", out[1])
	}
	if !strings.HasSuffix(out[2], "...") {
		t.Errorf("truncated label %q lacks ellipsis", out[2])
	}
	if utf8.RuneCountInString(out[2]) != 20 {
		t.Errorf("truncated label %q is %d runes, want 20", out[2], utf8.RuneCountInString(out[2]))
	}
	if !strings.HasSuffix(out[3], "...") {
		t.Errorf("truncated label %q lacks ellipsis", out[3])
	}

	// The input is untouched.
	if in[2] != "a rather long benchmark name" {
		t.Errorf("input mutated: %q", in[2])
	}
}

func TestShortenTiny(t *testing.T) {
	// Tiny limits still respect the cap.
	for _, max := range []int{0, 1, 2, 3} {
		out := Shorten([]string{"abcdefgh"}, max)
		if utf8.RuneCountInString(out[0]) > max {
			t.Errorf("max %d: got %q (%d runes)", max, out[0], utf8.RuneCountInString(out[0]))
		}
	}
}
