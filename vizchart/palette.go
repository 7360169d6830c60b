// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizchart

import (
	"fmt"
	"image/color"
)

// The palette below was assembled for experiment plots: a set of
// muted primaries (c*), warm reds (r*), cool blue-greens (b*, bb*),
// and yellows (y*) that read well side by side on white.
var palette = map[string]color.Color{
	"c1": rgb(0xb1494a),
	"c2": rgb(0x256482),
	"c3": rgb(0x2f9c5a),
	"c4": rgb(0x28464f),

	"r1": rgb(0xfa4d4a),
	"r2": rgb(0xfa3a51),
	"r3": rgb(0xf41922),
	"r4": rgb(0xce1922),
	"r5": rgb(0xf07b71),
	"r6": rgb(0xf0a694),
	"r7": rgb(0xf78177),

	"b1": rgb(0x97e6db),
	"b2": rgb(0xc6e6db),
	"b3": rgb(0xcef0e4),
	"b4": rgb(0x9ccfc4),
	"b5": rgb(0xaedbf2),
	"b6": rgb(0xb0e6db),
	"b7": rgb(0xb6fcda),
	"b8": rgb(0x7bd490),

	"bb0": rgb(0xffa685),
	"bb1": rgb(0x75b0a2),
	"bb2": rgb(0xcef0e4),
	"bb3": rgb(0xb6fcda),
	"bb4": rgb(0x7ed7b8),
	"bb5": rgb(0x7bd490),

	"y1": rgb(0xffa728),
	"y2": rgb(0xff9642),
	"y3": rgb(0xffab69),

	"peach1": rgb(0xff9868),

	"bt1":        rgb(0x55819e),
	"bt2":        rgb(0x538f6f),
	"blue_klein": rgb(0x002fa7),
}

func rgb(v uint32) color.Color {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Palette returns the named color palette. The returned map is a
// fresh copy on every call, so callers may modify it freely without
// affecting other callers.
func Palette() map[string]color.Color {
	out := make(map[string]color.Color, len(palette))
	for k, v := range palette {
		out[k] = v
	}
	return out
}

// ParseHex parses a "#rrggbb" color string.
func ParseHex(s string) (color.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("bad color %q: %v", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
