// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestMidpoint(t *testing.T) {
	cases := []struct {
		start, end, length, want int
	}{
		{0, 10, 100, 5},
		{90, 10, 100, 0}, // end wraps: unwrapped end=110, (90+110)/2=100, %100=0
		{95, 5, 100, 0},  // unwrapped end=105, (95+105)/2=100, %100=0
	}
	for _, c := range cases {
		if got := Midpoint(c.start, c.end, c.length); got != c.want {
			t.Errorf("Midpoint(%d, %d, %d) = %d, want %d", c.start, c.end, c.length, got, c.want)
		}
	}
}
