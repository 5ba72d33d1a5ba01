// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains small numeric helpers for the hub75 package:
// cyclic-buffer midpoint arithmetic.
package common

// Midpoint returns the index midway between start and end on a cyclic
// buffer of the given length, unwrapping end across the ring boundary
// first so the average is never taken across the seam.
func Midpoint(start, end, length int) int {
	if end < start {
		end += length
	}
	return ((start + end) / 2) % length
}
