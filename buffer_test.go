// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hub75

import "testing"

func TestNewBufferModelInvalidTiming(t *testing.T) {
	g, err := NewGeometry(16, 32, 2, Interleaved)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewBufferModel(g, 0, 4); err == nil {
		t.Error("expected error for zero minPulse")
	}
	if _, err := NewBufferModel(g, 1, 0); err == nil {
		t.Error("expected error for zero numBitPlanes")
	}
}

// TestOEDutyLaw exercises property 3.
func TestOEDutyLaw(t *testing.T) {
	cases := []struct {
		rows, cols, addrBits, minPulse, numBitPlanes int
	}{
		{32, 64, 4, 2, 8},
		{16, 32, 2, 1, 4},
		{8, 16, 1, 3, 3},
	}
	for _, c := range cases {
		g, err := NewGeometry(c.rows, c.cols, c.addrBits, Interleaved)
		if err != nil {
			t.Fatal(err)
		}
		m, err := NewBufferModel(g, c.minPulse, c.numBitPlanes)
		if err != nil {
			t.Fatal(err)
		}
		buf := make([]uint32, m.Len())
		m.InitBuffer(buf)

		got := 0
		for _, w := range buf {
			if w&1 == 0 {
				got++
			}
		}
		want := c.minPulse * ((1 << uint(c.numBitPlanes)) - 1) * (1 << uint(c.addrBits))
		if got != want {
			t.Errorf("geometry %+v: OE-clear cycles = %d, want %d", c, got, want)
		}
	}
}

func TestNumBits(t *testing.T) {
	g, err := NewGeometry(32, 64, 4, Interleaved)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewBufferModel(g, 2, 8)
	if err != nil {
		t.Fatal(err)
	}
	// 2 (OE, LE) + 4 (addr) + 6 (data lanes) = 12.
	if got, want := m.NumBits(), 12; got != want {
		t.Errorf("NumBits() = %d, want %d", got, want)
	}
	if got, want := WordWidth(m.NumBits()), 16; got != want {
		t.Errorf("WordWidth(%d) = %d, want %d", m.NumBits(), got, want)
	}
}
