// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hub75

import "testing"

// TestS1Layout exercises scenario S1: FullDisplay<rows=32, cols=64,
// addr_bits=4, interleaved>, min_pulse=2, num_bit_planes=8.
func TestS1Layout(t *testing.T) {
	g, err := NewGeometry(32, 64, 4, Interleaved)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewBufferModel(g, 2, 8)
	if err != nil {
		t.Fatal(err)
	}
	const wantBufLen = 12336
	if m.Len() != wantBufLen {
		t.Fatalf("Len() = %d, want %d", m.Len(), wantBufLen)
	}

	buf := make([]uint32, m.Len())
	m.InitBuffer(buf)

	oeClear := 0
	for _, w := range buf {
		if w&1 == 0 {
			oeClear++
		}
	}
	wantOEClear := 2 * 255 * 16
	if oeClear != wantOEClear {
		t.Errorf("OE-clear cycles = %d, want %d", oeClear, wantOEClear)
	}
}

// TestPackingNonOverlap exercises property 1: no two sub-frames' data-load
// intervals overlap on the circular buffer, and each OE-active interval
// overlaps at most the immediately following sub-frame's data interval.
func TestPackingNonOverlap(t *testing.T) {
	g, err := NewGeometry(16, 32, 2, Interleaved)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewBufferModel(g, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	n := m.Len()
	owner := make([]int, n) // -1 = free, else index of owning sub-frame's data interval
	for i := range owner {
		owner[i] = -1
	}
	sfs := m.SubFrames()
	dataWords := g.DataWords()
	for i, sf := range sfs {
		for c := 0; c < dataWords; c++ {
			idx := (sf.DataOffset + c) % n
			if owner[idx] != -1 {
				t.Fatalf("data interval of sub-frame %d overlaps sub-frame %d at cycle %d", i, owner[idx], idx)
			}
			owner[idx] = i
		}
	}
	for i, sf := range sfs {
		next := (i + 1) % len(sfs)
		for c := 0; c < sf.OELength; c++ {
			idx := (sf.OEOffset + c) % n
			o := owner[idx]
			if o != -1 && o != i && o != next {
				t.Errorf("OE interval of sub-frame %d overlaps data interval of unrelated sub-frame %d at cycle %d", i, o, idx)
			}
		}
	}
}

// TestLETiming exercises property 2.
func TestLETiming(t *testing.T) {
	g, err := NewGeometry(16, 32, 2, Interleaved)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewBufferModel(g, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]uint32, m.Len())
	m.InitBuffer(buf)

	leCount := 0
	for _, w := range buf {
		if (w>>1)&1 != 0 {
			leCount++
		}
	}
	want := 4 * (1 << 2) // num_bit_planes * 2^addr_bits
	if leCount != want {
		t.Errorf("LE cycles = %d, want %d", leCount, want)
	}

	n := m.Len()
	for i, sf := range m.SubFrames() {
		wantLE := (sf.DataOffset + g.DataWords()) % n
		if (buf[wantLE]>>1)&1 == 0 {
			t.Errorf("sub-frame %d: expected LE set at cycle %d", i, wantLE)
		}
		for c := 0; c < sf.OELength; c++ {
			idx := (sf.OEOffset + c) % n
			if idx == wantLE {
				t.Errorf("sub-frame %d: LE cycle %d falls inside its own OE pulse", i, wantLE)
			}
		}
	}
}

// TestAddrValidity exercises property 4: the address lines during a
// sub-frame's entire OE-active interval equal its own addr.
func TestAddrValidity(t *testing.T) {
	g, err := NewGeometry(16, 32, 2, Grouped)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewBufferModel(g, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]uint32, m.Len())
	m.InitBuffer(buf)

	n := m.Len()
	mask := addrMask(g.AddrBits())
	for i, sf := range m.SubFrames() {
		for c := 0; c < sf.OELength; c++ {
			idx := (sf.OEOffset + c) % n
			got := int((buf[idx] & mask) >> addrShift)
			if got != sf.Addr {
				t.Errorf("sub-frame %d cycle %d: addr = %d, want %d", i, idx, got, sf.Addr)
			}
		}
	}
}
