// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hub75

import (
	"errors"
	"fmt"
)

// Control bit positions in a word buffer; row address starts at addrShift,
// data lanes follow immediately after the address bits.
const (
	bitOE     = 0
	bitLE     = 1
	addrShift = 2
)

// ErrInvalidTiming is returned by NewBufferModel for a non-positive
// minPulse or numBitPlanes.
var ErrInvalidTiming = errors.New("hub75: invalid timing parameters")

// BufferModel is a geometry- and timing-aware planner: it computes the
// sub-frame schedule once at construction and exposes InitBuffer and
// WriteRGB/WriteColor to stamp control and data bits into a physical word
// buffer borrowed from the pin driver.
type BufferModel struct {
	enc          Encoder
	minPulse     int
	numBitPlanes int

	subFrames []SubFrame
	bufLen    int

	// dataOffsetIdx[bit][addr] is the DataOffset of the sub-frame for that
	// (bit-plane, row-address) pair; built once so WriteColor never
	// searches subFrames on the hot path.
	dataOffsetIdx [][]int
}

// NewBufferModel allocates and packs the sub-frame schedule for enc, given
// minPulse (the bit-plane-0 OE pulse width in clock cycles) and
// numBitPlanes.
func NewBufferModel(enc Encoder, minPulse, numBitPlanes int) (*BufferModel, error) {
	if minPulse <= 0 || numBitPlanes <= 0 {
		return nil, fmt.Errorf("%w: minPulse=%d numBitPlanes=%d", ErrInvalidTiming, minPulse, numBitPlanes)
	}
	sfs := allocateSubFrames(numBitPlanes, enc.AddrBits(), minPulse)
	bufLen := packSubFrames(sfs, enc.DataWords())
	computeAddrTransitions(sfs, bufLen)

	groups := 1 << enc.AddrBits()
	idx := make([][]int, numBitPlanes)
	for b := range idx {
		idx[b] = make([]int, groups)
	}
	for _, sf := range sfs {
		idx[sf.Bit][sf.Addr] = sf.DataOffset
	}

	return &BufferModel{
		enc:           enc,
		minPulse:      minPulse,
		numBitPlanes:  numBitPlanes,
		subFrames:     sfs,
		bufLen:        bufLen,
		dataOffsetIdx: idx,
	}, nil
}

// Len returns the cyclic word-buffer length this model requires.
func (m *BufferModel) Len() int { return m.bufLen }

// NumBits returns the control-and-data word width: OE + LE + addr bits +
// data bits.
func (m *BufferModel) NumBits() int {
	return addrShift + m.enc.AddrBits() + m.enc.DataBits()
}

// MinPulse returns the bit-plane-0 OE pulse width this model was built
// with.
func (m *BufferModel) MinPulse() int { return m.minPulse }

// NumBitPlanes returns the number of bit-planes this model was built
// with.
func (m *BufferModel) NumBitPlanes() int { return m.numBitPlanes }

// SubFrames returns a copy of the computed sub-frame schedule, for
// introspection (tests, previews, debugging) without re-deriving it.
func (m *BufferModel) SubFrames() []SubFrame {
	out := make([]SubFrame, len(m.subFrames))
	copy(out, m.subFrames)
	return out
}

func (m *BufferModel) String() string {
	return fmt.Sprintf("BufferModel(bufLen=%d numBitPlanes=%d minPulse=%d subFrames=%d)",
		m.bufLen, m.numBitPlanes, m.minPulse, len(m.subFrames))
}

// InitBuffer stamps a freshly allocated word buffer with the OE/LE/address
// control pattern. buf must have length >= Len(); data lane bits are left
// clear, ready for WriteRGB/WriteColor.
func (m *BufferModel) InitBuffer(buf []uint32) {
	n := m.bufLen
	for i := 0; i < n; i++ {
		buf[i] = 1 << bitOE // OE inactive (high) everywhere until cleared below.
	}
	dataWords := m.enc.DataWords()
	for _, sf := range m.subFrames {
		le := (sf.DataOffset + dataWords) % n
		buf[le] |= 1 << bitLE
		for c := 0; c < sf.OELength; c++ {
			idx := (sf.OEOffset + c) % n
			buf[idx] &^= 1 << bitOE
		}
	}

	mask := addrMask(m.enc.AddrBits())
	nSF := len(m.subFrames)
	for i := range m.subFrames {
		sf := m.subFrames[i]
		next := m.subFrames[(i+1)%nSF]
		addrBits := uint32(sf.Addr) << addrShift
		for c := sf.AddrTransition; c != next.AddrTransition; c = (c + 1) % n {
			buf[c] = (buf[c] &^ mask) | addrBits
		}
	}
}

func addrMask(addrBits int) uint32 {
	return ((uint32(1) << uint(addrBits)) - 1) << addrShift
}

// WriteRGB writes r, g, b (each presented as valueBits wide) for (row,
// col) into buf across all bit-planes. Safe to call on a buffer the pin
// driver is not currently streaming.
func (m *BufferModel) WriteRGB(buf []uint32, row, col, r, g, b, valueBits int) {
	m.WriteColor(buf, row, col, 0, r, valueBits)
	m.WriteColor(buf, row, col, 1, g, valueBits)
	m.WriteColor(buf, row, col, 2, b, valueBits)
}

// WriteColor writes value (valueBits wide) for one color plane of one
// pixel into buf across all bit-planes. Only the top numBitPlanes MSBs of
// value are used; if valueBits < numBitPlanes, the missing low-order
// planes are cleared.
func (m *BufferModel) WriteColor(buf []uint32, row, col, color, value, valueBits int) {
	d := m.enc.Encode(row, col, color)
	n := m.bufLen
	dataWords := m.enc.DataWords()
	laneBit := uint32(1) << uint(addrShift+m.enc.AddrBits()+d.Bit)
	for p := 0; p < m.numBitPlanes; p++ {
		sourceBit := p + (valueBits - m.numBitPlanes)
		idx := (m.dataOffsetIdx[p][d.Addr] + (dataWords - d.Word)) % n
		if sourceBit >= 0 && (value>>uint(sourceBit))&1 != 0 {
			buf[idx] |= laneBit
		} else {
			buf[idx] &^= laneBit
		}
	}
}
