// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hub75

import "github.com/periph-hub75/hub75/common"

// SubFrame is one (bit-plane, row-address) scheduling unit: the atomic
// piece of the cyclic buffer that loads one row-group's shift-register
// data for one bit-plane, latches it, and holds it lit for a
// binary-weighted OE pulse.
type SubFrame struct {
	// Bit is the bit-plane this sub-frame belongs to (0 = least
	// significant, weighted minPulse cycles).
	Bit int
	// Addr is the row address this sub-frame lights.
	Addr int

	// OELength is the OE-active pulse width in cycles: minPulse << Bit.
	OELength int

	// DataOffset is the cycle at which this sub-frame's shift-register data
	// begins loading.
	DataOffset int
	// OEOffset is the cycle at which this sub-frame's OE pulse begins.
	OEOffset int
	// AddrTransition is the cyclic index at which the address lines switch
	// from the previous sub-frame's address to this one.
	AddrTransition int
}

// allocateSubFrames builds the numBitPlanes * 2^addrBits sub-frames in
// their traversal order: bit planes interleave even-ascending with
// odd-descending so the longest and shortest OE pulses alternate, and
// within each bit plane addr runs ascending.
func allocateSubFrames(numBitPlanes, addrBits, minPulse int) []SubFrame {
	groups := 1 << addrBits
	sfs := make([]SubFrame, 0, numBitPlanes*groups)
	for i := 0; i < numBitPlanes; i++ {
		bit := i
		if i%2 != 0 {
			bit = (numBitPlanes &^ 1) - i
		}
		for addr := 0; addr < groups; addr++ {
			sfs = append(sfs, SubFrame{
				Bit:      bit,
				Addr:     addr,
				OELength: minPulse << uint(bit),
			})
		}
	}
	return sfs
}

// packSubFrames lays the sub-frames out end to end in allocation order:
// dataWords cycles of shift-in, one LE-strobe cycle, then an OE-active
// window that overlaps only the following sub-frame's data-load window.
// It returns the total cyclic buffer length.
func packSubFrames(sfs []SubFrame, dataWords int) int {
	cur := 0
	for i := range sfs {
		sf := &sfs[i]
		sf.DataOffset = cur
		dataEnd := cur + dataWords
		sf.OEOffset = dataEnd + 1
		oeEnd := sf.OEOffset + sf.OELength
		next := dataEnd
		if x := oeEnd - dataWords; x > next {
			next = x
		}
		cur = next
	}
	return cur
}

// computeAddrTransitions fills in AddrTransition for every sub-frame: the
// cyclic index midway between the previous sub-frame's OE-pulse end and
// this one's OE-pulse start, at which the address lines switch.
func computeAddrTransitions(sfs []SubFrame, bufLen int) {
	n := len(sfs)
	for i := range sfs {
		prev := &sfs[(i-1+n)%n]
		cur := &sfs[i]
		oeEndPrev := prev.OEOffset + prev.OELength
		cur.AddrTransition = common.Midpoint(oeEndPrev, cur.OEOffset, bufLen)
	}
}
