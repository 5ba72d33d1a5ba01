// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hub75test

import "github.com/periph-hub75/hub75"

// Decode simulates the shift register, LE latch, OE pulse, and row
// address behavior driven by buf (a model.Len()-word buffer produced by
// model.InitBuffer and hub75.BufferModel.WriteRGB/WriteColor) and
// reconstructs the brightness the buffer model wrote into it:
// result[row][col][color] is the number of OE-active cycles during which
// that pixel's data bit was latched high.
//
// It runs the cyclic buffer twice, discarding the first pass. A single
// forward pass is exact for every sub-frame except the last: its OE
// pulse can extend past index Len()-1 and sample shift-register state
// that only a prior lap of the buffer establishes. Decode must hold for
// every sub-frame, including that one, so it primes the shift registers
// with one full lap before it starts recording.
func Decode(buf []uint32, enc hub75.Encoder, model *hub75.BufferModel) [][][3]int {
	rows, cols := enc.Rows(), enc.Cols()
	addrBits := enc.AddrBits()
	dataBits := enc.DataBits()
	dataWords := enc.DataWords()
	n := model.Len()
	addrMask := uint32(1<<uint(addrBits)) - 1

	type coord struct{ row, col, color int }
	reverse := make(map[hub75.DataAddr]coord, rows*cols*3)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			for color := 0; color < 3; color++ {
				reverse[enc.Encode(row, col, color)] = coord{row, col, color}
			}
		}
	}

	result := make([][][3]int, rows)
	for r := range result {
		result[r] = make([][3]int, cols)
	}

	shiftReg := make([][]bool, dataBits)
	outputReg := make([][]bool, dataBits)
	for l := range shiftReg {
		shiftReg[l] = make([]bool, dataWords)
		outputReg[l] = make([]bool, dataWords)
	}

	for pass := 0; pass < 2; pass++ {
		recording := pass == 1
		var addr int
		for c := 0; c < n; c++ {
			w := buf[c]
			oeActive := w&1 == 0
			le := (w>>1)&1 != 0
			addr = int((w >> 2) & addrMask)

			for lane := 0; lane < dataBits; lane++ {
				bitVal := (w>>uint(2+addrBits+lane))&1 != 0
				reg := shiftReg[lane]
				copy(reg[1:], reg[:len(reg)-1])
				reg[0] = bitVal
			}
			if le {
				for lane := 0; lane < dataBits; lane++ {
					copy(outputReg[lane], shiftReg[lane])
				}
			}
			if recording && oeActive {
				for lane := 0; lane < dataBits; lane++ {
					for k := 0; k < dataWords; k++ {
						if !outputReg[lane][k] {
							continue
						}
						cd, ok := reverse[hub75.DataAddr{Addr: addr, Bit: lane, Word: k}]
						if !ok {
							continue
						}
						result[cd.row][cd.col][cd.color]++
					}
				}
			}
		}
	}
	return result
}
