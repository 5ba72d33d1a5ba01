// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hub75 drives HUB75-style chained RGB LED matrix panels by
// precomputing a cyclic waveform that, when streamed continuously to a
// parallel GPIO peripheral, produces a flicker-minimized, PWM-modulated
// image.
//
// A panel is addressed by a shift register per data lane, one row-address
// bus selecting which of 2^addrBits row-groups is currently driven, an
// output-enable (OE) line that lights the selected row for a
// binary-weighted pulse, and a latch-enable (LE) line that copies the
// shift register into the output drivers. BufferModel lays out one
// sub-frame per (bit-plane, row-address) pair into a single cyclic word
// buffer so that shift-in windows, OE pulses, and address transitions
// never collide, and WriteRGB/WriteColor flip the data bits of that
// buffer per pixel.
//
// Geometry translates logical (row, col, color) coordinates into the
// physical (row-address, data lane, shift-register word) a panel expects;
// WrappedGeometry serializes multiple parallel data lanes into a single
// lane for backends that stream one bit per clock.
//
// Driver binds a Geometry, a BufferModel, and a PinDriver collaborator
// (the streaming peripheral: DMA ring, clock divider, interrupt routing)
// and implements periph.io/x/conn/v3/display.Drawer so it can be driven
// like any other periph display.
//
// # Word layout
//
// One word per clock cycle: bit 0 is OE (active low), bit 1 is LE, bits
// 2..2+addrBits-1 are the row address, and the remaining bits are the
// parallel data lanes.
//
// Package hub75test provides a non-hardware PinDriver and a waveform
// decoder for local testing; package hub75preview renders a decoded frame
// to the terminal.
package hub75
