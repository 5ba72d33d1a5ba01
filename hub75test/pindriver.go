// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hub75test provides a non-hardware hub75.PinDriver and a
// waveform decoder, for testing and for running examples while waiting
// for real hardware.
package hub75test

import "github.com/periph-hub75/hub75"

// PinDriver is an in-memory hub75.PinDriver: word buffers are plain
// slices acquired in logical cycle order, and FlipTo acknowledges
// immediately.
//
// Swizzle records the byte-swizzle a real parallel-output peripheral's
// FIFO would apply to cycle indices (XOR 2 for 8-bit mode, XOR 1 for
// 16-bit). Go has no indexing-operator overload, so Buffer cannot make
// that swizzle transparent the way the original hardware's indexing
// operator does; WireOrder exposes what such a FIFO would actually
// stream, for callers that need it.
type PinDriver struct {
	Swizzle int

	buffers [][]uint32
	front   int
}

var _ hub75.PinDriver = &PinDriver{}

// Setup allocates numBuffers word buffers of length bufLen. pins and cfg
// are accepted but unused; this backend drives no real GPIO.
func (p *PinDriver) Setup(pins hub75.Pins, cfg hub75.Config, numBuffers, bufLen int) error {
	p.buffers = make([][]uint32, numBuffers)
	for i := range p.buffers {
		p.buffers[i] = make([]uint32, bufLen)
	}
	p.front = 0
	return nil
}

// Buffer returns buffer i for in-place mutation, in logical cycle order.
func (p *PinDriver) Buffer(i int) []uint32 {
	return p.buffers[i]
}

// FlipTo records which buffer is notionally being streamed.
func (p *PinDriver) FlipTo(i int) error {
	p.front = i
	return nil
}

// FlipDone always reports true: this backend has no asynchronous
// hardware latency to model.
func (p *PinDriver) FlipDone() bool {
	return true
}

// Front returns the index of the buffer currently considered "front"
// (the one a real peripheral would be streaming).
func (p *PinDriver) Front() int { return p.front }

// NumBuffers returns how many word buffers were allocated.
func (p *PinDriver) NumBuffers() int { return len(p.buffers) }

// WireOrder returns a copy of buffer i permuted by Swizzle, representing
// the byte order a real FIFO with this swizzle would stream.
func (p *PinDriver) WireOrder(i int) []uint32 {
	src := p.buffers[i]
	out := make([]uint32, len(src))
	for idx := range src {
		out[idx^p.Swizzle] = src[idx]
	}
	return out
}
