// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hub75

import "fmt"

// WrappedGeometry serializes a base Encoder's parallel data lanes into a
// single serial lane, for backends (one-bit SPI-like peripherals) that
// stream one data bit per clock instead of many in parallel.
type WrappedGeometry struct {
	base Encoder
}

// NewWrappedGeometry wraps base, collapsing its data_bits lanes into a
// single lane of width base.DataWords()*base.DataBits().
func NewWrappedGeometry(base Encoder) *WrappedGeometry {
	return &WrappedGeometry{base: base}
}

// Encode implements Encoder. The wrapped Bit is always 0; the base Bit is
// folded into Word.
func (w *WrappedGeometry) Encode(row, col, color int) DataAddr {
	d := w.base.Encode(row, col, color)
	return DataAddr{Addr: d.Addr, Bit: 0, Word: d.Bit*w.base.DataWords() + d.Word}
}

// AddrBits implements Encoder.
func (w *WrappedGeometry) AddrBits() int { return w.base.AddrBits() }

// DataBits implements Encoder. Always 1: the wrapping transform serializes
// every parallel lane into the single remaining one.
func (w *WrappedGeometry) DataBits() int { return 1 }

// DataWords implements Encoder.
func (w *WrappedGeometry) DataWords() int { return w.base.DataWords() * w.base.DataBits() }

// Rows implements Encoder, passed through from the base geometry.
func (w *WrappedGeometry) Rows() int { return w.base.Rows() }

// Cols implements Encoder, passed through from the base geometry.
func (w *WrappedGeometry) Cols() int { return w.base.Cols() }

func (w *WrappedGeometry) String() string {
	return fmt.Sprintf("WrappedGeometry(%v)", w.base)
}

var _ Encoder = &WrappedGeometry{}
