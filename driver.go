// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hub75

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
)

// ErrInvalidNumBuffers is returned by NewDriver when numBuffers is
// neither 1 nor 2.
var ErrInvalidNumBuffers = errors.New("hub75: numBuffers must be 1 or 2")

// Driver binds an Encoder, a BufferModel, and a PinDriver collaborator; it
// owns the notion of which word buffer is "back" and exposes WriteRGB,
// Flip, and FlipDone to a caller driving the display at runtime.
type Driver struct {
	enc     Encoder
	model   *BufferModel
	pd      PinDriver
	numBuf  int
	back    int
	valBits int
}

// NewDriver builds the buffer model for enc, asks pd to allocate
// numBuffers word buffers of the computed length, and initializes each
// with InitBuffer. numBuffers must be 1 (single-buffered) or 2
// (double-buffered, back buffer starts at index 1).
func NewDriver(enc Encoder, minPulse, numBitPlanes int, pd PinDriver, pins Pins, cfg Config, numBuffers int) (*Driver, error) {
	if numBuffers != 1 && numBuffers != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNumBuffers, numBuffers)
	}
	model, err := NewBufferModel(enc, minPulse, numBitPlanes)
	if err != nil {
		return nil, err
	}
	if err := pd.Setup(pins, cfg, numBuffers, model.Len()); err != nil {
		return nil, fmt.Errorf("hub75: pin driver setup: %w", err)
	}
	for i := 0; i < numBuffers; i++ {
		model.InitBuffer(pd.Buffer(i))
	}
	back := 0
	if numBuffers == 2 {
		back = 1
	}
	return &Driver{
		enc:     enc,
		model:   model,
		pd:      pd,
		numBuf:  numBuffers,
		back:    back,
		valBits: numBitPlanes,
	}, nil
}

// Model returns the driver's buffer model, for introspection.
func (d *Driver) Model() *BufferModel { return d.model }

// WriteRGB writes r, g, b into the back buffer at (row, col). Safe to call
// concurrently with the pin driver streaming the front buffer.
func (d *Driver) WriteRGB(row, col, r, g, b int) {
	d.model.WriteRGB(d.pd.Buffer(d.back), row, col, r, g, b, d.valBits)
}

// Flip requests the pin driver switch streaming to the back buffer at the
// next cyclic boundary, and toggles which buffer is "back". No-op when
// single-buffered.
func (d *Driver) Flip() error {
	if d.numBuf == 1 {
		return nil
	}
	front := d.back
	d.back = 1 - d.back
	return d.pd.FlipTo(front)
}

// FlipDone reports whether the hardware has acknowledged the last Flip.
// Always true when single-buffered.
func (d *Driver) FlipDone() bool {
	if d.numBuf == 1 {
		return true
	}
	return d.pd.FlipDone()
}

// Bounds implements display.Drawer: the panel is Cols wide by Rows tall.
func (d *Driver) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.enc.Cols(), d.enc.Rows())
}

// ColorModel implements display.Drawer.
func (d *Driver) ColorModel() color.Model {
	return color.NRGBAModel
}

// Draw implements display.Drawer: it walks r of src and writes every
// pixel into the back buffer, scaling 8-bit source channels down to the
// driver's bit-plane depth, then flips.
func (d *Driver) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	maxVal := (1 << uint(d.valBits)) - 1
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sx, sy := sp.X+(x-r.Min.X), sp.Y+(y-r.Min.Y)
			r16, g16, b16, _ := src.At(sx, sy).RGBA()
			rv := int(r16>>8) * maxVal / 255
			gv := int(g16>>8) * maxVal / 255
			bv := int(b16>>8) * maxVal / 255
			d.WriteRGB(y, x, rv, gv, bv)
		}
	}
	return d.Flip()
}

var _ display.Drawer = &Driver{}
