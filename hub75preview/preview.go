// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hub75preview renders a decoded HUB75 waveform to the terminal
// using ANSI color codes.
//
// Useful while you are waiting for your super nice LED matrix panel to
// come by mail.
package hub75preview

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/periph-hub75/hub75"
	"github.com/periph-hub75/hub75/hub75test"
)

// Dev is a HUB75 panel emulator that renders a decoded frame to the
// console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	maxVal  int

	buf bytes.Buffer
}

// New returns a Dev that previews a minPulse/numBitPlanes panel's output
// at the console. Permits local testing of a display image before
// hardware is wired up.
func New(minPulse, numBitPlanes int, palette *ansi256.Palette) *Dev {
	p := palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{
		w:       colorable.NewColorableStdout(),
		palette: *p,
		maxVal:  minPulse * ((1 << uint(numBitPlanes)) - 1),
	}
}

func (d *Dev) String() string {
	return "HUB75Preview"
}

// Halt ends the current line and resets the terminal's color attributes
// so it is not left corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Write decodes buf (the word buffer for one of a hub75.Driver's
// buffers) via hub75test.Decode and renders it as one row of ANSI blocks
// per panel row.
func (d *Dev) Write(buf []uint32, enc hub75.Encoder, model *hub75.BufferModel) error {
	decoded := hub75test.Decode(buf, enc, model)
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for _, row := range decoded {
		for _, px := range row {
			c := color.NRGBA{
				R: scale(px[0], d.maxVal),
				G: scale(px[1], d.maxVal),
				B: scale(px[2], d.maxVal),
				A: 255,
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n\r")
	}
	_, _ = d.buf.WriteString("\033[0m")
	_, err := d.buf.WriteTo(d.w)
	return err
}

func scale(v, maxVal int) byte {
	if maxVal <= 0 {
		return 0
	}
	if v > maxVal {
		v = maxVal
	}
	return byte(v * 255 / maxVal)
}

var _ fmt.Stringer = &Dev{}
