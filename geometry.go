// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hub75

import (
	"errors"
	"fmt"
)

// RGBOrder selects how the three color planes of each row-group map onto
// physical data lanes.
type RGBOrder int

const (
	// Interleaved packs color planes as RGBRGB...: adjacent row-group triples
	// share consecutive data-lane bits.
	Interleaved RGBOrder = iota
	// Grouped packs color planes as RRGGBB...: all reds, then all greens,
	// then all blues.
	Grouped
)

func (o RGBOrder) String() string {
	if o == Grouped {
		return "grouped"
	}
	return "interleaved"
}

// DataAddr is the physical destination of one logical pixel bit: which row
// address is selected, which parallel data lane (bit) it rides on, and
// which shift-register position (word) it occupies.
type DataAddr struct {
	Addr int
	Bit  int
	Word int
}

// Encoder maps logical pixel coordinates to a physical DataAddr. Base
// panel geometries and the wrapping serializer both implement it.
type Encoder interface {
	Encode(row, col, color int) DataAddr
	AddrBits() int
	DataBits() int
	DataWords() int
	Rows() int
	Cols() int
}

// ErrInvalidGeometry is returned by NewGeometry when rows, cols or addrBits
// don't describe a consistent panel.
var ErrInvalidGeometry = errors.New("hub75: invalid geometry")

// Geometry is a panel's wiring: row and column counts, row-address bus
// width, and color-plane order. It is validated once at construction and
// never mutated afterward, playing the role compile-time constants play in
// the original C++ template.
type Geometry struct {
	rows     int
	cols     int
	addrBits int
	order    RGBOrder

	dataBits  int
	dataWords int
}

// NewGeometry validates and builds a Geometry. rows must be an exact
// multiple of 2^addrBits.
func NewGeometry(rows, cols, addrBits int, order RGBOrder) (*Geometry, error) {
	if rows <= 0 || cols <= 0 || addrBits < 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d addrBits=%d", ErrInvalidGeometry, rows, cols, addrBits)
	}
	groups := 1 << addrBits
	if rows%groups != 0 {
		return nil, fmt.Errorf("%w: rows=%d not divisible by 2^addrBits=%d", ErrInvalidGeometry, rows, groups)
	}
	return &Geometry{
		rows:      rows,
		cols:      cols,
		addrBits:  addrBits,
		order:     order,
		dataBits:  3 * rows / groups,
		dataWords: cols,
	}, nil
}

// Encode implements Encoder.
func (g *Geometry) Encode(row, col, color int) DataAddr {
	groups := 1 << g.addrBits
	addr := row % groups
	rowGroup := row / groups
	var bit int
	if g.order == Grouped {
		bit = color*(g.rows/groups) + rowGroup
	} else {
		bit = 3*rowGroup + color
	}
	return DataAddr{Addr: addr, Bit: bit, Word: col}
}

// AddrBits implements Encoder.
func (g *Geometry) AddrBits() int { return g.addrBits }

// DataBits implements Encoder.
func (g *Geometry) DataBits() int { return g.dataBits }

// DataWords implements Encoder.
func (g *Geometry) DataWords() int { return g.dataWords }

// Rows returns the panel's total row count.
func (g *Geometry) Rows() int { return g.rows }

// Cols returns the panel's column count (shift-register depth per lane).
func (g *Geometry) Cols() int { return g.cols }

// Order returns the color-plane ordering this geometry was built with.
func (g *Geometry) Order() RGBOrder { return g.order }

func (g *Geometry) String() string {
	return fmt.Sprintf("Geometry(rows=%d cols=%d addrBits=%d order=%s)", g.rows, g.cols, g.addrBits, g.order)
}

var _ Encoder = &Geometry{}
