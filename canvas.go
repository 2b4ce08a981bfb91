// seehuhn.de/go/atlc - input bitmaps for the atlc field solver
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package atlc

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Canvas is a rectangular grid of material colors.  Row 0 is the top row
// of the stored image.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []Color // row-major, len = width*height
}

// NewCanvas allocates a canvas with all pixels unset.
// It panics if width or height is not positive.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("atlc: invalid canvas size %dx%d", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic(&AddressingError{X: x, Y: y, Width: c.width, Height: c.height})
	}
	return y*c.width + x
}

// Get returns the color at (x, y).
// Coordinates outside the canvas cause a panic with an [*AddressingError].
func (c *Canvas) Get(x, y int) Color {
	return c.pix[c.index(x, y)]
}

// Set changes the color at (x, y).
// Coordinates outside the canvas cause a panic with an [*AddressingError].
func (c *Canvas) Set(x, y int, col Color) {
	c.pix[c.index(x, y)] = col
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// fillColumn sets pixels (x, y) for yMin <= y < yMax.
// An empty or inverted range is a no-op.
func (c *Canvas) fillColumn(col Color, x, yMin, yMax int) {
	for y := yMin; y < yMax; y++ {
		c.Set(x, y, col)
	}
}

// Count returns the number of pixels with color col.
func (c *Canvas) Count(col Color) int {
	n := 0
	for _, p := range c.pix {
		if p == col {
			n++
		}
	}
	return n
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements the image.Image interface.
// Unset pixels and pixels outside the canvas are transparent.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	return c.pix[y*c.width+x].RGBA()
}

// errUnset is returned by ToImage if some pixel was never written.
var errUnset = errors.New("canvas contains unset pixels")

// ToImage converts the canvas to an opaque RGBA image.
func (c *Canvas) ToImage() (*image.RGBA, error) {
	img := image.NewRGBA(c.Bounds())
	for i, p := range c.pix {
		if !p.IsValid() {
			return nil, fmt.Errorf("pixel (%d, %d): %w", i%c.width, i/c.width, errUnset)
		}
		rgba := palette[p]
		img.Pix[4*i+0] = rgba.R
		img.Pix[4*i+1] = rgba.G
		img.Pix[4*i+2] = rgba.B
		img.Pix[4*i+3] = 255
	}
	return img, nil
}
