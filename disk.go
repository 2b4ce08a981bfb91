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

// DrawDisk paints a solid disk of radius r centred on (cx, cy).
//
// The boundary is found by midpoint circle stepping over one octant; for
// every step the columns cx±x and cx±y are filled between their upper and
// lower boundary points, so the result is a filled disk rather than a ring.
// The four cardinal points (cx±r, cy) and (cx, cy±r) are always set.
// For r == 0 only the centre pixel is set.
//
// There is no clipping: a disk which does not fit the canvas causes a
// panic with an [*AddressingError].
func DrawDisk(c *Canvas, col Color, cx, cy, r int) {
	if r < 0 {
		panic("atlc: negative disk radius")
	}

	err := 1 - r
	dx := 0
	dy := -2 * r
	x := 1
	y := r

	c.Set(cx+r, cy, col)
	c.Set(cx-r, cy, col)
	c.Set(cx, cy+r, col)
	c.Set(cx, cy-r, col)
	c.fillColumn(col, cx, cy-r+1, cy+r)

	for x < y {
		if err >= 0 {
			y--
			dy += 2
			err += dy
		}
		dx += 2
		err += dx + 1

		c.Set(cx+x, cy+y, col)
		c.Set(cx-x, cy+y, col)
		c.Set(cx+x, cy-y, col)
		c.Set(cx-x, cy-y, col)
		c.Set(cx+y, cy+x, col)
		c.Set(cx-y, cy+x, col)
		c.Set(cx+y, cy-x, col)
		c.Set(cx-y, cy-x, col)

		c.fillColumn(col, cx+x, cy-y+1, cy+y)
		c.fillColumn(col, cx-x, cy-y+1, cy+y)
		c.fillColumn(col, cx+y, cy-x+1, cy+x)
		c.fillColumn(col, cx-y, cy-x+1, cy+x)

		x++
	}
}
