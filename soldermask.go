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

// dilateSoldermask grows soldermask over the copper below it.  Rows are
// counted upwards from the bottom of the canvas; the rows yMin <= y < yMax
// are processed bottom-up and left to right, updating the canvas in place.
//
// An Air pixel (x, y) becomes SolderMask if any pixel of the row y-sm in
// the window x-sm..x+sm is neither Air nor SolderMask.  The window is
// horizontal only, so this is an approximation of a true dilation of the
// copper outline.  The caller guarantees yMin >= sm and yMax <= c.Height().
func dilateSoldermask(c *Canvas, yMin, yMax, sm int) {
	w, h := c.width, c.height
	for y := yMin; y < yMax; y++ {
		row := h - 1 - y
		src := h - 1 - (y - sm)
		for x := range w {
			if c.Get(x, row) != Air {
				continue
			}
			for xd := max(x-sm, 0); xd <= min(x+sm, w-1); xd++ {
				if v := c.Get(xd, src); v != Air && v != SolderMask {
					c.Set(x, row, SolderMask)
					break
				}
			}
		}
	}
}
