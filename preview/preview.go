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

// Package preview writes generated cross-sections as vector PDF files.
//
// The bitmap is reproduced exactly, with one PDF unit per pixel, so the
// preview can be zoomed without the blurring of a bitmap viewer.
// Circular features can be overlaid with their ideal outlines, to show
// the effect of the pixel grid.
package preview

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/atlc"
)

// Region is a rectangle of canvas pixels which all have the same color.
// The coordinates use the canvas orientation, with y increasing downwards.
type Region struct {
	Color atlc.Color
	Rect  rect.Rect
}

// Regions splits the canvas into single-colored rectangles.
// Each row is divided into runs of equal color, and runs which
// repeat the run directly above are merged with it.  Unset pixels
// are not covered by any region.
func Regions(c *atlc.Canvas) []Region {
	type run struct {
		x0, x1 int
		col    atlc.Color
	}

	var regions []Region
	w, h := c.Width(), c.Height()
	open := map[run]int{}
	for y := range h {
		next := make(map[run]int, len(open))
		x := 0
		for x < w {
			col := c.Get(x, y)
			x1 := x + 1
			for x1 < w && c.Get(x1, y) == col {
				x1++
			}
			r := run{x0: x, x1: x1, col: col}
			x = x1
			if !col.IsValid() {
				continue
			}

			if i, ok := open[r]; ok {
				regions[i].Rect.URy = float64(y + 1)
				next[r] = i
				continue
			}
			next[r] = len(regions)
			regions = append(regions, Region{
				Color: col,
				Rect: rect.Rect{
					LLx: float64(r.x0),
					LLy: float64(y),
					URx: float64(r.x1),
					URy: float64(y + 1),
				},
			})
		}
		open = next
	}
	return regions
}

// WritePDF writes the canvas to a single-page PDF file.  The outlines of
// the given disks are drawn on top of the bitmap.
func WritePDF(fileName string, c *atlc.Canvas, disks []atlc.Disk) error {
	w, h := float64(c.Width()), float64(c.Height())
	paper := &pdf.Rectangle{
		URx: w,
		URy: h,
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the canvas has row 0 at the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	regions := Regions(c)
	for _, m := range atlc.Materials {
		found := false
		for _, r := range regions {
			if r.Color != m {
				continue
			}
			if !found {
				page.SetFillColor(deviceColor(m))
				found = true
			}
			page.Rectangle(r.Rect.LLx, r.Rect.LLy, r.Rect.URx-r.Rect.LLx, r.Rect.URy-r.Rect.LLy)
		}
		if found {
			page.Fill()
		}
	}

	if len(disks) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(0.25)
		for _, d := range disks {
			// A disk of radius R covers the pixel centres within
			// distance R; the pixels themselves extend half a unit further.
			for cmd, pts := range circle(d.Center(), float64(d.R)+0.5) {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
		}
		page.Stroke()
	}

	return page.Close()
}

func deviceColor(m atlc.Color) color.Color {
	c := m.RGBA()
	return color.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// circle approximates a circle by four cubic Bézier curves.
func circle(center vec.Vec2, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// Magic number for circular arc approximation with cubic Bézier
		const k = 0.5522847498
		kr := k * r
		cx, cy := center.X, center.Y

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + r, Y: cy}}) {
			return
		}
		arcs := [4][3]vec.Vec2{
			{{X: cx + r, Y: cy + kr}, {X: cx + kr, Y: cy + r}, {X: cx, Y: cy + r}},
			{{X: cx - kr, Y: cy + r}, {X: cx - r, Y: cy + kr}, {X: cx - r, Y: cy}},
			{{X: cx - r, Y: cy - kr}, {X: cx - kr, Y: cy - r}, {X: cx, Y: cy - r}},
			{{X: cx + kr, Y: cy - r}, {X: cx + r, Y: cy - kr}, {X: cx + r, Y: cy}},
		}
		for i := range arcs {
			if !yield(path.CmdCubeTo, arcs[i][:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
