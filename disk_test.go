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
	"image"
	"math"
	"strings"
	"testing"

	"golang.org/x/image/vector"
)

// render draws the canvas as text, '#' for col and '.' for anything else.
func render(c *Canvas, col Color) string {
	var b strings.Builder
	for y := range c.Height() {
		for x := range c.Width() {
			if c.Get(x, y) == col {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestDrawDiskSmall(t *testing.T) {
	cases := []struct {
		r    int
		want string
	}{
		{0, "" +
			".....\n" +
			".....\n" +
			"..#..\n" +
			".....\n" +
			".....\n"},
		{1, "" +
			".....\n" +
			"..#..\n" +
			".###.\n" +
			"..#..\n" +
			".....\n"},
		{2, "" +
			".###.\n" +
			"#####\n" +
			"#####\n" +
			"#####\n" +
			".###.\n"},
	}
	for _, tc := range cases {
		c := NewCanvas(5, 5)
		c.Fill(Substrate)
		DrawDisk(c, PositiveConductor, 2, 2, tc.r)
		if got := render(c, PositiveConductor); got != tc.want {
			t.Errorf("radius %d:\n%s\nwant:\n%s", tc.r, got, tc.want)
		}
	}
}

func TestDrawDiskShape(t *testing.T) {
	for r := 0; r <= 40; r++ {
		size := 2*r + 3
		cx, cy := r+1, r+1
		c := NewCanvas(size, size)
		c.Fill(Substrate)
		DrawDisk(c, GroundConductor, cx, cy, r)

		// the four cardinal points are always set
		for _, p := range [][2]int{{cx + r, cy}, {cx - r, cy}, {cx, cy + r}, {cx, cy - r}} {
			if c.Get(p[0], p[1]) != GroundConductor {
				t.Errorf("r=%d: cardinal point %v not set", r, p)
			}
		}

		for y := range size {
			for x := range size {
				d := math.Hypot(float64(x-cx), float64(y-cy))
				set := c.Get(x, y) == GroundConductor
				if d <= float64(r)-1 && !set {
					t.Errorf("r=%d: interior pixel (%d, %d) at distance %.2f not set", r, x, y, d)
				}
				if d > float64(r)+1 && set {
					t.Errorf("r=%d: pixel (%d, %d) at distance %.2f set", r, x, y, d)
				}
			}
		}

		// the disk is symmetric under reflection in both axes
		for y := range size {
			for x := range size {
				v := c.Get(x, y)
				if v != c.Get(2*cx-x, y) || v != c.Get(x, 2*cy-y) || v != c.Get(y, x) {
					t.Fatalf("r=%d: asymmetric at (%d, %d)", r, x, y)
				}
			}
		}
	}
}

// TestDrawDiskVector compares DrawDisk with an anti-aliased circle
// rendered by golang.org/x/image/vector.
func TestDrawDiskVector(t *testing.T) {
	for _, r := range []int{3, 7, 20, 55} {
		size := 2*r + 5
		cx, cy := size/2, size/2
		c := NewCanvas(size, size)
		c.Fill(Air)
		DrawDisk(c, SolderMask, cx, cy, r)

		inner := coverage(size, float32(cx)+0.5, float32(cy)+0.5, float32(r)-0.5)
		outer := coverage(size, float32(cx)+0.5, float32(cy)+0.5, float32(r)+1.5)
		for y := range size {
			for x := range size {
				set := c.Get(x, y) == SolderMask
				if inner.AlphaAt(x, y).A == 255 && !set {
					t.Errorf("r=%d: (%d, %d) inside the circle but not set", r, x, y)
				}
				if outer.AlphaAt(x, y).A == 0 && set {
					t.Errorf("r=%d: (%d, %d) outside the circle but set", r, x, y)
				}
			}
		}
	}
}

func coverage(size int, cx, cy, radius float32) *image.Alpha {
	r := vector.NewRasterizer(size, size)
	addCircleToVector(r, cx, cy, radius)
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}

func TestDrawDiskOutside(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Fill(Substrate)
	mustPanicAddressing(t, func() { DrawDisk(c, GroundConductor, 2, 5, 3) })
	mustPanicAddressing(t, func() { DrawDisk(c, GroundConductor, 5, 8, 2) })
}
