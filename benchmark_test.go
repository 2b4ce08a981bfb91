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
	"fmt"
	"image"
	"image/color"
	"io"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkDrawDisk benchmarks the midpoint disk rasterizer.
func BenchmarkDrawDisk(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			c.Fill(Substrate)
			center := size / 2
			radius := size * 45 / 100

			b.ReportAllocs()
			for b.Loop() {
				DrawDisk(c, GroundConductor, center, center, radius)
			}
		})
	}
}

// BenchmarkVectorDisk benchmarks x/image/vector filling the same disk,
// for comparison.
func BenchmarkVectorDisk(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			radius := float32(size) * 0.45

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, radius)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkRender(b *testing.B) {
	p := DefaultParams()
	coplanar, err := p.Coplanar()
	if err != nil {
		b.Fatal(err)
	}
	via, err := p.Via()
	if err != nil {
		b.Fatal(err)
	}

	for _, g := range []Geometry{coplanar, via} {
		b.Run(fmt.Sprintf("%T", g), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := g.Render(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncodeBMP(b *testing.B) {
	g, err := DefaultParams().Coplanar()
	if err != nil {
		b.Fatal(err)
	}
	c, err := g.Render()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if err := EncodeBMP(io.Discard, c); err != nil {
			b.Fatal(err)
		}
	}
}
