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
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Via describes a cross-section through a via transition, in pixel units:
// one signal via (InnerSpace == 0) or a differential pair of signal vias,
// surrounded by ground vias, embedded in substrate.
type Via struct {
	ResX, ResY int
	InnerWidth int // signal via diameter
	OuterWidth int // ground via diameter
	InnerSpace int // spacing between the signal vias, 0 for single-ended
	OuterSpace int // signal via to ground via distance
}

func (*Via) isGeometry() {}

// Size implements the [Geometry] interface.
func (g *Via) Size() (width, height int) {
	return g.ResX, g.ResY
}

// Disk is a solid circle on the canvas.
type Disk struct {
	Color Color
	Name  string
	X, Y  int // centre
	R     int // radius
}

// Center returns the centre of the disk in canvas coordinates, where
// pixel (x, y) covers the unit square with corner (x, y).
func (d Disk) Center() vec.Vec2 {
	return vec.Vec2{X: float64(d.X) + 0.5, Y: float64(d.Y) + 0.5}
}

// Disks returns the signal vias followed by the ground vias.
// If a disk does not fit on the canvas, a [*GeometryError] naming the
// disk is returned.
func (g *Via) Disks() ([]Disk, error) {
	if g.ResX <= 0 || g.ResY <= 0 {
		return nil, geometryErrorf("canvas size", "%dx%d is not positive", g.ResX, g.ResY)
	}
	params := []struct {
		name string
		val  int
	}{
		{"signal via diameter", g.InnerWidth},
		{"ground via diameter", g.OuterWidth},
		{"inner spacing", g.InnerSpace},
		{"outer spacing", g.OuterSpace},
	}
	for _, p := range params {
		if p.val < 0 {
			return nil, geometryErrorf(p.name, "negative value %d", p.val)
		}
	}

	cx := g.ResX / 2
	cy := g.ResY / 2
	pos := g.InnerSpace/2 + g.InnerWidth/2
	rIn := g.InnerWidth / 2
	rOut := g.OuterWidth / 2

	var disks []Disk
	numGround := 0
	ground := func(x, y int) {
		numGround++
		disks = append(disks, Disk{
			Color: GroundConductor,
			Name:  fmt.Sprintf("ground via %d", numGround),
			X:     x,
			Y:     y,
			R:     rOut,
		})
	}

	if g.InnerSpace == 0 {
		disks = append(disks, Disk{PositiveConductor, "signal via", cx, cy, rIn})

		off := int(math.Round(float64(g.OuterSpace) / math.Sqrt2))
		ground(cx+pos+off, cy+off)
		ground(cx-pos-off, cy+off)
		ground(cx+pos+off, cy-off)
		ground(cx-pos-off, cy-off)
	} else {
		disks = append(disks,
			Disk{PositiveConductor, "positive via", cx + pos, cy, rIn},
			Disk{NegativeConductor, "negative via", cx - pos, cy, rIn})

		offX := g.OuterSpace / 2
		offY := int(math.Round(float64(offX) * math.Sqrt(3)))
		ground(cx+pos+g.OuterSpace, cy)
		ground(cx-pos-g.OuterSpace, cy)
		ground(cx+pos+offX, cy+offY)
		ground(cx-pos-offX, cy+offY)
		ground(cx+pos+offX, cy-offY)
		ground(cx-pos-offX, cy-offY)
	}

	for _, d := range disks {
		if d.X-d.R < 0 || d.X+d.R >= g.ResX || d.Y-d.R < 0 || d.Y+d.R >= g.ResY {
			return nil, geometryErrorf(d.Name,
				"disk at (%d, %d) with radius %d does not fit the %dx%d canvas",
				d.X, d.Y, d.R, g.ResX, g.ResY)
		}
	}
	return disks, nil
}

// Render implements the [Geometry] interface.
func (g *Via) Render() (*Canvas, error) {
	disks, err := g.Disks()
	if err != nil {
		return nil, err
	}

	c := NewCanvas(g.ResX, g.ResY)
	c.Fill(Substrate)
	for _, d := range disks {
		Logger().Debug("via",
			slog.String("name", d.Name),
			slog.Int("x", d.X),
			slog.Int("y", d.Y),
			slog.Int("r", d.R))
		DrawDisk(c, d.Color, d.X, d.Y, d.R)
	}
	return c, nil
}
