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

import "log/slog"

// Coplanar describes a grounded coplanar waveguide on a two-layer board,
// in pixel units.  If InnerSpace is zero, the waveguide has a single trace;
// otherwise it is a differential pair with InnerSpace between the traces.
//
// From bottom to top the cross-section consists of the ground plane
// (CuThickness rows), the core (CoreThickness rows) with a via fence on
// either side, the top copper layer (CuThickness rows) and the soldermask
// (SmThickness rows).  Air fills the rest of the canvas.
type Coplanar struct {
	ResX, ResY        int
	CoreThickness     int
	CuThickness       int
	SmThickness       int
	TraceWidth        int
	OuterSpace        int // trace to top ground
	InnerSpace        int
	ViaFenceDist      int // top ground edge to via fence
	ViaFenceThickness int
}

func (*Coplanar) isGeometry() {}

// Size implements the [Geometry] interface.
func (g *Coplanar) Size() (width, height int) {
	return g.ResX, g.ResY
}

// Gap returns the spacing between the two top ground areas.
func (g *Coplanar) Gap() int {
	if g.InnerSpace == 0 {
		return g.TraceWidth + 2*g.OuterSpace
	}
	return 2*g.TraceWidth + g.InnerSpace + 2*g.OuterSpace
}

// coplanarLayout holds the derived ranges of a coplanar cross-section.
// Row ranges count upwards from the bottom of the canvas.
type coplanarLayout struct {
	ground, core, top, mask span // rows

	gap                     span // columns between the top ground areas
	leftFence, rightFence   span // columns
	positive, negative      span // columns; negative is empty for a single trace
	leftGround, rightGround span // columns
}

// Validate checks that all derived ranges fit on the canvas.
// The first problem found is returned as a [*GeometryError].
func (g *Coplanar) Validate() error {
	_, err := g.layout()
	return err
}

func (g *Coplanar) layout() (*coplanarLayout, error) {
	if g.ResX <= 0 || g.ResY <= 0 {
		return nil, geometryErrorf("canvas size", "%dx%d is not positive", g.ResX, g.ResY)
	}
	params := []struct {
		name string
		val  int
	}{
		{"core thickness", g.CoreThickness},
		{"copper thickness", g.CuThickness},
		{"soldermask thickness", g.SmThickness},
		{"trace width", g.TraceWidth},
		{"outer spacing", g.OuterSpace},
		{"inner spacing", g.InnerSpace},
		{"via fence distance", g.ViaFenceDist},
		{"via fence thickness", g.ViaFenceThickness},
	}
	for _, p := range params {
		if p.val < 0 {
			return nil, geometryErrorf(p.name, "negative value %d", p.val)
		}
	}

	cu, core, sm := g.CuThickness, g.CoreThickness, g.SmThickness
	l := &coplanarLayout{
		ground: span{0, cu},
		core:   span{cu, cu + core},
		top:    span{cu + core, 2*cu + core},
		mask:   span{2*cu + core, 2*cu + core + sm},
	}
	rows := []struct {
		name string
		s    span
	}{
		{"ground plane", l.ground},
		{"core", l.core},
		{"top copper layer", l.top},
		{"soldermask layer", l.mask},
	}
	for _, r := range rows {
		if err := checkSpan(r.name, r.s, g.ResY); err != nil {
			return nil, err
		}
	}
	if sm > l.mask.lo {
		return nil, geometryErrorf("soldermask thickness",
			"%d exceeds the %d rows below the soldermask layer", sm, l.mask.lo)
	}

	w := g.ResX
	gap := g.Gap()
	if gap > w {
		return nil, geometryErrorf("top ground gap", "gap %d is wider than the canvas (%d)", gap, w)
	}
	l.gap = span{(w - gap) / 2, (w + gap) / 2}
	l.leftGround = span{0, l.gap.lo}
	l.rightGround = span{l.gap.hi, w}

	fx1 := l.gap.lo - g.ViaFenceDist
	fx2 := l.gap.hi + g.ViaFenceDist
	l.leftFence = span{fx1 - g.ViaFenceThickness, fx1}
	l.rightFence = span{fx2, fx2 + g.ViaFenceThickness}
	// The right margin is never narrower than the left one.
	if err := checkSpan("left via fence", l.leftFence, w); err != nil {
		return nil, err
	}

	// Gap() has the parity of both TraceWidth and InnerSpace, so the
	// traces lie inside the gap by construction.
	if g.InnerSpace == 0 {
		l.positive = span{(w - g.TraceWidth) / 2, (w + g.TraceWidth) / 2}
	} else {
		inner := span{(w - g.InnerSpace) / 2, (w + g.InnerSpace) / 2}
		l.negative = span{inner.lo - g.TraceWidth, inner.lo}
		l.positive = span{inner.hi, inner.hi + g.TraceWidth}
	}

	return l, nil
}

// Render implements the [Geometry] interface.
func (g *Coplanar) Render() (*Canvas, error) {
	l, err := g.layout()
	if err != nil {
		return nil, err
	}
	Logger().Debug("coplanar layout",
		slog.Int("gap", l.gap.hi-l.gap.lo),
		slog.Int("fence_x1", l.leftFence.hi),
		slog.Int("fence_x2", l.rightFence.lo),
		slog.Int("top", l.top.lo),
		slog.Int("mask_end", l.mask.hi))

	c := NewCanvas(g.ResX, g.ResY)
	c.Fill(Air)
	h := g.ResY

	for y := l.ground.lo; y < l.ground.hi; y++ {
		for x := range g.ResX {
			c.Set(x, h-1-y, GroundConductor)
		}
	}

	for y := l.core.lo; y < l.core.hi; y++ {
		for x := range g.ResX {
			if l.leftFence.contains(x) || l.rightFence.contains(x) {
				c.Set(x, h-1-y, GroundConductor)
			} else {
				c.Set(x, h-1-y, Substrate)
			}
		}
	}

	bands := []struct {
		s   span
		col Color
	}{
		{l.leftGround, GroundConductor},
		{l.rightGround, GroundConductor},
		{l.negative, NegativeConductor},
		{l.positive, PositiveConductor},
	}
	for y := l.top.lo; y < l.top.hi; y++ {
		for _, b := range bands {
			for x := b.s.lo; x < b.s.hi; x++ {
				c.Set(x, h-1-y, b.col)
			}
		}
	}

	dilateSoldermask(c, l.mask.lo, l.mask.hi, g.SmThickness)

	return c, nil
}
