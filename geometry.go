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

// Geometry is one of the supported cross-section variants, expressed in
// pixel units.  The implementations are [*Coplanar] and [*Via].
type Geometry interface {
	// Render validates the geometry and composes a new canvas.
	// Invalid geometries give a [*GeometryError] and no canvas.
	Render() (*Canvas, error)

	// Size returns the canvas size in pixels.
	Size() (width, height int)

	isGeometry()
}

// Params holds the physical dimensions of a board, before conversion
// to pixel units.  All lengths use the same unit; Resolution is the length
// represented by one pixel.
type Params struct {
	Resolution int

	Width  int // canvas width
	Height int // canvas height

	CoreThickness int
	CuThickness   int
	SmThickness   int
	TraceWidth    int // trace width, or signal via diameter
	OuterSpace    int // signal to ground spacing
	InnerSpace    int // spacing between differential conductors, 0 for single-ended
	ViaFenceDist  int
	ViaThickness  int // via fence thickness, or ground via diameter
}

// DefaultParams returns the parameters used when nothing else is specified.
func DefaultParams() Params {
	return Params{
		Resolution:    5,
		Width:         10000,
		Height:        7500,
		CoreThickness: 1500,
		CuThickness:   35,
		SmThickness:   10,
		TraceWidth:    200,
		OuterSpace:    2000,
		InnerSpace:    200,
		ViaFenceDist:  200,
		ViaThickness:  300,
	}
}

// Check verifies that the parameters can be converted to pixel units.
func (p Params) Check() error {
	if p.Resolution <= 0 {
		return &ConfigError{Field: "resolution", Reason: "must be positive"}
	}
	fields := []struct {
		name string
		val  int
	}{
		{"width", p.Width},
		{"height", p.Height},
		{"core-thickness", p.CoreThickness},
		{"cu-thickness", p.CuThickness},
		{"sm-thickness", p.SmThickness},
		{"trace-width", p.TraceWidth},
		{"outer-space", p.OuterSpace},
		{"inner-space", p.InnerSpace},
		{"via-fence-dist", p.ViaFenceDist},
		{"via-thickness", p.ViaThickness},
	}
	for _, f := range fields {
		if f.val < 0 {
			return &ConfigError{Field: f.name, Reason: "must not be negative"}
		}
	}
	return nil
}

// Coplanar converts the parameters to a coplanar waveguide geometry.
// Lengths are divided by the resolution, truncating towards zero.
func (p Params) Coplanar() (*Coplanar, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	r := p.Resolution
	return &Coplanar{
		ResX:              p.Width / r,
		ResY:              p.Height / r,
		CoreThickness:     p.CoreThickness / r,
		CuThickness:       p.CuThickness / r,
		SmThickness:       p.SmThickness / r,
		TraceWidth:        p.TraceWidth / r,
		OuterSpace:        p.OuterSpace / r,
		InnerSpace:        p.InnerSpace / r,
		ViaFenceDist:      p.ViaFenceDist / r,
		ViaFenceThickness: p.ViaThickness / r,
	}, nil
}

// Via converts the parameters to a via transition geometry.
// The trace width gives the signal via diameter, and the via thickness
// gives the ground via diameter.
func (p Params) Via() (*Via, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	r := p.Resolution
	return &Via{
		ResX:       p.Width / r,
		ResY:       p.Height / r,
		InnerWidth: p.TraceWidth / r,
		OuterWidth: p.ViaThickness / r,
		InnerSpace: p.InnerSpace / r,
		OuterSpace: p.OuterSpace / r,
	}, nil
}

// span is the half-open integer interval [lo, hi).
type span struct {
	lo, hi int
}

func (s span) contains(v int) bool {
	return v >= s.lo && v < s.hi
}

// checkSpan verifies that s is a (possibly empty) range inside [0, limit).
func checkSpan(quantity string, s span, limit int) error {
	switch {
	case s.hi < s.lo:
		return geometryErrorf(quantity, "inverted range [%d, %d)", s.lo, s.hi)
	case s.lo < 0:
		return geometryErrorf(quantity, "range [%d, %d) extends past the lower canvas edge", s.lo, s.hi)
	case s.hi > limit:
		return geometryErrorf(quantity, "range [%d, %d) extends past the canvas edge at %d", s.lo, s.hi, limit)
	}
	return nil
}
