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

import "image/color"

// Color identifies the material of a pixel.  The atlc solver recognises
// materials by exact RGB match, so every Color maps to one fixed triple.
type Color uint8

// The materials used in generated cross-sections.
const (
	unset Color = iota // pixel never written

	Air
	Substrate
	PositiveConductor
	NegativeConductor
	GroundConductor
	SolderMask
)

// palette lists the RGB triples, indexed by Color.
var palette = [...]color.RGBA{
	Air:               {R: 255, G: 202, B: 202, A: 255},
	Substrate:         {R: 223, G: 247, B: 136, A: 255},
	PositiveConductor: {R: 255, G: 0, B: 0, A: 255},
	NegativeConductor: {R: 0, G: 0, B: 255, A: 255},
	GroundConductor:   {R: 0, G: 255, B: 0, A: 255},
	SolderMask:        {R: 25, G: 186, B: 246, A: 255},
}

// Materials lists all valid colors in palette order.
var Materials = []Color{
	Air, Substrate, PositiveConductor, NegativeConductor, GroundConductor, SolderMask,
}

// IsValid reports whether c is one of the six materials.
func (c Color) IsValid() bool {
	return c >= Air && c <= SolderMask
}

// RGBA returns the fixed, opaque RGB triple for c.
// The result for an invalid color is fully transparent black.
func (c Color) RGBA() color.RGBA {
	if !c.IsValid() {
		return color.RGBA{}
	}
	return palette[c]
}

func (c Color) String() string {
	switch c {
	case Air:
		return "air"
	case Substrate:
		return "substrate"
	case PositiveConductor:
		return "positive conductor"
	case NegativeConductor:
		return "negative conductor"
	case GroundConductor:
		return "ground"
	case SolderMask:
		return "soldermask"
	case unset:
		return "unset"
	default:
		return "invalid"
	}
}

// FromRGBA returns the material with the given RGB triple.
// The alpha channel is ignored.
func FromRGBA(c color.Color) (Color, bool) {
	r, g, b, _ := c.RGBA()
	for _, m := range Materials {
		p := palette[m]
		if uint32(p.R)*0x101 == r && uint32(p.G)*0x101 == g && uint32(p.B)*0x101 == b {
			return m, true
		}
	}
	return unset, false
}
