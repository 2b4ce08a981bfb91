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

package testcases

import "seehuhn.de/go/atlc"

var viaCases = []TestCase{
	{
		Name: "single_default",
		Geometry: &atlc.Via{
			ResX:       2000,
			ResY:       1500,
			InnerWidth: 40,
			OuterWidth: 60,
			InnerSpace: 0,
			OuterSpace: 400,
		},
	},
	{
		Name: "pair_default",
		Geometry: &atlc.Via{
			ResX:       2000,
			ResY:       1500,
			InnerWidth: 40,
			OuterWidth: 60,
			InnerSpace: 40,
			OuterSpace: 400,
		},
	},
	{
		Name: "single_small",
		Geometry: &atlc.Via{
			ResX:       100,
			ResY:       100,
			InnerWidth: 12,
			OuterWidth: 8,
			OuterSpace: 25,
		},
	},
	{
		Name: "pair_small",
		Geometry: &atlc.Via{
			ResX:       120,
			ResY:       100,
			InnerWidth: 10,
			OuterWidth: 9,
			InnerSpace: 8,
			OuterSpace: 20,
		},
	},
	{
		Name: "pinpoint",
		Geometry: &atlc.Via{
			ResX:       21,
			ResY:       21,
			InnerWidth: 1,
			OuterWidth: 1,
			OuterSpace: 6,
		},
	},
}
