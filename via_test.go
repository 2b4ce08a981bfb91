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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestViaDisksSingle(t *testing.T) {
	g := &Via{
		ResX:       2000,
		ResY:       1500,
		InnerWidth: 40,
		OuterWidth: 60,
		OuterSpace: 400,
	}
	disks, err := g.Disks()
	if err != nil {
		t.Fatal(err)
	}
	want := []Disk{
		{PositiveConductor, "signal via", 1000, 750, 20},
		{GroundConductor, "ground via 1", 1303, 1033, 30},
		{GroundConductor, "ground via 2", 697, 1033, 30},
		{GroundConductor, "ground via 3", 1303, 467, 30},
		{GroundConductor, "ground via 4", 697, 467, 30},
	}
	if d := cmp.Diff(want, disks); d != "" {
		t.Errorf("disks mismatch (-want +got):\n%s", d)
	}

	// Each ground via is at distance OuterSpace from the nearest
	// point (cx ± conductor_pos, cy) on the signal via's horizontal axis.
	pos := vec.Vec2{X: float64(g.InnerWidth / 2)}
	for _, d := range disks[1:] {
		axis := disks[0].Center().Add(pos)
		if d.X < 1000 {
			axis = disks[0].Center().Sub(pos)
		}
		dist := d.Center().Sub(axis).Length()
		if math.Abs(dist-float64(g.OuterSpace)) > 1 {
			t.Errorf("%s: distance %.2f, want %d", d.Name, dist, g.OuterSpace)
		}
	}
}

func TestViaDisksDifferential(t *testing.T) {
	g := &Via{
		ResX:       2000,
		ResY:       1500,
		InnerWidth: 40,
		OuterWidth: 60,
		InnerSpace: 40,
		OuterSpace: 400,
	}
	disks, err := g.Disks()
	if err != nil {
		t.Fatal(err)
	}
	want := []Disk{
		{PositiveConductor, "positive via", 1040, 750, 20},
		{NegativeConductor, "negative via", 960, 750, 20},
		{GroundConductor, "ground via 1", 1440, 750, 30},
		{GroundConductor, "ground via 2", 560, 750, 30},
		{GroundConductor, "ground via 3", 1240, 1096, 30},
		{GroundConductor, "ground via 4", 760, 1096, 30},
		{GroundConductor, "ground via 5", 1240, 404, 30},
		{GroundConductor, "ground via 6", 760, 404, 30},
	}
	if d := cmp.Diff(want, disks); d != "" {
		t.Errorf("disks mismatch (-want +got):\n%s", d)
	}

	// hexagonal packing: all ground vias are OuterSpace away from
	// the signal via on their side
	for _, d := range disks[2:] {
		signal := disks[0]
		if d.X < 1000 {
			signal = disks[1]
		}
		dist := d.Center().Sub(signal.Center()).Length()
		if math.Abs(dist-400) > 1 {
			t.Errorf("%s: distance %.2f from signal via", d.Name, dist)
		}
	}
}

func TestDiskCenter(t *testing.T) {
	d := Disk{Color: GroundConductor, X: 3, Y: 7, R: 2}
	if got, want := d.Center(), (vec.Vec2{X: 3.5, Y: 7.5}); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestViaRender(t *testing.T) {
	g := &Via{
		ResX:       100,
		ResY:       100,
		InnerWidth: 12,
		OuterWidth: 8,
		OuterSpace: 25,
	}
	c, err := g.Render()
	if err != nil {
		t.Fatal(err)
	}

	// one signal disk and four ground disks
	counts := map[Color]int{}
	for y := range c.Height() {
		for x := range c.Width() {
			counts[c.Get(x, y)]++
		}
	}
	if counts[NegativeConductor] != 0 || counts[Air] != 0 || counts[SolderMask] != 0 {
		t.Errorf("unexpected materials: %v", counts)
	}
	single := NewCanvas(20, 20)
	single.Fill(Substrate)
	DrawDisk(single, GroundConductor, 10, 10, 4)
	if got, want := counts[GroundConductor], 4*single.Count(GroundConductor); got != want {
		t.Errorf("%d ground pixels, want %d", got, want)
	}
	DrawDisk(single, PositiveConductor, 10, 10, 6)
	if got, want := counts[PositiveConductor], single.Count(PositiveConductor); got != want {
		t.Errorf("%d signal pixels, want %d", got, want)
	}

	if c.Get(50, 50) != PositiveConductor {
		t.Error("signal via not centred")
	}
	if c.Get(0, 0) != Substrate {
		t.Error("background is not substrate")
	}
}

func TestViaInvalid(t *testing.T) {
	cases := []struct {
		name     string
		g        Via
		quantity string
	}{
		{"no canvas", Via{ResX: 10, ResY: 0}, "canvas size"},
		{"negative", Via{ResX: 10, ResY: 10, OuterSpace: -2}, "outer spacing"},
		{"signal too large", Via{ResX: 10, ResY: 10, InnerWidth: 12}, "signal via"},
		{"ground off canvas", Via{ResX: 100, ResY: 100, InnerWidth: 10, OuterWidth: 10, OuterSpace: 60}, "ground via 1"},
		{"pair off canvas", Via{ResX: 40, ResY: 100, InnerWidth: 10, InnerSpace: 20}, "positive via"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := tc.g.Render()
			if c != nil {
				t.Error("canvas returned for invalid geometry")
			}
			var gErr *GeometryError
			if !errors.As(err, &gErr) {
				t.Fatalf("got error %v, want *GeometryError", err)
			}
			if gErr.Quantity != tc.quantity {
				t.Errorf("quantity %q, want %q (%v)", gErr.Quantity, tc.quantity, err)
			}
		})
	}
}
