// Command export writes test case definitions to JSON, for use by
// scripts which drive the atlc solver.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/atlc"
	"seehuhn.de/go/atlc/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	CoreThickness     int `json:"core_thickness,omitempty"`
	CuThickness       int `json:"cu_thickness,omitempty"`
	SmThickness       int `json:"sm_thickness,omitempty"`
	TraceWidth        int `json:"trace_width,omitempty"`
	ViaFenceDist      int `json:"via_fence_dist,omitempty"`
	ViaFenceThickness int `json:"via_fence_thickness,omitempty"`

	InnerWidth int `json:"inner_width,omitempty"`
	OuterWidth int `json:"outer_width,omitempty"`

	InnerSpace int `json:"inner_space"`
	OuterSpace int `json:"outer_space"`

	Disks []jsonDisk `json:"disks,omitempty"`
}

type jsonDisk struct {
	Material string `json:"material"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	R        int    `json:"r"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name: category + "_" + tc.Name,
	}
	jtc.Width, jtc.Height = tc.Geometry.Size()

	switch g := tc.Geometry.(type) {
	case *atlc.Coplanar:
		jtc.Kind = "coplanar"
		jtc.CoreThickness = g.CoreThickness
		jtc.CuThickness = g.CuThickness
		jtc.SmThickness = g.SmThickness
		jtc.TraceWidth = g.TraceWidth
		jtc.ViaFenceDist = g.ViaFenceDist
		jtc.ViaFenceThickness = g.ViaFenceThickness
		jtc.InnerSpace = g.InnerSpace
		jtc.OuterSpace = g.OuterSpace
	case *atlc.Via:
		jtc.Kind = "via"
		jtc.InnerWidth = g.InnerWidth
		jtc.OuterWidth = g.OuterWidth
		jtc.InnerSpace = g.InnerSpace
		jtc.OuterSpace = g.OuterSpace
		disks, err := g.Disks()
		if err != nil {
			panic(err)
		}
		for _, d := range disks {
			jtc.Disks = append(jtc.Disks, jsonDisk{
				Material: d.Color.String(),
				X:        d.X,
				Y:        d.Y,
				R:        d.R,
			})
		}
	}
	return jtc
}
