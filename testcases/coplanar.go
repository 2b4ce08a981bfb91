package testcases

import "seehuhn.de/go/atlc"

var coplanarCases = []TestCase{
	{
		// default board with a single trace, at resolution 5
		Name: "single_default",
		Geometry: &atlc.Coplanar{
			ResX:              2000,
			ResY:              1500,
			CoreThickness:     300,
			CuThickness:       7,
			SmThickness:       2,
			TraceWidth:        40,
			OuterSpace:        400,
			InnerSpace:        0,
			ViaFenceDist:      40,
			ViaFenceThickness: 60,
		},
	},
	{
		Name: "single_small",
		Geometry: &atlc.Coplanar{
			ResX:              120,
			ResY:              60,
			CoreThickness:     20,
			CuThickness:       3,
			SmThickness:       2,
			TraceWidth:        10,
			OuterSpace:        8,
			ViaFenceDist:      5,
			ViaFenceThickness: 6,
		},
	},
	{
		Name: "single_no_soldermask",
		Geometry: &atlc.Coplanar{
			ResX:              120,
			ResY:              60,
			CoreThickness:     20,
			CuThickness:       3,
			SmThickness:       0,
			TraceWidth:        11,
			OuterSpace:        8,
			ViaFenceDist:      5,
			ViaFenceThickness: 6,
		},
	},
	{
		// odd widths exercise the truncating divisions
		Name: "single_odd",
		Geometry: &atlc.Coplanar{
			ResX:              101,
			ResY:              51,
			CoreThickness:     17,
			CuThickness:       3,
			SmThickness:       3,
			TraceWidth:        9,
			OuterSpace:        7,
			ViaFenceDist:      3,
			ViaFenceThickness: 5,
		},
	},
}

var differentialCases = []TestCase{
	{
		// all defaults, at resolution 5
		Name: "pair_default",
		Geometry: &atlc.Coplanar{
			ResX:              2000,
			ResY:              1500,
			CoreThickness:     300,
			CuThickness:       7,
			SmThickness:       2,
			TraceWidth:        40,
			OuterSpace:        400,
			InnerSpace:        40,
			ViaFenceDist:      40,
			ViaFenceThickness: 60,
		},
	},
	{
		Name: "pair_small",
		Geometry: &atlc.Coplanar{
			ResX:              160,
			ResY:              60,
			CoreThickness:     20,
			CuThickness:       3,
			SmThickness:       2,
			TraceWidth:        10,
			OuterSpace:        12,
			InnerSpace:        6,
			ViaFenceDist:      4,
			ViaFenceThickness: 6,
		},
	},
	{
		Name: "pair_tight",
		Geometry: &atlc.Coplanar{
			ResX:              99,
			ResY:              40,
			CoreThickness:     10,
			CuThickness:       2,
			SmThickness:       4,
			TraceWidth:        7,
			OuterSpace:        5,
			InnerSpace:        3,
			ViaFenceDist:      2,
			ViaFenceThickness: 3,
		},
	},
}
