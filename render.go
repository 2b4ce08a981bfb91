// Package atlc generates input bitmaps for the atlc transmission line
// field solver.  A bitmap shows the cross-section of a printed circuit
// board structure, with each material drawn in a fixed color.
//
// Two structures are supported: a grounded coplanar waveguide (single
// trace or differential pair) described by [Coplanar], and a via
// transition described by [Via].
package atlc

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import "fmt"

// Generate renders the geometry and writes it to the named BMP file.
// Nothing is written if the geometry is invalid.
func Generate(g Geometry, fileName string) (*Canvas, error) {
	c, err := g.Render()
	if err != nil {
		return nil, err
	}
	if err := WriteBMP(fileName, c); err != nil {
		return nil, fmt.Errorf("writing %s: %w", fileName, err)
	}
	return c, nil
}
