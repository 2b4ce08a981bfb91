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

import "fmt"

// GeometryError reports a derived quantity which does not fit the canvas,
// or which would describe an empty or inverted range.
type GeometryError struct {
	Quantity string // name of the offending quantity, e.g. "left via fence"
	Reason   string
}

func (err *GeometryError) Error() string {
	return "invalid geometry: " + err.Quantity + ": " + err.Reason
}

func geometryErrorf(quantity, format string, args ...any) error {
	return &GeometryError{
		Quantity: quantity,
		Reason:   fmt.Sprintf(format, args...),
	}
}

// ConfigError reports an invalid parameter, before any conversion
// to pixel units takes place.
type ConfigError struct {
	Field  string
	Reason string
}

func (err *ConfigError) Error() string {
	return "invalid parameter " + err.Field + ": " + err.Reason
}

// AddressingError is the panic value used by [Canvas] for accesses outside
// the canvas.  Validated geometries never trigger it.
type AddressingError struct {
	X, Y          int
	Width, Height int
}

func (err *AddressingError) Error() string {
	return fmt.Sprintf("pixel (%d, %d) outside %dx%d canvas",
		err.X, err.Y, err.Width, err.Height)
}
