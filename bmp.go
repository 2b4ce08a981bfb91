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
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// EncodeBMP writes the canvas as a 24-bit BMP image.
func EncodeBMP(w io.Writer, c *Canvas) error {
	img, err := c.ToImage()
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

// WriteBMP writes the canvas to the named file as a 24-bit BMP image.
// The image is first written to a temporary file in the same directory,
// which is renamed on success and removed on failure.
func WriteBMP(fileName string, c *Canvas) (err error) {
	img, err := c.ToImage()
	if err != nil {
		return err
	}

	dir, base := filepath.Split(fileName)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = bmp.Encode(tmp, img); err != nil {
		return fmt.Errorf("encoding %s: %w", fileName, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), fileName); err != nil {
		return err
	}
	Logger().Info("wrote bitmap",
		"file", fileName,
		"width", c.width,
		"height", c.height)
	return nil
}
