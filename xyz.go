/*
 * xyz.go, part of gomo.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package mo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	v3 "github.com/rmera/gomo/v3"
)

// ReadXYZ reads the first frame of an XYZ file, in angstrom, and returns it
// in bohr. Atoms can be given by symbol or atomic number.
func ReadXYZ(r io.Reader) (*Geometry, error) {
	xyz := bufio.NewScanner(r)
	if !xyz.Scan() {
		return nil, errors.New("empty XYZ file")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(xyz.Text()))
	if err != nil || natoms < 1 {
		return nil, errors.Newf("ill formatted XYZ file, bad atom count %q", xyz.Text())
	}
	xyz.Scan() //comment
	z := make([]int, natoms)
	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, errors.Newf("XYZ file ends after %d of %d atoms", i, natoms)
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, errors.Newf("line for atom %d ill formed", i+1)
		}
		var ok bool
		if z[i], ok = AtomicNumber(fields[0]); !ok {
			if z[i], err = strconv.Atoi(fields[0]); err != nil {
				return nil, errors.Newf("unknown element %q for atom %d", fields[0], i+1)
			}
		}
		var c [3]float64
		for j := range c {
			if c[j], err = strconv.ParseFloat(fields[j+1], 64); err != nil {
				return nil, errors.Wrapf(err, "coordinates of atom %d", i+1)
			}
		}
		coords.SetVec(i, r3.Scale(AngstromToBohr, r3.Vec{X: c[0], Y: c[1], Z: c[2]}))
	}
	if err := xyz.Err(); err != nil {
		return nil, err
	}
	return NewGeometry(z, coords)
}

// WriteXYZ writes geom as an XYZ file, in angstrom.
func WriteXYZ(w io.Writer, geom *Geometry, comment string) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "%-4d\n%s\n", geom.NAtoms(), strings.ReplaceAll(comment, "\n", " "))
	for i := 0; i < geom.NAtoms(); i++ {
		p := r3.Scale(1/AngstromToBohr, geom.Position(i))
		fmt.Fprintf(b, "%-2s  %12.6f %12.6f %12.6f\n", Symbol(geom.Z[i]), p.X, p.Y, p.Z)
	}
	return b.Flush()
}
