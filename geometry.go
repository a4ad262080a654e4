/*
 * geometry.go, part of gomo.
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
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	v3 "github.com/rmera/gomo/v3"
)

// AngstromToBohr converts lengths in A to bohr, the unit used everywhere in gomo.
const AngstromToBohr = 1.0 / 0.52917721092

// Positioner is what a ShellList needs from a molecule: where each atom is.
type Positioner interface {
	NAtoms() int
	Position(atom int) r3.Vec
}

// Geometry is a minimal molecule: atomic numbers and coordinates in bohr.
type Geometry struct {
	Z      []int
	Coords *v3.Matrix
}

// NewGeometry returns a Geometry, checking that there is one atomic number
// per set of coordinates.
func NewGeometry(z []int, coords *v3.Matrix) (*Geometry, error) {
	if coords == nil {
		return nil, errors.New("gomo: nil coordinates")
	}
	if len(z) != coords.NVecs() {
		return nil, errors.Newf("gomo: %d atomic numbers for %d atoms", len(z), coords.NVecs())
	}
	return &Geometry{Z: append([]int(nil), z...), Coords: coords}, nil
}

// NAtoms returns the number of atoms.
func (G *Geometry) NAtoms() int { return G.Coords.NVecs() }

// Position returns the coordinates of the given atom, in bohr.
func (G *Geometry) Position(atom int) r3.Vec { return G.Coords.Vec(atom) }
