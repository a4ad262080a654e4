/*
 * density.go, part of gomo.
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

import "github.com/cockroachdb/errors"

// Density is an immutable, upper-triangular vectorised density matrix
// tagged with what it represents.
type Density struct {
	stype  SurfaceType
	label  string
	vector []float64
}

// NewDensity copies vector into a new Density. The length must be a
// triangular number n(n+1)/2.
func NewDensity(stype SurfaceType, vector []float64, label string) (*Density, error) {
	if TriangularOrder(len(vector)) < 0 {
		return nil, errors.Wrapf(ErrDensityLength, "%d is not a triangular number", len(vector))
	}
	if label == "" {
		label = stype.String()
	}
	return &Density{stype: stype, label: label, vector: append([]float64(nil), vector...)}, nil
}

// Type returns the SurfaceType of the density.
func (d *Density) Type() SurfaceType { return d.stype }

// Label returns the label of the density.
func (d *Density) Label() string { return d.label }

// Vector returns the packed density. It must not be modified.
func (d *Density) Vector() []float64 { return d.vector }

// NBasis returns the order of the unpacked density matrix.
func (d *Density) NBasis() int { return TriangularOrder(len(d.vector)) }

// Matches reports whether the density can fill a grid of type t: same type,
// or the same label for Custom types.
func (d *Density) Matches(t SurfaceType) bool {
	if t.Kind == Custom && d.stype.Kind == Custom {
		return t.Label == d.stype.Label || t.Label == d.label
	}
	return d.stype.Equal(t)
}

// TriangularOrder returns n such that n(n+1)/2 == length, or -1 if there is none.
func TriangularOrder(length int) int {
	n := 0
	for n*(n+1)/2 < length {
		n++
	}
	if n*(n+1)/2 != length {
		return -1
	}
	return n
}

// FindDensity returns the first density that matches t, or nil.
func FindDensity(densities []*Density, t SurfaceType) *Density {
	for _, d := range densities {
		if d.Matches(t) {
			return d
		}
	}
	return nil
}
