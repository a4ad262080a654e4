/*
 * gridsize.go, part of gomo.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// GridSize is an axis-aligned lattice with a uniform step. It is a comparable
// value, so it can key a map, and Less gives it a total order.
type GridSize struct {
	Origin     r3.Vec
	Step       float64
	NX, NY, NZ int
}

// NewGridSize returns a lattice of nx*ny*nz points starting at origin.
func NewGridSize(origin r3.Vec, step float64, nx, ny, nz int) GridSize {
	return GridSize{Origin: origin, Step: step, NX: nx, NY: ny, NZ: nz}
}

// NewGridSizeFromBox returns the smallest lattice with the given step that
// covers the box [min, max]. Both corners are grid points when the box side
// is a multiple of step.
func NewGridSizeFromBox(min, max r3.Vec, step float64) GridSize {
	if step <= 0 {
		panic(PanicMsg("gomo: grid step must be positive"))
	}
	count := func(lo, hi float64) int {
		return int(math.Ceil((hi-lo)/step-1e-9)) + 1
	}
	return GridSize{
		Origin: min,
		Step:   step,
		NX:     count(min.X, max.X),
		NY:     count(min.Y, max.Y),
		NZ:     count(min.Z, max.Z),
	}
}

// NPoints returns the number of lattice points.
func (g GridSize) NPoints() int { return g.NX * g.NY * g.NZ }

// Point returns the position of lattice point (i, j, k).
func (g GridSize) Point(i, j, k int) r3.Vec {
	return r3.Vec{
		X: g.Origin.X + float64(i)*g.Step,
		Y: g.Origin.Y + float64(j)*g.Step,
		Z: g.Origin.Z + float64(k)*g.Step,
	}
}

// Max returns the position of the last lattice point.
func (g GridSize) Max() r3.Vec {
	return g.Point(g.NX-1, g.NY-1, g.NZ-1)
}

// Less orders lattices by origin, then step, then point counts.
func (g GridSize) Less(o GridSize) bool {
	a := [...]float64{g.Origin.X, g.Origin.Y, g.Origin.Z, g.Step, float64(g.NX), float64(g.NY), float64(g.NZ)}
	b := [...]float64{o.Origin.X, o.Origin.Y, o.Origin.Z, o.Step, float64(o.NX), float64(o.NY), float64(o.NZ)}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (g GridSize) String() string {
	return fmt.Sprintf("%dx%dx%d step %.4g from (%.4g, %.4g, %.4g)", g.NX, g.NY, g.NZ, g.Step,
		g.Origin.X, g.Origin.Y, g.Origin.Z)
}
