/*
 * griddata.go, part of gomo.
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
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/gomo/array"
)

// GridData holds one scalar value per point of a lattice, for one SurfaceType.
// It is filled in place by an evaluator. Values are incomplete until
// Complete returns true.
type GridData struct {
	size     GridSize
	stype    SurfaceType
	data     *array.Array[float64]
	complete atomic.Bool
}

// NewGridData returns a zeroed grid.
func NewGridData(size GridSize, stype SurfaceType) *GridData {
	if size.NPoints() <= 0 {
		panic(PanicMsg("gomo: empty grid"))
	}
	return &GridData{size: size, stype: stype, data: array.New[float64](size.NX, size.NY, size.NZ)}
}

// Size returns the lattice of the grid.
func (G *GridData) Size() GridSize { return G.size }

// Type returns the SurfaceType of the grid.
func (G *GridData) Type() SurfaceType { return G.stype }

// Data returns the underlying 3D array, indexed i, j, k.
func (G *GridData) Data() *array.Array[float64] { return G.data }

// Values returns the values in lattice order, k fastest.
func (G *GridData) Values() []float64 { return G.data.Data() }

// At returns the value at lattice point (i, j, k).
func (G *GridData) At(i, j, k int) float64 { return G.data.At3(i, j, k) }

// Set sets the value at lattice point (i, j, k).
func (G *GridData) Set(v float64, i, j, k int) { G.data.Set3(v, i, j, k) }

// Complete reports whether an evaluator finished filling the grid.
func (G *GridData) Complete() bool { return G.complete.Load() }

// SetComplete marks the grid as fully computed, or, with false, as invalid.
func (G *GridData) SetComplete(done bool) { G.complete.Store(done) }

// MinMax returns the smallest and largest values of the grid.
func (G *GridData) MinMax() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range G.data.Data() {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}

func (G *GridData) mustMatch(o *GridData) {
	if G.size != o.size {
		panic(ErrShape)
	}
}

// Add adds the values of o to G. The grids must share a lattice.
func (G *GridData) Add(o *GridData) *GridData {
	G.mustMatch(o)
	G.data.AddInPlace(o.data)
	return G
}

// Sub subtracts the values of o from G. The grids must share a lattice.
func (G *GridData) Sub(o *GridData) *GridData {
	G.mustMatch(o)
	G.data.SubInPlace(o.data)
	return G
}

// Scale multiplies every value of G by s.
func (G *GridData) Scale(s float64) *GridData {
	G.data.ScaleInPlace(s)
	return G
}

// Interpolate returns the trilinear interpolation of the grid at p, and false
// if p is outside the lattice.
func (G *GridData) Interpolate(p r3.Vec) (float64, bool) {
	g := G.size
	fx := (p.X - g.Origin.X) / g.Step
	fy := (p.Y - g.Origin.Y) / g.Step
	fz := (p.Z - g.Origin.Z) / g.Step
	if fx < 0 || fy < 0 || fz < 0 || fx > float64(g.NX-1) || fy > float64(g.NY-1) || fz > float64(g.NZ-1) {
		return 0, false
	}
	i, tx := cell(fx, g.NX)
	j, ty := cell(fy, g.NY)
	k, tz := cell(fz, g.NZ)
	at := func(di, dj, dk int) float64 {
		return G.data.At3(min(i+di, g.NX-1), min(j+dj, g.NY-1), min(k+dk, g.NZ-1))
	}
	c00 := at(0, 0, 0)*(1-tx) + at(1, 0, 0)*tx
	c10 := at(0, 1, 0)*(1-tx) + at(1, 1, 0)*tx
	c01 := at(0, 0, 1)*(1-tx) + at(1, 0, 1)*tx
	c11 := at(0, 1, 1)*(1-tx) + at(1, 1, 1)*tx
	c0 := c00*(1-ty) + c10*ty
	c1 := c01*(1-ty) + c11*ty
	return c0*(1-tz) + c1*tz, true
}

func cell(f float64, n int) (int, float64) {
	i := int(math.Floor(f))
	if i >= n-1 {
		return n - 1, 0
	}
	return i, f - float64(i)
}
