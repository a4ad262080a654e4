/*
 * workspace.go, part of gomo.
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

	"github.com/rmera/gomo/array"
)

// Workspace holds the scratch buffers needed to evaluate a ShellList at a point.
// A ShellList is only read during evaluation, so any number of Workspaces
// over the same list can be used from different goroutines. A single Workspace
// is not safe for concurrent use.
type Workspace struct {
	list   *ShellList
	nBasis int

	shellValues []float64

	sigBasis  []int
	sigValues []float64

	densities     [][]float64
	densityValues []float64

	orbitals       *array.Matrix
	orbitalIndices []int
	orbitalValues  []float64
}

// NewWorkspace returns a Workspace sized for the current shells of L.
func (L *ShellList) NewWorkspace() *Workspace {
	return &Workspace{
		list:        L,
		nBasis:      L.nBasis,
		shellValues: make([]float64, L.nBasis),
		sigBasis:    make([]int, 0, L.nBasis),
		sigValues:   make([]float64, 0, L.nBasis),
	}
}

func (w *Workspace) check() {
	if w.nBasis != w.list.nBasis {
		panic(ErrNotResized)
	}
}

// NBasis returns the number of basis functions the workspace was sized for.
func (w *Workspace) NBasis() int { return w.nBasis }

// SetDensityVectors registers the upper-triangular density vectors that
// DensityValues will contract. Each must be NBasis(NBasis+1)/2 long.
func (w *Workspace) SetDensityVectors(densities ...[]float64) error {
	want := w.nBasis * (w.nBasis + 1) / 2
	for i, d := range densities {
		if len(d) != want {
			return errors.Wrapf(ErrDensityLength, "density %d has %d elements, want %d", i, len(d), want)
		}
	}
	w.densities = densities
	w.densityValues = make([]float64, len(densities))
	return nil
}

// SetOrbitalVectors registers a coefficient matrix (orbitals x basis functions)
// and the rows of it that OrbitalValues will evaluate.
func (w *Workspace) SetOrbitalVectors(coefficients *array.Matrix, indices []int) error {
	if coefficients == nil || coefficients.Cols() != w.nBasis {
		return errors.Wrapf(ErrOrbitalIndex, "coefficient matrix doesn't have %d columns", w.nBasis)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= coefficients.Rows() {
			return errors.Wrapf(ErrOrbitalIndex, "orbital %d out of range [0,%d)", idx, coefficients.Rows())
		}
	}
	w.orbitals = coefficients
	w.orbitalIndices = append([]int(nil), indices...)
	w.orbitalValues = make([]float64, len(indices))
	return nil
}

// ShellValues returns the value of every basis function at (x, y, z), ordered by shell
// and then by the Molden order inside the shell. Functions of shells that are
// out of range are zero. The slice is reused by later calls.
func (w *Workspace) ShellValues(x, y, z float64) []float64 {
	w.check()
	offset := 0
	for _, sh := range w.list.shells {
		n := sh.NBasis()
		block := w.shellValues[offset : offset+n]
		if !sh.EvaluateInto(block, x, y, z) {
			for i := range block {
				block[i] = 0
			}
		}
		offset += n
	}
	return w.shellValues
}

// significant evaluates only the shells in range of the point and records
// the indices and values of their basis functions.
func (w *Workspace) significant(x, y, z float64) {
	w.check()
	w.sigBasis = w.sigBasis[:0]
	w.sigValues = w.sigValues[:0]
	offset := 0
	for _, sh := range w.list.shells {
		n := sh.NBasis()
		block := w.shellValues[offset : offset+n]
		if sh.EvaluateInto(block, x, y, z) {
			for i, v := range block {
				w.sigBasis = append(w.sigBasis, offset+i)
				w.sigValues = append(w.sigValues, v)
			}
		}
		offset += n
	}
}

// DensityValues returns, for each registered density vector rho, the value
// sum_i sum_j<=i w_ij rho[i(i+1)/2+j] at (x, y, z), with w_ij = 2 phi_i phi_j
// off the diagonal and phi_i^2 on it. Only significant basis functions enter
// the sum, and all the densities are contracted in the same pass.
func (w *Workspace) DensityValues(x, y, z float64) []float64 {
	w.significant(x, y, z)
	dv := w.densityValues
	for k := range dv {
		dv[k] = 0
	}
	for ii, i := range w.sigBasis {
		phi := w.sigValues[ii]
		ti := i * (i + 1) / 2
		for jj := 0; jj < ii; jj++ {
			weight := 2 * phi * w.sigValues[jj]
			t := ti + w.sigBasis[jj]
			for k, rho := range w.densities {
				dv[k] += weight * rho[t]
			}
		}
		weight := phi * phi
		t := ti + i
		for k, rho := range w.densities {
			dv[k] += weight * rho[t]
		}
	}
	return dv
}

// OrbitalValues returns, for each registered orbital index k, sum_i C(k,i) phi_i
// at (x, y, z), summed over the significant basis functions.
func (w *Workspace) OrbitalValues(x, y, z float64) []float64 {
	w.significant(x, y, z)
	for k, idx := range w.orbitalIndices {
		row := w.orbitals.Row(idx)
		v := 0.0
		for ii, i := range w.sigBasis {
			v += row[i] * w.sigValues[ii]
		}
		w.orbitalValues[k] = v
	}
	return w.orbitalValues
}
