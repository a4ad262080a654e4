/*
 * linalg.go, part of gomo.
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

package array

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const transposeBlock = 32

// Dense returns a gonum Dense sharing the storage of the matrix m, so gonum
// routines can operate on gomo matrices without copies.
func Dense(m *Matrix) *mat.Dense {
	if m.Rank() != 2 {
		panic(ErrRank)
	}
	return mat.NewDense(m.shape[0], m.shape[1], m.data)
}

// FromDense returns an owning copy of a gonum matrix.
func FromDense(d mat.Matrix) *Matrix {
	r, c := d.Dims()
	m := NewMatrix(r, c)
	if r == 0 || c == 0 {
		return m
	}
	Dense(m).Copy(d)
	return m
}

// Product returns the (m x n) matrix A*B for A (m x k) and B (k x n).
func Product(A, B *Matrix) *Matrix {
	if A.Cols() != B.Rows() {
		panic(ErrShape)
	}
	C := NewMatrix(A.Rows(), B.Cols())
	if A.Size() == 0 || B.Size() == 0 {
		return C
	}
	Dense(C).Mul(Dense(A), Dense(B))
	return C
}

// Transpose returns a new owning matrix with the transpose of A. The copy is
// done in square tiles so both sides stay in cache for large matrices.
func Transpose(A *Matrix) *Matrix {
	r, c := A.Rows(), A.Cols()
	T := NewMatrix(c, r)
	for ib := 0; ib < r; ib += transposeBlock {
		ie := min(ib+transposeBlock, r)
		for jb := 0; jb < c; jb += transposeBlock {
			je := min(jb+transposeBlock, c)
			for i := ib; i < ie; i++ {
				row := A.data[i*c:]
				for j := jb; j < je; j++ {
					T.data[j*r+i] = row[j]
				}
			}
		}
	}
	return T
}

// Identity returns an n x n identity matrix.
func Identity(n int) *Matrix {
	I := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}
	return I
}

// EqualApprox returns true if a and b have the same shape and all elements
// agree within tol (absolute or relative).
func EqualApprox(a, b *Array[float64], tol float64) bool {
	if !a.SameShape(b) {
		return false
	}
	return floats.EqualApprox(a.data, b.data, tol)
}

// MaxAbsDiff returns max |a_i - b_i| for arrays of the same shape.
func MaxAbsDiff(a, b *Array[float64]) float64 {
	if !a.SameShape(b) {
		panic(ErrShape)
	}
	if a.Size() == 0 {
		return 0
	}
	return floats.Distance(a.data, b.data, math.Inf(1))
}
