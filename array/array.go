/*
 * array.go, part of gomo.
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
	"fmt"
	"strings"
)

// Number is the set of element types an Array can hold.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64 | ~complex128
}

// Array is a dense, row-major, D-dimensional array. The rank is fixed at
// construction. The zero value is not usable, use New or MakeView.
type Array[T Number] struct {
	shape    []int
	strides  []int
	data     []T
	owner    bool
	readOnly bool
}

// Matrix is the rank 2 float64 array used for coefficient matrices.
type Matrix = Array[float64]

// Vector is the rank 1 float64 array.
type Vector = Array[float64]

// New returns a zero-filled owning array with the given shape.
func New[T Number](shape ...int) *Array[T] {
	n := checkShape(shape)
	a := &Array[T]{owner: true}
	a.setShape(shape)
	a.data = make([]T, n)
	return a
}

// NewMatrix returns a zero-filled owning rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return New[float64](rows, cols)
}

// NewVector returns a zero-filled owning vector of length n.
func NewVector(n int) *Vector {
	return New[float64](n)
}

// FromSlice returns an owning array with the given shape holding a copy of data.
func FromSlice[T Number](data []T, shape ...int) *Array[T] {
	a := New[T](shape...)
	if len(data) != len(a.data) {
		panic(ErrShape)
	}
	copy(a.data, data)
	return a
}

// MakeView wraps data in a non-owning array with the given shape. Writes through
// the view are seen by whoever owns data. The view can't be resized.
func MakeView[T Number](data []T, shape ...int) *Array[T] {
	n := checkShape(shape)
	if len(data) < n {
		panic(ErrNotEnoughElements)
	}
	a := &Array[T]{owner: false}
	a.setShape(shape)
	a.data = data[:n:n]
	return a
}

func checkShape(shape []int) int {
	if len(shape) == 0 {
		panic(ErrRank)
	}
	n := 1
	for _, v := range shape {
		if v < 0 {
			panic(ErrShape)
		}
		n *= v
	}
	return n
}

func (a *Array[T]) setShape(shape []int) {
	a.shape = append(a.shape[:0], shape...)
	a.strides = make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		a.strides[i] = s
		s *= shape[i]
	}
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int { return len(a.shape) }

// Shape returns a copy of the extent of each axis.
func (a *Array[T]) Shape() []int { return append([]int(nil), a.shape...) }

// Dim returns the extent of axis i.
func (a *Array[T]) Dim(i int) int { return a.shape[i] }

// Strides returns a copy of the strides, in elements.
func (a *Array[T]) Strides() []int { return append([]int(nil), a.strides...) }

// Size returns the total number of elements.
func (a *Array[T]) Size() int { return len(a.data) }

// Owner returns true if the array owns its storage.
func (a *Array[T]) Owner() bool { return a.owner }

// IsReadOnly returns true for read-only views.
func (a *Array[T]) IsReadOnly() bool { return a.readOnly }

// Rows is the extent of the first axis of a matrix.
func (a *Array[T]) Rows() int {
	if len(a.shape) != 2 {
		panic(ErrRank)
	}
	return a.shape[0]
}

// Cols is the extent of the second axis of a matrix.
func (a *Array[T]) Cols() int {
	if len(a.shape) != 2 {
		panic(ErrRank)
	}
	return a.shape[1]
}

// Offset returns the position in the backing storage of the element at idx.
func (a *Array[T]) Offset(idx ...int) int {
	if len(idx) != len(a.shape) {
		panic(ErrRank)
	}
	off := 0
	for i, v := range idx {
		if boundsCheck && (v < 0 || v >= a.shape[i]) {
			panic(ErrIndexOutOfRange)
		}
		off += v * a.strides[i]
	}
	return off
}

// At returns the element at idx.
func (a *Array[T]) At(idx ...int) T {
	return a.data[a.Offset(idx...)]
}

// Set puts v at idx.
func (a *Array[T]) Set(v T, idx ...int) {
	a.writable()
	a.data[a.Offset(idx...)] = v
}

// Addr returns a pointer to the element at idx. It panics on read-only views.
func (a *Array[T]) Addr(idx ...int) *T {
	a.writable()
	return &a.data[a.Offset(idx...)]
}

// At2 and Set2 are the fast paths for matrices.
func (a *Array[T]) At2(i, j int) T {
	if boundsCheck && (i < 0 || i >= a.shape[0] || j < 0 || j >= a.shape[1]) {
		panic(ErrIndexOutOfRange)
	}
	return a.data[i*a.strides[0]+j]
}

func (a *Array[T]) Set2(v T, i, j int) {
	a.writable()
	if boundsCheck && (i < 0 || i >= a.shape[0] || j < 0 || j >= a.shape[1]) {
		panic(ErrIndexOutOfRange)
	}
	a.data[i*a.strides[0]+j] = v
}

// At3 and Set3 are the fast paths for rank 3 arrays (grids).
func (a *Array[T]) At3(i, j, k int) T {
	if boundsCheck && (i < 0 || i >= a.shape[0] || j < 0 || j >= a.shape[1] || k < 0 || k >= a.shape[2]) {
		panic(ErrIndexOutOfRange)
	}
	return a.data[i*a.strides[0]+j*a.strides[1]+k]
}

func (a *Array[T]) Set3(v T, i, j, k int) {
	a.writable()
	if boundsCheck && (i < 0 || i >= a.shape[0] || j < 0 || j >= a.shape[1] || k < 0 || k >= a.shape[2]) {
		panic(ErrIndexOutOfRange)
	}
	a.data[i*a.strides[0]+j*a.strides[1]+k] = v
}

// Data returns the backing storage. For read-only views the caller must not
// write to the returned slice.
func (a *Array[T]) Data() []T { return a.data }

// Resize changes the shape of an owning array, reallocating the storage only if
// the number of elements changes (in which case the contents are zeroed).
func (a *Array[T]) Resize(shape ...int) {
	if !a.owner {
		panic(ErrNotOwner)
	}
	n := checkShape(shape)
	a.setShape(shape)
	if n != len(a.data) {
		a.data = make([]T, n)
	}
}

// Slice fixes the outermost axis at i and returns a view of rank D-1 sharing
// the storage. Slicing a read-only array gives a read-only view.
func (a *Array[T]) Slice(i int) *Array[T] {
	if len(a.shape) < 2 {
		panic(ErrRank)
	}
	if boundsCheck && (i < 0 || i >= a.shape[0]) {
		panic(ErrIndexOutOfRange)
	}
	s := a.strides[0]
	v := &Array[T]{readOnly: a.readOnly}
	v.setShape(a.shape[1:])
	v.data = a.data[i*s : (i+1)*s : (i+1)*s]
	return v
}

// ReadOnly returns a read-only view of the whole array.
func (a *Array[T]) ReadOnly() *Array[T] {
	v := &Array[T]{readOnly: true}
	v.setShape(a.shape)
	v.data = a.data
	return v
}

// Row returns row i of a matrix as a slice sharing storage.
func (a *Array[T]) Row(i int) []T {
	if len(a.shape) != 2 {
		panic(ErrRank)
	}
	if boundsCheck && (i < 0 || i >= a.shape[0]) {
		panic(ErrIndexOutOfRange)
	}
	c := a.shape[1]
	return a.data[i*c : (i+1)*c : (i+1)*c]
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	a.writable()
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns an owning copy.
func (a *Array[T]) Clone() *Array[T] {
	c := New[T](a.shape...)
	copy(c.data, a.data)
	return c
}

// SameShape returns true if a and b have identical shapes.
func (a *Array[T]) SameShape(b *Array[T]) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i, v := range a.shape {
		if b.shape[i] != v {
			return false
		}
	}
	return true
}

// Equal returns true if a and b have the same shape and elements.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if !a.SameShape(b) {
		return false
	}
	for i, v := range a.data {
		if b.data[i] != v {
			return false
		}
	}
	return true
}

func (a *Array[T]) writable() {
	if a.readOnly {
		panic(ErrReadOnly)
	}
}

// String gives a compact representation, rows on separate lines for matrices.
func (a *Array[T]) String() string {
	if len(a.shape) != 2 {
		return fmt.Sprintf("Array%v%v", a.shape, a.data)
	}
	rows := make([]string, 0, a.shape[0])
	for i := 0; i < a.shape[0]; i++ {
		rows = append(rows, fmt.Sprint(a.Row(i)))
	}
	return "[" + strings.Join(rows, "\n ") + "]"
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape             = PanicMsg("gomo/array: dimension mismatch")
	ErrRank              = PanicMsg("gomo/array: wrong number of indexes for the array rank")
	ErrIndexOutOfRange   = PanicMsg("gomo/array: index out of range")
	ErrNotOwner          = PanicMsg("gomo/array: only owning arrays can be resized")
	ErrReadOnly          = PanicMsg("gomo/array: write through a read-only view")
	ErrNotEnoughElements = PanicMsg("gomo/array: not enough elements for the requested shape")
)
