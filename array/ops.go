/*
 * ops.go, part of gomo.
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

// AddInPlace does a += b.
func (a *Array[T]) AddInPlace(b *Array[T]) *Array[T] {
	a.mustMatch(b)
	for i, v := range b.data {
		a.data[i] += v
	}
	return a
}

// SubInPlace does a -= b.
func (a *Array[T]) SubInPlace(b *Array[T]) *Array[T] {
	a.mustMatch(b)
	for i, v := range b.data {
		a.data[i] -= v
	}
	return a
}

// ScaleInPlace does a *= s.
func (a *Array[T]) ScaleInPlace(s T) *Array[T] {
	a.writable()
	for i := range a.data {
		a.data[i] *= s
	}
	return a
}

// DivInPlace does a /= s.
func (a *Array[T]) DivInPlace(s T) *Array[T] {
	a.writable()
	for i := range a.data {
		a.data[i] /= s
	}
	return a
}

// Add returns a new owning array with a+b.
func Add[T Number](a, b *Array[T]) *Array[T] {
	return a.Clone().AddInPlace(b)
}

// Sub returns a new owning array with a-b.
func Sub[T Number](a, b *Array[T]) *Array[T] {
	return a.Clone().SubInPlace(b)
}

// Scale returns a new owning array with s*a.
func Scale[T Number](s T, a *Array[T]) *Array[T] {
	return a.Clone().ScaleInPlace(s)
}

// Neg returns a new owning array with -a.
func Neg[T Number](a *Array[T]) *Array[T] {
	c := a.Clone()
	for i, v := range c.data {
		c.data[i] = -v
	}
	return c
}

func (a *Array[T]) mustMatch(b *Array[T]) {
	a.writable()
	if !a.SameShape(b) {
		panic(ErrShape)
	}
}
