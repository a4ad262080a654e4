/*
 * grid_test.go, part of gomo.
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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSurfaceTypePredicates(Te *testing.T) {
	cases := []struct {
		t                                      SurfaceType
		density, orbital, basis, signed, index bool
	}{
		{NewSurfaceType(AlphaOrbital, 3), false, true, false, true, true},
		{NewSurfaceType(BetaComplexImag, 1), false, true, false, true, true},
		{NewSurfaceType(TotalDensity, 0), true, false, false, false, false},
		{NewSurfaceType(SpinDensity, 0), true, false, false, true, false},
		{NewSurfaceType(BasisFunction, 7), false, false, true, true, true},
		{NewCustomType("ESP"), true, false, false, false, false},
	}
	for _, c := range cases {
		assert.Equal(Te, c.density, c.t.IsDensity(), c.t.String())
		assert.Equal(Te, c.orbital, c.t.IsOrbital(), c.t.String())
		assert.Equal(Te, c.basis, c.t.IsBasis(), c.t.String())
		assert.Equal(Te, c.signed, c.t.IsSigned(), c.t.String())
		assert.Equal(Te, c.index, c.t.IsIndexed(), c.t.String())
	}
	assert.True(Te, NewSurfaceType(BetaComplexImag, 1).IsBeta())
	assert.True(Te, NewSurfaceType(BetaComplexImag, 1).IsImaginary())
	assert.True(Te, NewSurfaceType(AlphaDensity, 0).IsAlpha())
	assert.Equal(Te, "AlphaOrbital 4", NewSurfaceType(AlphaOrbital, 3).String())
	k, ok := ParseSurfaceKind("SpinDensity")
	assert.True(Te, ok)
	assert.Equal(Te, SpinDensity, k)
}

func TestSurfaceTypeEqual(Te *testing.T) {
	assert.True(Te, NewCustomType("a").Equal(NewCustomType("a")))
	assert.False(Te, NewCustomType("a").Equal(NewCustomType("b")))
	assert.True(Te, NewSurfaceType(TotalDensity, 0).Equal(NewSurfaceType(TotalDensity, 5)))
	assert.False(Te, NewSurfaceType(AlphaOrbital, 0).Equal(NewSurfaceType(AlphaOrbital, 5)))
	assert.False(Te, NewSurfaceType(AlphaOrbital, 0).Equal(NewSurfaceType(BetaOrbital, 0)))
}

func TestDensityMatching(Te *testing.T) {
	d, err := NewDensity(NewCustomType("MP2"), make([]float64, 6), "")
	require.NoError(Te, err)
	assert.Equal(Te, 3, d.NBasis())
	assert.True(Te, d.Matches(NewCustomType("MP2")))
	assert.False(Te, d.Matches(NewCustomType("CIS")))
	t, err := NewDensity(NewSurfaceType(TotalDensity, 0), make([]float64, 6), "")
	require.NoError(Te, err)
	assert.Same(Te, t, FindDensity([]*Density{d, t}, NewSurfaceType(TotalDensity, 0)))
	assert.Nil(Te, FindDensity([]*Density{d, t}, NewSurfaceType(SpinDensity, 0)))
	_, err = NewDensity(NewSurfaceType(TotalDensity, 0), make([]float64, 5), "")
	assert.ErrorIs(Te, err, ErrDensityLength)
	assert.Equal(Te, 0, TriangularOrder(0))
	assert.Equal(Te, 4, TriangularOrder(10))
	assert.Equal(Te, -1, TriangularOrder(11))
}

func TestGridSize(Te *testing.T) {
	g := NewGridSizeFromBox(r3.Vec{X: -1, Y: -1, Z: -1}, r3.Vec{X: 1, Y: 2, Z: 1.05}, 0.5)
	assert.Equal(Te, 5, g.NX)
	assert.Equal(Te, 7, g.NY)
	assert.Equal(Te, 6, g.NZ)
	assert.Equal(Te, 5*7*6, g.NPoints())
	assert.Equal(Te, r3.Vec{X: 1, Y: 2, Z: 1.5}, g.Max())
	h := g
	assert.True(Te, g == h)
	m := map[GridSize]int{g: 1}
	m[h]++
	assert.Len(Te, m, 1)

	sizes := []GridSize{
		NewGridSize(r3.Vec{X: 1}, 0.1, 2, 2, 2),
		NewGridSize(r3.Vec{}, 0.2, 2, 2, 2),
		NewGridSize(r3.Vec{}, 0.1, 3, 2, 2),
		NewGridSize(r3.Vec{}, 0.1, 2, 2, 2),
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].Less(sizes[j]) })
	assert.Equal(Te, NewGridSize(r3.Vec{}, 0.1, 2, 2, 2), sizes[0])
	assert.Equal(Te, NewGridSize(r3.Vec{X: 1}, 0.1, 2, 2, 2), sizes[3])
	assert.False(Te, sizes[0].Less(sizes[0]))
	assert.Panics(Te, func() { NewGridSizeFromBox(r3.Vec{}, r3.Vec{}, 0) })
}

func TestGridData(Te *testing.T) {
	g := NewGridSize(r3.Vec{}, 1, 2, 3, 4)
	A := NewGridData(g, NewSurfaceType(TotalDensity, 0))
	assert.False(Te, A.Complete())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				A.Set(float64(i+2*j+3*k), i, j, k)
			}
		}
	}
	//k fastest
	assert.Equal(Te, 3.0, A.Values()[1])
	min, max := A.MinMax()
	assert.Equal(Te, 0.0, min)
	assert.Equal(Te, 1.0+4+9, max)
	v, ok := A.Interpolate(r3.Vec{X: 0.5, Y: 1.25, Z: 2.5})
	require.True(Te, ok)
	assert.InDelta(Te, 0.5+2.5+7.5, v, 1e-12)
	v, ok = A.Interpolate(r3.Vec{X: 1, Y: 2, Z: 3})
	require.True(Te, ok)
	assert.InDelta(Te, 14, v, 1e-12)
	_, ok = A.Interpolate(r3.Vec{X: 1.1})
	assert.False(Te, ok)

	B := NewGridData(g, NewSurfaceType(TotalDensity, 0))
	B.Add(A).Add(A).Sub(A).Scale(2)
	assert.Equal(Te, 28.0, B.At(1, 2, 3))
	assert.Panics(Te, func() { B.Add(NewGridData(NewGridSize(r3.Vec{}, 1, 2, 3, 5), B.Type())) })
	A.SetComplete(true)
	assert.True(Te, A.Complete())
}

func TestParseSurfaceType(Te *testing.T) {
	for _, t := range []SurfaceType{
		NewSurfaceType(AlphaOrbital, 4),
		NewSurfaceType(BasisFunction, 0),
		NewSurfaceType(TotalDensity, 0),
		NewSurfaceType(BetaComplexImag, 11),
		NewCustomType("MP2 density"),
	} {
		got, err := ParseSurfaceType(t.String())
		require.NoError(Te, err, t.String())
		assert.True(Te, t.Equal(got), t.String())
	}
	for _, bad := range []string{"", "Orbital 3", "AlphaOrbital", "AlphaOrbital 0", "Custom MP2"} {
		_, err := ParseSurfaceType(bad)
		assert.Error(Te, err, bad)
	}
}
