/*
 * shelllist_test.go, part of gomo.
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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/gomo/array"
	v3 "github.com/rmera/gomo/v3"
)

func testGeometry() *Geometry {
	G, err := NewGeometry([]int{8, 1, 1}, v3.FromVecs([]r3.Vec{{}, {X: 1.4, Y: 1.1}, {X: -1.4, Y: 1.1}}))
	if err != nil {
		panic(err)
	}
	return G
}

// testShellData is a small water-like basis: S, SP and D5 on the oxygen, an S on each hydrogen.
func testShellData() ShellData {
	return ShellData{
		ShellTypes:              []int{0, -1, -2, 0, 0},
		ShellToAtom:             []int{0, 0, 0, 1, 2},
		PrimitivesPerShell:      []int{2, 2, 1, 2, 2},
		Exponents:               []float64{130.7, 23.8, 5.03, 1.17, 1.2, 3.42, 0.62, 3.42, 0.62},
		ContractionCoefficients: []float64{0.15, 0.53, -0.1, 0.4, 1.0, 0.15, 0.53, 0.15, 0.53},
		SPCoefficients:          []float64{0, 0, 0.16, 0.6, 0, 0, 0, 0, 0},
	}
}

func randomDensity(rng *rand.Rand, n int) []float64 {
	d := make([]float64, n*(n+1)/2)
	for i := range d {
		d[i] = rng.Float64() - 0.5
	}
	return d
}

func TestShellListNBasis(Te *testing.T) {
	L := NewShellList(testShellData(), testGeometry())
	require.Equal(Te, 5, L.NShells())
	sum := 0
	for _, sh := range L.Shells() {
		sum += sh.NBasis()
	}
	assert.Equal(Te, sum, L.NBasis())
	assert.Equal(Te, 1+4+5+1+1, L.NBasis())
	assert.Equal(Te, []int{0, 3, 4}, L.ShellAtomOffsets())
	assert.Equal(Te, []int{0, 10, 11}, L.BasisAtomOffsets())
	assert.Equal(Te, r3.Vec{X: 1.4, Y: 1.1}, L.Shell(3).Center())
}

func TestShellListSkipsBadShells(Te *testing.T) {
	sd := testShellData()
	sd.ShellTypes[2] = 9
	sd.ShellToAtom[4] = 5
	L := NewShellList(sd, testGeometry())
	assert.Equal(Te, 3, L.NShells())
	assert.Equal(Te, 1+4+1, L.NBasis())
	//the primitives of the skipped shell are consumed
	assert.Equal(Te, []float64{3.42, 0.62}, L.Shell(2).Exponents())
}

func TestAppendNeedsResize(Te *testing.T) {
	L := NewShellList(testShellData(), testGeometry())
	L.Append(NewShell(S, 0, r3.Vec{}, []float64{1}, []float64{1}, nil))
	assert.Panics(Te, func() { L.ShellValues(0, 0, 0) })
	L.Resize()
	assert.Len(Te, L.ShellValues(0, 0, 0), 13)
}

func TestShellValuesOutOfRange(Te *testing.T) {
	L := new(ShellList)
	L.Append(NewShell(S, 0, r3.Vec{}, []float64{1}, []float64{1}, nil))
	L.Append(NewShell(P, 1, r3.Vec{X: 40}, []float64{1}, []float64{1}, nil))
	L.Resize()
	L.SetThreshold(DefaultThreshold)
	v := L.ShellValues(0.5, 0.5, 0)
	require.Len(Te, v, 4)
	assert.NotZero(Te, v[0])
	assert.Equal(Te, []float64{0, 0, 0}, v[1:])
	v = L.ShellValues(40, 0.5, 0.5)
	assert.Zero(Te, v[0])
	assert.NotZero(Te, v[2])
}

// single returns sum_ij w_ij rho[T(i,j)] over all basis functions.
func single(phi, rho []float64) float64 {
	v := 0.0
	t := 0
	for i := range phi {
		for j := 0; j <= i; j++ {
			w := 2 * phi[i] * phi[j]
			if i == j {
				w = phi[i] * phi[i]
			}
			v += w * rho[t]
			t++
		}
	}
	return v
}

func TestDensityBatching(Te *testing.T) {
	rng := rand.New(rand.NewSource(3))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	dens := [][]float64{randomDensity(rng, n), randomDensity(rng, n), randomDensity(rng, n)}
	points := []r3.Vec{{X: 0.1, Y: 0.2, Z: -0.3}, {X: 1.3, Y: 1.0, Z: 0.1}, {X: -2, Y: 0.5, Z: 1}, {X: 6, Y: 6, Z: 6}}
	for _, threshold := range []float64{0, DefaultThreshold} {
		if threshold > 0 {
			L.SetThreshold(threshold)
		}
		require.NoError(Te, L.SetDensityVectors(dens...))
		for _, p := range points {
			batch := append([]float64(nil), L.DensityValues(p.X, p.Y, p.Z)...)
			phi := append([]float64(nil), L.ShellValues(p.X, p.Y, p.Z)...)
			ws := L.NewWorkspace()
			for k, d := range dens {
				require.NoError(Te, ws.SetDensityVectors(d))
				one := ws.DensityValues(p.X, p.Y, p.Z)
				assert.InDelta(Te, one[0], batch[k], 1e-12)
				assert.InDelta(Te, single(phi, d), batch[k], 1e-12)
			}
		}
	}
	err := L.SetDensityVectors(make([]float64, 3))
	assert.ErrorIs(Te, err, ErrDensityLength)
}

func TestOrbitalValues(Te *testing.T) {
	rng := rand.New(rand.NewSource(5))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	C := array.NewMatrix(4, n)
	for i := range C.Data() {
		C.Data()[i] = rng.Float64() - 0.5
	}
	require.NoError(Te, L.SetOrbitalVectors(C, []int{3, 0}))
	p := r3.Vec{X: 0.4, Y: 0.9, Z: -0.2}
	v := append([]float64(nil), L.OrbitalValues(p.X, p.Y, p.Z)...)
	phi := L.ShellValues(p.X, p.Y, p.Z)
	for k, idx := range []int{3, 0} {
		want := 0.0
		for i, f := range phi {
			want += C.At2(idx, i) * f
		}
		assert.InDelta(Te, want, v[k], 1e-13)
	}
	assert.ErrorIs(Te, L.SetOrbitalVectors(C, []int{4}), ErrOrbitalIndex)
	assert.ErrorIs(Te, L.SetOrbitalVectors(array.NewMatrix(1, n+1), nil), ErrOrbitalIndex)
}

func TestSingleSEndToEnd(Te *testing.T) {
	sd := ShellData{
		ShellTypes:              []int{0},
		ShellToAtom:             []int{0},
		PrimitivesPerShell:      []int{1},
		Exponents:               []float64{1.0},
		ContractionCoefficients: []float64{1.0},
	}
	G, err := NewGeometry([]int{1}, v3.Zeros(1))
	require.NoError(Te, err)
	orbs, err := OrbitalFactory(1, 1, OrbitalData{Type: Canonical, AlphaCoefficients: []float64{1.0}}, sd, G, nil)
	require.NoError(Te, err)
	require.True(Te, orbs.Restricted())
	L := orbs.ShellList()
	want := NormalizationFactor(0, 1.0)
	phi := L.ShellValues(0, 0, 0)
	require.Len(Te, phi, 1)
	assert.InDelta(Te, want, phi[0], 1e-14)
	require.NoError(Te, L.SetOrbitalVectors(orbs.AlphaCoefficients(), []int{0}))
	assert.InDelta(Te, want, L.OrbitalValues(0, 0, 0)[0], 1e-14)
}

func TestReorderFromQChem(Te *testing.T) {
	L := new(ShellList)
	L.Append(NewShell(S, 0, r3.Vec{}, []float64{1}, []float64{1}, nil))
	L.Append(NewShell(D6, 0, r3.Vec{}, []float64{1}, []float64{1}, nil))
	L.Append(NewShell(P, 0, r3.Vec{}, []float64{1}, []float64{1}, nil))
	L.Resize()
	// S, D6 as xx xy yy xz yz zz, P
	M := array.FromSlice([]float64{
		10, 1, 2, 3, 4, 5, 6, 20, 21, 22,
		-10, -1, -2, -3, -4, -5, -6, -20, -21, -22,
	}, 2, 10)
	L.ReorderFromQChem(M)
	// xx yy zz xy xz yz
	assert.Equal(Te, []float64{10, 1, 3, 6, 2, 4, 5, 20, 21, 22}, M.Row(0))
	assert.Equal(Te, []float64{-10, -1, -3, -6, -2, -4, -5, -20, -21, -22}, M.Row(1))
	assert.Panics(Te, func() { L.ReorderFromQChem(array.NewMatrix(1, 3)) })
}

func TestReorderTablesArePermutations(Te *testing.T) {
	for am, perm := range qchemToMolden {
		require.Len(Te, perm, NFunctions(am))
		seen := make(map[int]bool)
		for _, p := range perm {
			seen[p] = true
		}
		assert.Len(Te, seen, len(perm), am.String())
	}
}

func TestOverlap(Te *testing.T) {
	sd := testShellData()
	L := NewShellList(sd, testGeometry())
	assert.Nil(Te, L.Overlap())
	n := L.NBasis()
	sd.Overlap = make([]float64, n*(n+1)/2)
	for i := range sd.Overlap {
		sd.Overlap[i] = float64(i)
	}
	L = NewShellList(sd, testGeometry())
	S := L.Overlap()
	require.NotNil(Te, S)
	assert.Equal(Te, 4.0, S.At2(2, 1)) //T(2,1)
	assert.Equal(Te, 4.0, S.At2(1, 2))
	sd.Overlap = sd.Overlap[1:]
	assert.False(Te, NewShellList(sd, testGeometry()).HasOverlap())
}

func TestSetThreshold(Te *testing.T) {
	L := NewShellList(testShellData(), testGeometry())
	_, set := L.Threshold()
	assert.False(Te, set)
	L.SetThreshold(DefaultThreshold)
	t, set := L.Threshold()
	assert.True(Te, set)
	assert.Equal(Te, DefaultThreshold, t)
	r2 := L.Shell(0).SignificantRadius2()
	assert.False(Te, math.IsInf(r2, 1))

	//the box doesn't touch the cached radii
	L.BoundingBox(1e-9)
	assert.Equal(Te, r2, L.Shell(0).SignificantRadius2())

	L.SetThreshold(1e-6)
	assert.Greater(Te, L.Shell(0).SignificantRadius2(), r2)
	L.Append(NewShell(S, 0, r3.Vec{}, []float64{1}, []float64{1}, nil))
	L.Resize()
	_, set = L.Threshold()
	assert.False(Te, set)
	L.SetThreshold(1e-6)
	assert.False(Te, math.IsInf(L.Shell(L.NShells()-1).SignificantRadius2(), 1))
}

func TestBoundingBox(Te *testing.T) {
	L := NewShellList(testShellData(), testGeometry())
	min, max := L.BoundingBox(DefaultThreshold)
	G := testGeometry()
	for i := 0; i < G.NAtoms(); i++ {
		p := G.Position(i)
		assert.Less(Te, min.X, p.X)
		assert.Greater(Te, max.Y, p.Y)
	}
}
