/*
 * orbitals_test.go, part of gomo.
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
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gomo/array"
)

func coefficients(rng *rand.Rand, n int) []float64 {
	c := make([]float64, n)
	for i := range c {
		c[i] = rng.Float64() - 0.5
	}
	return c
}

func TestRestrictedDetection(Te *testing.T) {
	rng := rand.New(rand.NewSource(1))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	alpha := coefficients(rng, 3*n)
	O := NewOrbitalSet(Generic, L, alpha, nil, "")
	assert.True(Te, O.Restricted())
	assert.Equal(Te, 3, O.NOrbitals())
	assert.Same(Te, O.AlphaCoefficients(), O.BetaCoefficients())
	assert.True(Te, O.Consistent())
	assert.Equal(Te, "Generic Orbitals", O.Title())

	U := NewOrbitalSet(Generic, L, alpha, coefficients(rng, 3*n), "U")
	assert.False(Te, U.Restricted())
	assert.NotSame(Te, U.AlphaCoefficients(), U.BetaCoefficients())
	assert.Equal(Te, 3, U.BetaCoefficients().Rows())
	assert.Equal(Te, "2", U.Label(1, true))
}

func TestConsistencyRejection(Te *testing.T) {
	rng := rand.New(rand.NewSource(2))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	O := NewOrbitalSet(Generic, L, coefficients(rng, 2*n+1), nil, "")
	assert.Zero(Te, O.NOrbitals())
	assert.False(Te, O.Consistent())
	assert.Nil(Te, O.AlphaCoefficients())

	O = NewOrbitalSet(Generic, L, coefficients(rng, 2*n), coefficients(rng, n), "")
	assert.Zero(Te, O.NOrbitals())
	assert.False(Te, O.Consistent())

	O = NewOrbitalSet(Generic, L, coefficients(rng, (n+1)*n), nil, "")
	assert.Equal(Te, n+1, O.NOrbitals())
	assert.False(Te, O.Consistent())

	C := NewCanonicalOrbitals(1, 1, L, coefficients(rng, 2*n), []float64{-1}, nil, nil, "")
	assert.True(Te, C.OrbitalSet.Consistent())
	assert.False(Te, C.Consistent())
}

func TestCanonicalLabels(Te *testing.T) {
	rng := rand.New(rand.NewSource(3))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	energies := []float64{-20, -1.3, -0.7, -0.5, 0.2, 0.3, 0.9, 1, 1.1, 1.2, 1.3, 1.4}
	require.Len(Te, energies, n)
	C := NewCanonicalOrbitals(4, 3, L, coefficients(rng, n*n), energies, coefficients(rng, n*n), nil, "")
	require.True(Te, C.Consistent())
	assert.Equal(Te, "3 (HOMO-1)", C.Label(2, true))
	assert.Equal(Te, "4 (HOMO)", C.Label(3, true))
	assert.Equal(Te, "5 (LUMO)", C.Label(4, true))
	assert.Equal(Te, "6 (LUMO+1)", C.Label(5, true))
	assert.Equal(Te, "7", C.Label(6, true))
	assert.Equal(Te, "3 (HOMO)", C.Label(2, false))
	assert.Equal(Te, 3, C.LabelIndex(true))
	assert.Equal(Te, 2, C.LabelIndex(false))
	assert.Equal(Te, -0.5, C.AlphaOrbitalEnergy(3))
	assert.Zero(Te, C.BetaOrbitalEnergy(3))
	assert.Zero(Te, C.AlphaOrbitalEnergy(40))

	R := NewCanonicalOrbitals(0, 0, L, coefficients(rng, n), nil, nil, nil, "")
	assert.Equal(Te, 0, R.LabelIndex(true))
	assert.Equal(Te, "1 (LUMO)", R.Label(0, true))
}

func TestOccLabels(Te *testing.T) {
	rng := rand.New(rand.NewSource(4))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	O := NewLocalizedOrbitals(2, 1, L, coefficients(rng, 4*n), nil, "")
	assert.Equal(Te, "2 (occ)", O.Label(1, true))
	assert.Equal(Te, "2", O.Label(1, false))
	assert.Equal(Te, "3", O.Label(2, true))
	assert.Equal(Te, Localized, O.Type())

	B := NewNaturalBondOrbitals(2, 2, L, coefficients(rng, 4*n), []float64{1.99, 1.98, 0.02, 0.01}, nil, nil, "")
	require.True(Te, B.Consistent())
	assert.Equal(Te, NaturalBond, B.Type())
	assert.Equal(Te, "NaturalBond Orbitals", B.Title())
	assert.Equal(Te, "1 (occ)", B.Label(0, true))
	assert.Equal(Te, 1.98, B.Occupancy(1, false))
	B = NewNaturalBondOrbitals(2, 2, L, coefficients(rng, 4*n), []float64{1.99}, nil, nil, "")
	assert.False(Te, B.Consistent())
}

func TestNTOAndDysonLabels(Te *testing.T) {
	rng := rand.New(rand.NewSource(5))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	T := NewNaturalTransitionOrbitals(1, 1, L, coefficients(rng, 2*n), []float64{0.9712, 0.9712}, nil, nil, "")
	require.True(Te, T.Consistent())
	assert.Equal(Te, "1 hole (0.9712)", T.Label(0, true))
	assert.Equal(Te, "2 particle (0.9712)", T.Label(1, false))
	assert.Equal(Te, 0.9712, T.BetaOrbitalEnergy(1))

	D := NewDysonOrbitals(L, coefficients(rng, 2*n), nil, []string{"IP 1 left", ""}, "")
	require.True(Te, D.Consistent())
	assert.Equal(Te, "IP 1 left", D.Label(0, true))
	assert.Equal(Te, "2", D.Label(1, true))
	D = NewDysonOrbitals(L, coefficients(rng, 2*n), nil, []string{"one"}, "")
	assert.False(Te, D.Consistent())
}

func TestGeminals(Te *testing.T) {
	rng := rand.New(rand.NewSource(6))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	G := NewGeminalOrbitals(1, 1, L, coefficients(rng, 3*n), nil, []float64{-0.8, -0.4}, []int{0, 0, 1}, "")
	require.True(Te, G.Consistent())
	assert.Equal(Te, "2 (geminal 1)", G.Label(1, true))
	assert.Equal(Te, -0.4, G.AlphaOrbitalEnergy(2))
	assert.Equal(Te, -0.4, G.BetaOrbitalEnergy(2))
	G = NewGeminalOrbitals(1, 1, L, coefficients(rng, 3*n), nil, []float64{-0.8}, []int{0, 0, 1}, "")
	assert.False(Te, G.Consistent())
}

func TestComplexDensities(Te *testing.T) {
	rng := rand.New(rand.NewSource(7))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	re, im := coefficients(rng, 3*n), coefficients(rng, 3*n)
	C := NewComplexOrbitals(2, 1, L, re, im, []float64{-1, -0.5, 0.3}, nil, nil, nil, "")
	require.True(Te, C.Consistent())
	assert.Equal(Te, -0.5, C.BetaOrbitalEnergy(1))
	assert.Same(Te, C.AlphaImagCoefficients(), C.BetaImagCoefficients())
	dens := C.DensityList()
	require.Len(Te, dens, 4)
	alpha, beta, total, spin := dens[0].Vector(), dens[1].Vector(), dens[2].Vector(), dens[3].Vector()
	// P_ij = sum_k Re_ki Re_kj + Im_ki Im_kj
	ReM, ImM := array.FromSlice(re, 3, n), array.FromSlice(im, 3, n)
	t := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			a, b := 0.0, 0.0
			for k := 0; k < 2; k++ {
				p := ReM.At2(k, i)*ReM.At2(k, j) + ImM.At2(k, i)*ImM.At2(k, j)
				a += p
				if k < 1 {
					b += p
				}
			}
			assert.InDelta(Te, a, alpha[t], 1e-14)
			assert.InDelta(Te, b, beta[t], 1e-14)
			assert.InDelta(Te, a+b, total[t], 1e-14)
			assert.InDelta(Te, a-b, spin[t], 1e-14)
			t++
		}
	}
	assert.Equal(Te, SpinDensity, dens[3].Type().Kind)
	err := C.ComputeFirstOrderDensityMatrix()
	assert.ErrorIs(Te, err, ErrNotImplemented)

	bad := NewComplexOrbitals(2, 1, L, re, im[1:], nil, nil, nil, nil, "")
	assert.False(Te, bad.Consistent())
}

func TestCanonicalDensityList(Te *testing.T) {
	rng := rand.New(rand.NewSource(8))
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	C := NewCanonicalOrbitals(2, 2, L, coefficients(rng, 4*n), nil, nil, nil, "")
	dens := C.DensityList()
	require.Len(Te, dens, 4)
	assert.InDeltaSlice(Te, dens[0].Vector(), dens[1].Vector(), 0)
	for _, v := range dens[3].Vector() {
		assert.Zero(Te, v)
	}
	d, err := NewDensity(NewSurfaceType(TotalDensity, 0), dens[2].Vector(), "SCF")
	require.NoError(Te, err)
	C.AttachDensities(d)
	require.Len(Te, C.DensityList(), 1)
	assert.Equal(Te, "SCF", C.DensityList()[0].Label())
}

func TestAreOrthonormal(Te *testing.T) {
	L := NewShellList(testShellData(), testGeometry())
	n := L.NBasis()
	I := array.Identity(n)
	O := NewOrbitalSet(Generic, L, I.Data()[:2*n], nil, "")
	assert.True(Te, O.AreOrthonormal())
	c := append([]float64(nil), I.Data()[:2*n]...)
	c[1] = 0.1
	assert.False(Te, NewOrbitalSet(Generic, L, c, nil, "").AreOrthonormal())
	//not a gate
	assert.True(Te, NewOrbitalSet(Generic, L, c, nil, "").Consistent())
}

func TestOrbitalFactory(Te *testing.T) {
	rng := rand.New(rand.NewSource(9))
	sd := testShellData()
	G := testGeometry()
	n := NewShellList(sd, G).NBasis()
	od := OrbitalData{Type: Canonical, AlphaCoefficients: coefficients(rng, 2*n)}

	_, err := OrbitalFactory(1, 1, OrbitalData{Type: Canonical}, sd, G, nil)
	assert.ErrorIs(Te, err, ErrNoOrbitalData)
	_, err = OrbitalFactory(1, 1, od, ShellData{}, G, nil)
	assert.ErrorIs(Te, err, ErrNoOrbitalData)

	dens, err := NewDensity(NewSurfaceType(TotalDensity, 0), make([]float64, n*(n+1)/2), "")
	require.NoError(Te, err)
	O, err := OrbitalFactory(1, 1, od, sd, G, []*Density{dens})
	require.NoError(Te, err)
	C, ok := O.(*CanonicalOrbitals)
	require.True(Te, ok)
	assert.Len(Te, C.Densities(), 1)

	for _, t := range []OrbitalType{Generic, Localized, NaturalTransition, NaturalBond, Dyson, Geminal} {
		od.Type = t
		O, err = OrbitalFactory(1, 1, od, sd, G, []*Density{dens})
		require.NoError(Te, err, t.String())
		assert.Equal(Te, t, O.Type())
	}
	od.Type = Complex
	od.AlphaImagCoefficients = coefficients(rng, 2*n)
	O, err = OrbitalFactory(1, 1, od, sd, G, nil)
	require.NoError(Te, err)
	_, ok = O.(*ComplexOrbitals)
	assert.True(Te, ok)

	od.Type = OrbitalType(42)
	_, err = OrbitalFactory(1, 1, od, sd, G, nil)
	assert.ErrorIs(Te, err, ErrUnknownOrbitalType)

	od.Type = Canonical
	od.AlphaCoefficients = od.AlphaCoefficients[1:]
	O, err = OrbitalFactory(1, 1, od, sd, G, nil)
	assert.Nil(Te, O)
	assert.ErrorIs(Te, err, ErrInconsistentOrbitals)
	assert.NotEmpty(Te, errors.GetAllHints(err))
}
