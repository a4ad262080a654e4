/*
 * shell_test.go, part of gomo.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var origin = r3.Vec{}

func TestNFunctions(Te *testing.T) {
	want := map[AngularMomentum]int{S: 1, P: 3, SP: 4, D5: 5, D6: 6, F7: 7, F10: 10, G9: 9, G15: 15, H11: 11, H21: 21}
	for am, n := range want {
		assert.Equal(Te, n, NFunctions(am), am.String())
		sh := NewShell(am, 0, origin, []float64{1}, []float64{1}, []float64{1})
		assert.Equal(Te, n, sh.NBasis(), am.String())
		assert.Len(Te, sh.Evaluate(0.1, 0.2, 0.3), n, am.String())
	}
	_, err := ParseAngularMomentum(7)
	assert.ErrorIs(Te, err, ErrUnknownShellType)
	am, err := ParseAngularMomentum(-2)
	require.NoError(Te, err)
	assert.Equal(Te, D5, am)
	assert.True(Te, am.Spherical())
	assert.Equal(Te, 1, SP.L())
	assert.False(Te, SP.Spherical())
	assert.Panics(Te, func() { NFunctions(AngularMomentum(9)) })
}

func TestSAmplitudeAtOrigin(Te *testing.T) {
	sh := NewShell(S, 0, origin, []float64{1.0}, []float64{1.0}, nil)
	v := sh.Evaluate(0, 0, 0)
	require.Len(Te, v, 1)
	assert.InDelta(Te, math.Pow(2/math.Pi, 0.75), v[0], 1e-14)
	sh = NewShell(S, 0, origin, []float64{2.0}, []float64{1.0}, nil)
	assert.InDelta(Te, math.Pow(2/math.Pi, 0.75)*math.Pow(2, 0.75), sh.Evaluate(0, 0, 0)[0], 1e-14)
}

func TestCoefficientPadding(Te *testing.T) {
	sh := NewShell(S, 0, origin, []float64{1, 2, 3}, []float64{1}, nil)
	c := sh.Coefficients()
	require.Len(Te, c, 3)
	assert.Zero(Te, c[1])
	assert.Zero(Te, c[2])
}

// Every basis function is normalised, and different functions in a shell of
// the same symmetry class integrate as they should. The integrals are sums over
// a lattice, which for Gaussians is exact to far below the tolerance.
func TestNormalization(Te *testing.T) {
	const h, lim = 0.2, 6.0
	n := int(math.Round(2 * lim / h))
	for _, am := range []AngularMomentum{S, P, SP, D5, D6, F7, F10, G9, G15} {
		sh := NewShell(am, 0, origin, []float64{1.0}, []float64{1.0}, []float64{1.0})
		sums := make([]float64, sh.NBasis())
		for i := 0; i <= n; i++ {
			x := -lim + float64(i)*h
			for j := 0; j <= n; j++ {
				y := -lim + float64(j)*h
				for k := 0; k <= n; k++ {
					z := -lim + float64(k)*h
					for f, v := range sh.Evaluate(x, y, z) {
						sums[f] += v * v
					}
				}
			}
		}
		for f, s := range sums {
			assert.InDelta(Te, 1.0, s*h*h*h, 1e-6, "%s function %d", am, f)
		}
	}
}

func TestMoldenOrder(Te *testing.T) {
	x, y, z := 0.3, -0.7, 0.4
	d5 := append([]float64(nil), NewShell(D5, 0, origin, []float64{0.8}, []float64{1}, nil).Evaluate(x, y, z)...)
	d6 := NewShell(D6, 0, origin, []float64{0.8}, []float64{1}, nil).Evaluate(x, y, z)
	sq3 := math.Sqrt(3)
	assert.InDelta(Te, d6[4], d5[1], 1e-14) //xz
	assert.InDelta(Te, d6[5], d5[2], 1e-14) //yz
	assert.InDelta(Te, d6[3], d5[4], 1e-14) //xy
	assert.InDelta(Te, sq3/2*(d6[0]-d6[1]), d5[3], 1e-14)
	assert.InDelta(Te, d6[2]-0.5*(d6[0]+d6[1]), d5[0], 1e-14)
	assert.InDelta(Te, d6[0]*y*y, d6[3]/sq3*x*y, 1e-14)

	f10 := NewShell(F10, 0, origin, []float64{0.8}, []float64{1}, nil).Evaluate(x, y, z)
	assert.InDelta(Te, f10[0]/x, f10[4]/math.Sqrt(5)/y, 1e-13) //xxx and xxy
	assert.InDelta(Te, f10[9]/math.Sqrt(15), f10[3]/math.Sqrt(5)*z/y, 1e-13)

	sp := NewShell(SP, 0, origin, []float64{1}, []float64{1}, []float64{2}).Evaluate(x, y, z)
	p := NewShell(P, 0, origin, []float64{1}, []float64{2}, nil).Evaluate(x, y, z)
	s := NewShell(S, 0, origin, []float64{1}, []float64{1}, nil).Evaluate(x, y, z)
	assert.InDelta(Te, s[0], sp[0], 1e-14)
	assert.InDeltaSlice(Te, p, sp[1:], 1e-14)
}

func TestHShellsAreZero(Te *testing.T) {
	for _, am := range []AngularMomentum{H11, H21} {
		v := NewShell(am, 0, origin, []float64{1}, []float64{1}, nil).Evaluate(0.1, 0.2, 0.3)
		for _, x := range v {
			assert.Zero(Te, x)
		}
	}
}

func TestSignificantRadiusMonotone(Te *testing.T) {
	for _, am := range []AngularMomentum{S, P, SP, D5, F7, G15} {
		sh := NewShell(am, 0, origin, []float64{0.3, 1.5, 12}, []float64{0.4, 0.5, 0.2}, []float64{0.3, 0.6, 0.1})
		prev := math.Inf(1)
		for _, t := range []float64{1e-8, 1e-6, 1e-4, 1e-3, 1e-2, 0.1, 1} {
			r := sh.ComputeSignificantRadius(t)
			assert.LessOrEqual(Te, r, prev, "%s threshold %g", am, t)
			assert.LessOrEqual(Te, r, maxRadius+radiusStep)
			prev = r
		}
	}
}

func TestOutOfRange(Te *testing.T) {
	sh := NewShell(P, 0, origin, []float64{1.0}, []float64{1.0}, nil)
	assert.True(Te, math.IsInf(sh.SignificantRadius2(), 1))
	assert.NotNil(Te, sh.Evaluate(30, 0, 0))
	min, max := sh.BoundingBox(DefaultThreshold)
	r := math.Sqrt(sh.SignificantRadius2())
	assert.InDelta(Te, -r, min.X, 1e-14)
	assert.InDelta(Te, r, max.Z, 1e-14)
	assert.Nil(Te, sh.Evaluate(r+0.01, 0, 0))
	assert.NotNil(Te, sh.Evaluate(r-0.01, 0, 0))
	dst := []float64{7, 7, 7}
	assert.False(Te, sh.EvaluateInto(dst, 0, 0, 2*r))
	assert.Equal(Te, []float64{7, 7, 7}, dst)
}

func TestRadialProfile(Te *testing.T) {
	sh := NewShell(S, 0, origin, []float64{1.0}, []float64{1.0}, nil)
	r, v := sh.RadialProfile(3, 31)
	require.Len(Te, r, 31)
	assert.InDelta(Te, 3.0, r[30], 1e-14)
	assert.InDelta(Te, sh.Evaluate(0, 0, 0)[0], v[0], 1e-14)
	assert.InDelta(Te, sh.Evaluate(1, 0, 0)[0], v[10], 1e-14)
}
