/*
 * shell.go, part of gomo.
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

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// DefaultThreshold is the significance threshold used for grid evaluation.
	DefaultThreshold = 0.001
	// maxRadius bounds the significant radius search, in bohr.
	maxRadius = 100.0
	// radiusStep is the outward step of the significant radius search.
	radiusStep = 0.1
)

var (
	sqrt3    = math.Sqrt(3)
	sqrt5    = math.Sqrt(5)
	sqrt7    = math.Sqrt(7)
	sqrt15   = math.Sqrt(15)
	sqrt35   = math.Sqrt(35)
	sqrt35o3 = math.Sqrt(35.0 / 3.0)

	f1Pre = math.Sqrt(6) / 4
	f2Pre = sqrt15 / 2
	f3Pre = math.Sqrt(10) / 4

	g1Pre  = math.Sqrt(10) / 4
	g2pPre = sqrt5 / 4
	g2mPre = sqrt5 / 2
	g3Pre  = math.Sqrt(70) / 4
	g4pPre = sqrt35 / 8
	g4mPre = sqrt35 / 2
)

// Shell is one contracted Gaussian shell centred on an atom.
// The contraction coefficients are normalised at construction time, after
// that the only mutable state is the cached significant radius.
type Shell struct {
	am        AngularMomentum
	atom      int
	center    r3.Vec
	exponents []float64
	coeffs    []float64
	spCoeffs  []float64
	sigR2     float64
	values    []float64
}

// NewShell builds a shell. coefficients are zero-padded to the length of exponents.
// spCoefficients are only used for SP shells and hold the p part of the contraction,
// they are padded the same way. center is in bohr.
func NewShell(am AngularMomentum, atom int, center r3.Vec, exponents, coefficients, spCoefficients []float64) *Shell {
	n := NFunctions(am) //panics on unknown classes
	sh := &Shell{
		am:        am,
		atom:      atom,
		center:    center,
		exponents: append([]float64(nil), exponents...),
		coeffs:    pad(coefficients, len(exponents)),
		sigR2:     math.Inf(1),
		values:    make([]float64, n),
	}
	if am == SP {
		sh.spCoeffs = pad(spCoefficients, len(exponents))
		normalize(sh.coeffs, sh.exponents, 0)
		normalize(sh.spCoeffs, sh.exponents, 1)
	} else {
		normalize(sh.coeffs, sh.exponents, am.L())
	}
	return sh
}

func pad(c []float64, n int) []float64 {
	ret := make([]float64, n)
	copy(ret, c)
	return ret
}

// doubleFactorial returns (2L-1)!!, with (-1)!! = 1.
func doubleFactorial(L int) float64 {
	ret := 1.0
	for i := 2*L - 1; i > 1; i -= 2 {
		ret *= float64(i)
	}
	return ret
}

// NormalizationFactor returns N_L(a) = (2/pi)^(3/4) 2^L / sqrt((2L-1)!!) a^((2L+3)/4),
// the factor that turns a raw contraction coefficient into one of a normalised primitive.
func NormalizationFactor(L int, alpha float64) float64 {
	pre := math.Pow(2/math.Pi, 0.75) * math.Pow(2, float64(L)) / math.Sqrt(doubleFactorial(L))
	return pre * math.Pow(alpha, float64(2*L+3)/4)
}

func normalize(c, exps []float64, L int) {
	for i := range c {
		c[i] *= NormalizationFactor(L, exps[i])
	}
}

// AngularMomentum returns the class of the shell.
func (sh *Shell) AngularMomentum() AngularMomentum { return sh.am }

// Atom returns the index of the atom the shell is centred on.
func (sh *Shell) Atom() int { return sh.atom }

// Center returns the position of the shell in bohr.
func (sh *Shell) Center() r3.Vec { return sh.center }

// NBasis returns the number of basis functions of the shell.
func (sh *Shell) NBasis() int { return len(sh.values) }

// NPrimitives returns the number of Gaussian primitives in the contraction.
func (sh *Shell) NPrimitives() int { return len(sh.exponents) }

// Exponents returns a copy of the primitive exponents.
func (sh *Shell) Exponents() []float64 { return append([]float64(nil), sh.exponents...) }

// Coefficients returns a copy of the normalised contraction coefficients.
func (sh *Shell) Coefficients() []float64 { return append([]float64(nil), sh.coeffs...) }

// SignificantRadius2 returns the cached significant radius squared,
// +Inf until BoundingBox has been called.
func (sh *Shell) SignificantRadius2() float64 { return sh.sigR2 }

// ComputeSignificantRadius returns the distance from the centre beyond which no
// primitive of the shell exceeds threshold in absolute value. It is a fixed step
// search starting at the maximum of r^L exp(-a r^2), so the result is an upper
// bound good to radiusStep, capped at maxRadius.
func (sh *Shell) ComputeSignificantRadius(threshold float64) float64 {
	L := sh.am.L()
	radius := 0.0
	for i, a := range sh.exponents {
		var r float64
		if sh.am == SP {
			r = math.Max(primitiveRadius(a, sh.coeffs[i], 0, threshold),
				primitiveRadius(a, sh.spCoeffs[i], 1, threshold))
		} else {
			r = primitiveRadius(a, sh.coeffs[i], L, threshold)
		}
		radius = math.Max(radius, r)
	}
	return radius
}

func primitiveRadius(alpha, c float64, L int, threshold float64) float64 {
	if alpha <= 0 {
		return maxRadius
	}
	c = math.Abs(c)
	fL := float64(L)
	value := func(r float64) float64 {
		return c * math.Pow(r, fL) * math.Exp(-alpha*r*r)
	}
	r := math.Sqrt(fL / (2 * alpha))
	for value(r) > threshold && r < maxRadius {
		r += radiusStep
	}
	return r
}

// BoundingBox computes and caches the significant radius for threshold and
// returns the corners of the box center ± radius.
func (sh *Shell) BoundingBox(threshold float64) (min, max r3.Vec) {
	r := sh.ComputeSignificantRadius(threshold)
	sh.sigR2 = r * r
	d := r3.Vec{X: r, Y: r, Z: r}
	return r3.Sub(sh.center, d), r3.Add(sh.center, d)
}

// Evaluate returns the values of the basis functions of the shell at (x, y, z),
// in Molden order. It returns nil when the point is beyond the cached
// significant radius, meaning all the functions are zero there.
// The returned slice is reused by the next call, and Evaluate must not be
// called concurrently. Use EvaluateInto for that.
func (sh *Shell) Evaluate(x, y, z float64) []float64 {
	if !sh.EvaluateInto(sh.values, x, y, z) {
		return nil
	}
	return sh.values
}

// EvaluateInto writes the basis function values at (x, y, z) into dst, which must
// hold at least NBasis elements. It returns false, leaving dst untouched, when
// the point is out of range. It only reads the shell, so it is safe for
// concurrent use once the significant radius is set.
func (sh *Shell) EvaluateInto(dst []float64, x, y, z float64) bool {
	x -= sh.center.X
	y -= sh.center.Y
	z -= sh.center.Z
	r2 := x*x + y*y + z*z
	if r2 > sh.sigR2 {
		return false
	}
	s := 0.0
	for i, a := range sh.exponents {
		s += sh.coeffs[i] * math.Exp(-a*r2)
	}
	v := dst[:len(sh.values)]
	switch sh.am {
	case S:
		v[0] = s
	case P:
		v[0], v[1], v[2] = s*x, s*y, s*z
	case SP:
		p := 0.0
		for i, a := range sh.exponents {
			p += sh.spCoeffs[i] * math.Exp(-a*r2)
		}
		v[0], v[1], v[2], v[3] = s, p*x, p*y, p*z
	case D5:
		v[0] = s * 0.5 * (3*z*z - r2)
		v[1] = s * sqrt3 * x * z
		v[2] = s * sqrt3 * y * z
		v[3] = s * 0.5 * sqrt3 * (x*x - y*y)
		v[4] = s * sqrt3 * x * y
	case D6:
		v[0] = s * x * x
		v[1] = s * y * y
		v[2] = s * z * z
		v[3] = s * sqrt3 * x * y
		v[4] = s * sqrt3 * x * z
		v[5] = s * sqrt3 * y * z
	case F7:
		z2 := z * z
		v[0] = s * 0.5 * z * (5*z2 - 3*r2)
		v[1] = s * f1Pre * x * (5*z2 - r2)
		v[2] = s * f1Pre * y * (5*z2 - r2)
		v[3] = s * f2Pre * z * (x*x - y*y)
		v[4] = s * sqrt15 * x * y * z
		v[5] = s * f3Pre * x * (x*x - 3*y*y)
		v[6] = s * f3Pre * y * (3*x*x - y*y)
	case F10:
		v[0] = s * x * x * x
		v[1] = s * y * y * y
		v[2] = s * z * z * z
		v[3] = s * sqrt5 * x * y * y
		v[4] = s * sqrt5 * x * x * y
		v[5] = s * sqrt5 * x * x * z
		v[6] = s * sqrt5 * x * z * z
		v[7] = s * sqrt5 * y * z * z
		v[8] = s * sqrt5 * y * y * z
		v[9] = s * sqrt15 * x * y * z
	case G9:
		x2, y2, z2 := x*x, y*y, z*z
		v[0] = s * (35*z2*z2 - 30*z2*r2 + 3*r2*r2) / 8
		v[1] = s * g1Pre * x * z * (7*z2 - 3*r2)
		v[2] = s * g1Pre * y * z * (7*z2 - 3*r2)
		v[3] = s * g2pPre * (x2 - y2) * (7*z2 - r2)
		v[4] = s * g2mPre * x * y * (7*z2 - r2)
		v[5] = s * g3Pre * x * z * (x2 - 3*y2)
		v[6] = s * g3Pre * y * z * (3*x2 - y2)
		v[7] = s * g4pPre * (x2*x2 - 6*x2*y2 + y2*y2)
		v[8] = s * g4mPre * x * y * (x2 - y2)
	case G15:
		x2, y2, z2 := x*x, y*y, z*z
		v[0] = s * x2 * x2
		v[1] = s * y2 * y2
		v[2] = s * z2 * z2
		v[3] = s * sqrt7 * x2 * x * y
		v[4] = s * sqrt7 * x2 * x * z
		v[5] = s * sqrt7 * x * y2 * y
		v[6] = s * sqrt7 * y2 * y * z
		v[7] = s * sqrt7 * x * z2 * z
		v[8] = s * sqrt7 * y * z2 * z
		v[9] = s * sqrt35o3 * x2 * y2
		v[10] = s * sqrt35o3 * x2 * z2
		v[11] = s * sqrt35o3 * y2 * z2
		v[12] = s * sqrt35 * x2 * y * z
		v[13] = s * sqrt35 * x * y2 * z
		v[14] = s * sqrt35 * x * y * z2
	default:
		//H11 and H21 have no agreed ordering yet, they evaluate to zero.
		for i := range v {
			v[i] = 0
		}
	}
	return true
}

// RadialProfile samples the radial factor sum_i c_i exp(-a_i r^2) at n points
// evenly spaced in [0, rmax]. For SP shells the s contraction is used.
func (sh *Shell) RadialProfile(rmax float64, n int) (r, values []float64) {
	if n < 2 {
		n = 2
	}
	r = make([]float64, n)
	values = make([]float64, n)
	step := rmax / float64(n-1)
	for k := range r {
		rk := float64(k) * step
		r[k] = rk
		for i, a := range sh.exponents {
			values[k] += sh.coeffs[i] * math.Exp(-a*rk*rk)
		}
	}
	return r, values
}
