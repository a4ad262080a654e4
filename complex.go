/*
 * complex.go, part of gomo.
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

// ComplexOrbitals are canonical orbitals with complex coefficients. The
// OrbitalSet matrices hold the real parts.
type ComplexOrbitals struct {
	*OrbitalSet
	nAlpha, nBeta int
	alphaImag     *array.Matrix
	betaImag      *array.Matrix
	alphaEnergies []float64
	betaEnergies  []float64
}

// NewComplexOrbitals returns complex orbitals. The imaginary coefficients must
// have the shape of the real ones. Energies are optional, one per orbital.
func NewComplexOrbitals(nAlpha, nBeta int, shells *ShellList, alphaReal, alphaImag, alphaEnergies, betaReal, betaImag, betaEnergies []float64, title string) *ComplexOrbitals {
	O := &ComplexOrbitals{
		OrbitalSet:    NewOrbitalSet(Complex, shells, alphaReal, betaReal, title),
		nAlpha:        nAlpha,
		nBeta:         nBeta,
		alphaEnergies: append([]float64(nil), alphaEnergies...),
		betaEnergies:  append([]float64(nil), betaEnergies...),
	}
	n, nb := O.NOrbitals(), O.NBasis()
	if n == 0 {
		return O
	}
	if len(alphaImag) != n*nb || (!O.Restricted() && len(betaImag) != n*nb) {
		log().Warnw("Imaginary coefficients don't match the real ones",
			"alphaReal", len(alphaReal), "alphaImag", len(alphaImag), "betaReal", len(betaReal), "betaImag", len(betaImag))
		O.nOrbitals = 0
		return O
	}
	O.alphaImag = array.FromSlice(append([]float64(nil), alphaImag...), n, nb)
	if !O.Restricted() {
		O.betaImag = array.FromSlice(append([]float64(nil), betaImag...), n, nb)
	}
	return O
}

// Consistent adds energy checks to OrbitalSet.Consistent.
func (O *ComplexOrbitals) Consistent() bool {
	n := O.NOrbitals()
	return O.OrbitalSet.Consistent() && O.alphaImag != nil &&
		lengthOK(len(O.alphaEnergies), n) && (O.Restricted() || lengthOK(len(O.betaEnergies), n))
}

// AlphaImagCoefficients returns the imaginary part of the alpha coefficients.
func (O *ComplexOrbitals) AlphaImagCoefficients() *array.Matrix { return O.alphaImag }

// BetaImagCoefficients returns the imaginary part of the beta coefficients,
// the alpha one when restricted.
func (O *ComplexOrbitals) BetaImagCoefficients() *array.Matrix {
	if O.Restricted() {
		return O.alphaImag
	}
	return O.betaImag
}

// NAlpha returns the number of occupied alpha orbitals.
func (O *ComplexOrbitals) NAlpha() int { return O.nAlpha }

// NBeta returns the number of occupied beta orbitals.
func (O *ComplexOrbitals) NBeta() int { return O.nBeta }

// Label marks the frontier orbitals, as for canonical orbitals.
func (O *ComplexOrbitals) Label(index int, alpha bool) string {
	if alpha {
		return occupiedLabel(index, O.nAlpha)
	}
	return occupiedLabel(index, O.nBeta)
}

// LabelIndex returns the HOMO.
func (O *ComplexOrbitals) LabelIndex(alpha bool) int {
	if alpha {
		return max(0, O.nAlpha-1)
	}
	return max(0, O.nBeta-1)
}

// AlphaOrbitalEnergy returns the energy of the alpha orbital, 0 if unknown.
func (O *ComplexOrbitals) AlphaOrbitalEnergy(index int) float64 {
	return valueAt(O.alphaEnergies, index)
}

// BetaOrbitalEnergy returns the energy of the beta orbital, falling back to the
// alpha one for restricted orbitals.
func (O *ComplexOrbitals) BetaOrbitalEnergy(index int) float64 {
	if O.Restricted() {
		return O.AlphaOrbitalEnergy(index)
	}
	return valueAt(O.betaEnergies, index)
}

// DensityList returns the alpha, beta, total and spin densities, with
// P = Re^T Re + Im^T Im summed over the occupied orbitals of each spin.
func (O *ComplexOrbitals) DensityList() []*Density {
	if !O.Consistent() {
		return nil
	}
	a := packedDensity(O.AlphaCoefficients(), O.AlphaImagCoefficients(), O.nAlpha)
	b := packedDensity(O.BetaCoefficients(), O.BetaImagCoefficients(), O.nBeta)
	return spinDensities(a, b)
}

// ComputeFirstOrderDensityMatrix is not available for complex orbitals yet.
func (O *ComplexOrbitals) ComputeFirstOrderDensityMatrix() error {
	log().Warnw("First order density matrix for complex orbitals not yet implemented", "title", O.Title())
	return errors.Wrap(ErrNotImplemented, "complex first order density matrix")
}
