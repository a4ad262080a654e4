/*
 * canonical.go, part of gomo.
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

import "github.com/rmera/gomo/array"

// CanonicalOrbitals are SCF orbitals with energies and occupation counts.
// They can carry the densities computed by the QM program.
type CanonicalOrbitals struct {
	*OrbitalSet
	nAlpha, nBeta int
	alphaEnergies []float64
	betaEnergies  []float64
	densities     []*Density
}

// NewCanonicalOrbitals returns canonical orbitals. Energies are optional, but
// when given there must be one per orbital.
func NewCanonicalOrbitals(nAlpha, nBeta int, shells *ShellList, alpha, alphaEnergies, beta, betaEnergies []float64, title string) *CanonicalOrbitals {
	return &CanonicalOrbitals{
		OrbitalSet:    NewOrbitalSet(Canonical, shells, alpha, beta, title),
		nAlpha:        nAlpha,
		nBeta:         nBeta,
		alphaEnergies: append([]float64(nil), alphaEnergies...),
		betaEnergies:  append([]float64(nil), betaEnergies...),
	}
}

// AttachDensities adds densities to the orbitals.
func (O *CanonicalOrbitals) AttachDensities(densities ...*Density) {
	O.densities = append(O.densities, densities...)
}

// Densities returns the attached densities.
func (O *CanonicalOrbitals) Densities() []*Density { return O.densities }

// Consistent adds occupation and energy checks to OrbitalSet.Consistent.
func (O *CanonicalOrbitals) Consistent() bool {
	if !O.OrbitalSet.Consistent() {
		return false
	}
	n := O.NOrbitals()
	if O.nAlpha < 0 || O.nBeta < 0 || O.nAlpha > n || O.nBeta > n {
		log().Warnw("Occupied orbital count out of range", "nAlpha", O.nAlpha, "nBeta", O.nBeta, "nOrbitals", n)
		return false
	}
	if !lengthOK(len(O.alphaEnergies), n) || (!O.Restricted() && !lengthOK(len(O.betaEnergies), n)) {
		log().Warnw("Orbital energies don't match the orbitals", "alpha", len(O.alphaEnergies), "beta", len(O.betaEnergies), "nOrbitals", n)
		return false
	}
	return true
}

// NAlpha returns the number of occupied alpha orbitals.
func (O *CanonicalOrbitals) NAlpha() int { return O.nAlpha }

// NBeta returns the number of occupied beta orbitals.
func (O *CanonicalOrbitals) NBeta() int { return O.nBeta }

func (O *CanonicalOrbitals) nOcc(alpha bool) int {
	if alpha {
		return O.nAlpha
	}
	return O.nBeta
}

// Label marks the HOMO, LUMO, HOMO-1 and LUMO+1.
func (O *CanonicalOrbitals) Label(index int, alpha bool) string {
	return occupiedLabel(index, O.nOcc(alpha))
}

// LabelIndex returns the HOMO.
func (O *CanonicalOrbitals) LabelIndex(alpha bool) int {
	return max(0, O.nOcc(alpha)-1)
}

// AlphaOrbitalEnergy returns the energy of the given alpha orbital, 0 if unknown.
func (O *CanonicalOrbitals) AlphaOrbitalEnergy(index int) float64 {
	return valueAt(O.alphaEnergies, index)
}

// BetaOrbitalEnergy returns the energy of the given beta orbital, which is the alpha one
// for restricted orbitals.
func (O *CanonicalOrbitals) BetaOrbitalEnergy(index int) float64 {
	if O.Restricted() {
		return O.AlphaOrbitalEnergy(index)
	}
	return valueAt(O.betaEnergies, index)
}

// DensityList returns the attached densities or, if there are none, the
// alpha, beta, total and spin densities built from the occupied orbitals.
func (O *CanonicalOrbitals) DensityList() []*Density {
	if len(O.densities) > 0 || !O.Consistent() {
		return O.densities
	}
	a := packedDensity(O.AlphaCoefficients(), nil, O.nAlpha)
	b := packedDensity(O.BetaCoefficients(), nil, O.nBeta)
	return spinDensities(a, b)
}

// packedDensity returns the upper-triangular packing of sum_k C_ki C_kj over the
// first nOcc rows of re (and im, if not nil).
func packedDensity(re, im *array.Matrix, nOcc int) []float64 {
	n := re.Cols()
	P := make([]float64, n*(n+1)/2)
	nOcc = min(nOcc, re.Rows())
	for k := 0; k < nOcc; k++ {
		addOuter(P, re.Row(k))
		if im != nil {
			addOuter(P, im.Row(k))
		}
	}
	return P
}

func addOuter(P, c []float64) {
	t := 0
	for i, ci := range c {
		for j := 0; j <= i; j++ {
			P[t] += ci * c[j]
			t++
		}
	}
}

// spinDensities returns the alpha, beta, total and spin densities for the given
// packed alpha and beta densities.
func spinDensities(alpha, beta []float64) []*Density {
	total := make([]float64, len(alpha))
	spin := make([]float64, len(alpha))
	for i := range alpha {
		total[i] = alpha[i] + beta[i]
		spin[i] = alpha[i] - beta[i]
	}
	ret := make([]*Density, 0, 4)
	for _, d := range []struct {
		kind SurfaceKind
		v    []float64
	}{{AlphaDensity, alpha}, {BetaDensity, beta}, {TotalDensity, total}, {SpinDensity, spin}} {
		den, err := NewDensity(NewSurfaceType(d.kind, 0), d.v, "")
		if err != nil {
			log().Errorw("Could not build density", "type", d.kind, "error", err)
			continue
		}
		ret = append(ret, den)
	}
	return ret
}
