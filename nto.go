/*
 * nto.go, part of gomo.
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
	"fmt"
	"strconv"
)

// NaturalTransitionOrbitals are hole/particle pairs describing an excitation.
// Each orbital carries the amplitude of its pair, the first nAlpha (nBeta)
// orbitals are holes.
type NaturalTransitionOrbitals struct {
	*OrbitalSet
	nAlpha, nBeta   int
	alphaAmplitudes []float64
	betaAmplitudes  []float64
}

// NewNaturalTransitionOrbitals returns NTOs. Amplitudes are optional, one per orbital.
func NewNaturalTransitionOrbitals(nAlpha, nBeta int, shells *ShellList, alpha, alphaAmplitudes, beta, betaAmplitudes []float64, title string) *NaturalTransitionOrbitals {
	return &NaturalTransitionOrbitals{
		OrbitalSet:      NewOrbitalSet(NaturalTransition, shells, alpha, beta, title),
		nAlpha:          nAlpha,
		nBeta:           nBeta,
		alphaAmplitudes: append([]float64(nil), alphaAmplitudes...),
		betaAmplitudes:  append([]float64(nil), betaAmplitudes...),
	}
}

// Consistent also checks the number of amplitudes.
func (O *NaturalTransitionOrbitals) Consistent() bool {
	n := O.NOrbitals()
	return O.OrbitalSet.Consistent() && lengthOK(len(O.alphaAmplitudes), n) &&
		(O.Restricted() || lengthOK(len(O.betaAmplitudes), n))
}

// NAlpha returns the number of alpha hole orbitals.
func (O *NaturalTransitionOrbitals) NAlpha() int { return O.nAlpha }

// NBeta returns the number of beta hole orbitals.
func (O *NaturalTransitionOrbitals) NBeta() int { return O.nBeta }

// AlphaOrbitalEnergy returns the amplitude of the alpha orbital.
func (O *NaturalTransitionOrbitals) AlphaOrbitalEnergy(index int) float64 {
	return valueAt(O.alphaAmplitudes, index)
}

// BetaOrbitalEnergy returns the amplitude of the beta orbital.
func (O *NaturalTransitionOrbitals) BetaOrbitalEnergy(index int) float64 {
	if O.Restricted() {
		return O.AlphaOrbitalEnergy(index)
	}
	return valueAt(O.betaAmplitudes, index)
}

// Label shows the amplitude, and whether the orbital is a hole or a particle.
func (O *NaturalTransitionOrbitals) Label(index int, alpha bool) string {
	amps, nOcc := O.alphaAmplitudes, O.nAlpha
	if !alpha {
		nOcc = O.nBeta
		if !O.Restricted() {
			amps = O.betaAmplitudes
		}
	}
	kind := "particle"
	if index < nOcc {
		kind = "hole"
	}
	if index < 0 || index >= len(amps) {
		return strconv.Itoa(index+1) + " " + kind
	}
	return fmt.Sprintf("%d %s (%.4f)", index+1, kind, amps[index])
}

// LabelIndex returns the last hole orbital, which pairs with the first particle.
func (O *NaturalTransitionOrbitals) LabelIndex(alpha bool) int {
	if alpha {
		return max(0, O.nAlpha-1)
	}
	return max(0, O.nBeta-1)
}
