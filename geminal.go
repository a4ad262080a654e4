/*
 * geminal.go, part of gomo.
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

import "fmt"

// GeminalOrbitals are the orbitals of a geminal (e.g. perfect pairing)
// wavefunction. Each orbital belongs to one geminal, which has an energy.
type GeminalOrbitals struct {
	*OrbitalSet
	nAlpha, nBeta   int
	geminalEnergies []float64
	moToGeminal     []int
}

// NewGeminalOrbitals returns geminal orbitals. moToGeminal maps each orbital
// to the 0-based index of its geminal, and is optional.
func NewGeminalOrbitals(nAlpha, nBeta int, shells *ShellList, alpha, beta, geminalEnergies []float64, moToGeminal []int, title string) *GeminalOrbitals {
	return &GeminalOrbitals{
		OrbitalSet:      NewOrbitalSet(Geminal, shells, alpha, beta, title),
		nAlpha:          nAlpha,
		nBeta:           nBeta,
		geminalEnergies: append([]float64(nil), geminalEnergies...),
		moToGeminal:     append([]int(nil), moToGeminal...),
	}
}

// Consistent also checks the orbital to geminal map.
func (O *GeminalOrbitals) Consistent() bool {
	if !O.OrbitalSet.Consistent() || !lengthOK(len(O.moToGeminal), O.NOrbitals()) {
		return false
	}
	for _, g := range O.moToGeminal {
		if g < -1 || g >= len(O.geminalEnergies) {
			return false
		}
	}
	return true
}

// NAlpha returns the number of occupied alpha orbitals.
func (O *GeminalOrbitals) NAlpha() int { return O.nAlpha }

// NBeta returns the number of occupied beta orbitals.
func (O *GeminalOrbitals) NBeta() int { return O.nBeta }

// Geminal returns the geminal the orbital belongs to, -1 if none.
func (O *GeminalOrbitals) Geminal(index int) int {
	if index < 0 || index >= len(O.moToGeminal) {
		return -1
	}
	return O.moToGeminal[index]
}

// AlphaOrbitalEnergy returns the energy of the geminal of the orbital.
func (O *GeminalOrbitals) AlphaOrbitalEnergy(index int) float64 {
	return valueAt(O.geminalEnergies, O.Geminal(index))
}

// BetaOrbitalEnergy is AlphaOrbitalEnergy, geminals pair both spins.
func (O *GeminalOrbitals) BetaOrbitalEnergy(index int) float64 {
	return O.AlphaOrbitalEnergy(index)
}

// Label adds the geminal number to the orbital number.
func (O *GeminalOrbitals) Label(index int, alpha bool) string {
	g := O.Geminal(index)
	if g < 0 {
		return fmt.Sprintf("%d", index+1)
	}
	return fmt.Sprintf("%d (geminal %d)", index+1, g+1)
}

// LabelIndex returns the last occupied orbital.
func (O *GeminalOrbitals) LabelIndex(alpha bool) int {
	if alpha {
		return max(0, O.nAlpha-1)
	}
	return max(0, O.nBeta-1)
}
