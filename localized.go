/*
 * localized.go, part of gomo.
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

import "strconv"

// LocalizedOrbitals are localized occupied and virtual orbitals. The first
// nAlpha (nBeta) of them are occupied.
type LocalizedOrbitals struct {
	*OrbitalSet
	nAlpha, nBeta int
}

// NewLocalizedOrbitals returns localized orbitals.
func NewLocalizedOrbitals(nAlpha, nBeta int, shells *ShellList, alpha, beta []float64, title string) *LocalizedOrbitals {
	return &LocalizedOrbitals{
		OrbitalSet: NewOrbitalSet(Localized, shells, alpha, beta, title),
		nAlpha:     nAlpha,
		nBeta:      nBeta,
	}
}

// NAlpha returns the number of occupied alpha orbitals.
func (O *LocalizedOrbitals) NAlpha() int { return O.nAlpha }

// NBeta returns the number of occupied beta orbitals.
func (O *LocalizedOrbitals) NBeta() int { return O.nBeta }

// Label marks occupied orbitals with "(occ)".
func (O *LocalizedOrbitals) Label(index int, alpha bool) string {
	return occLabel(index, O.nAlpha, O.nBeta, alpha)
}

// LabelIndex returns the last occupied orbital.
func (O *LocalizedOrbitals) LabelIndex(alpha bool) int {
	if alpha {
		return max(0, O.nAlpha-1)
	}
	return max(0, O.nBeta-1)
}

func occLabel(index, nAlpha, nBeta int, alpha bool) string {
	nOcc := nBeta
	if alpha {
		nOcc = nAlpha
	}
	label := strconv.Itoa(index + 1)
	if index < nOcc {
		label += " (occ)"
	}
	return label
}

// NaturalBondOrbitals are NBOs, with their occupancies.
type NaturalBondOrbitals struct {
	*LocalizedOrbitals
	alphaOccupancies []float64
	betaOccupancies  []float64
}

// NewNaturalBondOrbitals returns NBOs. Occupancies are optional, one per orbital.
func NewNaturalBondOrbitals(nAlpha, nBeta int, shells *ShellList, alpha, alphaOccupancies, beta, betaOccupancies []float64, title string) *NaturalBondOrbitals {
	O := &NaturalBondOrbitals{
		LocalizedOrbitals: NewLocalizedOrbitals(nAlpha, nBeta, shells, alpha, beta, title),
		alphaOccupancies:  append([]float64(nil), alphaOccupancies...),
		betaOccupancies:   append([]float64(nil), betaOccupancies...),
	}
	O.kind = NaturalBond
	if title == "" {
		O.title = NaturalBond.String() + " Orbitals"
	}
	return O
}

// Consistent also checks the number of occupancies.
func (O *NaturalBondOrbitals) Consistent() bool {
	n := O.NOrbitals()
	return O.OrbitalSet.Consistent() && lengthOK(len(O.alphaOccupancies), n) &&
		(O.Restricted() || lengthOK(len(O.betaOccupancies), n))
}

// Occupancy returns the occupancy of an orbital, 0 if unknown.
func (O *NaturalBondOrbitals) Occupancy(index int, alpha bool) float64 {
	if alpha || O.Restricted() {
		return valueAt(O.alphaOccupancies, index)
	}
	return valueAt(O.betaOccupancies, index)
}
