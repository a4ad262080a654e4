/*
 * dyson.go, part of gomo.
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

// DysonOrbitals are the Dyson orbitals of ionisation or attachment
// processes, each with its own label. Alpha holds the left and beta the right
// orbitals when they differ.
type DysonOrbitals struct {
	*OrbitalSet
	labels []string
}

// NewDysonOrbitals returns Dyson orbitals. labels is optional, one per orbital.
func NewDysonOrbitals(shells *ShellList, alpha, beta []float64, labels []string, title string) *DysonOrbitals {
	return &DysonOrbitals{
		OrbitalSet: NewOrbitalSet(Dyson, shells, alpha, beta, title),
		labels:     append([]string(nil), labels...),
	}
}

// Consistent also checks the number of labels.
func (O *DysonOrbitals) Consistent() bool {
	return O.OrbitalSet.Consistent() && lengthOK(len(O.labels), O.NOrbitals())
}

// Label returns the label of the orbital, or its 1-based number if it has none.
func (O *DysonOrbitals) Label(index int, alpha bool) string {
	if index >= 0 && index < len(O.labels) && O.labels[index] != "" {
		return O.labels[index]
	}
	return strconv.Itoa(index + 1)
}
