/*
 * reorder.go, part of gomo.
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

// qchemToMolden holds, per shell class, the column permutation that takes a
// Q-Chem ordered shell block to the Molden/FChk order: new[k] = old[perm[k]].
// Classes not listed (S, P, SP, H11, H21) are left alone.
var qchemToMolden = map[AngularMomentum][]int{
	D6:  {0, 2, 5, 1, 3, 4},
	D5:  {2, 3, 1, 4, 0},
	F7:  {3, 4, 2, 5, 1, 6, 0},
	G9:  {4, 5, 3, 6, 2, 7, 1, 8, 0},
	F10: {0, 3, 9, 2, 1, 4, 7, 8, 6, 5},
	G15: {0, 4, 14, 1, 5, 3, 8, 12, 13, 2, 9, 11, 6, 7, 10},
}

// ReorderFromQChem permutes, in place, the columns of m (one column per basis
// function, one row per orbital) within each shell block, from the Q-Chem
// order to the one Shell.Evaluate produces. It panics if m doesn't have NBasis columns.
func (L *ShellList) ReorderFromQChem(m *array.Matrix) {
	if m.Cols() != L.nBasis {
		panic(ErrShape)
	}
	tmp := make([]float64, 15)
	for i := 0; i < m.Rows(); i++ {
		row := m.Row(i)
		offset := 0
		for _, sh := range L.shells {
			n := sh.NBasis()
			if perm, ok := qchemToMolden[sh.AngularMomentum()]; ok {
				block := row[offset : offset+n]
				copy(tmp, block)
				for k, p := range perm {
					block[k] = tmp[p]
				}
			}
			offset += n
		}
	}
}
