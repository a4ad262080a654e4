/*
 * angular.go, part of gomo.
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

	"github.com/cockroachdb/errors"
)

// AngularMomentum is the class of a shell. The values are the signed codes used
// by formatted checkpoint files: negative means spherical (pure) functions,
// non-negative Cartesian ones, and SP is the combined S+P shell.
type AngularMomentum int

const (
	S   AngularMomentum = 0
	P   AngularMomentum = 1
	SP  AngularMomentum = -1
	D6  AngularMomentum = 2
	D5  AngularMomentum = -2
	F10 AngularMomentum = 3
	F7  AngularMomentum = -3
	G15 AngularMomentum = 4
	G9  AngularMomentum = -4
	H21 AngularMomentum = 5
	H11 AngularMomentum = -5
)

var nFunctions = map[AngularMomentum]int{
	S: 1, P: 3, SP: 4, D5: 5, D6: 6, F7: 7, F10: 10, G9: 9, G15: 15, H11: 11, H21: 21,
}

var amNames = map[AngularMomentum]string{
	S: "S", P: "P", SP: "SP", D5: "D5", D6: "D6", F7: "F7", F10: "F10", G9: "G9", G15: "G15", H11: "H11", H21: "H21",
}

// ParseAngularMomentum validates an external shell type code.
func ParseAngularMomentum(code int) (AngularMomentum, error) {
	am := AngularMomentum(code)
	if _, ok := nFunctions[am]; !ok {
		return 0, errors.Wrapf(ErrUnknownShellType, "code %d", code)
	}
	return am, nil
}

// NFunctions returns the number of basis functions in a shell of class am.
// It panics for unknown classes.
func NFunctions(am AngularMomentum) int {
	n, ok := nFunctions[am]
	if !ok {
		panic(PanicMsg(fmt.Sprintf("gomo: unknown angular momentum %d", int(am))))
	}
	return n
}

// L returns the orbital angular momentum quantum number (SP gives 1).
func (am AngularMomentum) L() int {
	switch am {
	case SP:
		return 1
	default:
		if am < 0 {
			return int(-am)
		}
		return int(am)
	}
}

// Spherical returns true for pure (D5, F7, G9, H11) classes.
func (am AngularMomentum) Spherical() bool {
	return am < -1
}

func (am AngularMomentum) String() string {
	if s, ok := amNames[am]; ok {
		return s
	}
	return fmt.Sprintf("AngularMomentum(%d)", int(am))
}
