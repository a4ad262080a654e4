/*
 * orbitals.go, part of gomo.
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
	"strconv"

	"github.com/rmera/gomo/array"
)

// OrbitalType tags the variants of the Orbitals family.
type OrbitalType int

const (
	Generic OrbitalType = iota
	Canonical
	Localized
	NaturalTransition
	NaturalBond
	Dyson
	Complex
	Geminal
)

var orbitalTypeNames = [...]string{
	Generic:           "Generic",
	Canonical:         "Canonical",
	Localized:         "Localized",
	NaturalTransition: "NaturalTransition",
	NaturalBond:       "NaturalBond",
	Dyson:             "Dyson",
	Complex:           "Complex",
	Geminal:           "Geminal",
}

func (t OrbitalType) String() string {
	if t >= 0 && int(t) < len(orbitalTypeNames) {
		return orbitalTypeNames[t]
	}
	return "OrbitalType(" + strconv.Itoa(int(t)) + ")"
}

// ParseOrbitalType is the inverse of OrbitalType.String.
func ParseOrbitalType(s string) (OrbitalType, bool) {
	for i, name := range orbitalTypeNames {
		if name == s {
			return OrbitalType(i), true
		}
	}
	return -1, false
}

// Orbitals is the behaviour shared by every kind of orbital set.
// Orbital indices are 0-based.
type Orbitals interface {
	Type() OrbitalType
	Title() string
	ShellList() *ShellList
	NBasis() int
	NOrbitals() int
	Restricted() bool
	AlphaCoefficients() *array.Matrix
	BetaCoefficients() *array.Matrix
	Consistent() bool
	AreOrthonormal() bool
	Label(index int, alpha bool) string
	LabelIndex(alpha bool) int
	NAlpha() int
	NBeta() int
	AlphaOrbitalEnergy(index int) float64
	BetaOrbitalEnergy(index int) float64
}

// OrbitalSet is the state common to all the orbital kinds: a basis and one
// or two coefficient matrices, orbitals by basis functions. Used by itself
// it is the Generic variant.
type OrbitalSet struct {
	kind       OrbitalType
	title      string
	shells     *ShellList
	alpha      *array.Matrix
	beta       *array.Matrix
	nBasis     int
	nOrbitals  int
	restricted bool
}

// NewOrbitalSet builds the common orbital state. An empty beta means
// restricted orbitals. Coefficient lists that don't fit the basis leave the
// set with no orbitals, so Consistent returns false. That is logged, not returned.
func NewOrbitalSet(kind OrbitalType, shells *ShellList, alpha, beta []float64, title string) *OrbitalSet {
	O := &OrbitalSet{
		kind:       kind,
		title:      title,
		shells:     shells,
		restricted: len(beta) != len(alpha),
	}
	if shells != nil {
		O.nBasis = shells.NBasis()
	}
	if title == "" {
		O.title = kind.String() + " Orbitals"
	}
	switch {
	case O.nBasis == 0:
		log().Warnw("Orbitals with an empty basis", "type", kind)
		return O
	case len(alpha) == 0 || len(alpha)%O.nBasis != 0:
		log().Warnw("Alpha coefficients don't fit the basis", "type", kind, "coefficients", len(alpha), "nBasis", O.nBasis)
		return O
	case O.restricted && len(beta) != 0:
		log().Warnw("Beta coefficients don't match the alpha ones", "type", kind, "alpha", len(alpha), "beta", len(beta))
		return O
	}
	O.nOrbitals = len(alpha) / O.nBasis
	O.alpha = array.FromSlice(append([]float64(nil), alpha...), O.nOrbitals, O.nBasis)
	if !O.restricted {
		O.beta = array.FromSlice(append([]float64(nil), beta...), O.nOrbitals, O.nBasis)
	}
	return O
}

// Type returns the kind of orbitals.
func (O *OrbitalSet) Type() OrbitalType { return O.kind }

// Title returns the display title of the set.
func (O *OrbitalSet) Title() string { return O.title }

// ShellList returns the basis of the orbitals.
func (O *OrbitalSet) ShellList() *ShellList { return O.shells }

// NBasis returns the number of basis functions.
func (O *OrbitalSet) NBasis() int { return O.nBasis }

// NOrbitals returns the number of orbitals, 0 for an inconsistent set.
func (O *OrbitalSet) NOrbitals() int { return O.nOrbitals }

// Restricted is true when alpha and beta orbitals share the coefficients.
func (O *OrbitalSet) Restricted() bool { return O.restricted }

// AlphaCoefficients returns the alpha coefficient matrix, nil for an inconsistent set.
func (O *OrbitalSet) AlphaCoefficients() *array.Matrix { return O.alpha }

// BetaCoefficients returns the beta coefficients, which are the alpha ones for
// restricted sets.
func (O *OrbitalSet) BetaCoefficients() *array.Matrix {
	if O.restricted {
		return O.alpha
	}
	return O.beta
}

// Coefficients returns the alpha or beta coefficients.
func (O *OrbitalSet) Coefficients(alpha bool) *array.Matrix {
	if alpha {
		return O.AlphaCoefficients()
	}
	return O.BetaCoefficients()
}

// Consistent reports whether the orbitals can be used with their basis.
func (O *OrbitalSet) Consistent() bool {
	return O.shells != nil && O.nBasis == O.shells.NBasis() &&
		O.nBasis > 0 && O.nOrbitals > 0 && O.nOrbitals <= O.nBasis
}

// orthonormalTol is the tolerance of AreOrthonormal.
const orthonormalTol = 1e-8

// AreOrthonormal checks that C S C^T is the identity within 1e-8, where S is
// the overlap of the basis (the identity if the basis carries none). Real world
// coefficients often fail it by noise alone, so it is not part of Consistent.
func (O *OrbitalSet) AreOrthonormal() bool {
	if O.nOrbitals == 0 {
		return false
	}
	S := O.shells.Overlap()
	check := func(C *array.Matrix) bool {
		var CS *array.Matrix
		if S == nil {
			CS = C
		} else {
			CS = array.Product(C, S)
		}
		M := array.Product(CS, array.Transpose(C))
		return array.EqualApprox(M, array.Identity(O.nOrbitals), orthonormalTol)
	}
	if !check(O.alpha) {
		return false
	}
	return O.restricted || check(O.beta)
}

// Label returns the 1-based orbital number.
func (O *OrbitalSet) Label(index int, alpha bool) string { return strconv.Itoa(index + 1) }

// LabelIndex returns the orbital to show by default.
func (O *OrbitalSet) LabelIndex(alpha bool) int { return 0 }

// NAlpha returns the number of occupied alpha orbitals, unknown (0) for generic sets.
func (O *OrbitalSet) NAlpha() int { return 0 }

// NBeta returns the number of occupied beta orbitals, unknown (0) for generic sets.
func (O *OrbitalSet) NBeta() int { return 0 }

// AlphaOrbitalEnergy returns 0, generic orbitals have no energies.
func (O *OrbitalSet) AlphaOrbitalEnergy(index int) float64 { return 0 }

// BetaOrbitalEnergy returns 0, generic orbitals have no energies.
func (O *OrbitalSet) BetaOrbitalEnergy(index int) float64 { return 0 }

// valueAt returns s[i], or 0 when i is out of range.
func valueAt(s []float64, i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// lengthOK is true for optional per-orbital data: absent, or one per orbital.
func lengthOK(n, nOrbitals int) bool {
	return n == 0 || n == nOrbitals
}

// occupiedLabel annotates frontier orbitals relative to the occupied count.
func occupiedLabel(index, nOcc int) string {
	label := strconv.Itoa(index + 1)
	switch index {
	case nOcc - 2:
		label += " (HOMO-1)"
	case nOcc - 1:
		label += " (HOMO)"
	case nOcc:
		label += " (LUMO)"
	case nOcc + 1:
		label += " (LUMO+1)"
	}
	return label
}
