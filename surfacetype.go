/*
 * surfacetype.go, part of gomo.
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
	"strings"

	"github.com/cockroachdb/errors"
)

// SurfaceKind says which physical quantity a grid or density represents.
type SurfaceKind int

const (
	Custom SurfaceKind = iota
	AlphaOrbital
	BetaOrbital
	TotalDensity
	SpinDensity
	AlphaDensity
	BetaDensity
	BasisFunction
	AlphaComplexReal
	AlphaComplexImag
	BetaComplexReal
	BetaComplexImag
)

var kindNames = [...]string{
	Custom:           "Custom",
	AlphaOrbital:     "AlphaOrbital",
	BetaOrbital:      "BetaOrbital",
	TotalDensity:     "TotalDensity",
	SpinDensity:      "SpinDensity",
	AlphaDensity:     "AlphaDensity",
	BetaDensity:      "BetaDensity",
	BasisFunction:    "BasisFunction",
	AlphaComplexReal: "AlphaComplexReal",
	AlphaComplexImag: "AlphaComplexImag",
	BetaComplexReal:  "BetaComplexReal",
	BetaComplexImag:  "BetaComplexImag",
}

func (k SurfaceKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "SurfaceKind(" + strconv.Itoa(int(k)) + ")"
}

// ParseSurfaceKind is the inverse of SurfaceKind.String.
func ParseSurfaceKind(s string) (SurfaceKind, bool) {
	for k, name := range kindNames {
		if name == s {
			return SurfaceKind(k), true
		}
	}
	return Custom, false
}

// SurfaceType identifies what a grid holds. Index is the 0-based orbital or
// basis function index for indexed kinds, Label names Custom densities.
// It is comparable, but use Equal to match Custom types by label.
type SurfaceType struct {
	Kind  SurfaceKind
	Index int
	Label string
}

// NewSurfaceType returns a SurfaceType of the given kind and index.
func NewSurfaceType(kind SurfaceKind, index int) SurfaceType {
	return SurfaceType{Kind: kind, Index: index}
}

// NewCustomType returns a Custom SurfaceType with the given label.
func NewCustomType(label string) SurfaceType {
	return SurfaceType{Kind: Custom, Label: label}
}

// IsDensity is true for density kinds, Custom included.
func (t SurfaceType) IsDensity() bool {
	switch t.Kind {
	case Custom, TotalDensity, SpinDensity, AlphaDensity, BetaDensity:
		return true
	}
	return false
}

// IsOrbital is true for real and complex orbital kinds.
func (t SurfaceType) IsOrbital() bool {
	return t.Kind == AlphaOrbital || t.Kind == BetaOrbital || t.IsComplex()
}

// IsComplex is true for the real and imaginary parts of complex orbitals.
func (t SurfaceType) IsComplex() bool {
	switch t.Kind {
	case AlphaComplexReal, AlphaComplexImag, BetaComplexReal, BetaComplexImag:
		return true
	}
	return false
}

// IsBasis is true for basis function grids.
func (t SurfaceType) IsBasis() bool { return t.Kind == BasisFunction }

// IsSigned is true for quantities that take both signs, which get two isosurfaces.
func (t SurfaceType) IsSigned() bool {
	return t.IsOrbital() || t.IsBasis() || t.Kind == SpinDensity
}

// IsIndexed is true when Index is meaningful.
func (t SurfaceType) IsIndexed() bool {
	return t.IsOrbital() || t.IsBasis()
}

// IsAlpha is true for alpha spin orbitals and densities.
func (t SurfaceType) IsAlpha() bool {
	switch t.Kind {
	case AlphaOrbital, AlphaDensity, AlphaComplexReal, AlphaComplexImag:
		return true
	}
	return false
}

// IsBeta is true for beta spin orbitals and densities.
func (t SurfaceType) IsBeta() bool {
	switch t.Kind {
	case BetaOrbital, BetaDensity, BetaComplexReal, BetaComplexImag:
		return true
	}
	return false
}

// IsImaginary is true for the imaginary part of a complex orbital.
func (t SurfaceType) IsImaginary() bool {
	return t.Kind == AlphaComplexImag || t.Kind == BetaComplexImag
}

// Equal compares kinds and indices, except for Custom types which match by label.
func (t SurfaceType) Equal(o SurfaceType) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == Custom {
		return t.Label == o.Label
	}
	if t.IsIndexed() {
		return t.Index == o.Index
	}
	return true
}

func (t SurfaceType) String() string {
	switch {
	case t.Kind == Custom:
		return "Custom " + strconv.Quote(t.Label)
	case t.IsIndexed():
		return fmt.Sprintf("%s %d", t.Kind, t.Index+1)
	default:
		return t.Kind.String()
	}
}

// ParseSurfaceType is the inverse of SurfaceType.String.
func ParseSurfaceType(s string) (SurfaceType, error) {
	s = strings.TrimSpace(s)
	name, rest, _ := strings.Cut(s, " ")
	kind, ok := ParseSurfaceKind(name)
	if !ok {
		return SurfaceType{}, errors.Newf("unknown surface type %q", s)
	}
	t := NewSurfaceType(kind, 0)
	switch {
	case kind == Custom:
		label, err := strconv.Unquote(strings.TrimSpace(rest))
		if err != nil {
			return SurfaceType{}, errors.Wrapf(err, "custom surface label in %q", s)
		}
		t.Label = label
	case t.IsIndexed():
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 1 {
			return SurfaceType{}, errors.Newf("bad index in surface type %q", s)
		}
		t.Index = n - 1
	}
	return t, nil
}
