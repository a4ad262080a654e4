/*
 * factory.go, part of gomo.
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

import "github.com/cockroachdb/errors"

// OrbitalData is the flat orbital information a parser produces.
// Coefficients are orbital-major: the nBasis coefficients of the first
// orbital, then the second, and so on.
type OrbitalData struct {
	Type  OrbitalType
	Title string

	AlphaCoefficients []float64
	BetaCoefficients  []float64
	// AlphaEnergies and BetaEnergies hold energies for canonical and complex
	// orbitals, amplitudes for NTOs and occupancies for NBOs.
	AlphaEnergies []float64
	BetaEnergies  []float64

	AlphaImagCoefficients []float64
	BetaImagCoefficients  []float64

	// Labels are the per-orbital labels of Dyson orbitals.
	Labels []string

	GeminalEnergies []float64
	GeminalMoMap    []int
}

// HasData returns true if there are alpha coefficients.
func (od OrbitalData) HasData() bool { return len(od.AlphaCoefficients) > 0 }

// OrbitalFactory builds the basis described by sd, on geom, and the orbitals
// of the type od.Type on it. densities are attached only to canonical orbitals.
// It returns ErrNoOrbitalData if there are no shells or no coefficients,
// ErrUnknownOrbitalType for types it doesn't know, and ErrInconsistentOrbitals
// if the orbitals don't fit the basis.
func OrbitalFactory(nAlpha, nBeta int, od OrbitalData, sd ShellData, geom Positioner, densities []*Density) (Orbitals, error) {
	if !sd.HasData() || !od.HasData() {
		return nil, errors.Wrap(ErrNoOrbitalData, "building orbitals")
	}
	shells := NewShellList(sd, geom)
	var orbitals Orbitals
	switch od.Type {
	case Generic:
		orbitals = NewOrbitalSet(Generic, shells, od.AlphaCoefficients, od.BetaCoefficients, od.Title)
	case Canonical:
		c := NewCanonicalOrbitals(nAlpha, nBeta, shells, od.AlphaCoefficients, od.AlphaEnergies,
			od.BetaCoefficients, od.BetaEnergies, od.Title)
		c.AttachDensities(densities...)
		orbitals = c
	case Localized:
		orbitals = NewLocalizedOrbitals(nAlpha, nBeta, shells, od.AlphaCoefficients, od.BetaCoefficients, od.Title)
	case NaturalTransition:
		orbitals = NewNaturalTransitionOrbitals(nAlpha, nBeta, shells, od.AlphaCoefficients, od.AlphaEnergies,
			od.BetaCoefficients, od.BetaEnergies, od.Title)
	case NaturalBond:
		orbitals = NewNaturalBondOrbitals(nAlpha, nBeta, shells, od.AlphaCoefficients, od.AlphaEnergies,
			od.BetaCoefficients, od.BetaEnergies, od.Title)
	case Dyson:
		orbitals = NewDysonOrbitals(shells, od.AlphaCoefficients, od.BetaCoefficients, od.Labels, od.Title)
	case Complex:
		orbitals = NewComplexOrbitals(nAlpha, nBeta, shells, od.AlphaCoefficients, od.AlphaImagCoefficients,
			od.AlphaEnergies, od.BetaCoefficients, od.BetaImagCoefficients, od.BetaEnergies, od.Title)
	case Geminal:
		orbitals = NewGeminalOrbitals(nAlpha, nBeta, shells, od.AlphaCoefficients, od.BetaCoefficients,
			od.GeminalEnergies, od.GeminalMoMap, od.Title)
	default:
		log().Warnw("Unknown orbital type", "type", int(od.Type))
		return nil, errors.Wrapf(ErrUnknownOrbitalType, "code %d", int(od.Type))
	}
	if !orbitals.Consistent() {
		log().Errorw("Inconsistent orbital information, check the shell types", "type", od.Type.String(),
			"nBasis", shells.NBasis(), "coefficients", len(od.AlphaCoefficients))
		return nil, errors.WithHint(errors.Wrapf(ErrInconsistentOrbitals, "%s orbitals", od.Type),
			"check the shell types, spherical/Cartesian mix-ups change the number of basis functions")
	}
	return orbitals, nil
}
