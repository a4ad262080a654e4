/*
 * complex.go, part of gomo.
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

package eval

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/array"
)

// ComplexOrbitalEvaluator evaluates the real and imaginary parts of complex
// orbitals and then turns each real/imaginary pair into magnitude and phase.
type ComplexOrbitalEvaluator struct {
	*GridEvaluator
	re, im *OrbitalEvaluator
}

// NewComplexOrbitalEvaluator returns an evaluator for realGrids, with the
// coefficients re, and imagGrids, with im. realGrids[n] pairs with imagGrids[n],
// which must be the same orbital. Unpaired grids are evaluated but the polar
// conversion will fail and the raw values are kept.
func NewComplexOrbitalEvaluator(shells *mo.ShellList, re, im *array.Matrix, realGrids, imagGrids []*mo.GridData) (*ComplexOrbitalEvaluator, error) {
	R, err := NewOrbitalEvaluator(shells, re, realGrids)
	if err != nil {
		return nil, errors.Wrap(err, "real part")
	}
	I, err := NewOrbitalEvaluator(shells, im, imagGrids)
	if err != nil {
		return nil, errors.Wrap(err, "imaginary part")
	}
	if R.size != I.size {
		return nil, errors.Wrapf(ErrGridMismatch, "real lattice %v, imaginary lattice %v", R.size, I.size)
	}
	C := &ComplexOrbitalEvaluator{re: R, im: I}
	grids := append(append([]*mo.GridData(nil), realGrids...), imagGrids...)
	C.GridEvaluator = newGridEvaluator("complex orbital", R.size, grids, 2, C.compute)
	return C, nil
}

func (C *ComplexOrbitalEvaluator) compute(ctx context.Context, g *GridEvaluator) error {
	if err := C.re.compute(ctx, g); err != nil {
		return err
	}
	if err := C.im.compute(ctx, g); err != nil {
		return err
	}
	if err := ConvertToPolar(C.re.grids, C.im.grids); err != nil {
		//the raw values are still good, so the grids are usable.
		for _, grid := range g.grids {
			grid.SetComplete(true)
		}
		return err
	}
	return nil
}

// ConvertToPolar replaces, in place, each real grid with the magnitude
// sqrt(re^2+im^2) and its imaginary partner with the phase atan2(im, re).
// realGrids[n] and imagGrids[n] must belong to the same orbital and lattice.
// If the grids can't be paired nothing is converted.
func ConvertToPolar(realGrids, imagGrids []*mo.GridData) error {
	if len(realGrids) != len(imagGrids) {
		log().Errorw("Real and imaginary grid counts differ, not converting to polar",
			"real", len(realGrids), "imaginary", len(imagGrids))
		return errors.Wrapf(ErrGridMismatch, "%d real and %d imaginary grids", len(realGrids), len(imagGrids))
	}
	for n, re := range realGrids {
		if re.Size() != imagGrids[n].Size() {
			log().Errorw("Real and imaginary grids on different lattices", "pair", n)
			return errors.Wrapf(ErrGridMismatch, "pair %d", n)
		}
		if ri, ii := re.Type().Index, imagGrids[n].Type().Index; ri != ii {
			log().Errorw("Real and imaginary grids of different orbitals", "pair", n, "real", ri, "imaginary", ii)
			return errors.Wrapf(ErrGridMismatch, "pair %d: real part of orbital %d, imaginary part of orbital %d", n, ri+1, ii+1)
		}
	}
	for n, re := range realGrids {
		rv := re.Values()
		iv := imagGrids[n].Values()
		for p, r := range rv {
			i := iv[p]
			rv[p] = math.Hypot(r, i)
			iv[p] = math.Atan2(i, r)
		}
	}
	return nil
}
