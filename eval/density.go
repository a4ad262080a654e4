/*
 * density.go, part of gomo.
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

	"github.com/cockroachdb/errors"

	mo "github.com/rmera/gomo"
)

// DensityEvaluator fills density grids, each with its own density matrix,
// contracting all of them in one pass.
type DensityEvaluator struct {
	*GridEvaluator
	ws *mo.Workspace
}

// NewDensityEvaluator returns an evaluator that fills grids[n] with densities[n].
// The grids must share a lattice.
func NewDensityEvaluator(shells *mo.ShellList, grids []*mo.GridData, densities []*mo.Density) (*DensityEvaluator, error) {
	if len(grids) != len(densities) {
		return nil, errors.Wrapf(ErrGridMismatch, "%d grids for %d densities", len(grids), len(densities))
	}
	size, err := commonSize(grids)
	if err != nil {
		return nil, err
	}
	vectors := make([][]float64, len(densities))
	for n, d := range densities {
		vectors[n] = d.Vector()
	}
	D := &DensityEvaluator{ws: shells.NewWorkspace()}
	if err := D.ws.SetDensityVectors(vectors...); err != nil {
		return nil, err
	}
	D.GridEvaluator = newGridEvaluator("density", size, grids, 1, D.compute)
	return D, nil
}

func (D *DensityEvaluator) compute(ctx context.Context, g *GridEvaluator) error {
	return g.walk(ctx, func(i, j, k int, x, y, z float64) {
		values := D.ws.DensityValues(x, y, z)
		for n, grid := range D.grids {
			grid.Set(values[n], i, j, k)
		}
	})
}
