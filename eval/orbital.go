/*
 * orbital.go, part of gomo.
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
	"github.com/rmera/gomo/array"
)

// OrbitalEvaluator fills orbital grids with one coefficient matrix. The Index
// of each grid's type is the row of the matrix used.
type OrbitalEvaluator struct {
	*GridEvaluator
	ws *mo.Workspace
}

// NewOrbitalEvaluator returns an evaluator of the orbitals in coefficients
// (orbitals x basis functions) requested by grids, which must share a lattice.
func NewOrbitalEvaluator(shells *mo.ShellList, coefficients *array.Matrix, grids []*mo.GridData) (*OrbitalEvaluator, error) {
	size, err := commonSize(grids)
	if err != nil {
		return nil, err
	}
	indices := make([]int, len(grids))
	for n, grid := range grids {
		if !grid.Type().IsOrbital() {
			return nil, errors.Wrapf(ErrBadGrid, "%v is not an orbital", grid.Type())
		}
		indices[n] = grid.Type().Index
	}
	O := &OrbitalEvaluator{ws: shells.NewWorkspace()}
	if err := O.ws.SetOrbitalVectors(coefficients, indices); err != nil {
		return nil, err
	}
	O.GridEvaluator = newGridEvaluator("orbital", size, grids, 1, O.compute)
	return O, nil
}

func (O *OrbitalEvaluator) compute(ctx context.Context, g *GridEvaluator) error {
	return g.walk(ctx, func(i, j, k int, x, y, z float64) {
		values := O.ws.OrbitalValues(x, y, z)
		for n, grid := range O.grids {
			grid.Set(values[n], i, j, k)
		}
	})
}
