/*
 * basis.go, part of gomo.
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

// BasisEvaluator fills BasisFunction grids, sharing one lattice.
type BasisEvaluator struct {
	*GridEvaluator
	ws *mo.Workspace
}

// NewBasisEvaluator returns an evaluator for grids, which must be BasisFunction
// grids on the same lattice with indices in the basis.
func NewBasisEvaluator(shells *mo.ShellList, grids []*mo.GridData) (*BasisEvaluator, error) {
	size, err := commonSize(grids)
	if err != nil {
		return nil, err
	}
	for _, grid := range grids {
		t := grid.Type()
		if !t.IsBasis() || t.Index < 0 || t.Index >= shells.NBasis() {
			return nil, errors.Wrapf(ErrBadGrid, "%v for a basis of %d functions", t, shells.NBasis())
		}
	}
	B := &BasisEvaluator{ws: shells.NewWorkspace()}
	B.GridEvaluator = newGridEvaluator("basis", size, grids, 1, B.compute)
	return B, nil
}

func (B *BasisEvaluator) compute(ctx context.Context, g *GridEvaluator) error {
	return g.walk(ctx, func(i, j, k int, x, y, z float64) {
		values := B.ws.ShellValues(x, y, z)
		for _, grid := range B.grids {
			grid.Set(values[grid.Type().Index], i, j, k)
		}
	})
}
