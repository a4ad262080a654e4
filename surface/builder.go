/*
 * builder.go, part of gomo.
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

package surface

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/eval"
)

// DefaultPadding is added around the significant region of the basis, in bohr.
const DefaultPadding = 2.0

type gridKey struct {
	size  mo.GridSize
	stype mo.SurfaceType
}

// Builder evaluates the grids needed by a queue of requests, reusing grids
// already computed, and extracts their surfaces.
// A Builder is not safe for concurrent use.
type Builder struct {
	orbitals  mo.Orbitals
	shells    *mo.ShellList
	densities []*mo.Density
	extractor Extractor
	padding   float64
	threshold float64
	opts      []eval.Option

	queue []Info
	cache map[gridKey]*mo.GridData
}

// NewBuilder returns a Builder for the molecule described by orbitals and
// densities. extractor may be nil, then only grids are produced.
// opts are passed to the grid evaluator.
func NewBuilder(orbitals mo.Orbitals, densities []*mo.Density, extractor Extractor, opts ...eval.Option) (*Builder, error) {
	if orbitals == nil || orbitals.ShellList() == nil || orbitals.ShellList().NShells() == 0 {
		return nil, errors.Wrap(eval.ErrNoShells, "surface builder")
	}
	return &Builder{
		orbitals:  orbitals,
		shells:    orbitals.ShellList(),
		densities: densities,
		extractor: extractor,
		padding:   DefaultPadding,
		threshold: mo.DefaultThreshold,
		opts:      opts,
		cache:     make(map[gridKey]*mo.GridData),
	}, nil
}

// SetPadding changes the margin around the molecule.
func (B *Builder) SetPadding(p float64) { B.padding = math.Max(0, p) }

// SetThreshold changes the significance threshold used to size the box and evaluate.
func (B *Builder) SetThreshold(t float64) { B.threshold = t }

// Enqueue adds requests to the queue.
func (B *Builder) Enqueue(infos ...Info) {
	B.queue = append(B.queue, infos...)
}

// Pending returns the number of queued requests.
func (B *Builder) Pending() int { return len(B.queue) }

// GridSize returns the lattice with the given step covering the molecule.
func (B *Builder) GridSize(step float64) mo.GridSize {
	min, max := B.shells.BoundingBox(B.threshold)
	pad := r3.Vec{X: B.padding, Y: B.padding, Z: B.padding}
	return mo.NewGridSizeFromBox(r3.Sub(min, pad), r3.Add(max, pad), step)
}

// Build evaluates the grids of all the queued requests, in one pass per lattice,
// and extracts the surfaces. Requests that can't be satisfied are logged and
// left out of the result. The queue is emptied, unless ctx is cancelled.
func (B *Builder) Build(ctx context.Context) ([]*Surface, error) {
	type job struct {
		info Info
		grid *mo.GridData
	}
	var jobs []job
	var fresh []*mo.GridData
	for _, info := range B.queue {
		if info.Step <= 0 {
			log().Warnw("Skipping surface with no grid step", "surface", info.String())
			continue
		}
		key := gridKey{size: B.GridSize(info.Step), stype: info.Type}
		grid, ok := B.cache[key]
		if !ok {
			grid = mo.NewGridData(key.size, info.Type)
			B.cache[key] = grid
			fresh = append(fresh, grid)
		}
		jobs = append(jobs, job{info: info, grid: grid})
	}
	if len(fresh) > 0 {
		opts := append([]eval.Option{eval.WithThreshold(B.threshold)}, B.opts...)
		M, err := eval.NewMolecularGridEvaluator(B.shells, B.orbitals, B.densities, fresh, opts...)
		if err != nil {
			return nil, err
		}
		if err := M.Run(ctx); err != nil {
			B.dropIncomplete()
			return nil, err
		}
	}
	B.queue = nil
	var ret []*Surface
	for _, j := range jobs {
		if !j.grid.Complete() {
			log().Warnw("No data for surface", "surface", j.info.String())
			continue
		}
		s := &Surface{Info: j.info, Grid: j.grid}
		if B.extractor != nil {
			var err error
			s.Positive, err = B.extractor.Extract(ctx, j.grid, j.info.Isovalue)
			if err != nil {
				return ret, errors.Wrapf(err, "extracting %v", j.info)
			}
			//complex grids hold magnitude and phase by now, there is no negative lobe.
			if j.info.IsSigned() && !j.info.Type.IsComplex() {
				s.Negative, err = B.extractor.Extract(ctx, j.grid, -j.info.Isovalue)
				if err != nil {
					return ret, errors.Wrapf(err, "extracting negative lobe of %v", j.info)
				}
			}
		}
		ret = append(ret, s)
	}
	B.dropIncomplete()
	return ret, nil
}

// dropIncomplete forgets grids that were never filled, so they are tried again.
func (B *Builder) dropIncomplete() {
	for k, g := range B.cache {
		if !g.Complete() {
			delete(B.cache, k)
		}
	}
}

// Grids returns the evaluated grids kept by the builder.
func (B *Builder) Grids() []*mo.GridData {
	ret := make([]*mo.GridData, 0, len(B.cache))
	for _, g := range B.cache {
		ret = append(ret, g)
	}
	return ret
}
