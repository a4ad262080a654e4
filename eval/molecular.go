/*
 * molecular.go, part of gomo.
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
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/array"
)

// ProgressFunc receives the lattice points done and the total to do.
type ProgressFunc func(done, total int)

// Option configures a MolecularGridEvaluator.
type Option func(*MolecularGridEvaluator)

// WithThreshold sets the significance threshold of the shells, mo.DefaultThreshold by default.
func WithThreshold(threshold float64) Option {
	return func(M *MolecularGridEvaluator) { M.threshold = threshold }
}

// WithWorkers sets how many evaluators run at the same time, 1 by default.
func WithWorkers(n int) Option {
	return func(M *MolecularGridEvaluator) {
		if n > 0 {
			M.workers = n
		}
	}
}

// WithProgress sets a function called periodically, and once at the end, with the progress.
func WithProgress(f ProgressFunc, interval time.Duration) Option {
	return func(M *MolecularGridEvaluator) {
		M.progressFunc = f
		if interval > 0 {
			M.interval = interval
		}
	}
}

type complexOrbitals interface {
	AlphaImagCoefficients() *array.Matrix
	BetaImagCoefficients() *array.Matrix
}

// MolecularGridEvaluator fills a set of grids for one molecule. Grids on the
// same lattice are evaluated together, one evaluator per kind of quantity,
// and grids it has no data for are left alone.
type MolecularGridEvaluator struct {
	id           uuid.UUID
	shells       *mo.ShellList
	orbitals     mo.Orbitals
	densities    []*mo.Density
	grids        []*mo.GridData
	threshold    float64
	workers      int
	progressFunc ProgressFunc
	interval     time.Duration

	status atomic.Int32

	mu         sync.Mutex
	cancel     context.CancelFunc
	evaluators []Evaluator
	unmatched  []*mo.GridData
	failures   []error
}

// NewMolecularGridEvaluator returns an evaluator for grids. shells may be nil, in which
// case the basis of orbitals is used. orbitals may be nil if only densities
// and basis functions are requested.
func NewMolecularGridEvaluator(shells *mo.ShellList, orbitals mo.Orbitals, densities []*mo.Density, grids []*mo.GridData, opts ...Option) (*MolecularGridEvaluator, error) {
	if shells == nil && orbitals != nil {
		shells = orbitals.ShellList()
	}
	if shells == nil || shells.NShells() == 0 {
		return nil, errors.Wrap(ErrNoShells, "molecular grid evaluator")
	}
	M := &MolecularGridEvaluator{
		id:        uuid.New(),
		shells:    shells,
		orbitals:  orbitals,
		densities: densities,
		grids:     grids,
		threshold: mo.DefaultThreshold,
		workers:   1,
		interval:  200 * time.Millisecond,
	}
	for _, o := range opts {
		o(M)
	}
	return M, nil
}

// ID identifies the evaluation in logs.
func (M *MolecularGridEvaluator) ID() uuid.UUID { return M.id }

// Status returns the state of the whole evaluation.
func (M *MolecularGridEvaluator) Status() Status { return Status(M.status.Load()) }

// Unmatched returns the grids that could not be paired with any data.
func (M *MolecularGridEvaluator) Unmatched() []*mo.GridData {
	M.mu.Lock()
	defer M.mu.Unlock()
	return append([]*mo.GridData(nil), M.unmatched...)
}

// Failures returns the errors of the evaluators that didn't finish.
func (M *MolecularGridEvaluator) Failures() []error {
	M.mu.Lock()
	defer M.mu.Unlock()
	return append([]error(nil), M.failures...)
}

// Progress adds up the progress of the evaluators.
func (M *MolecularGridEvaluator) Progress() (done, total int) {
	M.mu.Lock()
	evs := M.evaluators
	M.mu.Unlock()
	for _, e := range evs {
		d, t := e.Progress()
		done += d
		total += t
	}
	return done, total
}

// Stop cancels a running evaluation. Run returns once the running evaluators unwind.
func (M *MolecularGridEvaluator) Stop() {
	M.mu.Lock()
	defer M.mu.Unlock()
	if M.cancel != nil {
		M.cancel()
	}
}

// Run evaluates all the grids it can. Grids with no data, or whose evaluator fails,
// are logged and skipped, see Unmatched and Failures. If ctx is cancelled, or Stop
// is called, the running evaluators are stopped and waited for, and the
// returned error wraps the context error. Grids not marked complete
// must not be used. Run sets the significant radii of the shell list for its
// threshold, so evaluators sharing a list may run at the same time only if
// they share the threshold too.
func (M *MolecularGridEvaluator) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lg := log().With("run", M.id.String())
	M.status.Store(int32(Running))
	M.shells.SetThreshold(M.threshold)
	evaluators := M.plan()
	M.mu.Lock()
	M.cancel = cancel
	M.evaluators = evaluators
	M.mu.Unlock()
	_, total := M.Progress()
	lg.Infow("Starting grid evaluation", "grids", len(M.grids), "evaluators", len(evaluators),
		"unmatched", len(M.unmatched), "points", total, "workers", M.workers)

	stopReport := M.reportProgress()
	tasks := make(chan Evaluator)
	var wg sync.WaitGroup
	for w := 0; w < M.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := range tasks {
				e.Start(ctx)
				select {
				case <-e.Done():
				case <-ctx.Done():
					e.Stop()
					<-e.Done()
				}
				if err := e.Wait(); err != nil && !cancelled(err) {
					lg.Errorw("Evaluator failed", "error", err)
					M.mu.Lock()
					M.failures = append(M.failures, err)
					M.mu.Unlock()
				}
			}
		}()
	}
feed:
	for _, e := range evaluators {
		select {
		case tasks <- e:
		case <-ctx.Done():
			break feed
		}
	}
	close(tasks)
	wg.Wait()
	stopReport()

	if err := ctx.Err(); err != nil {
		M.status.Store(int32(Cancelled))
		lg.Infow("Grid evaluation cancelled")
		return errors.Wrap(err, "grid evaluation")
	}
	M.status.Store(int32(Finished))
	lg.Infow("Grid evaluation finished", "failures", len(M.Failures()))
	return nil
}

// reportProgress calls the progress function every interval until the returned
// function is called, which also makes a last report.
func (M *MolecularGridEvaluator) reportProgress() func() {
	if M.progressFunc == nil {
		return func() {}
	}
	quit := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(M.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				M.progressFunc(M.Progress())
			case <-quit:
				return
			}
		}
	}()
	return func() {
		close(quit)
		<-finished
		M.progressFunc(M.Progress())
	}
}

func (M *MolecularGridEvaluator) reject(grid *mo.GridData, reason string) {
	log().Warnw("Grid not evaluated", "run", M.id.String(), "type", grid.Type().String(), "reason", reason)
	M.unmatched = append(M.unmatched, grid)
}

// byIndex sorts grids by the orbital index of their type.
func byIndex(grids []*mo.GridData) {
	sort.SliceStable(grids, func(i, j int) bool { return grids[i].Type().Index < grids[j].Type().Index })
}

// plan groups the grids by lattice and builds the evaluators needed for each group.
func (M *MolecularGridEvaluator) plan() []Evaluator {
	M.mu.Lock()
	defer M.mu.Unlock()
	M.unmatched = nil
	groups := make(map[mo.GridSize][]*mo.GridData)
	var sizes []mo.GridSize
	for _, grid := range M.grids {
		s := grid.Size()
		if _, ok := groups[s]; !ok {
			sizes = append(sizes, s)
		}
		groups[s] = append(groups[s], grid)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].Less(sizes[j]) })

	nBasis := M.shells.NBasis()
	nOrbitals := 0
	if M.orbitals != nil && M.orbitals.Consistent() {
		nOrbitals = M.orbitals.NOrbitals()
	}
	cplx, _ := M.orbitals.(complexOrbitals)
	var evaluators []Evaluator
	for _, size := range sizes {
		var basis, alpha, beta, dens []*mo.GridData
		var dmats []*mo.Density
		var aRe, aIm, bRe, bIm []*mo.GridData
		for _, grid := range groups[size] {
			t := grid.Type()
			switch {
			case t.IsDensity():
				d := mo.FindDensity(M.densities, t)
				if d == nil || d.NBasis() != nBasis {
					M.reject(grid, "no density matches")
					continue
				}
				dens = append(dens, grid)
				dmats = append(dmats, d)
			case t.IsBasis():
				if t.Index < 0 || t.Index >= nBasis {
					M.reject(grid, "basis function out of range")
					continue
				}
				basis = append(basis, grid)
			case t.IsOrbital():
				if t.Index < 0 || t.Index >= nOrbitals {
					M.reject(grid, "orbital out of range")
					continue
				}
				if !t.IsComplex() {
					if t.IsAlpha() {
						alpha = append(alpha, grid)
					} else {
						beta = append(beta, grid)
					}
					continue
				}
				if cplx == nil {
					M.reject(grid, "orbitals are not complex")
					continue
				}
				switch t.Kind {
				case mo.AlphaComplexReal:
					aRe = append(aRe, grid)
				case mo.AlphaComplexImag:
					aIm = append(aIm, grid)
				case mo.BetaComplexReal:
					bRe = append(bRe, grid)
				case mo.BetaComplexImag:
					bIm = append(bIm, grid)
				}
			default:
				M.reject(grid, "unknown surface type")
			}
		}
		add := func(e Evaluator, err error, grids ...[]*mo.GridData) {
			if err == nil {
				evaluators = append(evaluators, e)
				return
			}
			log().Errorw("Could not set up evaluator", "run", M.id.String(), "error", err)
			for _, gs := range grids {
				M.unmatched = append(M.unmatched, gs...)
			}
		}
		if len(basis) > 0 {
			e, err := NewBasisEvaluator(M.shells, basis)
			add(e, err, basis)
		}
		if len(dens) > 0 {
			e, err := NewDensityEvaluator(M.shells, dens, dmats)
			add(e, err, dens)
		}
		if len(alpha) > 0 {
			e, err := NewOrbitalEvaluator(M.shells, M.orbitals.AlphaCoefficients(), alpha)
			add(e, err, alpha)
		}
		if len(beta) > 0 {
			e, err := NewOrbitalEvaluator(M.shells, M.orbitals.BetaCoefficients(), beta)
			add(e, err, beta)
		}
		if len(aRe)+len(aIm) > 0 {
			re, im := M.pairComplex(aRe, aIm)
			if len(re) > 0 {
				e, err := NewComplexOrbitalEvaluator(M.shells, M.orbitals.AlphaCoefficients(), cplx.AlphaImagCoefficients(), re, im)
				add(e, err, re, im)
			}
		}
		if len(bRe)+len(bIm) > 0 {
			re, im := M.pairComplex(bRe, bIm)
			if len(re) > 0 {
				e, err := NewComplexOrbitalEvaluator(M.shells, M.orbitals.BetaCoefficients(), cplx.BetaImagCoefficients(), re, im)
				add(e, err, re, im)
			}
		}
	}
	return evaluators
}

// pairComplex pairs the real and imaginary grids of the same orbital, in orbital
// order. Grids with no partner are rejected.
func (M *MolecularGridEvaluator) pairComplex(re, im []*mo.GridData) (pre, pim []*mo.GridData) {
	byIndex(re)
	byIndex(im)
	i, j := 0, 0
	for i < len(re) && j < len(im) {
		ri, ii := re[i].Type().Index, im[j].Type().Index
		switch {
		case ri == ii:
			pre = append(pre, re[i])
			pim = append(pim, im[j])
			i++
			j++
		case ri < ii:
			M.reject(re[i], "no imaginary part requested")
			i++
		default:
			M.reject(im[j], "no real part requested")
			j++
		}
	}
	for _, g := range re[i:] {
		M.reject(g, "no imaginary part requested")
	}
	for _, g := range im[j:] {
		M.reject(g, "no real part requested")
	}
	return pre, pim
}
