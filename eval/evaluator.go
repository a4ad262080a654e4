/*
 * evaluator.go, part of gomo.
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
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"

	mo "github.com/rmera/gomo"
)

// Status is the state of an evaluator.
type Status int32

const (
	Idle Status = iota
	Running
	Finished
	Cancelled
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	case Cancelled:
		return "Cancelled"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// Evaluator is what every evaluator in the package does.
type Evaluator interface {
	// Start launches the evaluation in its own goroutine and returns at once.
	Start(ctx context.Context)
	// Done is closed when the evaluation ends, whatever the reason.
	Done() <-chan struct{}
	// Wait blocks until the evaluation ends and returns its error.
	Wait() error
	// Run is Start followed by Wait.
	Run(ctx context.Context) error
	// Stop asks the evaluation to end at the next lattice row.
	Stop()
	Status() Status
	// Progress returns the lattice points done and the total to do.
	Progress() (done, total int)
	// Grids returns the grids the evaluator fills.
	Grids() []*mo.GridData
}

// computeFunc does the actual work of an evaluator, walking with g.
type computeFunc func(ctx context.Context, g *GridEvaluator) error

// GridEvaluator has the machinery shared by the evaluators: lattice walk,
// progress, cancellation and completion.
type GridEvaluator struct {
	name     string
	size     mo.GridSize
	grids    []*mo.GridData
	compute  computeFunc
	total    int64
	progress atomic.Int64
	stop     atomic.Bool
	status   atomic.Int32
	once     sync.Once
	done     chan struct{}
	err      error
}

func newGridEvaluator(name string, size mo.GridSize, grids []*mo.GridData, walks int, compute computeFunc) *GridEvaluator {
	return &GridEvaluator{
		name:    name,
		size:    size,
		grids:   grids,
		compute: compute,
		total:   int64(walks * size.NPoints()),
		done:    make(chan struct{}),
	}
}

// Name identifies the evaluator in logs.
func (g *GridEvaluator) Name() string { return g.name }

// GridSize returns the lattice walked.
func (g *GridEvaluator) GridSize() mo.GridSize { return g.size }

// Grids returns the grids filled by the evaluator.
func (g *GridEvaluator) Grids() []*mo.GridData { return g.grids }

// Status returns the current state of the evaluator.
func (g *GridEvaluator) Status() Status { return Status(g.status.Load()) }

// Progress returns the number of lattice points evaluated and the total.
func (g *GridEvaluator) Progress() (done, total int) {
	return int(g.progress.Load()), int(g.total)
}

// Stop asks the evaluation to end. It is safe to call at any time, from any goroutine.
func (g *GridEvaluator) Stop() { g.stop.Store(true) }

// Done returns a channel closed when the evaluation ends.
func (g *GridEvaluator) Done() <-chan struct{} { return g.done }

// Start launches the evaluation. Only the first call has any effect.
func (g *GridEvaluator) Start(ctx context.Context) {
	g.once.Do(func() {
		g.status.Store(int32(Running))
		go g.execute(ctx)
	})
}

// Wait blocks until the evaluation ends and returns its error. An evaluator
// that was never started returns at once.
func (g *GridEvaluator) Wait() error {
	if g.Status() == Idle {
		return nil
	}
	<-g.done
	return g.err
}

// Run evaluates synchronously.
func (g *GridEvaluator) Run(ctx context.Context) error {
	g.Start(ctx)
	return g.Wait()
}

func (g *GridEvaluator) execute(ctx context.Context) {
	defer close(g.done)
	err := g.compute(ctx, g)
	g.err = err
	switch {
	case err == nil:
		for _, grid := range g.grids {
			grid.SetComplete(true)
		}
		g.status.Store(int32(Finished))
	case cancelled(err):
		g.status.Store(int32(Cancelled))
	default:
		g.status.Store(int32(Failed))
	}
}

// walk calls f for every point of the lattice, in i, j, k order with k fastest.
// Cancellation is checked before each row of constant i and j.
func (g *GridEvaluator) walk(ctx context.Context, f func(i, j, k int, x, y, z float64)) error {
	s := g.size
	for i := 0; i < s.NX; i++ {
		x := s.Origin.X + float64(i)*s.Step
		for j := 0; j < s.NY; j++ {
			if g.stop.Load() {
				return errors.Wrapf(ErrCancelled, "%s", g.name)
			}
			if err := ctx.Err(); err != nil {
				return errors.Wrapf(err, "%s", g.name)
			}
			y := s.Origin.Y + float64(j)*s.Step
			for k := 0; k < s.NZ; k++ {
				f(i, j, k, x, y, s.Origin.Z+float64(k)*s.Step)
			}
			g.progress.Add(int64(s.NZ))
		}
	}
	return nil
}

// commonSize returns the lattice shared by grids, or an error if they don't share one.
func commonSize(grids []*mo.GridData) (mo.GridSize, error) {
	if len(grids) == 0 {
		return mo.GridSize{}, errors.Wrap(ErrBadGrid, "no grids")
	}
	size := grids[0].Size()
	for _, grid := range grids[1:] {
		if grid.Size() != size {
			return size, errors.Wrapf(ErrGridMismatch, "lattices %v and %v", size, grid.Size())
		}
	}
	return size, nil
}
