/*
 * errors.go, part of gomo.
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
	"go.uber.org/zap"

	"github.com/rmera/gomo/logger"
)

var (
	// ErrGridMismatch means grids that must be paired don't match, in number or lattice.
	ErrGridMismatch = errors.New("grid mismatch")
	// ErrNoShells means there is no basis to evaluate.
	ErrNoShells = errors.New("no shells to evaluate")
	// ErrCancelled is returned by evaluators stopped with Stop.
	ErrCancelled = errors.New("evaluation cancelled")
	// ErrBadGrid means a grid can't be filled by the evaluator it was given to.
	ErrBadGrid = errors.New("grid not suitable for evaluator")
)

func log() *zap.SugaredLogger {
	return logger.Named("eval")
}

// cancelled is true for errors coming from Stop or from the context.
func cancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
