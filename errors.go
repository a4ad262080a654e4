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

package mo

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/rmera/gomo/logger"
)

// Sentinel errors of the package. Use errors.Is to check for them, the returned
// errors are usually wrapped with more context.
var (
	// ErrNoOrbitalData is returned by OrbitalFactory when there are no shells or
	// no alpha coefficients to build orbitals from.
	ErrNoOrbitalData = errors.New("no usable orbital data")

	// ErrInconsistentOrbitals means that the coefficients don't match the basis.
	ErrInconsistentOrbitals = errors.New("inconsistent orbital data")

	// ErrUnknownOrbitalType is returned for orbital type codes gomo doesn't know.
	ErrUnknownOrbitalType = errors.New("unknown orbital type")

	// ErrUnknownShellType is returned for shell type codes gomo doesn't know.
	ErrUnknownShellType = errors.New("unknown shell type")

	// ErrNotImplemented marks functionality that is knowingly missing.
	ErrNotImplemented = errors.New("not yet implemented")

	// ErrDensityLength means a density vector is not nBasis(nBasis+1)/2 long.
	ErrDensityLength = errors.New("density vector length does not match the basis")

	// ErrOrbitalIndex means an orbital index or coefficient matrix doesn't fit the basis.
	ErrOrbitalIndex = errors.New("orbital index or coefficients do not match the basis")
)

func log() *zap.SugaredLogger {
	return logger.Named("mo")
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use the sentinel errors above.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotResized = PanicMsg("gomo: ShellList.Resize must be called after appending shells")
	ErrShape      = PanicMsg("gomo: dimension mismatch")
)
