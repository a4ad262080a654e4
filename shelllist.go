/*
 * shelllist.go, part of gomo.
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
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/gomo/array"
)

// ShellData is the flat description of a basis set, as filled by a file parser.
// Shell types use the signed codes of AngularMomentum.
type ShellData struct {
	ShellTypes              []int
	ShellToAtom             []int
	PrimitivesPerShell      []int
	Exponents               []float64
	ContractionCoefficients []float64
	SPCoefficients          []float64
	// Overlap is the optional upper-triangular, row-packed overlap matrix.
	Overlap []float64
}

// HasData returns true if there is at least one shell described.
func (sd ShellData) HasData() bool {
	return len(sd.ShellTypes) > 0 && len(sd.Exponents) > 0
}

// ShellList is the ordered basis of a molecule.
type ShellList struct {
	shells  []*Shell
	nBasis  int
	overlap []float64
	ws      *Workspace

	mu        sync.Mutex
	threshold float64
	cutoffSet bool
}

// NewShellList builds the shells described by sd, centred on the atoms of geom.
// Shells of unknown type, or on atoms geom doesn't have, are logged and skipped.
// Resize is called on the returned list.
func NewShellList(sd ShellData, geom Positioner) *ShellList {
	L := new(ShellList)
	n := len(sd.ShellTypes)
	if len(sd.ShellToAtom) != n || len(sd.PrimitivesPerShell) != n {
		log().Errorw("Shell data arrays differ in length",
			"shellTypes", n, "shellToAtom", len(sd.ShellToAtom), "primitives", len(sd.PrimitivesPerShell))
		n = min(n, len(sd.ShellToAtom), len(sd.PrimitivesPerShell))
	}
	first := 0
	for i := 0; i < n; i++ {
		nprim := sd.PrimitivesPerShell[i]
		end := first + nprim
		if nprim < 0 || end > len(sd.Exponents) {
			log().Errorw("Not enough primitive exponents for shell", "shell", i, "needed", end, "have", len(sd.Exponents))
			break
		}
		start := first
		first = end
		am, err := ParseAngularMomentum(sd.ShellTypes[i])
		if err != nil {
			log().Warnw("Skipping shell", "shell", i, "error", err)
			continue
		}
		atom := sd.ShellToAtom[i]
		if atom < 0 || atom >= geom.NAtoms() {
			log().Warnw("Skipping shell on missing atom", "shell", i, "atom", atom, "atoms", geom.NAtoms())
			continue
		}
		var sp []float64
		if am == SP {
			sp = window(sd.SPCoefficients, start, end)
		}
		L.Append(NewShell(am, atom, geom.Position(atom), sd.Exponents[start:end],
			window(sd.ContractionCoefficients, start, end), sp))
	}
	L.Resize()
	if len(sd.Overlap) > 0 {
		if want := L.nBasis * (L.nBasis + 1) / 2; len(sd.Overlap) == want {
			L.overlap = append([]float64(nil), sd.Overlap...)
		} else {
			log().Warnw("Ignoring overlap matrix of the wrong size", "length", len(sd.Overlap), "want", want)
		}
	}
	return L
}

// window returns s[start:end], clipped to what s actually holds. The shell
// constructor zero-pads the result.
func window(s []float64, start, end int) []float64 {
	if start >= len(s) {
		return nil
	}
	return s[start:min(end, len(s))]
}

// Append adds a shell at the end of the list. Resize must be called before
// evaluating the list again.
func (L *ShellList) Append(sh *Shell) {
	L.shells = append(L.shells, sh)
	L.mu.Lock()
	L.cutoffSet = false
	L.mu.Unlock()
}

// Resize recomputes the number of basis functions and reallocates the default
// Workspace. Workspaces obtained before the call become unusable.
func (L *ShellList) Resize() {
	n := 0
	for _, sh := range L.shells {
		n += sh.NBasis()
	}
	L.nBasis = n
	L.ws = L.NewWorkspace()
}

// NBasis returns the total number of basis functions.
func (L *ShellList) NBasis() int { return L.nBasis }

// NShells returns the number of shells.
func (L *ShellList) NShells() int { return len(L.shells) }

// Shell returns the i-th shell.
func (L *ShellList) Shell(i int) *Shell { return L.shells[i] }

// Shells returns the shells in the list. The slice must not be modified.
func (L *ShellList) Shells() []*Shell { return L.shells }

func (L *ShellList) workspace() *Workspace {
	if L.ws == nil || L.ws.nBasis != L.nBasis {
		panic(ErrNotResized)
	}
	return L.ws
}

// ShellValues evaluates every basis function at a point using the default
// Workspace. See Workspace.ShellValues. Not safe for concurrent use.
func (L *ShellList) ShellValues(x, y, z float64) []float64 {
	return L.workspace().ShellValues(x, y, z)
}

// DensityValues is Workspace.DensityValues on the default Workspace.
func (L *ShellList) DensityValues(x, y, z float64) []float64 {
	return L.workspace().DensityValues(x, y, z)
}

// OrbitalValues is Workspace.OrbitalValues on the default Workspace.
func (L *ShellList) OrbitalValues(x, y, z float64) []float64 {
	return L.workspace().OrbitalValues(x, y, z)
}

// SetDensityVectors is Workspace.SetDensityVectors on the default Workspace.
func (L *ShellList) SetDensityVectors(densities ...[]float64) error {
	return L.workspace().SetDensityVectors(densities...)
}

// SetOrbitalVectors is Workspace.SetOrbitalVectors on the default Workspace.
func (L *ShellList) SetOrbitalVectors(coefficients *array.Matrix, indices []int) error {
	return L.workspace().SetOrbitalVectors(coefficients, indices)
}

// SetThreshold caches the significant radius of every shell for threshold.
// The radii are only rewritten when the threshold changes, so evaluations
// sharing the list can run at the same time as long as they all use the same
// threshold. Changing it while the list is being evaluated is a race.
func (L *ShellList) SetThreshold(threshold float64) {
	L.mu.Lock()
	defer L.mu.Unlock()
	if L.cutoffSet && L.threshold == threshold {
		return
	}
	for _, sh := range L.shells {
		sh.BoundingBox(threshold)
	}
	L.threshold = threshold
	L.cutoffSet = true
}

// Threshold returns the threshold of the cached significant radii, and false
// if SetThreshold was never called.
func (L *ShellList) Threshold() (float64, bool) {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.threshold, L.cutoffSet
}

// BoundingBox returns the box enclosing the significant region of every shell for threshold.
// The cached radii are not changed.
func (L *ShellList) BoundingBox(threshold float64) (min, max r3.Vec) {
	if len(L.shells) == 0 {
		return
	}
	min = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, sh := range L.shells {
		r := sh.ComputeSignificantRadius(threshold)
		d := r3.Vec{X: r, Y: r, Z: r}
		lo, hi := r3.Sub(sh.Center(), d), r3.Add(sh.Center(), d)
		min = r3.Vec{X: math.Min(min.X, lo.X), Y: math.Min(min.Y, lo.Y), Z: math.Min(min.Z, lo.Z)}
		max = r3.Vec{X: math.Max(max.X, hi.X), Y: math.Max(max.Y, hi.Y), Z: math.Max(max.Z, hi.Z)}
	}
	return min, max
}

// ShellAtomOffsets returns the index of the first shell of each block of
// consecutive shells on the same atom.
func (L *ShellList) ShellAtomOffsets() []int {
	var ret []int
	prev := -1
	for i, sh := range L.shells {
		if i == 0 || sh.Atom() != prev {
			ret = append(ret, i)
			prev = sh.Atom()
		}
	}
	return ret
}

// BasisAtomOffsets returns the index of the first basis function of each block of
// consecutive shells on the same atom.
func (L *ShellList) BasisAtomOffsets() []int {
	var ret []int
	prev := -1
	offset := 0
	for i, sh := range L.shells {
		if i == 0 || sh.Atom() != prev {
			ret = append(ret, offset)
			prev = sh.Atom()
		}
		offset += sh.NBasis()
	}
	return ret
}

// HasOverlap returns true if the list carries an overlap matrix.
func (L *ShellList) HasOverlap() bool { return L.overlap != nil }

// Overlap returns the unpacked, symmetric overlap matrix, or nil if the list has none.
func (L *ShellList) Overlap() *array.Matrix {
	if L.overlap == nil {
		return nil
	}
	n := L.nBasis
	S := array.NewMatrix(n, n)
	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			S.Set2(L.overlap[k], i, j)
			S.Set2(L.overlap[k], j, i)
			k++
		}
	}
	return S
}
