/*
 * surface.go, part of gomo.
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

// Package surface turns requests for isosurfaces into evaluated grids and
// hands them to a mesh extractor. gomo doesn't triangulate, the extractor is
// provided by the caller.
package surface

import (
	"context"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
	"go.uber.org/zap"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/logger"
)

func log() *zap.SugaredLogger {
	return logger.Named("surface")
}

// Info is a request for one isosurface.
type Info struct {
	Type     mo.SurfaceType
	Isovalue float64
	// Step is the lattice step of the grid, in bohr.
	Step          float64
	Opacity       float64
	PositiveColor color.RGBA
	NegativeColor color.RGBA
}

// DefaultColors are the colors of the two lobes of signed surfaces.
var (
	DefaultPositiveColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	DefaultNegativeColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// NewInfo returns a request with the default colors and full opacity.
func NewInfo(t mo.SurfaceType, isovalue, step float64) Info {
	return Info{
		Type:          t,
		Isovalue:      isovalue,
		Step:          step,
		Opacity:       1,
		PositiveColor: DefaultPositiveColor,
		NegativeColor: DefaultNegativeColor,
	}
}

// IsSigned is true when the surface has a negative lobe, at -Isovalue.
func (I Info) IsSigned() bool { return I.Type.IsSigned() }

func (I Info) String() string {
	return fmt.Sprintf("%v at %g (step %g)", I.Type, I.Isovalue, I.Step)
}

// Mesh is a triangulated surface. Faces index Vertices, and Normals,
// if present, has one normal per vertex.
type Mesh struct {
	Vertices []r3.Vec
	Normals  []r3.Vec
	Faces    [][3]int
	Isovalue float64
}

// NFaces returns the number of triangles of the mesh.
func (M *Mesh) NFaces() int { return len(M.Faces) }

// Extractor builds the isosurface of a scalar field. It must only read grid.
type Extractor interface {
	Extract(ctx context.Context, grid *mo.GridData, isovalue float64) (*Mesh, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, grid *mo.GridData, isovalue float64) (*Mesh, error)

// Extract calls f.
func (f ExtractorFunc) Extract(ctx context.Context, grid *mo.GridData, isovalue float64) (*Mesh, error) {
	return f(ctx, grid, isovalue)
}

// Surface is the result of one request. Negative is nil for unsigned types,
// and both meshes are nil when the Builder has no Extractor.
type Surface struct {
	Info     Info
	Grid     *mo.GridData
	Positive *Mesh
	Negative *Mesh
}
