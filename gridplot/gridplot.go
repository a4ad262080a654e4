/*
 * gridplot.go, part of gomo.
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

// Package gridplot makes quick 2D plots of grids, shells and histograms, for
// checking a calculation without a 3D viewer.
package gridplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/histo"
)

// Size of the saved plots.
var (
	Width  = 12 * vg.Centimeter
	Height = 10 * vg.Centimeter
)

const paletteColors = 64

// Axis is the axis normal to a slice.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	return [...]string{"X", "Y", "Z"}[a]
}

// ParseAxis parses "x", "y" or "z", in any case.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return X, nil
	case "y", "Y":
		return Y, nil
	case "z", "Z":
		return Z, nil
	}
	return 0, errors.Newf("unknown axis %q", s)
}

// Slice is the plane of a grid normal to Axis at the given lattice index.
// It implements plotter.GridXYZ.
type Slice struct {
	grid  *mo.GridData
	axis  Axis
	index int
}

// NewSlice returns the slice of grid normal to axis at lattice index.
func NewSlice(grid *mo.GridData, axis Axis, index int) (*Slice, error) {
	s := grid.Size()
	n := [3]int{s.NX, s.NY, s.NZ}[axis]
	if index < 0 || index >= n {
		return nil, errors.Newf("slice %d out of range for %d points along %s", index, n, axis)
	}
	return &Slice{grid: grid, axis: axis, index: index}, nil
}

// MiddleSlice returns the slice through the middle of the grid.
func MiddleSlice(grid *mo.GridData, axis Axis) *Slice {
	s := grid.Size()
	n := [3]int{s.NX, s.NY, s.NZ}[axis]
	return &Slice{grid: grid, axis: axis, index: n / 2}
}

// in-plane axes, column then row.
func (s *Slice) plane() (Axis, Axis) {
	switch s.axis {
	case X:
		return Y, Z
	case Y:
		return X, Z
	}
	return X, Y
}

func count(size mo.GridSize, a Axis) int {
	return [3]int{size.NX, size.NY, size.NZ}[a]
}

func coord(size mo.GridSize, a Axis, i int) float64 {
	o := [3]float64{size.Origin.X, size.Origin.Y, size.Origin.Z}[a]
	return o + float64(i)*size.Step
}

func (s *Slice) Dims() (c, r int) {
	ca, ra := s.plane()
	return count(s.grid.Size(), ca), count(s.grid.Size(), ra)
}

func (s *Slice) Z(c, r int) float64 {
	var idx [3]int
	ca, ra := s.plane()
	idx[s.axis] = s.index
	idx[ca] = c
	idx[ra] = r
	return s.grid.At(idx[0], idx[1], idx[2])
}

func (s *Slice) X(c int) float64 {
	ca, _ := s.plane()
	return coord(s.grid.Size(), ca, c)
}

func (s *Slice) Y(r int) float64 {
	_, ra := s.plane()
	return coord(s.grid.Size(), ra, r)
}

// Position returns the coordinate of the slice along its axis.
func (s *Slice) Position() float64 {
	return coord(s.grid.Size(), s.axis, s.index)
}

// SliceMap returns a heat map plot of the slice. Signed grids get a diverging
// palette centered at zero.
func SliceMap(s *Slice) *plot.Plot {
	ca, ra := s.plane()
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, %s = %.3f", s.grid.Type(), s.axis, s.Position())
	p.X.Label.Text = ca.String() + " (bohr)"
	p.Y.Label.Text = ra.String() + " (bohr)"
	var pal palette.Palette
	signed := s.grid.Type().IsSigned()
	if signed {
		cm := moreland.SmoothBlueRed()
		cm.SetMin(-1)
		cm.SetMax(1)
		pal = cm.Palette(paletteColors)
	} else {
		pal = palette.Heat(paletteColors, 1)
	}
	hm := plotter.NewHeatMap(s, pal)
	if signed {
		m := math.Max(math.Abs(hm.Min), math.Abs(hm.Max))
		if m == 0 {
			m = 1
		}
		hm.Min, hm.Max = -m, m
	}
	p.Add(hm)
	return p
}

// SaveSlice saves the heat map of a slice. The format is taken from the
// extension of name (png, svg, pdf...).
func SaveSlice(s *Slice, name string) error {
	return errors.Wrapf(SliceMap(s).Save(Width, Height, name), "saving slice to %s", name)
}

// RadialPlot plots the contracted radial part of each shell up to rmax bohr.
func RadialPlot(shells []*mo.Shell, rmax float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Radial functions"
	p.X.Label.Text = "r (bohr)"
	p.Y.Label.Text = "R(r)"
	p.Add(plotter.NewGrid())
	for i, sh := range shells {
		r, v := sh.RadialProfile(rmax, 200)
		xys := make(plotter.XYs, len(r))
		for k := range r {
			xys[k].X = r[k]
			xys[k].Y = v[k]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, errors.Wrapf(err, "shell %d", i)
		}
		l.Color = shellColor(i, len(shells))
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("%d %s (atom %d)", i, sh.AngularMomentum(), sh.Atom()+1), l)
	}
	return p, nil
}

// SaveRadial saves RadialPlot(shells, rmax) to name.
func SaveRadial(shells []*mo.Shell, rmax float64, name string) error {
	p, err := RadialPlot(shells, rmax)
	if err != nil {
		return err
	}
	return errors.Wrapf(p.Save(Width, Height, name), "saving radial plot to %s", name)
}

// HistogramPlot plots the bins of a histogram as a line over the bin
// centers, with a log X axis if logscale is true.
func HistogramPlot(h *histo.Data, logscale bool) (*plot.Plot, error) {
	d := h.Dividers()
	bins := h.View()
	xys := make(plotter.XYs, len(bins))
	for i, v := range bins {
		xys[i].X = (d[i] + d[i+1]) / 2
		if logscale {
			xys[i].X = math.Sqrt(d[i] * d[i+1])
		}
		xys[i].Y = v
	}
	p := plot.New()
	p.Title.Text = h.Label()
	p.X.Label.Text = "value"
	p.Y.Label.Text = "points"
	if h.Normalized() {
		p.Y.Label.Text = "fraction"
	}
	if logscale {
		p.X.Label.Text = "|value|"
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	p.Add(plotter.NewGrid(), l)
	return p, nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

// shellColor spreads n colors evenly over the hue circle.
func shellColor(i, n int) color.RGBA {
	if n < 1 {
		n = 1
	}
	r, g, b := iHVS2RGB(float64(i)*300/float64(n), 0.9, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
