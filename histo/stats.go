/*
 * stats.go, part of gomo.
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

package histo

import (
	"fmt"
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	mo "github.com/rmera/gomo"
)

// Quantiles reported by Summarize.
var Quantiles = []float64{0.05, 0.25, 0.5, 0.75, 0.95}

// Summary holds statistics of the values of one grid. Integral is the sum of
// the values times the volume element, which for a density is the number of
// electrons in the box. SquareIntegral is the same for the squared values,
// and should be close to 1 for a normalized orbital in a large enough box.
type Summary struct {
	Label          string    `json:"label"`
	Points         int       `json:"points"`
	Min            float64   `json:"min"`
	Max            float64   `json:"max"`
	Mean           float64   `json:"mean"`
	StdDev         float64   `json:"stddev"`
	Quantiles      []float64 `json:"quantiles"`
	Integral       float64   `json:"integral"`
	SquareIntegral float64   `json:"square_integral"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: %d points, min %.4e max %.4e mean %.4e sd %.4e integral %.4f square integral %.4f",
		s.Label, s.Points, s.Min, s.Max, s.Mean, s.StdDev, s.Integral, s.SquareIntegral)
}

// Summarize returns the statistics of grid. Quantiles are given in the order of the
// Quantiles variable.
func Summarize(grid *mo.GridData) (Summary, error) {
	values := grid.Values()
	if len(values) == 0 {
		return Summary{}, ErrEmpty
	}
	dv := math.Pow(grid.Size().Step, 3)
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	s := Summary{
		Label:          grid.Type().String(),
		Points:         len(values),
		Min:            sorted[0],
		Max:            sorted[len(sorted)-1],
		Integral:       floats.Sum(values) * dv,
		SquareIntegral: floats.Dot(values, values) * dv,
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	for _, p := range Quantiles {
		s.Quantiles = append(s.Quantiles, stat.Quantile(p, stat.Empirical, sorted, nil))
	}
	return s, nil
}

// EnclosingIsovalue returns the isovalue whose surface encloses the given
// fraction of the integral of the grid values. Squared values are used for
// signed grids (orbitals) and absolute values otherwise. A fraction of 0.9
// is a reasonable default for plots.
func EnclosingIsovalue(grid *mo.GridData, fraction float64) (float64, error) {
	if fraction <= 0 || fraction > 1 {
		return 0, errors.Newf("histo: fraction %g out of (0,1]", fraction)
	}
	values := grid.Values()
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	signed := grid.Type().IsSigned()
	w := make([]float64, len(values))
	for i, v := range values {
		w[i] = math.Abs(v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(w)))
	weight := func(v float64) float64 {
		if signed {
			return v * v
		}
		return v
	}
	total := 0.0
	for _, v := range w {
		total += weight(v)
	}
	if total == 0 {
		return 0, errors.Wrap(ErrEmpty, "histo: all values are zero")
	}
	target := fraction * total
	acc := 0.0
	for _, v := range w {
		acc += weight(v)
		if acc >= target {
			return v, nil
		}
	}
	return w[len(w)-1], nil
}
