/*
 * histo.go, part of gomo.
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

// Package histo builds histograms and summary statistics of grid values,
// which is mostly what one needs to pick isovalues.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	mo "github.com/rmera/gomo"
)

// ErrEmpty is returned when there are no values to work with.
var ErrEmpty = errors.New("no values")

type Data struct {
	label      string
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label      string    `json:"label"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Label:      D.label,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		Label      string    `json:"label"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return errors.Newf("histogram with %d dividers and %d bins", len(a.Dividers), len(a.Histo))
	}
	D.label = a.Label
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//Label returns the label of the histogram, usually the surface type
//of the grid it was built from.
func (D *Data) Label() string {
	return D.label
}

//String prints a -hopefully- pretty string representation of
//the histogram, one bin per line.
func (D *Data) String() string {
	ret := []string{fmt.Sprintf("%s Normalized: %v, TotalData: %d", D.label, D.normalized, D.total)}
	for i, v := range D.histo {
		ret = append(ret, fmt.Sprintf("%11.4E %11.4E %9.3f", D.dividers[i], D.dividers[i+1], v))
	}
	return strings.Join(ret, "\n")
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil, in which case an empty histogram is created.
//rawdata is not modified.
func NewData(label string, dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 {
		panic("histo: a histogram needs at least 2 dividers")
	}
	d := &Data{label: label}
	//copy, so nobody changes them from outside
	d.dividers = append([]float64(nil), dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	return d
}

//AddData adds the given data point(s) to the histogram. Points outside the dividers
//are not counted in any bin, but they do count for the total.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//first divider larger than v, minus one, is the bin.
		j := sort.SearchFloat64s(D.dividers, v)
		if j == len(D.dividers) || D.dividers[j] != v {
			j--
		}
		D.histo[j]++
	}
	D.total += len(point)
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize divides each bin by the total number of points.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize undoes Normalize
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

//Total returns the number of points given to the histogram, including
//those outside the dividers.
func (D *Data) Total() int {
	return D.total
}

//Dividers returns a copy of the dividers of the histogram
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//View returns the bins, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Add adds the histograms a and b putting the result in the receiver.
func (D *Data) Add(a, b *Data) {
	D.combine(a, b, func(x, y float64) float64 { return x + y })
}

//Sub substracts b from a puting the results in the receiver.
func (D *Data) Sub(a, b *Data) {
	D.combine(a, b, func(x, y float64) float64 { return x - y })
}

func (D *Data) combine(a, b *Data, f func(x, y float64) float64) {
	if !floats.Equal(a.dividers, b.dividers) {
		panic("histo: dividers must match in combined histograms")
	}
	D.dividers = a.Dividers()
	if len(D.histo) != len(a.histo) {
		D.histo = make([]float64, len(a.histo))
	}
	for i := range a.histo {
		D.histo[i] = f(a.histo[i], b.histo[i])
	}
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the histogram with one of rawdata over dividers.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	D.total = len(data)
	//stat.Histogram panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, dividers[len(dividers)-1])
	mini := sort.SearchFloat64s(data, dividers[0])
	data = data[mini:maxi]
	D.dividers = append(D.dividers[:0], dividers...)
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
	D.normalized = false
}

// FromGrid builds a histogram of the values in grid with nbins bins. If logscale
// is true, the bins are logarithmically spaced over the absolute values, from
// the largest one down to 1e-8 times it, which is usually what one wants for
// orbitals and densities.
func FromGrid(grid *mo.GridData, nbins int, logscale bool) (*Data, error) {
	if nbins < 1 {
		return nil, errors.Newf("histo: %d bins requested", nbins)
	}
	values := grid.Values()
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	dividers := make([]float64, nbins+1)
	lo, hi := grid.MinMax()
	if logscale {
		abs := make([]float64, len(values))
		for i, v := range values {
			abs[i] = math.Abs(v)
		}
		hi = floats.Max(abs)
		if hi == 0 {
			return nil, errors.Wrap(ErrEmpty, "histo: all values are zero")
		}
		hi = math.Nextafter(hi, math.Inf(1))
		floats.LogSpan(dividers, hi*1e-8, hi)
		return NewData(grid.Type().String(), dividers, abs), nil
	}
	if hi == lo {
		hi = lo + 1
	}
	floats.Span(dividers, lo, math.Nextafter(hi, math.Inf(1)))
	return NewData(grid.Type().String(), dividers, values), nil
}
