/*
 * job.go, part of gomo.
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

package mojson

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/array"
	"github.com/rmera/gomo/logger"
	"github.com/rmera/gomo/surface"
	v3 "github.com/rmera/gomo/v3"
)

func log() *zap.SugaredLogger { return logger.Named("mojson") }

//An atom of the job geometry. Symbol is used only if Z is not given.
type Atom struct {
	Z      int        `json:"z,omitempty"`
	Symbol string     `json:"symbol,omitempty"`
	Coords [3]float64 `json:"coords"`
}

//Basis is the shell information, in the layout parsers produce it.
type Basis struct {
	ShellTypes              []int     `json:"shell_types"`
	ShellToAtom             []int     `json:"shell_to_atom"`
	PrimitivesPerShell      []int     `json:"primitives_per_shell"`
	Exponents               []float64 `json:"exponents"`
	ContractionCoefficients []float64 `json:"contraction_coefficients"`
	SPCoefficients          []float64 `json:"sp_coefficients,omitempty"`
	Overlap                 []float64 `json:"overlap,omitempty"`
}

//Orbitals holds the coefficients, orbital-major, and whatever else the type needs.
type Orbitals struct {
	Type                  string    `json:"type"`
	Title                 string    `json:"title,omitempty"`
	AlphaCoefficients     []float64 `json:"alpha_coefficients"`
	BetaCoefficients      []float64 `json:"beta_coefficients,omitempty"`
	AlphaEnergies         []float64 `json:"alpha_energies,omitempty"`
	BetaEnergies          []float64 `json:"beta_energies,omitempty"`
	AlphaImagCoefficients []float64 `json:"alpha_imag_coefficients,omitempty"`
	BetaImagCoefficients  []float64 `json:"beta_imag_coefficients,omitempty"`
	Labels                []string  `json:"labels,omitempty"`
	GeminalEnergies       []float64 `json:"geminal_energies,omitempty"`
	GeminalMoMap          []int     `json:"geminal_mo_map,omitempty"`
}

//Density is a packed lower triangular density matrix.
type Density struct {
	Type   string    `json:"type"`
	Label  string    `json:"label,omitempty"`
	Vector []float64 `json:"vector"`
}

//Surface is a surface request. Index is 1-based, as orbitals are labeled.
//A zero Step means the default step.
type Surface struct {
	Type     string  `json:"type"`
	Index    int     `json:"index,omitempty"`
	Label    string  `json:"label,omitempty"`
	Isovalue float64 `json:"isovalue"`
	Step     float64 `json:"step,omitempty"`
	Opacity  float64 `json:"opacity,omitempty"`
}

//Job is everything needed to evaluate grids for one molecule.
type Job struct {
	Title string `json:"title"`
	//Units of the atom coordinates, "bohr" (the default) or "angstrom".
	Units  string `json:"units,omitempty"`
	NAlpha int    `json:"nalpha"`
	NBeta  int    `json:"nbeta"`
	//QChemOrder is true if coefficients and densities come in Q-Chem's
	//function order, and need to be put in Molden order.
	QChemOrder bool      `json:"qchem_order,omitempty"`
	Atoms      []Atom    `json:"atoms"`
	Basis      Basis     `json:"basis"`
	Orbitals   *Orbitals `json:"orbitals,omitempty"`
	Densities  []Density `json:"densities,omitempty"`
	Surfaces   []Surface `json:"surfaces"`
}

//DecodeJob reads one job from r.
func DecodeJob(r io.Reader) (*Job, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	J := new(Job)
	if err := dec.Decode(J); err != nil {
		return nil, errors.Wrap(err, "decoding job")
	}
	return J, nil
}

//Encode writes the job to w, indented.
func (J *Job) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(J)
}

//Geometry returns the atoms of the job, in bohr.
func (J *Job) Geometry() (*mo.Geometry, error) {
	if len(J.Atoms) == 0 {
		return nil, errors.New("job has no atoms")
	}
	unit := 1.0
	switch strings.ToLower(J.Units) {
	case "", "bohr", "au":
	case "angstrom", "a":
		unit = mo.AngstromToBohr
	default:
		return nil, errors.Newf("unknown units %q", J.Units)
	}
	z := make([]int, len(J.Atoms))
	raw := make([]float64, 0, 3*len(J.Atoms))
	for i, at := range J.Atoms {
		z[i] = at.Z
		if z[i] == 0 && at.Symbol != "" {
			var ok bool
			if z[i], ok = mo.AtomicNumber(at.Symbol); !ok {
				return nil, errors.Newf("unknown element %q for atom %d", at.Symbol, i+1)
			}
		}
		for _, c := range at.Coords {
			raw = append(raw, c*unit)
		}
	}
	coords, err := v3.NewMatrix(raw)
	if err != nil {
		return nil, err
	}
	return mo.NewGeometry(z, coords)
}

//ShellData returns the basis in the form the mo package takes it.
func (J *Job) ShellData() mo.ShellData {
	b := J.Basis
	return mo.ShellData{
		ShellTypes:              b.ShellTypes,
		ShellToAtom:             b.ShellToAtom,
		PrimitivesPerShell:      b.PrimitivesPerShell,
		Exponents:               b.Exponents,
		ContractionCoefficients: b.ContractionCoefficients,
		SPCoefficients:          b.SPCoefficients,
		Overlap:                 b.Overlap,
	}
}

//System is a job turned into the objects the evaluators work with.
type System struct {
	Title     string
	Geometry  *mo.Geometry
	Orbitals  mo.Orbitals
	Densities []*mo.Density
	Requests  []surface.Info
}

//Build checks the job and builds its system. Requests with a zero step get
//defaultStep.
func (J *Job) Build(defaultStep float64) (*System, error) {
	geom, err := J.Geometry()
	if err != nil {
		return nil, NewError("geometry", "Job.Build", err)
	}
	sd := J.ShellData()
	if !sd.HasData() {
		return nil, NewError("basis", "Job.Build", errors.New("job has no shells"))
	}
	var perm []int
	if J.QChemOrder {
		perm = moldenPermutation(mo.NewShellList(sd, geom))
	}
	densities := make([]*mo.Density, 0, len(J.Densities))
	for i, d := range J.Densities {
		den, err := J.density(d, perm)
		if err != nil {
			return nil, NewError("densities", "Job.Build", errors.Wrapf(err, "density %d", i))
		}
		densities = append(densities, den)
	}
	sys := &System{Title: J.Title, Geometry: geom, Densities: densities}
	if J.Orbitals != nil {
		od, err := J.orbitalData(perm)
		if err != nil {
			return nil, NewError("orbitals", "Job.Build", err)
		}
		sys.Orbitals, err = mo.OrbitalFactory(J.NAlpha, J.NBeta, od, sd, geom, densities)
		if err != nil {
			return nil, NewError("orbitals", "Job.Build", err)
		}
		if sys.Title == "" {
			sys.Title = sys.Orbitals.Title()
		}
		if dl, ok := sys.Orbitals.(interface{ DensityList() []*mo.Density }); ok && len(densities) == 0 {
			sys.Densities = dl.DensityList()
		}
	} else {
		//densities only, on a set with no orbitals.
		shells := mo.NewShellList(sd, geom)
		sys.Orbitals = mo.NewOrbitalSet(mo.Generic, shells, nil, nil, J.Title)
	}
	for i, s := range J.Surfaces {
		info, err := s.info(defaultStep)
		if err != nil {
			return nil, NewError("surfaces", "Job.Build", errors.Wrapf(err, "surface %d", i))
		}
		sys.Requests = append(sys.Requests, info)
	}
	log().Infow("Job built", "title", sys.Title, "atoms", geom.NAtoms(), "basis", sys.Orbitals.NBasis(),
		"densities", len(sys.Densities), "surfaces", len(sys.Requests))
	return sys, nil
}

func (s Surface) info(defaultStep float64) (surface.Info, error) {
	kind, ok := mo.ParseSurfaceKind(s.Type)
	if !ok {
		return surface.Info{}, errors.Newf("unknown surface type %q", s.Type)
	}
	var t mo.SurfaceType
	switch {
	case kind == mo.Custom:
		if s.Label == "" {
			return surface.Info{}, errors.New("custom surfaces need a label")
		}
		t = mo.NewCustomType(s.Label)
	case mo.NewSurfaceType(kind, 0).IsIndexed():
		if s.Index < 1 {
			return surface.Info{}, errors.Newf("%s needs a 1-based index, got %d", s.Type, s.Index)
		}
		t = mo.NewSurfaceType(kind, s.Index-1)
	default:
		t = mo.NewSurfaceType(kind, 0)
	}
	if s.Isovalue <= 0 {
		return surface.Info{}, errors.Newf("isovalue must be positive, got %g", s.Isovalue)
	}
	step := s.Step
	if step <= 0 {
		step = defaultStep
	}
	info := surface.NewInfo(t, s.Isovalue, step)
	if s.Opacity > 0 {
		info.Opacity = s.Opacity
	}
	return info, nil
}

func (J *Job) density(d Density, perm []int) (*mo.Density, error) {
	kind, ok := mo.ParseSurfaceKind(d.Type)
	if !ok {
		return nil, errors.Newf("unknown density type %q", d.Type)
	}
	t := mo.NewSurfaceType(kind, 0)
	if kind == mo.Custom {
		t = mo.NewCustomType(d.Label)
	}
	if !t.IsDensity() {
		return nil, errors.Newf("%s is not a density type", d.Type)
	}
	vector := d.Vector
	if perm != nil {
		vector = permutePacked(vector, perm)
	}
	return mo.NewDensity(t, vector, d.Label)
}

func (J *Job) orbitalData(perm []int) (mo.OrbitalData, error) {
	o := J.Orbitals
	kind, ok := mo.ParseOrbitalType(o.Type)
	if !ok {
		return mo.OrbitalData{}, errors.Wrapf(mo.ErrUnknownOrbitalType, "%q", o.Type)
	}
	od := mo.OrbitalData{
		Type:                  kind,
		Title:                 o.Title,
		AlphaCoefficients:     o.AlphaCoefficients,
		BetaCoefficients:      o.BetaCoefficients,
		AlphaEnergies:         o.AlphaEnergies,
		BetaEnergies:          o.BetaEnergies,
		AlphaImagCoefficients: o.AlphaImagCoefficients,
		BetaImagCoefficients:  o.BetaImagCoefficients,
		Labels:                o.Labels,
		GeminalEnergies:       o.GeminalEnergies,
		GeminalMoMap:          o.GeminalMoMap,
	}
	if perm != nil {
		for _, c := range []*[]float64{&od.AlphaCoefficients, &od.BetaCoefficients,
			&od.AlphaImagCoefficients, &od.BetaImagCoefficients} {
			*c = permuteRows(*c, perm)
		}
	}
	return od, nil
}

//moldenPermutation returns p such that new[k] = old[p[k]] takes a Q-Chem
//ordered row to Molden order.
func moldenPermutation(shells *mo.ShellList) []int {
	n := shells.NBasis()
	m := array.NewMatrix(1, n)
	row := m.Row(0)
	for i := range row {
		row[i] = float64(i)
	}
	shells.ReorderFromQChem(m)
	perm := make([]int, n)
	for i, v := range row {
		perm[i] = int(v)
	}
	return perm
}

//permuteRows reorders each nBasis-long row of c, returning a new slice.
//c is returned untouched if it is not a whole number of rows.
func permuteRows(c []float64, perm []int) []float64 {
	n := len(perm)
	if len(c) == 0 || n == 0 || len(c)%n != 0 {
		return c
	}
	ret := make([]float64, len(c))
	for start := 0; start < len(c); start += n {
		for k, p := range perm {
			ret[start+k] = c[start+p]
		}
	}
	return ret
}

//permutePacked applies perm to rows and columns of a packed lower triangular
//matrix.
func permutePacked(v []float64, perm []int) []float64 {
	n := len(perm)
	if len(v) != n*(n+1)/2 {
		return v
	}
	packed := func(i, j int) int {
		if j > i {
			i, j = j, i
		}
		return i*(i+1)/2 + j
	}
	ret := make([]float64, len(v))
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			ret[packed(i, j)] = v[packed(perm[i], perm[j])]
		}
	}
	return ret
}
