/*
 * cube.go, part of gomo.
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

// Package cube reads and writes grids in the Gaussian cube format. Files whose
// names end in .zst or .gz are compressed. Only axis-aligned lattices with the
// same step on every axis are supported, which is what gomo produces.
package cube

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/spatial/r3"

	mo "github.com/rmera/gomo"
	v3 "github.com/rmera/gomo/v3"
)

// ErrFormat is returned for files that are not cubes gomo can read.
var ErrFormat = errors.New("invalid cube file")

const valuesPerLine = 6

// Write writes grid, and geom if not nil, as a cube. comment goes in the
// second title line.
func Write(w io.Writer, grid *mo.GridData, geom *mo.Geometry, comment string) error {
	b := bufio.NewWriter(w)
	s := grid.Size()
	natoms := 0
	if geom != nil {
		natoms = geom.NAtoms()
	}
	fmt.Fprintf(b, "gomo %s\n%s\n", grid.Type(), strings.ReplaceAll(comment, "\n", " "))
	fmt.Fprintf(b, "%5d %12.6f %12.6f %12.6f\n", natoms, s.Origin.X, s.Origin.Y, s.Origin.Z)
	fmt.Fprintf(b, "%5d %12.6f %12.6f %12.6f\n", s.NX, s.Step, 0.0, 0.0)
	fmt.Fprintf(b, "%5d %12.6f %12.6f %12.6f\n", s.NY, 0.0, s.Step, 0.0)
	fmt.Fprintf(b, "%5d %12.6f %12.6f %12.6f\n", s.NZ, 0.0, 0.0, s.Step)
	for i := 0; i < natoms; i++ {
		p := geom.Position(i)
		fmt.Fprintf(b, "%5d %12.6f %12.6f %12.6f %12.6f\n", geom.Z[i], float64(geom.Z[i]), p.X, p.Y, p.Z)
	}
	values := grid.Values()
	for row := 0; row < s.NX*s.NY; row++ {
		line := values[row*s.NZ : (row+1)*s.NZ]
		for k, v := range line {
			fmt.Fprintf(b, " %13.5E", v)
			if (k+1)%valuesPerLine == 0 || k == len(line)-1 {
				b.WriteByte('\n')
			}
		}
	}
	return b.Flush()
}

type tokenizer struct {
	sc   *bufio.Scanner
	line int
}

func (t *tokenizer) next() ([]string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return nil, err
		}
		return nil, errors.Wrapf(ErrFormat, "unexpected end of file after line %d", t.line)
	}
	t.line++
	return strings.Fields(t.sc.Text()), nil
}

func parseFloats(fields []string, line int) ([]float64, error) {
	ret := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrFormat, "line %d: %v", line, err)
		}
		ret[i] = v
	}
	return ret, nil
}

// header reads a "count x y z" line.
func (t *tokenizer) header() (int, r3.Vec, error) {
	f, err := t.next()
	if err != nil {
		return 0, r3.Vec{}, err
	}
	if len(f) < 4 {
		return 0, r3.Vec{}, errors.Wrapf(ErrFormat, "line %d: want 4 fields, got %d", t.line, len(f))
	}
	n, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, r3.Vec{}, errors.Wrapf(ErrFormat, "line %d: %v", t.line, err)
	}
	v, err := parseFloats(f[1:4], t.line)
	if err != nil {
		return 0, r3.Vec{}, err
	}
	return n, r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Read reads a cube, tagging the grid with stype. If stype is the zero
// SurfaceType, it is taken from the title of cubes gomo wrote, or is a Custom
// type labeled with the title. The geometry is nil if the file has no atoms.
// Values are in bohr, cubes with lengths in A (negative point counts) are
// converted.
func Read(r io.Reader, stype mo.SurfaceType) (*mo.GridData, *mo.Geometry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	t := &tokenizer{sc: sc}
	for i := 0; i < 2; i++ {
		if _, err := t.next(); err != nil {
			return nil, nil, err
		}
		if i == 0 && stype == (mo.SurfaceType{}) {
			stype = titleType(sc.Text())
		}
	}
	natoms, origin, err := t.header()
	if err != nil {
		return nil, nil, err
	}
	var n [3]int
	var axes [3]r3.Vec
	for i := range n {
		n[i], axes[i], err = t.header()
		if err != nil {
			return nil, nil, err
		}
	}
	unit := 1.0
	if n[0] < 0 {
		unit = mo.AngstromToBohr
		for i := range n {
			n[i] = -n[i]
		}
	}
	step := axes[0].X
	want := [3]r3.Vec{{X: step}, {Y: step}, {Z: step}}
	for i, a := range axes {
		if r3.Norm(r3.Sub(a, want[i])) > 1e-6*math.Abs(step) {
			return nil, nil, errors.Wrapf(ErrFormat, "axis %d is %v, only orthogonal uniform lattices are supported", i, a)
		}
	}
	if step <= 0 || n[0] <= 0 || n[1] <= 0 || n[2] <= 0 {
		return nil, nil, errors.Wrapf(ErrFormat, "empty lattice %v step %g", n, step)
	}
	var geom *mo.Geometry
	if na := abs(natoms); na > 0 {
		z := make([]int, na)
		coords := v3.Zeros(na)
		for i := 0; i < na; i++ {
			f, err := t.next()
			if err != nil {
				return nil, nil, err
			}
			if len(f) < 5 {
				return nil, nil, errors.Wrapf(ErrFormat, "line %d: bad atom", t.line)
			}
			v, err := parseFloats(f[1:5], t.line)
			if err != nil {
				return nil, nil, err
			}
			z[i], err = strconv.Atoi(f[0])
			if err != nil {
				return nil, nil, errors.Wrapf(ErrFormat, "line %d: %v", t.line, err)
			}
			coords.SetVec(i, r3.Scale(unit, r3.Vec{X: v[1], Y: v[2], Z: v[3]}))
		}
		if geom, err = mo.NewGeometry(z, coords); err != nil {
			return nil, nil, err
		}
	}
	if natoms < 0 {
		//orbital cubes list the orbitals in one more line
		if _, err := t.next(); err != nil {
			return nil, nil, err
		}
	}
	size := mo.NewGridSize(r3.Scale(unit, origin), step*unit, n[0], n[1], n[2])
	grid := mo.NewGridData(size, stype)
	values := grid.Values()
	read := 0
	for read < len(values) {
		f, err := t.next()
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%d of %d values read", read, len(values))
		}
		v, err := parseFloats(f, t.line)
		if err != nil {
			return nil, nil, err
		}
		if read+len(v) > len(values) {
			return nil, nil, errors.Wrapf(ErrFormat, "line %d: too many values", t.line)
		}
		copy(values[read:], v)
		read += len(v)
	}
	grid.SetComplete(true)
	return grid, geom, nil
}

func titleType(title string) mo.SurfaceType {
	title = strings.TrimSpace(title)
	if rest, ok := strings.CutPrefix(title, "gomo "); ok {
		if t, err := mo.ParseSurfaceType(rest); err == nil {
			return t
		}
	}
	return mo.NewCustomType(title)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// WriteFile writes a cube file, compressed with zstd if name ends in .zst and
// with gzip if it ends in .gz.
func WriteFile(name string, grid *mo.GridData, geom *mo.Geometry, comment string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	var w io.WriteCloser
	switch {
	case strings.HasSuffix(name, ".zst"):
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	case strings.HasSuffix(name, ".gz"):
		w = gzip.NewWriter(f)
	default:
		return Write(f, grid, geom, comment)
	}
	if err != nil {
		return errors.Wrapf(err, "compressing %s", name)
	}
	if err := Write(w, grid, geom, comment); err != nil {
		w.Close()
		return errors.Wrapf(err, "writing %s", name)
	}
	return w.Close()
}

// ReadFile reads a cube file, see Read and WriteFile.
func ReadFile(name string, stype mo.SurfaceType) (*mo.GridData, *mo.Geometry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch {
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "decompressing %s", name)
		}
		defer d.Close()
		r = d
	case strings.HasSuffix(name, ".gz"):
		g, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "decompressing %s", name)
		}
		defer g.Close()
		r = g
	}
	grid, geom, err := Read(r, stype)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading %s", name)
	}
	return grid, geom, nil
}
