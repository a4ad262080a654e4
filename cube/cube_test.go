/*
 * cube_test.go, part of gomo.
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

package cube

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	mo "github.com/rmera/gomo"
	v3 "github.com/rmera/gomo/v3"
)

func testGrid() (*mo.GridData, *mo.Geometry) {
	size := mo.NewGridSize(r3.Vec{X: -1.5, Y: -2, Z: 0.25}, 0.25, 3, 4, 7)
	grid := mo.NewGridData(size, mo.NewSurfaceType(mo.AlphaOrbital, 4))
	values := grid.Values()
	for i := range values {
		values[i] = float64(i)*0.013 - 0.4
	}
	geom, err := mo.NewGeometry([]int{8, 1}, v3.FromVecs([]r3.Vec{{X: 0.1}, {X: 1.2, Y: -0.5, Z: 0.75}}))
	if err != nil {
		panic(err)
	}
	return grid, geom
}

func assertSame(Te *testing.T, want, got *mo.GridData) {
	Te.Helper()
	assert.Equal(Te, want.Size(), got.Size())
	require.Len(Te, got.Values(), len(want.Values()))
	for i, v := range want.Values() {
		assert.InDelta(Te, v, got.Values()[i], 1e-5)
	}
}

func TestRoundTrip(Te *testing.T) {
	grid, geom := testGrid()
	var buf bytes.Buffer
	require.NoError(Te, Write(&buf, grid, geom, "test\ncube"))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(Te, "gomo AlphaOrbital 5", lines[0])
	assert.Equal(Te, "test cube", lines[1])
	got, g2, err := Read(&buf, grid.Type())
	require.NoError(Te, err)
	assertSame(Te, grid, got)
	assert.True(Te, got.Complete())
	require.NotNil(Te, g2)
	assert.Equal(Te, []int{8, 1}, g2.Z)
	assert.Equal(Te, r3.Vec{X: 1.2, Y: -0.5, Z: 0.75}, g2.Position(1))
}

func TestFiles(Te *testing.T) {
	grid, geom := testGrid()
	dir := Te.TempDir()
	for _, name := range []string{"a.cube", "b.cube.zst", "c.cube.gz"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, WriteFile(path, grid, geom, name))
		got, _, err := ReadFile(path, grid.Type())
		require.NoError(Te, err, name)
		assertSame(Te, grid, got)
	}
	_, _, err := ReadFile(filepath.Join(dir, "missing.cube"), grid.Type())
	assert.Error(Te, err)
}

func TestNoAtoms(Te *testing.T) {
	grid, _ := testGrid()
	var buf bytes.Buffer
	require.NoError(Te, Write(&buf, grid, nil, ""))
	got, geom, err := Read(&buf, grid.Type())
	require.NoError(Te, err)
	assert.Nil(Te, geom)
	assertSame(Te, grid, got)
}

const angstromCube = `title
comment
   -1    0.000000    0.000000    0.000000
   -2    0.500000    0.000000    0.000000
   -1    0.000000    0.500000    0.000000
   -1    0.000000    0.000000    0.500000
    1    1.000000    0.000000    0.000000    1.000000
    1    5
  1.0 2.0
`

func TestAngstromAndOrbitalCube(Te *testing.T) {
	grid, geom, err := Read(strings.NewReader(angstromCube), mo.NewSurfaceType(mo.AlphaOrbital, 4))
	require.NoError(Te, err)
	assert.InDelta(Te, 0.5*mo.AngstromToBohr, grid.Size().Step, 1e-12)
	assert.Equal(Te, 2, grid.Size().NX)
	assert.Equal(Te, 2.0, grid.At(1, 0, 0))
	assert.InDelta(Te, mo.AngstromToBohr, geom.Position(0).Z, 1e-12)
}

func TestBadCubes(Te *testing.T) {
	skewed := strings.Replace(angstromCube, "   -1    0.000000    0.500000", "   -1    0.100000    0.500000", 1)
	_, _, err := Read(strings.NewReader(skewed), mo.NewCustomType("x"))
	assert.ErrorIs(Te, err, ErrFormat)
	short := strings.TrimSuffix(angstromCube, "2.0\n")
	_, _, err = Read(strings.NewReader(short), mo.NewCustomType("x"))
	assert.ErrorIs(Te, err, ErrFormat)
	_, _, err = Read(strings.NewReader("a\nb\n1 x 0 0\n"), mo.NewCustomType("x"))
	assert.ErrorIs(Te, err, ErrFormat)
}

func TestTypeFromTitle(Te *testing.T) {
	grid, geom := testGrid()
	var buf bytes.Buffer
	require.NoError(Te, Write(&buf, grid, geom, ""))
	got, _, err := Read(&buf, mo.SurfaceType{})
	require.NoError(Te, err)
	assert.Equal(Te, mo.NewSurfaceType(mo.AlphaOrbital, 4), got.Type())

	got, _, err = Read(strings.NewReader(angstromCube), mo.SurfaceType{})
	require.NoError(Te, err)
	assert.Equal(Te, mo.NewCustomType("title"), got.Type())
}
