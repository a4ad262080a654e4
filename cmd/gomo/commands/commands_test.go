/*
 * commands_test.go, part of gomo.
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

package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/cube"
	"github.com/rmera/gomo/surface"
)

const h2Job = `{
  "title": "H2",
  "nalpha": 1,
  "nbeta": 1,
  "atoms": [{"z": 1, "coords": [0, 0, -0.7]}, {"z": 1, "coords": [0, 0, 0.7]}],
  "basis": {
    "shell_types": [0, 0],
    "shell_to_atom": [0, 1],
    "primitives_per_shell": [3, 3],
    "exponents": [3.42525091, 0.62391373, 0.16885540, 3.42525091, 0.62391373, 0.16885540],
    "contraction_coefficients": [0.15432897, 0.53532814, 0.44463454, 0.15432897, 0.53532814, 0.44463454]
  },
  "orbitals": {
    "type": "Canonical",
    "alpha_coefficients": [0.5489, 0.5489, 1.2114, -1.2114],
    "alpha_energies": [-0.578, 0.670]
  },
  "surfaces": [
    {"type": "AlphaOrbital", "index": 2, "isovalue": 0.05, "step": 0.4},
    {"type": "BasisFunction", "index": 1, "isovalue": 0.05, "step": 0.4},
    {"type": "SpinDensity", "isovalue": 0.01, "step": 0.4}
  ]
}`

func TestCubeName(Te *testing.T) {
	assert.Equal(Te, "H2_AlphaOrbital_2.cube", cubeName("H2", mo.NewSurfaceType(mo.AlphaOrbital, 1), ".cube"))
	assert.Equal(Te, "Custom__MP2_.cube.zst", cubeName("", mo.NewCustomType("MP2"), ".cube.zst"))
	assert.Equal(Te, "a_b_TotalDensity.cube", cubeName("a/b", mo.NewSurfaceType(mo.TotalDensity, 0), ".cube"))
	assert.Equal(Te, "geometry.xyz", xyzName(""))
	assert.Equal(Te, "H2.xyz", xyzName("H2"))
}

func TestOutName(Te *testing.T) {
	plotOut = ""
	assert.Equal(Te, "grids/a_slice.png", outName("grids/a.cube.zst", "_slice.png"))
	assert.Equal(Te, "water_radial.png", outName("water.json", "_radial.png"))
	plotOut = "x.svg"
	defer func() { plotOut = "" }()
	assert.Equal(Te, "x.svg", outName("water.json", "_radial.png"))
}

func TestUnmatched(Te *testing.T) {
	a := surface.NewInfo(mo.NewSurfaceType(mo.AlphaOrbital, 0), 0.05, 0.2)
	b := surface.NewInfo(mo.NewSurfaceType(mo.BetaOrbital, 0), 0.05, 0.2)
	got := unmatched([]surface.Info{a, b}, []*surface.Surface{{Info: a}})
	assert.Equal(Te, []string{b.String()}, got)
}

func TestRunEval(Te *testing.T) {
	dir := Te.TempDir()
	job := filepath.Join(dir, "h2.json")
	require.NoError(Te, os.WriteFile(job, []byte(h2Job), 0644))
	evalOutDir = filepath.Join(dir, "out")
	evalQuiet = true
	defer func() { evalOutDir, evalQuiet = "", false }()
	_, err := LoadConfig()
	require.NoError(Te, err)

	//as run from Execute, with a context
	EvalCmd.SetContext(context.Background())
	require.NoError(Te, runEval(EvalCmd, []string{job}))
	for _, name := range []string{"H2_AlphaOrbital_2.cube", "H2_BasisFunction_1.cube"} {
		grid, geom, err := cube.ReadFile(filepath.Join(evalOutDir, name), mo.SurfaceType{})
		require.NoError(Te, err, name)
		assert.Equal(Te, 2, geom.NAtoms())
		min, max := grid.MinMax()
		assert.Greater(Te, max, 0.0, name)
		if name == "H2_AlphaOrbital_2.cube" {
			//antibonding orbital, one lobe of each sign
			assert.Less(Te, min, 0.0)
		}
	}
	f, err := os.Open(filepath.Join(evalOutDir, "H2.xyz"))
	require.NoError(Te, err)
	geom, err := mo.ReadXYZ(f)
	f.Close()
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, 1}, geom.Z)

	//closed shell, so the spin density built from the orbitals is zero
	spin, _, err := cube.ReadFile(filepath.Join(evalOutDir, "H2_SpinDensity.cube"), mo.SurfaceType{})
	require.NoError(Te, err)
	assert.Equal(Te, mo.NewSurfaceType(mo.SpinDensity, 0), spin.Type())
	min, max := spin.MinMax()
	assert.InDelta(Te, 0, min, 1e-12)
	assert.InDelta(Te, 0, max, 1e-12)

	require.NoError(Te, runStats(StatsCmd, []string{filepath.Join(evalOutDir, "H2_AlphaOrbital_2.cube")}))
}
