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

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/cube"
	"github.com/rmera/gomo/histo"
)

var (
	statsJSON     bool
	statsFraction float64
)

// StatsCmd represents the stats command
var StatsCmd = &cobra.Command{
	Use:   "stats <file.cube>...",
	Short: "Show statistics of cube files",
	Long: `Show the range, mean, integrals and an isovalue suggestion for each
cube file. The suggested isovalue encloses --fraction of the integral of
the density, or of the squared orbital.

Examples:
  gomo stats grids/*.cube
  gomo stats --json --fraction 0.8 grids/water_TotalDensity.cube.zst`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	StatsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output JSON instead of a table")
	StatsCmd.Flags().Float64VarP(&statsFraction, "fraction", "f", 0.9, "Fraction enclosed by the suggested isovalue")
}

type fileStats struct {
	File     string        `json:"file"`
	Summary  histo.Summary `json:"summary"`
	Isovalue float64       `json:"isovalue"`
}

func readGrid(name string) (*mo.GridData, *mo.Geometry, error) {
	return cube.ReadFile(name, mo.SurfaceType{})
}

func runStats(cmd *cobra.Command, args []string) error {
	var all []fileStats
	for _, name := range args {
		grid, _, err := readGrid(name)
		if err != nil {
			return err
		}
		s, err := histo.Summarize(grid)
		if err != nil {
			return err
		}
		iso, err := histo.EnclosingIsovalue(grid, statsFraction)
		if err != nil {
			pterm.Warning.Printfln("%s: %v", name, err)
		}
		all = append(all, fileStats{File: name, Summary: s, Isovalue: iso})
	}
	if statsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}
	data := pterm.TableData{{"File", "Type", "Points", "Min", "Max", "Integral", "Square integral", "Isovalue"}}
	for _, f := range all {
		s := f.Summary
		data = append(data, []string{
			filepath.Base(f.File),
			s.Label,
			fmt.Sprint(s.Points),
			fmt.Sprintf("%.4e", s.Min),
			fmt.Sprintf("%.4e", s.Max),
			fmt.Sprintf("%.4f", s.Integral),
			fmt.Sprintf("%.4f", s.SquareIntegral),
			fmt.Sprintf("%.4e", f.Isovalue),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
