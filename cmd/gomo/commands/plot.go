/*
 * plot.go, part of gomo.
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
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/gridplot"
	"github.com/rmera/gomo/histo"
	"github.com/rmera/gomo/mojson"
)

var (
	plotOut   string
	plotAxis  string
	plotIndex int
	plotBins  int
	plotLog   bool
	plotRMax  float64
	plotAtom  int
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot slices, histograms and radial functions",
	Long: `Make 2D plots for a quick look at grids and basis sets. The format is
taken from the extension of the output file (png, svg, pdf...).

Examples:
  gomo plot slice grids/a.cube -a y -o slice.png
  gomo plot histo grids/a.cube --log -o histo.svg
  gomo plot radial water.json --atom 1 -o radial.png`,
}

var plotSliceCmd = &cobra.Command{
	Use:   "slice <file.cube>",
	Short: "Heat map of a lattice slice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, _, err := readGrid(args[0])
		if err != nil {
			return err
		}
		axis, err := gridplot.ParseAxis(plotAxis)
		if err != nil {
			return err
		}
		s := gridplot.MiddleSlice(grid, axis)
		if plotIndex >= 0 {
			if s, err = gridplot.NewSlice(grid, axis, plotIndex); err != nil {
				return err
			}
		}
		return done(gridplot.SaveSlice(s, outName(args[0], "_slice.png")))
	},
}

var plotHistoCmd = &cobra.Command{
	Use:   "histo <file.cube>",
	Short: "Histogram of the grid values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, _, err := readGrid(args[0])
		if err != nil {
			return err
		}
		h, err := histo.FromGrid(grid, plotBins, plotLog)
		if err != nil {
			return err
		}
		h.Normalize()
		p, err := gridplot.HistogramPlot(h, plotLog)
		if err != nil {
			return err
		}
		return done(p.Save(gridplot.Width, gridplot.Height, outName(args[0], "_histo.png")))
	},
}

var plotRadialCmd = &cobra.Command{
	Use:   "radial <job.json|->",
	Short: "Radial functions of the shells of a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args[0])
		if err != nil {
			return err
		}
		job, err := mojson.DecodeJob(in)
		in.Close()
		if err != nil {
			return err
		}
		geom, err := job.Geometry()
		if err != nil {
			return err
		}
		shells := mo.NewShellList(job.ShellData(), geom).Shells()
		if plotAtom > 0 {
			var sel []*mo.Shell
			for _, sh := range shells {
				if sh.Atom() == plotAtom-1 {
					sel = append(sel, sh)
				}
			}
			shells = sel
		}
		if len(shells) == 0 {
			pterm.Warning.Println("No shells to plot")
			return nil
		}
		return done(gridplot.SaveRadial(shells, plotRMax, outName(args[0], "_radial.png")))
	},
}

func init() {
	PlotCmd.PersistentFlags().StringVarP(&plotOut, "output", "o", "", "Output file")
	plotSliceCmd.Flags().StringVarP(&plotAxis, "axis", "a", "z", "Axis normal to the slice")
	plotSliceCmd.Flags().IntVarP(&plotIndex, "index", "i", -1, "Lattice index of the slice (default the middle)")
	plotHistoCmd.Flags().IntVarP(&plotBins, "bins", "b", 40, "Number of bins")
	plotHistoCmd.Flags().BoolVar(&plotLog, "log", false, "Logarithmic bins over absolute values")
	plotRadialCmd.Flags().Float64Var(&plotRMax, "rmax", 6, "Largest radius, in bohr")
	plotRadialCmd.Flags().IntVar(&plotAtom, "atom", 0, "Only shells on this atom (1-based)")
	PlotCmd.AddCommand(plotSliceCmd)
	PlotCmd.AddCommand(plotHistoCmd)
	PlotCmd.AddCommand(plotRadialCmd)
}

// outName is the --output file, or input with its extensions replaced by
// suffix.
func outName(input, suffix string) string {
	if plotOut != "" {
		return plotOut
	}
	if input == "-" {
		return "stdin" + suffix
	}
	base := input
	for _, ext := range []string{".zst", ".gz", ".cube", ".json"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base + suffix
}

func done(err error) error {
	if err != nil {
		return err
	}
	pterm.Success.Println("Plot written")
	return nil
}
