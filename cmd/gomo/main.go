/*
 * main.go, part of gomo.
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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/gomo/cmd/gomo/commands"
	"github.com/rmera/gomo/logger"
)

var rootCmd = &cobra.Command{
	Use:   "gomo",
	Short: "gomo - molecular orbital and density grids",
	Long: `gomo - molecular orbital and density grids.

gomo evaluates molecular orbitals, densities and basis functions on
3D lattices, from a JSON job holding the geometry, basis and orbitals
of a molecule, and writes them as Gaussian cube files.

Available commands:
  eval    - Evaluate the grids a job requests
  stats   - Show statistics of cube files
  plot    - Plot slices, histograms and radial functions
  config  - Show or write the configuration

Examples:
  gomo eval water.json -o grids      # Evaluate and write cubes to grids/
  gomo stats grids/*.cube            # Summarize cube files
  gomo plot slice grids/a.cube -a z  # Heat map of the middle Z slice
  gomo config init > gomo.toml       # Write the default configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := commands.LoadConfig()
		if err != nil {
			return err
		}
		if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&commands.ConfigPath, "config", "c", "", "TOML configuration file")
	rootCmd.AddCommand(commands.EvalCmd)
	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.PlotCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
