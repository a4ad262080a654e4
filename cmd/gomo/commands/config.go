/*
 * config.go, part of gomo.
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
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rmera/gomo/config"
)

// ConfigPath is the configuration file given with --config.
var ConfigPath string

var cfg *config.Config

// LoadConfig loads the configuration once, from ConfigPath and the
// environment.
func LoadConfig() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := config.Load(ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the gomo configuration",
	Long: `Show or write the gomo configuration.

Configuration sources (in order of precedence):
1. Environment variables (GOMO_* prefix, GOMO_GRID_STEP sets grid.step)
2. The file given with --config
3. Default values`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadConfig()
		if err != nil {
			return err
		}
		return config.Write(os.Stdout, c)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.WriteDefault(os.Stdout)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		//LoadConfig validates, so getting here means it is fine
		if _, err := LoadConfig(); err != nil {
			return err
		}
		pterm.Success.Println("Configuration is valid")
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}
