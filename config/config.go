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

// Package config holds the gomo settings. They are read with viper from an
// optional TOML file and GOMO_ environment variables, over the defaults in
// SetDefaults.
package config

// Config is the complete gomo configuration.
type Config struct {
	Eval   EvalConfig   `mapstructure:"eval" toml:"eval"`
	Grid   GridConfig   `mapstructure:"grid" toml:"grid"`
	Output OutputConfig `mapstructure:"output" toml:"output"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

// EvalConfig controls grid evaluation.
type EvalConfig struct {
	// Threshold is the basis function magnitude below which a shell is
	// considered zero.
	Threshold float64 `mapstructure:"threshold" toml:"threshold"`
	// Workers is the number of evaluators run at the same time. 0 means one
	// per CPU.
	Workers int `mapstructure:"workers" toml:"workers"`
	// ProgressMs is the interval between progress reports.
	ProgressMs int `mapstructure:"progress_ms" toml:"progress_ms"`
}

// GridConfig sets the default lattice.
type GridConfig struct {
	// Step is the lattice step in bohr, for requests that don't give one.
	Step float64 `mapstructure:"step" toml:"step"`
	// Padding is added around the significant box of the basis, in bohr.
	Padding float64 `mapstructure:"padding" toml:"padding"`
}

// OutputConfig controls where grids go.
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
	// Compress is "", "zst" or "gz".
	Compress string `mapstructure:"compress" toml:"compress"`
}

// LogConfig controls the logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json"`
	Level string `mapstructure:"level" toml:"level"`
}

// Extension returns the cube file extension for the configured compression.
func (o OutputConfig) Extension() string {
	if o.Compress == "" {
		return ".cube"
	}
	return ".cube." + o.Compress
}
