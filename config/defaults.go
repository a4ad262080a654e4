/*
 * defaults.go, part of gomo.
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

package config

import (
	"github.com/spf13/viper"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/surface"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("eval.threshold", mo.DefaultThreshold)
	v.SetDefault("eval.workers", 0)
	v.SetDefault("eval.progress_ms", 200)

	v.SetDefault("grid.step", 0.2)
	v.SetDefault("grid.padding", surface.DefaultPadding)

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.compress", "")

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// Default returns the configuration with only the defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	c, err := LoadWithViper(v)
	if err != nil {
		panic(err) //the defaults must always decode
	}
	return c
}
