/*
 * validate.go, part of gomo.
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

import "github.com/cockroachdb/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Eval.Threshold <= 0 {
		return errors.Newf("eval.threshold must be > 0, got %g", c.Eval.Threshold)
	}
	// Workers: 0 = one per CPU, negative = invalid
	if c.Eval.Workers < 0 {
		return errors.Newf("eval.workers must be >= 0, got %d", c.Eval.Workers)
	}
	if c.Eval.ProgressMs < 0 {
		return errors.Newf("eval.progress_ms must be >= 0, got %d", c.Eval.ProgressMs)
	}
	if c.Grid.Step <= 0 {
		return errors.Newf("grid.step must be > 0, got %g", c.Grid.Step)
	}
	if c.Grid.Padding < 0 {
		return errors.Newf("grid.padding must be >= 0, got %g", c.Grid.Padding)
	}
	switch c.Output.Compress {
	case "", "zst", "gz":
	default:
		return errors.WithHint(errors.Newf("unknown output.compress %q", c.Output.Compress),
			`use "zst", "gz" or leave it empty`)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}
