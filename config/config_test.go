/*
 * config_test.go, part of gomo.
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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mo "github.com/rmera/gomo"
)

func TestDefaults(Te *testing.T) {
	c := Default()
	assert.Equal(Te, mo.DefaultThreshold, c.Eval.Threshold)
	assert.Equal(Te, 0, c.Eval.Workers)
	assert.Equal(Te, 0.2, c.Grid.Step)
	assert.Equal(Te, 2.0, c.Grid.Padding)
	assert.Equal(Te, "info", c.Log.Level)
	assert.Equal(Te, ".cube", c.Output.Extension())
	require.NoError(Te, c.Validate())
}

func TestLoadFile(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "gomo.toml")
	content := `
[eval]
workers = 3

[grid]
step = 0.15

[output]
compress = "zst"
`
	require.NoError(Te, os.WriteFile(path, []byte(content), 0644))
	c, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, 3, c.Eval.Workers)
	assert.Equal(Te, 0.15, c.Grid.Step)
	assert.Equal(Te, ".cube.zst", c.Output.Extension())
	//untouched keys keep their defaults
	assert.Equal(Te, mo.DefaultThreshold, c.Eval.Threshold)

	_, err = Load(filepath.Join(Te.TempDir(), "missing.toml"))
	assert.Error(Te, err)
}

func TestEnvOverride(Te *testing.T) {
	Te.Setenv("GOMO_GRID_STEP", "0.35")
	Te.Setenv("GOMO_LOG_LEVEL", "debug")
	c, err := Load("")
	require.NoError(Te, err)
	assert.Equal(Te, 0.35, c.Grid.Step)
	assert.Equal(Te, "debug", c.Log.Level)
}

func TestValidate(Te *testing.T) {
	for name, edit := range map[string]func(*Config){
		"threshold": func(c *Config) { c.Eval.Threshold = 0 },
		"workers":   func(c *Config) { c.Eval.Workers = -1 },
		"progress":  func(c *Config) { c.Eval.ProgressMs = -5 },
		"step":      func(c *Config) { c.Grid.Step = -0.1 },
		"padding":   func(c *Config) { c.Grid.Padding = -1 },
		"compress":  func(c *Config) { c.Output.Compress = "xz" },
		"level":     func(c *Config) { c.Log.Level = "loud" },
	} {
		c := Default()
		edit(c)
		assert.Error(Te, c.Validate(), name)
	}
}

func TestWriteDefault(Te *testing.T) {
	var buf bytes.Buffer
	require.NoError(Te, WriteDefault(&buf))
	assert.Contains(Te, buf.String(), "[grid]")
	var c Config
	_, err := toml.Decode(buf.String(), &c)
	require.NoError(Te, err)
	assert.Equal(Te, *Default(), c)

	//and viper reads back what was written
	path := filepath.Join(Te.TempDir(), "default.toml")
	require.NoError(Te, os.WriteFile(path, buf.Bytes(), 0644))
	loaded, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, Default(), loaded)
}
