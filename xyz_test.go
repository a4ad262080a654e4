/*
 * xyz_test.go, part of gomo.
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

package mo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterXYZ = `3
water
O    0.000000    0.000000    0.117300
h    0.000000    0.757200   -0.469200
1    0.000000   -0.757200   -0.469200
`

func TestXYZ(Te *testing.T) {
	geom, err := ReadXYZ(strings.NewReader(waterXYZ))
	require.NoError(Te, err)
	assert.Equal(Te, []int{8, 1, 1}, geom.Z)
	assert.InDelta(Te, 0.7572*AngstromToBohr, geom.Position(1).Y, 1e-12)

	var buf bytes.Buffer
	require.NoError(Te, WriteXYZ(&buf, geom, "again"))
	assert.Contains(Te, buf.String(), "H ")
	again, err := ReadXYZ(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, geom.Z, again.Z)
	for i := 0; i < geom.NAtoms(); i++ {
		assert.InDelta(Te, geom.Position(i).Z, again.Position(i).Z, 1e-5)
	}

	for _, bad := range []string{"", "x\n", "2\n\nO 0 0 0\n", "1\n\nQq 0 0 0\n", "1\n\nO 0 zero 0\n"} {
		_, err := ReadXYZ(strings.NewReader(bad))
		assert.Error(Te, err, bad)
	}
}

func TestElements(Te *testing.T) {
	assert.Equal(Te, "O", Symbol(8))
	assert.Equal(Te, "X", Symbol(200))
	z, ok := AtomicNumber("cl")
	assert.True(Te, ok)
	assert.Equal(Te, 17, z)
	_, ok = AtomicNumber("Qq")
	assert.False(Te, ok)
}
