/*
 * doc.go, part of gomo.
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

/*Package array implements a fixed-rank, strided, row-major dense array with owning and
non-owning (view) variants. It is the storage for everything numeric in gomo: coefficient
matrices, density vectors and the 3D lattices of grid data.

The last axis is always the contiguous one. Views share the storage of their parent,
and a read-only view panics on writes, which is how a "const" view is expressed here.
Misuse (shape mismatches, out of range indexes, resizing a view) is a programming error
and causes a panic with one of the PanicMsg constants.

Matrix products are delegated to gonum's BLAS-backed mat.Dense, over the same storage.
*/
package array
