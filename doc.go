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

/*Package mo is the main package of the gomo library. It turns a basis set description of a molecule
(contracted Gaussian shells, molecular orbital coefficients, density matrices) into values that can be sampled
on 3D grids.

	**gomo Capabilities**

	Evaluates Gaussian basis functions of angular momentum up to G, Cartesian or spherical,
	in the Molden/FChk order.

	Evaluates any number of orbitals or densities at a point in one pass over the basis,
	skipping shells that don't contribute.

	Reorders coefficients from the Q-Chem basis function order.

	Handles canonical, localized, natural transition, natural bond, Dyson, complex and geminal orbitals.

	The eval subpackage fills grids with those values, concurrently, and the cube subpackage
	reads and writes them.

All lengths are in bohr.

Contract violations (wrong shapes, indexes out of range) panic with a PanicMsg. Data that doesn't
make sense is logged and reported with one of the sentinel errors, or by a Consistent method returning false.

*/
package mo
