/*
 * doc.go, part of molbuild.
 *
 *
 * Copyright 2026 The molbuild authors
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

/*
Package molbuild is the core of an interactive molecule builder. A molecule
starts as a single seed atom surrounded by "bonding sites", placeholders
that mark where a new bond can go. Activating (clicking) a bonding site
replaces it by a new atom, which gets bonding sites of its own, laid out
according to its coordination number. A simple spring/repulsion
relaxation (package relax) then moves everything towards a sensible shape.

	**molbuild Capabilities**

	Element table: symbols, display colors and radii, and default
	coordination numbers for the 118 elements.

	Bond geometry table: the directions of the bonds of an atom, for
	coordination numbers 1 (single) to 6 (octahedral), rotated so the
	first one points along any given direction.

	Molecule graph with generation-checked node identifiers: an identifier
	of a removed node never refers to a node created later.

	Graph editing through bonding site activation. Activations are
	checked completely before the graph is changed, so a failed one
	leaves the molecule as it was.

	Presentation interfaces (Presenter, SegmentDrawer) that let any
	engine display the molecule, without this package knowing about it.

Subpackages:

	v3: Nx3 coordinate matrices, on top of gonum's mat.
	relax: the relaxation engine.
	chemgraph: the molecule graph as a gonum graph.
	chemplot: plots of relaxation runs.
	workspace: a set of molecules, as seen by the host engine.
*/
package molbuild
