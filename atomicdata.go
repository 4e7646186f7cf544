/*
 * atomicdata.go, part of molbuild.
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

package molbuild

import "image/color"

// ElementRepr holds what is needed to display an atom of a given element.
type ElementRepr struct {
	Color  color.RGBA
	Radius float64 //in A
}

// Atoms of elements not in the table below are displayed black, with radius 1 A.
var defaultRepr = ElementRepr{Color: color.RGBA{A: 255}, Radius: 1.0}

// Radii are van der Waals radii.
var elementRepr = map[Element]ElementRepr{
	Hydrogen:   {Color: rgb(0.8510, 0.8510, 0.8510), Radius: 1.2},  //white
	Carbon:     {Color: rgb(0.30196, 0.2902, 0.3098), Radius: 1.7}, //dark grey
	Nitrogen:   {Color: rgb(0.2078, 0.4549, 0.6118), Radius: 1.55}, //blue
	Oxygen:     {Color: rgb(0.7490, 0.2118, 0.3176), Radius: 1.52}, //red
	Silicon:    {Color: rgb(0.5234, 0.5234, 0.5234), Radius: 2.1},  //light grey
	Phosphorus: {Color: rgb(0.7019, 0.4314, 0.1451), Radius: 1.8},  //orange
	Sulfur:     {Color: rgb(0.7294, 0.5804, 0.1686), Radius: 1.8},  //yellow
}

func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{R: uint8(r*255 + 0.5), G: uint8(g*255 + 0.5), B: uint8(b*255 + 0.5), A: 255}
}

// Repr returns the display attributes for E.
func (E Element) Repr() ElementRepr {
	if r, ok := elementRepr[E]; ok {
		return r
	}
	return defaultRepr
}

// The bonding site marker is smaller than any atom, and pale.
var BondingSiteRepr = ElementRepr{Color: rgb(0.8, 0.8, 0.8), Radius: 0.3}

// How many bonding sites an atom of each element gets
// by default. Anything not listed gets DefaultCoordination.
// This is not meant as chemistry, just reasonable defaults.
var elementCoordination = map[Element]int{
	Hydrogen:   1, //this is the only one truly important.
	Carbon:     4,
	Nitrogen:   3,
	Oxygen:     2,
	Fluorine:   1,
	Silicon:    4,
	Phosphorus: 5,
	Sulfur:     6,
	Chlorine:   1,
	Bromine:    1,
	Iodine:     1,
}

const DefaultCoordination = 4

// Coordination returns the default coordination number for atoms of E,
// i.e. the number of bonding sites they are created with.
func (E Element) Coordination() int {
	if c, ok := elementCoordination[E]; ok {
		return c
	}
	return DefaultCoordination
}
