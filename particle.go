/*
 * particle.go, part of molbuild.
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

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kind tells what a particle is.
type Kind uint8

const (
	AtomKind Kind = iota + 1
	BondingSiteKind
)

func (K Kind) String() string {
	switch K {
	case AtomKind:
		return "atom"
	case BondingSiteKind:
		return "bonding site"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(K))
	}
}

// Particle is the payload of a node in a molecule graph. It is either an
// atom or a bonding site (an open valence). Both have a position and a velocity.
// Element and Facing are only meaningful for atoms.
//
// A bonding site must always have exactly one bond, to an atom.
type Particle struct {
	Kind    Kind
	Element Element
	Pos     r3.Vec
	Vel     r3.Vec
	//The node the local +z axis of the atom points toward. The zero NodeID
	//(for a root atom) means the local +z is the global +z.
	Facing NodeID
}

// NewAtom returns an atom particle of element e at pos, facing facing.
func NewAtom(e Element, pos r3.Vec, facing NodeID) Particle {
	return Particle{Kind: AtomKind, Element: e, Pos: pos, Facing: facing}
}

// NewBondingSite returns a bonding site particle at pos.
func NewBondingSite(pos r3.Vec) Particle {
	return Particle{Kind: BondingSiteKind, Pos: pos}
}

func (P Particle) IsAtom() bool        { return P.Kind == AtomKind }
func (P Particle) IsBondingSite() bool { return P.Kind == BondingSiteKind }

// HasFacing returns whether the particle is an atom oriented toward another node.
func (P Particle) HasFacing() bool {
	return P.Kind == AtomKind && P.Facing.Valid()
}

// Repr returns the display attributes of the particle.
func (P Particle) Repr() ElementRepr {
	if P.Kind == BondingSiteKind {
		return BondingSiteRepr
	}
	return P.Element.Repr()
}

func (P Particle) String() string {
	if P.Kind == AtomKind {
		return fmt.Sprintf("%s at (%.3f %.3f %.3f)", P.Element, P.Pos.X, P.Pos.Y, P.Pos.Z)
	}
	return fmt.Sprintf("%s at (%.3f %.3f %.3f)", P.Kind, P.Pos.X, P.Pos.Y, P.Pos.Z)
}
