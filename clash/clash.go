/*
 * clash.go, part of molbuild.
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

// Package clash finds atoms of a molecule that overlap while not being
// bonded, which the relaxation usually fixes, but not always.
package clash

import (
	"fmt"
	"sort"

	"github.com/rmera/molbuild"
	"github.com/rmera/molbuild/chemgraph"
	"gonum.org/v1/gonum/spatial/r3"
)

// Overlap is a pair of atoms closer than the scaled sum of their radii.
type Overlap struct {
	A, B     molbuild.NodeID
	Distance float64
	Overlap  float64 //the scaled radii sum minus the distance, always positive.
}

func (O Overlap) String() string {
	return fmt.Sprintf("%s-%s: distance %.3f, overlap %.3f", O.A, O.B, O.Distance, O.Overlap)
}

// Options for Overlaps.
type Options struct {
	//The radii of the atoms are multiplied by this before comparing.
	//The display radii are van der Waals radii, much larger than the bond length.
	Scale float64
	//Pairs of atoms separated by this many bonds or less are never
	//reported.
	Exclude int
}

// DefaultOptions reports pairs 3 or more bonds apart, closer than 0.3 times
// the sum of their van der Waals radii.
func DefaultOptions() *Options {
	return &Options{Scale: 0.3, Exclude: 2}
}

// Overlaps returns all the overlapping atom pairs of g, largest overlap first.
// Bonding sites are not considered.
func Overlaps(g *molbuild.Graph, o *Options) []Overlap {
	if o == nil {
		o = DefaultOptions()
	}
	atoms := make([]molbuild.NodeID, 0)
	for _, id := range g.Nodes() {
		if p, _ := g.Particle(id); p.IsAtom() {
			atoms = append(atoms, id)
		}
	}
	ret := make([]Overlap, 0)
	for i, a := range atoms {
		pa, _ := g.Particle(a)
		for _, b := range atoms[i+1:] {
			pb, _ := g.Particle(b)
			d := r3.Norm(r3.Sub(pb.Pos, pa.Pos))
			ov := o.Scale*(pa.Repr().Radius+pb.Repr().Radius) - d
			if ov <= 0 {
				continue
			}
			//only now, as this is the expensive part.
			if n, err := chemgraph.BondDistance(g, a, b); err == nil && n <= o.Exclude {
				continue
			}
			ret = append(ret, Overlap{A: a, B: b, Distance: d, Overlap: ov})
		}
	}
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].Overlap > ret[j].Overlap })
	return ret
}

// HighestOverlap returns the worst overlap in g, if there is any.
func HighestOverlap(g *molbuild.Graph, o *Options) (Overlap, bool) {
	ov := Overlaps(g, o)
	if len(ov) == 0 {
		return Overlap{}, false
	}
	return ov[0], true
}
