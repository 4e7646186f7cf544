/*
 * geometry.go, part of molbuild.
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

package histo

import (
	"fmt"

	"github.com/rmera/molbuild"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// BondClass tells which kind of bonds a length belongs to.
type BondClass int

const (
	AtomAtom BondClass = iota //bonds between atoms
	AtomSite                  //bonds between an atom and one of its bonding sites
)

func (B BondClass) String() string {
	switch B {
	case AtomAtom:
		return "atom-atom"
	case AtomSite:
		return "atom-site"
	}
	return fmt.Sprintf("BondClass(%d)", int(B))
}

// BondLengths returns the lengths of the bonds of class c in g, in the order of g.Edges().
func BondLengths(g *molbuild.Graph, c BondClass) []float64 {
	ret := make([]float64, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		a, errA := g.Particle(e.A)
		b, errB := g.Particle(e.B)
		if errA != nil || errB != nil {
			continue
		}
		class := AtomSite
		if a.IsAtom() && b.IsAtom() {
			class = AtomAtom
		}
		if class != c {
			continue
		}
		ret = append(ret, r3.Norm(r3.Sub(b.Pos, a.Pos)))
	}
	return ret
}

// Summary is the mean and standard deviation of a set of lengths, plus their histogram.
type Summary struct {
	Class  BondClass
	N      int
	Mean   float64
	StdDev float64
	*Histogram
}

func (S Summary) String() string {
	return fmt.Sprintf("%s bonds: %d, mean %.4f, std dev %.4f", S.Class, S.N, S.Mean, S.StdDev)
}

// Bonds summarizes the lengths of the c bonds in g, with a histogram
// over dividers. The standard deviation is 0 if there are fewer than 2 bonds.
func Bonds(g *molbuild.Graph, c BondClass, dividers []float64) (Summary, error) {
	h, err := New(dividers)
	if err != nil {
		return Summary{}, err
	}
	l := BondLengths(g, c)
	h.Fill(l)
	s := Summary{Class: c, N: len(l), Histogram: h}
	switch len(l) {
	case 0:
	case 1:
		s.Mean = l[0]
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(l, nil)
	}
	return s, nil
}
