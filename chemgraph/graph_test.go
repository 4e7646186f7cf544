/*
 * graph_test.go, part of molbuild.
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

package chemgraph

import (
	"errors"
	"testing"

	"github.com/rmera/molbuild"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ graph.Undirected         = (*Topology)(nil)
	_ graph.WeightedUndirected = (*Topology)(nil)
)

func TestConnectivity(Te *testing.T) {
	m, err := molbuild.NewMolecule(nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !Connected(m.Graph()) {
		Te.Error("seed molecule is not connected")
	}
	sites := m.Sites()
	d, err := BondDistance(m.Graph(), sites[0], sites[1])
	if err != nil {
		Te.Fatal(err)
	}
	if d != 2 {
		Te.Errorf("two sites of the same atom should be 2 bonds apart, got %d", d)
	}
	edit, err := m.ActivateSite(sites[0])
	if err != nil {
		Te.Fatal(err)
	}
	if !Connected(m.Graph()) {
		Te.Error("molecule not connected after an edit")
	}
	p, err := BondPath(m.Graph(), edit.Sites[0], sites[1])
	if err != nil {
		Te.Fatal(err)
	}
	//new site, new atom, seed atom, old site
	if len(p) != 4 || p[1] != edit.Atom || p[2] != edit.Target {
		Te.Errorf("wrong path %v (new atom %s, target %s)", p, edit.Atom, edit.Target)
	}
	if _, err := BondPath(m.Graph(), edit.Removed, sites[1]); !errors.Is(err, molbuild.ErrNotFound) {
		Te.Errorf("expected not-found for a removed node, got %v", err)
	}
}

func TestComponents(Te *testing.T) {
	g := molbuild.NewGraph()
	a := g.AddNode(molbuild.NewAtom(molbuild.Carbon, r3.Vec{}, molbuild.NodeID{}))
	b := g.AddNode(molbuild.NewAtom(molbuild.Oxygen, r3.Vec{X: 1}, molbuild.NodeID{}))
	if Connected(g) {
		Te.Error("two unbonded atoms reported as connected")
	}
	if c := Components(g); len(c) != 2 {
		Te.Errorf("expected 2 components, got %d", len(c))
	}
	if _, err := BondPath(g, a, b); err == nil {
		Te.Error("found a path between unbonded atoms")
	}
	g.AddEdge(a, b, molbuild.Bond{Order: 2})
	T := New(g, func(b *Bond) float64 { return float64(b.Order) })
	if w, ok := T.Weight(int64(a.Index()), int64(b.Index())); !ok || w != 2 {
		Te.Errorf("expected weight 2, got %f %v", w, ok)
	}
	if T.From(int64(a.Index())).Len() != 1 {
		Te.Error("wrong number of neighbors")
	}
	if T.Node(42) != nil {
		Te.Error("non-existent node returned")
	}
	if e := T.Edge(int64(a.Index()), int64(b.Index())); e == nil || e.ReversedEdge().From().ID() != int64(b.Index()) {
		Te.Errorf("wrong edge %v", e)
	}
	if !Connected(molbuild.NewGraph()) {
		Te.Error("empty graph should be connected")
	}
}
