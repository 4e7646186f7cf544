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

package molbuild

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func atom(x float64) Particle {
	return NewAtom(Carbon, r3.Vec{X: x}, NodeID{})
}

func TestStableIDs(Te *testing.T) {
	G := NewGraph()
	a := G.AddNode(atom(0))
	b := G.AddNode(atom(1))
	if err := G.AddEdge(a, b, Single); err != nil {
		Te.Fatal(err)
	}
	if err := G.RemoveNode(a); err != nil {
		Te.Fatal(err)
	}
	c := G.AddNode(atom(2))
	if c.Index() != a.Index() {
		Te.Errorf("expected slot %d to be reused, got %d", a.Index(), c.Index())
	}
	if c == a || G.Contains(a) || !G.Contains(c) {
		Te.Errorf("the removed identifier %s resolves to the new node %s", a, c)
	}
	if _, err := G.Particle(a); !errors.Is(err, ErrNotFound) {
		Te.Errorf("stale identifier gave %v", err)
	}
	if p, _ := G.Particle(c); p.Pos.X != 2 {
		Te.Errorf("wrong payload for the new node: %v", p)
	}
	if G.HasEdge(c, b) {
		Te.Error("the new node inherited the bonds of the removed one")
	}
	if G.Len() != 2 || G.EdgeCount() != 0 {
		Te.Errorf("expected 2 nodes and no edges, got %d and %d", G.Len(), G.EdgeCount())
	}
	var zero NodeID
	if zero.Valid() || G.Contains(zero) {
		Te.Error("the zero NodeID identifies a node")
	}
}

func TestExhaustedSlotRetired(Te *testing.T) {
	G := NewGraph()
	old := G.AddNode(atom(0))
	a := G.AddNode(atom(1))
	if err := G.RemoveNode(a); err != nil {
		Te.Fatal(err)
	}
	G.slots[old.index].gen = ^uint32(0)
	last := G.id(old.index)
	if err := G.RemoveNode(last); err != nil {
		Te.Fatal(err)
	}
	for _, f := range G.free {
		if f == old.index {
			Te.Fatalf("slot %d went back to the free list with its generations exhausted", f)
		}
	}
	b := G.AddNode(atom(2))
	c := G.AddNode(atom(3))
	if b.Index() == old.Index() || c.Index() == old.Index() {
		Te.Errorf("retired slot %d was reused", old.Index())
	}
	if G.Contains(old) || G.Contains(last) {
		Te.Error("an identifier of the retired slot still resolves")
	}
	if G.Len() != 2 {
		Te.Errorf("expected 2 nodes, got %d", G.Len())
	}
	if err := CheckInvariants(G); err != nil {
		Te.Error(err)
	}
}

func TestEdgeFailures(Te *testing.T) {
	G := NewGraph()
	a := G.AddNode(atom(0))
	b := G.AddNode(atom(1))
	gone := G.AddNode(atom(2))
	G.RemoveNode(gone)
	cases := []struct {
		name string
		a, b NodeID
		bond Bond
		kind error
	}{
		{"self loop", a, a, Single, ErrSelfLoop},
		{"missing node", a, gone, Single, ErrNotFound},
		{"zero order", a, b, Bond{}, ErrBondOrder},
	}
	for _, c := range cases {
		if err := G.AddEdge(c.a, c.b, c.bond); !errors.Is(err, c.kind) {
			Te.Errorf("%s: expected %v, got %v", c.name, c.kind, err)
		}
	}
	if err := G.AddEdge(a, b, Single); err != nil {
		Te.Fatal(err)
	}
	if err := G.AddEdge(b, a, Single); !errors.Is(err, ErrDuplicateEdge) {
		Te.Errorf("duplicate edge gave %v", err)
	}
	if G.EdgeCount() != 1 {
		Te.Errorf("failed AddEdge calls changed the graph")
	}
	if err := CheckInvariants(G); err != nil {
		Te.Error(err)
	}
	if err := G.RemoveEdge(a, b); err != nil {
		Te.Fatal(err)
	}
	if err := G.RemoveEdge(a, b); !errors.Is(err, ErrNotFound) {
		Te.Errorf("removing a missing edge gave %v", err)
	}
}

func TestRemoveMissingNode(Te *testing.T) {
	G := NewGraph()
	a := G.AddNode(atom(0))
	b := G.AddNode(atom(1))
	G.AddEdge(a, b, Single)
	G.RemoveNode(b)
	if err := G.RemoveNode(b); !errors.Is(err, ErrNotFound) {
		Te.Errorf("second removal gave %v", err)
	}
	if G.Len() != 1 || !G.Contains(a) {
		Te.Error("removing a missing node changed the graph")
	}
	if d, _ := G.Degree(a); d != 0 {
		Te.Errorf("removing a node left %d bonds on its neighbor", d)
	}
	//the slot of b is free only once.
	c := G.AddNode(atom(3))
	d := G.AddNode(atom(4))
	if c.Index() == d.Index() {
		Te.Error("two live nodes share a slot")
	}
}

func TestNeighborsAndEdges(Te *testing.T) {
	G := NewGraph()
	center := G.AddNode(atom(0))
	sites := make([]NodeID, 4)
	for i := range sites {
		sites[i] = G.AddNode(NewBondingSite(r3.Vec{Y: float64(i)}))
		if err := G.AddEdge(sites[i], center, Single); err != nil {
			Te.Fatal(err)
		}
	}
	n, err := G.Neighbors(center)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range n {
		if n[i] != sites[i] {
			Te.Errorf("neighbors not sorted by index: %v", n)
		}
	}
	edges := G.Edges()
	if len(edges) != 4 {
		Te.Fatalf("expected 4 edges, got %d", len(edges))
	}
	for i, e := range edges {
		if e.A != center || e.B != sites[i] || e.Order != 1 {
			Te.Errorf("unexpected edge %d: %v", i, e)
		}
	}
	if atoms, s := G.Count(); atoms != 1 || s != 4 {
		Te.Errorf("expected 1 atom and 4 sites, got %d, %d", atoms, s)
	}
	if err := CheckInvariants(G); err != nil {
		Te.Error(err)
	}
	//a bonding site bonded to another site breaks the invariants.
	extra := G.AddNode(NewBondingSite(r3.Vec{}))
	G.AddEdge(extra, sites[0], Single)
	if err := CheckInvariants(G); !errors.Is(err, ErrInvariant) {
		Te.Errorf("broken molecule passed the checks: %v", err)
	}
}

func TestParticlePointer(Te *testing.T) {
	G := NewGraph()
	a := G.AddNode(atom(0))
	p, _ := G.Particle(a)
	p.Pos = r3.Vec{X: 5}
	p.Vel = r3.Vec{Y: 1}
	q, _ := G.Particle(a)
	if q.Pos.X != 5 || q.Vel.Y != 1 {
		Te.Errorf("changes through the pointer were lost: %v", q)
	}
	//pointers must survive the growth of the graph.
	for i := 0; i < 100; i++ {
		G.AddNode(atom(float64(i)))
	}
	p.Pos.X = 7
	if q, _ := G.Particle(a); q.Pos.X != 7 {
		Te.Error("the particle pointer was invalidated by adding nodes")
	}
}
