/*
 * graph.go, part of molbuild.
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
	"sort"
)

// NodeID identifies a node in a Graph. A NodeID stays valid until its node
// is removed. After that, it will never resolve to another node, even if the
// slot it pointed to is recycled: each slot carries a generation counter that
// is increased on removal.
// The zero NodeID never identifies a node.
type NodeID struct {
	index uint32
	gen   uint32
}

// Index returns the slot index of the node. Slot indexes are reused, so
// the index alone does not identify a node over time.
func (N NodeID) Index() int { return int(N.index) }

// Valid returns whether N could identify a node, i.e. whether it is not the
// zero NodeID. It says nothing about whether the node still exists.
func (N NodeID) Valid() bool { return N.gen != 0 }

func (N NodeID) String() string {
	if !N.Valid() {
		return "node(none)"
	}
	return fmt.Sprintf("node(%d:%d)", N.index, N.gen)
}

// Bond is the payload of an edge.
type Bond struct {
	Order int //Only single bonds (Order 1) are created for now.
}

// Single is a single bond.
var Single = Bond{Order: 1}

// Edge is an edge as returned by Graph.Edges. A is always the node with
// the lower index.
type Edge struct {
	A, B NodeID
	Bond
}

type slot struct {
	gen  uint32
	live bool
	p    Particle
	h    Handle
	adj  map[uint32]Bond //neighbor slot index -> bond
}

// Graph is an undirected simple graph (no self-loops, at most one edge between
// two nodes) of particles, with bonds as edges. The zero value is an
// empty graph ready to use.
type Graph struct {
	slots []*slot
	free  []uint32
	nodes int
	edges int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return new(Graph)
}

// AddNode inserts a node with payload p and returns its identifier.
func (G *Graph) AddNode(p Particle) NodeID {
	var s *slot
	var index uint32
	if n := len(G.free); n > 0 {
		index = G.free[n-1]
		G.free = G.free[:n-1]
		s = G.slots[index]
	} else {
		index = uint32(len(G.slots))
		s = &slot{gen: 1}
		G.slots = append(G.slots, s)
	}
	s.live = true
	s.p = p
	s.h = nil
	s.adj = make(map[uint32]Bond, 4)
	G.nodes++
	return NodeID{index: index, gen: s.gen}
}

func (G *Graph) lookup(id NodeID, caller string) (*slot, error) {
	if id.gen == 0 || int(id.index) >= len(G.slots) {
		return nil, newCError(ErrNotFound, caller, "%s does not exist", id)
	}
	s := G.slots[id.index]
	if !s.live || s.gen != id.gen {
		return nil, newCError(ErrNotFound, caller, "%s does not exist (removed)", id)
	}
	return s, nil
}

func (G *Graph) id(index uint32) NodeID {
	return NodeID{index: index, gen: G.slots[index].gen}
}

// Contains returns whether id identifies a node currently in G.
func (G *Graph) Contains(id NodeID) bool {
	_, err := G.lookup(id, "")
	return err == nil
}

// RemoveNode removes the node id and all its edges. If id doesn't exist,
// an error is returned and G is not modified. A slot whose generation
// counter is exhausted is retired instead of reused.
func (G *Graph) RemoveNode(id NodeID) error {
	s, err := G.lookup(id, "RemoveNode")
	if err != nil {
		return err
	}
	for n := range s.adj {
		delete(G.slots[n].adj, id.index)
		G.edges--
	}
	s.adj = nil
	s.live = false
	s.h = nil
	s.p = Particle{}
	s.gen++
	G.nodes--
	if s.gen == 0 {
		return nil //generations exhausted, the slot is never reused
	}
	G.free = append(G.free, id.index)
	return nil
}

// AddEdge adds an edge between a and b. It fails if a and b are the same node,
// if either doesn't exist, if they are already bonded,
// or if the bond order is less than one.
func (G *Graph) AddEdge(a, b NodeID, bond Bond) error {
	if bond.Order < 1 {
		return newCError(ErrBondOrder, "AddEdge", "invalid bond order %d between %s and %s", bond.Order, a, b)
	}
	if a == b {
		return newCError(ErrSelfLoop, "AddEdge", "can't bond %s to itself", a)
	}
	sa, err := G.lookup(a, "AddEdge")
	if err != nil {
		return err
	}
	sb, err := G.lookup(b, "AddEdge")
	if err != nil {
		return err
	}
	if _, ok := sa.adj[b.index]; ok {
		return newCError(ErrDuplicateEdge, "AddEdge", "%s and %s are already bonded", a, b)
	}
	sa.adj[b.index] = bond
	sb.adj[a.index] = bond
	G.edges++
	return nil
}

// RemoveEdge removes the edge between a and b.
func (G *Graph) RemoveEdge(a, b NodeID) error {
	sa, err := G.lookup(a, "RemoveEdge")
	if err != nil {
		return err
	}
	sb, err := G.lookup(b, "RemoveEdge")
	if err != nil {
		return err
	}
	if _, ok := sa.adj[b.index]; !ok {
		return newCError(ErrNotFound, "RemoveEdge", "no edge between %s and %s", a, b)
	}
	delete(sa.adj, b.index)
	delete(sb.adj, a.index)
	G.edges--
	return nil
}

// Edge returns the bond between a and b, if there is one.
func (G *Graph) Edge(a, b NodeID) (Bond, bool) {
	sa, err := G.lookup(a, "")
	if err != nil || !G.Contains(b) {
		return Bond{}, false
	}
	bond, ok := sa.adj[b.index]
	return bond, ok
}

// HasEdge returns whether a and b are bonded.
func (G *Graph) HasEdge(a, b NodeID) bool {
	_, ok := G.Edge(a, b)
	return ok
}

// Neighbors returns the nodes bonded to id, sorted by index.
func (G *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	s, err := G.lookup(id, "Neighbors")
	if err != nil {
		return nil, err
	}
	ret := make([]NodeID, 0, len(s.adj))
	for n := range s.adj {
		ret = append(ret, G.id(n))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].index < ret[j].index })
	return ret, nil
}

// Degree returns the number of bonds of id.
func (G *Graph) Degree(id NodeID) (int, error) {
	s, err := G.lookup(id, "Degree")
	if err != nil {
		return 0, err
	}
	return len(s.adj), nil
}

// Particle returns a pointer to the payload of id. Changes made through the
// pointer are reflected in G. The pointer must not be used after the node is removed.
func (G *Graph) Particle(id NodeID) (*Particle, error) {
	s, err := G.lookup(id, "Particle")
	if err != nil {
		return nil, err
	}
	return &s.p, nil
}

// Nodes returns the identifiers of all nodes in G, sorted by index.
func (G *Graph) Nodes() []NodeID {
	ret := make([]NodeID, 0, G.nodes)
	for i, s := range G.slots {
		if s.live {
			ret = append(ret, NodeID{index: uint32(i), gen: s.gen})
		}
	}
	return ret
}

// NodeByIndex returns the node currently living in slot index, if any.
func (G *Graph) NodeByIndex(index int) (NodeID, bool) {
	if index < 0 || index >= len(G.slots) || !G.slots[index].live {
		return NodeID{}, false
	}
	return G.id(uint32(index)), true
}

// Edges returns all the edges of G, sorted by the index of their
// first and then second nodes.
func (G *Graph) Edges() []Edge {
	ret := make([]Edge, 0, G.edges)
	for i, s := range G.slots {
		if !s.live {
			continue
		}
		for n, b := range s.adj {
			if n > uint32(i) {
				ret = append(ret, Edge{A: G.id(uint32(i)), B: G.id(n), Bond: b})
			}
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].A.index != ret[j].A.index {
			return ret[i].A.index < ret[j].A.index
		}
		return ret[i].B.index < ret[j].B.index
	})
	return ret
}

// Len returns the number of nodes in G.
func (G *Graph) Len() int { return G.nodes }

// EdgeCount returns the number of edges in G.
func (G *Graph) EdgeCount() int { return G.edges }

// Count returns the number of atoms and of bonding sites in G.
func (G *Graph) Count() (atoms, sites int) {
	for _, s := range G.slots {
		if !s.live {
			continue
		}
		switch s.p.Kind {
		case AtomKind:
			atoms++
		case BondingSiteKind:
			sites++
		}
	}
	return
}

func (G *Graph) handle(id NodeID) Handle {
	s, err := G.lookup(id, "")
	if err != nil {
		return nil
	}
	return s.h
}

func (G *Graph) setHandle(id NodeID, h Handle) {
	if s, err := G.lookup(id, ""); err == nil {
		s.h = h
	}
}

// CheckInvariants verifies that every bonding site of G has exactly one bond,
// and that it is to an atom, and that the facing reference of each atom, if
// set, resolves to a neighbor.
// Self-loops and duplicate edges can't be created through AddEdge, but
// they are checked for too.
func CheckInvariants(G *Graph) error {
	if G == nil {
		panic(ErrNilGraph)
	}
	edges := 0
	for i, s := range G.slots {
		if !s.live {
			continue
		}
		id := G.id(uint32(i))
		edges += len(s.adj)
		if _, ok := s.adj[uint32(i)]; ok {
			return newCError(ErrInvariant, "CheckInvariants", "%s is bonded to itself", id)
		}
		for n := range s.adj {
			o := G.slots[n]
			if !o.live {
				return newCError(ErrInvariant, "CheckInvariants", "%s is bonded to a removed node", id)
			}
			if _, ok := o.adj[uint32(i)]; !ok {
				return newCError(ErrInvariant, "CheckInvariants", "bond %s-%s is only recorded on one side", id, G.id(n))
			}
		}
		switch s.p.Kind {
		case BondingSiteKind:
			if len(s.adj) != 1 {
				return newCError(ErrInvariant, "CheckInvariants", "bonding site %s has %d bonds", id, len(s.adj))
			}
			for n := range s.adj {
				if G.slots[n].p.Kind != AtomKind {
					return newCError(ErrInvariant, "CheckInvariants", "bonding site %s is bonded to a %s", id, G.slots[n].p.Kind)
				}
			}
		case AtomKind:
			if s.p.Facing.Valid() && !G.HasEdge(id, s.p.Facing) {
				return newCError(ErrInvariant, "CheckInvariants", "atom %s faces %s, which is not bonded to it", id, s.p.Facing)
			}
		default:
			return newCError(ErrInvariant, "CheckInvariants", "%s has unknown kind %s", id, s.p.Kind)
		}
	}
	if edges != 2*G.edges {
		return newCError(ErrInvariant, "CheckInvariants", "edge count mismatch: %d recorded, %d found", G.edges, edges/2)
	}
	return nil
}
