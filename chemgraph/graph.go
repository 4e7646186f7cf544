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

// Package chemgraph exposes a molecule graph through the gonum graph
// interfaces, so gonum's graph algorithms can be used on it. The view
// is live: it reads the molecule graph each time it is queried.
package chemgraph

import (
	"fmt"
	"math"

	"github.com/rmera/molbuild"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"
)

// Node is a particle of the molecule, as a gonum graph.Node. Its gonum ID is the
// slot index of the molecule node.
type Node struct {
	molbuild.Particle
	id molbuild.NodeID
}

func (N *Node) ID() int64 {
	return int64(N.id.Index())
}

// NodeID returns the molecule node identifier.
func (N *Node) NodeID() molbuild.NodeID {
	return N.id
}

// Bond is a bond of the molecule, as a gonum graph.WeightedEdge.
type Bond struct {
	molbuild.Bond
	At1, At2   *Node
	Weightfunc func(*Bond) float64
}

// Weight returns the weight of the bond, 1 by default.
func (B *Bond) Weight() float64 {
	if B.Weightfunc == nil {
		return 1
	}
	return B.Weightfunc(B)
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

// ReversedEdge returns a copy of B with the ends switched.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1, Weightfunc: B.Weightfunc}
}

// Topology implements the gonum graph.Undirected and graph.WeightedUndirected
// interfaces on top of a molecule graph.
type Topology struct {
	g          *molbuild.Graph
	weightfunc func(*Bond) float64
}

// New returns a gonum view of g. weightfunc gives the weight of each
// bond, if nil, all bonds weight 1.
func New(g *molbuild.Graph, weightfunc func(*Bond) float64) *Topology {
	if g == nil {
		panic(molbuild.ErrNilGraph)
	}
	return &Topology{g: g, weightfunc: weightfunc}
}

func (T *Topology) node(id int64) *Node {
	nid, ok := T.g.NodeByIndex(int(id))
	if !ok {
		return nil
	}
	p, err := T.g.Particle(nid)
	if err != nil {
		return nil
	}
	return &Node{Particle: *p, id: nid}
}

func nodes(ns []*Node) graph.Nodes {
	if len(ns) == 0 {
		return graph.Empty
	}
	ret := make([]graph.Node, len(ns))
	for i, v := range ns {
		ret[i] = v
	}
	return iterator.NewOrderedNodes(ret)
}

// Node returns the node with gonum ID id, or nil.
func (T *Topology) Node(id int64) graph.Node {
	n := T.node(id)
	if n == nil {
		return nil
	}
	return n
}

// Nodes returns all the nodes, in index order.
func (T *Topology) Nodes() graph.Nodes {
	ids := T.g.Nodes()
	ret := make([]*Node, 0, len(ids))
	for _, v := range ids {
		ret = append(ret, T.node(int64(v.Index())))
	}
	return nodes(ret)
}

// From returns the nodes bonded to the node id.
func (T *Topology) From(id int64) graph.Nodes {
	n := T.node(id)
	if n == nil {
		return graph.Empty
	}
	neigh, err := T.g.Neighbors(n.id)
	if err != nil {
		return graph.Empty
	}
	ret := make([]*Node, 0, len(neigh))
	for _, v := range neigh {
		ret = append(ret, T.node(int64(v.Index())))
	}
	return nodes(ret)
}

func (T *Topology) bond(uid, vid int64) *Bond {
	u := T.node(uid)
	v := T.node(vid)
	if u == nil || v == nil {
		return nil
	}
	b, ok := T.g.Edge(u.id, v.id)
	if !ok {
		return nil
	}
	return &Bond{Bond: b, At1: u, At2: v, Weightfunc: T.weightfunc}
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	return T.bond(xid, yid) != nil
}

// Edge returns the bond from uid to vid, or nil. The graph is undirected,
// so this is the same as EdgeBetween.
func (T *Topology) Edge(uid, vid int64) graph.Edge {
	if b := T.bond(uid, vid); b != nil {
		return b
	}
	return nil
}

func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	return T.Edge(xid, yid)
}

func (T *Topology) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if b := T.bond(uid, vid); b != nil {
		return b
	}
	return nil
}

func (T *Topology) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	return T.WeightedEdge(xid, yid)
}

// Weight returns the weight of the bond between xid and yid. It is 0 for a
// node with itself, and +Inf, false if there is no bond.
func (T *Topology) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0.0, true
	}
	b := T.bond(xid, yid)
	if b == nil {
		return math.Inf(1), false
	}
	return b.Weight(), true
}

func toIDs(ns []graph.Node) []molbuild.NodeID {
	ret := make([]molbuild.NodeID, len(ns))
	for i, v := range ns {
		ret[i] = v.(*Node).id
	}
	return ret
}

// Components returns the connected components of g, each one as a
// list of nodes.
func Components(g *molbuild.Graph) [][]molbuild.NodeID {
	cc := topo.ConnectedComponents(New(g, nil))
	ret := make([][]molbuild.NodeID, len(cc))
	for i, v := range cc {
		ret[i] = toIDs(v)
	}
	return ret
}

// Connected returns whether all the nodes of g are connected through bonds.
// An empty graph is connected.
func Connected(g *molbuild.Graph) bool {
	return len(topo.ConnectedComponents(New(g, nil))) <= 1
}

// BondPath returns the shortest chain of bonded nodes from a to b, both included.
func BondPath(g *molbuild.Graph, a, b molbuild.NodeID) ([]molbuild.NodeID, error) {
	if !g.Contains(a) || !g.Contains(b) {
		return nil, fmt.Errorf("chemgraph: BondPath: %s or %s not in graph: %w", a, b, molbuild.ErrNotFound)
	}
	T := New(g, nil)
	shortest := path.DijkstraFrom(T.Node(int64(a.Index())), T)
	p, _ := shortest.To(int64(b.Index()))
	if len(p) == 0 {
		return nil, fmt.Errorf("chemgraph: BondPath: no path between %s and %s", a, b)
	}
	return toIDs(p), nil
}

// BondDistance returns the number of bonds between a and b.
func BondDistance(g *molbuild.Graph, a, b molbuild.NodeID) (int, error) {
	p, err := BondPath(g, a, b)
	if err != nil {
		return -1, err
	}
	return len(p) - 1, nil
}
