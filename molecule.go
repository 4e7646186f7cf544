/*
 * molecule.go, part of molbuild.
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
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Options contains the settings used by a Molecule when it creates atoms.
type Options struct {
	element      Element
	coordination int
	bondLength   float64
	origin       r3.Vec
}

// DefaultOptions returns options for growing carbon skeletons: carbon
// atoms, with their element-derived (tetrahedral) coordination, unit
// bond length, and the seed atom at the origin.
func DefaultOptions() *Options {
	return &Options{element: Carbon, bondLength: 1.0}
}

// Element returns the element of newly created atoms,
// and sets it to a new value, if given.
func (O *Options) Element(e ...Element) Element {
	if len(e) > 0 && e[0].Valid() {
		O.element = e[0]
	}
	return O.element
}

// Coordination returns the coordination number for new atoms, and sets it
// to a new value, if given. 0 means that the coordination is derived
// from the element of each new atom.
func (O *Options) Coordination(k ...int) int {
	if len(k) > 0 && k[0] >= 0 {
		O.coordination = k[0]
	}
	return O.coordination
}

// BondLength returns the distance at which bonding sites are placed from
// their atoms, and sets it to a new value, if given.
func (O *Options) BondLength(l ...float64) float64 {
	if len(l) > 0 && l[0] > 0 {
		O.bondLength = l[0]
	}
	return O.bondLength
}

// Origin returns the position of the seed atom, and sets it to a new
// value, if given.
func (O *Options) Origin(o ...r3.Vec) r3.Vec {
	if len(o) > 0 {
		O.origin = o[0]
	}
	return O.origin
}

func (O *Options) coordinationFor(e Element) int {
	if O.coordination > 0 {
		return O.coordination
	}
	return e.Coordination()
}

// Molecule is a molecule being edited: a graph of atoms and bonding sites,
// plus the Presenter that displays it.
// A Molecule is not safe for concurrent use.
type Molecule struct {
	id uuid.UUID
	g  *Graph
	p  Presenter
	o  Options
}

// NewMolecule creates a molecule with a single seed atom, and all the bonding sites
// of that atom. If p is nil, nothing is displayed. If o is nil, DefaultOptions
// are used.
func NewMolecule(p Presenter, o *Options) (*Molecule, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if p == nil {
		p = NopPresenter{}
	}
	if !o.element.Valid() {
		return nil, newCError(ErrElement, "NewMolecule", "invalid seed element %d", o.element)
	}
	if o.bondLength <= 0 || math.IsNaN(o.bondLength) || math.IsInf(o.bondLength, 0) {
		return nil, newCError(ErrDegenerate, "NewMolecule", "invalid bond length %g", o.bondLength)
	}
	M := &Molecule{id: uuid.New(), g: NewGraph(), p: p, o: *o}
	dirs, err := BondDirections(o.coordinationFor(o.element), r3.Vec{Z: 1})
	if err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	M.place(o.element, o.origin, dirs, NodeID{})
	return M, nil
}

// ID returns the unique identifier of the molecule.
func (M *Molecule) ID() uuid.UUID { return M.id }

// Graph returns the graph of the molecule. Changes to it are not displayed,
// so it should be edited only through the Molecule methods.
func (M *Molecule) Graph() *Graph { return M.g }

// Options returns a copy of the options of the molecule.
func (M *Molecule) Options() *Options {
	o := M.o
	return &o
}

// Ref returns the back-reference for node id.
func (M *Molecule) Ref(id NodeID) Ref {
	return Ref{Molecule: M.id, Node: id}
}

// Activation describes a click on a bonding site. SitePos and TargetPos are the
// current world positions of the bonding site and of the atom it is bonded to.
// Element and Coordination, if not zero, override the molecule options for
// the new atom.
type Activation struct {
	Site         NodeID
	SitePos      r3.Vec
	TargetPos    r3.Vec
	Element      Element
	Coordination int
}

// Edit is the result of a successful activation.
type Edit struct {
	Removed NodeID   //the activated bonding site, no longer in the graph
	Target  NodeID   //the atom the site was bonded to
	Atom    NodeID   //the new atom
	Sites   []NodeID //the bonding sites of the new atom
	Bonds   int      //the number of bonds created
}

// Activate replaces the bonding site a.Site by a new atom, bonded to the atom
// the site was attached to, and gives the new atom its own bonding
// sites. The new atom is placed at the end of the displacement from the target
// to the site, with its local +z pointing back to the target. The first direction of its
// bond geometry is taken by the bond to the target, and a bonding site is created
// in each of the others.
//
// All the checks are performed before anything is changed: if
// an error is returned, the molecule has not been modified.
func (M *Molecule) Activate(a Activation) (*Edit, error) {
	site, err := M.g.Particle(a.Site)
	if err != nil {
		return nil, errDecorate(err, "Activate")
	}
	if !site.IsBondingSite() {
		return nil, newCError(ErrNotBondingSite, "Activate", "%s is a %s", a.Site, site.Kind)
	}
	neighbors, err := M.g.Neighbors(a.Site)
	if err != nil {
		return nil, errDecorate(err, "Activate")
	}
	switch {
	case len(neighbors) == 0:
		return nil, newCError(ErrNoNeighbor, "Activate", "bonding site %s has no bonds", a.Site)
	case len(neighbors) > 1:
		return nil, newCError(ErrInvariant, "Activate", "bonding site %s has %d bonds", a.Site, len(neighbors))
	}
	target := neighbors[0]
	tp, err := M.g.Particle(target)
	if err != nil {
		return nil, errDecorate(err, "Activate")
	}
	if !tp.IsAtom() {
		return nil, newCError(ErrInvariant, "Activate", "bonding site %s is bonded to a %s", a.Site, tp.Kind)
	}
	e := a.Element
	if e == 0 {
		e = M.o.element
	}
	if !e.Valid() {
		return nil, newCError(ErrElement, "Activate", "invalid element %d", e)
	}
	k := a.Coordination
	if k == 0 {
		k = M.o.coordinationFor(e)
	}
	disp := r3.Sub(a.SitePos, a.TargetPos)
	if !finite(disp) || r3.Norm(disp) <= appzero {
		return nil, newCError(ErrDegenerate, "Activate", "bonding site %s and its atom are at the same position", a.Site)
	}
	up := r3.Unit(r3.Scale(-1, disp))
	dirs, err := BondDirections(k, up)
	if err != nil {
		return nil, errDecorate(err, "Activate")
	}

	h := M.g.handle(a.Site)
	if err := M.g.RemoveNode(a.Site); err != nil {
		panic(err) //we just looked it up
	}
	M.p.Destroy(h)

	edit := M.place(e, r3.Add(a.TargetPos, disp), dirs, target)
	edit.Removed = a.Site
	return edit, nil
}

// ActivateSite activates the bonding site id, using the positions stored in the graph.
func (M *Molecule) ActivateSite(id NodeID) (*Edit, error) {
	p, err := M.g.Particle(id)
	if err != nil {
		return nil, errDecorate(err, "ActivateSite")
	}
	a := Activation{Site: id, SitePos: p.Pos}
	if n, err := M.g.Neighbors(id); err == nil && len(n) > 0 {
		if t, err := M.g.Particle(n[0]); err == nil {
			a.TargetPos = t.Pos
		}
	}
	edit, err := M.Activate(a)
	if err != nil {
		return nil, errDecorate(err, "ActivateSite")
	}
	return edit, nil
}

// place creates an atom of element e at pos, facing facing, with a bonding
// site along each of dirs. If facing is a valid node, the first direction is
// skipped, and the new atom is bonded to facing instead.
// Everything must have been validated by the caller.
func (M *Molecule) place(e Element, pos r3.Vec, dirs []r3.Vec, facing NodeID) *Edit {
	skip := 0
	if facing.Valid() {
		skip = 1
	}
	atom := M.g.AddNode(NewAtom(e, pos, facing))
	edit := &Edit{Target: facing, Atom: atom, Sites: make([]NodeID, 0, len(dirs)-skip)}
	for _, d := range dirs[skip:] {
		s := M.g.AddNode(NewBondingSite(r3.Add(pos, r3.Scale(M.o.bondLength, d))))
		M.mustBond(atom, s)
		edit.Sites = append(edit.Sites, s)
	}
	if facing.Valid() {
		M.mustBond(atom, facing)
	}
	edit.Bonds = len(edit.Sites) + skip
	M.show(atom)
	for _, s := range edit.Sites {
		M.show(s)
	}
	return edit
}

func (M *Molecule) mustBond(a, b NodeID) {
	if err := M.g.AddEdge(a, b, Single); err != nil {
		panic(err) //both nodes exist and are not yet bonded.
	}
}

func (M *Molecule) show(id NodeID) {
	p, err := M.g.Particle(id)
	if err != nil {
		return
	}
	M.g.setHandle(id, M.p.Spawn(M.Ref(id), *p))
}

// Position returns the current position of node id.
func (M *Molecule) Position(id NodeID) (r3.Vec, error) {
	p, err := M.g.Particle(id)
	if err != nil {
		return r3.Vec{}, errDecorate(err, "Position")
	}
	return p.Pos, nil
}

// Handle returns the placeholder handle of node id, or nil.
func (M *Molecule) Handle(id NodeID) Handle {
	return M.g.handle(id)
}

// Atoms returns the atom nodes of the molecule, sorted by index.
func (M *Molecule) Atoms() []NodeID {
	return M.ofKind(AtomKind)
}

// Sites returns the bonding site nodes of the molecule, sorted by index.
func (M *Molecule) Sites() []NodeID {
	return M.ofKind(BondingSiteKind)
}

func (M *Molecule) ofKind(k Kind) []NodeID {
	ret := make([]NodeID, 0)
	for _, id := range M.g.Nodes() {
		if p, _ := M.g.Particle(id); p.Kind == k {
			ret = append(ret, id)
		}
	}
	return ret
}

// Formula returns the formula of the molecule in Hill order: carbon,
// then hydrogen, then the rest alphabetically. Without carbon, all elements
// are sorted alphabetically. Bonding sites are not counted.
func (M *Molecule) Formula() string {
	count := make(map[Element]int)
	for _, id := range M.Atoms() {
		p, _ := M.g.Particle(id)
		count[p.Element]++
	}
	elems := make([]Element, 0, len(count))
	for e := range count {
		elems = append(elems, e)
	}
	_, carbon := count[Carbon]
	rank := func(e Element) int {
		if !carbon {
			return 2
		}
		switch e {
		case Carbon:
			return 0
		case Hydrogen:
			return 1
		}
		return 2
	}
	sort.Slice(elems, func(i, j int) bool {
		ri, rj := rank(elems[i]), rank(elems[j])
		if ri != rj {
			return ri < rj
		}
		return elems[i].Symbol() < elems[j].Symbol()
	})
	var b strings.Builder
	for _, e := range elems {
		b.WriteString(e.Symbol())
		if count[e] > 1 {
			fmt.Fprintf(&b, "%d", count[e])
		}
	}
	return b.String()
}

// Teardown destroys the placeholders of all the nodes, and empties the
// molecule. The molecule should not be used afterwards.
func (M *Molecule) Teardown() {
	for _, id := range M.g.Nodes() {
		h := M.g.handle(id)
		M.g.RemoveNode(id)
		M.p.Destroy(h)
	}
}
