/*
 * workspace.go, part of molbuild.
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

// Package workspace keeps the molecules being edited, and dispatches
// clicks, relaxation steps and position readback to them. This is the
// layer a host engine talks to.
package workspace

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/rmera/molbuild"
	"github.com/rmera/molbuild/chemgraph"
	"github.com/rmera/molbuild/relax"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnknownMolecule is returned when a reference names a molecule not in the workspace.
var ErrUnknownMolecule = errors.New("workspace: unknown molecule")

// DefaultHistory is the number of relaxation steps remembered per molecule.
const DefaultHistory = 1000

// Workspace is a set of independent molecules sharing a Presenter, a
// SegmentDrawer and the relaxation options.
// A Workspace is not safe for concurrent use. The host is expected to call
// it from its main loop.
type Workspace struct {
	p       molbuild.Presenter
	d       molbuild.SegmentDrawer
	o       *relax.Options
	mols    map[uuid.UUID]*molecule
	order   []uuid.UUID
	logger  *log.Logger
	history int
}

type molecule struct {
	*molbuild.Molecule
	h *relax.History
}

// New returns an empty workspace. p and d can be nil, in which case nothing is
// displayed or drawn. If o is nil, the default relaxation options are used.
func New(p molbuild.Presenter, d molbuild.SegmentDrawer, o *relax.Options) *Workspace {
	if p == nil {
		p = molbuild.NopPresenter{}
	}
	if o == nil {
		o = relax.DefaultOptions()
	}
	return &Workspace{p: p, d: d, o: o, mols: make(map[uuid.UUID]*molecule), logger: log.Default(), history: DefaultHistory}
}

// SetLogger sets the logger used for the diagnostics of the workspace.
// A nil logger restores the default one.
func (W *Workspace) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	W.logger = l
}

// SetHistory sets how many relaxation steps are remembered for each molecule
// created afterwards. 0 means no limit.
func (W *Workspace) SetHistory(n int) {
	W.history = n
}

// Options returns the relaxation options of the workspace.
func (W *Workspace) Options() *relax.Options {
	return W.o
}

// NewMolecule seeds a new molecule with the given molecule options (nil for
// the defaults), and returns it.
func (W *Workspace) NewMolecule(o *molbuild.Options) (*molbuild.Molecule, error) {
	m, err := molbuild.NewMolecule(W.p, o)
	if err != nil {
		W.logger.Printf("workspace: NewMolecule: %v", err)
		return nil, err
	}
	W.mols[m.ID()] = &molecule{Molecule: m, h: relax.NewHistory(W.history)}
	W.order = append(W.order, m.ID())
	return m, nil
}

// Molecule returns the molecule with the given id, or nil.
func (W *Workspace) Molecule(id uuid.UUID) *molbuild.Molecule {
	m, ok := W.mols[id]
	if !ok {
		return nil
	}
	return m.Molecule
}

// IDs returns the identifiers of the molecules, in creation order.
func (W *Workspace) IDs() []uuid.UUID {
	return append([]uuid.UUID(nil), W.order...)
}

// Len returns the number of molecules in the workspace.
func (W *Workspace) Len() int {
	return len(W.order)
}

func (W *Workspace) get(id uuid.UUID) (*molecule, error) {
	m, ok := W.mols[id]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownMolecule, id)
	}
	return m, nil
}

// Activate handles a click on the placeholder with back-reference ref, located
// at sitePos. The position of the atom the site is bonded to is read from the
// molecule graph. After the edit, the molecule is checked for consistency and
// connectivity; a failed check is logged and returned, but the edit stays.
// No error here is fatal: the workspace can keep being used.
func (W *Workspace) Activate(ref molbuild.Ref, sitePos r3.Vec) (*molbuild.Edit, error) {
	m, err := W.get(ref.Molecule)
	if err != nil {
		W.logger.Printf("workspace: Activate: %v", err)
		return nil, err
	}
	a := molbuild.Activation{Site: ref.Node, SitePos: sitePos}
	g := m.Graph()
	if n, err := g.Neighbors(ref.Node); err == nil && len(n) > 0 {
		if t, err := g.Particle(n[0]); err == nil {
			a.TargetPos = t.Pos
		}
	}
	edit, err := m.Activate(a)
	if err != nil {
		W.logger.Printf("workspace: Activate %s: %v", m.ID(), err)
		return nil, err
	}
	if err := W.check(m); err != nil {
		return edit, err
	}
	return edit, nil
}

func (W *Workspace) check(m *molecule) error {
	if err := molbuild.CheckInvariants(m.Graph()); err != nil {
		W.logger.Printf("workspace: molecule %s: %v", m.ID(), err)
		return err
	}
	if !chemgraph.Connected(m.Graph()) {
		err := fmt.Errorf("workspace: molecule %s is not connected: %w", m.ID(), molbuild.ErrInvariant)
		W.logger.Print(err)
		return err
	}
	return nil
}

// Step performs one relaxation step on each molecule, in creation order. Errors
// are logged and the remaining molecules are still stepped. The errors
// are returned joined, or nil if all steps succeeded.
func (W *Workspace) Step() error {
	var errs []error
	for _, id := range W.order {
		m := W.mols[id]
		s, err := relax.Step(m.Graph(), W.o, W.d)
		if err != nil {
			W.logger.Printf("workspace: Step %s: %v", id, err)
			errs = append(errs, err)
			continue
		}
		m.h.Add(s)
	}
	return errors.Join(errs...)
}

// Position returns the current position of the node ref points to.
// Placeholders call this every frame.
func (W *Workspace) Position(ref molbuild.Ref) (r3.Vec, error) {
	m, err := W.get(ref.Molecule)
	if err != nil {
		return r3.Vec{}, err
	}
	return m.Position(ref.Node)
}

// History returns the relaxation history of molecule id, or nil.
func (W *Workspace) History(id uuid.UUID) *relax.History {
	m, ok := W.mols[id]
	if !ok {
		return nil
	}
	return m.h
}

// Teardown destroys the placeholders of molecule id and removes it from the workspace.
func (W *Workspace) Teardown(id uuid.UUID) error {
	m, err := W.get(id)
	if err != nil {
		return err
	}
	m.Teardown()
	delete(W.mols, id)
	for i, v := range W.order {
		if v == id {
			W.order = append(W.order[:i], W.order[i+1:]...)
			break
		}
	}
	return nil
}

// Close tears down every molecule in the workspace.
func (W *Workspace) Close() {
	for _, id := range W.IDs() {
		W.Teardown(id)
	}
}
