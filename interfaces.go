/*
 * interfaces.go, part of molbuild.
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
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Handle is the display-side identity of a placeholder, as returned by a
// Presenter. molbuild never looks inside it.
type Handle interface{}

// Ref identifies a node within a workspace: the molecule it belongs to and
// the node itself. It is the back-reference a placeholder keeps.
type Ref struct {
	Molecule uuid.UUID
	Node     NodeID
}

// Presenter creates and destroys the visual placeholders for the nodes
// of a molecule. Spawn receives the back-reference the placeholder should
// keep, and a copy of the particle it represents.
type Presenter interface {
	Spawn(ref Ref, p Particle) Handle
	Destroy(h Handle)
}

// SegmentDrawer draws a debug line between two points in world space.
type SegmentDrawer interface {
	DrawSegment(a, b r3.Vec)
}

// NopPresenter is a Presenter that displays nothing. It is useful for
// headless runs.
type NopPresenter struct{}

func (NopPresenter) Spawn(Ref, Particle) Handle { return nil }
func (NopPresenter) Destroy(Handle)             {}

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice resulting from the current call. An empty string just returns the current value.
}
