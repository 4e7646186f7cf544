/*
 * relax.go, part of molbuild.
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

// Package relax moves the particles of a molecule graph toward a
// consistent 3D layout. Bonded pairs are pulled toward a rest length by
// a spring, and all other pairs repel with an inverse-square force. The
// relaxation never stops by itself: it is meant to be stepped once
// per frame.
package relax

import (
	"fmt"
	"math"

	"github.com/rmera/molbuild"
	v3 "github.com/rmera/molbuild/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001

// Stats summarizes one relaxation step.
type Stats struct {
	Step     int     //set by History.Add
	Nodes    int     //particles moved
	MaxForce float64 //largest force on a particle
	RMSForce float64
	Kinetic  float64 //kinetic energy after the step, taking unit masses
}

func (S Stats) String() string {
	return fmt.Sprintf("step %d: %d particles, max force %.4g, rms force %.4g, kinetic %.4g", S.Step, S.Nodes, S.MaxForce, S.RMSForce, S.Kinetic)
}

// gather returns the nodes of g, with their positions and velocities.
func gather(g *molbuild.Graph) ([]molbuild.NodeID, *v3.Matrix, *v3.Matrix) {
	ids := g.Nodes()
	if len(ids) == 0 {
		return nil, nil, nil
	}
	pos := v3.Zeros(len(ids))
	vel := v3.Zeros(len(ids))
	for i, id := range ids {
		p, err := g.Particle(id)
		if err != nil {
			panic(err) //ids was just obtained from g
		}
		pos.SetVec(i, p.Pos)
		vel.SetVec(i, p.Vel)
	}
	return ids, pos, vel
}

// Forces returns the nodes of g, and the total force on each of them,
// one row per node, in the same order. All forces are computed from the
// current positions, so the result doesn't depend on the order of the nodes.
// Pairs of particles at the same position contribute no force.
func Forces(g *molbuild.Graph, O *Options) ([]molbuild.NodeID, *v3.Matrix, error) {
	if g == nil {
		panic(molbuild.ErrNilGraph)
	}
	if O == nil {
		O = DefaultOptions()
	}
	if err := O.Validate(); err != nil {
		return nil, nil, err
	}
	ids, pos, _ := gather(g)
	if len(ids) == 0 {
		return nil, nil, nil
	}
	return ids, forces(g, ids, pos, O), nil
}

func forces(g *molbuild.Graph, ids []molbuild.NodeID, pos *v3.Matrix, O *Options) *v3.Matrix {
	n := len(ids)
	f := v3.Zeros(n)
	for i := 0; i < n; i++ {
		pi := pos.Vec(i)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			disp := r3.Sub(pos.Vec(j), pi)
			d := r3.Norm(disp)
			if d <= appzero || math.IsNaN(d) || math.IsInf(d, 0) {
				continue //direction undefined
			}
			u := r3.Scale(1/d, disp)
			if g.HasEdge(ids[i], ids[j]) {
				f.AddToVec(i, r3.Scale(O.SpringConstant*(d-O.RestLength), u))
			} else {
				f.AddToVec(i, r3.Scale(-1/(d*d), u))
			}
		}
	}
	return f
}

// Step advances the relaxation of g by one step: the forces on all particles are
// computed, then velocities and positions are updated and velocities damped.
// If d is not nil and O.DrawBonds is set, a segment is drawn for each bond, between
// the new positions of its particles. If the step would produce non-finite
// positions, g is left unchanged and an error is returned.
func Step(g *molbuild.Graph, O *Options, d molbuild.SegmentDrawer) (Stats, error) {
	if g == nil {
		panic(molbuild.ErrNilGraph)
	}
	if O == nil {
		O = DefaultOptions()
	}
	if err := O.Validate(); err != nil {
		return Stats{}, err
	}
	ids, pos, vel := gather(g)
	n := len(ids)
	if n == 0 {
		return Stats{}, nil
	}
	f := forces(g, ids, pos, O)
	tmp := v3.Zeros(n)
	tmp.Scale(O.StepGain, f.Dense)
	vel.Add(vel.Dense, tmp.Dense)
	tmp.Scale(O.TimeScale, vel.Dense)
	pos.Add(pos.Dense, tmp.Dense)
	vel.Scale(O.Damping, vel.Dense)
	if !pos.IsFinite() || !vel.IsFinite() {
		return Stats{}, fmt.Errorf("relax: step produced non-finite coordinates: %w", molbuild.ErrDegenerate)
	}
	for i, id := range ids {
		p, _ := g.Particle(id)
		p.Pos = pos.Vec(i)
		p.Vel = vel.Vec(i)
	}
	if d != nil && O.DrawBonds {
		drawBonds(g, d)
	}
	s := Stats{Nodes: n, Kinetic: 0.5 * vel.SumSquares()}
	s.MaxForce, _ = f.MaxVecNorm()
	s.RMSForce = math.Sqrt(f.SumSquares() / float64(n))
	return s, nil
}

func drawBonds(g *molbuild.Graph, d molbuild.SegmentDrawer) {
	for _, e := range g.Edges() {
		a, errA := g.Particle(e.A)
		b, errB := g.Particle(e.B)
		if errA != nil || errB != nil {
			continue
		}
		d.DrawSegment(a.Pos, b.Pos)
	}
}

// Run performs n relaxation steps on g, and returns their statistics.
// It stops at the first error.
func Run(g *molbuild.Graph, O *Options, d molbuild.SegmentDrawer, n int) (*History, error) {
	h := NewHistory(0)
	for i := 0; i < n; i++ {
		s, err := Step(g, O, d)
		if err != nil {
			return h, fmt.Errorf("relax: step %d: %w", i, err)
		}
		h.Add(s)
	}
	return h, nil
}
