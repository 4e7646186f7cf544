/*
 * super.go, part of molbuild.
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

// Package align superimposes sets of coordinates, so the shape change of a
// molecule can be measured apart from its rigid motion. It is used to tell how
// much a relaxation actually changed a molecule.
package align

import (
	"fmt"
	"math"
	"sort"

	"github.com/rmera/molbuild"
	v3 "github.com/rmera/molbuild/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func centroid(A *v3.Matrix) *v3.Matrix {
	c := v3.Zeros(1)
	n := A.NVecs()
	for i := 0; i < n; i++ {
		c.AddToVec(0, A.Vec(i))
	}
	c.Scale(1/float64(n), c.Dense)
	return c
}

func check(test, templa *v3.Matrix, caller string) error {
	if test == nil || templa == nil {
		return fmt.Errorf("align.%s: nil coordinates", caller)
	}
	if test.NVecs() != templa.NVecs() {
		return fmt.Errorf("align.%s: %d and %d points can't be compared", caller, test.NVecs(), templa.NVecs())
	}
	if test.NVecs() == 0 {
		return fmt.Errorf("align.%s: no points", caller)
	}
	return nil
}

// Super returns a copy of test, rotated and translated to best fit templa, in the
// least squares sense (the Kabsch method). Reflections are never used.
func Super(test, templa *v3.Matrix) (*v3.Matrix, error) {
	if err := check(test, templa, "Super"); err != nil {
		return nil, err
	}
	n := test.NVecs()
	ctest := centroid(test)
	ctempla := centroid(templa)
	p := v3.Zeros(n)
	p.SubVec(test, ctest)
	q := v3.Zeros(n)
	q.SubVec(templa, ctempla)
	var h mat.Dense
	h.Mul(p.T(), q)
	var svd mat.SVD
	if ok := svd.Factorize(&h, mat.SVDFull); !ok {
		return nil, fmt.Errorf("align.Super: SVD failed")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var r mat.Dense
	r.Mul(&v, u.T())
	if mat.Det(&r) < 0 {
		//flip the axis of the smallest singular value, to get a proper rotation.
		d := mat.NewDiagDense(3, []float64{1, 1, -1})
		var vd mat.Dense
		vd.Mul(&v, d)
		r.Mul(&vd, u.T())
	}
	//the coordinates are rows, so they are rotated by the transpose.
	ret := v3.Zeros(n)
	ret.Mul(p, r.T())
	ret.AddVec(ret, ctempla)
	return ret, nil
}

// RMSD returns the root of the mean square deviation between test and templa,
// without superimposing them.
func RMSD(test, templa *v3.Matrix) (float64, error) {
	if err := check(test, templa, "RMSD"); err != nil {
		return 0, err
	}
	d := v3.Zeros(test.NVecs())
	d.Sub(test, templa)
	return math.Sqrt(d.SumSquares() / float64(test.NVecs())), nil
}

// SuperRMSD superimposes test on templa, and returns the RMSD between them.
func SuperRMSD(test, templa *v3.Matrix) (float64, error) {
	s, err := Super(test, templa)
	if err != nil {
		return 0, err
	}
	return RMSD(s, templa)
}

// MostMoved superimposes test on templa, and returns the indexes of
// the n points with the largest deviation, largest first, and their deviations.
func MostMoved(test, templa *v3.Matrix, n int) ([]int, []float64, error) {
	s, err := Super(test, templa)
	if err != nil {
		return nil, nil, err
	}
	d := v3.Zeros(s.NVecs())
	d.Sub(s, templa)
	dev := d.VecNorms()
	idx := make([]int, len(dev))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return dev[idx[i]] > dev[idx[j]] })
	if n > len(idx) || n < 0 {
		n = len(idx)
	}
	idx = idx[:n]
	ret := make([]float64, n)
	for i, v := range idx {
		ret[i] = dev[v]
	}
	return idx, ret, nil
}

// Atoms returns the positions of the atoms of g, sorted by node index, and their identifiers.
// Bonding sites are left out. The matrix is nil if g has no atoms.
func Atoms(g *molbuild.Graph) ([]molbuild.NodeID, *v3.Matrix) {
	ids := make([]molbuild.NodeID, 0)
	pos := make([]r3.Vec, 0)
	for _, id := range g.Nodes() {
		p, _ := g.Particle(id)
		if p.IsAtom() {
			ids = append(ids, id)
			pos = append(pos, p.Pos)
		}
	}
	if len(pos) == 0 {
		return ids, nil
	}
	return ids, v3.FromVecs(pos)
}
