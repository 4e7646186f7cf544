/*
 * clash_test.go, part of molbuild.
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

package clash

import (
	"math"
	"testing"

	"github.com/rmera/molbuild"
	"gonum.org/v1/gonum/spatial/r3"
)

// chain returns 4 bonded carbons, the last one folded back onto the first,
// plus a loose hydrogen near the first one.
func chain(Te *testing.T) (*molbuild.Graph, []molbuild.NodeID) {
	g := molbuild.NewGraph()
	pos := []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {X: 0.5}}
	ids := make([]molbuild.NodeID, 0, 5)
	for i, p := range pos {
		ids = append(ids, g.AddNode(molbuild.NewAtom(molbuild.Carbon, p, molbuild.NodeID{})))
		if i > 0 {
			if err := g.AddEdge(ids[i-1], ids[i], molbuild.Single); err != nil {
				Te.Fatal(err)
			}
		}
	}
	ids = append(ids, g.AddNode(molbuild.NewAtom(molbuild.Hydrogen, r3.Vec{Z: 0.3}, molbuild.NodeID{})))
	return g, ids
}

func TestOverlaps(Te *testing.T) {
	g, ids := chain(Te)
	ov := Overlaps(g, nil)
	if len(ov) != 3 {
		Te.Fatalf("expected 3 overlaps, got %v", ov)
	}
	expected := []struct {
		a, b molbuild.NodeID
		ov   float64
	}{
		{ids[0], ids[4], 0.3*2.9 - 0.3},
		{ids[0], ids[3], 0.3*3.4 - 0.5},
		{ids[3], ids[4], 0.3*2.9 - math.Sqrt(0.25+0.09)},
	}
	for i, e := range expected {
		if ov[i].A != e.a || ov[i].B != e.b || math.Abs(ov[i].Overlap-e.ov) > 1e-9 {
			Te.Errorf("overlap %d: expected %s-%s %.3f, got %s", i, e.a, e.b, e.ov, ov[i])
		}
	}
	worst, ok := HighestOverlap(g, nil)
	if !ok || worst != ov[0] {
		Te.Errorf("HighestOverlap gave %v", worst)
	}
}

func TestExclude(Te *testing.T) {
	g, ids := chain(Te)
	//with everything up to 3 bonds apart excluded, only the hydrogen clashes.
	for _, o := range Overlaps(g, &Options{Scale: 0.3, Exclude: 3}) {
		if o.A != ids[4] && o.B != ids[4] {
			Te.Errorf("unexpected overlap %s", o)
		}
	}
	if ov := Overlaps(g, &Options{Scale: 0, Exclude: 2}); len(ov) != 0 {
		Te.Errorf("nothing can overlap with zero radii, got %v", ov)
	}
}

func TestGrownMoleculeIsClean(Te *testing.T) {
	m, err := molbuild.NewMolecule(nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if _, err := m.ActivateSite(m.Sites()[0]); err != nil {
			Te.Fatal(err)
		}
	}
	if o, ok := HighestOverlap(m.Graph(), nil); ok {
		Te.Errorf("freshly grown molecule has a clash: %s", o)
	}
}
