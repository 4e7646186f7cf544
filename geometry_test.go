/*
 * geometry_test.go, part of molbuild.
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
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func angle(a, b r3.Vec) float64 {
	c := r3.Dot(a, b) / (r3.Norm(a) * r3.Norm(b))
	return math.Acos(math.Max(-1, math.Min(1, c))) * Rad2Deg
}

func TestBondTableShape(Te *testing.T) {
	for k := MinCoordination; k <= MaxCoordination; k++ {
		a, err := SphericalAngles(k)
		if err != nil {
			Te.Fatal(err)
		}
		if len(a) != k {
			Te.Errorf("coordination %d has %d directions", k, len(a))
		}
		if a[0] != [2]float64{0, 0} {
			Te.Errorf("coordination %d: the first direction must be +z, got %v", k, a[0])
		}
	}
	for _, k := range []int{0, -1, 7} {
		if _, err := SphericalAngles(k); !errors.Is(err, ErrCoordination) {
			Te.Errorf("coordination %d gave %v", k, err)
		}
		if _, err := BondDirections(k, r3.Vec{Z: 1}); !errors.Is(err, ErrCoordination) {
			Te.Errorf("coordination %d gave %v", k, err)
		}
	}
}

// minimum angle between any two directions, for each coordination number.
var minAngle = map[int]float64{2: 180, 3: 120, 4: tetrahedral, 5: 90, 6: 90}

func TestBondDirections(Te *testing.T) {
	ups := []r3.Vec{{Z: 1}, {Z: -1}, {X: 1}, {X: 1, Y: -2, Z: 0.5}, {Y: 3}, {X: 1e-13, Z: -1}}
	for k := MinCoordination; k <= MaxCoordination; k++ {
		for _, up := range ups {
			dirs, err := BondDirections(k, up)
			if err != nil {
				Te.Fatal(err)
			}
			for i, d := range dirs {
				if math.Abs(r3.Norm(d)-1) > 1e-9 {
					Te.Errorf("k=%d up=%v: direction %d is not unit: %v", k, up, i, d)
				}
			}
			if d := r3.Norm(r3.Sub(dirs[0], r3.Unit(up))); d > 1e-9 {
				Te.Errorf("k=%d up=%v: first direction %v does not point up", k, up, dirs[0])
			}
			min := 180.0
			for i := range dirs {
				for j := i + 1; j < len(dirs); j++ {
					min = math.Min(min, angle(dirs[i], dirs[j]))
				}
			}
			if k > 1 && math.Abs(min-minAngle[k]) > 1e-4 {
				Te.Errorf("k=%d up=%v: minimum angle %g, expected %g", k, up, min, minAngle[k])
			}
		}
	}
}

func TestTetrahedralAgainstUp(Te *testing.T) {
	up := r3.Vec{X: 0.3, Y: 0.4, Z: -0.2}
	dirs, err := BondDirections(4, up)
	if err != nil {
		Te.Fatal(err)
	}
	for i, d := range dirs[1:] {
		if a := angle(d, up); math.Abs(a-tetrahedral) > 1e-6 {
			Te.Errorf("direction %d is %g degrees from up", i+1, a)
		}
	}
}

func TestDegenerateUp(Te *testing.T) {
	for _, up := range []r3.Vec{{}, {X: math.NaN()}, {Y: math.Inf(1)}} {
		if _, err := BondDirections(4, up); !errors.Is(err, ErrDegenerate) {
			Te.Errorf("up %v gave %v", up, err)
		}
	}
}

func TestSphericalToCartesian(Te *testing.T) {
	v := SphericalToCartesian(0, 90*Deg2Rad)
	if r3.Norm(r3.Sub(v, r3.Vec{X: 1})) > 1e-12 {
		Te.Errorf("expected +x, got %v", v)
	}
	v = SphericalToCartesian(90*Deg2Rad, 90*Deg2Rad)
	if r3.Norm(r3.Sub(v, r3.Vec{Y: 1})) > 1e-12 {
		Te.Errorf("expected +y, got %v", v)
	}
}
