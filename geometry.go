/*
 * geometry.go, part of molbuild.
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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

const tetrahedral = 109.47122063449069 //acos(-1/3), in degrees

const (
	MinCoordination = 1
	MaxCoordination = 6
)

// bondGeometry contains, for each coordination number k, k pairs of
// (azimuthal, polar) angles in degrees. The first direction is always
// the +z axis.
var bondGeometry = [MaxCoordination + 1][][2]float64{
	0: nil,
	1: {{0, 0}},
	2: {{0, 0}, {0, 180}},
	3: {{0, 0}, {0, 120}, {180, 120}},
	4: {{0, 0}, {0, tetrahedral}, {120, tetrahedral}, {240, tetrahedral}},
	5: {{0, 0}, {0, 180}, {0, 90}, {120, 90}, {240, 90}},
	6: {{0, 0}, {0, 180}, {0, 90}, {90, 90}, {180, 90}, {270, 90}},
}

func checkCoordination(k int, caller string) error {
	if k < MinCoordination || k > MaxCoordination {
		return newCError(ErrCoordination, caller, "no bond geometry for coordination number %d (valid: %d-%d)", k, MinCoordination, MaxCoordination)
	}
	if len(bondGeometry[k]) != k {
		panic(ErrTableShape)
	}
	return nil
}

// SphericalAngles returns a copy of the (azimuthal, polar) pairs, in radians,
// for coordination number k.
func SphericalAngles(k int) ([][2]float64, error) {
	if err := checkCoordination(k, "SphericalAngles"); err != nil {
		return nil, err
	}
	ret := make([][2]float64, k)
	for i, v := range bondGeometry[k] {
		ret[i] = [2]float64{v[0] * Deg2Rad, v[1] * Deg2Rad}
	}
	return ret, nil
}

// SphericalToCartesian returns the unit vector with azimuthal angle az
// and polar angle pol (radians).
func SphericalToCartesian(az, pol float64) r3.Vec {
	sa, ca := math.Sincos(az)
	sp, cp := math.Sincos(pol)
	return r3.Vec{X: ca * sp, Y: sa * sp, Z: cp}
}

// RotatorToUp returns the rotation that takes the +z axis onto the direction
// of up. up needs not be normalized, but it can't be zero or contain NaNs/Infs.
func RotatorToUp(up r3.Vec) (r3.Rotation, error) {
	if !finite(up) {
		return r3.Rotation{}, newCError(ErrDegenerate, "RotatorToUp", "non-finite up vector %v", up)
	}
	n := r3.Norm(up)
	if n <= appzero {
		return r3.Rotation{}, newCError(ErrDegenerate, "RotatorToUp", "zero up vector")
	}
	u := r3.Scale(1/n, up)
	z := r3.Vec{Z: 1}
	c := r3.Dot(z, u)
	switch {
	case c >= 1-appzero:
		return r3.NewRotation(0, z), nil
	case c <= -1+appzero:
		//any axis perpendicular to z will do.
		return r3.NewRotation(math.Pi, r3.Vec{X: 1}), nil
	}
	axis := r3.Cross(z, u)
	return r3.NewRotation(math.Acos(c), axis), nil
}

// BondDirections returns the k unit vectors of the idealized geometry for
// coordination number k, oriented so the first one points along up.
func BondDirections(k int, up r3.Vec) ([]r3.Vec, error) {
	angles, err := SphericalAngles(k)
	if err != nil {
		return nil, errDecorate(err, "BondDirections")
	}
	rot, err := RotatorToUp(up)
	if err != nil {
		return nil, errDecorate(err, "BondDirections")
	}
	ret := make([]r3.Vec, k)
	for i, v := range angles {
		ret[i] = r3.Unit(rot.Rotate(SphericalToCartesian(v[0], v[1])))
	}
	return ret, nil
}

func finite(v r3.Vec) bool {
	for _, f := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
