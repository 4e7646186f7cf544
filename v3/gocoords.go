/*
 * gocoords.go, part of molbuild.
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

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Matrix is a set of vectors in 3D space, one per row.
// Within the package it is understood that a "vector" is a row vector, i.e. the
// cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// Dense2Matrix wraps a Dense with 3 columns. It panics otherwise.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return nil, Error{"empty input slice", []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// FromVecs returns a Matrix with one row per element of vecs.
func FromVecs(vecs []r3.Vec) *Matrix {
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v)
	}
	return F
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is the same as NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// VecView returns a view of the ith vector of the matrix.
// Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

// Vec returns the ith vector of F.
func (F *Matrix) Vec(i int) r3.Vec {
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

// AddToVec adds v to the ith vector of F.
func (F *Matrix) AddToVec(i int, v r3.Vec) {
	F.SetVec(i, r3.Add(F.Vec(i), v))
}

// Vecs returns all the vectors of F as a slice.
func (F *Matrix) Vecs() []r3.Vec {
	ret := make([]r3.Vec, F.NVecs())
	for i := range ret {
		ret[i] = F.Vec(i)
	}
	return ret
}

// AddVec adds vec to each vector of A, putting the result on the receiver.
// Panics if matrices are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.Vec(0)
	for i := 0; i < ar; i++ {
		F.SetVec(i, r3.Add(A.Vec(i), v))
	}
}

// SubVec subtracts vec from each vector of A, putting the result on the receiver.
// Panics if matrices are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.Vec(0)
	for i := 0; i < ar; i++ {
		F.SetVec(i, r3.Sub(A.Vec(i), v))
	}
}

// Unit puts in the receiver the normalized vectors of A. Zero vectors
// are left as zero.
func (F *Matrix) Unit(A *Matrix) {
	if A.Dense != F.Dense {
		F.Copy(A)
	}
	for i := 0; i < F.NVecs(); i++ {
		v := F.Vec(i)
		n := r3.Norm(v)
		if n <= appzero {
			F.SetVec(i, r3.Vec{})
			continue
		}
		F.SetVec(i, r3.Scale(1/n, v))
	}
}

// VecNorms returns the euclidean norm of each vector of F.
func (F *Matrix) VecNorms() []float64 {
	ret := make([]float64, F.NVecs())
	row := make([]float64, 3)
	for i := range ret {
		mat.Row(row, i, F)
		ret[i] = floats.Norm(row, 2)
	}
	return ret
}

// MaxVecNorm returns the largest euclidean norm among the vectors of F,
// and the index of that vector. It returns -1 as index for an empty matrix.
func (F *Matrix) MaxVecNorm() (float64, int) {
	if F.IsEmpty() {
		return 0, -1
	}
	norms := F.VecNorms()
	i := floats.MaxIdx(norms)
	return norms[i], i
}

// SumSquares returns the sum of the squares of all elements of F.
func (F *Matrix) SumSquares() float64 {
	n := mat.Norm(F, 2) //Frobenius
	return n * n
}

// IsFinite returns whether all elements of F are finite.
func (F *Matrix) IsFinite() bool {
	r, c := F.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := F.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}
