/*
 * timecorr.go, part of molbuild.
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

// Package chemstat has statistics over relaxation histories. Its main use
// is telling a relaxation that is settling down from one that oscillates.
package chemstat

import (
	"fmt"

	"github.com/rmera/molbuild/relax"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series returns the values of f over the steps recorded in h, oldest first.
func Series(h *relax.History, f func(relax.Stats) float64) []float64 {
	steps := h.Steps()
	ret := make([]float64, len(steps))
	for i, s := range steps {
		ret[i] = f(s)
	}
	return ret
}

func cmplxMulConj(dst, b []complex128) {
	for i, v := range dst {
		dst[i] = v * complex(real(b[i]), -imag(b[i]))
	}
}

// CrossCorrelation returns the normalized cross-correlation of c1 and c2,
// which must have the same length, for lags 0 to len(c1)-1. The series are padded
// to twice their length before the FFT, so there is no wrap-around.
// For c1 == c2, this is the autocorrelation, and the value at lag 0 is 1.
// A constant series has no defined correlation, and gives an error.
func CrossCorrelation(c1, c2 []float64) ([]float64, error) {
	n := len(c1)
	if n != len(c2) {
		return nil, fmt.Errorf("chemstat: series of different lengths %d and %d", n, len(c2))
	}
	if n < 2 {
		return nil, fmt.Errorf("chemstat: at least 2 points are needed, got %d", n)
	}
	c1mean := stat.Mean(c1, nil)
	c2mean := stat.Mean(c2, nil)
	c1pad := make([]complex128, 2*n)
	c2pad := make([]complex128, 2*n)
	d1 := make([]float64, n)
	d2 := make([]float64, n)
	for i := range c1 {
		d1[i] = c1[i] - c1mean
		d2[i] = c2[i] - c2mean
		c1pad[i] = complex(d1[i], 0)
		c2pad[i] = complex(d2[i], 0)
	}
	norm := floats.Norm(d1, 2) * floats.Norm(d2, 2)
	if norm == 0 {
		return nil, fmt.Errorf("chemstat: constant series have no correlation")
	}
	f := fourier.NewCmplxFFT(len(c1pad))
	f.Coefficients(c1pad, c1pad)
	f.Coefficients(c2pad, c2pad)
	cmplxMulConj(c1pad, c2pad)
	f.Sequence(c1pad, c1pad)
	ret := make([]float64, n)
	//Sequence is not normalized, hence the 1/len(c1pad).
	for i, v := range c1pad[:n] {
		ret[i] = real(v) / float64(len(c1pad)) / norm
	}
	return ret, nil
}

// AutoCorrelation is CrossCorrelation(c, c).
func AutoCorrelation(c []float64) ([]float64, error) {
	return CrossCorrelation(c, c)
}

// Oscillating reports whether the series f over h looks oscillatory: whether its
// autocorrelation goes below -threshold at some lag. Histories too short, or
// constant, are not oscillating.
func Oscillating(h *relax.History, f func(relax.Stats) float64, threshold float64) bool {
	ac, err := AutoCorrelation(Series(h, f))
	if err != nil {
		return false
	}
	//the last lags have too few points to mean anything.
	for _, v := range ac[:len(ac)/2+1] {
		if v < -threshold {
			return true
		}
	}
	return false
}
