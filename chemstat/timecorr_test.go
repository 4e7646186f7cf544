/*
 * timecorr_test.go, part of molbuild.
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

package chemstat

import (
	"math"
	"testing"

	"github.com/rmera/molbuild/relax"
)

func direct(c1, c2 []float64, lag int) float64 {
	n := len(c1)
	var m1, m2 float64
	for i := range c1 {
		m1 += c1[i] / float64(n)
		m2 += c2[i] / float64(n)
	}
	var s, n1, n2 float64
	for i := range c1 {
		n1 += (c1[i] - m1) * (c1[i] - m1)
		n2 += (c2[i] - m2) * (c2[i] - m2)
		if i+lag < n {
			s += (c1[i+lag] - m1) * (c2[i] - m2)
		}
	}
	return s / math.Sqrt(n1*n2)
}

func TestAutoCorrelation(Te *testing.T) {
	c := []float64{1, 3, 2, 5, 4, 4, 0, 1, 2, 7, 3}
	ac, err := AutoCorrelation(c)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ac) != len(c) {
		Te.Fatalf("expected %d lags, got %d", len(c), len(ac))
	}
	if math.Abs(ac[0]-1) > 1e-9 {
		Te.Errorf("lag 0 should be 1, got %g", ac[0])
	}
	for lag, v := range ac {
		if d := direct(c, c, lag); math.Abs(d-v) > 1e-9 {
			Te.Errorf("lag %d: FFT gave %g, direct sum %g", lag, v, d)
		}
	}
}

func TestCrossCorrelationErrors(Te *testing.T) {
	if _, err := CrossCorrelation([]float64{1, 2}, []float64{1, 2, 3}); err == nil {
		Te.Error("accepted series of different lengths")
	}
	if _, err := AutoCorrelation([]float64{2, 2, 2}); err == nil {
		Te.Error("accepted a constant series")
	}
	if _, err := AutoCorrelation([]float64{2}); err == nil {
		Te.Error("accepted a single point")
	}
}

func TestOscillating(Te *testing.T) {
	h := relax.NewHistory(0)
	g := relax.NewHistory(0)
	for i := 0; i < 64; i++ {
		h.Add(relax.Stats{Kinetic: 1 + math.Cos(float64(i)*math.Pi/4)})
		g.Add(relax.Stats{Kinetic: math.Exp(-float64(i) / 10)})
	}
	kinetic := func(s relax.Stats) float64 { return s.Kinetic }
	if !Oscillating(h, kinetic, 0.5) {
		Te.Error("a cosine was not seen as oscillating")
	}
	if Oscillating(g, kinetic, 0.5) {
		Te.Error("an exponential decay was seen as oscillating")
	}
	if Oscillating(relax.NewHistory(0), kinetic, 0.5) {
		Te.Error("an empty history was seen as oscillating")
	}
}
