/*
 * histo.go, part of molbuild.
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

// Package histo builds histograms of the geometry of a molecule, such as
// its bond lengths. They are a quick way of telling whether a relaxation
// went well.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts values in the bins defined by a sorted slice of dividers.
// Bin i holds the values v with dividers[i] <= v < dividers[i+1]. Values out of
// range are not counted, but they are remembered in Omitted.
type Histogram struct {
	normalized bool
	total      int
	omitted    int
	dividers   []float64
	histo      []float64
}

// New returns an empty histogram with the given dividers, which must be at least
// 2, sorted and finite.
func New(dividers []float64) (*Histogram, error) {
	if len(dividers) < 2 {
		return nil, fmt.Errorf("histo: at least 2 dividers are needed, got %d", len(dividers))
	}
	for _, v := range dividers {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("histo: non-finite divider %g", v)
		}
	}
	if !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("histo: dividers are not sorted")
	}
	H := new(Histogram)
	//copied so nobody can change it from outside
	H.dividers = append([]float64(nil), dividers...)
	H.histo = make([]float64, len(dividers)-1)
	return H, nil
}

// Uniform returns the n+1 dividers of n equal bins between min and max.
func Uniform(min, max float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	return floats.Span(make([]float64, n+1), min, max)
}

// Fill replaces the contents of the histogram with the counts of rawdata, which
// is not modified.
func (H *Histogram) Fill(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram panics on values out of range, instead of omitting them.
	maxi := sort.SearchFloat64s(data, H.dividers[len(H.dividers)-1])
	mini := sort.SearchFloat64s(data, H.dividers[0])
	in := data[mini:maxi]
	H.total = len(in)
	H.omitted = len(data) - len(in)
	H.normalized = false
	H.histo = stat.Histogram(nil, H.dividers, in, nil)
}

// Add counts the given values.
func (H *Histogram) Add(point ...float64) {
	norma := H.normalized
	if norma {
		H.UnNormalize()
	}
	last := len(H.dividers) - 1
	for _, v := range point {
		if !(v >= H.dividers[0] && v < H.dividers[last]) {
			H.omitted++
			continue
		}
		//first divider larger than v, v goes in the bin before.
		j := sort.Search(len(H.dividers), func(i int) bool { return H.dividers[i] > v })
		H.histo[j-1]++
		H.total++
	}
	if norma {
		H.Normalize()
	}
}

// Total returns the number of values counted.
func (H *Histogram) Total() int { return H.total }

// Omitted returns the number of values that fell outside the dividers.
func (H *Histogram) Omitted() int { return H.omitted }

// Normalized returns true if the histogram is normalized.
func (H *Histogram) Normalized() bool { return H.normalized }

// Normalize scales the bins so they add up to 1.
func (H *Histogram) Normalize() { H.normaunnorma(true) }

// UnNormalize turns the bins back into counts.
func (H *Histogram) UnNormalize() { H.normaunnorma(false) }

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	if normalize {
		n = 1 / n
	}
	H.normalized = normalize
	floats.Scale(n, H.histo)
}

// Dividers returns a copy of the dividers.
func (H *Histogram) Dividers() []float64 {
	return append([]float64(nil), H.dividers...)
}

// Bins returns a copy of the bins.
func (H *Histogram) Bins() []float64 {
	return append([]float64(nil), H.histo...)
}

// Mode returns the center of the most populated bin.
func (H *Histogram) Mode() float64 {
	i := floats.MaxIdx(H.histo)
	return 0.5 * (H.dividers[i] + H.dividers[i+1])
}

// String returns a 2-line representation: the bin ranges, and their contents.
func (H *Histogram) String() string {
	d := make([]string, 0, len(H.histo))
	h := make([]string, 0, len(H.histo))
	for i, v := range H.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

type jsonHistogram struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Omitted    int       `json:"omitted"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (H *Histogram) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonHistogram{
		Normalized: H.normalized,
		Total:      H.total,
		Omitted:    H.omitted,
		Dividers:   H.dividers,
		Histo:      H.histo,
	})
}

func (H *Histogram) UnmarshalJSON(b []byte) error {
	var a jsonHistogram
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("histo: malformed histogram with %d dividers and %d bins", len(a.Dividers), len(a.Histo))
	}
	H.normalized = a.Normalized
	H.total = a.Total
	H.omitted = a.Omitted
	H.dividers = a.Dividers
	H.histo = a.Histo
	return nil
}
