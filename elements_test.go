/*
 * elements_test.go, part of molbuild.
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
	"image/color"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestElementLookup(Te *testing.T) {
	for n, sym := range map[int]string{1: "H", 6: "C", 26: "Fe", 79: "Au", 118: "Og"} {
		e, err := ElementFromAtomicNumber(n)
		if err != nil {
			Te.Fatal(err)
		}
		if e.Symbol() != sym || e.AtomicNumber() != n {
			Te.Errorf("element %d: expected %s, got %s", n, sym, e.Symbol())
		}
		back, err := ElementFromSymbol(sym)
		if err != nil || back != e {
			Te.Errorf("symbol %s gave %v, %v", sym, back, err)
		}
	}
	for _, n := range []int{0, -1, 119, 255} {
		if _, err := ElementFromAtomicNumber(n); !errors.Is(err, ErrElement) {
			Te.Errorf("atomic number %d gave %v", n, err)
		}
	}
	if _, err := ElementFromSymbol("FE"); err == nil {
		Te.Error("symbols should be case sensitive")
	}
	if Element(0).Valid() || Element(0).Symbol() != "X" || Element(200).String() != "Element(200)" {
		Te.Error("invalid elements are not reported as such")
	}
}

func TestElementSymbolsComplete(Te *testing.T) {
	seen := make(map[string]Element)
	for e := MinElement; e <= MaxElement; e++ {
		s := e.Symbol()
		if s == "" || s == "X" {
			Te.Errorf("element %d has no symbol", e)
		}
		if o, ok := seen[s]; ok {
			Te.Errorf("symbol %s used by %d and %d", s, o, e)
		}
		seen[s] = e
	}
}

func TestElementRepr(Te *testing.T) {
	c := Carbon.Repr()
	if c.Radius != 1.7 || c.Color.A != 255 {
		Te.Errorf("unexpected carbon representation %v", c)
	}
	g := Gold.Repr()
	if g.Radius != 1 || g.Color != (color.RGBA{A: 255}) {
		Te.Errorf("elements without data should be black with radius 1, got %v", g)
	}
	if Hydrogen.Coordination() != 1 || Carbon.Coordination() != 4 || Gold.Coordination() != DefaultCoordination {
		Te.Error("wrong element coordination numbers")
	}
	if NewBondingSite(r3.Vec{}).Repr() != BondingSiteRepr {
		Te.Error("bonding sites should use their own representation")
	}
}
