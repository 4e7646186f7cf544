/*
 * elements.go, part of molbuild.
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

import "fmt"

// Element is a chemical element, identified by its atomic number.
type Element uint8

// The elements, Hydrogen (1) to Oganesson (118).
const (
	Hydrogen Element = iota + 1
	Helium
	Lithium
	Beryllium
	Boron
	Carbon
	Nitrogen
	Oxygen
	Fluorine
	Neon
	Sodium
	Magnesium
	Aluminium
	Silicon
	Phosphorus
	Sulfur
	Chlorine
	Argon
	Potassium
	Calcium
	Scandium
	Titanium
	Vanadium
	Chromium
	Manganese
	Iron
	Cobalt
	Nickel
	Copper
	Zinc
	Gallium
	Germanium
	Arsenic
	Selenium
	Bromine
	Krypton
	Rubidium
	Strontium
	Yttrium
	Zirconium
	Niobium
	Molybdenum
	Technetium
	Ruthenium
	Rhodium
	Palladium
	Silver
	Cadmium
	Indium
	Tin
	Antimony
	Tellurium
	Iodine
	Xenon
	Cesium
	Barium
	Lanthanum
	Cerium
	Praseodymium
	Neodymium
	Promethium
	Samarium
	Europium
	Gadolinium
	Terbium
	Dysprosium
	Holmium
	Erbium
	Thulium
	Ytterbium
	Lutetium
	Hafnium
	Tantalum
	Tungsten
	Rhenium
	Osmium
	Iridium
	Platinum
	Gold
	Mercury
	Thallium
	Lead
	Bismuth
	Polonium
	Astatine
	Radon
	Francium
	Radium
	Actinium
	Thorium
	Protactinium
	Uranium
	Neptunium
	Plutonium
	Americium
	Curium
	Berkelium
	Californium
	Einsteinium
	Fermium
	Mendelevium
	Nobelium
	Lawrencium
	Rutherfordium
	Dubnium
	Seaborgium
	Bohrium
	Hassium
	Meitnerium
	Darmstadtium
	Roentgenium
	Copernicium
	Nihonium
	Flerovium
	Moscovium
	Livermorium
	Tennessine
	Oganesson
)

const (
	MinElement = Hydrogen
	MaxElement = Oganesson
)

// ElementFromAtomicNumber returns the element with atomic number n.
func ElementFromAtomicNumber(n int) (Element, error) {
	if n < int(MinElement) || n > int(MaxElement) {
		return 0, newCError(ErrElement, "ElementFromAtomicNumber", "no element with atomic number %d", n)
	}
	return Element(n), nil
}

// ElementFromSymbol returns the element with the given chemical symbol.
// The comparison is case sensitive ("Fe", not "FE").
func ElementFromSymbol(s string) (Element, error) {
	for i := MinElement; i <= MaxElement; i++ {
		if elementSymbol[i] == s {
			return i, nil
		}
	}
	return 0, newCError(ErrElement, "ElementFromSymbol", "unknown element symbol %q", s)
}

// Valid returns whether E is one of the 118 known elements.
func (E Element) Valid() bool {
	return E >= MinElement && E <= MaxElement
}

// AtomicNumber returns the atomic number of E.
func (E Element) AtomicNumber() int {
	return int(E)
}

// Symbol returns the chemical symbol of E, or "X" for an invalid element.
func (E Element) Symbol() string {
	if !E.Valid() {
		return "X"
	}
	return elementSymbol[E]
}

func (E Element) String() string {
	if !E.Valid() {
		return fmt.Sprintf("Element(%d)", uint8(E))
	}
	return elementSymbol[E]
}

var elementSymbol = [...]string{
	Hydrogen:      "H",
	Helium:        "He",
	Lithium:       "Li",
	Beryllium:     "Be",
	Boron:         "B",
	Carbon:        "C",
	Nitrogen:      "N",
	Oxygen:        "O",
	Fluorine:      "F",
	Neon:          "Ne",
	Sodium:        "Na",
	Magnesium:     "Mg",
	Aluminium:     "Al",
	Silicon:       "Si",
	Phosphorus:    "P",
	Sulfur:        "S",
	Chlorine:      "Cl",
	Argon:         "Ar",
	Potassium:     "K",
	Calcium:       "Ca",
	Scandium:      "Sc",
	Titanium:      "Ti",
	Vanadium:      "V",
	Chromium:      "Cr",
	Manganese:     "Mn",
	Iron:          "Fe",
	Cobalt:        "Co",
	Nickel:        "Ni",
	Copper:        "Cu",
	Zinc:          "Zn",
	Gallium:       "Ga",
	Germanium:     "Ge",
	Arsenic:       "As",
	Selenium:      "Se",
	Bromine:       "Br",
	Krypton:       "Kr",
	Rubidium:      "Rb",
	Strontium:     "Sr",
	Yttrium:       "Y",
	Zirconium:     "Zr",
	Niobium:       "Nb",
	Molybdenum:    "Mo",
	Technetium:    "Tc",
	Ruthenium:     "Ru",
	Rhodium:       "Rh",
	Palladium:     "Pd",
	Silver:        "Ag",
	Cadmium:       "Cd",
	Indium:        "In",
	Tin:           "Sn",
	Antimony:      "Sb",
	Tellurium:     "Te",
	Iodine:        "I",
	Xenon:         "Xe",
	Cesium:        "Cs",
	Barium:        "Ba",
	Lanthanum:     "La",
	Cerium:        "Ce",
	Praseodymium:  "Pr",
	Neodymium:     "Nd",
	Promethium:    "Pm",
	Samarium:      "Sm",
	Europium:      "Eu",
	Gadolinium:    "Gd",
	Terbium:       "Tb",
	Dysprosium:    "Dy",
	Holmium:       "Ho",
	Erbium:        "Er",
	Thulium:       "Tm",
	Ytterbium:     "Yb",
	Lutetium:      "Lu",
	Hafnium:       "Hf",
	Tantalum:      "Ta",
	Tungsten:      "W",
	Rhenium:       "Re",
	Osmium:        "Os",
	Iridium:       "Ir",
	Platinum:      "Pt",
	Gold:          "Au",
	Mercury:       "Hg",
	Thallium:      "Tl",
	Lead:          "Pb",
	Bismuth:       "Bi",
	Polonium:      "Po",
	Astatine:      "At",
	Radon:         "Rn",
	Francium:      "Fr",
	Radium:        "Ra",
	Actinium:      "Ac",
	Thorium:       "Th",
	Protactinium:  "Pa",
	Uranium:       "U",
	Neptunium:     "Np",
	Plutonium:     "Pu",
	Americium:     "Am",
	Curium:        "Cm",
	Berkelium:     "Bk",
	Californium:   "Cf",
	Einsteinium:   "Es",
	Fermium:       "Fm",
	Mendelevium:   "Md",
	Nobelium:      "No",
	Lawrencium:    "Lr",
	Rutherfordium: "Rf",
	Dubnium:       "Db",
	Seaborgium:    "Sg",
	Bohrium:       "Bh",
	Hassium:       "Hs",
	Meitnerium:    "Mt",
	Darmstadtium:  "Ds",
	Roentgenium:   "Rg",
	Copernicium:   "Cn",
	Nihonium:      "Nh",
	Flerovium:     "Fl",
	Moscovium:     "Mc",
	Livermorium:   "Lv",
	Tennessine:    "Ts",
	Oganesson:     "Og",
}
