/*
 * options.go, part of molbuild.
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

package relax

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Options contains the parameters of the relaxation. They can be read from
// a TOML file, where each field is a key with the name given in its tag.
// Keys not present keep their default values.
type Options struct {
	SpringConstant float64 `toml:"spring_constant"` //stiffness of bonds
	RestLength     float64 `toml:"rest_length"`     //equilibrium bond length
	StepGain       float64 `toml:"step_gain"`       //velocity change per unit force, per step
	TimeScale      float64 `toml:"time_scale"`      //position change per unit velocity, per step
	Damping        float64 `toml:"damping"`         //velocity is multiplied by this after each step
	DrawBonds      bool    `toml:"draw_bonds"`      //emit a debug segment per bond on each step
}

// DefaultOptions returns the standard relaxation parameters.
func DefaultOptions() *Options {
	return &Options{
		SpringConstant: 2.0,
		RestLength:     1.0,
		StepGain:       0.1,
		TimeScale:      0.01,
		Damping:        0.9,
		DrawBonds:      true,
	}
}

// Validate returns an error if the options can't produce a sensible
// relaxation.
func (O *Options) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"spring_constant", O.SpringConstant},
		{"rest_length", O.RestLength},
		{"step_gain", O.StepGain},
		{"time_scale", O.TimeScale},
		{"damping", O.Damping},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("relax: %s is not finite", f.name)
		}
	}
	if O.SpringConstant < 0 {
		return fmt.Errorf("relax: negative spring_constant %g", O.SpringConstant)
	}
	if O.RestLength <= 0 {
		return fmt.Errorf("relax: rest_length must be positive, got %g", O.RestLength)
	}
	if O.StepGain <= 0 || O.TimeScale <= 0 {
		return fmt.Errorf("relax: step_gain and time_scale must be positive, got %g and %g", O.StepGain, O.TimeScale)
	}
	if O.Damping < 0 || O.Damping > 1 {
		return fmt.Errorf("relax: damping must be in [0,1], got %g", O.Damping)
	}
	return nil
}

// DecodeOptions reads options in TOML format from r. Keys that are not
// options are an error.
func DecodeOptions(r io.Reader) (*Options, error) {
	O := DefaultOptions()
	md, err := toml.NewDecoder(r).Decode(O)
	if err != nil {
		return nil, fmt.Errorf("relax: decoding options: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := O.Validate(); err != nil {
		return nil, err
	}
	return O, nil
}

// LoadOptions reads options from the TOML file path.
func LoadOptions(path string) (*Options, error) {
	O := DefaultOptions()
	md, err := toml.DecodeFile(path, O)
	if err != nil {
		return nil, fmt.Errorf("relax: reading options from %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := O.Validate(); err != nil {
		return nil, err
	}
	return O, nil
}

func checkUndecoded(md toml.MetaData) error {
	und := md.Undecoded()
	if len(und) == 0 {
		return nil
	}
	keys := make([]string, len(und))
	for i, k := range und {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("relax: unknown option(s): %s", strings.Join(keys, ", "))
}
