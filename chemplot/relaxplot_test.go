/*
 * relaxplot_test.go, part of molbuild.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/molbuild"
	"github.com/rmera/molbuild/relax"
	"gonum.org/v1/plot/vg"
)

func history(Te *testing.T) *relax.History {
	m, err := molbuild.NewMolecule(nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := m.ActivateSite(m.Sites()[0]); err != nil {
			Te.Fatal(err)
		}
	}
	h, err := relax.Run(m.Graph(), nil, nil, 50)
	if err != nil {
		Te.Fatal(err)
	}
	return h
}

func TestRelaxPlotFile(Te *testing.T) {
	h := history(Te)
	name := filepath.Join(Te.TempDir(), "relax")
	if err := RelaxPlotFile(h, "C4 relaxation", name, true); err != nil {
		Te.Fatal(err)
	}
	if st, err := os.Stat(name + ".png"); err != nil || st.Size() == 0 {
		Te.Errorf("plot not written: %v", err)
	}
}

func TestRelaxPlotTitle(Te *testing.T) {
	p, err := RelaxPlot(history(Te), "C4", false)
	if err != nil {
		Te.Fatal(err)
	}
	if p.Title.Text != "C4" || p.Title.Padding != 3*vg.Millimeter {
		Te.Errorf("wrong title %q, padding %v", p.Title.Text, p.Title.Padding)
	}
}

func TestRelaxPlotEmpty(Te *testing.T) {
	if _, err := RelaxPlot(relax.NewHistory(0), "nothing", false); err == nil {
		Te.Error("plotted an empty history")
	}
}
