/*
 * relaxplot.go, part of molbuild.
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

// Package chemplot draws plots of relaxation runs. It is a debugging aid:
// it shows whether the forces die out, and how fast.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rmera/molbuild/relax"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series selects a quantity from the Stats of a step.
type Series struct {
	Name  string
	Value func(relax.Stats) float64
	Color color.RGBA
}

// DefaultSeries are the largest force, the RMS force and the kinetic energy.
var DefaultSeries = []Series{
	{Name: "max force", Value: func(s relax.Stats) float64 { return s.MaxForce }, Color: color.RGBA{R: 200, A: 255}},
	{Name: "rms force", Value: func(s relax.Stats) float64 { return s.RMSForce }, Color: color.RGBA{B: 200, A: 255}},
	{Name: "kinetic", Value: func(s relax.Stats) float64 { return s.Kinetic }, Color: color.RGBA{G: 160, A: 255}},
}

// RelaxPlot returns a plot of the given series along the steps of h.
// If logy is true, the values are plotted in a logarithmic scale, and
// non-positive values are skipped.
func RelaxPlot(h *relax.History, title string, logy bool, series ...Series) (*plot.Plot, error) {
	if h == nil || h.Len() == 0 {
		return nil, fmt.Errorf("chemplot: empty relaxation history")
	}
	if len(series) == 0 {
		series = DefaultSeries
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Value"
	if logy {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	steps := h.Steps()
	lines := 0
	for _, s := range series {
		pts := make(plotter.XYs, 0, len(steps))
		for _, st := range steps {
			v := s.Value(st)
			if math.IsNaN(v) || math.IsInf(v, 0) || (logy && v <= 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(st.Step), Y: v})
		}
		if len(pts) == 0 {
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = s.Color
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
		p.Legend.Add(s.Name, l)
		lines++
	}
	if lines == 0 {
		return nil, fmt.Errorf("chemplot: nothing to plot")
	}
	return p, nil
}

// RelaxPlotFile saves a plot of the default series of h in the file plotname.png.
func RelaxPlotFile(h *relax.History, title, plotname string, logy bool) error {
	p, err := RelaxPlot(h, title, logy)
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("%s.png", plotname)
	//here I  intentionally shadow err.
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
