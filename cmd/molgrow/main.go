/*
 * main.go, part of molbuild.
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

// molgrow grows a molecule from a seed atom without any display, by
// repeatedly activating bonding sites and relaxing the result. It prints
// a summary of what it built, and can plot the relaxation.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rmera/molbuild"
	"github.com/rmera/molbuild/align"
	"github.com/rmera/molbuild/chemgraph"
	"github.com/rmera/molbuild/chemplot"
	"github.com/rmera/molbuild/chemstat"
	"github.com/rmera/molbuild/clash"
	"github.com/rmera/molbuild/histo"
	"github.com/rmera/molbuild/relax"
	"github.com/rmera/molbuild/workspace"
	"github.com/spf13/cobra"
)

var (
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
	subtle = color.New(color.FgHiBlack)
	brand  = color.New(color.FgHiCyan, color.Bold)
)

type flags struct {
	grow         int
	steps        int
	relaxEvery   int
	config       string
	plot         string
	element      string
	coordination int
	verbose      bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:          "molgrow",
		Short:        "Grow and relax a molecule from a seed atom",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}
	cmd.Flags().IntVarP(&f.grow, "grow", "g", 1, "number of bonding sites to activate")
	cmd.Flags().IntVarP(&f.steps, "steps", "n", 500, "relaxation steps after growing")
	cmd.Flags().IntVar(&f.relaxEvery, "relax-every", 10, "relaxation steps after each activation")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "TOML file with the relaxation options")
	cmd.Flags().StringVarP(&f.plot, "plot", "p", "", "save a plot of the relaxation to this file (.png is appended)")
	cmd.Flags().StringVarP(&f.element, "element", "e", "C", "element symbol of the new atoms")
	cmd.Flags().IntVarP(&f.coordination, "coordination", "k", 0, "coordination number of the new atoms (0: from the element)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log failed operations")
	return cmd
}

func run(f *flags) error {
	if f.grow < 0 || f.steps < 0 || f.relaxEvery < 0 {
		return fmt.Errorf("molgrow: negative counts are not allowed")
	}
	ro := relax.DefaultOptions()
	if f.config != "" {
		var err error
		ro, err = relax.LoadOptions(f.config)
		if err != nil {
			bad.Printf("  Failed to read %s: %v\n", f.config, err)
			return err
		}
	}
	e, err := molbuild.ElementFromSymbol(f.element)
	if err != nil {
		bad.Printf("  %v\n", err)
		return err
	}
	mo := molbuild.DefaultOptions()
	mo.Element(e)
	mo.Coordination(f.coordination)

	W := workspace.New(nil, nil, ro)
	if !f.verbose {
		W.SetLogger(log.New(io.Discard, "", 0))
	}
	m, err := W.NewMolecule(mo)
	if err != nil {
		bad.Printf("  Failed to create the seed: %v\n", err)
		return err
	}
	next := m.Sites()
	for i := 0; i < f.grow; i++ {
		if len(next) == 0 {
			next = m.Sites()
		}
		if len(next) == 0 {
			subtle.Printf("  No bonding sites left after %d activations\n", i)
			break
		}
		site := next[0]
		pos, err := m.Position(site)
		if err != nil {
			return err
		}
		edit, err := W.Activate(m.Ref(site), pos)
		if err != nil {
			bad.Printf("  Activation %d failed: %v\n", i+1, err)
			return err
		}
		next = edit.Sites
		for j := 0; j < f.relaxEvery; j++ {
			if err := W.Step(); err != nil {
				return err
			}
		}
	}
	_, grown := align.Atoms(m.Graph())
	for i := 0; i < f.steps; i++ {
		if err := W.Step(); err != nil {
			bad.Printf("  Relaxation failed: %v\n", err)
			return err
		}
	}
	summary(m, W.History(m.ID()))
	if _, relaxed := align.Atoms(m.Graph()); grown != nil && f.steps > 0 {
		if r, err := align.SuperRMSD(relaxed, grown); err == nil {
			fmt.Printf("  Shape change:   %.4f A RMSD after superposition\n", r)
		}
	}
	if f.plot != "" {
		if err := chemplot.RelaxPlotFile(W.History(m.ID()), m.Formula(), f.plot, true); err != nil {
			bad.Printf("  Failed to plot: %v\n", err)
			return err
		}
		good.Printf("  Plot written to %s.png\n", f.plot)
	}
	return nil
}

func summary(m *molbuild.Molecule, h *relax.History) {
	g := m.Graph()
	atoms, sites := g.Count()
	fmt.Printf("%s %s\n\n", brand.Sprint("molgrow"), m.Formula())
	fmt.Printf("  Atoms:          %d\n", atoms)
	fmt.Printf("  Bonding sites:  %d\n", sites)
	fmt.Printf("  Bonds:          %d\n", g.EdgeCount())
	if c := chemgraph.Components(g); len(c) == 1 {
		good.Println("  Connected:      yes")
	} else {
		bad.Printf("  Connected:      no (%d components)\n", len(c))
	}
	if err := molbuild.CheckInvariants(g); err != nil {
		bad.Printf("  Invariants:     %v\n", err)
	} else {
		good.Println("  Invariants:     ok")
	}
	if s, ok := h.Last(); ok {
		fmt.Printf("  Steps:          %d\n", h.Total())
		fmt.Printf("  Last step:      %s\n", s)
		if h.Converged(1e-3) {
			good.Println("  Converged:      yes")
		} else {
			subtle.Println("  Converged:      no")
		}
		if chemstat.Oscillating(h, func(s relax.Stats) float64 { return s.Kinetic }, 0.5) {
			bad.Println("  Oscillating:    yes (try a larger damping)")
		}
	}
	if ov := clash.Overlaps(g, nil); len(ov) > 0 {
		bad.Printf("  Clashes:        %d, worst %s\n", len(ov), ov[0])
	} else {
		good.Println("  Clashes:        none")
	}
	for _, c := range []histo.BondClass{histo.AtomAtom, histo.AtomSite} {
		b, err := histo.Bonds(g, c, histo.Uniform(0, 3, 12))
		if err != nil || b.N == 0 {
			continue
		}
		fmt.Printf("  %s\n", b)
		subtle.Println(indent(b.Histogram.String()))
	}
	for _, id := range m.Atoms() {
		p, _ := g.Particle(id)
		subtle.Printf("    %-3s %10.4f %10.4f %10.4f\n", p.Element.Symbol(), p.Pos.X, p.Pos.Y, p.Pos.Z)
	}
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
