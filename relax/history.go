/*
 * history.go, part of molbuild.
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

// History keeps the Stats of consecutive relaxation steps. If it has a
// limit, only the last limit steps are kept.
type History struct {
	steps []Stats
	limit int
	next  int
}

// NewHistory returns an empty history that keeps at most limit steps.
// A limit of 0 or less means no limit.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add appends s to the history, numbering it.
func (H *History) Add(s Stats) {
	s.Step = H.next
	H.next++
	H.steps = append(H.steps, s)
	if H.limit > 0 && len(H.steps) > H.limit {
		n := copy(H.steps, H.steps[len(H.steps)-H.limit:])
		H.steps = H.steps[:n]
	}
}

// Len returns the number of steps kept.
func (H *History) Len() int { return len(H.steps) }

// Total returns the number of steps added, including those no longer kept.
func (H *History) Total() int { return H.next }

// Steps returns a copy of the kept steps, oldest first.
func (H *History) Steps() []Stats {
	ret := make([]Stats, len(H.steps))
	copy(ret, H.steps)
	return ret
}

// Last returns the latest step, if any.
func (H *History) Last() (Stats, bool) {
	if len(H.steps) == 0 {
		return Stats{}, false
	}
	return H.steps[len(H.steps)-1], true
}

// Converged returns whether the largest force in the last step is below tol.
// The relaxation is not stopped when this happens, it is just informative.
func (H *History) Converged(tol float64) bool {
	s, ok := H.Last()
	return ok && s.MaxForce < tol
}
