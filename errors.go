/*
 * errors.go, part of molbuild.
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
	"fmt"
	"strings"
)

// Error kinds. CErrors returned by this package wrap one of these, so callers
// can check them with errors.Is.
var (
	ErrNotFound       = errors.New("node not found")
	ErrSelfLoop       = errors.New("edge endpoints are the same node")
	ErrDuplicateEdge  = errors.New("edge already exists")
	ErrBondOrder      = errors.New("bond order must be at least 1")
	ErrNotBondingSite = errors.New("node is not a bonding site")
	ErrNoNeighbor     = errors.New("bonding site has no bonded atom")
	ErrCoordination   = errors.New("coordination number out of range")
	ErrDegenerate     = errors.New("degenerate geometry")
	ErrInvariant      = errors.New("molecule invariant violated")
	ErrElement        = errors.New("invalid atomic number")
)

// CError is the error type of molbuild. Besides the message, it keeps a list of
// the functions it went through on its way up (the decoration), and whether
// it is critical, i.e., whether the state that produced it can be trusted.
type CError struct {
	msg      string
	deco     []string
	critical bool
	kind     error
}

func newCError(kind error, caller, format string, args ...interface{}) *CError {
	err := &CError{msg: fmt.Sprintf(format, args...), kind: kind}
	if caller != "" {
		err.deco = []string{caller}
	}
	return err
}

// Error returns the message, preceded by the decoration, innermost caller last.
func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	d := make([]string, len(err.deco))
	for i, v := range err.deco {
		d[len(d)-1-i] = v
	}
	return strings.Join(d, ": ") + ": " + err.msg
}

// Decorate adds dec to the decoration of the error, and returns the
// resulting slice. An empty dec just returns the current decoration.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical.
func (err *CError) Critical() bool { return err.critical }

// Unwrap returns the error kind, one of the Err* variables.
func (err *CError) Unwrap() error { return err.kind }

// errDecorate decorates err with caller if it is an Error, and wraps it
// otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return &CError{msg: err.Error(), deco: []string{caller}, kind: err}
}

// PanicMsg is used for panics on programming errors. It satisfies the
// error interface, but it is not returned as an error by any function.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilGraph    = PanicMsg("molbuild: nil graph")
	ErrNilMolecule = PanicMsg("molbuild: nil molecule")
	ErrTableShape  = PanicMsg("molbuild: bond geometry table row does not match its coordination number")
)
