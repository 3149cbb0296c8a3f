// SPDX-License-Identifier: MIT
// Package: molpath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with `%w`.
//   • Constructors never panic; option constructors panic on nil functions.

package builder

import "errors"

// ErrTooFewAtoms indicates that n is smaller than the constructor's minimum.
// Usage: if errors.Is(err, ErrTooFewAtoms) { /* report invalid size */ }.
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the builder could not apply a constructor
// (nil constructor, or the molecule rejected an atom or bond).
var ErrConstructFailed = errors.New("builder: construction failed")
