// SPDX-License-Identifier: MIT
// Package: wot/synth
//
// errors.go: sentinel errors for the synth package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w and never panic; validation panics
//     are confined to option constructors (WithX...).

package synth

import (
	"fmt"

	"github.com/katalvlaran/wot"
)

// ErrTooFewCells indicates a non-positive cell count or an empty day list.
var ErrTooFewCells = fmt.Errorf("synth: too few cells: %w", wot.ErrInvalidParameter)

// ErrDuplicateDay indicates the same day label was requested twice.
var ErrDuplicateDay = fmt.Errorf("synth: duplicate day: %w", wot.ErrInvalidParameter)
