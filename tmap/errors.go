// SPDX-License-Identifier: MIT

package tmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wot"
)

// ErrUnknownCell indicates a lookup by a cell id that the map does not hold.
var ErrUnknownCell = errors.New("tmap: unknown cell id")

// ErrMissingDay indicates a day pair naming a day without cells.
// It wraps wot.ErrInputShape: one of the two groups is empty.
var ErrMissingDay = fmt.Errorf("tmap: no cells for day: %w", wot.ErrInputShape)
