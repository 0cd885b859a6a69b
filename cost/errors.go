// SPDX-License-Identifier: MIT

package cost

import (
	"fmt"

	"github.com/katalvlaran/wot"
)

// ErrZeroMedian indicates that the median pairwise cost is zero (for example
// most cells are identical), so the matrix cannot be normalized. It wraps
// wot.ErrInvalidParameter so callers may match either.
var ErrZeroMedian = fmt.Errorf("cost: median is zero: %w", wot.ErrInvalidParameter)
