// SPDX-License-Identifier: MIT

package calibrate_test

import (
	"bytes"
	"strings"
)

// zerologBuffer collects JSON log lines.
type zerologBuffer struct{ bytes.Buffer }

// count returns how many lines carry the given message.
func (b *zerologBuffer) count(msg string) int {
	n := 0
	for _, line := range strings.Split(b.String(), "\n") {
		if strings.Contains(line, `"message":"`+msg+`"`) {
			n++
		}
	}
	return n
}
