package rlp

import (
	"fmt"
	"strings"
)

// Format renders an encoding for display: printable ASCII bytes as quoted characters, all others as hex, e.g.
// [ 0x83, 'd', 'o', 'g' ].
func Format(encoded []byte) string {
	parts := make([]string, len(encoded))
	for i, b := range encoded {
		if b >= 0x20 && b <= 0x7e {
			parts[i] = fmt.Sprintf("'%c'", b)
		} else {
			parts[i] = fmt.Sprintf("0x%02x", b)
		}
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}
