// Package safe converts between integer widths without silent wrap-around.
package safe

import (
	"fmt"
	"math"
)

// Uint32 converts a count or length to uint32.
func Uint32(n int) (uint32, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", n)
	}
	return uint32(n), nil
}
