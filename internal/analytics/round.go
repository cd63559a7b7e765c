package analytics

import "math"

// round rounds half toward positive infinity.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
