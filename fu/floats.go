package fu

import "math"

// Fnzd returns the first non-zero value
func Fnzd(d ...float64) float64 {
	for _, x := range d {
		if x != 0 {
			return x
		}
	}
	return 0
}

// Fnzs returns the first non-empty string
func Fnzs(s ...string) string {
	for _, x := range s {
		if x != "" {
			return x
		}
	}
	return ""
}

// Finite reports whether all values are finite numbers
func Finite(a []float64) bool {
	for _, x := range a {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
