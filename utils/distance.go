package utils

import (
	"fmt"
	"math"
)

const (
	MetersPerKilometer = 1000.0
	MilesPerKilometer  = 0.621371
)

// PresentableDistance formats a length in meters for display. Lengths under a
// kilometer are shown in meters, longer ones in kilometers with two decimals.
func PresentableDistance(meters float64) string {
	if meters < MetersPerKilometer {
		return fmt.Sprintf("%d m", int(meters+0.5))
	}
	return fmt.Sprintf("%.2f km", meters/MetersPerKilometer)
}

// PresentableMiles formats a length in meters as miles with one decimal.
// The unit is singular when the printed value is 1.0.
func PresentableMiles(meters float64) string {
	mi := math.Round(meters/MetersPerKilometer*MilesPerKilometer*10) / 10
	return fmt.Sprintf("%.1f mile%s", mi, ternary(mi == 1, "", "s"))
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
