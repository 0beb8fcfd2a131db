package sanitizer

import "cmp"

// Clamp bounds value to [lo, hi].
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	return ClampMax(ClampMin(value, lo), hi)
}

// ClampMin raises value to lo when it is below it. NaN is returned as-is.
func ClampMin[T cmp.Ordered](value, lo T) T {
	return max(value, lo)
}

// ClampMax lowers value to hi when it is above it. NaN is returned as-is.
func ClampMax[T cmp.Ordered](value, hi T) T {
	return min(value, hi)
}
