package utils

// Contains returns true if target is one of the elements of values
func Contains[T comparable](target T, values []T) bool {
	for i := range values {
		if values[i] == target {
			return true
		}
	}
	return false
}
