package conv

// Pointer returns a pointer to the supplied value.
func Pointer[T any](value T) *T {
	return &value
}

// Dereference returns the pointed-to value or the zero value for a nil pointer.
func Dereference[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}
