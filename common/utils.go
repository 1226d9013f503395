package common

import "unsafe"

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Clamp01 limits v to the closed unit interval. NaN maps to 0.
//
// Parameters:
//   - v: the value to clamp
//
// Returns:
//   - float32: v limited to [0, 1]
func Clamp01(v float32) float32 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SliceToBytes views a slice as raw bytes for GPU buffer uploads.
// The result aliases data and is only valid while data is.
//
// Parameters:
//   - data: source slice of fixed-layout values
//
// Returns:
//   - []byte: byte view of data, or nil if data is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(data[0])))
}
