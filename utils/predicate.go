package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange reports whether lo <= value <= hi.
func IsInRange[T number](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// SignedBounds returns the inclusive range of a signed integer with the given bit size.
func SignedBounds(bits int) (lo, hi int64) {
	hi = int64(^uint64(0) >> (65 - bits))
	return -hi - 1, hi
}

// UnsignedBound returns the largest value of an unsigned integer with the given bit size.
func UnsignedBound(bits int) uint64 {
	return ^uint64(0) >> (64 - bits)
}
