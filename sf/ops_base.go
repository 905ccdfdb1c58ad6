package sf

import "unsafe"

// MaxLanes returns the number of T lanes that fit the current batch width.
//
// With the FMA dispatch level (32 bytes):
//   - float32: 8 lanes
//   - float64: 4 lanes
func MaxLanes[T Floats]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}

// Load creates a vector from the first MaxLanes elements of src.
// A shorter src produces a vector with len(src) lanes.
func Load[T Floats](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes the lanes of v to dst, stopping at the shorter of the two.
func Store[T Floats](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to value.
func Set[T Floats](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Map applies fn to every lane. Lanes are widened to float64 for the call
// and narrowed back to T afterwards, so float32 inputs get the float64
// algorithm rounded once.
func Map[T Floats](v Vec[T], fn func(float64) float64) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(fn(float64(x)))
	}
	return Vec[T]{data: result}
}

// Map2 applies fn(a, lane) to every lane with a shared first argument.
func Map2[T Floats](a float64, v Vec[T], fn func(a, x float64) float64) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(fn(a, float64(x)))
	}
	return Vec[T]{data: result}
}
