package lambertw

import "github.com/ajroetker/go-specfun/sf"

// W0Vec computes W0 for each lane.
func W0Vec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, W0)
}

// Wm1Vec computes Wm1 for each lane.
func Wm1Vec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, Wm1)
}

// SpW0Vec computes SpW0 for each lane.
func SpW0Vec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, SpW0)
}

// SpWm1Vec computes SpWm1 for each lane.
func SpWm1Vec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, SpWm1)
}
