package faddeeva

import "github.com/ajroetker/go-specfun/sf"

// ImWOfXVec computes ImWOfX for each lane.
func ImWOfXVec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, ImWOfX)
}

// ErfcxVec computes Erfcx for each lane.
func ErfcxVec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, Erfcx)
}

// DawsonVec computes Dawson for each lane.
func DawsonVec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, Dawson)
}

// ErfVec computes Erf for each lane.
func ErfVec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, Erf)
}

// ErfcVec computes Erfc for each lane.
func ErfcVec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, Erfc)
}
