package gamma

import "github.com/ajroetker/go-specfun/sf"

// LnGammaVec computes LnGamma for each lane.
func LnGammaVec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, LnGamma)
}

// GammaVec computes Gamma for each lane.
func GammaVec[T sf.Floats](v sf.Vec[T]) sf.Vec[T] {
	return sf.Map(v, Gamma)
}

// GammaPVec computes GammaP(a, x) for each lane x.
func GammaPVec[T sf.Floats](a float64, v sf.Vec[T]) sf.Vec[T] {
	return sf.Map2(a, v, GammaP)
}

// GammaQVec computes GammaQ(a, x) for each lane x.
func GammaQVec[T sf.Floats](a float64, v sf.Vec[T]) sf.Vec[T] {
	return sf.Map2(a, v, GammaQ)
}

// InvGammaPVec computes InvGammaP(p, a) for each lane p.
func InvGammaPVec[T sf.Floats](a float64, v sf.Vec[T]) sf.Vec[T] {
	return sf.Map2(a, v, func(a, p float64) float64 { return InvGammaP(p, a) })
}
