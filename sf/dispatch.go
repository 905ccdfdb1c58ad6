package sf

import (
	"os"
	"strconv"
)

// DispatchLevel identifies which product kernel the runtime selected.
type DispatchLevel int

const (
	// DispatchScalar splits operands with Veltkamp/Dekker arithmetic.
	DispatchScalar DispatchLevel = iota

	// DispatchFMA uses the hardware fused multiply-add for error-free products.
	DispatchFMA
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the batch width in bytes used by MaxLanes.
// Set by init() in dispatch_*.go files.
var currentWidth = 16

// currentName is the human-readable name of the detected target, e.g. "avx2-fma".
// Set by init() in dispatch_*.go files.
var currentName = "scalar"

// CurrentLevel returns the dispatch level in use.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the batch width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the detected target.
func CurrentName() string {
	return currentName
}

// HasFMA reports whether TwoProd uses the fused multiply-add kernel.
func HasFMA() bool {
	return currentLevel == DispatchFMA
}

// NoFMAEnv checks if the SF_NO_FMA environment variable is set.
// When set, the scalar splitting kernel is used regardless of CPU support,
// which is how the two kernels are compared in tests and benchmarks.
func NoFMAEnv() bool {
	val := os.Getenv("SF_NO_FMA")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName = "scalar"
}
