//go:build arm64

package sf

import "golang.org/x/sys/cpu"

func init() {
	if NoFMAEnv() {
		setScalarMode()
		return
	}

	// Fused multiply-add is part of the ARMv8 floating-point baseline;
	// cpu.ARM64.HasASIMD is always true there but we still check it so
	// that an unusual kernel report falls back cleanly.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchFMA
		currentWidth = 16
		currentName = "neon-fma"
		return
	}
	setScalarMode()
}
