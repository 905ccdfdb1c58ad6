//go:build !amd64 && !arm64

package sf

func init() {
	// Other architectures use the splitting kernel. math.FMA is still
	// exact there, but may be emulated in software.
	setScalarMode()
}
