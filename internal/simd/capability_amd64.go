//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasAVX2 {
		activeISA = Vectorized
	}
}
