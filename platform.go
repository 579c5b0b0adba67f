package pasta

import (
	"math/bits"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Limb width. Limbs are uint64 on every target; on 32-bit targets the Go
// compiler splits the 64-bit operations, which stays constant-time since
// math/bits has no data-dependent paths.
const (
	LimbBits  = 64
	LimbBytes = LimbBits / 8
)

// compile-time check that Limb is exactly LimbBits wide
var _ = [1]struct{}{}[(^Limb(0)>>(LimbBits-1))-1]

// PlatformInfo describes the host for diagnostics and benchmark labels. The
// arithmetic kernels never consult it: there is one portable kernel.
type PlatformInfo struct {
	LimbBits     int
	WordBits     int
	LittleEndian bool
	ADX          bool
	BMI2         bool
	Brand        string
}

// Platform reports the host properties relevant to the arithmetic kernels.
func Platform() PlatformInfo {
	return PlatformInfo{
		LimbBits:     LimbBits,
		WordBits:     bits.UintSize,
		LittleEndian: !cpu.IsBigEndian,
		ADX:          cpuid.CPU.Supports(cpuid.ADX),
		BMI2:         cpuid.CPU.Supports(cpuid.BMI2),
		Brand:        cpuid.CPU.BrandName,
	}
}

// Kernel names the multiply/reduce kernel in use.
func (p PlatformInfo) Kernel() string {
	if p.ADX && p.BMI2 {
		return "portable (mulx/adx capable host)"
	}
	return "portable"
}
