// Package pasta provides constant-time fixed-width integer arithmetic for
// 256-bit prime fields: limb vectors, branch-free comparison and clearing
// primitives, endian-aware byte packing and a Montgomery multiplication
// engine parameterized by the modulus.
//
// Every operation takes its modulus and Montgomery constant explicitly, so
// several fields (for example the Pallas and Vesta fields used by the Pasta
// VDF) can be used side by side without any shared state.
package pasta

// Limb is the unit of the multi-precision representation.
type Limb = uint64

// Vec256 is a 256-bit unsigned integer, least-significant limb first. It is
// used for field elements in both standard and Montgomery representation;
// the representation is not tracked by the type.
type Vec256 [NLimbs256]Limb

// Vec512 is the double-width product fed to Montgomery reduction. It is
// transient working state and never a field element.
type Vec512 [NLimbs512]Limb

const (
	// NLimbs256 is the number of limbs in a Vec256
	NLimbs256 = 256 / LimbBits
	// NLimbs512 is the number of limbs in a Vec512
	NLimbs512 = 512 / LimbBits
)

// Bool is a boolean flag held in a full limb: 0 is false, 1 is true. Flags
// are produced with bitwise arithmetic only so that computing them never
// branches on the data they describe.
type Bool Limb

// Mask expands the flag to all-ones (true) or all-zeros (false).
func (b Bool) Mask() Limb {
	return -Limb(b & 1)
}

// Not inverts the flag.
func (b Bool) Not() Bool {
	return b ^ 1
}

// True converts the flag to a Go bool. This branches on the value and must
// only be used once the flag is no longer secret.
func (b Bool) True() bool {
	return b == 1
}
