package pasta

import (
	"github.com/holiman/uint256"
)

// uint256.Int shares the Vec256 layout: four 64-bit words, least
// significant first.

// SetUint256 sets v to x.
func (v *Vec256) SetUint256(x *uint256.Int) *Vec256 {
	*v = Vec256(*x)
	return v
}

// Uint256 returns v as a uint256.Int.
func (v *Vec256) Uint256() *uint256.Int {
	x := uint256.Int(*v)
	return &x
}

// String returns v in 0x-prefixed hex.
func (v *Vec256) String() string {
	return v.Uint256().Hex()
}
