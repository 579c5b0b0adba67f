package pasta

import (
	"math/bits"
	"runtime"
)

// IsZero returns 1 if l is zero and 0 otherwise, without comparing.
func IsZero(l Limb) Bool {
	return Bool((^l & (l - 1)) >> (LimbBits - 1))
}

// VecIsZero reports whether every limb of a is zero. All limbs are always
// read.
func VecIsZero(a []Limb) Bool {
	var acc Limb
	for i := range a {
		acc |= a[i]
	}
	return IsZero(acc)
}

// VecIsEqual reports whether a and b hold the same limbs. It never stops at
// the first difference, so the result does not reveal where two secrets
// differ. b must be at least as long as a.
func VecIsEqual(a, b []Limb) Bool {
	b = b[:len(a)]
	var acc Limb
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return IsZero(acc)
}

// VecCopy copies len(ret) limbs from a.
func VecCopy(ret, a []Limb) {
	a = a[:len(ret)]
	for i := range ret {
		ret[i] = a[i]
	}
}

// VecSelect sets ret = a if flag is true and ret = b otherwise, using a mask
// rather than a branch. ret may alias a or b.
func VecSelect(ret, a, b []Limb, flag Bool) {
	a = a[:len(ret)]
	b = b[:len(ret)]
	mask := flag.Mask()
	for i := range ret {
		ret[i] = b[i] ^ (mask & (a[i] ^ b[i]))
	}
}

// VecZero overwrites ret with zeros. The stores are kept alive past the
// clear so they cannot be dropped as dead, even when ret is a local that is
// about to go out of scope.
func VecZero(ret []Limb) {
	for i := range ret {
		ret[i] = 0
	}
	runtime.KeepAlive(ret)
}

// IsZero reports whether v is zero.
func (v *Vec256) IsZero() Bool {
	return VecIsZero(v[:])
}

// Equal reports whether v and w hold the same value.
func (v *Vec256) Equal(w *Vec256) Bool {
	return VecIsEqual(v[:], w[:])
}

// Select sets v = a if flag is true and v = b otherwise.
func (v *Vec256) Select(a, b *Vec256, flag Bool) *Vec256 {
	VecSelect(v[:], a[:], b[:], flag)
	return v
}

// Clear zeroes v; call it on any vector that held secret material.
func (v *Vec256) Clear() {
	VecZero(v[:])
}

// Clear zeroes v.
func (v *Vec512) Clear() {
	VecZero(v[:])
}

// sub256 sets ret = a - b and returns the borrow out of the top limb.
func sub256(ret, a, b *Vec256) (borrow Limb) {
	ret[0], borrow = bits.Sub64(a[0], b[0], 0)
	ret[1], borrow = bits.Sub64(a[1], b[1], borrow)
	ret[2], borrow = bits.Sub64(a[2], b[2], borrow)
	ret[3], borrow = bits.Sub64(a[3], b[3], borrow)
	return borrow
}

// add256 sets ret = a + b and returns the carry out of the top limb.
func add256(ret, a, b *Vec256) (carry Limb) {
	ret[0], carry = bits.Add64(a[0], b[0], 0)
	ret[1], carry = bits.Add64(a[1], b[1], carry)
	ret[2], carry = bits.Add64(a[2], b[2], carry)
	ret[3], carry = bits.Add64(a[3], b[3], carry)
	return carry
}

// LessThan returns 1 if a < b, computed from the borrow of a - b.
func LessThan(a, b *Vec256) Bool {
	var t Vec256
	return Bool(sub256(&t, a, b))
}
