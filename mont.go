package pasta

import (
	"math/bits"
)

// Montgomery arithmetic modulo an odd 256-bit p with R = 2^256.
//
// Every function takes p and n0 = -p^-1 mod 2^64 from the caller and
// requires its field inputs to be < p; results are fully reduced into
// [0, p). Nothing is validated at run time: an input >= p or an n0 that does
// not belong to p gives a wrong residue, not an error. ret may alias any
// input.

// mulAdd returns the two limbs of x*y + z + c. The sum never overflows 128
// bits.
func mulAdd(x, y, z, c Limb) (hi, lo Limb) {
	var cc Limb
	hi, lo = bits.Mul64(x, y)
	lo, cc = bits.Add64(lo, z, 0)
	hi += cc
	lo, cc = bits.Add64(lo, c, 0)
	hi += cc
	return
}

// mul256 computes the full 512-bit product a*b.
func mul256(ret *Vec512, a, b *Vec256) {
	var t Vec512
	for i := 0; i < NLimbs256; i++ {
		var c Limb
		for j := 0; j < NLimbs256; j++ {
			c, t[i+j] = mulAdd(a[i], b[j], t[i+j], c)
		}
		t[i+NLimbs256] = c
	}
	*ret = t
}

// sqr256 computes a*a, summing each cross product once and doubling.
func sqr256(ret *Vec512, a *Vec256) {
	var t Vec512
	for i := 0; i < NLimbs256; i++ {
		var c Limb
		for j := i + 1; j < NLimbs256; j++ {
			c, t[i+j] = mulAdd(a[i], a[j], t[i+j], c)
		}
		t[i+NLimbs256] = c
	}

	// the cross sum is below 2^511, so the doubling cannot overflow
	for i := NLimbs512 - 1; i > 0; i-- {
		t[i] = t[i]<<1 | t[i-1]>>(LimbBits-1)
	}
	t[0] <<= 1

	var c Limb
	for i := 0; i < NLimbs256; i++ {
		hi, lo := bits.Mul64(a[i], a[i])
		t[2*i], c = bits.Add64(t[2*i], lo, c)
		t[2*i+1], c = bits.Add64(t[2*i+1], hi, c)
	}
	*ret = t
}

// redc computes a * R^-1 mod p for a < p*R.
func redc(ret *Vec256, a *Vec512, p *Vec256, n0 Limb) {
	t := *a
	var top Limb
	for i := 0; i < NLimbs256; i++ {
		m := t[i] * n0
		var c Limb
		for j := 0; j < NLimbs256; j++ {
			c, t[i+j] = mulAdd(m, p[j], t[i+j], c)
		}
		// the carry into the next column rides along in top
		t[i+NLimbs256], top = bits.Add64(t[i+NLimbs256], c, top)
	}

	// t[4:] + top*2^256 < 2p
	r := Vec256{t[4], t[5], t[6], t[7]}
	finalSub(ret, &r, top, p)
	r.Clear()
	t.Clear()
}

// finalSub sets ret = (r + hi*2^256) mod p for r + hi*2^256 < 2p, subtracting
// p under a mask.
func finalSub(ret, r *Vec256, hi Limb, p *Vec256) {
	var s Vec256
	borrow := sub256(&s, r, p)
	_, borrow = bits.Sub64(hi, 0, borrow)
	// borrow set: r was already below p
	ret.Select(r, &s, Bool(borrow))
}

// MulMont sets ret = a*b*R^-1 mod p. For a and b in Montgomery form the
// result is their product in Montgomery form.
func MulMont(ret, a, b, p *Vec256, n0 Limb) {
	var t Vec512
	mul256(&t, a, b)
	redc(ret, &t, p, n0)
	t.Clear()
}

// SqrMont sets ret = a*a*R^-1 mod p. It matches MulMont(ret, a, a, p, n0)
// bit for bit.
func SqrMont(ret, a, p *Vec256, n0 Limb) {
	var t Vec512
	sqr256(&t, a)
	redc(ret, &t, p, n0)
	t.Clear()
}

// RedcMont sets ret = a*R^-1 mod p for a double-width value a, such as a
// product computed elsewhere. a must be below p*R, which holds for any
// product of two values below p.
func RedcMont(ret *Vec256, a *Vec512, p *Vec256, n0 Limb) {
	redc(ret, a, p, n0)
}

// FromMont converts a out of Montgomery form: ret = a*R^-1 mod p.
func FromMont(ret, a, p *Vec256, n0 Limb) {
	t := Vec512{a[0], a[1], a[2], a[3]}
	redc(ret, &t, p, n0)
	t.Clear()
}

// AddMod sets ret = (a + b) mod p. Addition works the same on standard and
// Montgomery representations.
func AddMod(ret, a, b, p *Vec256) {
	var t Vec256
	carry := add256(&t, a, b)
	finalSub(ret, &t, carry, p)
}

// SubMod sets ret = (a - b) mod p, adding p back under a mask when the
// subtraction borrows.
func SubMod(ret, a, b, p *Vec256) {
	var t, s Vec256
	borrow := sub256(&t, a, b)
	add256(&s, &t, p)
	ret.Select(&s, &t, Bool(borrow))
}
