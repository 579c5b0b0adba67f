package pasta

import (
	"math/bits"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Modulus bundles an odd modulus with the constants Montgomery arithmetic
// needs. The engine functions still take P and N0 explicitly; Modulus only
// keeps the pairing in one place.
type Modulus struct {
	// P is the modulus
	P Vec256
	// N0 is -P^-1 mod 2^64
	N0 Limb
	// RR is R^2 mod P, used to enter Montgomery form
	RR Vec256
	// One is R mod P, the Montgomery form of 1
	One Vec256
	// Bits is the bit length of P
	Bits int

	// sampleMask keeps the low Bits-1 bits, so a masked value is below P
	sampleMask Vec256
}

// Pasta VDF fields and the secp256k1 field and group order.
var (
	// PallasP is the Pallas base field prime
	// 0x40000000000000000000000000000000224698fc094cf91b992d30ed00000001
	PallasP = Vec256{0x992d30ed00000001, 0x224698fc094cf91b, 0x0000000000000000, 0x4000000000000000}
	// VestaP is the Vesta base field prime (the Pallas group order)
	// 0x40000000000000000000000000000000224698fc0994a8dd8c46eb2100000001
	VestaP = Vec256{0x8c46eb2100000001, 0x224698fc0994a8dd, 0x0000000000000000, 0x4000000000000000}
	// Secp256k1P is the secp256k1 field prime 2^256 - 2^32 - 977
	Secp256k1P = Vec256{0xfffffffefffffc2f, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff}
	// Secp256k1N is the secp256k1 group order
	Secp256k1N = Vec256{0xbfd25e8cd0364141, 0xbaaedce6af48a03b, 0xfffffffffffffffe, 0xffffffffffffffff}

	// ready-made moduli for the primes above
	Pallas         = MustModulus(PallasP)
	Vesta          = MustModulus(VestaP)
	Secp256k1      = MustModulus(Secp256k1P)
	Secp256k1Order = MustModulus(Secp256k1N)
)

// Montgomery constants of the Pasta primes.
const (
	PallasN0 Limb = 0x992d30ecffffffff
	VestaN0  Limb = 0x8c46eb20ffffffff
)

// NewModulus derives the Montgomery constants for p. p must be odd and
// greater than 1.
func NewModulus(p Vec256) (*Modulus, error) {
	if p[0]&1 == 0 {
		return nil, ErrEvenModulus
	}
	if p == (Vec256{1}) {
		return nil, ErrModulusTooSmall
	}

	m := &Modulus{P: p, N0: montgomeryN0(p[0]), Bits: bitLen(&p)}

	// R^2 = 2^512 mod p by doubling 1; p is public so timing does not matter
	// here, but AddMod is constant-time anyway
	m.RR = Vec256{1}
	for i := 0; i < 2*NLimbs256*LimbBits; i++ {
		AddMod(&m.RR, &m.RR, &m.RR, &m.P)
	}
	FromMont(&m.One, &m.RR, &m.P, m.N0)

	for i := 0; i < m.Bits-1; i++ {
		m.sampleMask[i/LimbBits] |= 1 << (i % LimbBits)
	}
	return m, nil
}

// MustModulus is like NewModulus but panics on error.
func MustModulus(p Vec256) *Modulus {
	m, err := NewModulus(p)
	if err != nil {
		panic(err)
	}
	return m
}

// ModulusFromHex parses a 0x-prefixed hex modulus.
func ModulusFromHex(s string) (*Modulus, error) {
	x, err := uint256.FromHex(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing modulus %q", s)
	}
	m, err := NewModulus(Vec256(*x))
	if err != nil {
		return nil, errors.WithMessagef(err, "modulus %s", s)
	}
	return m, nil
}

// montgomeryN0 returns -p0^-1 mod 2^64 by Newton iteration. Starting from
// p0 itself, which is its own inverse mod 8, each step doubles the number of
// correct bits.
func montgomeryN0(p0 Limb) Limb {
	inv := p0
	for i := 0; i < 5; i++ {
		inv *= 2 - p0*inv
	}
	return -inv
}

func bitLen(v *Vec256) int {
	for i := NLimbs256 - 1; i >= 0; i-- {
		if v[i] != 0 {
			return i*LimbBits + bits.Len64(v[i])
		}
	}
	return 0
}

// ToMont converts a < P into Montgomery form.
func (m *Modulus) ToMont(ret, a *Vec256) {
	MulMont(ret, a, &m.RR, &m.P, m.N0)
}

// FromMont converts a out of Montgomery form.
func (m *Modulus) FromMont(ret, a *Vec256) {
	FromMont(ret, a, &m.P, m.N0)
}

// Mul is MulMont under m.
func (m *Modulus) Mul(ret, a, b *Vec256) {
	MulMont(ret, a, b, &m.P, m.N0)
}

// Sqr is SqrMont under m.
func (m *Modulus) Sqr(ret, a *Vec256) {
	SqrMont(ret, a, &m.P, m.N0)
}

// Add is AddMod under m.
func (m *Modulus) Add(ret, a, b *Vec256) {
	AddMod(ret, a, b, &m.P)
}

// Sub is SubMod under m.
func (m *Modulus) Sub(ret, a, b *Vec256) {
	SubMod(ret, a, b, &m.P)
}

// Neg sets ret = -a mod P.
func (m *Modulus) Neg(ret, a *Vec256) {
	var zero Vec256
	SubMod(ret, &zero, a, &m.P)
}

// Reduce sets ret = a mod P for a < 2P, e.g. a value just read from bytes
// when P is above 2^255.
func (m *Modulus) Reduce(ret, a *Vec256) {
	finalSub(ret, a, 0, &m.P)
}

// IsCanonical reports whether a < P.
func (m *Modulus) IsCanonical(a *Vec256) Bool {
	return LessThan(a, &m.P)
}

// Exp sets ret = a^e for a in Montgomery form; the result is in Montgomery
// form too. All 256 exponent bits are processed with a multiply on every
// step and a masked select, so a secret exponent is safe.
func (m *Modulus) Exp(ret, a, e *Vec256) {
	acc := m.One
	base := *a
	var t Vec256
	for i := NLimbs256*LimbBits - 1; i >= 0; i-- {
		m.Sqr(&acc, &acc)
		m.Mul(&t, &acc, &base)
		acc.Select(&t, &acc, Bool(e[i/LimbBits]>>(i%LimbBits)&1))
	}
	*ret = acc
	acc.Clear()
	base.Clear()
	t.Clear()
}

// Inverse sets ret = a^-1 for a in Montgomery form, using a^(P-2). P must
// be prime. Zero maps to zero.
func (m *Modulus) Inverse(ret, a *Vec256) {
	var e Vec256
	sub256(&e, &m.P, &Vec256{2})
	m.Exp(ret, a, &e)
}
