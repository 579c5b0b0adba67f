package pasta

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// small prime used for exhaustive checks
var (
	p97   = Vec256{97}
	n0P97 = Limb(0x5c5f02a3a0fd5c5f)
)

func toBig(v *Vec256) *big.Int {
	b := v.BE32()
	return new(big.Int).SetBytes(b[:])
}

func fromBig(t testing.TB, x *big.Int) Vec256 {
	t.Helper()
	require.True(t, x.Sign() >= 0 && x.BitLen() <= 256, "value out of range: %s", x)
	var buf [32]byte
	x.FillBytes(buf[:])
	var v Vec256
	require.NoError(t, v.SetBE32(buf[:]))
	return v
}

func bigR() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), 256)
}

// randBelow returns a uniformly random value below p.
func randBelow(t testing.TB, rng *rand.Rand, p *Vec256) Vec256 {
	return fromBig(t, new(big.Int).Rand(rng, toBig(p)))
}

// montOf returns x*R mod p computed with math/big.
func montOf(t testing.TB, x, p *Vec256) Vec256 {
	pb := toBig(p)
	r := new(big.Int).Mul(toBig(x), bigR())
	return fromBig(t, r.Mod(r, pb))
}

// testModuli covers a tiny prime, both Pasta primes, and primes close to
// 2^256 where sums overflow the top limb.
func testModuli() []struct {
	name string
	m    *Modulus
} {
	return []struct {
		name string
		m    *Modulus
	}{
		{"p97", MustModulus(p97)},
		{"pallas", Pallas},
		{"vesta", Vesta},
		{"secp256k1_p", Secp256k1},
		{"secp256k1_n", Secp256k1Order},
	}
}
