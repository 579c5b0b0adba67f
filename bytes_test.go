package pasta

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesKnownLayout(t *testing.T) {
	var in [32]byte
	for i := range in {
		in[i] = byte(i + 1)
	}

	var v Vec256
	require.NoError(t, v.SetBE32(in[:]))
	require.Equal(t, Vec256{
		0x191a1b1c1d1e1f20,
		0x1112131415161718,
		0x090a0b0c0d0e0f10,
		0x0102030405060708,
	}, v)

	require.NoError(t, v.SetLE32(in[:]))
	require.Equal(t, Vec256{
		0x0807060504030201,
		0x100f0e0d0c0b0a09,
		0x1817161514131211,
		0x201f1e1d1c1b1a19,
	}, v)
}

func TestBytesPartialLimb(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b}

	var be [2]Limb
	LimbsFromBEBytes(be[:], in)
	require.Equal(t, [2]Limb{0x0405060708090a0b, 0x010203}, be)

	var le [2]Limb
	LimbsFromLEBytes(le[:], in)
	require.Equal(t, [2]Limb{0x0807060504030201, 0x0b0a09}, le)

	out := make([]byte, len(in))
	BEBytesFromLimbs(out, be[:])
	require.Equal(t, in, out)
	LEBytesFromLimbs(out, le[:])
	require.Equal(t, in, out)
}

func TestBytesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n <= 64; n++ {
		in := make([]byte, n)
		rng.Read(in)
		limbs := make([]Limb, (n+LimbBytes-1)/LimbBytes)
		out := make([]byte, n)

		LimbsFromBEBytes(limbs, in)
		BEBytesFromLimbs(out, limbs)
		if !bytes.Equal(in, out) {
			t.Errorf("big-endian round trip of %d bytes: got %x, want %x", n, out, in)
		}

		LimbsFromLEBytes(limbs, in)
		LEBytesFromLimbs(out, limbs)
		if !bytes.Equal(in, out) {
			t.Errorf("little-endian round trip of %d bytes: got %x, want %x", n, out, in)
		}
	}
}

func TestVec256Serialization(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 100; i++ {
		var in [32]byte
		rng.Read(in[:])

		var v Vec256
		require.NoError(t, v.SetBE32(in[:]))
		require.Equal(t, in, v.BE32())

		require.NoError(t, v.SetLE32(in[:]))
		require.Equal(t, in, v.LE32())

		// the two byte orders are reverses of one another
		be := v.BE32()
		le := v.LE32()
		for j := range be {
			require.Equal(t, be[j], le[31-j])
		}
	}
}

func TestVec256SetWrongLength(t *testing.T) {
	var v Vec256
	for _, n := range []int{0, 31, 33, 64} {
		require.ErrorIs(t, v.SetBE32(make([]byte, n)), ErrBufferLength)
		require.ErrorIs(t, v.SetLE32(make([]byte, n)), ErrBufferLength)
	}
}

func TestBytesNoReduction(t *testing.T) {
	// conversion keeps values at or above a modulus as they are
	be := PallasP.BE32()
	var v Vec256
	require.NoError(t, v.SetBE32(be[:]))
	require.Equal(t, PallasP, v)
	require.Equal(t, Bool(0), Pallas.IsCanonical(&v))
}
