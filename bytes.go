package pasta

import (
	"github.com/pkg/errors"
)

// LimbsFromBEBytes packs the big-endian byte string in into ret, in[0] being
// the most significant byte. Any byte count is accepted; the top bytes of a
// partial last limb are zero. ret must hold at least ceil(len(in)/8) limbs;
// limbs above that are left as they are.
func LimbsFromBEBytes(ret []Limb, in []byte) {
	var limb Limb
	for i, n := 0, len(in); n > 0; i++ {
		n--
		limb <<= 8
		limb |= Limb(in[i])
		// storing on every byte is cheaper than a branch on n%LimbBytes;
		// the stray high bytes are shifted out before the final store
		ret[n/LimbBytes] = limb
	}
}

// BEBytesFromLimbs writes the low len(out) bytes of in to out, most
// significant byte first.
func BEBytesFromLimbs(out []byte, in []Limb) {
	n := len(out)
	for i := range out {
		n--
		out[i] = byte(in[n/LimbBytes] >> (8 * (n % LimbBytes)))
	}
}

// LimbsFromLEBytes packs the little-endian byte string in into ret, in[0]
// being the least significant byte. Sizing rules match LimbsFromBEBytes.
func LimbsFromLEBytes(ret []Limb, in []byte) {
	var limb Limb
	for n := len(in); n > 0; {
		n--
		limb <<= 8
		limb |= Limb(in[n])
		ret[n/LimbBytes] = limb
	}
}

// LEBytesFromLimbs writes the low len(out) bytes of in to out, least
// significant byte first. out and in never share storage, so the result is
// the same on every host.
func LEBytesFromLimbs(out []byte, in []Limb) {
	for i := range out {
		out[i] = byte(in[i/LimbBytes] >> (8 * (i % LimbBytes)))
	}
}

// SetBE32 sets v from a 32-byte big-endian buffer. The value is not reduced.
func (v *Vec256) SetBE32(b []byte) error {
	if len(b) != NLimbs256*LimbBytes {
		return errors.Wrapf(ErrBufferLength, "got %d bytes, want %d", len(b), NLimbs256*LimbBytes)
	}
	LimbsFromBEBytes(v[:], b)
	return nil
}

// SetLE32 sets v from a 32-byte little-endian buffer. The value is not reduced.
func (v *Vec256) SetLE32(b []byte) error {
	if len(b) != NLimbs256*LimbBytes {
		return errors.Wrapf(ErrBufferLength, "got %d bytes, want %d", len(b), NLimbs256*LimbBytes)
	}
	LimbsFromLEBytes(v[:], b)
	return nil
}

// BE32 returns v as 32 big-endian bytes.
func (v *Vec256) BE32() (out [32]byte) {
	BEBytesFromLimbs(out[:], v[:])
	return
}

// LE32 returns v as 32 little-endian bytes.
func (v *Vec256) LE32() (out [32]byte) {
	LEBytesFromLimbs(out[:], v[:])
	return
}
