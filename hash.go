package pasta

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
)

// Precomputed SHA256(tag) prefixes for the tags this package uses itself
var (
	hashToFieldTagHash [32]byte
	sampleTagHash      [32]byte
	tagHashInitOnce    sync.Once
)

const (
	hashToFieldTag = "pasta/hash-to-field"
	sampleTag      = "pasta/sample"
)

func initTagHashes() {
	hashToFieldTagHash = sha256.Sum256([]byte(hashToFieldTag))
	sampleTagHash = sha256.Sum256([]byte(sampleTag))
}

// tagHash returns SHA256(tag), from the cache for known tags
func tagHash(tag []byte) [32]byte {
	tagHashInitOnce.Do(initTagHashes)

	switch string(tag) {
	case hashToFieldTag:
		return hashToFieldTagHash
	case sampleTag:
		return sampleTagHash
	}
	return sha256.Sum256(tag)
}

// TaggedHash computes SHA256(SHA256(tag) || SHA256(tag) || data).
func TaggedHash(tag []byte, data ...[]byte) [32]byte {
	var result [32]byte

	th := tagHash(tag)
	h := sha256.New()
	h.Write(th[:])
	h.Write(th[:])
	for _, d := range data {
		h.Write(d)
	}
	copy(result[:], h.Sum(nil))
	return result
}

// HashToField maps msg to a value below P in standard representation. Two
// tagged digests, with counter bytes 0 and 1, are each cut to Bits-1 bits
// and combined as hi*2^256 + lo mod P. tag separates unrelated uses; a nil
// tag selects the package default.
func (m *Modulus) HashToField(tag, msg []byte) Vec256 {
	if tag == nil {
		tag = []byte(hashToFieldTag)
	}

	var wide [64]byte
	for i := 0; i < 2; i++ {
		d := TaggedHash(tag, []byte{byte(i)}, msg)
		copy(wide[32*i:], d[:])
	}

	var ret Vec256
	m.reduceWide(&ret, &wide)
	clear(wide[:])
	return ret
}

// Sample draws a value below P from 64 bytes of r, or from crypto/rand when
// r is nil. The bytes go through TaggedHash before reduction.
func (m *Modulus) Sample(r io.Reader) (Vec256, error) {
	if r == nil {
		r = rand.Reader
	}

	var seed [64]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return Vec256{}, errors.Wrap(err, "reading sample seed")
	}

	var wide [64]byte
	for i := 0; i < 2; i++ {
		d := TaggedHash([]byte(sampleTag), []byte{byte(i)}, seed[:])
		copy(wide[32*i:], d[:])
	}

	var ret Vec256
	m.reduceWide(&ret, &wide)
	clear(seed[:])
	clear(wide[:])
	return ret, nil
}

// reduceWide interprets wide as two big-endian halves hi || lo, masks both
// below P and sets ret = hi*2^256 + lo mod P. hi*2^256 mod P is a single
// Montgomery multiplication by R^2.
func (m *Modulus) reduceWide(ret *Vec256, wide *[64]byte) {
	var hi, lo Vec256
	LimbsFromBEBytes(hi[:], wide[:32])
	LimbsFromBEBytes(lo[:], wide[32:])
	for i := range hi {
		hi[i] &= m.sampleMask[i]
		lo[i] &= m.sampleMask[i]
	}

	MulMont(&hi, &hi, &m.RR, &m.P, m.N0)
	AddMod(ret, &hi, &lo, &m.P)

	hi.Clear()
	lo.Clear()
}
