package pasta

import (
	"encoding/binary"
	"math/bits"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPlatform(t *testing.T) {
	p := Platform()
	require.Equal(t, 64, p.LimbBits)
	require.Equal(t, bits.UintSize, p.WordBits)
	require.NotEmpty(t, p.Kernel())

	// compare with the in-memory layout of a limb
	x := Limb(1)
	b := (*[LimbBytes]byte)(unsafe.Pointer(&x))
	require.Equal(t, binary.LittleEndian.Uint64(b[:]) == 1, p.LittleEndian)
}

func TestLimbSizes(t *testing.T) {
	require.Equal(t, uintptr(LimbBytes), unsafe.Sizeof(Limb(0)))
	require.Equal(t, uintptr(32), unsafe.Sizeof(Vec256{}))
	require.Equal(t, uintptr(64), unsafe.Sizeof(Vec512{}))
}
