package compare

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneMasks(t *testing.T) {
	for y := 0; y < 256; y++ {
		value := uint64(y) * oneBytes
		for x := 0; x < 256; x++ {
			// every byte position sees x+37k for some k, so each pair is
			// checked in eight different positions across the x loop
			var lane uint64
			for k := 0; k < laneWidth; k++ {
				lane |= uint64(byte(x+37*k)) << (8 * k)
			}

			less := lessMask(lane, value)
			equal := equalMask(lane, value)
			for k := 0; k < laneWidth; k++ {
				b := byte(x + 37*k)
				bit := uint64(0x80) << (8 * k)
				if (less&bit != 0) != (b < byte(y)) {
					t.Fatalf("lessMask(%#x, %#x) byte %d: got %v", b, y, k, less&bit != 0)
				}
				if (equal&bit != 0) != (b == byte(y)) {
					t.Fatalf("equalMask(%#x, %#x) byte %d: got %v", b, y, k, equal&bit != 0)
				}
			}
			require.Zero(t, less&^highBits)
			require.Zero(t, equal&^highBits)
		}
	}
}

func TestMoveMask(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 10000; i++ {
		m := r.Uint64() & highBits

		var want uint64
		for k := 0; k < 8; k++ {
			if m&(0x80<<(8*k)) != 0 {
				want |= 1 << k
			}
		}
		require.Equal(t, want, moveMask(m), "%#x", m)
	}
	assert.Equal(t, uint64(0xff), moveMask(highBits))
	assert.Equal(t, uint64(0), moveMask(0))
}

func TestWhereBlocksGo(t *testing.T) {
	r := rand.New(rand.NewSource(6))

	for _, c := range allCombinations() {
		t.Run(c.String(), func(t *testing.T) {
			for blocks := 1; blocks <= 20; blocks++ {
				set := makeSet(r, blocks*BlockSize)
				value := set[r.Intn(len(set))]

				got := makeVector(r, len(set))
				want := make([]uint64, len(got))
				copy(want, got)

				whereBlocksGo(c.cOp, c.bOp, c.sign, set, value, got)
				whereNaive(c.cOp, c.bOp, c.sign, set, value, want)
				require.Equal(t, want, got, "blocks=%d", blocks)
			}
		})
	}
}

func TestMatchBlockOrder(t *testing.T) {
	// element j of the block must land on bit j of the word
	for j := 0; j < BlockSize; j++ {
		block := make([]byte, BlockSize)
		block[j] = 1
		got := matchBlock(block, oneBytes, 0, equalLane)
		require.Equal(t, 1, bits.OnesCount64(got))
		require.Equal(t, j, bits.TrailingZeros64(got))
	}
}
