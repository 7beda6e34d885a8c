//go:build linux || darwin

package compare

import (
	"math/rand"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// guardedSet returns n bytes whose last byte is the last readable byte before
// a PROT_NONE page, so a read past the end faults.
func guardedSet(t *testing.T, n int) []byte {
	page := unix.Getpagesize()
	require.LessOrEqual(t, n, page)

	mem, err := unix.Mmap(-1, 0, 2*page, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	require.NoError(t, err)
	t.Cleanup(func() { _ = unix.Munmap(mem) })
	require.NoError(t, unix.Mprotect(mem[page:], unix.PROT_NONE))

	return mem[page-n : page : page]
}

func TestWhereEndOfMapping(t *testing.T) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))

	r := rand.New(rand.NewSource(11))
	page := unix.Getpagesize()

	for _, n := range []int{1, 63, 64, 65, 127, 128, 129, page - 1, page} {
		set := guardedSet(t, n)
		for i := range set {
			set[i] = byte(r.Intn(256))
		}

		for _, c := range allCombinations() {
			value := set[r.Intn(n)]
			got := makeVector(r, n)
			want := make([]uint64, len(got))
			copy(want, got)

			require.NotPanics(t, func() {
				Where(c.cOp, c.bOp, c.sign, set, value, got)
			}, "%v len=%d", c, n)
			whereNaive(c.cOp, c.bOp, c.sign, set, value, want)
			require.Equal(t, clearTail(want, n), clearTail(got, n), "%v len=%d", c, n)
		}
	}
}
