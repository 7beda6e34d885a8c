package compare

import (
	"math/rand"
	"testing"
)

var benchSizes = []struct {
	name string
	n    int
}{
	{"64B", 64},
	{"1KB", 1 << 10},
	{"64KB", 64 << 10},
	{"8MB", 8 << 20},
}

func BenchmarkWhere(b *testing.B) {
	r := rand.New(rand.NewSource(9))
	for _, size := range benchSizes {
		set := makeSet(r, size.n)
		vec := make([]uint64, WordCount(size.n))

		b.Run(size.name+"/naive", func(b *testing.B) {
			b.SetBytes(int64(size.n))
			for i := 0; i < b.N; i++ {
				whereNaive(GreaterThan, And, Unsigned, set, 200, vec)
			}
		})

		b.Run(size.name+"/go", func(b *testing.B) {
			b.SetBytes(int64(size.n))
			for i := 0; i < b.N; i++ {
				whereBlocksGo(GreaterThan, And, Unsigned, set, 200, vec)
			}
		})

		b.Run(size.name+"/simd", func(b *testing.B) {
			b.SetBytes(int64(size.n))
			for i := 0; i < b.N; i++ {
				Where(GreaterThan, And, Unsigned, set, 200, vec)
			}
		})
	}
}

func BenchmarkWhereOperators(b *testing.B) {
	r := rand.New(rand.NewSource(10))
	set := makeSet(r, 64<<10)
	vec := make([]uint64, WordCount(len(set)))

	for _, c := range allCombinations() {
		b.Run(c.String(), func(b *testing.B) {
			b.SetBytes(int64(len(set)))
			for i := 0; i < b.N; i++ {
				Where(c.cOp, c.bOp, c.sign, set, 0x40, vec)
			}
		})
	}
}
