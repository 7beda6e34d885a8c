//go:build !noasm && amd64

package compare

import (
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

func whereBlocks(cOp CompareOperator, bOp BooleanOperator, sign Signing, set []byte, value byte, matchVector []uint64) {
	if !hasAVX2 {
		whereBlocksGo(cOp, bOp, sign, set, value, matchVector)
		return
	}

	blocks := len(matchVector)
	_ = set[blocks*BlockSize-1]
	avx2Kernels[sign][bOp][cOp](&set[0], blocks, &matchVector[0], value)
}
