//go:build !amd64 || noasm

package compare

func whereBlocks(cOp CompareOperator, bOp BooleanOperator, sign Signing, set []byte, value byte, matchVector []uint64) {
	whereBlocksGo(cOp, bOp, sign, set, value, matchVector)
}
