// Package compare evaluates "element OP value" over byte columns into
// bit-packed match vectors, 64 elements per word.
//
// On amd64 with AVX2 the full blocks run through assembly kernels written by
// internal/wheregen, one per compare operator, boolean operator and signing.
// They are emitted directly as Go assembly from templates, not compiled from
// C. Other targets, and builds tagged noasm, use a portable word-at-a-time
// loop that produces the same bits.
package compare

// Where sets bit i of matchVector to the result of set[i] cOp value, merged
// with the bit already there according to bOp.
//
// matchVector must hold at least WordCount(len(set)) words. For And and Or
// those words must already contain a result over the same rows. Bits at or
// above len(set) in the last word are left in an unspecified state.
//
// Full 64-element blocks go through the widest kernel the CPU supports; the
// trailing 1-63 elements are evaluated one at a time so that no read ever
// crosses the end of set.
func Where(cOp CompareOperator, bOp BooleanOperator, sign Signing, set []byte, value byte, matchVector []uint64) {
	n := len(set) &^ (BlockSize - 1)
	if n > 0 {
		whereBlocks(cOp, bOp, sign, set[:n], value, matchVector[:n/BlockSize])
	}
	if n < len(set) {
		whereSingle(cOp, bOp, sign, set[n:], value, &matchVector[n/BlockSize])
	}
}
