package compare

import "encoding/binary"

// The portable kernels treat a uint64 as a vector of eight bytes. A lane
// comparison leaves the high bit of each byte set where the element matches,
// which plays the role of the 0xFF/0x00 byte mask of a hardware compare.
const (
	laneWidth     = 8
	lanesPerBlock = BlockSize / laneWidth

	lowBits  = 0x7f7f7f7f7f7f7f7f
	highBits = 0x8080808080808080
	oneBytes = 0x0101010101010101

	// gathers bit 0 of every byte into the top byte, byte k landing on bit 56+k
	gatherMagic = 0x0102040810204080
)

// laneCompare computes one lane comparison against the broadcast value.
type laneCompare func(lane, value uint64) uint64

// kernel fills one match vector word per 64-element block of set.
// len(set) is a multiple of BlockSize and len(matchVector) == len(set)/BlockSize.
type kernel func(set []byte, value byte, matchVector []uint64)

var goKernels [signingCount][booleanOperatorCount][compareOperatorCount]kernel

func init() {
	for sign := Signing(0); sign < signingCount; sign++ {
		for bOp := BooleanOperator(0); bOp < booleanOperatorCount; bOp++ {
			for cOp := CompareOperator(0); cOp < compareOperatorCount; cOp++ {
				goKernels[sign][bOp][cOp] = newGoKernel(cOp, bOp, sign)
			}
		}
	}
}

func whereBlocksGo(cOp CompareOperator, bOp BooleanOperator, sign Signing, set []byte, value byte, matchVector []uint64) {
	goKernels[sign][bOp][cOp](set, value, matchVector)
}

// newGoKernel resolves the operator, combine rule and signing into a single
// loop whose body does not branch on any of them.
func newGoKernel(cOp CompareOperator, bOp BooleanOperator, sign Signing) kernel {
	var cmp laneCompare
	var negate uint64
	switch cOp {
	case GreaterThan:
		cmp = greaterLane
	case LessThan:
		cmp = lessLane
	case GreaterThanOrEqual:
		cmp, negate = lessLane, ^uint64(0)
	case LessThanOrEqual:
		cmp, negate = greaterLane, ^uint64(0)
	case Equals:
		cmp = equalLane
	case NotEquals:
		cmp, negate = equalLane, ^uint64(0)
	}

	// lanes compare unsigned, so signed input is biased by flipping the sign bit
	var bias uint64
	if sign == Signed {
		bias = highBits
	}

	var combine func(dst *uint64, v uint64)
	switch bOp {
	case Set:
		combine = setWord
	case And:
		combine = andWord
	case Or:
		combine = orWord
	}

	return func(set []byte, value byte, matchVector []uint64) {
		v := uint64(value)*oneBytes ^ bias
		for i := range matchVector {
			block := set[i*BlockSize : (i+1)*BlockSize]
			combine(&matchVector[i], matchBlock(block, v, bias, cmp)^negate)
		}
	}
}

// matchBlock compares a 64-byte block lane by lane and merges the per-lane
// bits so that element j of the block lands on bit j of the result.
func matchBlock(block []byte, value, bias uint64, cmp laneCompare) uint64 {
	_ = block[BlockSize-1]

	var result uint64
	for l := 0; l < lanesPerBlock; l++ {
		lane := binary.LittleEndian.Uint64(block[l*laneWidth:]) ^ bias
		result |= moveMask(cmp(lane, value)) << (l * laneWidth)
	}
	return result
}

func greaterLane(lane, value uint64) uint64 { return lessMask(value, lane) }
func lessLane(lane, value uint64) uint64    { return lessMask(lane, value) }
func equalLane(lane, value uint64) uint64   { return equalMask(lane, value) }

// lessMask sets the high bit of each byte where x < y as unsigned bytes.
// The low seven bits are subtracted with the high bit of x forced on so no
// borrow leaves a byte; the borrow into bit 7 is then folded with the high
// bits of x and y.
func lessMask(x, y uint64) uint64 {
	t := (x | highBits) - (y &^ highBits)
	return (^x&y | ^(x^y)&^t) & highBits
}

// equalMask sets the high bit of each byte where x == y.
func equalMask(x, y uint64) uint64 {
	d := x ^ y
	return ^((d&lowBits + lowBits) | d) & highBits
}

// moveMask packs the high bit of each byte of m into the low eight bits.
func moveMask(m uint64) uint64 {
	return (m >> 7 * gatherMagic) >> 56
}

func setWord(dst *uint64, v uint64) { *dst = v }
func andWord(dst *uint64, v uint64) { *dst &= v }
func orWord(dst *uint64, v uint64)  { *dst |= v }
