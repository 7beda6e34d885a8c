package compare

// whereSingle evaluates the predicate element by element for a tail of fewer
// than BlockSize elements and merges the result into the low len(set) bits of
// word. Higher bits of word are preserved.
func whereSingle(cOp CompareOperator, bOp BooleanOperator, sign Signing, set []byte, value byte, word *uint64) {
	var result uint64
	for i, b := range set {
		if matches(cOp, sign, b, value) {
			result |= 1 << i
		}
	}

	// a shift by 64 yields 0, so a full block still gets an all-ones mask
	mask := uint64(1)<<uint(len(set)) - 1

	switch bOp {
	case Set:
		*word = *word&^mask | result
	case And:
		*word &= result | ^mask
	case Or:
		*word |= result
	}
}

func matches(cOp CompareOperator, sign Signing, b, value byte) bool {
	x, v := int(b), int(value)
	if sign == Signed {
		x, v = int(int8(b)), int(int8(value))
	}

	switch cOp {
	case Equals:
		return x == v
	case NotEquals:
		return x != v
	case LessThan:
		return x < v
	case LessThanOrEqual:
		return x <= v
	case GreaterThan:
		return x > v
	case GreaterThanOrEqual:
		return x >= v
	}
	return false
}
