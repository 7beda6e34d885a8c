package compare

import "strconv"

// BlockSize is the number of elements covered by one match vector word.
const BlockSize = 64

// CompareOperator is the relation tested between each element and the value.
type CompareOperator uint8

const (
	Equals             CompareOperator = iota // element == value
	NotEquals                                 // element != value
	LessThan                                  // element < value
	LessThanOrEqual                           // element <= value
	GreaterThan                               // element > value
	GreaterThanOrEqual                        // element >= value

	compareOperatorCount
)

var compareOperatorNames = [compareOperatorCount]string{
	Equals:             "Equals",
	NotEquals:          "NotEquals",
	LessThan:           "LessThan",
	LessThanOrEqual:    "LessThanOrEqual",
	GreaterThan:        "GreaterThan",
	GreaterThanOrEqual: "GreaterThanOrEqual",
}

func (op CompareOperator) String() string {
	if op < compareOperatorCount {
		return compareOperatorNames[op]
	}
	return "CompareOperator(" + strconv.Itoa(int(op)) + ")"
}

// BooleanOperator decides how a freshly computed match bit is merged into
// the bit already present in the match vector.
type BooleanOperator uint8

const (
	Set BooleanOperator = iota // overwrite the existing bit
	And                        // keep rows already set that also match
	Or                         // add matching rows to those already set

	booleanOperatorCount
)

var booleanOperatorNames = [booleanOperatorCount]string{
	Set: "Set",
	And: "And",
	Or:  "Or",
}

func (op BooleanOperator) String() string {
	if op < booleanOperatorCount {
		return booleanOperatorNames[op]
	}
	return "BooleanOperator(" + strconv.Itoa(int(op)) + ")"
}

// Signing selects whether bytes are ordered as int8 or uint8.
// Equals and NotEquals ignore it.
type Signing uint8

const (
	Signed   Signing = iota // bytes are int8, -128..127
	Unsigned                // bytes are uint8, 0..255

	signingCount
)

func (s Signing) String() string {
	switch s {
	case Signed:
		return "Signed"
	case Unsigned:
		return "Unsigned"
	}
	return "Signing(" + strconv.Itoa(int(s)) + ")"
}

// WordCount returns the number of match vector words needed for n elements.
func WordCount(n int) int {
	return (n + BlockSize - 1) / BlockSize
}
