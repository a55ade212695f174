package ast

// AssignOp is an assignment operator.
type AssignOp int

const (
	AssignPlain AssignOp = iota
	AssignPlus
	AssignMinus
	AssignTimes
	AssignDivide
	AssignRemainder
	AssignBitAnd
	AssignBitOr
	AssignBitXor
	AssignLeftShift
	AssignRightShiftSigned
	AssignRightShiftUnsigned
)

var assignOpTokens = [...]string{
	AssignPlain:              "=",
	AssignPlus:               "+=",
	AssignMinus:              "-=",
	AssignTimes:              "*=",
	AssignDivide:             "/=",
	AssignRemainder:          "%=",
	AssignBitAnd:             "&=",
	AssignBitOr:              "|=",
	AssignBitXor:             "^=",
	AssignLeftShift:          "<<=",
	AssignRightShiftSigned:   ">>=",
	AssignRightShiftUnsigned: ">>>=",
}

func (op AssignOp) String() string { return opString(assignOpTokens[:], int(op)) }

// Binary returns the infix operator applied by a compound assignment, and
// false for plain assignment.
func (op AssignOp) Binary() (InfixOp, bool) {
	switch op {
	case AssignPlus:
		return InfixPlus, true
	case AssignMinus:
		return InfixMinus, true
	case AssignTimes:
		return InfixTimes, true
	case AssignDivide:
		return InfixDivide, true
	case AssignRemainder:
		return InfixRemainder, true
	case AssignBitAnd:
		return InfixAnd, true
	case AssignBitOr:
		return InfixOr, true
	case AssignBitXor:
		return InfixXor, true
	case AssignLeftShift:
		return InfixLeftShift, true
	case AssignRightShiftSigned:
		return InfixRightShiftSigned, true
	case AssignRightShiftUnsigned:
		return InfixRightShiftUnsigned, true
	}
	return 0, false
}

// ParseAssignOp maps a source token to its operator.
func ParseAssignOp(tok string) (AssignOp, bool) {
	i, ok := parseOp(assignOpTokens[:], tok)
	return AssignOp(i), ok
}

// InfixOp is a binary operator.
type InfixOp int

const (
	InfixTimes InfixOp = iota
	InfixDivide
	InfixRemainder
	InfixPlus
	InfixMinus
	InfixLeftShift
	InfixRightShiftSigned
	InfixRightShiftUnsigned
	InfixLess
	InfixGreater
	InfixLessEquals
	InfixGreaterEquals
	InfixEquals
	InfixNotEquals
	InfixXor
	InfixAnd
	InfixOr
	InfixConditionalAnd
	InfixConditionalOr
)

var infixOpTokens = [...]string{
	InfixTimes:              "*",
	InfixDivide:             "/",
	InfixRemainder:          "%",
	InfixPlus:               "+",
	InfixMinus:              "-",
	InfixLeftShift:          "<<",
	InfixRightShiftSigned:   ">>",
	InfixRightShiftUnsigned: ">>>",
	InfixLess:               "<",
	InfixGreater:            ">",
	InfixLessEquals:         "<=",
	InfixGreaterEquals:      ">=",
	InfixEquals:             "==",
	InfixNotEquals:          "!=",
	InfixXor:                "^",
	InfixAnd:                "&",
	InfixOr:                 "|",
	InfixConditionalAnd:     "&&",
	InfixConditionalOr:      "||",
}

func (op InfixOp) String() string { return opString(infixOpTokens[:], int(op)) }

// IsComparison reports whether op yields a boolean from its operands.
func (op InfixOp) IsComparison() bool {
	return op >= InfixLess && op <= InfixNotEquals
}

// IsLogical reports whether op is && or ||.
func (op InfixOp) IsLogical() bool {
	return op == InfixConditionalAnd || op == InfixConditionalOr
}

// IsShift reports whether op is a shift.
func (op InfixOp) IsShift() bool {
	return op >= InfixLeftShift && op <= InfixRightShiftUnsigned
}

// ParseInfixOp maps a source token to its operator.
func ParseInfixOp(tok string) (InfixOp, bool) {
	i, ok := parseOp(infixOpTokens[:], tok)
	return InfixOp(i), ok
}

// PrefixOp is a unary prefix operator.
type PrefixOp int

const (
	PrefixIncrement PrefixOp = iota
	PrefixDecrement
	PrefixPlus
	PrefixMinus
	PrefixComplement
	PrefixNot
)

var prefixOpTokens = [...]string{
	PrefixIncrement:  "++",
	PrefixDecrement:  "--",
	PrefixPlus:       "+",
	PrefixMinus:      "-",
	PrefixComplement: "~",
	PrefixNot:        "!",
}

func (op PrefixOp) String() string { return opString(prefixOpTokens[:], int(op)) }

// ParsePrefixOp maps a source token to its operator.
func ParsePrefixOp(tok string) (PrefixOp, bool) {
	i, ok := parseOp(prefixOpTokens[:], tok)
	return PrefixOp(i), ok
}

// PostfixOp is a unary postfix operator.
type PostfixOp int

const (
	PostfixIncrement PostfixOp = iota
	PostfixDecrement
)

var postfixOpTokens = [...]string{
	PostfixIncrement: "++",
	PostfixDecrement: "--",
}

func (op PostfixOp) String() string { return opString(postfixOpTokens[:], int(op)) }

// ParsePostfixOp maps a source token to its operator.
func ParsePostfixOp(tok string) (PostfixOp, bool) {
	i, ok := parseOp(postfixOpTokens[:], tok)
	return PostfixOp(i), ok
}

func opString(tokens []string, i int) string {
	if i >= 0 && i < len(tokens) {
		return tokens[i]
	}
	return "?"
}

func parseOp(tokens []string, tok string) (int, bool) {
	for i, t := range tokens {
		if t == tok {
			return i, true
		}
	}
	return 0, false
}
