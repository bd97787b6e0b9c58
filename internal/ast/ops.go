package ast

// OpClass groups operators by the kind of operation they perform.
type OpClass int

const (
	// OpBinary covers arithmetic and bitwise operators.
	OpBinary OpClass = iota
	// OpUnary covers prefix and postfix operators. The generator does
	// not currently produce them.
	OpUnary
	// OpLogical covers boolean connectives.
	OpLogical
	// OpComparison covers relational operators.
	OpComparison
	// OpAssignment covers `=` and the compound assignments.
	OpAssignment
)

// String returns the class display name.
func (c OpClass) String() string {
	switch c {
	case OpUnary:
		return "unary"
	case OpLogical:
		return "logical"
	case OpComparison:
		return "comparison"
	case OpAssignment:
		return "assignment"
	default:
		return "binary"
	}
}

// Op is one recognized operator: its class plus the source lexeme.
type Op struct {
	Class OpClass
	Name  string
}

// opTable maps every recognized operator lexeme to its class. The
// word forms `and`/`or` arrive from the tokenizer as operator tokens
// and map onto the logical connectives.
var opTable = map[string]OpClass{
	"=":   OpAssignment,
	"+=":  OpAssignment,
	"-=":  OpAssignment,
	"*=":  OpAssignment,
	"/=":  OpAssignment,
	"%=":  OpAssignment,
	"&=":  OpAssignment,
	"|=":  OpAssignment,
	"^=":  OpAssignment,
	"<<=": OpAssignment,
	">>=": OpAssignment,

	"==": OpComparison,
	"!=": OpComparison,
	"<":  OpComparison,
	">":  OpComparison,
	"<=": OpComparison,
	">=": OpComparison,

	"<<": OpBinary,
	">>": OpBinary,
	"&":  OpBinary,
	"|":  OpBinary,
	"^":  OpBinary,
	"!":  OpBinary,
	"~":  OpBinary,
	"-":  OpBinary,
	"+":  OpBinary,
	"*":  OpBinary,
	"/":  OpBinary,
	"%":  OpBinary,

	"&&":  OpLogical,
	"||":  OpLogical,
	"and": OpLogical,
	"or":  OpLogical,
}

// OpFromString resolves an operator lexeme. Unknown lexemes return
// false and the caller reports a diagnostic.
func OpFromString(lexeme string) (Op, bool) {
	class, ok := opTable[lexeme]
	if !ok {
		return Op{}, false
	}
	return Op{Class: class, Name: lexeme}, true
}

// String returns the operator lexeme.
func (o Op) String() string { return o.Name }
