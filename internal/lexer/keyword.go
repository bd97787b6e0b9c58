package lexer

// KeyWord is a reserved word of the language. The zero value KwNone
// marks tokens that are not keywords.
type KeyWord string

const (
	KwNone KeyWord = ""

	KwNamespace  KeyWord = "namespace"
	KwConst      KeyWord = "const"
	KwVar        KeyWord = "var"
	KwFunction   KeyWord = "function"
	KwClass      KeyWord = "class"
	KwInterface  KeyWord = "interface"
	KwType       KeyWord = "type"
	KwIf         KeyWord = "if"
	KwElse       KeyWord = "else"
	KwPublic     KeyWord = "pub"
	KwPrivate    KeyWord = "priv"
	KwProtected  KeyWord = "prot"
	KwStatic     KeyWord = "static"
	KwReturn     KeyWord = "return"
	KwBreak      KeyWord = "break"
	KwContinue   KeyWord = "continue"
	KwFor        KeyWord = "for"
	KwWhile      KeyWord = "while"
	KwDo         KeyWord = "do"
	KwNew        KeyWord = "new"
	KwExtends    KeyWord = "extends"
	KwImplements KeyWord = "implements"
	KwDrop       KeyWord = "drop"
	KwUse        KeyWord = "use"
)

// MaxKeywordLength bounds the lookahead the keyword rule needs.
// "implements" is the longest entry.
const MaxKeywordLength = 10

var keywords = map[string]KeyWord{
	"namespace":  KwNamespace,
	"const":      KwConst,
	"var":        KwVar,
	"function":   KwFunction,
	"class":      KwClass,
	"interface":  KwInterface,
	"type":       KwType,
	"if":         KwIf,
	"else":       KwElse,
	"pub":        KwPublic,
	"priv":       KwPrivate,
	"prot":       KwProtected,
	"static":     KwStatic,
	"return":     KwReturn,
	"break":      KwBreak,
	"continue":   KwContinue,
	"for":        KwFor,
	"while":      KwWhile,
	"do":         KwDo,
	"new":        KwNew,
	"extends":    KwExtends,
	"implements": KwImplements,
	"drop":       KwDrop,
	"use":        KwUse,
}

// LookupKeyword resolves an exact keyword lexeme.
func LookupKeyword(word string) (KeyWord, bool) {
	kw, ok := keywords[word]
	return kw, ok
}

// IsVisibility reports whether the keyword names an access level.
func (k KeyWord) IsVisibility() bool {
	return k == KwPublic || k == KwPrivate || k == KwProtected
}

// IsDeclarative reports whether the keyword opens a declaration.
func (k KeyWord) IsDeclarative() bool {
	switch k {
	case KwVar, KwConst, KwFunction, KwClass, KwInterface:
		return true
	default:
		return false
	}
}

// IsControl reports whether the keyword belongs to a control construct.
func (k KeyWord) IsControl() bool {
	return k == KwIf || k == KwElse
}

func (k KeyWord) String() string {
	return string(k)
}
