package ast

import "strings"

// TypeKind is one parsed type shape. The interface is sealed; only
// types in this package implement it.
type TypeKind interface {
	typeKind()
	String() string
}

// TypeUnion is a type that can be any of its members, such as
// `int | string`.
type TypeUnion struct {
	Types []TypeKind
}

// NewTypeUnion constructs a union over the given members.
func NewTypeUnion(types []TypeKind) *TypeUnion {
	return &TypeUnion{Types: types}
}

func (*TypeUnion) typeKind() {}

// String renders the union in source form.
func (t *TypeUnion) String() string {
	parts := make([]string, 0, len(t.Types))
	for _, member := range t.Types {
		parts = append(parts, member.String())
	}
	return strings.Join(parts, " | ")
}

// TypeReference names a type defined elsewhere, such as an alias or a
// class, optionally with generic parameters: `Map<K, V>`.
type TypeReference struct {
	Name string
	// Params are the generic arguments; nil when the reference is
	// bare.
	Params []TypeParam
}

// NewTypeReference constructs a type reference.
func NewTypeReference(name string, params []TypeParam) *TypeReference {
	return &TypeReference{Name: name, Params: params}
}

func (*TypeReference) typeKind() {}

// String renders the reference in source form.
func (t *TypeReference) String() string {
	if len(t.Params) == 0 {
		return t.Name
	}
	parts := make([]string, 0, len(t.Params))
	for _, p := range t.Params {
		parts = append(parts, p.Kind.String())
	}
	return t.Name + "<" + strings.Join(parts, ", ") + ">"
}

// RuntimeType is a type evaluated at runtime rather than defined by
// an alias, such as `type AnyNumber(x) = std::isFloat(x);`. Parsed
// shape reserved for future use.
type RuntimeType struct {
	Params []TypeParam
	Body   Expression
}

func (*RuntimeType) typeKind() {}

// String renders the runtime type marker.
func (t *RuntimeType) String() string { return "runtime" }

// BuiltInKind identifies one of the language-defined types.
type BuiltInKind int

const (
	// BuiltInByte is a single byte.
	BuiltInByte BuiltInKind = iota
	// BuiltInShort is a 16 bit number.
	BuiltInShort
	// BuiltInInt covers the i8 to i64 range.
	BuiltInInt
	// BuiltInLong covers the i64 to i128 range.
	BuiltInLong
	// BuiltInFloat is an f32 number.
	BuiltInFloat
	// BuiltInDouble is an f64 number.
	BuiltInDouble
	// BuiltInBool is a boolean.
	BuiltInBool
	// BuiltInString is a heap allocated string.
	BuiltInString
	// BuiltInArray is an array of an element type.
	BuiltInArray
	// BuiltInAny matches any type. Disabled in strict mode.
	BuiltInAny
	// BuiltInStrict is a width-exact type selected by the Strict
	// field.
	BuiltInStrict
)

// String returns the lexeme of the built-in kind.
func (k BuiltInKind) String() string {
	switch k {
	case BuiltInByte:
		return "byte"
	case BuiltInShort:
		return "short"
	case BuiltInInt:
		return "int"
	case BuiltInLong:
		return "long"
	case BuiltInFloat:
		return "float"
	case BuiltInDouble:
		return "double"
	case BuiltInBool:
		return "bool"
	case BuiltInString:
		return "string"
	case BuiltInArray:
		return "array"
	case BuiltInAny:
		return "any"
	default:
		return "strict"
	}
}

// StrictKind identifies a width-exact built-in, available when the
// strict-types flag is enabled.
type StrictKind int

const (
	StrictNone StrictKind = iota
	StrictU8
	StrictU16
	StrictU32
	StrictU64
	StrictU128
	StrictI8
	StrictI16
	StrictI32
	StrictI64
	StrictI128
	StrictF32
	StrictF64
)

// String returns the lexeme of the strict kind.
func (k StrictKind) String() string {
	switch k {
	case StrictU8:
		return "u8"
	case StrictU16:
		return "u16"
	case StrictU32:
		return "u32"
	case StrictU64:
		return "u64"
	case StrictU128:
		return "u128"
	case StrictI8:
		return "i8"
	case StrictI16:
		return "i16"
	case StrictI32:
		return "i32"
	case StrictI64:
		return "i64"
	case StrictI128:
		return "i128"
	case StrictF32:
		return "f32"
	case StrictF64:
		return "f64"
	default:
		return ""
	}
}

// BuiltInType is a type defined by the language itself.
type BuiltInType struct {
	Kind BuiltInKind
	// Strict selects the exact width when Kind is BuiltInStrict.
	Strict StrictKind
	// Elem is the element type when Kind is BuiltInArray.
	Elem TypeKind
}

func (*BuiltInType) typeKind() {}

// String renders the built-in in source form.
func (t *BuiltInType) String() string {
	if t.Kind == BuiltInStrict {
		return t.Strict.String()
	}
	return t.Kind.String()
}

// strictTable maps the width-exact lexemes onto their strict kinds.
var strictTable = map[string]StrictKind{
	"u8":   StrictU8,
	"u16":  StrictU16,
	"u32":  StrictU32,
	"u64":  StrictU64,
	"u128": StrictU128,
	"i8":   StrictI8,
	"i16":  StrictI16,
	"i32":  StrictI32,
	"i64":  StrictI64,
	"i128": StrictI128,
	"f32":  StrictF32,
	"f64":  StrictF64,
}

// LookupBuiltIn resolves a type name to its built-in type. Names
// outside the table return false; the caller keeps them as
// references. `array` defaults its element type to `any`.
func LookupBuiltIn(name string) (TypeKind, bool) {
	switch name {
	case "byte":
		return &BuiltInType{Kind: BuiltInByte}, true
	case "short":
		return &BuiltInType{Kind: BuiltInShort}, true
	case "int":
		return &BuiltInType{Kind: BuiltInInt}, true
	case "long":
		return &BuiltInType{Kind: BuiltInLong}, true
	case "float":
		return &BuiltInType{Kind: BuiltInFloat}, true
	case "double":
		return &BuiltInType{Kind: BuiltInDouble}, true
	case "bool":
		return &BuiltInType{Kind: BuiltInBool}, true
	case "string":
		return &BuiltInType{Kind: BuiltInString}, true
	case "array":
		return &BuiltInType{Kind: BuiltInArray, Elem: &BuiltInType{Kind: BuiltInAny}}, true
	case "any":
		return &BuiltInType{Kind: BuiltInAny}, true
	}
	if strict, ok := strictTable[name]; ok {
		return &BuiltInType{Kind: BuiltInStrict, Strict: strict}, true
	}
	return nil, false
}

// TypeParam is one generic parameter, such as `T` in `caller<T>`.
type TypeParam struct {
	// Name of the parameter when declared; empty for usage sites.
	Name string
	Kind TypeKind
}

// NewTypeParam constructs an unnamed type parameter.
func NewTypeParam(kind TypeKind) TypeParam {
	return TypeParam{Kind: kind}
}

// TypeDefinition is a named type alias, `type Foo<K, V> = Map<K, V>;`.
type TypeDefinition struct {
	// Name of the alias, e.g. `Foo` in `type Foo = int`.
	Name string
	// Params are the declared generic parameters; nil when absent.
	Params []TypeParam
	// Kind is the aliased type shape.
	Kind TypeKind
}

// NewTypeDefinition constructs a type definition.
func NewTypeDefinition(name string, params []TypeParam, kind TypeKind) TypeDefinition {
	return TypeDefinition{Name: name, Params: params, Kind: kind}
}

// TypeID indexes a definition inside a TypeStore.
type TypeID int

// TypeStore holds every type definition of a context so types can be
// resolved outside their declaring scope. Definitions live in an
// arena; ids are slot indexes and are never reused.
type TypeStore struct {
	types []TypeDefinition
}

// NewTypeStore constructs an empty store.
func NewTypeStore() *TypeStore {
	return &TypeStore{}
}

// Add appends a definition and returns its id.
func (s *TypeStore) Add(def TypeDefinition) TypeID {
	s.types = append(s.types, def)
	return TypeID(len(s.types) - 1)
}

// Get returns the definition behind id.
func (s *TypeStore) Get(id TypeID) (*TypeDefinition, bool) {
	if id < 0 || int(id) >= len(s.types) {
		return nil, false
	}
	return &s.types[id], true
}

// Len returns the number of stored definitions.
func (s *TypeStore) Len() int {
	return len(s.types)
}
