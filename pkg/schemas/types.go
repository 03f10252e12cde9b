package schemas

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/thorn-jmh/errorst"
)

// Companion is one of the generated types associated with a record.
type Companion int

const (
	CompanionVec Companion = iota
	CompanionSlice
	CompanionSliceMut
	CompanionRef
	CompanionRefMut
	CompanionPtr
	CompanionPtrMut
)

var companionNames = [...]string{
	CompanionVec:      "Vec",
	CompanionSlice:    "Slice",
	CompanionSliceMut: "SliceMut",
	CompanionRef:      "Ref",
	CompanionRefMut:   "RefMut",
	CompanionPtr:      "Ptr",
	CompanionPtrMut:   "PtrMut",
}

// Companions lists every companion kind in declaration order.
func Companions() []Companion {
	return []Companion{
		CompanionVec, CompanionSlice, CompanionSliceMut,
		CompanionRef, CompanionRefMut, CompanionPtr, CompanionPtrMut,
	}
}

// String returns the suffix the companion adds to the record name.
func (c Companion) String() string {
	if c < 0 || int(c) >= len(companionNames) {
		return "Companion(" + strconv.Itoa(int(c)) + ")"
	}
	return companionNames[c]
}

// ParseCompanion maps a companion suffix such as "SliceMut" to its kind.
func ParseCompanion(s string) (Companion, bool) {
	for i, name := range companionNames {
		if name == s {
			return Companion(i), true
		}
	}
	return 0, false
}

// Derive is an auxiliary behaviour forwarded to the companions.
type Derive string

const (
	DeriveStringer Derive = "Stringer" // String() on every companion
	DeriveEqual    Derive = "Equal"    // Equal() on the containers
	DeriveClone    Derive = "Clone"    // Clone() on the vector
	DeriveJSON     Derive = "JSON"     // json tags and length-checked decoding on the vector
	DeriveOrdered  Derive = "Ordered"  // Compare() on Ref, Sort() on SliceMut
)

var knownDerives = []Derive{DeriveStringer, DeriveEqual, DeriveClone, DeriveJSON, DeriveOrdered}

// ParseDerive recognises a derive name.
func ParseDerive(s string) (Derive, bool) {
	for _, d := range knownDerives {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// AppliesTo reports whether d is forwarded to companion c. Equality,
// cloning and serialization mean something different on a bundle of
// references or addresses, so they never reach the Refs and Ptrs.
func (d Derive) AppliesTo(c Companion) bool {
	switch d {
	case DeriveStringer:
		return true
	case DeriveEqual:
		return c == CompanionVec || c == CompanionSlice || c == CompanionSliceMut
	case DeriveClone, DeriveJSON:
		return c == CompanionVec
	case DeriveOrdered:
		return c == CompanionRef || c == CompanionSliceMut
	}
	return false
}

// Kind is the shape of a type token.
type Kind int

const (
	KindNamed Kind = iota
	KindPointer
	KindSlice
	KindArray
	KindMap
)

// Type is a field type token, resolved enough to be re-emitted in another
// file of the same package.
type Type struct {
	Kind   Kind
	Name   string // KindNamed: type name
	Domain string // KindNamed: package path, empty for predeclared types
	Len    int64  // KindArray: length
	Key    *Type  // KindMap: key type
	Elem   *Type  // pointer, slice, array and map element

	Ordered    bool // values support < and cmp.Compare
	Comparable bool // values support ==
}

// Predeclared reports whether t is one of Go's predeclared types.
func (t Type) Predeclared() bool {
	return t.Kind == KindNamed && t.Domain == ""
}

func (t Type) String() string {
	switch t.Kind {
	case KindPointer:
		return "*" + t.Elem.String()
	case KindSlice:
		return "[]" + t.Elem.String()
	case KindArray:
		return fmt.Sprintf("[%d]%s", t.Len, t.Elem.String())
	case KindMap:
		return fmt.Sprintf("map[%s]%s", t.Key.String(), t.Elem.String())
	default:
		if t.Domain != "" {
			return t.Domain + "." + t.Name
		}
		return t.Name
	}
}

var predeclared = map[string]struct{ ordered bool }{
	"bool": {false}, "string": {true}, "error": {false}, "any": {false},
	"int": {true}, "int8": {true}, "int16": {true}, "int32": {true}, "int64": {true},
	"uint": {true}, "uint8": {true}, "uint16": {true}, "uint32": {true}, "uint64": {true},
	"uintptr": {true}, "byte": {true}, "rune": {true},
	"float32": {true}, "float64": {true},
	"complex64": {false}, "complex128": {false},
}

// ParseType parses a textual type token such as "float64", "[]*geo.Point"
// with a full package path before the last dot, "[4]int" or
// "map[string]example.com/geo.Point".
func ParseType(tok string) (Type, error) {
	tok = strings.TrimSpace(tok)
	switch {
	case tok == "":
		return Type{}, errorst.Wrap(ErrUnsupportedType, "empty type")
	case strings.HasPrefix(tok, "*"):
		elem, err := ParseType(tok[1:])
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: KindPointer, Elem: &elem, Comparable: true}, nil
	case strings.HasPrefix(tok, "[]"):
		elem, err := ParseType(tok[2:])
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: KindSlice, Elem: &elem}, nil
	case strings.HasPrefix(tok, "["):
		end := strings.IndexByte(tok, ']')
		if end < 0 {
			return Type{}, errorst.Wrap(ErrUnsupportedType, "unterminated array length in %q", tok)
		}
		n, err := strconv.ParseInt(tok[1:end], 10, 64)
		if err != nil || n < 0 {
			return Type{}, errorst.Wrap(ErrUnsupportedType, "invalid array length in %q", tok)
		}
		elem, err := ParseType(tok[end+1:])
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: KindArray, Len: n, Elem: &elem, Comparable: elem.Comparable}, nil
	case strings.HasPrefix(tok, "map["):
		end := matchingBracket(tok, len("map"))
		if end < 0 {
			return Type{}, errorst.Wrap(ErrUnsupportedType, "unterminated map key in %q", tok)
		}
		key, err := ParseType(tok[len("map["):end])
		if err != nil {
			return Type{}, err
		}
		elem, err := ParseType(tok[end+1:])
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: KindMap, Key: &key, Elem: &elem}, nil
	}

	domain, name := "", tok
	if dot := strings.LastIndexByte(tok, '.'); dot >= 0 {
		domain, name = tok[:dot], tok[dot+1:]
	}
	if !token.IsIdentifier(name) {
		return Type{}, errorst.Wrap(ErrUnsupportedType, "invalid type name %q", tok)
	}
	if domain == "" {
		info, ok := predeclared[name]
		if !ok {
			return Type{}, errorst.Wrap(ErrUnsupportedType, "unqualified type %q is not predeclared", tok)
		}
		return Type{Kind: KindNamed, Name: name, Ordered: info.ordered, Comparable: true}, nil
	}
	return Type{Kind: KindNamed, Name: name, Domain: domain, Comparable: true}, nil
}

// matchingBracket returns the index of the ']' closing the '[' at open.
func matchingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
