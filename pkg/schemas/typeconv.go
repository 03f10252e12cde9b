package schemas

import (
	"go/types"

	"github.com/thorn-jmh/errorst"
)

// typeFromGo converts a type-checked field type into a type token.
func typeFromGo(t types.Type) (Type, error) {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		if t.Kind() == types.UnsafePointer {
			return Type{Kind: KindNamed, Name: "Pointer", Domain: "unsafe", Comparable: true}, nil
		}
		if t.Kind() == types.Invalid || t.Info()&types.IsUntyped != 0 {
			return Type{}, errorst.Wrap(ErrUnsupportedType, "untyped %s", t)
		}
		return Type{
			Kind:       KindNamed,
			Name:       t.Name(),
			Ordered:    t.Info()&types.IsOrdered != 0,
			Comparable: true,
		}, nil
	case *types.Named:
		if t.TypeArgs().Len() > 0 || t.TypeParams().Len() > 0 {
			return Type{}, errorst.Wrap(ErrUnsupportedType, "generic type %s", t)
		}
		obj := t.Obj()
		typ := Type{Kind: KindNamed, Name: obj.Name(), Comparable: types.Comparable(t)}
		if obj.Pkg() != nil {
			typ.Domain = obj.Pkg().Path()
		}
		if b, ok := t.Underlying().(*types.Basic); ok {
			typ.Ordered = b.Info()&types.IsOrdered != 0
		}
		return typ, nil
	case *types.Pointer:
		elem, err := typeFromGo(t.Elem())
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: KindPointer, Elem: &elem, Comparable: true}, nil
	case *types.Slice:
		elem, err := typeFromGo(t.Elem())
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: KindSlice, Elem: &elem}, nil
	case *types.Array:
		elem, err := typeFromGo(t.Elem())
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: KindArray, Len: t.Len(), Elem: &elem, Comparable: elem.Comparable}, nil
	case *types.Map:
		key, err := typeFromGo(t.Key())
		if err != nil {
			return Type{}, err
		}
		elem, err := typeFromGo(t.Elem())
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: KindMap, Key: &key, Elem: &elem}, nil
	case *types.Interface:
		if t.Empty() {
			return Type{Kind: KindNamed, Name: "any", Comparable: true}, nil
		}
	}
	return Type{}, errorst.Wrap(ErrUnsupportedType, "%s cannot be named outside its declaration", t)
}

// namedStruct reports whether t is a non-generic named struct type, the only
// kind of type a nested column accepts.
func namedStruct(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.TypeArgs().Len() > 0 || named.TypeParams().Len() > 0 {
		return false
	}
	_, ok = named.Underlying().(*types.Struct)
	return ok
}
