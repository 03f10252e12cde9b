package soagen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"soagen/pkg/schemas"
)

// deriveDecl generates the methods requested with //soa:derive. A nested
// column relies on its own record deriving the same behaviour.
type deriveDecl struct {
	*Context
}

func (d *deriveDecl) Gen(f *jen.File) error {
	for _, derive := range d.Record.Attrs.Derives {
		switch derive {
		case schemas.DeriveStringer:
			d.stringer(f)
		case schemas.DeriveEqual:
			d.equal(f)
		case schemas.DeriveClone:
			d.clone(f)
		case schemas.DeriveJSON:
			d.json(f)
		case schemas.DeriveOrdered:
			d.ordered(f)
		default:
			return schemas.ErrUnknownDerive
		}
	}
	return nil
}

func (d *deriveDecl) stringer(f *jen.File) {
	n := d.Names
	str := func(recv string, typ jen.Code, body ...jen.Code) {
		method(f, recv, typ, "String").Params().String().Block(body...)
	}

	f.Comment("String formats the referenced element.")
	str("r", jen.Id(n.Ref), jen.Return(jen.Qual("fmt", "Sprint").Call(jen.Id("r").Dot("Value").Call())))
	f.Comment("String formats the referenced element.")
	str("r", jen.Id(n.RefMut), jen.Return(jen.Id("r").Dot("AsRef").Call().Dot("String").Call()))

	f.Comment("String formats the elements of s between brackets.")
	str("s", jen.Id(n.Slice),
		jen.Var().Id("b").Qual("strings", "Builder"),
		jen.Id("b").Dot("WriteByte").Call(jen.LitRune('[')),
		jen.For(jen.List(jen.Id("i"), jen.Id("n")).Op(":=").List(jen.Lit(0), jen.Id("s").Dot("Len").Call()),
			jen.Id("i").Op("<").Id("n"), jen.Id("i").Op("++")).Block(
			jen.If(jen.Id("i").Op(">").Lit(0)).Block(jen.Id("b").Dot("WriteByte").Call(jen.LitRune(' '))),
			jen.Id("b").Dot("WriteString").Call(jen.Id("s").Dot("Index").Call(jen.Id("i")).Dot("String").Call()),
		),
		jen.Id("b").Dot("WriteByte").Call(jen.LitRune(']')),
		jen.Return(jen.Id("b").Dot("String").Call()),
	)
	f.Comment("String formats the elements of s between brackets.")
	str("s", jen.Id(n.SliceMut), jen.Return(jen.Id("s").Dot("AsSlice").Call().Dot("String").Call()))
	f.Comment("String formats the elements of v between brackets.")
	str("v", jen.Op("*").Id(n.Vec), jen.Return(jen.Id("v").Dot("AsSlice").Call().Dot("String").Call()))

	for _, name := range []string{n.Ptr, n.PtrMut} {
		var verbs []string
		var args []jen.Code
		for _, fl := range d.Record.Fields {
			verb := "%p"
			if fl.Nested {
				verb = "%v"
			}
			verbs = append(verbs, fl.Name+": "+verb)
			args = append(args, jen.Id("p").Dot(fl.Name))
		}
		format := fmt.Sprintf("%s{%s}", name, strings.Join(verbs, ", "))
		f.Comment("String formats the column addresses.")
		str("p", jen.Id(name), jen.Return(jen.Qual("fmt", "Sprintf").Call(append([]jen.Code{jen.Lit(format)}, args...)...)))
	}
}

func (d *deriveDecl) equal(f *jen.File) {
	n := d.Names

	f.Comment("Equal reports whether s and other hold equal elements in the same order.")
	method(f, "s", jen.Id(n.Slice), "Equal").Params(jen.Id("other").Id(n.Slice)).Bool().BlockFunc(func(g *jen.Group) {
		g.If(jen.Id("s").Dot("Len").Call().Op("!=").Id("other").Dot("Len").Call()).Block(jen.Return(jen.False()))
		var conds []jen.Code
		for _, fl := range d.Record.Fields {
			if fl.Nested {
				conds = append(conds, jen.Id("s").Dot(fl.Name).Dot("Equal").Call(jen.Id("other").Dot(fl.Name)))
			} else {
				conds = append(conds, jen.Qual("slices", "Equal").Call(jen.Id("s").Dot(fl.Name), jen.Id("other").Dot(fl.Name)))
			}
		}
		cond := jen.Add(conds[0])
		for _, c := range conds[1:] {
			cond = cond.Op("&&").Line().Add(c)
		}
		g.Return(cond)
	})

	f.Comment("Equal reports whether s and other hold equal elements in the same order.")
	method(f, "s", jen.Id(n.SliceMut), "Equal").Params(jen.Id("other").Id(n.SliceMut)).Bool().Block(
		jen.Return(jen.Id("s").Dot("AsSlice").Call().Dot("Equal").Call(jen.Id("other").Dot("AsSlice").Call())),
	)
	f.Comment("Equal reports whether v and other hold equal elements in the same order.")
	method(f, "v", jen.Op("*").Id(n.Vec), "Equal").Params(jen.Id("other").Op("*").Id(n.Vec)).Bool().Block(
		jen.Return(jen.Id("v").Dot("AsSlice").Call().Dot("Equal").Call(jen.Id("other").Dot("AsSlice").Call())),
	)
}

func (d *deriveDecl) clone(f *jen.File) {
	n := d.Names
	f.Comment("Clone returns a copy of v with columns of their own.")
	method(f, "v", jen.Op("*").Id(n.Vec), "Clone").Params().Op("*").Id(n.Vec).Block(
		jen.Return(jen.Id("v").Dot("AsSlice").Call().Dot("ToVec").Call()),
	)
}

func (d *deriveDecl) json(f *jen.File) {
	n := d.Names
	lens := d.lens("decoded")

	f.Comment("UnmarshalJSON decodes the columns of v and rejects them unless they")
	f.Comment("have the same length.")
	method(f, "v", jen.Op("*").Id(n.Vec), "UnmarshalJSON").Params(jen.Id("data").Index().Byte()).Error().Block(
		jen.Type().Id("plain").Id(n.Vec),
		jen.Var().Id("decoded").Id("plain"),
		jen.If(jen.Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(jen.Id("data"), jen.Op("&").Id("decoded")), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		),
		jen.If(jen.Op("!").Add(rt("SameLen").Call(lens...))).Block(
			jen.Return(rt("ColumnLengthError").Call(jen.Lit(n.Vec))),
		),
		jen.Op("*").Id("v").Op("=").Id(n.Vec).Call(jen.Id("decoded")),
		jen.Return(jen.Nil()),
	)
}

func (d *deriveDecl) ordered(f *jen.File) {
	n := d.Names

	f.Comment("Compare orders r and other field by field, in declaration order.")
	method(f, "r", jen.Id(n.Ref), "Compare").Params(jen.Id("other").Id(n.Ref)).Int().BlockFunc(func(g *jen.Group) {
		cmp := func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return jen.Id("r").Dot(fl.Name).Dot("Compare").Call(jen.Id("other").Dot(fl.Name))
			}
			return jen.Qual("cmp", "Compare").Call(jen.Op("*").Id("r").Dot(fl.Name), jen.Op("*").Id("other").Dot(fl.Name))
		}
		fields := d.Record.Fields
		for _, fl := range fields[:len(fields)-1] {
			g.If(jen.Id("c").Op(":=").Add(cmp(fl)), jen.Id("c").Op("!=").Lit(0)).Block(jen.Return(jen.Id("c")))
		}
		g.Return(cmp(fields[len(fields)-1]))
	})

	f.Comment("Sort sorts the elements of s in the order of Compare. The sort is stable.")
	method(f, "s", jen.Id(n.SliceMut), "Sort").Params().Block(
		jen.Id("s").Dot("SortBy").Call(jen.Id(n.Ref).Dot("Compare")),
	)
}
