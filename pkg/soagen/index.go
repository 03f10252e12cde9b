package soagen

import (
	"github.com/dave/jennifer/jen"

	"soagen/pkg/schemas"
)

// indexOp is one entry point of the indexing layer. Exclusive variants
// append "Mut" to the name.
type indexOp struct {
	name     string
	ranged   bool // takes a soa.Range and yields a slice
	optional bool // also returns whether the index was in range
	doc      string
}

var indexOps = []indexOp{
	{name: "Index", doc: "returns the element at index. It panics unless 0 <= index < Len()."},
	{name: "Get", optional: true, doc: "returns the element at index, or false when index is out of range."},
	{name: "GetUnchecked", doc: "returns the element at index without checking it. The caller guarantees 0 <= index < Len()."},
	{name: "Slice", ranged: true, doc: "returns the elements selected by r. It panics when r is out of range."},
	{name: "GetSlice", ranged: true, optional: true, doc: "returns the elements selected by r, or false when r is out of range."},
	{name: "GetSliceUnchecked", ranged: true, doc: "returns the elements selected by r without checking it. The caller guarantees r is in range."},
}

func (op indexOp) methodName(v view) string {
	return op.name + v.suffix
}

func (op indexOp) param() jen.Code {
	if op.ranged {
		return jen.Id("r").Add(rt("Range"))
	}
	return jen.Id("index").Int()
}

func (op indexOp) arg() jen.Code {
	if op.ranged {
		return jen.Id("r")
	}
	return jen.Id("index")
}

func (op indexOp) result(v view) jen.Code {
	out := jen.Id(v.ref)
	if op.ranged {
		out = jen.Id(v.typ)
	}
	if op.optional {
		return jen.Params(out, jen.Bool())
	}
	return out
}

// delegateIndex emits the index methods of v on a receiver that first
// converts itself with via, e.g. a vector calling AsSlice.
func (c *Context) delegateIndex(f *jen.File, recv string, recvType jen.Code, via string, v view) {
	for _, op := range indexOps {
		name := op.methodName(v)
		f.Commentf("%s %s", name, op.doc)
		method(f, recv, recvType, name).Params(op.param()).Add(op.result(v)).Block(
			jen.Return(jen.Id(recv).Dot(via).Call().Dot(name).Call(op.arg())),
		)
	}
}

// sliceIndex emits the index methods of view v itself.
func (c *Context) sliceIndex(f *jen.File, v view) {
	recvType := jen.Id(v.typ)
	s := func() *jen.Statement { return jen.Id("s") }
	for _, op := range indexOps {
		name := op.methodName(v)
		f.Commentf("%s %s", name, op.doc)
		decl := method(f, "s", recvType, name).Params(op.param()).Add(op.result(v))

		switch op.name {
		case "Index":
			decl.Block(
				rt("CheckIndex").Call(jen.Lit("index"), jen.Id("index"), s().Dot("Len").Call()),
				jen.Return(jen.Id(v.ref).Add(c.fieldValues(func(fl schemas.Field) jen.Code {
					if fl.Nested {
						return s().Dot(fl.Name).Dot(name).Call(jen.Id("index"))
					}
					return jen.Op("&").Add(s().Dot(fl.Name).Index(jen.Id("index")))
				}))),
			)
		case "Get":
			decl.Block(
				jen.If(jen.Id("index").Op("<").Lit(0).Op("||").Id("index").Op(">=").Add(s().Dot("Len").Call())).Block(
					jen.Return(jen.Id(v.ref).Values(), jen.False()),
				),
				jen.Return(s().Dot("Index"+v.suffix).Call(jen.Id("index")), jen.True()),
			)
		case "GetUnchecked":
			decl.Block(
				jen.List(jen.Id("ref"), jen.Id("_")).Op(":=").Add(s().Dot(v.asPtr).Call().Dot("Add").Call(jen.Id("index")).Dot(v.deref).Call()),
				jen.Return(jen.Id("ref")),
			)
		case "Slice":
			decl.Block(
				jen.List(jen.Id("start"), jen.Id("end")).Op(":=").Id("r").Dot("MustBounds").Call(s().Dot("Len").Call()),
				jen.Return(jen.Id(v.typ).Add(c.fieldValues(func(fl schemas.Field) jen.Code {
					if fl.Nested {
						return s().Dot(fl.Name).Dot(name).Call(rt("Span").Call(jen.Id("start"), jen.Id("end")))
					}
					return s().Dot(fl.Name).Index(jen.Id("start").Op(":").Id("end"))
				}))),
			)
		case "GetSlice":
			decl.Block(
				jen.If(jen.List(jen.Id("_"), jen.Id("_"), jen.Id("ok")).Op(":=").Id("r").Dot("Bounds").Call(s().Dot("Len").Call()),
					jen.Op("!").Id("ok")).Block(
					jen.Return(jen.Id(v.typ).Values(), jen.False()),
				),
				jen.Return(s().Dot("Slice"+v.suffix).Call(jen.Id("r")), jen.True()),
			)
		case "GetSliceUnchecked":
			decl.Block(
				jen.List(jen.Id("start"), jen.Id("end")).Op(":=").Id("r").Dot("Resolve").Call(s().Dot("Len").Call()),
				jen.Return(jen.Id(v.fromRaw).Call(
					s().Dot(v.asPtr).Call().Dot("Add").Call(jen.Id("start")),
					jen.Id("end").Op("-").Id("start"),
				)),
			)
		}
	}
}
