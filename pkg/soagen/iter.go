package soagen

import (
	"github.com/dave/jennifer/jen"
)

// iterDecl generates the shared iterator, or the exclusive one when mut is
// set.
type iterDecl struct {
	*Context
	mut bool
}

func (d *iterDecl) Gen(f *jen.File) error {
	v := d.sharedView()
	if d.mut {
		v = d.mutView()
	}
	it := func() *jen.Statement { return jen.Id("it") }

	f.Commentf("%s walks a %s from the front. It is finite and cannot be", v.iter, v.typ)
	f.Comment("restarted.")
	f.Type().Id(v.iter).Struct(
		jen.Id("rest").Id(v.typ),
	)
	f.Line()
	f.Var().Id("_").Add(rt("ExactIterator").Types(jen.Id(v.ref))).Op("=").
		Parens(jen.Op("*").Id(v.iter)).Call(jen.Nil())

	f.Comment("Next returns the next element, or false once every element was returned.")
	method(f, "it", jen.Op("*").Id(v.iter), "Next").Params().Params(jen.Id(v.ref), jen.Bool()).Block(
		jen.List(jen.Id("first"), jen.Id("rest"), jen.Id("ok")).Op(":=").Add(it().Dot("rest").Dot("SplitFirst"+v.suffix).Call()),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Id(v.ref).Values(), jen.False()),
		),
		it().Dot("rest").Op("=").Id("rest"),
		jen.Return(jen.Id("first"), jen.True()),
	)

	f.Comment("Len returns the number of elements left.")
	method(f, "it", jen.Op("*").Id(v.iter), "Len").Params().Int().Block(
		jen.Return(it().Dot("rest").Dot("Len").Call()),
	)
	return nil
}
