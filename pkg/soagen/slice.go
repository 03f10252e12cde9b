package soagen

import (
	"github.com/dave/jennifer/jen"

	"soagen/pkg/schemas"
)

// view describes one kind of slice, for the methods both kinds share.
type view struct {
	comp    schemas.Companion
	typ     string // slice type
	ref     string // element reference type
	ptr     string // pointer bundle type
	iter    string // iterator type
	suffix  string // "" for shared methods, "Mut" for exclusive ones
	asPtr   string // slice method yielding the pointer bundle
	deref   string // pointer method yielding the reference
	fromRaw string // raw parts constructor
}

func (c *Context) sharedView() view {
	n := c.Names
	return view{
		comp: schemas.CompanionSlice, typ: n.Slice, ref: n.Ref, ptr: n.Ptr, iter: n.Iter,
		asPtr: "AsPtr", deref: "AsRef", fromRaw: n.SliceFromRawParts,
	}
}

func (c *Context) mutView() view {
	n := c.Names
	return view{
		comp: schemas.CompanionSliceMut, typ: n.SliceMut, ref: n.RefMut, ptr: n.PtrMut, iter: n.IterMut,
		suffix: "Mut", asPtr: "AsMutPtr", deref: "AsMut", fromRaw: n.SliceMutFromRawParts,
	}
}

// sliceDecl generates the shared slice.
type sliceDecl struct {
	*Context
}

func (d *sliceDecl) Gen(f *jen.File) error {
	n := d.Names
	v := d.sharedView()

	f.Commentf("%s is a shared view of consecutive %s elements. It aliases", n.Slice, n.Record)
	f.Comment("the columns it was taken from.")
	d.companionType(f, schemas.CompanionSlice, nil)

	d.viewBasics(f, v)
	f.Comment("Reborrow returns a copy of the view.")
	method(f, "s", jen.Id(n.Slice), "Reborrow").Params().Id(n.Slice).Block(jen.Return(jen.Id("s")))
	f.Comment("AsSlice returns s.")
	method(f, "s", jen.Id(n.Slice), "AsSlice").Params().Id(n.Slice).Block(jen.Return(jen.Id("s")))
	d.viewAccess(f, v)

	f.Comment("ToVec copies the elements into a new vector.")
	method(f, "s", jen.Id(n.Slice), "ToVec").Params().Op("*").Id(n.Vec).Block(
		jen.Return(jen.Op("&").Id(n.Vec).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return jen.Op("*").Id("s").Dot(fl.Name).Dot("ToVec").Call()
			}
			return jen.Qual("slices", "Clone").Call(jen.Id("s").Dot(fl.Name))
		}))),
	)

	d.sliceIndex(f, v)
	return nil
}

// sliceMutDecl generates the exclusive slice.
type sliceMutDecl struct {
	*Context
}

func (d *sliceMutDecl) Gen(f *jen.File) error {
	n := d.Names
	v := d.mutView()
	recv := func() jen.Code { return jen.Id(n.SliceMut) }
	s := func() *jen.Statement { return jen.Id("s") }

	f.Commentf("%s is an exclusive view of consecutive %s elements. It", n.SliceMut, n.Record)
	f.Comment("aliases the columns it was taken from, which must not be accessed")
	f.Comment("through another view while it is in use.")
	d.companionType(f, schemas.CompanionSliceMut, nil)

	d.viewBasics(f, v)

	// conversions
	f.Comment("Reborrow returns a copy of the view. Use the copy until s is used again.")
	method(f, "s", recv(), "Reborrow").Params().Id(n.SliceMut).Block(jen.Return(s()))
	f.Comment("AsMutSlice returns s.")
	method(f, "s", recv(), "AsMutSlice").Params().Id(n.SliceMut).Block(jen.Return(s()))
	f.Comment("AsSlice returns a shared view of the same elements.")
	method(f, "s", recv(), "AsSlice").Params().Id(n.Slice).Block(
		jen.Return(jen.Id(n.Slice).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return s().Dot(fl.Name).Dot("AsSlice").Call()
			}
			return s().Dot(fl.Name)
		}))),
	)
	f.Comment("AsRef is AsSlice.")
	method(f, "s", recv(), "AsRef").Params().Id(n.Slice).Block(jen.Return(s().Dot("AsSlice").Call()))

	// shared operations go through the shared view
	shared := []struct {
		name   string
		params []jen.Code
		args   []jen.Code
		result jen.Code
	}{
		{"First", nil, nil, jen.Params(jen.Id(n.Ref), jen.Bool())},
		{"Last", nil, nil, jen.Params(jen.Id(n.Ref), jen.Bool())},
		{"SplitFirst", nil, nil, jen.Params(jen.Id(n.Ref), jen.Id(n.Slice), jen.Bool())},
		{"SplitLast", nil, nil, jen.Params(jen.Id(n.Ref), jen.Id(n.Slice), jen.Bool())},
		{"SplitAt", []jen.Code{jen.Id("mid").Int()}, []jen.Code{jen.Id("mid")}, jen.Params(jen.Id(n.Slice), jen.Id(n.Slice))},
		{"AsPtr", nil, nil, jen.Id(n.Ptr)},
		{"Iter", nil, nil, jen.Op("*").Id(n.Iter)},
		{"ToVec", nil, nil, jen.Op("*").Id(n.Vec)},
	}
	for _, op := range shared {
		f.Commentf("%s is AsSlice().%s.", op.name, op.name)
		method(f, "s", recv(), op.name).Params(op.params...).Add(op.result).Block(
			jen.Return(s().Dot("AsSlice").Call().Dot(op.name).Call(op.args...)),
		)
	}

	d.viewAccess(f, v)

	// permutations
	f.Comment("Swap exchanges the elements at a and b in every column.")
	method(f, "s", recv(), "Swap").Params(jen.List(jen.Id("a"), jen.Id("b")).Int()).BlockFunc(func(g *jen.Group) {
		g.Id("n").Op(":=").Add(s().Dot("Len").Call())
		g.Add(rt("CheckIndex").Call(jen.Lit("swap"), jen.Id("a"), jen.Id("n")))
		g.Add(rt("CheckIndex").Call(jen.Lit("swap"), jen.Id("b"), jen.Id("n")))
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			col := func() *jen.Statement { return s().Dot(fl.Name) }
			return jen.List(col().Index(jen.Id("a")), col().Index(jen.Id("b"))).Op("=").
				List(col().Index(jen.Id("b")), col().Index(jen.Id("a")))
		}, func(fl schemas.Field) jen.Code {
			return s().Dot(fl.Name).Dot("Swap").Call(jen.Id("a"), jen.Id("b"))
		})
	})

	f.Comment("ApplyPermutation moves the element at i to p.Target(i), for every i.")
	f.Comment("It panics unless p permutes exactly s.Len() positions.")
	method(f, "s", recv(), "ApplyPermutation").Params(jen.Id("p").Op("*").Add(rt("Permutation"))).Block(
		rt("CheckLen").Call(jen.Lit("apply permutation"), jen.Id("p").Dot("Len").Call(), s().Dot("Len").Call()),
		jen.Id("p").Dot("Apply").Call(s().Dot("Swap")),
	)

	f.Comment("ApplyIndex rearranges the elements so that the element at indices[i]")
	f.Comment("ends up at position i. It panics unless indices is a permutation of")
	f.Comment("[0, s.Len()).")
	method(f, "s", recv(), "ApplyIndex").Params(jen.Id("indices").Index().Int()).Block(
		s().Dot("ApplyPermutation").Call(rt("Oneline").Call(jen.Id("indices")).Dot("Inverse").Call()),
	)

	f.Comment("SortBy sorts the elements with compare, which returns a negative number,")
	f.Comment("zero or a positive number as a sorts before, with or after b. The sort")
	f.Comment("is stable.")
	method(f, "s", recv(), "SortBy").Params(
		jen.Id("compare").Func().Params(jen.List(jen.Id("a"), jen.Id("b")).Id(n.Ref)).Int(),
	).Block(
		jen.Id("shared").Op(":=").Add(s().Dot("AsSlice").Call()),
		s().Dot("ApplyPermutation").Call(rt("SortPermutation").Call(
			jen.Id("shared").Dot("Len").Call(),
			jen.Func().Params(jen.List(jen.Id("i"), jen.Id("j")).Int()).Int().Block(
				jen.Return(jen.Id("compare").Call(
					jen.Id("shared").Dot("Index").Call(jen.Id("i")),
					jen.Id("shared").Dot("Index").Call(jen.Id("j")),
				)),
			),
		)),
	)

	f.Commentf("%s sorts s by the key extracted from each element.", n.SortByKey)
	f.Comment("The sort is stable.")
	f.Func().Id(n.SortByKey).Types(jen.Id("K").Qual("cmp", "Ordered")).Params(
		jen.Id("s").Id(n.SliceMut), jen.Id("key").Func().Params(jen.Id(n.Ref)).Id("K"),
	).Block(
		s().Dot("SortBy").Call(jen.Func().Params(jen.List(jen.Id("a"), jen.Id("b")).Id(n.Ref)).Int().Block(
			jen.Return(jen.Qual("cmp", "Compare").Call(jen.Id("key").Call(jen.Id("a")), jen.Id("key").Call(jen.Id("b")))),
		)),
	)

	d.delegateIndex(f, "s", recv(), "AsSlice", d.sharedView())
	d.sliceIndex(f, v)
	return nil
}

// viewBasics emits the raw parts constructor, Len and IsEmpty of v.
func (c *Context) viewBasics(f *jen.File, v view) {
	f.Commentf("%s rebuilds a slice of length elements from the column", v.fromRaw)
	f.Comment("addresses in ptr. The addressed columns must hold at least length")
	f.Comment("elements.")
	f.Func().Id(v.fromRaw).Params(jen.Id("ptr").Id(v.ptr), jen.Id("length").Int()).Id(v.typ).Block(
		jen.Return(jen.Id(v.typ).Add(c.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return nestedQual(fl, nested(fl).Of(v.comp)+"FromRawParts").Call(jen.Id("ptr").Dot(fl.Name), jen.Id("length"))
			}
			return rt("FromRawParts").Call(jen.Id("ptr").Dot(fl.Name), jen.Id("length"))
		}))),
	)

	f.Comment("Len returns the number of elements. It panics if the columns disagree.")
	method(f, "s", jen.Id(v.typ), "Len").Params().Int().Block(
		jen.Return(rt("AssertLen").Call(c.lens("s")...)),
	)
	f.Comment("IsEmpty reports whether s has no element.")
	method(f, "s", jen.Id(v.typ), "IsEmpty").Params().Bool().Block(
		jen.Return(jen.Id("s").Dot("Len").Call().Op("==").Lit(0)),
	)
}

// viewAccess emits the element accessors, splits, pointer and iterators of
// v. For exclusive views they carry the Mut suffix.
func (c *Context) viewAccess(f *jen.File, v view) {
	recv := func() jen.Code { return jen.Id(v.typ) }
	s := func() *jen.Statement { return jen.Id("s") }
	index := "Index" + v.suffix
	slice := "Slice" + v.suffix
	empty := func(results ...jen.Code) jen.Code {
		return jen.If(s().Dot("IsEmpty").Call()).Block(jen.Return(results...))
	}

	f.Commentf("First%s returns the first element, or false if s is empty.", v.suffix)
	method(f, "s", recv(), "First"+v.suffix).Params().Params(jen.Id(v.ref), jen.Bool()).Block(
		empty(jen.Id(v.ref).Values(), jen.False()),
		jen.Return(s().Dot(index).Call(jen.Lit(0)), jen.True()),
	)

	f.Commentf("Last%s returns the last element, or false if s is empty.", v.suffix)
	method(f, "s", recv(), "Last"+v.suffix).Params().Params(jen.Id(v.ref), jen.Bool()).Block(
		empty(jen.Id(v.ref).Values(), jen.False()),
		jen.Return(s().Dot(index).Call(s().Dot("Len").Call().Op("-").Lit(1)), jen.True()),
	)

	f.Commentf("SplitFirst%s returns the first element and the rest of s, or false", v.suffix)
	f.Comment("if s is empty.")
	method(f, "s", recv(), "SplitFirst"+v.suffix).Params().Params(jen.Id(v.ref), jen.Id(v.typ), jen.Bool()).Block(
		empty(jen.Id(v.ref).Values(), jen.Id(v.typ).Values(), jen.False()),
		jen.Return(s().Dot(index).Call(jen.Lit(0)), s().Dot(slice).Call(rt("From").Call(jen.Lit(1))), jen.True()),
	)

	f.Commentf("SplitLast%s returns the last element and the rest of s, or false", v.suffix)
	f.Comment("if s is empty.")
	method(f, "s", recv(), "SplitLast"+v.suffix).Params().Params(jen.Id(v.ref), jen.Id(v.typ), jen.Bool()).Block(
		empty(jen.Id(v.ref).Values(), jen.Id(v.typ).Values(), jen.False()),
		jen.Id("last").Op(":=").Add(s().Dot("Len").Call()).Op("-").Lit(1),
		jen.Return(s().Dot(index).Call(jen.Id("last")), s().Dot(slice).Call(rt("To").Call(jen.Id("last"))), jen.True()),
	)

	f.Commentf("SplitAt%s divides s into the elements before mid and the elements", v.suffix)
	f.Comment("from mid on. It panics unless 0 <= mid <= s.Len().")
	method(f, "s", recv(), "SplitAt"+v.suffix).Params(jen.Id("mid").Int()).Params(jen.Id(v.typ), jen.Id(v.typ)).Block(
		rt("CheckPosition").Call(jen.Lit("split at"), jen.Id("mid"), s().Dot("Len").Call()),
		jen.Return(s().Dot(slice).Call(rt("To").Call(jen.Id("mid"))), s().Dot(slice).Call(rt("From").Call(jen.Id("mid")))),
	)

	f.Commentf("%s returns the address of the first element of every column.", v.asPtr)
	method(f, "s", recv(), v.asPtr).Params().Id(v.ptr).Block(
		jen.Return(jen.Id(v.ptr).Add(c.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return s().Dot(fl.Name).Dot(v.asPtr).Call()
			}
			return rt("SliceData").Call(s().Dot(fl.Name))
		}))),
	)

	f.Commentf("Iter%s returns an iterator over the elements of s.", v.suffix)
	method(f, "s", recv(), "Iter"+v.suffix).Params().Op("*").Id(v.iter).Block(
		jen.Return(jen.Op("&").Id(v.iter).Values(jen.Id("rest").Op(":").Id("s"))),
	)

	if c.Record.Exported {
		f.Commentf("All%s returns a sequence of the indexes and elements of s, for use", v.suffix)
		f.Comment("in range loops.")
		method(f, "s", recv(), "All"+v.suffix).Params().Add(seq2(jen.Id(v.ref))).Block(
			jen.Return(jen.Func().Params(jen.Id("yield").Func().Params(jen.Int(), jen.Id(v.ref)).Bool()).Block(
				jen.For(jen.List(jen.Id("i"), jen.Id("n")).Op(":=").List(jen.Lit(0), s().Dot("Len").Call()),
					jen.Id("i").Op("<").Id("n"), jen.Id("i").Op("++")).Block(
					jen.If(jen.Op("!").Id("yield").Call(jen.Id("i"), s().Dot(index).Call(jen.Id("i")))).Block(
						jen.Return(),
					),
				),
			)),
		)
	}
}
