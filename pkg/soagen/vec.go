package soagen

import (
	"github.com/dave/jennifer/jen"

	"soagen/pkg/schemas"
)

// vecDecl generates the owning vector.
type vecDecl struct {
	*Context
}

func (d *vecDecl) Gen(f *jen.File) error {
	n := d.Names
	vecPtr := func() jen.Code { return jen.Op("*").Id(n.Vec) }
	col := func(fl schemas.Field) *jen.Statement { return jen.Id("v").Dot(fl.Name) }
	m := func(name string) *jen.Statement { return method(f, "v", vecPtr(), name) }

	// first declare the struct
	f.Commentf("%s stores %s values as a struct of arrays: one column per field,", n.Vec, n.Record)
	f.Comment("all of the same length. The zero value is an empty vector.")
	f.Comment("//")
	f.Commentf("While a %s or one of its refs is in use, the vector must not", n.SliceMut)
	f.Comment("be accessed through any other view.")
	d.companionType(f, schemas.CompanionVec, d.vecTags)
	f.Line()
	f.Var().Id("_").Add(rt("Container").Types(
		vecPtr(), jen.Id(n.Record), jen.Id(n.Ref), jen.Id(n.RefMut), jen.Id(n.Slice), jen.Id(n.SliceMut),
	)).Op("=").Parens(vecPtr()).Call(jen.Nil())

	// second declare constructors
	f.Commentf("%s returns an empty %s.", n.NewVec, n.Vec)
	f.Func().Id(n.NewVec).Params().Add(vecPtr()).Block(
		jen.Return(jen.Op("&").Id(n.Vec).Values()),
	)

	f.Commentf("%s returns an empty %s whose columns hold at least", n.NewVecWithCapacity, n.Vec)
	f.Comment("capacity elements before reallocating.")
	f.Func().Id(n.NewVecWithCapacity).Params(jen.Id("capacity").Int()).Add(vecPtr()).Block(
		jen.Return(jen.Op("&").Id(n.Vec).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return jen.Op("*").Add(nestedQual(fl, nested(fl).NewVecWithCapacity)).Call(jen.Id("capacity"))
			}
			return jen.Make(columnType(fl, schemas.CompanionVec), jen.Lit(0), jen.Id("capacity"))
		}))),
	)

	f.Commentf("%s rebuilds a vector from the columns addressed by ptr, as", n.VecFromRawParts)
	f.Commentf("returned by %s.AsMutPtr. Every column must have room for capacity", n.Vec)
	f.Comment("elements and hold length initialized ones.")
	f.Func().Id(n.VecFromRawParts).Params(
		jen.Id("ptr").Id(n.PtrMut), jen.List(jen.Id("length"), jen.Id("capacity")).Int(),
	).Add(vecPtr()).Block(
		jen.Return(jen.Op("&").Id(n.Vec).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return jen.Op("*").Add(nestedQual(fl, nested(fl).VecFromRawParts)).Call(
					jen.Id("ptr").Dot(fl.Name), jen.Id("length"), jen.Id("capacity"))
			}
			return rt("FromRawPartsCap").Call(jen.Id("ptr").Dot(fl.Name), jen.Id("length"), jen.Id("capacity"))
		}))),
	)

	// third declare size management
	f.Comment("Len returns the number of elements. It panics if the columns disagree.")
	m("Len").Params().Int().Block(
		jen.Return(rt("AssertLen").Call(d.lens("v")...)),
	)

	f.Comment("IsEmpty reports whether v holds no element.")
	m("IsEmpty").Params().Bool().Block(
		jen.Return(jen.Id("v").Dot("Len").Call().Op("==").Lit(0)),
	)

	f.Comment("Cap returns the number of elements v can hold without reallocating any")
	f.Comment("column: the smallest column capacity.")
	m("Cap").Params().Int().BlockFunc(func(g *jen.Group) {
		var caps []jen.Code
		for _, fl := range d.Record.Fields {
			if fl.Nested {
				caps = append(caps, col(fl).Dot("Cap").Call())
			} else {
				caps = append(caps, jen.Cap(col(fl)))
			}
		}
		g.Return(rt("MinCap").Call(caps...))
	})

	d.vecColumnsMethod(f, "Reserve", "makes room for at least n more elements.", "slices", "Grow")
	d.vecColumnsMethod(f, "ReserveExact", "makes room for exactly n more elements when a column has to grow.", RuntimePath, "GrowExact")

	f.Comment("ShrinkToFit reallocates every column to hold exactly its elements.")
	m("ShrinkToFit").Params().BlockFunc(func(g *jen.Group) {
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return col(fl).Op("=").Add(rt("ShrinkToFit").Call(col(fl)))
		}, func(fl schemas.Field) jen.Code {
			return col(fl).Dot("ShrinkToFit").Call()
		})
	})

	f.Comment("Truncate keeps the first n elements. The dropped slots are zeroed from")
	f.Comment("the last one down. Truncate has no effect when n >= v.Len().")
	m("Truncate").Params(jen.Id("n").Int()).BlockFunc(func(g *jen.Group) {
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return col(fl).Op("=").Add(rt("Truncate").Call(col(fl), jen.Id("n")))
		}, func(fl schemas.Field) jen.Code {
			return col(fl).Dot("Truncate").Call(jen.Id("n"))
		})
	})

	f.Comment("Clear removes every element, keeping the allocated columns.")
	m("Clear").Params().Block(
		jen.Id("v").Dot("Truncate").Call(jen.Lit(0)),
	)

	f.Comment("Resize grows v to n elements by appending copies of value, or")
	f.Comment("truncates it.")
	m("Resize").Params(jen.Id("n").Int(), jen.Id("value").Id(n.Record)).BlockFunc(func(g *jen.Group) {
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return col(fl).Op("=").Add(rt("Resize").Call(col(fl), jen.Id("n"), jen.Id("value").Dot(fl.Name)))
		}, func(fl schemas.Field) jen.Code {
			return col(fl).Dot("Resize").Call(jen.Id("n"), jen.Id("value").Dot(fl.Name))
		})
	})

	// fourth declare element operations
	f.Comment("Push appends value, one field per column.")
	m("Push").Params(jen.Id("value").Id(n.Record)).BlockFunc(func(g *jen.Group) {
		g.Id("v").Dot("Reserve").Call(jen.Lit(1))
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return col(fl).Op("=").Append(col(fl), jen.Id("value").Dot(fl.Name))
		}, func(fl schemas.Field) jen.Code {
			return col(fl).Dot("Push").Call(jen.Id("value").Dot(fl.Name))
		})
	})

	f.Comment("Pop removes and returns the last element, if any.")
	m("Pop").Params().Params(jen.Id(n.Record), jen.Bool()).BlockFunc(func(g *jen.Group) {
		g.If(jen.Id("v").Dot("IsEmpty").Call()).Block(
			jen.Return(jen.Id(n.Record).Values(), jen.False()),
		)
		g.Var().Id("value").Id(n.Record)
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return jen.List(col(fl), jen.Id("value").Dot(fl.Name)).Op("=").Add(rt("Pop").Call(col(fl)))
		}, func(fl schemas.Field) jen.Code {
			return jen.List(jen.Id("value").Dot(fl.Name), jen.Id("_")).Op("=").Add(col(fl).Dot("Pop").Call())
		})
		g.Return(jen.Id("value"), jen.True())
	})

	f.Comment("Insert places value at index, shifting the following elements up. It")
	f.Comment("panics unless 0 <= index <= v.Len().")
	m("Insert").Params(jen.Id("index").Int(), jen.Id("value").Id(n.Record)).BlockFunc(func(g *jen.Group) {
		g.Add(rt("CheckPosition").Call(jen.Lit("insert"), jen.Id("index"), jen.Id("v").Dot("Len").Call()))
		g.Id("v").Dot("Reserve").Call(jen.Lit(1))
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return col(fl).Op("=").Qual("slices", "Insert").Call(col(fl), jen.Id("index"), jen.Id("value").Dot(fl.Name))
		}, func(fl schemas.Field) jen.Code {
			return col(fl).Dot("Insert").Call(jen.Id("index"), jen.Id("value").Dot(fl.Name))
		})
	})

	d.vecRemoval(f, "Remove", "remove", "shifting the following elements down.")
	d.vecRemoval(f, "SwapRemove", "swap remove", "moving the last element into its place.")

	f.Comment("Replace stores value at index and returns the element it replaces.")
	m("Replace").Params(jen.Id("index").Int(), jen.Id("value").Id(n.Record)).Id(n.Record).BlockFunc(func(g *jen.Group) {
		g.Add(rt("CheckIndex").Call(jen.Lit("replace"), jen.Id("index"), jen.Id("v").Dot("Len").Call()))
		g.Var().Id("old").Id(n.Record)
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return jen.List(jen.Id("old").Dot(fl.Name), col(fl).Index(jen.Id("index"))).Op("=").
				List(col(fl).Index(jen.Id("index")), jen.Id("value").Dot(fl.Name))
		}, func(fl schemas.Field) jen.Code {
			return jen.Id("old").Dot(fl.Name).Op("=").Add(col(fl).Dot("Replace").Call(jen.Id("index"), jen.Id("value").Dot(fl.Name)))
		})
		g.Return(jen.Id("old"))
	})

	f.Comment("Append moves every element of other to the end of v and leaves other empty.")
	f.Comment("It panics when other is v.")
	m("Append").Params(jen.Id("other").Add(vecPtr())).BlockFunc(func(g *jen.Group) {
		g.If(jen.Id("other").Op("==").Id("v")).Block(
			jen.Panic(jen.Lit("soa: " + n.Vec + ".Append of a vector to itself")),
		)
		g.Id("v").Dot("Reserve").Call(jen.Id("other").Dot("Len").Call())
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return col(fl).Op("=").Append(col(fl), jen.Id("other").Dot(fl.Name).Op("..."))
		}, func(fl schemas.Field) jen.Code {
			return col(fl).Dot("Append").Call(jen.Op("&").Id("other").Dot(fl.Name))
		})
		g.Id("other").Dot("Clear").Call()
	})

	f.Comment("SplitOff moves the elements from at onwards into a new vector. It panics")
	f.Comment("unless 0 <= at <= v.Len().")
	m("SplitOff").Params(jen.Id("at").Int()).Add(vecPtr()).BlockFunc(func(g *jen.Group) {
		g.Add(rt("CheckPosition").Call(jen.Lit("split off"), jen.Id("at"), jen.Id("v").Dot("Len").Call()))
		g.Id("tail").Op(":=").Op("&").Id(n.Vec).Values()
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return jen.List(col(fl), jen.Id("tail").Dot(fl.Name)).Op("=").Add(rt("SplitOff").Call(col(fl), jen.Id("at")))
		}, func(fl schemas.Field) jen.Code {
			return jen.Id("tail").Dot(fl.Name).Op("=").Op("*").Add(col(fl).Dot("SplitOff").Call(jen.Id("at")))
		})
		g.Return(jen.Id("tail"))
	})

	d.vecRetain(f, "Retain", n.Ref, "Index", "AsMutSlice")
	d.vecRetain(f, "RetainMut", n.RefMut, "IndexMut", "AsMutSlice")

	// fifth declare views
	f.Comment("AsSlice returns a shared view of every element.")
	m("AsSlice").Params().Id(n.Slice).Block(
		jen.Return(jen.Id(n.Slice).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return col(fl).Dot("AsSlice").Call()
			}
			return col(fl)
		}))),
	)

	f.Comment("AsMutSlice returns an exclusive view of every element.")
	m("AsMutSlice").Params().Id(n.SliceMut).Block(
		jen.Return(jen.Id(n.SliceMut).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return col(fl).Dot("AsMutSlice").Call()
			}
			return col(fl)
		}))),
	)

	f.Comment("AsPtr returns the address of the first slot of every column.")
	m("AsPtr").Params().Id(n.Ptr).Block(
		jen.Return(jen.Id(n.Ptr).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return col(fl).Dot("AsPtr").Call()
			}
			return rt("SliceData").Call(col(fl))
		}))),
	)

	f.Comment("AsMutPtr is AsPtr for writing.")
	m("AsMutPtr").Params().Id(n.PtrMut).Block(
		jen.Return(jen.Id(n.PtrMut).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return col(fl).Dot("AsMutPtr").Call()
			}
			return rt("SliceData").Call(col(fl))
		}))),
	)

	f.Comment("Iter returns an iterator over shared references to the elements.")
	m("Iter").Params().Op("*").Id(n.Iter).Block(
		jen.Return(jen.Id("v").Dot("AsSlice").Call().Dot("Iter").Call()),
	)

	f.Comment("IterMut returns an iterator over exclusive references to the elements.")
	m("IterMut").Params().Op("*").Id(n.IterMut).Block(
		jen.Return(jen.Id("v").Dot("AsMutSlice").Call().Dot("IterMut").Call()),
	)

	if d.Record.Exported {
		f.Comment("All returns a sequence of the indexes and shared references of the")
		f.Comment("elements, for use in range loops.")
		m("All").Params().Add(seq2(jen.Id(n.Ref))).Block(
			jen.Return(jen.Id("v").Dot("AsSlice").Call().Dot("All").Call()),
		)

		f.Comment("AllMut is All with exclusive references.")
		m("AllMut").Params().Add(seq2(jen.Id(n.RefMut))).Block(
			jen.Return(jen.Id("v").Dot("AsMutSlice").Call().Dot("AllMut").Call()),
		)
	}

	// sixth declare indexing
	d.vecIndex(f)
	return nil
}

// vecTags copies the json tag of a record field onto its column when the
// JSON derive is requested.
func (d *vecDecl) vecTags(fl schemas.Field) map[string]string {
	if !d.Record.Attrs.Has(schemas.DeriveJSON) {
		return nil
	}
	if tag, ok := fl.Tags["json"]; ok {
		return map[string]string{"json": tag}
	}
	return nil
}

// vecColumnsMethod emits a method taking a count n that regrows every
// column with qual.fn, or calls the method of the same name on nested
// columns.
func (d *vecDecl) vecColumnsMethod(f *jen.File, name, doc, qual, fn string) {
	f.Commentf("%s %s", name, doc)
	method(f, "v", jen.Op("*").Id(d.Names.Vec), name).Params(jen.Id("n").Int()).BlockFunc(func(g *jen.Group) {
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return jen.Id("v").Dot(fl.Name).Op("=").Qual(qual, fn).Call(jen.Id("v").Dot(fl.Name), jen.Id("n"))
		}, func(fl schemas.Field) jen.Code {
			return jen.Id("v").Dot(fl.Name).Dot(name).Call(jen.Id("n"))
		})
	})
}

// vecRemoval emits Remove or SwapRemove, which share their shape and
// differ by the runtime helper.
func (d *vecDecl) vecRemoval(f *jen.File, name, op, doc string) {
	n := d.Names
	f.Commentf("%s removes and returns the element at index, %s", name, doc)
	f.Comment("It panics unless 0 <= index < v.Len().")
	method(f, "v", jen.Op("*").Id(n.Vec), name).Params(jen.Id("index").Int()).Id(n.Record).BlockFunc(func(g *jen.Group) {
		g.Add(rt("CheckIndex").Call(jen.Lit(op), jen.Id("index"), jen.Id("v").Dot("Len").Call()))
		g.Var().Id("value").Id(n.Record)
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return jen.List(jen.Id("v").Dot(fl.Name), jen.Id("value").Dot(fl.Name)).Op("=").
				Add(rt(name).Call(jen.Id("v").Dot(fl.Name), jen.Id("index")))
		}, func(fl schemas.Field) jen.Code {
			return jen.Id("value").Dot(fl.Name).Op("=").Id("v").Dot(fl.Name).Dot(name).Call(jen.Id("index"))
		})
		g.Return(jen.Id("value"))
	})
}

// vecRetain emits Retain or RetainMut. Kept elements are swapped down in
// order, then the tail is truncated.
func (d *vecDecl) vecRetain(f *jen.File, name, ref, index, slice string) {
	f.Commentf("%s keeps the elements for which keep returns true, in their order.", name)
	method(f, "v", jen.Op("*").Id(d.Names.Vec), name).Params(
		jen.Id("keep").Func().Params(jen.Id(ref)).Bool(),
	).Block(
		jen.Id("kept").Op(":=").Lit(0),
		jen.For(jen.List(jen.Id("i"), jen.Id("n")).Op(":=").List(jen.Lit(0), jen.Id("v").Dot("Len").Call()),
			jen.Id("i").Op("<").Id("n"), jen.Id("i").Op("++")).Block(
			jen.If(jen.Op("!").Id("keep").Call(jen.Id("v").Dot(index).Call(jen.Id("i")))).Block(
				jen.Continue(),
			),
			jen.If(jen.Id("i").Op("!=").Id("kept")).Block(
				jen.Id("v").Dot(slice).Call().Dot("Swap").Call(jen.Id("kept"), jen.Id("i")),
			),
			jen.Id("kept").Op("++"),
		),
		jen.Id("v").Dot("Truncate").Call(jen.Id("kept")),
	)
}

// seq2 is iter.Seq2[int, ref].
func seq2(ref jen.Code) *jen.Statement {
	return jen.Qual("iter", "Seq2").Types(jen.Int(), ref)
}

// vecIndex emits the index methods of both slices on the vector.
func (d *vecDecl) vecIndex(f *jen.File) {
	vecPtr := jen.Op("*").Id(d.Names.Vec)
	d.delegateIndex(f, "v", vecPtr, "AsSlice", d.sharedView())
	d.delegateIndex(f, "v", vecPtr, "AsMutSlice", d.mutView())
}
