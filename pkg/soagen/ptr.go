package soagen

import (
	"github.com/dave/jennifer/jen"

	"soagen/pkg/schemas"
)

// ptrDecl generates the read pointer bundle, or the write one when mut is
// set.
type ptrDecl struct {
	*Context
	mut bool
}

func (d *ptrDecl) Gen(f *jen.File) error {
	n := d.Names
	comp, name, ref, deref := schemas.CompanionPtr, n.Ptr, n.Ref, "AsRef"
	if d.mut {
		comp, name, ref, deref = schemas.CompanionPtrMut, n.PtrMut, n.RefMut, "AsMut"
	}
	p := func() *jen.Statement { return jen.Id("p") }
	m := func(fn string) *jen.Statement { return method(f, "p", jen.Id(name), fn) }

	f.Commentf("%s holds the address of one slot in every column of a %s.", name, n.Vec)
	f.Comment("Arithmetic on it is unchecked: the caller keeps it inside the columns.")
	d.companionType(f, comp, nil)

	f.Comment("IsNull reports whether any column address is nil.")
	m("IsNull").Params().Bool().BlockFunc(func(g *jen.Group) {
		var conds []jen.Code
		for _, fl := range d.Record.Fields {
			if fl.Nested {
				conds = append(conds, p().Dot(fl.Name).Dot("IsNull").Call())
			} else {
				conds = append(conds, p().Dot(fl.Name).Op("==").Nil())
			}
		}
		cond := jen.Add(conds[0])
		for _, c := range conds[1:] {
			cond = cond.Op("||").Add(c)
		}
		g.Return(cond)
	})

	f.Commentf("%s returns a reference to the addressed element, or false if p", deref)
	f.Comment("is null.")
	m(deref).Params().Params(jen.Id(ref), jen.Bool()).BlockFunc(func(g *jen.Group) {
		g.If(p().Dot("IsNull").Call()).Block(jen.Return(jen.Id(ref).Values(), jen.False()))
		for _, fl := range d.Record.Fields {
			if fl.Nested {
				g.List(jen.Id("ref"+fl.Name), jen.Id("_")).Op(":=").Add(p().Dot(fl.Name).Dot(deref).Call())
			}
		}
		g.Return(jen.Id(ref).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return jen.Id("ref" + fl.Name)
			}
			return p().Dot(fl.Name)
		})), jen.True())
	})

	f.Comment("Offset moves p by count elements, backwards for a negative count.")
	m("Offset").Params(jen.Id("count").Int()).Id(name).Block(
		jen.Return(jen.Id(name).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return p().Dot(fl.Name).Dot("Offset").Call(jen.Id("count"))
			}
			return rt("Offset").Call(p().Dot(fl.Name), jen.Id("count"))
		}))),
	)
	for _, alias := range []struct{ name, doc string }{
		{"Add", "Add is Offset(count)."},
		{"WrappingOffset", "WrappingOffset is Offset(count). Go pointers do not wrap."},
		{"WrappingAdd", "WrappingAdd is Offset(count)."},
	} {
		f.Comment(alias.doc)
		m(alias.name).Params(jen.Id("count").Int()).Id(name).Block(
			jen.Return(p().Dot("Offset").Call(jen.Id("count"))),
		)
	}
	for _, alias := range []struct{ name, doc string }{
		{"Sub", "Sub is Offset(-count)."},
		{"WrappingSub", "WrappingSub is Offset(-count)."},
	} {
		f.Comment(alias.doc)
		m(alias.name).Params(jen.Id("count").Int()).Id(name).Block(
			jen.Return(p().Dot("Offset").Call(jen.Op("-").Id("count"))),
		)
	}

	f.Commentf("Read copies the addressed element into a %s. p must not be null.", n.Record)
	m("Read").Params().Id(n.Record).Block(
		jen.Return(jen.Id(n.Record).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return p().Dot(fl.Name).Dot("Read").Call()
			}
			return jen.Op("*").Add(p().Dot(fl.Name))
		}))),
	)
	f.Comment("ReadUnaligned is Read: element addresses are always aligned.")
	m("ReadUnaligned").Params().Id(n.Record).Block(jen.Return(p().Dot("Read").Call()))
	f.Comment("ReadVolatile is Read.")
	m("ReadVolatile").Params().Id(n.Record).Block(jen.Return(p().Dot("Read").Call()))

	if !d.mut {
		return nil
	}

	f.Comment("Write stores value into the addressed slot of every column. p must not")
	f.Comment("be null.")
	m("Write").Params(jen.Id("value").Id(n.Record)).BlockFunc(func(g *jen.Group) {
		d.perColumn(g, func(fl schemas.Field) jen.Code {
			return jen.Op("*").Add(p().Dot(fl.Name)).Op("=").Id("value").Dot(fl.Name)
		}, func(fl schemas.Field) jen.Code {
			return p().Dot(fl.Name).Dot("Write").Call(jen.Id("value").Dot(fl.Name))
		})
	})
	f.Comment("WriteUnaligned is Write.")
	m("WriteUnaligned").Params(jen.Id("value").Id(n.Record)).Block(p().Dot("Write").Call(jen.Id("value")))
	f.Comment("WriteVolatile is Write.")
	m("WriteVolatile").Params(jen.Id("value").Id(n.Record)).Block(p().Dot("Write").Call(jen.Id("value")))

	f.Commentf("AsPtr returns the same addresses as a %s.", n.Ptr)
	m("AsPtr").Params().Id(n.Ptr).Block(
		jen.Return(jen.Id(n.Ptr).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return p().Dot(fl.Name).Dot("AsPtr").Call()
			}
			return p().Dot(fl.Name)
		}))),
	)
	return nil
}
