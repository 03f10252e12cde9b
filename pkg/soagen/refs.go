package soagen

import (
	"github.com/dave/jennifer/jen"

	"soagen/pkg/schemas"
)

// refDecl generates the shared reference, or the exclusive one when mut is
// set.
type refDecl struct {
	*Context
	mut bool
}

func (d *refDecl) Gen(f *jen.File) error {
	n := d.Names
	comp, name, ptr, asPtr := schemas.CompanionRef, n.Ref, n.Ptr, "AsPtr"
	if d.mut {
		comp, name, ptr, asPtr = schemas.CompanionRefMut, n.RefMut, n.PtrMut, "AsMutPtr"
	}
	r := func() *jen.Statement { return jen.Id("r") }

	if d.mut {
		f.Commentf("%s refers to one element of a %s for writing: each", n.RefMut, n.Vec)
		f.Comment("field points into its column.")
	} else {
		f.Commentf("%s refers to one element of a %s: each field points", n.Ref, n.Vec)
		f.Comment("into its column.")
	}
	d.companionType(f, comp, nil)

	f.Commentf("Value copies the referenced fields into a %s.", n.Record)
	method(f, "r", jen.Id(name), "Value").Params().Id(n.Record).Block(
		jen.Return(jen.Id(n.Record).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return r().Dot(fl.Name).Dot("Value").Call()
			}
			return jen.Op("*").Add(r().Dot(fl.Name))
		}))),
	)

	if d.mut {
		f.Comment("AsRef returns a shared reference to the same element.")
		method(f, "r", jen.Id(name), "AsRef").Params().Id(n.Ref).Block(
			jen.Return(jen.Id(n.Ref).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
				if fl.Nested {
					return r().Dot(fl.Name).Dot("AsRef").Call()
				}
				return r().Dot(fl.Name)
			}))),
		)

		f.Comment("AsPtr is AsRef().AsPtr().")
		method(f, "r", jen.Id(name), "AsPtr").Params().Id(n.Ptr).Block(
			jen.Return(r().Dot("AsRef").Call().Dot("AsPtr").Call()),
		)
	}

	f.Commentf("%s returns the addresses held by r.", asPtr)
	method(f, "r", jen.Id(name), asPtr).Params().Id(ptr).Block(
		jen.Return(jen.Id(ptr).Add(d.fieldValues(func(fl schemas.Field) jen.Code {
			if fl.Nested {
				return r().Dot(fl.Name).Dot(asPtr).Call()
			}
			return r().Dot(fl.Name)
		}))),
	)
	return nil
}
