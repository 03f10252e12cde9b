package soagen

import (
	"github.com/dave/jennifer/jen"

	"soagen/pkg/schemas"
)

// RuntimePath is the import path of the package generated code depends on.
const RuntimePath = "soagen/pkg/soa"

// Context carries what every companion generator needs to know about the
// record being generated.
type Context struct {
	Record *schemas.Record
	Names  Names
}

// NewContext prepares the generation of rec's companions.
func NewContext(rec *schemas.Record) *Context {
	return &Context{Record: rec, Names: NamesOf(rec.Name)}
}

// Names are the identifiers generated for one record.
type Names struct {
	Record   string
	Vec      string
	Slice    string
	SliceMut string
	Ref      string
	RefMut   string
	Ptr      string
	PtrMut   string
	Iter     string
	IterMut  string

	NewVec               string
	NewVecWithCapacity   string
	VecFromRawParts      string
	SliceFromRawParts    string
	SliceMutFromRawParts string
	SortByKey            string

	Slicer     string
	MutSlicer  string
	ZipVar     string
	ZipMarkers string
}

// NamesOf derives the companion identifiers of the record called name. They
// share the visibility of name.
func NamesOf(name string) Names {
	style := VisibleStyle(name)
	n := Names{
		Record:   name,
		Vec:      name + "Vec",
		Slice:    name + "Slice",
		SliceMut: name + "SliceMut",
		Ref:      name + "Ref",
		RefMut:   name + "RefMut",
		Ptr:      name + "Ptr",
		PtrMut:   name + "PtrMut",
		Iter:     name + "Iter",
		IterMut:  name + "IterMut",

		Slicer:    name + "Slicer",
		MutSlicer: name + "MutSlicer",
	}
	n.NewVec = style.Format("new_" + CamelStyle.Format(n.Vec))
	n.NewVecWithCapacity = n.NewVec + "WithCapacity"
	n.VecFromRawParts = n.Vec + "FromRawParts"
	n.SliceFromRawParts = n.Slice + "FromRawParts"
	n.SliceMutFromRawParts = n.SliceMut + "FromRawParts"
	n.SortByKey = style.Format("sort_" + CamelStyle.Format(n.SliceMut) + "ByKey")
	n.ZipVar = style.Format("zip_" + CamelStyle.Format(name))
	n.ZipMarkers = n.ZipVar + "Markers"
	return n
}

// Of returns the type name of companion c.
func (n Names) Of(c schemas.Companion) string {
	switch c {
	case schemas.CompanionVec:
		return n.Vec
	case schemas.CompanionSlice:
		return n.Slice
	case schemas.CompanionSliceMut:
		return n.SliceMut
	case schemas.CompanionRef:
		return n.Ref
	case schemas.CompanionRefMut:
		return n.RefMut
	case schemas.CompanionPtr:
		return n.Ptr
	default:
		return n.PtrMut
	}
}

// rt refers to a runtime identifier.
func rt(name string) *jen.Statement {
	return jen.Qual(RuntimePath, name)
}

// typeCode renders a type token.
func typeCode(t schemas.Type) *jen.Statement {
	switch t.Kind {
	case schemas.KindPointer:
		return jen.Op("*").Add(typeCode(*t.Elem))
	case schemas.KindSlice:
		return jen.Index().Add(typeCode(*t.Elem))
	case schemas.KindArray:
		return jen.Index(jen.Lit(int(t.Len))).Add(typeCode(*t.Elem))
	case schemas.KindMap:
		return jen.Map(typeCode(*t.Key)).Add(typeCode(*t.Elem))
	default:
		if t.Domain == "" {
			return jen.Id(t.Name)
		}
		return jen.Qual(t.Domain, t.Name)
	}
}

// nested returns the companion names of a nested field's record.
func nested(f schemas.Field) Names {
	return NamesOf(f.Type.Name)
}

// nestedQual refers to an identifier declared next to a nested field's
// record.
func nestedQual(f schemas.Field, name string) *jen.Statement {
	return jen.Qual(f.Type.Domain, name)
}

// columnType is the type of f's column in companion c: a Go slice or a
// pointer for plain fields, the nested record's own companion otherwise.
func columnType(f schemas.Field, c schemas.Companion) *jen.Statement {
	if f.Nested {
		return nestedQual(f, nested(f).Of(c))
	}
	switch c {
	case schemas.CompanionVec, schemas.CompanionSlice, schemas.CompanionSliceMut:
		return jen.Index().Add(typeCode(f.Type))
	default:
		return jen.Op("*").Add(typeCode(f.Type))
	}
}

// perColumn emits plain(f) for every plain field and nest(f) for every
// nested one, in declaration order.
func (c *Context) perColumn(g *jen.Group, plain, nest func(f schemas.Field) jen.Code) {
	for _, f := range c.Record.Fields {
		if f.Nested {
			g.Add(nest(f))
		} else {
			g.Add(plain(f))
		}
	}
}

// method starts the declaration of a method called name on a receiver
// named recv.
func method(f *jen.File, recv string, typ jen.Code, name string) *jen.Statement {
	return f.Func().Params(jen.Id(recv).Add(typ)).Id(name)
}

// fieldValues builds the body of a composite literal with one entry per
// field, keeping the declaration order.
func (c *Context) fieldValues(each func(f schemas.Field) jen.Code) jen.Code {
	return jen.ValuesFunc(func(g *jen.Group) {
		for _, f := range c.Record.Fields {
			g.Id(f.Name).Op(":").Add(each(f))
		}
	})
}

// lens lists the length of every column of the container held in recv.
func (c *Context) lens(recv string) []jen.Code {
	var out []jen.Code
	for _, f := range c.Record.Fields {
		if f.Nested {
			out = append(out, jen.Id(recv).Dot(f.Name).Dot("Len").Call())
		} else {
			out = append(out, jen.Len(jen.Id(recv).Dot(f.Name)))
		}
	}
	return out
}
