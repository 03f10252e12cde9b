package soagen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/thorn-jmh/errorst"

	"soagen/pkg/schemas"
)

// zipDecl generates the zip API of an exported record: the slicer
// interfaces, the marker namespace and one type per ordered selection of
// distinct zip fields.
type zipDecl struct {
	*Context
}

// selection is an ordered list of distinct zip fields.
type selection []schemas.Field

// typeName is the selection type, e.g. ZipParticleMassName.
func (s selection) typeName(n Names) string {
	var b strings.Builder
	b.WriteString(n.ZipVar)
	for _, f := range s {
		b.WriteString(CamelStyle.Format(f.Name))
	}
	return b.String()
}

func (s selection) contains(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return true
		}
	}
	return false
}

// selections lists every selection of zips in depth-first order: a
// selection comes right before the selections extending it.
func selections(zips []schemas.Field) []selection {
	var out []selection
	var walk func(prefix selection)
	walk = func(prefix selection) {
		for _, f := range zips {
			if prefix.contains(f.Name) {
				continue
			}
			next := append(append(selection{}, prefix...), f)
			out = append(out, next)
			walk(next)
		}
	}
	walk(nil)
	return out
}

func (d *zipDecl) Gen(f *jen.File) error {
	n := d.Names
	zips := d.Record.ZipFields()
	if len(zips) > MaxZipFields {
		return errorst.Wrap(schemas.ErrTooManyZip, "%d zip fields, at most %d", len(zips), MaxZipFields)
	}

	// sources
	f.Commentf("%s is implemented by the containers a shared zip can read.", n.Slicer)
	f.Type().Id(n.Slicer).Interface(jen.Id("AsSlice").Params().Id(n.Slice))
	f.Commentf("%s is implemented by the containers an exclusive zip can write.", n.MutSlicer)
	f.Type().Id(n.MutSlicer).Interface(jen.Id("AsMutSlice").Params().Id(n.SliceMut))
	f.Line()
	f.Var().Defs(
		jen.Id("_").Id(n.Slicer).Op("=").Parens(jen.Op("*").Id(n.Vec)).Call(jen.Nil()),
		jen.Id("_").Id(n.Slicer).Op("=").Id(n.Slice).Values(),
		jen.Id("_").Id(n.Slicer).Op("=").Id(n.SliceMut).Values(),
		jen.Id("_").Id(n.MutSlicer).Op("=").Parens(jen.Op("*").Id(n.Vec)).Call(jen.Nil()),
		jen.Id("_").Id(n.MutSlicer).Op("=").Id(n.SliceMut).Values(),
	)

	// markers
	f.Commentf("%s selects the zip fields of %s: chain the fields to walk, as in", n.ZipVar, n.Record)
	f.Commentf("%s.%s.Zip(vec). A field cannot be selected twice.", n.ZipVar, zipExample(zips))
	f.Var().Id(n.ZipVar).Id(n.ZipMarkers)
	f.Commentf("%s is the type of %s.", n.ZipMarkers, n.ZipVar)
	f.Type().Id(n.ZipMarkers).Struct(d.markerFields(nil, zips)...)

	for _, sel := range selections(zips) {
		name := sel.typeName(n)
		f.Type().Id(name).Struct(d.markerFields(sel, zips)...)
		d.zipMethod(f, name, sel, false)
		d.zipMethod(f, name, sel, true)
	}
	return nil
}

// markerFields lists a field per zip field not in sel, typed by the
// selection extending sel with it.
func (d *zipDecl) markerFields(sel selection, zips []schemas.Field) []jen.Code {
	var fields []jen.Code
	for _, z := range zips {
		if sel.contains(z.Name) {
			continue
		}
		next := append(append(selection{}, sel...), z)
		fields = append(fields, jen.Id(CamelStyle.Format(z.Name)).Id(next.typeName(d.Names)))
	}
	return fields
}

// zipMethod emits Zip, reading values, or ZipMut, reading pointers.
func (d *zipDecl) zipMethod(f *jen.File, name string, sel selection, mut bool) {
	n := d.Names
	fn, src, view, each := "Zip", n.Slicer, "AsSlice", "ValuesOf"
	if mut {
		fn, src, view, each = "ZipMut", n.MutSlicer, "AsMutSlice", "PointersOf"
	}
	elem := func(fl schemas.Field) *jen.Statement {
		if mut {
			return jen.Op("*").Add(typeCode(fl.Type))
		}
		return typeCode(fl.Type)
	}

	var result jen.Code
	var build jen.Code
	if len(sel) == 1 {
		iter := "Values"
		if mut {
			iter = "Pointers"
		}
		result = jen.Op("*").Add(rt(iter).Types(typeCode(sel[0].Type)))
		build = rt(each).Call(jen.Id("s").Dot(sel[0].Name))
	} else {
		var types, iters []jen.Code
		for _, fl := range sel {
			types = append(types, elem(fl))
			iters = append(iters, rt(each).Call(jen.Id("s").Dot(fl.Name)))
		}
		arity := fmt.Sprint(len(sel))
		result = jen.Op("*").Add(rt("Multizip" + arity).Types(types...))
		build = rt("Zip" + arity).Types(types...).Call(iters...)
	}

	if mut {
		f.Comment("ZipMut walks the addresses of the selected columns of src in lockstep.")
	} else {
		f.Comment("Zip walks the values of the selected columns of src in lockstep.")
	}
	f.Func().Params(jen.Id(name)).Id(fn).Params(jen.Id("src").Id(src)).Add(result).Block(
		jen.Id("s").Op(":=").Id("src").Dot(view).Call(),
		jen.Return(build),
	)
}

// zipExample is the selector of the first two zip fields, for docs.
func zipExample(zips []schemas.Field) string {
	var parts []string
	for _, z := range zips[:min(2, len(zips))] {
		parts = append(parts, CamelStyle.Format(z.Name))
	}
	return strings.Join(parts, ".")
}
