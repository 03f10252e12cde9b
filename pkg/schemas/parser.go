package schemas

import (
	"encoding/json"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/thorn-jmh/errorst"
	"golang.org/x/tools/go/packages"
)

// FromJSONFile reads record descriptors from a JSON file.
func FromJSONFile(filePath string) ([]*Record, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errorst.Wrap(err, "failed to open file %s", filePath)
	}

	defer func() {
		_ = f.Close()
	}()

	return FromJSON(f)
}

// FromJSON reads record descriptors from a JSON reader.
func FromJSON(r io.Reader) ([]*Record, error) {
	var desc Descriptor
	if err := json.NewDecoder(r).Decode(&desc); err != nil {
		if diag := AsDiagnostic(err); diag != nil {
			return nil, diag
		}
		return nil, errorst.Wrap(err, "failed to unmarshal JSON")
	}

	return desc, nil
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo

// Load type-checks the packages matching patterns, relative to dir, and
// returns the records named by typeNames. With no typeNames every struct
// carrying a soa annotation is returned.
//
// Type errors are logged and otherwise ignored: a stale generated file must
// not prevent the generator from regenerating it.
func Load(dir string, patterns []string, typeNames []string) ([]*Record, error) {
	cfg := &packages.Config{Mode: loadMode, Dir: dir}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errorst.Wrap(err, "failed to load packages %v", patterns)
	}

	var records []*Record
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			log.Debugf("%s: %v", pkg.PkgPath, e)
		}
		if pkg.Types == nil {
			continue
		}
		log.Debugf("scanning package %s (%d files)", pkg.PkgPath, len(pkg.Syntax))
		found, err := recordsFromPackage(pkg.Fset, pkg.Types, pkg.Syntax, typeNames)
		if err != nil {
			return nil, err
		}
		records = append(records, found...)
	}

	if err := checkFound(records, typeNames); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseSource type-checks a single file, given as a path or as src (see
// go/parser.ParseFile), as the package pkgPath. Imports are resolved from
// source.
func ParseSource(pkgPath, filename string, src any, typeNames []string) ([]*Record, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errorst.Wrap(err, "failed to parse %s", filename)
	}

	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error: func(err error) {
			log.Debugf("%s: %v", filename, err)
		},
	}
	pkg, _ := conf.Check(pkgPath, fset, []*ast.File{file}, nil)

	records, err := recordsFromPackage(fset, pkg, []*ast.File{file}, typeNames)
	if err != nil {
		return nil, err
	}
	if err := checkFound(records, typeNames); err != nil {
		return nil, err
	}
	return records, nil
}

func checkFound(records []*Record, typeNames []string) error {
	for _, name := range typeNames {
		if !slices.ContainsFunc(records, func(r *Record) bool { return r.Name == name }) {
			return errorst.Wrap(ErrRecordNotFound, "type %s", name)
		}
	}
	return nil
}

func recordsFromPackage(fset *token.FileSet, pkg *types.Package, files []*ast.File, typeNames []string) ([]*Record, error) {
	var records []*Record
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				if !wanted(ts.Name.Name, doc, typeNames) {
					continue
				}
				rec, err := recordFromSpec(fset, pkg, ts, doc)
				if err != nil {
					return nil, err
				}
				log.Debugf("found record %s with %d fields", rec.Name, len(rec.Fields))
				records = append(records, rec)
			}
		}
	}
	return records, nil
}

func wanted(name string, doc *ast.CommentGroup, typeNames []string) bool {
	if len(typeNames) > 0 {
		return slices.Contains(typeNames, name)
	}
	return slices.ContainsFunc(commentLines(doc), func(line string) bool {
		return strings.HasPrefix(line, DirectivePrefix)
	})
}

func commentLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	lines := make([]string, len(doc.List))
	for i, c := range doc.List {
		lines[i] = c.Text
	}
	return lines
}

func recordFromSpec(fset *token.FileSet, pkg *types.Package, ts *ast.TypeSpec, doc *ast.CommentGroup) (*Record, error) {
	rec := &Record{
		Name:     ts.Name.Name,
		PkgPath:  pkg.Path(),
		PkgName:  pkg.Name(),
		Exported: ts.Name.IsExported(),
		Pos:      fset.Position(ts.Pos()).String(),
		Dir:      filepath.Dir(fset.Position(ts.Pos()).Filename),
	}
	reject := func(diag *Diagnostic, field string, pos token.Pos) error {
		diag.Record, diag.Field = rec.Name, field
		diag.Pos = fset.Position(pos).String()
		return diag
	}

	if ts.TypeParams != nil {
		return nil, reject(&Diagnostic{Msg: "generic records are not supported", Err: ErrNotStruct}, "", ts.Pos())
	}
	astStruct, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, reject(&Diagnostic{Msg: "only struct types have struct-of-arrays companions", Err: ErrNotStruct}, "", ts.Pos())
	}
	// a struct literal type-checks to *types.Struct even when some of its
	// field types fail to resolve
	st := pkg.Scope().Lookup(rec.Name).Type().Underlying().(*types.Struct)

	ds, diag := parseDirectives(commentLines(doc), true)
	if diag != nil {
		return nil, reject(diag, "", ts.Pos())
	}
	rec.Attrs = ExtraAttributes{Derives: ds.derives, Attrs: ds.attrs}
	for _, list := range ds.attrs {
		for _, a := range list {
			if a.IsTag() {
				return nil, reject(&Diagnostic{Annotation: a.String(), Msg: "record attributes must be comment lines", Err: ErrAttrSyntax}, "", ts.Pos())
			}
		}
	}

	index := 0
	for _, af := range astStruct.Fields.List {
		if len(af.Names) == 0 {
			return nil, reject(&Diagnostic{Msg: "embedded fields cannot become columns", Err: ErrEmbeddedField}, types.ExprString(af.Type), af.Pos())
		}
		fds, diag := parseDirectives(commentLines(af.Doc), false)
		if diag != nil {
			return nil, reject(diag, af.Names[0].Name, af.Pos())
		}

		for _, ident := range af.Names {
			v := st.Field(index)
			tagText := st.Tag(index)
			index++

			if ident.Name == "_" {
				return nil, reject(&Diagnostic{Msg: "blank fields cannot become columns", Err: ErrEmbeddedField}, ident.Name, ident.Pos())
			}
			tags, err := ParseStructTag(tagText)
			if err != nil {
				return nil, reject(&Diagnostic{Annotation: tagText, Msg: "malformed struct tag", Err: ErrAttrSyntax}, ident.Name, ident.Pos())
			}
			nested, zip, diag := fieldOptions(tags)
			if diag != nil {
				return nil, reject(diag, ident.Name, ident.Pos())
			}
			typ, err := typeFromGo(v.Type())
			if err != nil {
				return nil, reject(&Diagnostic{Annotation: types.ExprString(af.Type), Msg: "unsupported column type " + v.Type().String(), Err: ErrUnsupportedType}, ident.Name, ident.Pos())
			}
			if nested && !namedStruct(v.Type()) {
				return nil, reject(&Diagnostic{Annotation: TagKey + `:"` + tags[TagKey] + `"`, Msg: v.Type().String() + " is not a named struct type", Err: ErrNestedType}, ident.Name, ident.Pos())
			}

			rec.Fields = append(rec.Fields, Field{
				Name:   ident.Name,
				Type:   typ,
				Nested: nested,
				Zip:    zip,
				Pos:    fset.Position(ident.Pos()).String(),
				Tags:   tags,
				Attrs:  fds.attrs,
			})
		}
	}
	return rec, nil
}
