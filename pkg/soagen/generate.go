package soagen

import (
	"github.com/dave/jennifer/jen"
	log "github.com/sirupsen/logrus"
	"github.com/thorn-jmh/errorst"

	"soagen/pkg/schemas"
)

// Header is the first line of every generated file.
const Header = "Code generated by soagen. DO NOT EDIT."

type Decl interface {
	Gen(file *jen.File) error
}

// Decls lists the declarations generated for the record of ctx, in the
// order they appear in the output.
func Decls(ctx *Context) []Decl {
	decls := []Decl{
		&vecDecl{ctx},
		&sliceDecl{ctx},
		&sliceMutDecl{ctx},
		&refDecl{Context: ctx},
		&refDecl{Context: ctx, mut: true},
		&ptrDecl{Context: ctx},
		&ptrDecl{Context: ctx, mut: true},
		&iterDecl{Context: ctx},
		&iterDecl{Context: ctx, mut: true},
	}
	if zipEnabled(ctx.Record) {
		decls = append(decls, &zipDecl{ctx})
	}
	if len(ctx.Record.Attrs.Derives) > 0 {
		decls = append(decls, &deriveDecl{ctx})
	}
	return decls
}

// GenerateFile validates records and generates their companions into a
// single file of their package.
func GenerateFile(records ...*schemas.Record) (*jen.File, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	first := records[0]

	f := jen.NewFilePathName(first.PkgPath, first.PkgName)
	f.HeaderComment(Header)
	f.ImportName(RuntimePath, "soa")
	f.ImportName("iter", "iter")

	for _, rec := range records {
		if rec.PkgPath != first.PkgPath {
			return nil, errorst.Wrap(ErrMixedPackages, "%s is in %s, %s in %s", first.Name, first.PkgPath, rec.Name, rec.PkgPath)
		}
		if err := Validate(rec); err != nil {
			return nil, err
		}

		ctx := NewContext(rec)
		for _, decl := range Decls(ctx) {
			if err := decl.Gen(f); err != nil {
				return nil, errorst.Wrap(err, "failed to generate companions of %s", rec.Name)
			}
		}
		log.Debugf("generated companions of %s (%d columns, %d zip)", rec.Name, len(rec.Fields), len(rec.ZipFields()))
	}
	return f, nil
}

// zipEnabled reports whether rec gets the zip API. Unexported records never
// do: their selections could not be used outside the package anyway.
func zipEnabled(rec *schemas.Record) bool {
	return rec.Exported && len(rec.ZipFields()) > 0
}
