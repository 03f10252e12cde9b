package soagen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soagen/pkg/schemas"
)

func named(name, domain string) schemas.Type {
	return schemas.Type{Kind: schemas.KindNamed, Name: name, Domain: domain, Ordered: domain == "", Comparable: true}
}

func particleRecord() *schemas.Record {
	rec := &schemas.Record{
		Name:     "Particle",
		PkgPath:  "example.com/chem",
		PkgName:  "chem",
		Exported: true,
		Fields: []schemas.Field{
			{Name: "Name", Type: named("string", ""), Zip: true, Tags: map[string]string{"json": "name"}},
			{Name: "Mass", Type: named("float64", ""), Zip: true},
			{Name: "Pos", Type: named("Vec3", "example.com/geo"), Nested: true},
		},
	}
	rec.Attrs.Derives = []schemas.Derive{
		schemas.DeriveStringer, schemas.DeriveEqual, schemas.DeriveClone, schemas.DeriveJSON, schemas.DeriveOrdered,
	}
	rec.Attrs.Attrs.Add(schemas.CompanionVec, schemas.Attr{Comment: "//nolint:unused"})
	rec.Fields[1].Attrs.Add(schemas.CompanionRef, schemas.Attr{Comment: "// Mass in atomic units."})
	rec.Fields[1].Attrs.Add(schemas.CompanionVec, schemas.Attr{Key: "json", Value: "mass,omitempty"})
	return rec
}

// generated renders records and parses the result back.
type generated struct {
	src     string
	flat    string // src with every run of white space replaced by one space
	file    *ast.File
	types   map[string]*ast.TypeSpec
	funcs   map[string]*ast.FuncDecl // "Recv.Name" for methods
	imports map[string]string
}

func generate(t *testing.T, records ...*schemas.Record) *generated {
	t.Helper()
	f, err := GenerateFile(records...)
	require.NoError(t, err)
	src := fmt.Sprintf("%#v", f)

	file, err := parser.ParseFile(token.NewFileSet(), "out.go", src, parser.ParseComments)
	require.NoError(t, err, src)

	g := &generated{
		src:     src,
		flat:    strings.Join(strings.Fields(src), " "),
		file:    file,
		types:   map[string]*ast.TypeSpec{},
		funcs:   map[string]*ast.FuncDecl{},
		imports: map[string]string{},
	}
	for _, imp := range file.Imports {
		name := ""
		if imp.Name != nil {
			name = imp.Name.Name
		}
		g.imports[strings.Trim(imp.Path.Value, `"`)] = name
	}
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					g.types[ts.Name.Name] = ts
				}
			}
		case *ast.FuncDecl:
			key := decl.Name.Name
			if decl.Recv != nil {
				key = recvName(decl.Recv.List[0].Type) + "." + key
			}
			g.funcs[key] = decl
		}
	}
	return g
}

func recvName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return recvName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}

func (g *generated) structFields(t *testing.T, name string) []string {
	t.Helper()
	ts, ok := g.types[name]
	require.True(t, ok, "type %s", name)
	st, ok := ts.Type.(*ast.StructType)
	require.True(t, ok, "%s is not a struct", name)
	var names []string
	for _, f := range st.Fields.List {
		for _, n := range f.Names {
			names = append(names, n.Name)
		}
	}
	return names
}

func TestGenerateFile(t *testing.T) {
	g := generate(t, particleRecord())

	assert.True(t, strings.HasPrefix(g.src, "// "+Header))
	assert.Equal(t, "chem", g.file.Name.Name)
	assert.Contains(t, g.imports, RuntimePath)
	assert.Contains(t, g.flat, "soa.AssertLen(")
	assert.Contains(t, g.imports, "example.com/geo")

	for _, name := range []string{
		"ParticleVec", "ParticleSlice", "ParticleSliceMut", "ParticleRef", "ParticleRefMut",
		"ParticlePtr", "ParticlePtrMut",
	} {
		assert.Equal(t, []string{"Name", "Mass", "Pos"}, g.structFields(t, name), name)
	}
	assert.Equal(t, []string{"rest"}, g.structFields(t, "ParticleIter"))
	assert.Contains(t, g.flat, "Pos geo.Vec3Vec")
	assert.Contains(t, g.flat, "Pos geo.Vec3RefMut")
	assert.Contains(t, g.flat, "Mass *float64")

	for _, fn := range []string{
		"NewParticleVec", "NewParticleVecWithCapacity", "ParticleVecFromRawParts",
		"ParticleSliceFromRawParts", "ParticleSliceMutFromRawParts", "SortParticleSliceMutByKey",
		"ParticleVec.Push", "ParticleVec.Pop", "ParticleVec.Insert", "ParticleVec.Remove",
		"ParticleVec.SwapRemove", "ParticleVec.Retain", "ParticleVec.RetainMut", "ParticleVec.SplitOff",
		"ParticleVec.Index", "ParticleVec.IndexMut", "ParticleVec.GetSliceUncheckedMut", "ParticleVec.All",
		"ParticleSlice.SplitFirst", "ParticleSlice.GetUnchecked", "ParticleSlice.ToVec",
		"ParticleSliceMut.Swap", "ParticleSliceMut.SortBy", "ParticleSliceMut.ApplyIndex",
		"ParticleSliceMut.ApplyPermutation", "ParticleSliceMut.First", "ParticleSliceMut.FirstMut",
		"ParticleSliceMut.AllMut", "ParticleRef.Value", "ParticleRefMut.AsRef",
		"ParticlePtr.Offset", "ParticlePtr.WrappingSub", "ParticlePtrMut.Write", "ParticlePtrMut.AsMut",
		"ParticleIter.Next", "ParticleIterMut.Len",
		// derives
		"ParticleRef.String", "ParticlePtrMut.String", "ParticleVec.Equal", "ParticleVec.Clone",
		"ParticleVec.UnmarshalJSON", "ParticleRef.Compare", "ParticleSliceMut.Sort",
	} {
		assert.Contains(t, g.funcs, fn)
	}
	assert.Contains(t, g.flat, "var _ soa.Container[*ParticleVec, Particle, ParticleRef, ParticleRefMut, ParticleSlice, ParticleSliceMut] = (*ParticleVec)(nil)")
	assert.Contains(t, g.flat, `if other == v { panic("soa: ParticleVec.Append of a vector to itself") }`)
	assert.NotContains(t, g.funcs, "ParticleSlice.Swap", "shared slices cannot be permuted")
	assert.NotContains(t, g.funcs, "ParticleSlice.IndexMut")
}

func TestGenerateAttributes(t *testing.T) {
	g := generate(t, particleRecord())

	vec := g.types["ParticleVec"]
	require.NotNil(t, vec)
	st := vec.Type.(*ast.StructType)
	tags := map[string]string{}
	for _, f := range st.Fields.List {
		if f.Tag != nil {
			tags[f.Names[0].Name] = f.Tag.Value
		}
	}
	assert.Equal(t, "`json:\"name\"`", tags["Name"], "JSON copies the record tag")
	assert.Equal(t, "`json:\"mass,omitempty\"`", tags["Mass"], "attributes override copied tags")
	assert.NotContains(t, tags, "Pos")

	assert.Contains(t, g.flat, "any other view. // //nolint:unused type ParticleVec struct")
	assert.Contains(t, g.flat, "// Mass in atomic units. Mass *float64")
}

func TestGenerateImports(t *testing.T) {
	g := generate(t, particleRecord())
	for _, path := range []string{"iter", "cmp", "slices", RuntimePath} {
		name, ok := g.imports[path]
		assert.True(t, ok, path)
		assert.Empty(t, name, "%s is imported without an alias", path)
	}
}

func TestDocLines(t *testing.T) {
	text := schemas.Attr{Comment: "// Mass in atomic units."}
	nolint := schemas.Attr{Comment: "//nolint:unused"}
	tag := schemas.Attr{Key: "json", Value: "mass"}

	tests := []struct {
		name     string
		attrs    []schemas.Attr
		afterDoc bool
		want     []string
	}{
		{"empty", nil, true, nil},
		{"text only", []schemas.Attr{text, tag}, false, []string{"// Mass in atomic units."}},
		{"directive after doc", []schemas.Attr{nolint}, true, []string{"//", "//nolint:unused"}},
		{"directive alone", []schemas.Attr{nolint}, false, []string{"//nolint:unused"}},
		{"directives last", []schemas.Attr{nolint, text}, false, []string{"// Mass in atomic units.", "//", "//nolint:unused"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docLines(tt.attrs, tt.afterDoc))
		})
	}
}

func TestGenerateZip(t *testing.T) {
	g := generate(t, particleRecord())

	assert.Contains(t, g.flat, "var ZipParticle ZipParticleMarkers")
	assert.Equal(t, []string{"Name", "Mass"}, g.structFields(t, "ZipParticleMarkers"))
	assert.Equal(t, []string{"Mass"}, g.structFields(t, "ZipParticleName"))
	assert.Equal(t, []string{"Name"}, g.structFields(t, "ZipParticleMass"))
	assert.Empty(t, g.structFields(t, "ZipParticleNameMass"))
	assert.Empty(t, g.structFields(t, "ZipParticleMassName"))
	assert.NotContains(t, g.types, "ZipParticleNameName")
	assert.NotContains(t, g.types, "ZipParticlePos", "nested columns are not zipped")

	assert.Contains(t, g.funcs, "ZipParticleName.Zip")
	assert.Contains(t, g.funcs, "ZipParticleMassName.ZipMut")
	assert.Contains(t, g.flat, "*soa.Multizip2[float64, string]")
	assert.Contains(t, g.flat, "soa.Zip2[*float64, *string](soa.PointersOf(s.Mass), soa.PointersOf(s.Name))")
	assert.Contains(t, g.flat, "*soa.Values[string]")
	assert.Contains(t, g.types, "ParticleSlicer")
	assert.Contains(t, g.types, "ParticleMutSlicer")
}

func TestSelections(t *testing.T) {
	zips := []schemas.Field{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}
	sels := selections(zips)
	assert.Len(t, sels, 4+4*3+4*3*2+4*3*2*1)

	seen := map[string]bool{}
	for _, sel := range sels {
		name := sel.typeName(NamesOf("P"))
		assert.False(t, seen[name], "%s listed twice", name)
		seen[name] = true

		fields := map[string]bool{}
		for _, f := range sel {
			assert.False(t, fields[f.Name], "%s selects %s twice", name, f.Name)
			fields[f.Name] = true
		}
	}
	assert.True(t, seen["ZipPABCD"])
	assert.True(t, seen["ZipPDCBA"])
}

func TestGenerateUnexported(t *testing.T) {
	rec := &schemas.Record{
		Name:    "sample",
		PkgPath: "example.com/chem",
		PkgName: "chem",
		Fields: []schemas.Field{
			{Name: "values", Type: schemas.Type{Kind: schemas.KindSlice, Elem: &schemas.Type{Kind: schemas.KindNamed, Name: "int"}}, Zip: true},
		},
	}
	g := generate(t, rec)

	assert.Contains(t, g.funcs, "newSampleVec")
	assert.Contains(t, g.funcs, "newSampleVecWithCapacity")
	assert.Contains(t, g.funcs, "sortSampleSliceMutByKey")
	assert.NotContains(t, g.funcs, "sampleVec.All", "range adapters are only generated for exported records")
	assert.NotContains(t, g.types, "zipSampleMarkers")
	assert.Contains(t, g.flat, "values [][]int")
}

func TestGenerateFileErrors(t *testing.T) {
	_, err := GenerateFile()
	assert.ErrorIs(t, err, ErrNoRecords)

	other := particleRecord()
	other.Name = "Atom"
	other.PkgPath = "example.com/other"
	_, err = GenerateFile(particleRecord(), other)
	assert.Error(t, err)

	bad := particleRecord()
	bad.Fields = nil
	_, err = GenerateFile(bad)
	assert.ErrorIs(t, err, schemas.ErrNoFields)
}

func TestNamesOf(t *testing.T) {
	n := NamesOf("Particle")
	assert.Equal(t, "ParticleVec", n.Vec)
	assert.Equal(t, "NewParticleVec", n.NewVec)
	assert.Equal(t, "SortParticleSliceMutByKey", n.SortByKey)
	assert.Equal(t, "ZipParticle", n.ZipVar)
	assert.Equal(t, "ZipParticleMarkers", n.ZipMarkers)
	assert.Equal(t, "ParticlePtrMut", n.Of(schemas.CompanionPtrMut))

	n = NamesOf("reading")
	assert.Equal(t, "readingVec", n.Vec)
	assert.Equal(t, "newReadingVec", n.NewVec)
	assert.Equal(t, "readingSliceFromRawParts", n.SliceFromRawParts)

	assert.Equal(t, "particle_soa.go", FileName("Particle"))
	assert.Equal(t, "atomic_mass_soa.go", FileName("AtomicMass"))
}
