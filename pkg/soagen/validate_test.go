package soagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soagen/pkg/schemas"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(particleRecord()))

	mapType := schemas.Type{
		Kind: schemas.KindMap,
		Key:  &schemas.Type{Kind: schemas.KindNamed, Name: "string"},
		Elem: &schemas.Type{Kind: schemas.KindNamed, Name: "int"},
	}
	zip := func(name string) schemas.Field {
		return schemas.Field{Name: name, Type: named("int", ""), Zip: true}
	}

	tests := []struct {
		name   string
		edit   func(r *schemas.Record)
		err    error
		field  string
		prefix string
	}{
		{
			name: "no fields",
			edit: func(r *schemas.Record) { r.Fields = nil },
			err:  schemas.ErrNoFields,
		},
		{
			name:  "duplicate field",
			edit:  func(r *schemas.Record) { r.Fields = append(r.Fields, schemas.Field{Name: "Mass", Type: named("int", "")}) },
			err:   schemas.ErrDuplicateField,
			field: "Mass",
		},
		{
			name:  "method name",
			edit:  func(r *schemas.Record) { r.Fields[1].Name = "Len" },
			err:   schemas.ErrReservedName,
			field: "Len",
		},
		{
			name: "nested zip",
			edit: func(r *schemas.Record) {
				r.Fields[2].Zip = true
				r.Fields[2].Pos = "chem.go:12:2"
			},
			err:    schemas.ErrNestedZip,
			field:  "Pos",
			prefix: "chem.go:12:2: ",
		},
		{
			name:  "nested predeclared",
			edit:  func(r *schemas.Record) { r.Fields[2].Type = named("int", "") },
			err:   schemas.ErrNestedType,
			field: "Pos",
		},
		{
			name:  "equal on maps",
			edit:  func(r *schemas.Record) { r.Fields[1].Type = mapType },
			err:   schemas.ErrNotComparable,
			field: "Mass",
		},
		{
			name: "ordered on maps",
			edit: func(r *schemas.Record) {
				r.Attrs.Derives = []schemas.Derive{schemas.DeriveOrdered}
				r.Fields[1].Type = mapType
			},
			err:   schemas.ErrNotOrdered,
			field: "Mass",
		},
		{
			name: "too many zips",
			edit: func(r *schemas.Record) {
				r.Fields = append(r.Fields, zip("A"), zip("B"), zip("C"))
			},
			err: schemas.ErrTooManyZip,
		},
		{
			name:  "blank field",
			edit:  func(r *schemas.Record) { r.Fields[0].Name = "_" },
			err:   schemas.ErrNotStruct,
			field: "_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := particleRecord()
			tt.edit(rec)
			err := Validate(rec)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)

			diag := schemas.AsDiagnostic(err)
			require.NotNil(t, diag)
			assert.Equal(t, "Particle", diag.Record)
			assert.Equal(t, tt.field, diag.Field)
			if tt.prefix != "" {
				assert.Contains(t, err.Error(), tt.prefix)
			}
		})
	}
}

func TestValidateNestedDerivesAreDeferred(t *testing.T) {
	rec := particleRecord()
	rec.Attrs.Derives = []schemas.Derive{schemas.DeriveOrdered, schemas.DeriveEqual}
	rec.Fields[2].Type.Comparable = false
	assert.NoError(t, Validate(rec), "nested columns answer for their own derives")
}
