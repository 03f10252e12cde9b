package soagen

import (
	"fmt"
	"go/token"

	"soagen/pkg/schemas"
)

// MaxZipFields bounds the zip fields of a record. Every ordered selection
// of distinct zip fields becomes a type, so the count grows factorially.
const MaxZipFields = 4

// methodNames are the methods declared on companions that carry one field
// per column. A column with one of these names would not compile.
var methodNames = map[string]struct{}{}

func init() {
	for _, name := range []string{
		// containers
		"Len", "IsEmpty", "Cap", "Reserve", "ReserveExact", "ShrinkToFit", "Truncate",
		"Push", "Pop", "Insert", "Remove", "SwapRemove", "Replace", "Append", "Clear",
		"SplitOff", "Retain", "RetainMut", "Resize", "AsSlice", "AsMutSlice", "AsRef",
		"AsPtr", "AsMutPtr", "Iter", "IterMut", "All", "AllMut", "ToVec", "Reborrow",
		"First", "Last", "FirstMut", "LastMut", "SplitFirst", "SplitLast", "SplitAt",
		"SplitFirstMut", "SplitLastMut", "SplitAtMut", "Swap", "SortBy", "Sort",
		"ApplyIndex", "ApplyPermutation",
		// indexing
		"Index", "Get", "GetUnchecked", "IndexMut", "GetMut", "GetUncheckedMut",
		"Slice", "GetSlice", "GetSliceUnchecked", "SliceMut", "GetSliceMut", "GetSliceUncheckedMut",
		// refs and pointers
		"Value", "IsNull", "AsMut", "Offset", "Add", "Sub", "WrappingOffset", "WrappingAdd",
		"WrappingSub", "Read", "ReadUnaligned", "ReadVolatile", "Write", "WriteUnaligned",
		"WriteVolatile",
		// derives
		"String", "Equal", "Clone", "UnmarshalJSON", "Compare",
	} {
		methodNames[name] = struct{}{}
	}
}

// Validate checks that companions can be generated for rec. Problems are
// reported as *schemas.Diagnostic.
func Validate(rec *schemas.Record) error {
	reject := func(field string, sentinel error, format string, args ...any) error {
		pos := rec.Pos
		for _, f := range rec.Fields {
			if f.Name == field && f.Pos != "" {
				pos = f.Pos
			}
		}
		return &schemas.Diagnostic{Pos: pos, Record: rec.Name, Field: field, Msg: fmt.Sprintf(format, args...), Err: sentinel}
	}

	if !token.IsIdentifier(rec.Name) {
		return reject("", schemas.ErrNotStruct, "%q is not an identifier", rec.Name)
	}
	if len(rec.Fields) == 0 {
		return reject("", schemas.ErrNoFields, "a record without fields has no columns")
	}

	seen := make(map[string]bool, len(rec.Fields))
	zips := 0
	for _, f := range rec.Fields {
		switch {
		case !token.IsIdentifier(f.Name) || f.Name == "_":
			return reject(f.Name, schemas.ErrNotStruct, "%q is not a field name", f.Name)
		case seen[f.Name]:
			return reject(f.Name, schemas.ErrDuplicateField, "field %s is declared twice", f.Name)
		}
		seen[f.Name] = true
		if _, ok := methodNames[f.Name]; ok {
			return reject(f.Name, schemas.ErrReservedName, "column %s would collide with the %s method of the companions", f.Name, f.Name)
		}

		if f.Nested {
			if f.Zip {
				return reject(f.Name, schemas.ErrNestedZip, "nested columns cannot be zipped")
			}
			if f.Type.Kind != schemas.KindNamed || f.Type.Predeclared() {
				return reject(f.Name, schemas.ErrNestedType, "%s is not a named struct type", f.Type)
			}
		}
		if f.Zip {
			zips++
		}

		if f.Nested {
			continue
		}
		if rec.Attrs.Has(schemas.DeriveEqual) && !f.Type.Comparable {
			return reject(f.Name, schemas.ErrNotComparable, "Equal needs == on %s", f.Type)
		}
		if rec.Attrs.Has(schemas.DeriveOrdered) && !f.Type.Ordered {
			return reject(f.Name, schemas.ErrNotOrdered, "Ordered needs cmp.Compare on %s", f.Type)
		}
	}

	if zips > MaxZipFields {
		return reject("", schemas.ErrTooManyZip, "%d zip fields, at most %d are supported; consider splitting the record", zips, MaxZipFields)
	}
	return nil
}
