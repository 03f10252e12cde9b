package schemas

import (
	"encoding/json"
	"go/token"
	"slices"

	"github.com/thorn-jmh/errorst"
)

// Record describes a user struct whose struct-of-arrays companions are
// generated. It is the contract between the front-ends in this package and
// the generator.
type Record struct {
	Name     string // type name
	PkgPath  string // import path of the package declaring the record
	PkgName  string // package name
	Exported bool   // the record name is exported
	Pos      string // declaration position, empty for JSON descriptors
	Dir      string // directory of the declaring file, empty for JSON descriptors

	Fields []Field
	Attrs  ExtraAttributes
}

// Field is one record field, and so one column of every companion.
type Field struct {
	Name   string
	Type   Type
	Nested bool // the column is the nested record's own companion
	Zip    bool // the field takes part in the zip API
	Pos    string

	Tags  map[string]string // struct tags of the record field
	Attrs Attributes        // per-companion attributes of the column
}

// Attr is one forwarded annotation: either a comment line emitted above a
// declaration, or a struct tag set on a column.
type Attr struct {
	Comment string // "//..." line, empty for tags
	Key     string // tag key
	Value   string // tag value
}

// IsTag reports whether a is a struct tag rather than a comment.
func (a Attr) IsTag() bool {
	return a.Comment == ""
}

func (a Attr) String() string {
	if a.IsTag() {
		return a.Key + ":" + `"` + a.Value + `"`
	}
	return a.Comment
}

// Attributes routes annotations to companions.
type Attributes map[Companion][]Attr

// Add appends attrs to the annotations of companion c.
func (a *Attributes) Add(c Companion, attrs ...Attr) {
	if *a == nil {
		*a = make(Attributes)
	}
	(*a)[c] = append((*a)[c], attrs...)
}

// ExtraAttributes are the record-level annotations.
type ExtraAttributes struct {
	Derives []Derive
	Attrs   Attributes
}

// Has reports whether the derive d was requested.
func (e ExtraAttributes) Has(d Derive) bool {
	return slices.Contains(e.Derives, d)
}

// ZipFields returns the fields tagged for the zip API, in declaration order.
func (r *Record) ZipFields() []Field {
	var zips []Field
	for _, f := range r.Fields {
		if f.Zip {
			zips = append(zips, f)
		}
	}
	return zips
}

// HasNested reports whether any column of r is a nested record.
func (r *Record) HasNested() bool {
	return slices.ContainsFunc(r.Fields, func(f Field) bool { return f.Nested })
}

// >>>>>>>>>>>>>>>>>>>> JSON descriptors >>>>>>>>>>>>>>>>>>>>>>>

// Descriptor is the content of a JSON descriptor file: either one record
// object or a list of them.
type Descriptor []*Record

type recordToUnmarshal struct {
	Name    string `json:"name"`
	Package struct {
		Path string `json:"path"`
		Name string `json:"name"`
	} `json:"package"`
	Derive []string            `json:"derive,omitempty"`
	Attrs  map[string][]string `json:"attrs,omitempty"`
	Fields []fieldToUnmarshal  `json:"fields"`
}

type fieldToUnmarshal struct {
	Name   string              `json:"name"`
	Type   string              `json:"type"`
	Nested bool                `json:"nested,omitempty"`
	Zip    bool                `json:"zip,omitempty"`
	Tags   map[string]string   `json:"tags,omitempty"`
	Attrs  map[string][]string `json:"attrs,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler for Descriptor.
func (d *Descriptor) UnmarshalJSON(b []byte) error {
	// a list of records
	if len(b) > 0 && b[0] == '[' {
		var records []*Record
		if err := json.Unmarshal(b, &records); err != nil {
			if diag := AsDiagnostic(err); diag != nil {
				return diag
			}
			return errorst.Wrap(err, "failed to unmarshal record list")
		}
		*d = records
		return nil
	}

	// else a single record
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		if diag := AsDiagnostic(err); diag != nil {
			return diag
		}
		return errorst.Wrap(err, "failed to unmarshal record")
	}
	*d = Descriptor{&r}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for Record. Unknown derives,
// companions and malformed type tokens are reported as *Diagnostic.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw recordToUnmarshal
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if !token.IsIdentifier(raw.Name) {
		return &Diagnostic{Record: raw.Name, Msg: "record name is not an identifier", Err: ErrNotStruct}
	}
	rec := Record{
		Name:     raw.Name,
		PkgPath:  raw.Package.Path,
		PkgName:  raw.Package.Name,
		Exported: token.IsExported(raw.Name),
	}

	for _, name := range raw.Derive {
		d, ok := ParseDerive(name)
		if !ok {
			return &Diagnostic{Record: rec.Name, Annotation: name, Msg: "unknown derive " + name, Err: ErrUnknownDerive}
		}
		rec.Attrs.Derives = append(rec.Attrs.Derives, d)
	}

	attrs, err := attrsFromJSON(rec.Name, "", raw.Attrs)
	if err != nil {
		return err
	}
	for c, list := range attrs {
		for _, a := range list {
			if a.IsTag() {
				return &Diagnostic{Record: rec.Name, Annotation: a.String(), Msg: "record attributes must be comment lines", Err: ErrAttrSyntax}
			}
		}
		rec.Attrs.Attrs.Add(c, list...)
	}

	for _, rf := range raw.Fields {
		typ, err := ParseType(rf.Type)
		if err != nil {
			return &Diagnostic{Record: rec.Name, Field: rf.Name, Annotation: rf.Type, Msg: "cannot parse type " + rf.Type, Err: ErrUnsupportedType}
		}
		f := Field{
			Name:   rf.Name,
			Type:   typ,
			Nested: rf.Nested,
			Zip:    rf.Zip,
			Tags:   rf.Tags,
		}
		if f.Attrs, err = attrsFromJSON(rec.Name, rf.Name, rf.Attrs); err != nil {
			return err
		}
		rec.Fields = append(rec.Fields, f)
	}

	*r = rec
	return nil
}

func attrsFromJSON(record, field string, raw map[string][]string) (Attributes, error) {
	var attrs Attributes
	for name, tokens := range raw {
		c, ok := ParseCompanion(name)
		if !ok {
			return nil, &Diagnostic{Record: record, Field: field, Annotation: name, Msg: "unknown companion " + name, Err: ErrUnknownCompanion}
		}
		for _, tok := range tokens {
			a, err := ParseAttr(tok)
			if err != nil {
				return nil, &Diagnostic{Record: record, Field: field, Annotation: tok, Msg: "attribute must be a //comment or a key:\"value\" tag", Err: ErrAttrSyntax}
			}
			attrs.Add(c, a)
		}
	}
	return attrs, nil
}
