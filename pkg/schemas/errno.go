package schemas

import (
	"errors"
	"strings"

	"github.com/thorn-jmh/errorst"
)

var (
	ErrNotStruct        = errorst.NewError("record is not a struct type")
	ErrNoFields         = errorst.NewError("record has no fields")
	ErrEmbeddedField    = errorst.NewError("embedded fields cannot become columns")
	ErrDuplicateField   = errorst.NewError("duplicate field")
	ErrReservedName     = errorst.NewError("field name collides with a generated method")
	ErrAttrSyntax       = errorst.NewError("malformed soa annotation")
	ErrUnknownCompanion = errorst.NewError("unknown companion")
	ErrUnknownDerive    = errorst.NewError("unknown derive")
	ErrUnknownOption    = errorst.NewError("unknown soa field option")
	ErrTooManyZip       = errorst.NewError("too many zip fields")
	ErrNestedZip        = errorst.NewError("nested field cannot be a zip field")
	ErrNestedType       = errorst.NewError("nested field must be a named struct type")
	ErrUnsupportedType  = errorst.NewError("unsupported field type")
	ErrNotOrdered       = errorst.NewError("field type is not ordered")
	ErrNotComparable    = errorst.NewError("field type is not comparable")
	ErrRecordNotFound   = errorst.NewError("record not found")
)

// Diagnostic is a rejection of a record, pointing at the annotation that
// caused it. It unwraps to one of the Err* sentinels above.
type Diagnostic struct {
	Pos        string // file:line:column, empty for JSON descriptors
	Record     string
	Field      string // empty for record-level problems
	Annotation string // offending annotation text, if any
	Msg        string
	Err        error
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	if d.Pos != "" {
		b.WriteString(d.Pos)
		b.WriteString(": ")
	}
	if d.Record != "" {
		b.WriteString(d.Record)
		if d.Field != "" {
			b.WriteString(".")
			b.WriteString(d.Field)
		}
		b.WriteString(": ")
	}
	if d.Annotation != "" {
		b.WriteString("`")
		b.WriteString(d.Annotation)
		b.WriteString("`: ")
	}
	b.WriteString(d.Msg)
	return b.String()
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// AsDiagnostic returns the *Diagnostic in err's chain, or nil.
func AsDiagnostic(err error) *Diagnostic {
	var diag *Diagnostic
	if errors.As(err, &diag) {
		return diag
	}
	return nil
}
