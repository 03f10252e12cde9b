package schemas

import (
	"strconv"
	"strings"

	"github.com/thorn-jmh/errorst"
)

// Annotations recognised in doc comments. Like //go: directives they must
// start at the beginning of the comment, without a space.
const (
	DirectivePrefix = "//soa:"
	DirectiveDerive = DirectivePrefix + "derive"
	DirectiveAttr   = DirectivePrefix + "attr"

	// TagKey is the struct tag holding the per-field options.
	TagKey = "soa"

	OptionZip    = "zip"
	OptionNested = "nested"
)

// directives collects the annotations found in one doc comment.
type directives struct {
	derives []Derive
	attrs   Attributes
}

// parseDirectives reads the soa annotations out of raw comment lines and
// ignores every other comment. allowDerive is false for field comments.
func parseDirectives(lines []string, allowDerive bool) (directives, *Diagnostic) {
	var ds directives
	for _, line := range lines {
		if !strings.HasPrefix(line, DirectivePrefix) {
			continue
		}
		switch name, rest, _ := strings.Cut(line, " "); name {
		case DirectiveDerive:
			if !allowDerive {
				return ds, &Diagnostic{Annotation: line, Msg: "derives apply to records, not fields", Err: ErrAttrSyntax}
			}
			derives, diag := parseDeriveList(line, rest)
			if diag != nil {
				return ds, diag
			}
			ds.derives = append(ds.derives, derives...)
		case DirectiveAttr:
			companion, tok, _ := strings.Cut(strings.TrimSpace(rest), " ")
			if companion == "" || strings.TrimSpace(tok) == "" {
				return ds, &Diagnostic{Annotation: line, Msg: "expected //soa:attr <Companion> <attribute>", Err: ErrAttrSyntax}
			}
			c, ok := ParseCompanion(companion)
			if !ok {
				return ds, &Diagnostic{Annotation: line, Msg: "unknown companion " + companion, Err: ErrUnknownCompanion}
			}
			attr, err := ParseAttr(tok)
			if err != nil {
				return ds, &Diagnostic{Annotation: line, Msg: "attribute must be a //comment or a key:\"value\" tag", Err: ErrAttrSyntax}
			}
			ds.attrs.Add(c, attr)
		default:
			return ds, &Diagnostic{Annotation: line, Msg: "unknown annotation " + name, Err: ErrAttrSyntax}
		}
	}
	return ds, nil
}

func parseDeriveList(line, list string) ([]Derive, *Diagnostic) {
	var derives []Derive
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		d, ok := ParseDerive(name)
		if !ok {
			return nil, &Diagnostic{Annotation: line, Msg: "unknown derive " + name, Err: ErrUnknownDerive}
		}
		derives = append(derives, d)
	}
	if len(derives) == 0 {
		return nil, &Diagnostic{Annotation: line, Msg: "expected //soa:derive Name, ...", Err: ErrAttrSyntax}
	}
	return derives, nil
}

// ParseAttr parses an attribute token: a comment line starting with "//",
// or a single struct tag such as `json:"mass,omitempty"`.
func ParseAttr(tok string) (Attr, error) {
	tok = strings.TrimSpace(tok)
	if strings.HasPrefix(tok, "//") {
		return Attr{Comment: tok}, nil
	}
	tags, err := ParseStructTag(tok)
	if err != nil {
		return Attr{}, err
	}
	if len(tags) != 1 {
		return Attr{}, errorst.Wrap(ErrAttrSyntax, "expected exactly one tag in %q", tok)
	}
	for key, value := range tags {
		return Attr{Key: key, Value: value}, nil
	}
	panic("unreachable")
}

// ParseStructTag splits a conventional struct tag into its key/value pairs.
// It follows the grammar reflect.StructTag.Lookup accepts, but reports
// malformed input instead of ignoring it.
func ParseStructTag(tag string) (map[string]string, error) {
	tags := make(map[string]string)
	for {
		tag = strings.TrimLeft(tag, " ")
		if tag == "" {
			return tags, nil
		}

		// key: any run of non-control characters other than space, quote
		// and colon.
		i := 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return nil, errorst.Wrap(ErrAttrSyntax, "malformed struct tag %q", tag)
		}
		key := tag[:i]
		tag = tag[i+1:]

		// quoted value
		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			return nil, errorst.Wrap(ErrAttrSyntax, "unterminated value for tag key %q", key)
		}
		value, err := strconv.Unquote(tag[:i+1])
		if err != nil {
			return nil, errorst.Wrap(ErrAttrSyntax, "invalid value for tag key %q", key)
		}
		if _, dup := tags[key]; dup {
			return nil, errorst.Wrap(ErrAttrSyntax, "duplicate tag key %q", key)
		}
		tags[key] = value
		tag = tag[i+1:]
	}
}

// fieldOptions reads the soa struct tag of a field.
func fieldOptions(tags map[string]string) (nested, zip bool, diag *Diagnostic) {
	opts, ok := tags[TagKey]
	if !ok {
		return false, false, nil
	}
	for _, opt := range strings.Split(opts, ",") {
		switch strings.TrimSpace(opt) {
		case OptionZip:
			zip = true
		case OptionNested:
			nested = true
		case "":
		default:
			return false, false, &Diagnostic{Annotation: TagKey + `:"` + opts + `"`, Msg: "unknown option " + opt, Err: ErrUnknownOption}
		}
	}
	return nested, zip, nil
}
