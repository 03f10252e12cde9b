package soagen

import (
	"regexp"

	"github.com/dave/jennifer/jen"

	"soagen/pkg/schemas"
)

// companionType emits the struct declaration of companion comp: the
// record-level attributes, then one column per field with its own
// attributes and tags.
func (c *Context) companionType(f *jen.File, comp schemas.Companion, tags func(schemas.Field) map[string]string) {
	for _, line := range docLines(c.Record.Attrs.Attrs[comp], true) {
		f.Comment(line)
	}
	f.Type().Id(c.Names.Of(comp)).StructFunc(func(g *jen.Group) {
		for _, field := range c.Record.Fields {
			fieldTags := map[string]string{}
			if tags != nil {
				for k, v := range tags(field) {
					fieldTags[k] = v
				}
			}
			for _, attr := range field.Attrs[comp] {
				if attr.IsTag() {
					fieldTags[attr.Key] = attr.Value
				}
			}
			for _, line := range docLines(field.Attrs[comp], false) {
				g.Comment(line)
			}
			stat := g.Id(field.Name).Add(columnType(field, comp))
			if len(fieldTags) > 0 {
				stat.Tag(fieldTags)
			}
		}
	})
}

// directive matches the comment lines gofmt keeps at the end of a doc
// comment, such as //go:generate or //nolint:unused.
var directive = regexp.MustCompile(`^//(line |extern |export |[a-z0-9]+:[a-z0-9])`)

// docLines orders the comment attributes the way gofmt does: text first,
// then directives, separated by a blank comment line when there is text
// above them. afterDoc tells that the companion doc comment precedes attrs.
func docLines(attrs []schemas.Attr, afterDoc bool) []string {
	var text, directives []string
	for _, attr := range attrs {
		switch {
		case attr.IsTag():
		case directive.MatchString(attr.Comment):
			directives = append(directives, attr.Comment)
		default:
			text = append(text, attr.Comment)
		}
	}
	if len(directives) > 0 && (afterDoc || len(text) > 0) {
		text = append(text, "//")
	}
	return append(text, directives...)
}

