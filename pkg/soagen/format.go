package soagen

import (
	"go/token"

	"github.com/go-openapi/inflect"
)

type NameStyle interface {
	Format(name string) string
}

type NameStyleFunc func(name string) string

func (f NameStyleFunc) Format(name string) string {
	return f(name)
}

// CamelStyle turns "mass" or "atomic_mass" into "Mass" and "AtomicMass".
var CamelStyle NameStyleFunc = inflect.Camelize

// LowerCamelStyle is CamelStyle with a lower-case first letter.
var LowerCamelStyle NameStyleFunc = inflect.CamelizeDownFirst

// SnakeStyle turns "ParticleSet" into "particle_set".
var SnakeStyle NameStyleFunc = inflect.Underscore

// VisibleStyle returns the style that gives derived identifiers the same
// visibility as name.
func VisibleStyle(name string) NameStyle {
	if token.IsExported(name) {
		return CamelStyle
	}
	return LowerCamelStyle
}

// FileName is the name of the file holding the companions of a record.
func FileName(record string) string {
	return SnakeStyle.Format(record) + "_soa.go"
}
