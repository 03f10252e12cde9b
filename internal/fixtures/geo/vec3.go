// Package geo holds geometry records with generated struct-of-arrays
// companions.
package geo

//go:generate go run soagen/cmd/soagen -t Vec3

// Vec3 is a point in space.
//
//soa:derive Equal, Ordered, JSON
type Vec3 struct {
	X, Y, Z float64
}
