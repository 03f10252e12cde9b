// Package chem holds a particle record whose struct-of-arrays companion
// nests the geo.Vec3 companion and zips its scalar columns.
package chem

import "soagen/internal/fixtures/geo"

//go:generate go run soagen/cmd/soagen -t Particle

// Particle is a point mass.
//
//soa:derive Stringer, Equal, Clone, JSON, Ordered
//soa:attr Vec //nolint:unused
type Particle struct {
	Name string `soa:"zip" json:"name"`
	//soa:attr Ref // Mass in atomic units.
	Mass float64  `soa:"zip" json:"mass"`
	Pos  geo.Vec3 `soa:"nested" json:"pos"`
}
