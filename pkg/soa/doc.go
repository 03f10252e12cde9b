// Package soa is the runtime support of the code emitted by soagen.
//
// Generated struct-of-arrays companions keep one Go slice per record field
// and delegate the per-column work to the helpers of this package: growth
// and truncation of columns, bounds checking, the range taxonomy used by
// the indexing layer, raw pointer arithmetic, the permutation algorithm that
// backs sorting, and the multizip iterators of the zip layer.
//
// User code rarely needs this package directly, except to build ranges
// (Span, From, To, Full, Inclusive, ToInclusive) and to zip columns with
// external streams (Zip2 to Zip6).
package soa
