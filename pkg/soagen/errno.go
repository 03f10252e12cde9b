package soagen

import "github.com/thorn-jmh/errorst"

var (
	ErrNoRecords     = errorst.NewError("no records to generate")
	ErrMixedPackages = errorst.NewError("records of one file must share a package")
)
