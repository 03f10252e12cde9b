package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/thorn-jmh/errorst"

	"soagen/pkg/schemas"
	"soagen/pkg/soagen"
)

// ErrAmbiguousOutput is returned when -o is given for records of several
// packages.
var ErrAmbiguousOutput = errorst.NewError("one output file for several packages")

func gen(patterns []string) error {
	records, err := loadRecords(patterns)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		log.Warnf("no soa records found in %s", strings.Join(patterns, " "))
		return nil
	}

	groups := byPackage(records)
	if outputFile != "" && len(groups) > 1 {
		return errorst.Wrap(ErrAmbiguousOutput, "%d packages", len(groups))
	}

	// render every file before writing any, so a diagnostic leaves the tree
	// untouched
	outputs := make([]output, 0, len(groups))
	for _, group := range groups {
		f, err := soagen.GenerateFile(group...)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		path := outputPath(group[0])
		if err := f.Render(&buf); err != nil {
			return errorst.Wrap(err, "failed to render %s", path)
		}
		outputs = append(outputs, output{path: path, src: buf.Bytes(), records: group})
	}

	for _, out := range outputs {
		if err := os.WriteFile(out.path, out.src, 0o644); err != nil {
			return errorst.Wrap(err, "failed to save %s", out.path)
		}
		log.Infof("wrote %s (%s)", out.path, recordNames(out.records))
	}
	return nil
}

type output struct {
	path    string
	src     []byte
	records []*schemas.Record
}

func loadRecords(patterns []string) ([]*schemas.Record, error) {
	if descriptor != "" {
		log.Debugf("reading records from %s", descriptor)
		records, err := schemas.FromJSONFile(descriptor)
		if err != nil {
			return nil, err
		}
		if len(typeNames) == 0 {
			return records, nil
		}
		var selected []*schemas.Record
		for _, rec := range records {
			for _, name := range typeNames {
				if rec.Name == name {
					selected = append(selected, rec)
				}
			}
		}
		if len(selected) < len(typeNames) {
			return nil, errorst.Wrap(schemas.ErrRecordNotFound, "%v in %s", typeNames, descriptor)
		}
		return selected, nil
	}

	return schemas.Load(".", patterns, typeNames)
}

// byPackage groups records by package, keeping the order of first
// appearance.
func byPackage(records []*schemas.Record) [][]*schemas.Record {
	index := map[string]int{}
	var groups [][]*schemas.Record
	for _, rec := range records {
		i, ok := index[rec.PkgPath]
		if !ok {
			i = len(groups)
			index[rec.PkgPath] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], rec)
	}
	return groups
}

func outputPath(rec *schemas.Record) string {
	if outputFile != "" {
		return outputFile
	}
	dir := rec.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, soagen.FileName(rec.Name))
}

func recordNames(records []*schemas.Record) string {
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}
	return strings.Join(names, ", ")
}
