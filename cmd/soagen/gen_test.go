package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soagen/pkg/schemas"
)

const particlesJSON = "../../pkg/schemas/testdata/particles.json"

func run(t *testing.T, args ...string) error {
	t.Helper()
	typeNames, outputFile, descriptor, verbose = nil, "", "", false
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestGenFromDescriptor(t *testing.T) {
	out := filepath.Join(t.TempDir(), "particle_soa.go")
	require.NoError(t, run(t, "-d", particlesJSON, "-o", out))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package chem")
	assert.Contains(t, string(src), "type ParticleVec struct")
	assert.Contains(t, string(src), "type sampleVec struct")
	assert.Contains(t, string(src), "var ZipParticle ZipParticleMarkers")
}

func TestGenSelectsTypes(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sample_soa.go")
	require.NoError(t, run(t, "-d", particlesJSON, "-o", out, "-t", "sample", "-v"))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "type sampleVec struct")
	assert.NotContains(t, string(src), "ParticleVec")

	err = run(t, "-d", particlesJSON, "-o", out, "-t", "Missing")
	assert.Error(t, err)
}

func TestGenRejectsBadDescriptor(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.go")
	err := run(t, "-d", "../../pkg/schemas/testdata/bad_derive.json", "-o", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, schemas.ErrUnknownDerive)
	assert.NoFileExists(t, out)
}

func TestGenAmbiguousOutput(t *testing.T) {
	dir := t.TempDir()
	desc := filepath.Join(dir, "two.json")
	require.NoError(t, os.WriteFile(desc, []byte(`[
  {"name": "A", "package": {"path": "example.com/a", "name": "a"}, "fields": [{"name": "X", "type": "int"}]},
  {"name": "B", "package": {"path": "example.com/b", "name": "b"}, "fields": [{"name": "Y", "type": "int"}]}
]`), 0o644))

	err := run(t, "-d", desc, "-o", filepath.Join(dir, "out.go"))
	assert.Error(t, err)
}

func TestGenWritesNothingOnDiagnostic(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("two.json", []byte(`[
  {"name": "A", "package": {"path": "example.com/a", "name": "a"}, "fields": [{"name": "X", "type": "int"}]},
  {"name": "B", "package": {"path": "example.com/b", "name": "b"}, "fields": [{"name": "Y", "type": "int"}, {"name": "Y", "type": "int"}]}
]`), 0o644))

	err := run(t, "-d", "two.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, schemas.ErrDuplicateField)
	assert.NoFileExists(t, filepath.Join(dir, "a_soa.go"))
	assert.NoFileExists(t, filepath.Join(dir, "b_soa.go"))

	require.NoError(t, run(t, "-d", "two.json", "-t", "A"))
	assert.FileExists(t, filepath.Join(dir, "a_soa.go"))
}

func TestOutputPath(t *testing.T) {
	outputFile = ""
	assert.Equal(t, filepath.Join("internal", "chem", "particle_soa.go"),
		outputPath(&schemas.Record{Name: "Particle", Dir: filepath.Join("internal", "chem")}))
	assert.Equal(t, "atom_soa.go", outputPath(&schemas.Record{Name: "Atom"}))
}

func TestByPackage(t *testing.T) {
	a1 := &schemas.Record{Name: "A1", PkgPath: "a"}
	b := &schemas.Record{Name: "B", PkgPath: "b"}
	a2 := &schemas.Record{Name: "A2", PkgPath: "a"}
	assert.Equal(t, [][]*schemas.Record{{a1, a2}, {b}}, byPackage([]*schemas.Record{a1, b, a2}))
}
