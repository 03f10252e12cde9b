package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "soagen authors"

// Widest multizip: four zip columns plus two external streams.
const maxArity = 6

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2026, "soagen")

	exitOnError(bgen.Generate(multizipConfig(2, maxArity), "soa", "templates",
		bavard.Entry{
			File:      "../../multizip.go",
			Templates: []string{"multizip.go.tmpl"},
		},
	), "multizip")

	gofmt("../../multizip.go")
}

type arity struct {
	N      int
	Params []string // T0, T1, ...
	Iters  []string // it0, it1, ...
}

// TypeParams renders the type parameter list of the arity, "T0, T1".
func (a arity) TypeParams() string {
	return strings.Join(a.Params, ", ")
}

type config struct {
	Arities []arity
}

func multizipConfig(from, to int) config {
	var cfg config
	for n := from; n <= to; n++ {
		a := arity{N: n}
		for i := 0; i < n; i++ {
			a.Params = append(a.Params, fmt.Sprintf("T%d", i))
			a.Iters = append(a.Iters, fmt.Sprintf("it%d", i))
		}
		cfg.Arities = append(cfg.Arities, a)
	}
	return cfg
}

// gofmt formats the generated file in place.
func gofmt(path string) {
	cmd := exec.Command("gofmt", "-w", path)
	cmd.Stderr = os.Stderr
	exitOnError(cmd.Run(), "gofmt "+path)
}

func exitOnError(err error, what string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
		os.Exit(1)
	}
}
