package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	typeNames  []string
	outputFile string
	descriptor string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "soagen [-t <type>]... [-o <output>] [-d <descriptor>] [package...]",
	Short: "Generate struct-of-arrays companions of Go structs",
	Long: `soagen generates the struct-of-arrays companions of the structs annotated
with //soa: directives, or named with -t, in the given packages. It is meant
to be run by go generate:

	//go:generate soagen -t Particle`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if len(args) == 0 {
			args = []string{"."}
		}
		return gen(args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&typeNames, "type", "t", nil, "record type names, all annotated structs by default")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file, <record>_soa.go next to the record by default")
	rootCmd.PersistentFlags().StringVarP(&descriptor, "descriptor", "d", "", "read records from a JSON descriptor instead of Go source")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "increase logging verbosity")
}
