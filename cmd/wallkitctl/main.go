// Command wallkitctl is a thin diagnostic driver around the offsetengine
// library: it never becomes part of the engine's own import graph, and
// exists only to exercise the offset and wall-outline operations from the
// command line against simple text-file polyline inputs.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var logger zerolog.Logger

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	log.Logger = logger

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wallkitctl",
	Short: "Diagnostic driver for the polyline offset and wall-outline engine",
}
