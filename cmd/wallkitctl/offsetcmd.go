package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/wallkit/offsetengine/engine"
)

func init() {
	rootCmd.AddCommand(offsetCmd)
}

var offsetCmd = &cobra.Command{
	Use:   "offset <points-file> <d>",
	Short: "Offset a single polyline by distance d and print the result(s)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parsing distance %q: %w", args[1], err)
		}

		pline, err := loadPolyline(args[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", args[0], err)
		}
		log.Info().Str("file", args[0]).Float64("distance", d).Int("vertices", len(pline.Vertices)).Msg("offsetting polyline")

		results, err := engine.NewPolylineOffset(pline, d).Execute(cmd.Context())
		if err != nil {
			return err
		}

		log.Info().Int("results", len(results)).Msg("offset complete")
		for i, r := range results {
			fmt.Printf("# result %d\n%s", i, formatPolyline(r))
		}
		return nil
	},
}
