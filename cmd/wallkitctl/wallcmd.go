package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/wallkit/offsetengine/engine"
)

func init() {
	rootCmd.AddCommand(wallCmd)
}

var wallCmd = &cobra.Command{
	Use:   "wall <points-file...> <half-width>",
	Short: "Compute the wall outline of one or more centerline polylines",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := args[:len(args)-1]
		halfWidth, err := strconv.ParseFloat(args[len(args)-1], 64)
		if err != nil {
			return fmt.Errorf("parsing half-width %q: %w", args[len(args)-1], err)
		}

		plines, err := loadPolylines(files)
		if err != nil {
			return err
		}
		log.Info().Int("centerlines", len(plines)).Float64("halfWidth", halfWidth).Msg("computing wall outline")

		results, err := engine.NewWallOutline(plines, halfWidth).Execute(cmd.Context())
		if err != nil {
			return err
		}

		log.Info().Int("boundaries", len(results)).Msg("wall outline complete")
		for i, r := range results {
			fmt.Printf("# boundary %d\n%s", i, formatPolyline(r))
		}
		return nil
	},
}

func loadPolylines(files []string) ([]engine.Polyline, error) {
	plines := make([]engine.Polyline, 0, len(files))
	for _, f := range files {
		p, err := loadPolyline(f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		plines = append(plines, p)
	}
	return plines, nil
}
