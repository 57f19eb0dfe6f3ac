package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"strconv"

	"golang.org/x/image/vector"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/wallkit/offsetengine/engine"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <points-file...> <half-width> <out.png>",
	Short: "Render input centerlines and their computed wall outline to a PNG",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := args[len(args)-1]
		halfWidth, err := strconv.ParseFloat(args[len(args)-2], 64)
		if err != nil {
			return fmt.Errorf("parsing half-width %q: %w", args[len(args)-2], err)
		}
		files := args[:len(args)-2]

		plines, err := loadPolylines(files)
		if err != nil {
			return err
		}

		boundaries, err := engine.NewWallOutline(plines, halfWidth).Execute(cmd.Context())
		if err != nil {
			return err
		}
		log.Info().Int("centerlines", len(plines)).Int("boundaries", len(boundaries)).Str("out", outPath).Msg("rendering")

		img := renderScene(plines, boundaries)

		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return png.Encode(f, img)
	},
}

const renderPad = 20.0
const strokeHalfWidthPx = 1.0

var (
	colorBackground = color.NRGBA{255, 255, 255, 255}
	colorCenterline = color.NRGBA{200, 60, 60, 255}
	colorBoundary   = color.NRGBA{40, 40, 200, 255}
)

// renderScene rasterizes centerlines in red and wall boundaries in blue
// onto a white canvas sized to fit both with padding.
func renderScene(centerlines []engine.Polyline, boundaries []engine.Polyline) image.Image {
	minX, minY, maxX, maxY := sceneBounds(centerlines, boundaries)
	w := int(maxX-minX+2*renderPad) + 1
	h := int(maxY-minY+2*renderPad) + 1
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorBackground}, image.Point{}, draw.Src)

	toPixel := func(p engine.Point2D) (float32, float32) {
		return float32(p.X - minX + renderPad), float32(float64(h) - (p.Y - minY + renderPad))
	}

	for _, p := range centerlines {
		strokePolyline(img, p, toPixel, colorCenterline)
	}
	for _, p := range boundaries {
		strokePolyline(img, p, toPixel, colorBoundary)
	}

	return img
}

func sceneBounds(sets ...[]engine.Polyline) (minX, minY, maxX, maxY float64) {
	first := true
	for _, set := range sets {
		for _, p := range set {
			for _, v := range p.Vertices {
				if first {
					minX, maxX, minY, maxY = v.X, v.X, v.Y, v.Y
					first = false
					continue
				}
				minX, maxX = minF(minX, v.X), maxF(maxX, v.X)
				minY, maxY = minF(minY, v.Y), maxF(maxY, v.Y)
			}
		}
	}
	return
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// strokePolyline tessellates pline and fills a thin quad per segment via
// a vector.Rasterizer, the technique the pack's x/image/vector consumers
// use for path fills (this package exposes fills, not strokes, so each
// segment becomes its own short filled rectangle).
func strokePolyline(dst *image.RGBA, pline engine.Polyline, toPixel func(engine.Point2D) (float32, float32), c color.NRGBA) {
	points := pline.Tessellate(0.1)
	if len(points) < 2 {
		return
	}

	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())

	for i := 0; i < len(points)-1; i++ {
		ax, ay := toPixel(points[i])
		bx, by := toPixel(points[i+1])
		strokeSegment(r, ax, ay, bx, by)
	}

	r.Draw(dst, b, &image.Uniform{C: c}, image.Point{})
}

// strokeSegment adds a thin rectangle covering the segment a->b to r, as
// a quad perpendicular-offset by strokeHalfWidthPx.
func strokeSegment(r *vector.Rasterizer, ax, ay, bx, by float32) {
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length < 1e-6 {
		return
	}
	nx, ny := -dy/length*strokeHalfWidthPx, dx/length*strokeHalfWidthPx

	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

