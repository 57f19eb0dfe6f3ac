package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/wallkit/offsetengine/engine"
)

// loadPolyline reads a polyline from a simple text format: one
// "x,y[,bulge]" per line, with an optional trailing "closed" or "open"
// line (default open if omitted). Blank lines and lines starting with
// "#" are ignored.
func loadPolyline(path string) (engine.Polyline, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.Polyline{}, err
	}
	defer f.Close()

	var verts []engine.PolylineVertex
	closed := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "closed" {
			closed = true
			continue
		}
		if line == "open" {
			closed = false
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return engine.Polyline{}, wrapParseErr(path, line)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return engine.Polyline{}, wrapParseErr(path, line)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return engine.Polyline{}, wrapParseErr(path, line)
		}
		bulge := 0.0
		if len(fields) >= 3 {
			bulge, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err != nil {
				return engine.Polyline{}, wrapParseErr(path, line)
			}
		}
		verts = append(verts, engine.PolylineVertex{X: x, Y: y, Bulge: bulge})
	}
	if err := scanner.Err(); err != nil {
		return engine.Polyline{}, err
	}

	return engine.Polyline{Vertices: verts, Closed: closed}, nil
}

func wrapParseErr(path, line string) error {
	return &parseError{path: path, line: line}
}

type parseError struct {
	path, line string
}

func (e *parseError) Error() string {
	return e.path + ": malformed line " + strconv.Quote(e.line)
}

// formatPolyline renders a polyline in the same "x,y[,bulge]" format
// loadPolyline reads, for printing results to stdout.
func formatPolyline(p engine.Polyline) string {
	var b strings.Builder
	for _, v := range p.Vertices {
		b.WriteString(strconv.FormatFloat(v.X, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(v.Y, 'f', -1, 64))
		if v.Bulge != 0 {
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(v.Bulge, 'f', -1, 64))
		}
		b.WriteByte('\n')
	}
	if p.Closed {
		b.WriteString("closed\n")
	} else {
		b.WriteString("open\n")
	}
	return b.String()
}
