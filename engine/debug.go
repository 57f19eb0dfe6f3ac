package engine

import (
	"fmt"
	"io"
	"os"
)

// Debug enables debug output from the offset and wall-outline
// pipelines: a separator line at each pipeline phase, the raw-offset
// builder's flat-cap and bevel corner decisions, and summary counts from
// the raw-offset, stitching, and tracing stages.
var Debug = false

// DebugOutput is where debug output goes when Debug is true.
var DebugOutput io.Writer = os.Stdout

// debugLog prints a debug message if Debug is enabled.
func debugLog(format string, args ...any) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[engine] "+format+"\n", args...)
	}
}

// debugLogPhase prints a phase separator in debug output.
func debugLogPhase(phase string) {
	if Debug {
		fmt.Fprintf(DebugOutput, "--- %s ---\n", phase)
	}
}
