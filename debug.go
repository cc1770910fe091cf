package panes

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut receives debug output. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// sweepStats holds the metrics of one global sweep.
// Only populated when the session is in debug mode.
type sweepStats struct {
	regions int
	offset  Vec2
	zoom    Vec2
	elapsed time.Duration
}

// SetDebugMode enables or disables debug mode. When enabled, region
// lifecycle operations and per-sweep timing are logged to stderr.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

func (s *Session) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[panes] "+format+"\n", args...)
}

// debugSweep prints sweep stats.
func (s *Session) debugSweep(stats sweepStats) {
	s.debugf("sweep: %d regions | origin: (%g,%g) | zoom: (%g,%g) | took: %v",
		stats.regions, stats.offset.X, stats.offset.Y, stats.zoom.X, stats.zoom.Y, stats.elapsed)
}
