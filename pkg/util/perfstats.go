package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time, and the heap activity, consumed between its
// construction and a later point.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total bytes allocated
	startBytes uint64
	// Starting number of heap objects allocated
	startMallocs uint64
}

// NewPerfStats creates a new snapshot of the current time and heap activity.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.Mallocs}
}

// Elapsed returns the time passed since this snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Log logs (at debug level) the difference between the state now and as it
// was when the snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	kb := (m.TotalAlloc - p.startBytes) / 1024
	mallocs := m.Mallocs - p.startMallocs

	log.Debugf("%s took %v using %v Kb (%v heap objects)", prefix, p.Elapsed(), kb, mallocs)
}
