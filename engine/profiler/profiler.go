package profiler

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// intervalSlack absorbs the truncation of tick periods that do not divide a second
// evenly, so a 60 Hz loop logs on its 60th tick rather than its 61st.
const intervalSlack = time.Microsecond

// Profiler tracks simulation step rate and memory statistics.
// Emits one debug-level log entry per update interval.
type Profiler struct {
	logger zerolog.Logger
	now    func() time.Time

	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	// lastRate is the most recently measured ticks per second.
	lastRate float64
}

// NewProfiler creates a new Profiler logging through logger, which is expected to
// carry the owner's component field. Update interval defaults to 1 second.
//
// Parameters:
//   - logger: destination for the periodic stats
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(logger zerolog.Logger) *Profiler {
	p := &Profiler{
		logger:         logger,
		now:            time.Now,
		updateInterval: time.Second,
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per simulation step.
// Logs performance statistics when the update interval has elapsed: step rate,
// heap usage, allocation rate, GC count and pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.tickCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed+intervalSlack < p.updateInterval {
		return false
	}

	p.lastRate = float64(p.tickCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.logger.Debug().
		Float64("tps", p.lastRate).
		Float64("heap_mb", allocMB).
		Float64("alloc_mb_s", allocRateMB).
		Uint32("gc", gcCount).
		Uint64("gc_last_us", lastPauseUs).
		Uint64("gc_max_us", maxPauseUs).
		Float64("sys_mb", sysMB).
		Msg("step stats")

	p.tickCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Rate returns the step rate measured over the last completed interval.
//
// Returns:
//   - float64: ticks per second, 0 before the first interval completes
func (p *Profiler) Rate() float64 {
	return p.lastRate
}
