package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/common"
)

// Stats is one reporting window of the profiler.
type Stats struct {
	Frames      int     // loop iterations in the window
	Redrawn     int     // frames that were actually rendered
	FPS         float64 // loop rate
	RedrawFPS   float64 // render rate
	HeapMB      float64 // live heap
	AllocRateMB float64 // heap churn per second
	SysMB       float64 // process footprint
	GCCount     uint32  // total collections
	LastPauseUs uint64
	MaxPauseUs  uint64 // longest pause in the window
}

// Skipped returns the frames that did not need a redraw.
func (s Stats) Skipped() int {
	return s.Frames - s.Redrawn
}

// Profiler tracks loop rate, redraw rate and memory statistics.
// Reports to the package logger at a configurable interval.
type Profiler struct {
	frameCount     int
	redrawCount    int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
	now            func() time.Time
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		now:            time.Now,
	}
}

// SetInterval changes how often statistics are reported. Non-positive values are ignored.
func (p *Profiler) SetInterval(d time.Duration) {
	if d > 0 {
		p.updateInterval = d
	}
}

// Last returns the most recently reported statistics.
func (p *Profiler) Last() Stats {
	return p.last
}

// Tick should be called once per loop iteration.
// Logs statistics when the update interval has elapsed.
//
// Parameters:
//   - redrawn: whether this iteration rendered a frame
//
// Returns:
//   - bool: true if stats were reported this tick, false otherwise
func (p *Profiler) Tick(redrawn bool) bool {
	p.frameCount++
	if redrawn {
		p.redrawCount++
	}
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		Frames:    p.frameCount,
		Redrawn:   p.redrawCount,
		FPS:       float64(p.frameCount) / elapsed.Seconds(),
		RedrawFPS: float64(p.redrawCount) / elapsed.Seconds(),
		HeapMB:    float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:     float64(p.memStats.Sys) / 1024 / 1024,
		GCCount:   p.memStats.NumGC,
	}
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	s.AllocRateMB = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	if s.GCCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses.
		s.LastPauseUs = p.memStats.PauseNs[(s.GCCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if s.GCCount-startIdx > 256 {
			startIdx = s.GCCount - 256
		}
		for i := startIdx; i < s.GCCount; i++ {
			s.MaxPauseUs = max(s.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	common.Logger().Info("profiler",
		"fps", round2(s.FPS),
		"redraw_fps", round2(s.RedrawFPS),
		"skipped", s.Skipped(),
		"heap_mb", round2(s.HeapMB),
		"alloc_mb_s", round2(s.AllocRateMB),
		"gc", s.GCCount,
		"gc_last_us", s.LastPauseUs,
		"gc_max_us", s.MaxPauseUs,
		"sys_mb", round2(s.SysMB),
	)

	p.last = s
	p.frameCount = 0
	p.redrawCount = 0
	p.lastTime = currentTime
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
