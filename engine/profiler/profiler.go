package profiler

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Stats is one reporting window's worth of measurements.
type Stats struct {
	Frames   int
	Elapsed  time.Duration
	FPS      float64
	MinFrame time.Duration
	MaxFrame time.Duration
	AvgFrame time.Duration

	HeapMB      float64
	AllocRateMB float64
	NumGC       uint32
	MaxPauseUs  uint64
	SysMB       float64
}

func (s Stats) String() string {
	return fmt.Sprintf("FPS: %.2f | Frame: %.2f/%.2f/%.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max: %d µs) | Sys: %.2f MB",
		s.FPS, ms(s.MinFrame), ms(s.AvgFrame), ms(s.MaxFrame), s.HeapMB, s.AllocRateMB, s.NumGC, s.MaxPauseUs, s.SysMB)
}

// Profiler tracks frame timing and memory statistics and logs them at a fixed interval. An optional
// sampler appends application state, such as the camera pose, to each report.
type Profiler struct {
	now      func() time.Time
	interval time.Duration
	sampler  func() string
	logf     func(format string, args ...any)

	frameCount int
	windowTime time.Time
	frameTime  time.Time
	minFrame   time.Duration
	maxFrame   time.Duration

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	last Stats
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are reported. Non-positive values are ignored.
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithSampler appends the sampler's output to every report.
func WithSampler(sampler func() string) ProfilerOption {
	return func(p *Profiler) {
		p.sampler = sampler
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithLogger replaces log.Printf as the report sink.
func WithLogger(logf func(format string, args ...any)) ProfilerOption {
	return func(p *Profiler) {
		p.logf = logf
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: variadic list of ProfilerOption functions
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		now:      time.Now,
		interval: time.Second,
		logf:     log.Printf,
	}
	for _, opt := range options {
		opt(p)
	}
	p.windowTime = p.now()
	p.frameTime = p.windowTime
	return p
}

// Tick should be called once per frame. It records the frame's duration and logs a report when the
// update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	current := p.now()
	frame := current.Sub(p.frameTime)
	p.frameTime = current

	if p.frameCount == 0 || frame < p.minFrame {
		p.minFrame = frame
	}
	if frame > p.maxFrame {
		p.maxFrame = frame
	}
	p.frameCount++

	elapsed := current.Sub(p.windowTime)
	if elapsed < p.interval {
		return false
	}

	s := Stats{
		Frames:   p.frameCount,
		Elapsed:  elapsed,
		FPS:      float64(p.frameCount) / elapsed.Seconds(),
		MinFrame: p.minFrame,
		MaxFrame: p.maxFrame,
		AvgFrame: elapsed / time.Duration(p.frameCount),
	}
	p.readMemory(&s, elapsed)

	if p.sampler != nil {
		p.logf("[Profiler] %s | %s", s, p.sampler())
	} else {
		p.logf("[Profiler] %s", s)
	}

	p.last = s
	p.frameCount = 0
	p.maxFrame = 0
	p.windowTime = current
	return true
}

// Last returns the most recent report, or the zero Stats before the first one.
func (p *Profiler) Last() Stats {
	return p.last
}

func (p *Profiler) readMemory(s *Stats, elapsed time.Duration) {
	runtime.ReadMemStats(&p.memStats)
	s.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
	s.SysMB = float64(p.memStats.Sys) / 1024 / 1024
	s.AllocRateMB = float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 pauses.
	gcCount := p.memStats.NumGC
	start := p.lastGCCount
	if gcCount-start > 256 {
		start = gcCount - 256
	}
	for i := start; i < gcCount; i++ {
		if pause := p.memStats.PauseNs[i%256] / 1000; pause > s.MaxPauseUs {
			s.MaxPauseUs = pause
		}
	}
	s.NumGC = gcCount

	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
