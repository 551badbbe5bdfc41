package profiler

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestTickReportsAtInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var lines []string
	p := NewProfiler(
		WithClock(clock.now),
		WithInterval(100*time.Millisecond),
		WithLogger(func(format string, args ...any) { lines = append(lines, fmt.Sprintf(format, args...)) }),
	)

	frames := []time.Duration{10, 20, 30, 40}
	for i, f := range frames {
		clock.advance(f * time.Millisecond)
		reported := p.Tick()
		if want := i == len(frames)-1; reported != want {
			t.Fatalf("tick %d: expected reported=%v, got %v", i, want, reported)
		}
	}

	if len(lines) != 1 || !strings.HasPrefix(lines[0], "[Profiler] FPS: 40.00") {
		t.Fatalf("unexpected log output %q", lines)
	}

	s := p.Last()
	if s.Frames != 4 {
		t.Errorf("expected 4 frames, got %d", s.Frames)
	}
	if s.MinFrame != 10*time.Millisecond || s.MaxFrame != 40*time.Millisecond {
		t.Errorf("expected min 10ms max 40ms, got %v %v", s.MinFrame, s.MaxFrame)
	}
	if s.AvgFrame != 25*time.Millisecond {
		t.Errorf("expected avg 25ms, got %v", s.AvgFrame)
	}
}

func TestTickResetsWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(time.Second), WithLogger(func(string, ...any) {}))

	clock.advance(time.Second)
	if !p.Tick() {
		t.Fatal("expected first report")
	}
	clock.advance(500 * time.Millisecond)
	if p.Tick() {
		t.Fatal("expected no report half way through the second window")
	}
	clock.advance(500 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("expected second report")
	}
	if s := p.Last(); s.Frames != 2 || s.MaxFrame != 500*time.Millisecond {
		t.Errorf("unexpected second window %+v", s)
	}
}

func TestSamplerAppended(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var line string
	p := NewProfiler(
		WithClock(clock.now),
		WithSampler(func() string { return "az=0.50" }),
		WithLogger(func(format string, args ...any) { line = fmt.Sprintf(format, args...) }),
	)

	clock.advance(2 * time.Second)
	p.Tick()
	if !strings.HasSuffix(line, "| az=0.50") {
		t.Errorf("sampler output missing from %q", line)
	}
}
