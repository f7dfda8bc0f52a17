// Package log provides the application loggers plus an opt-in debug mode
// with component tracing and render profiling.
// Enable debug mode by setting CAROUSEL_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DebugEnvVar enables debug logging when set to "1".
const DebugEnvVar = "CAROUSEL_DEBUG"

// slowFrame is the budget for one rendered frame at 60fps.
const slowFrame = 16 * time.Millisecond

// frameWindow is the number of recent frames kept for rolling stats.
const frameWindow = 100

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "elastic-carousel-debug.log")

// InitDebug initializes debug logging if CAROUSEL_DEBUG=1 is set.
// Initialize calls it; tests may call it directly.
func InitDebug() {
	if os.Getenv(DebugEnvVar) != "1" {
		DebugEnabled = false
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true
	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Printf("debug mode enabled, writing to %s", debugLogFileName)
}

// CloseDebug dumps the render profile and closes the debug log file.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	profiler.LogStats()
	_ = debugLogFile.Close()
	debugLogFile = nil
	fmt.Println("wrote debug logs to " + debugLogFileName)
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// RenderProfiler accumulates per-component render timings and frame times.
type RenderProfiler struct {
	mu           sync.RWMutex
	components   map[string]*ComponentMetrics
	frameCount   int64
	totalTime    time.Duration
	frameTimings []time.Duration
}

// ComponentMetrics tracks render timings for a single component.
type ComponentMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MinTime     time.Duration
	MaxTime     time.Duration
}

var profiler = newRenderProfiler()

func newRenderProfiler() *RenderProfiler {
	return &RenderProfiler{
		components:   make(map[string]*ComponentMetrics),
		frameTimings: make([]time.Duration, 0, frameWindow),
	}
}

// GetProfiler returns the global render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender begins timing a component render and returns the function
// that stops the timer. It is a no-op outside debug mode.
func (p *RenderProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.recordRender(component, time.Since(start))
	}
}

func (p *RenderProfiler) recordRender(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.components[component]
	if !ok {
		m = &ComponentMetrics{Name: component, MinTime: elapsed, MaxTime: elapsed}
		p.components[component] = m
	}
	m.RenderCount++
	m.TotalTime += elapsed
	m.MinTime = min(m.MinTime, elapsed)
	m.MaxTime = max(m.MaxTime, elapsed)
}

// RecordFrame records a complete frame render.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed
	if len(p.frameTimings) >= frameWindow {
		p.frameTimings = p.frameTimings[1:]
	}
	p.frameTimings = append(p.frameTimings, elapsed)

	if elapsed > slowFrame && DebugLog != nil {
		DebugLog.Printf("SLOW FRAME: %v", elapsed)
	}
}

// GetStats returns a summary of render statistics.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	fmt.Fprintf(&sb, "Total frames: %d\n", p.frameCount)
	if p.frameCount > 0 {
		avg := p.totalTime / time.Duration(p.frameCount)
		fmt.Fprintf(&sb, "Avg frame time: %v\n", avg)
	}

	if n := len(p.frameTimings); n > 0 {
		var sum time.Duration
		lo, hi := p.frameTimings[0], p.frameTimings[0]
		for _, t := range p.frameTimings {
			sum += t
			lo = min(lo, t)
			hi = max(hi, t)
		}
		fmt.Fprintf(&sb, "Recent %d frames: avg=%v min=%v max=%v\n", n, sum/time.Duration(n), lo, hi)
	}

	sb.WriteString("\n--- Components ---\n")
	sorted := make([]*ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})
	for _, m := range sorted {
		fmt.Fprintf(&sb, "  %s: count=%d total=%v avg=%v min=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, m.TotalTime/time.Duration(m.RenderCount), m.MinTime, m.MaxTime)
	}

	return sb.String()
}

// LogStats logs the current render statistics.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset clears all profiling data.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.components = make(map[string]*ComponentMetrics)
	p.frameCount = 0
	p.totalTime = 0
	p.frameTimings = make([]time.Duration, 0, frameWindow)
}

// ComponentTrace logs lifecycle events of one component instance.
type ComponentTrace struct {
	component string
	startTime time.Time
}

// TraceComponent creates a new component trace. It returns nil outside
// debug mode; a nil trace ignores events.
func TraceComponent(component string) *ComponentTrace {
	if !DebugEnabled {
		return nil
	}
	return &ComponentTrace{
		component: component,
		startTime: time.Now(),
	}
}

// Event logs a component event.
func (t *ComponentTrace) Event(event string, details ...interface{}) {
	if t == nil || !DebugEnabled || DebugLog == nil {
		return
	}

	elapsed := time.Since(t.startTime)
	if len(details) > 0 {
		DebugLog.Printf("[%s] %s (+%v): %v", t.component, event, elapsed, details)
	} else {
		DebugLog.Printf("[%s] %s (+%v)", t.component, event, elapsed)
	}
}

// LayoutTrace logs layout computation events.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// InputTrace logs input handling events.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}

// PerformanceWarning logs performance-related warnings.
func PerformanceWarning(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[PERF WARNING] "+format, v...)
	}
}
