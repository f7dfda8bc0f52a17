package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugDisabledByDefault(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil
	t.Setenv(DebugEnvVar, "")

	InitDebug()

	assert.False(t, DebugEnabled, "debug should be disabled without %s", DebugEnvVar)
	assert.NotNil(t, DebugLog, "DebugLog should be a no-op logger, never nil")
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil
	t.Setenv(DebugEnvVar, "1")

	InitDebug()
	defer func() {
		CloseDebug()
		DebugEnabled = false
	}()

	assert.True(t, DebugEnabled)
	assert.NotNil(t, DebugLog)
}

func TestDebugFunction(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil
	Debug("test message %s", "arg")

	DebugEnabled = true
	DebugLog = nil
	Debug("test message %s", "arg")
	DebugEnabled = false
}

func TestRenderProfiler(t *testing.T) {
	defer func() { DebugEnabled = false }()

	t.Run("StartRender returns noop when disabled", func(t *testing.T) {
		DebugEnabled = false
		profiler.Reset()

		done := profiler.StartRender("carousel")
		done()

		assert.Empty(t, profiler.components)
	})

	t.Run("StartRender records when enabled", func(t *testing.T) {
		DebugEnabled = true
		profiler.Reset()

		done := profiler.StartRender("carousel")
		time.Sleep(time.Millisecond)
		done()

		require.Len(t, profiler.components, 1)
		metrics := profiler.components["carousel"]
		require.NotNil(t, metrics)
		assert.Equal(t, int64(1), metrics.RenderCount)
		assert.GreaterOrEqual(t, metrics.TotalTime, time.Millisecond)
	})

	t.Run("multiple renders accumulate", func(t *testing.T) {
		DebugEnabled = true
		profiler.Reset()

		for i := 0; i < 5; i++ {
			profiler.StartRender("pagination")()
		}

		metrics := profiler.components["pagination"]
		require.NotNil(t, metrics)
		assert.Equal(t, int64(5), metrics.RenderCount)
	})
}

func TestRecordFrame(t *testing.T) {
	defer func() { DebugEnabled = false }()
	profiler.Reset()
	DebugEnabled = true

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.RecordFrame(20 * time.Millisecond)

	assert.Equal(t, int64(2), profiler.frameCount)
	assert.Equal(t, 30*time.Millisecond, profiler.totalTime)
}

func TestGetStats(t *testing.T) {
	defer func() { DebugEnabled = false }()
	profiler.Reset()
	DebugEnabled = true

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.StartRender("track")()

	stats := profiler.GetStats()
	assert.Contains(t, stats, "Render Profile")
	assert.Contains(t, stats, "track")

	DebugEnabled = false
	assert.Empty(t, profiler.GetStats())
}

func TestComponentTrace(t *testing.T) {
	defer func() { DebugEnabled = false }()

	DebugEnabled = false
	assert.Nil(t, TraceComponent("carousel"))

	DebugEnabled = true
	trace := TraceComponent("carousel")
	require.NotNil(t, trace)

	DebugLog = nil
	trace.Event("navigate")
	trace.Event("resize", 80, 3)

	var nilTrace *ComponentTrace
	nilTrace.Event("ignored")
}

func TestTraceHelpers(t *testing.T) {
	defer func() { DebugEnabled = false }()

	DebugEnabled = false
	DebugLog = nil
	LayoutTrace("test %s", "arg")
	InputTrace("test %s", "arg")
	PerformanceWarning("test %s", "arg")

	DebugEnabled = true
	DebugLog = nil
	LayoutTrace("test %s", "arg")
	InputTrace("test %s", "arg")
	PerformanceWarning("test %s", "arg")
}

func TestRollingWindow(t *testing.T) {
	defer func() { DebugEnabled = false }()
	profiler.Reset()
	DebugEnabled = true

	for i := 0; i < 150; i++ {
		profiler.RecordFrame(time.Millisecond)
	}

	assert.Len(t, profiler.frameTimings, frameWindow)
	assert.Equal(t, int64(150), profiler.frameCount)
}
