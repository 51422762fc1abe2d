package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// reset restores the discarding logger after a test replaced it.
func reset(t *testing.T) {
	t.Cleanup(func() {
		Sync()
		Set(zap.NewNop())
	})
}

func TestDefaultLoggerDiscards(t *testing.T) {
	// packages log before main calls Init
	Set(zap.NewNop())
	assert.NotPanics(t, func() {
		Debug("before init")
		Sugar.Infow("before init", "n", 1)
		Sync()
	})
}

func TestSetObserver(t *testing.T) {
	reset(t)
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))

	Debug("hidden")
	Info("rotor started", zap.Float32("speed", 0.05))
	Warn("screenshot failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "rotor started", entries[0].Message)
	assert.Equal(t, float32(0.05), entries[0].ContextMap()["speed"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"loud":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
	} {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestInitWithoutOutputsIsNop(t *testing.T) {
	reset(t)
	require.NoError(t, InitWithFileConfig("debug", FileConfig{}, false))
	assert.False(t, Log.Core().Enabled(zapcore.ErrorLevel))
}

func TestFileLevels(t *testing.T) {
	reset(t)
	dir := t.TempDir()
	all := []string{"DEBUG", "INFO", "WARN", "ERROR"}

	for i, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			path := filepath.Join(dir, level+".log")
			require.NoError(t, InitWithFileConfig(level, FileConfig{Path: path, MaxSizeMB: 1}, false))

			Debug("tick")
			Info("started")
			Warn("slow frame")
			Error("render failed")
			Sync()

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			out := string(data)
			for j, tag := range all {
				if j >= i {
					assert.Contains(t, out, tag)
				} else {
					assert.NotContains(t, out, tag)
				}
			}
		})
	}
}

func TestFileRotation(t *testing.T) {
	reset(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "windturbine.log")

	// 1 MB is the smallest size lumberjack accepts
	require.NoError(t, InitWithFileConfig("info", FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 2}, false))

	line := strings.Repeat("x", 200)
	for i := 0; i < 8000; i++ {
		Sugar.Infof("frame %d %s", i, line)
	}
	Sync()

	assert.FileExists(t, path)
	backups, err := filepath.Glob(filepath.Join(dir, "windturbine-*.log"))
	require.NoError(t, err)
	assert.NotEmpty(t, backups, "expected at least one rotated file")
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("viewer.log")
	assert.Equal(t, FileConfig{
		Path:       "viewer.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}, cfg)
}
