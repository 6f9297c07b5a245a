package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetLogger restores the package defaults after a test.
func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func captureLogs(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	t.Cleanup(resetLogger)

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(verbose)
	return buf
}

func TestSetVerbose(t *testing.T) {
	t.Cleanup(resetLogger)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := captureLogs(t, true)

	Debug("fetched observation %d", 123)

	assert.Equal(t, "[DEBUG] fetched observation 123\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := captureLogs(t, false)

	Debug("fetched observation %d", 123)

	assert.Zero(t, buf.Len())
}

func TestInfo(t *testing.T) {
	buf := captureLogs(t, true)

	Info("listed %d ids", 42)

	assert.Equal(t, "[INFO] listed 42 ids\n", buf.String())
}

func TestInfo_WhenNotVerbose(t *testing.T) {
	buf := captureLogs(t, false)

	Info("listed %d ids", 42)

	assert.Zero(t, buf.Len())
}

func TestWarn(t *testing.T) {
	buf := captureLogs(t, true)

	Warn("run report not saved")

	assert.Equal(t, "[WARN] run report not saved\n", buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	captureLogs(t, false)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			SetVerbose(true)
			Debug("worker %d", n)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
