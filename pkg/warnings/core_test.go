package warnings

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSetWarningWriterRestoresAndCaptures tests the behavior of SetWarningWriter.
//
// It verifies:
//   - Original writer is restored after calling restore function
//   - Warning messages are captured by the new writer
//   - nil writer defaults to os.Stderr
func TestSetWarningWriterRestoresAndCaptures(t *testing.T) {
	original := warnWriter

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	Warnf("test message\n")
	restore()

	assert.Equal(t, original, warnWriter)
	assert.Contains(t, buf.String(), "test message")

	restore = SetWarningWriter(nil)
	restore()
	assert.Equal(t, os.Stderr, warnWriter)
}

// TestWarningWriterReturnsCurrent tests the behavior of WarningWriter.
//
// It verifies:
//   - Returns the currently configured warning writer
//   - Reflects writer changes made by SetWarningWriter
//   - Returns to original writer after restore
func TestWarningWriterReturnsCurrent(t *testing.T) {
	original := warnWriter
	assert.Equal(t, original, WarningWriter())

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	assert.Equal(t, &buf, WarningWriter())
	restore()

	assert.Equal(t, original, WarningWriter())
}

// TestCollectorGathersWarnings tests the behavior of Collector.
//
// It verifies:
//   - Warnings emitted while installed land in the collector
//   - Lines splits collected output into individual warnings
//   - The previous writer is restored after the restore call
func TestCollectorGathersWarnings(t *testing.T) {
	original := warnWriter

	var c Collector
	restore := c.Install()
	Warnf("first warning\n")
	Warnf("second warning\n")
	restore()

	assert.Equal(t, original, warnWriter)
	assert.Equal(t, []string{"first warning", "second warning"}, c.Lines())
}

// TestCollectorEmpty tests Collector behavior with no warnings.
//
// It verifies:
//   - Lines returns nil when nothing was collected
//   - Replay writes nothing to the destination
func TestCollectorEmpty(t *testing.T) {
	var c Collector
	restore := c.Install()
	restore()

	assert.Nil(t, c.Lines())

	var out bytes.Buffer
	c.Replay(&out)
	assert.Zero(t, out.Len())
}

// TestCollectorReplay tests the behavior of Collector.Replay.
//
// It verifies:
//   - Collected warnings are written verbatim to the destination writer
func TestCollectorReplay(t *testing.T) {
	var c Collector
	restore := c.Install()
	Warnf("deferred warning\n")
	restore()

	var out bytes.Buffer
	c.Replay(&out)
	assert.Equal(t, "deferred warning\n", out.String())
}
