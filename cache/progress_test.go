package cache

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Basic(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 5)

	tracker.Start()
	tracker.Increment(5)
	assert.Contains(t, buf.String(), "5/10")

	tracker.Finish()
	assert.Contains(t, buf.String(), "10/10")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestProgressTracker_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)

	tracker.Increment(5)
	tracker.Finish()
	assert.Empty(t, buf.String(), "no output before Start")
	assert.Zero(t, tracker.Elapsed())
}

func TestProgressTracker_IncrementBeyondTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 3, 1)

	tracker.Start()
	tracker.Increment(10)
	assert.Contains(t, buf.String(), "3/3")
}

func TestProgressTracker_NilWriter(t *testing.T) {
	tracker := NewProgressTracker(nil, 2, 1)
	tracker.Start()
	tracker.Increment(2)
	tracker.Finish()
}

func TestNormalizeVector(t *testing.T) {
	normalized := NormalizeVector([]float32{3, 4})
	assert.InDelta(t, 0.6, normalized[0], 1e-6)
	assert.InDelta(t, 0.8, normalized[1], 1e-6)

	zero := NormalizeVector([]float32{0, 0})
	assert.Equal(t, []float32{0, 0}, zero)

	assert.Empty(t, NormalizeVector(nil))
}
