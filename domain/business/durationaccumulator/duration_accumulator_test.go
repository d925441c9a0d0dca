package durationaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationAccumulator(t *testing.T) {
	accumulator := NewDurationAccumulator()
	for _, duration := range []float64{300, 600, 1500} {
		accumulator.UpdateAccumulator(duration)
	}

	assert.Equal(t, 3, accumulator.Counter)
	assert.Equal(t, 2400.0, accumulator.GetTotalDuration())
	assert.Equal(t, 800.0, accumulator.GetAverageDuration())
}

func TestAverageOfEmptyAccumulatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDurationAccumulator().GetAverageDuration()
	})
}
