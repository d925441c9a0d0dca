package reporters

import (
	"fmt"
	"strconv"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
)

// DurationStats total and mean trip duration, in seconds
type DurationStats struct {
	Total float64
	Mean  float64
}

// ComputeDurationStats must not be called with an empty table
func ComputeDurationStats(table *trip.TripTable) DurationStats {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range table.Trips {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	return DurationStats{
		Total: accumulator.GetTotalDuration(),
		Mean:  accumulator.GetAverageDuration(),
	}
}

type DurationReporter struct {
	reporter
}

func (dr *DurationReporter) GetType() string {
	return durationReporterType
}

// Report displays statistics on the total and average trip duration
func (dr *DurationReporter) Report(table *trip.TripTable) {
	if CheckEmpty(dr.writer, table) {
		return
	}
	start := dr.begin("Calculating Trip Duration...")

	stats := ComputeDurationStats(table)
	fmt.Fprintf(dr.writer, "Total Travel Time: %s seconds\n", formatSeconds(stats.Total))
	fmt.Fprintf(dr.writer, "Mean Travel Time: %s seconds\n", formatSeconds(stats.Mean))

	dr.finish(dr.GetType(), start)
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
