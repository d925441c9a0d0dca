package reporters

import (
	"fmt"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
)

// TimeStats most frequent month, day of week and start hour. Each field keeps every tied value
type TimeStats struct {
	MonthModes []string
	DayModes   []string
	HourModes  []int
}

func ComputeTimeStats(table *trip.TripTable) TimeStats {
	months := tripcounter.NewOrderedTripCounter[string]()
	days := tripcounter.NewOrderedTripCounter[string]()
	hours := tripcounter.NewOrderedTripCounter[int]()

	for _, tripData := range table.Trips {
		months.UpdateCounter(tripData.Month)
		days.UpdateCounter(tripData.DayOfWeek)
		hours.UpdateCounter(tripData.StartHour)
	}

	return TimeStats{
		MonthModes: months.Modes(),
		DayModes:   days.Modes(),
		HourModes:  hours.Modes(),
	}
}

type TimeReporter struct {
	reporter
}

func (tr *TimeReporter) GetType() string {
	return timeReporterType
}

// Report displays statistics on the most frequent times of travel
func (tr *TimeReporter) Report(table *trip.TripTable) {
	if CheckEmpty(tr.writer, table) {
		return
	}
	start := tr.begin("Calculating The Most Frequent Times of Travel...")

	stats := ComputeTimeStats(table)
	fmt.Fprintf(tr.writer, "Most Common Month: %s\n", stats.MonthModes[0])
	fmt.Fprintf(tr.writer, "Most Common Day of Week: %s\n", stats.DayModes[0])
	fmt.Fprintf(tr.writer, "Most Common Start Hour: %d\n", stats.HourModes[0])

	tr.finish(tr.GetType(), start)
}
