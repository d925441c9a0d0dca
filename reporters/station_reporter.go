package reporters

import (
	"fmt"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
)

// StationStats most used start station, end station and start/end combination, ties included
type StationStats struct {
	StartModes []string
	EndModes   []string
	TripModes  []trip.StationPair
}

func ComputeStationStats(table *trip.TripTable) StationStats {
	startStations := tripcounter.NewOrderedTripCounter[string]()
	endStations := tripcounter.NewOrderedTripCounter[string]()
	stationPairs := tripcounter.NewTripCounter(trip.StationPair.Less)

	for _, tripData := range table.Trips {
		startStations.UpdateCounter(tripData.StartStation)
		endStations.UpdateCounter(tripData.EndStation)
		stationPairs.UpdateCounter(tripData.GetStationPair())
	}

	return StationStats{
		StartModes: startStations.Modes(),
		EndModes:   endStations.Modes(),
		TripModes:  stationPairs.Modes(),
	}
}

type StationReporter struct {
	reporter
}

func (sr *StationReporter) GetType() string {
	return stationReporterType
}

// Report displays statistics on the most popular stations and trip
func (sr *StationReporter) Report(table *trip.TripTable) {
	if CheckEmpty(sr.writer, table) {
		return
	}
	start := sr.begin("Calculating The Most Popular Stations and Trip...")

	stats := ComputeStationStats(table)
	fmt.Fprintf(sr.writer, "Most Commonly Used Start Station: %s\n", stats.StartModes[0])
	fmt.Fprintf(sr.writer, "Most Commonly Used End Station: %s\n", stats.EndModes[0])
	fmt.Fprintf(sr.writer, "Most Frequent Combination of Start and End Station: %s\n", stats.TripModes[0])

	sr.finish(sr.GetType(), start)
}
