package browser

import (
	"bikeshare/domain/entities/trip"
	"bikeshare/reporters"
	"bikeshare/utils"
)

// TimeModeSubset keeps the trips whose month, day of week and start hour are each one of the modal values
func TimeModeSubset(table *trip.TripTable) *trip.TripTable {
	stats := reporters.ComputeTimeStats(table)
	months := utils.NewSet(stats.MonthModes...)
	days := utils.NewSet(stats.DayModes...)
	hours := utils.NewSet(stats.HourModes...)

	return table.Filter(func(tripData *trip.TripData) bool {
		return months.Contains(tripData.Month) && days.Contains(tripData.DayOfWeek) && hours.Contains(tripData.StartHour)
	})
}

// StationModeSubset keeps the trips whose start and end stations are each one of the modal stations
func StationModeSubset(table *trip.TripTable) *trip.TripTable {
	stats := reporters.ComputeStationStats(table)
	startStations := utils.NewSet(stats.StartModes...)
	endStations := utils.NewSet(stats.EndModes...)

	return table.Filter(func(tripData *trip.TripData) bool {
		return startStations.Contains(tripData.StartStation) && endStations.Contains(tripData.EndStation)
	})
}

// BirthYearSubsets trips of riders born in the earliest year, the most recent year and the most common year(s)
type BirthYearSubsets struct {
	Earliest   *trip.TripTable
	MostRecent *trip.TripTable
	MostCommon *trip.TripTable
}

// ComputeBirthYearSubsets ok is false when the table has no birth year values
func ComputeBirthYearSubsets(table *trip.TripTable) (subsets BirthYearSubsets, ok bool) {
	stats := reporters.ComputeUserStats(table)
	if !stats.HasBirthYear {
		return subsets, false
	}

	modes := utils.NewSet(stats.BirthYearModes...)
	subsets.Earliest = table.Filter(func(tripData *trip.TripData) bool {
		return tripData.HasBirthYear && tripData.BirthYear == stats.EarliestYear
	})
	subsets.MostRecent = table.Filter(func(tripData *trip.TripData) bool {
		return tripData.HasBirthYear && tripData.BirthYear == stats.MostRecentYear
	})
	subsets.MostCommon = table.Filter(func(tripData *trip.TripData) bool {
		return tripData.HasBirthYear && modes.Contains(tripData.BirthYear)
	})
	return subsets, true
}
