package trip

import (
	"strings"
	"time"
)

// TripData struct that contains one trip record of a city
// + StartTime: moment in which the trip begins, kept in the timezone of the source data
// + EndTime: moment in which the trip ends. Zero if the source has no End Time column
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: type of rider. Empty if the value is missing
// + Gender: gender of the rider. Empty if the value is missing or the source has no Gender column
// + BirthYear: birth year of the rider. Only meaningful when HasBirthYear is true
// + Month, DayOfWeek, StartHour: derived from StartTime when the record is built
type TripData struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender"`
	BirthYear    int       `json:"birth_year"`
	HasBirthYear bool      `json:"has_birth_year"`
	Month        string    `json:"month"`
	DayOfWeek    string    `json:"day_of_week"`
	StartHour    int       `json:"start_hour"`
}

// NewTripData builds a TripData and derives its month, day of week and start hour from startTime
func NewTripData(startTime time.Time, duration float64, startStation string, endStation string, userType string) *TripData {
	return &TripData{
		StartTime:    startTime,
		Duration:     duration,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
		Month:        strings.ToLower(startTime.Month().String()),
		DayOfWeek:    strings.ToLower(startTime.Weekday().String()),
		StartHour:    startTime.Hour(),
	}
}

func (td *TripData) SetBirthYear(birthYear int) {
	td.BirthYear = birthYear
	td.HasBirthYear = true
}

// GetStationPair returns the start and end station of the trip
func (td *TripData) GetStationPair() StationPair {
	return StationPair{Start: td.StartStation, End: td.EndStation}
}

// StationPair is a (start station, end station) combination
type StationPair struct {
	Start string
	End   string
}

func (sp StationPair) String() string {
	return sp.Start + " -> " + sp.End
}

// Less orders pairs by start station and then by end station
func (sp StationPair) Less(other StationPair) bool {
	if sp.Start != other.Start {
		return sp.Start < other.Start
	}
	return sp.End < other.End
}
