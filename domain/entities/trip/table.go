package trip

import (
	"bikeshare/domain/entities"
	"bikeshare/domain/vocabulary"
)

// TripTable ordered collection of trips of one city
// + Metadata: city, source file and optional columns detected at load time
// + Trips: records in source order
type TripTable struct {
	Metadata entities.Metadata
	Trips    []*TripData
}

func NewTripTable(metadata entities.Metadata, trips []*TripData) *TripTable {
	return &TripTable{
		Metadata: metadata,
		Trips:    trips,
	}
}

func (tt *TripTable) Len() int {
	return len(tt.Trips)
}

func (tt *TripTable) IsEmpty() bool {
	return len(tt.Trips) == 0
}

// Filter returns a new table, with the same metadata, holding the trips that satisfy keep
func (tt *TripTable) Filter(keep func(*TripData) bool) *TripTable {
	var kept []*TripData
	for _, tripData := range tt.Trips {
		if keep(tripData) {
			kept = append(kept, tripData)
		}
	}
	return NewTripTable(tt.Metadata, kept)
}

// FilterByMonth keeps the trips that started in month. "all" returns the table unchanged
func (tt *TripTable) FilterByMonth(month string) *TripTable {
	if month == vocabulary.All {
		return tt
	}
	return tt.Filter(func(tripData *TripData) bool {
		return tripData.Month == month
	})
}

// FilterByDay keeps the trips that started on day. "all" returns the table unchanged
func (tt *TripTable) FilterByDay(day string) *TripTable {
	if day == vocabulary.All {
		return tt
	}
	return tt.Filter(func(tripData *TripData) bool {
		return tripData.DayOfWeek == day
	})
}

// Page returns at most size trips starting at offset
func (tt *TripTable) Page(offset int, size int) []*TripData {
	if offset >= len(tt.Trips) {
		return nil
	}
	end := offset + size
	if end > len(tt.Trips) {
		end = len(tt.Trips)
	}
	return tt.Trips[offset:end]
}
