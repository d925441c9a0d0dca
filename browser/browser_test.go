package browser

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/prompt"
	"bikeshare/reporters"
)

const rowStart = "2017-06-05 17:00:00"

func chicagoMetadata() entities.Metadata {
	metadata := entities.NewMetadata("chicago", "chicago.csv")
	metadata.HasGender = true
	metadata.HasBirthYear = true
	return metadata
}

func newTrip(start string, from string, to string, birthYear int) *trip.TripData {
	startTime, err := time.Parse("2006-01-02 15:04:05", start)
	if err != nil {
		panic(err)
	}
	tripData := trip.NewTripData(startTime, 300, from, to, "Subscriber")
	if birthYear != 0 {
		tripData.SetBirthYear(birthYear)
	}
	return tripData
}

// twelveTrips identical times and stations; born 1980 (first), 2000 (last), 1990 (others)
func twelveTrips(metadata entities.Metadata) *trip.TripTable {
	var trips []*trip.TripData
	for i := 0; i < 12; i++ {
		birthYear := 1990
		if i == 0 {
			birthYear = 1980
		}
		if i == 11 {
			birthYear = 2000
		}
		trips = append(trips, newTrip(rowStart, "Canal St", "State St", birthYear))
	}
	return trip.NewTripTable(metadata, trips)
}

func runDisplayData(t *testing.T, input string, table *trip.TripTable) (string, error) {
	t.Helper()
	output := &bytes.Buffer{}
	browser := NewBrowser(prompt.NewPrompter(strings.NewReader(input), output), 5)
	err := browser.DisplayData(table)
	return output.String(), err
}

func TestDisplayDataPagination(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		rows          int
		pages         int
		nextQuestions int
		endNotices    int
	}{
		{name: "all pages", input: "yes\nyes\nyes\nno\nno\nno\nno\n", rows: 12, pages: 3, nextQuestions: 2, endNotices: 1},
		{name: "decline after first page", input: "yes\nno\nno\nno\nno\nno\n", rows: 5, pages: 1, nextQuestions: 1, endNotices: 0},
		{name: "decline after second page", input: "yes\nyes\nno\nno\nno\nno\nno\n", rows: 10, pages: 2, nextQuestions: 2, endNotices: 0},
		{name: "decline everything", input: "no\nno\nno\nno\nno\n", rows: 0, pages: 0, nextQuestions: 0, endNotices: 0},
		{name: "anything but yes declines", input: "y\nsure\nNo\n\nnope\n", rows: 0, pages: 0, nextQuestions: 0, endNotices: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			output, err := runDisplayData(t, tc.input, twelveTrips(chicagoMetadata()))
			require.NoError(t, err)

			assert.Equal(t, tc.rows, strings.Count(output, rowStart))
			assert.Equal(t, tc.pages, strings.Count(output, "Start Time"))
			assert.Equal(t, tc.nextQuestions, strings.Count(output, "Do you want to see the next 5 rows of data for the most frequent times of travel?"))
			assert.Equal(t, tc.endNotices, strings.Count(output, EndOfDataMessage))
		})
	}
}

func TestDisplayDataBirthYearSections(t *testing.T) {
	output, err := runDisplayData(t, "no\nno\nyes\nyes\nyes\nyes\n", twelveTrips(chicagoMetadata()))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(output, "Earliest Year(s) of Birth Data:"))
	assert.Equal(t, 1, strings.Count(output, "Most Recent Year(s) of Birth Data:"))
	assert.Equal(t, 2, strings.Count(output, "Most Common Year(s) of Birth Data:"))
	assert.Equal(t, 12, strings.Count(output, rowStart))
	assert.Equal(t, 3, strings.Count(output, EndOfDataMessage))
	assert.Contains(t, output, "1980")
	assert.Contains(t, output, "2000")
}

func TestDisplayDataWithoutBirthYear(t *testing.T) {
	output, err := runDisplayData(t, "no\nno\n", twelveTrips(entities.NewMetadata("washington", "washington.csv")))
	require.NoError(t, err)

	assert.Contains(t, output, birthYearNotAvailable)
	assert.NotContains(t, output, "earliest year(s) of birth")
}

func TestDisplayDataEmptyTable(t *testing.T) {
	output, err := runDisplayData(t, "", trip.NewTripTable(chicagoMetadata(), nil))
	require.NoError(t, err)

	assert.Equal(t, reporters.NoDataMessage+"\n", output)
}

func TestDisplayDataInputClosed(t *testing.T) {
	_, err := runDisplayData(t, "yes\n", twelveTrips(chicagoMetadata()))
	assert.ErrorIs(t, err, dataErrors.ErrInputClosed)
}

func TestBrowseEmptySubsetPrintsEndNotice(t *testing.T) {
	output := &bytes.Buffer{}
	browser := NewBrowser(prompt.NewPrompter(strings.NewReader("yes\n"), output), 5)

	require.NoError(t, browser.browse(timeSection, trip.NewTripTable(chicagoMetadata(), nil)))
	assert.Contains(t, output.String(), EndOfDataMessage)
	assert.NotContains(t, output.String(), "Start Time")
}

func TestBrowseExactMultipleOfPageSize(t *testing.T) {
	table := twelveTrips(chicagoMetadata())
	table.Trips = table.Trips[:10]
	output := &bytes.Buffer{}
	browser := NewBrowser(prompt.NewPrompter(strings.NewReader("yes\nyes\n"), output), 5)

	require.NoError(t, browser.browse(stationSection, table))
	assert.Equal(t, 10, strings.Count(output.String(), rowStart))
	assert.Equal(t, 1, strings.Count(output.String(), "next 5 rows"))
	assert.Equal(t, 1, strings.Count(output.String(), EndOfDataMessage))
}

func TestTimeModeSubset(t *testing.T) {
	table := trip.NewTripTable(chicagoMetadata(), []*trip.TripData{
		newTrip("2017-06-05 17:00:00", "A", "B", 0), // june monday 17
		newTrip("2017-06-05 17:30:00", "A", "B", 0), // june monday 17
		newTrip("2017-06-06 17:10:00", "A", "B", 0), // june tuesday 17
		newTrip("2017-05-01 08:00:00", "A", "B", 0), // may monday 8
	})

	subset := TimeModeSubset(table)
	assert.Equal(t, 2, subset.Len())
	for _, tripData := range subset.Trips {
		assert.Equal(t, "june", tripData.Month)
		assert.Equal(t, "monday", tripData.DayOfWeek)
		assert.Equal(t, 17, tripData.StartHour)
	}
}

func TestTimeModeSubsetTiesAndEmptyIntersection(t *testing.T) {
	ties := trip.NewTripTable(chicagoMetadata(), []*trip.TripData{
		newTrip("2017-06-05 17:00:00", "A", "B", 0),
		newTrip("2017-04-04 09:00:00", "A", "B", 0),
	})
	assert.Equal(t, 2, TimeModeSubset(ties).Len())

	disjoint := trip.NewTripTable(chicagoMetadata(), []*trip.TripData{
		newTrip("2017-01-02 05:00:00", "A", "B", 0), // january monday 5
		newTrip("2017-01-03 06:00:00", "A", "B", 0), // january tuesday 6
		newTrip("2017-02-06 06:00:00", "A", "B", 0), // february monday 6
	})
	assert.True(t, TimeModeSubset(disjoint).IsEmpty())
}

func TestStationModeSubset(t *testing.T) {
	table := trip.NewTripTable(chicagoMetadata(), []*trip.TripData{
		newTrip(rowStart, "Canal St", "State St", 0),
		newTrip(rowStart, "Canal St", "Clark St", 0),
		newTrip(rowStart, "Clark St", "State St", 0),
		newTrip(rowStart, "Canal St", "State St", 0),
	})

	subset := StationModeSubset(table)
	assert.Equal(t, 2, subset.Len())
	for _, tripData := range subset.Trips {
		assert.Equal(t, trip.StationPair{Start: "Canal St", End: "State St"}, tripData.GetStationPair())
	}
}

func TestComputeBirthYearSubsets(t *testing.T) {
	subsets, ok := ComputeBirthYearSubsets(twelveTrips(chicagoMetadata()))
	require.True(t, ok)

	assert.Equal(t, 1, subsets.Earliest.Len())
	assert.Equal(t, 1980, subsets.Earliest.Trips[0].BirthYear)
	assert.Equal(t, 1, subsets.MostRecent.Len())
	assert.Equal(t, 2000, subsets.MostRecent.Trips[0].BirthYear)
	assert.Equal(t, 10, subsets.MostCommon.Len())

	_, ok = ComputeBirthYearSubsets(twelveTrips(entities.NewMetadata("washington", "washington.csv")))
	assert.False(t, ok)
}
