package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/domain/vocabulary"
)

const (
	defaultTimeLayout = "2006-01-02 15:04:05"

	startTimeColumn    = "Start Time"
	endTimeColumn      = "End Time"
	durationColumn     = "Trip Duration"
	startStationColumn = "Start Station"
	endStationColumn   = "End Station"
	userTypeColumn     = "User Type"
	genderColumn       = "Gender"
	birthYearColumn    = "Birth Year"
)

var requiredColumns = []string{startTimeColumn, durationColumn, startStationColumn, endStationColumn, userTypeColumn}

// Loader reads the trip file of a city and applies the month and day filters
// + dataDir: directory holding the city files
// + timeLayouts: accepted layouts for the Start Time and End Time columns, tried in order
type Loader struct {
	dataDir     string
	timeLayouts []string
}

func NewLoader(dataDir string, timeLayouts []string) *Loader {
	if len(timeLayouts) == 0 {
		timeLayouts = []string{defaultTimeLayout}
	}
	return &Loader{
		dataDir:     dataDir,
		timeLayouts: timeLayouts,
	}
}

// LoadData loads the trips of city and keeps the ones that match month and day.
// Any problem with the source file is returned as an error, there is no partial result
func (l *Loader) LoadData(city string, month string, day string) (*trip.TripTable, error) {
	table, err := l.LoadCity(city)
	if err != nil {
		return nil, err
	}

	filtered := table.FilterByMonth(month).FilterByDay(day)
	log.Infof("[loader][city: %s][month: %s][day: %s][status: OK] %v of %v trips match the filters", city, month, day, filtered.Len(), table.Len())
	return filtered, nil
}

// LoadCity loads every trip of city without filtering
func (l *Loader) LoadCity(city string) (*trip.TripTable, error) {
	filename, ok := vocabulary.CityFile(city)
	if !ok {
		return nil, fmt.Errorf("%s: %w", city, dataErrors.ErrUnknownCity)
	}

	filePath := filepath.Join(l.dataDir, filename)
	dataFile, err := os.Open(filePath)
	if err != nil {
		log.Errorf("[loader][city: %s][status: error] error opening %s: %s", city, filePath, err.Error())
		return nil, err
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("[loader][city: %s] error closing %s: %s", city, filePath, err.Error())
		}
	}(dataFile)

	startLoading := time.Now()
	table, err := l.ParseTrips(dataFile, entities.NewMetadata(city, filePath))
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", filePath, err)
	}

	log.Debugf("[loader][city: %s][status: OK] loaded %v trips from %s in %s", city, table.Len(), filePath, time.Since(startLoading))
	return table, nil
}

// ParseTrips reads CSV data with a header line into a TripTable.
// Gender and Birth Year columns are optional; their presence is recorded in the metadata
func (l *Loader) ParseTrips(reader io.Reader, metadata entities.Metadata) (*trip.TripTable, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: %w", dataErrors.ErrInvalidTripData)
		}
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	for _, column := range requiredColumns {
		if _, ok := columns[column]; !ok {
			return nil, fmt.Errorf("%s: %w", column, dataErrors.ErrMissingColumn)
		}
	}

	_, metadata.HasEndTime = columns[endTimeColumn]
	_, metadata.HasGender = columns[genderColumn]
	_, metadata.HasBirthYear = columns[birthYearColumn]

	var trips []*trip.TripData
	line := 1
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line += 1
		if err != nil {
			return nil, fmt.Errorf("line %v: %s: %w", line, err.Error(), dataErrors.ErrInvalidTripData)
		}

		tripData, err := l.getTripData(record, columns, metadata)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		trips = append(trips, tripData)
	}

	return trip.NewTripTable(metadata, trips), nil
}

func (l *Loader) getTripData(record []string, columns map[string]int, metadata entities.Metadata) (*trip.TripData, error) {
	field := func(column string) string {
		return strings.TrimSpace(record[columns[column]])
	}

	startTime, err := l.parseTime(field(startTimeColumn))
	if err != nil {
		log.Debugf("Invalid start time: %v", field(startTimeColumn))
		return nil, fmt.Errorf("%s: %w", dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
	}

	duration, err := strconv.ParseFloat(field(durationColumn), 64)
	if err != nil {
		log.Debugf("Invalid duration type: %v", field(durationColumn))
		return nil, fmt.Errorf("%s: %w", dataErrors.ErrInvalidDurationType, dataErrors.ErrInvalidTripData)
	}

	tripData := trip.NewTripData(startTime, duration, field(startStationColumn), field(endStationColumn), field(userTypeColumn))

	if metadata.HasEndTime && field(endTimeColumn) != "" {
		endTime, err := l.parseTime(field(endTimeColumn))
		if err != nil {
			log.Debugf("Invalid end time: %v", field(endTimeColumn))
			return nil, fmt.Errorf("%s: %w", dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
		}
		tripData.EndTime = endTime
	}

	if metadata.HasGender {
		tripData.Gender = field(genderColumn)
	}

	if metadata.HasBirthYear && field(birthYearColumn) != "" {
		birthYear, err := strconv.ParseFloat(field(birthYearColumn), 64)
		if err != nil || birthYear != math.Trunc(birthYear) {
			log.Debugf("Invalid birth year type: %v", field(birthYearColumn))
			return nil, fmt.Errorf("%s: %w", dataErrors.ErrInvalidBirthYearType, dataErrors.ErrInvalidTripData)
		}
		tripData.SetBirthYear(int(birthYear))
	}

	return tripData, nil
}

func (l *Loader) parseTime(value string) (time.Time, error) {
	var err error
	for _, layout := range l.timeLayouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}
