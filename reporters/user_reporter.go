package reporters

import (
	"fmt"
	"io"
	"text/tabwriter"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
)

const (
	genderNotAvailable    = "Gender data not available for this city."
	birthYearNotAvailable = "Birth Year data not available for this city."
)

// UserStats rider demographics. Missing values are left out of every count
// + HasGender: the source has a Gender column
// + HasBirthYear: the source has a Birth Year column and at least one trip has a value
type UserStats struct {
	UserTypes      []tripcounter.ValueCount[string]
	HasGender      bool
	Genders        []tripcounter.ValueCount[string]
	HasBirthYear   bool
	EarliestYear   int
	MostRecentYear int
	BirthYearModes []int
}

func ComputeUserStats(table *trip.TripTable) UserStats {
	userTypes := tripcounter.NewOrderedTripCounter[string]()
	genders := tripcounter.NewOrderedTripCounter[string]()
	birthYears := tripcounter.NewOrderedTripCounter[int]()

	stats := UserStats{HasGender: table.Metadata.HasGender}
	for _, tripData := range table.Trips {
		if tripData.UserType != "" {
			userTypes.UpdateCounter(tripData.UserType)
		}
		if tripData.Gender != "" {
			genders.UpdateCounter(tripData.Gender)
		}
		if !tripData.HasBirthYear {
			continue
		}
		if birthYears.IsEmpty() || tripData.BirthYear < stats.EarliestYear {
			stats.EarliestYear = tripData.BirthYear
		}
		if birthYears.IsEmpty() || tripData.BirthYear > stats.MostRecentYear {
			stats.MostRecentYear = tripData.BirthYear
		}
		birthYears.UpdateCounter(tripData.BirthYear)
	}

	stats.UserTypes = userTypes.ValueCounts()
	stats.Genders = genders.ValueCounts()
	stats.HasBirthYear = table.Metadata.HasBirthYear && !birthYears.IsEmpty()
	stats.BirthYearModes = birthYears.Modes()
	return stats
}

type UserReporter struct {
	reporter
}

func (ur *UserReporter) GetType() string {
	return userReporterType
}

// Report displays statistics on bikeshare users
func (ur *UserReporter) Report(table *trip.TripTable) {
	if CheckEmpty(ur.writer, table) {
		return
	}
	start := ur.begin("Calculating User Stats...")

	stats := ComputeUserStats(table)
	fmt.Fprintln(ur.writer, "User Types:")
	writeValueCounts(ur.writer, stats.UserTypes)

	if stats.HasGender {
		fmt.Fprintln(ur.writer, "Gender Counts:")
		writeValueCounts(ur.writer, stats.Genders)
	} else {
		fmt.Fprintln(ur.writer, genderNotAvailable)
	}

	if stats.HasBirthYear {
		fmt.Fprintf(ur.writer, "Earliest Year of Birth: %d\n", stats.EarliestYear)
		fmt.Fprintf(ur.writer, "Most Recent Year of Birth: %d\n", stats.MostRecentYear)
		fmt.Fprintf(ur.writer, "Most Common Year of Birth: %d\n", stats.BirthYearModes[0])
	} else {
		fmt.Fprintln(ur.writer, birthYearNotAvailable)
	}

	ur.finish(ur.GetType(), start)
}

func writeValueCounts(writer io.Writer, valueCounts []tripcounter.ValueCount[string]) {
	tw := tabwriter.NewWriter(writer, 0, 0, 4, ' ', 0)
	for _, valueCount := range valueCounts {
		fmt.Fprintf(tw, "%s\t%d\n", valueCount.Value, valueCount.Count)
	}
	tw.Flush()
}
