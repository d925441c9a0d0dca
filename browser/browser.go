package browser

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/trip"
	"bikeshare/prompt"
	"bikeshare/reporters"
)

const (
	EndOfDataMessage      = "You have reached the end of the available data for this section."
	birthYearNotAvailable = "Birth Year data is not available for this city."
	timestampLayout       = "2006-01-02 15:04:05"
)

// section one yes/no pagination flow over a subset of trips
// + question: asked once before the first page
// + nextQuestion: asked after every page that is not the last one
// + heading: printed before every page when not empty
type section struct {
	question     string
	nextQuestion string
	heading      string
}

var (
	timeSection = section{
		question:     "Do you want to see the data for the most frequent times of travel? (yes/no): ",
		nextQuestion: "Do you want to see the next %d rows of data for the most frequent times of travel? (yes/no): ",
	}
	stationSection = section{
		question:     "Do you want to see the data for the most popular stations and trip? (yes/no): ",
		nextQuestion: "Do you want to see the next %d rows of data for the most popular stations and trip? (yes/no): ",
	}
	earliestYearSection = section{
		question:     "Do you want to see the data for the earliest year(s) of birth? (yes/no): ",
		nextQuestion: "Do you want to see the next %d rows of data for the earliest year(s)? (yes/no): ",
		heading:      "Earliest Year(s) of Birth Data:",
	}
	mostRecentYearSection = section{
		question:     "Do you want to see the data for the most recent year(s) of birth? (yes/no): ",
		nextQuestion: "Do you want to see the next %d rows of data for the most recent year(s)? (yes/no): ",
		heading:      "Most Recent Year(s) of Birth Data:",
	}
	mostCommonYearSection = section{
		question:     "Do you want to see the data for the most common year(s) of birth? (yes/no): ",
		nextQuestion: "Do you want to see the next %d rows of data for the most common year(s)? (yes/no): ",
		heading:      "Most Common Year(s) of Birth Data:",
	}
)

// Browser pages through raw trips on demand
type Browser struct {
	prompter *prompt.Prompter
	writer   io.Writer
	pageSize int
}

// NewBrowser prints to the same writer the prompter asks its questions on
func NewBrowser(prompter *prompt.Prompter, pageSize int) *Browser {
	return &Browser{
		prompter: prompter,
		writer:   prompter.Writer(),
		pageSize: pageSize,
	}
}

// DisplayData runs the time, station and birth year browsing flows in that order
func (b *Browser) DisplayData(table *trip.TripTable) error {
	if reporters.CheckEmpty(b.writer, table) {
		return nil
	}

	if err := b.browse(timeSection, TimeModeSubset(table)); err != nil {
		return err
	}

	if err := b.browse(stationSection, StationModeSubset(table)); err != nil {
		return err
	}

	subsets, ok := ComputeBirthYearSubsets(table)
	if !ok {
		fmt.Fprintln(b.writer, birthYearNotAvailable)
		return nil
	}

	if err := b.browse(earliestYearSection, subsets.Earliest); err != nil {
		return err
	}
	if err := b.browse(mostRecentYearSection, subsets.MostRecent); err != nil {
		return err
	}
	return b.browse(mostCommonYearSection, subsets.MostCommon)
}

// browse asks once whether to show subset and then shows it one page at a time until
// the user declines or the subset runs out
func (b *Browser) browse(s section, subset *trip.TripTable) error {
	accepted, err := b.prompter.AskYesNo(s.question)
	if err != nil || !accepted {
		return err
	}

	pagesShown := 0
	for offset := 0; ; offset += b.pageSize {
		if offset >= subset.Len() {
			fmt.Fprintln(b.writer, EndOfDataMessage)
			break
		}

		if s.heading != "" {
			fmt.Fprintf(b.writer, "\n%s\n", s.heading)
		}
		b.printTrips(subset, subset.Page(offset, b.pageSize))
		pagesShown += 1

		if offset+b.pageSize >= subset.Len() {
			continue
		}
		next, err := b.prompter.AskYesNo(fmt.Sprintf(s.nextQuestion, b.pageSize))
		if err != nil {
			return err
		}
		if !next {
			break
		}
	}

	log.Debugf("[browser][city: %s][status: OK] %v pages shown of %v trips", subset.Metadata.City, pagesShown, subset.Len())
	return nil
}

func (b *Browser) printTrips(table *trip.TripTable, trips []*trip.TripData) {
	metadata := table.Metadata
	tw := tabwriter.NewWriter(b.writer, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "Start Time")
	if metadata.HasEndTime {
		fmt.Fprint(tw, "\tEnd Time")
	}
	fmt.Fprint(tw, "\tTrip Duration\tStart Station\tEnd Station\tUser Type")
	if metadata.HasGender {
		fmt.Fprint(tw, "\tGender")
	}
	if metadata.HasBirthYear {
		fmt.Fprint(tw, "\tBirth Year")
	}
	fmt.Fprintln(tw, "\tmonth\tday_of_week\tstart_hour")

	for _, tripData := range trips {
		fmt.Fprint(tw, tripData.StartTime.Format(timestampLayout))
		if metadata.HasEndTime {
			endTime := ""
			if !tripData.EndTime.IsZero() {
				endTime = tripData.EndTime.Format(timestampLayout)
			}
			fmt.Fprintf(tw, "\t%s", endTime)
		}
		fmt.Fprintf(tw, "\t%s\t%s\t%s\t%s", strconv.FormatFloat(tripData.Duration, 'f', -1, 64), tripData.StartStation, tripData.EndStation, tripData.UserType)
		if metadata.HasGender {
			fmt.Fprintf(tw, "\t%s", tripData.Gender)
		}
		if metadata.HasBirthYear {
			birthYear := ""
			if tripData.HasBirthYear {
				birthYear = strconv.Itoa(tripData.BirthYear)
			}
			fmt.Fprintf(tw, "\t%s", birthYear)
		}
		fmt.Fprintf(tw, "\t%s\t%s\t%d\n", tripData.Month, tripData.DayOfWeek, tripData.StartHour)
	}
	tw.Flush()
}
