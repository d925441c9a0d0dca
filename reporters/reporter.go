package reporters

import (
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/trip"
)

const (
	NoDataMessage = "No data available for the selected filters."

	timeReporterType     = "time-stats"
	stationReporterType  = "station-stats"
	durationReporterType = "duration-stats"
	userReporterType     = "user-stats"
)

var separator = strings.Repeat("-", 40)

// IReporter prints one group of statistics about a trip table
type IReporter interface {
	GetType() string
	Report(table *trip.TripTable)
}

// NewReporters returns the four reporters in the order they are run on every session
func NewReporters(writer io.Writer, showTimings bool) []IReporter {
	base := reporter{writer: writer, showTimings: showTimings}
	return []IReporter{
		&TimeReporter{reporter: base},
		&StationReporter{reporter: base},
		&DurationReporter{reporter: base},
		&UserReporter{reporter: base},
	}
}

// CheckEmpty prints the no data notice when table has no trips and reports whether it did
func CheckEmpty(writer io.Writer, table *trip.TripTable) bool {
	if table.IsEmpty() {
		fmt.Fprintln(writer, NoDataMessage)
		return true
	}
	return false
}

type reporter struct {
	writer      io.Writer
	showTimings bool
}

func (r reporter) begin(heading string) time.Time {
	fmt.Fprintf(r.writer, "\n%s\n\n", heading)
	return time.Now()
}

func (r reporter) finish(reporterType string, start time.Time) {
	elapsed := time.Since(start)
	if r.showTimings {
		fmt.Fprintf(r.writer, "\nThis took %v seconds.\n", elapsed.Seconds())
	}
	fmt.Fprintln(r.writer, separator)
	log.Debugf("[reporter: %s][status: OK] report printed in %s", reporterType, elapsed)
}
