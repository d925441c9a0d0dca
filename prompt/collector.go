package prompt

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/vocabulary"
)

const (
	welcomeMessage = "Welcome to the Bikeshare Data Explorer! Let's dive into the data and uncover some interesting insights!"
	cityQuestion   = "Which city would you like to explore: Chicago, New York City, or Washington?\n"
	monthQuestion  = "Which month would you like to filter by: January, February, March, April, May, June, or \"all\" to apply no month filter?\n"
	dayQuestion    = "Which day would you like to filter by: Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday, or \"all\" to apply no day filter?\n"
	invalidCity    = "Invalid input. Please enter a valid city name."
	invalidMonth   = "Invalid input. Please enter a valid month or \"all\"."
	invalidDay     = "Invalid input. Please enter a valid day or \"all\"."
)

// Separator is printed after the filters and after each report
var Separator = strings.Repeat("-", 40)

// Filters the validated, lowercase selectors of one session
type Filters struct {
	City  string
	Month string
	Day   string
}

// CollectFilters asks for city, month and day, re-prompting on every invalid answer
func (p *Prompter) CollectFilters() (Filters, error) {
	fmt.Fprintln(p.writer, welcomeMessage)

	city, err := p.AskChoice(cityQuestion, invalidCity, vocabulary.Cities())
	if err != nil {
		return Filters{}, err
	}

	month, err := p.AskChoice(monthQuestion, invalidMonth, vocabulary.MonthSelectors())
	if err != nil {
		return Filters{}, err
	}

	day, err := p.AskChoice(dayQuestion, invalidDay, vocabulary.DaySelectors())
	if err != nil {
		return Filters{}, err
	}

	fmt.Fprintln(p.writer, Separator)
	log.Debugf("[collector][status: OK] filters selected: city=%s month=%s day=%s", city, month, day)

	return Filters{City: city, Month: month, Day: day}, nil
}
