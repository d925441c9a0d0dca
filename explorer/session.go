package main

import (
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/browser"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/loader"
	"bikeshare/prompt"
	"bikeshare/reporters"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no.\n"

// Session drives the explore cycle: collect filters, load, report, browse, offer a restart
type Session struct {
	prompter  *prompt.Prompter
	loader    *loader.Loader
	reporters []reporters.IReporter
	browser   *browser.Browser
}

func NewSession(prompter *prompt.Prompter, tripLoader *loader.Loader, showTimings bool, pageSize int) *Session {
	return &Session{
		prompter:  prompter,
		loader:    tripLoader,
		reporters: reporters.NewReporters(prompter.Writer(), showTimings),
		browser:   browser.NewBrowser(prompter, pageSize),
	}
}

// Run repeats the explore cycle until the user declines to restart or the input is closed.
// Load errors end the run
func (s *Session) Run() error {
	for {
		restart, err := s.runOnce(uuid.New().String())
		if errors.Is(err, dataErrors.ErrInputClosed) {
			log.Info("[session][status: OK] input closed, exiting")
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

func (s *Session) runOnce(sessionID string) (bool, error) {
	logger := log.WithField("session", sessionID)

	filters, err := s.prompter.CollectFilters()
	if err != nil {
		return false, err
	}
	logger.Debugf("[session][city: %s][month: %s][day: %s] filters collected", filters.City, filters.Month, filters.Day)

	table, err := s.loader.LoadData(filters.City, filters.Month, filters.Day)
	if err != nil {
		logger.Errorf("[session][city: %s][status: error] error loading data: %s", filters.City, err.Error())
		return false, err
	}

	for _, reporter := range s.reporters {
		reporter.Report(table)
	}

	if err := s.browser.DisplayData(table); err != nil {
		return false, err
	}

	restart, err := s.prompter.AskYesNo(restartQuestion)
	if err != nil {
		return false, err
	}
	logger.Debugf("[session][status: OK] restart requested: %v", restart)
	return restart, nil
}
