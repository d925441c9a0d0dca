package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/prompt"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err.Error())
	}

	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[explorer][status: error] error loading config: %s", err)
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}
	log.Debugf("[explorer] data dir: %s, page size: %v", explorerConfig.DataDir, explorerConfig.PageSize)

	prompter := prompt.NewPrompter(os.Stdin, os.Stdout)
	tripLoader := loader.NewLoader(explorerConfig.DataDir, explorerConfig.TimeLayouts)
	session := NewSession(prompter, tripLoader, explorerConfig.ShowTimings, explorerConfig.PageSize)

	if err := session.Run(); err != nil {
		log.Fatalf("[explorer][status: error] %s", err)
	}
}
