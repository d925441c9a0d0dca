package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const (
	defaultConfigFilepath = "./explorer/config/config.yaml"
	defaultPageSize       = 5
)

var defaultTimeLayouts = []string{"2006-01-02 15:04:05"}

type ExplorerConfig struct {
	DataDir     string   `yaml:"data_dir"`
	PageSize    int      `yaml:"page_size"`
	LogLevel    string   `yaml:"log_level"`
	ShowTimings bool     `yaml:"show_timings"`
	TimeLayouts []string `yaml:"time_layouts"`
}

func defaultConfig() *ExplorerConfig {
	return &ExplorerConfig{
		DataDir:     ".",
		PageSize:    defaultPageSize,
		LogLevel:    "warn",
		ShowTimings: true,
		TimeLayouts: defaultTimeLayouts,
	}
}

// LoadConfig reads the explorer config from BIKESHARE_CONFIG or the default path.
// A missing file leaves the defaults in place. Environment variables override the file:
// BIKESHARE_DATA_DIR, BIKESHARE_PAGE_SIZE and LOG_LEVEL
func LoadConfig() (*ExplorerConfig, error) {
	configFilepath := os.Getenv("BIKESHARE_CONFIG")
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}
	return LoadConfigFrom(configFilepath)
}

func LoadConfigFrom(configFilepath string) (*ExplorerConfig, error) {
	explorerConfig := defaultConfig()

	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err == nil {
		err = yaml.Unmarshal(configFile, explorerConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing explorer config file: %w", err)
		}
	}

	loadEnvVars(explorerConfig)

	if explorerConfig.PageSize <= 0 {
		return nil, fmt.Errorf("invalid page size %v: must be greater than 0", explorerConfig.PageSize)
	}
	if len(explorerConfig.TimeLayouts) == 0 {
		explorerConfig.TimeLayouts = defaultTimeLayouts
	}

	return explorerConfig, nil
}

func loadEnvVars(explorerConfig *ExplorerConfig) {
	if dataDir := os.Getenv("BIKESHARE_DATA_DIR"); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}
	if pageSizeStr := os.Getenv("BIKESHARE_PAGE_SIZE"); pageSizeStr != "" {
		if pageSize, err := strconv.Atoi(pageSizeStr); err == nil {
			explorerConfig.PageSize = pageSize
		}
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}
}
