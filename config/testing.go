package config

import (
	"github.com/creasty/defaults"
)

const testConfig = `
LogConfig:
    LogLevel: 3
    LogPath: null
    LogToFile: false
Dataset:
    Path: ./telecom1000k
    DefaultDelimiter: ","
    DefaultDateFormat: "%d-%m-%Y %H:%M:%S"
Detection:
    AnomalyThreshold: 0.924
Output:
    ResultPath: result.csv
UserConfig:
    UpdateCheckFrequency: 14
`

//LoadTestingConfig loads the hard coded testing config
func LoadTestingConfig() (*Config, error) {
	config := &Config{}

	// Initialize static config to the default values
	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	// Deserialize the yaml file contents into the static config
	if err := parseStaticConfig([]byte(testConfig), &config.S); err != nil {
		return nil, err
	}

	config.S.Version = "v0.0.0+testing"
	config.S.ExactVersion = "v0.0.0+testing"

	// Use the static config to initialize the running config
	running, err := loadRunningConfig(&config.S)
	if err != nil {
		return nil, err
	}
	config.R = *running

	return config, nil
}
