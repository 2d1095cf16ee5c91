package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"reflect"

	"github.com/creasty/defaults"
	yaml "gopkg.in/yaml.v2"
)

type (
	//StaticCfg is the container for other static config sections
	StaticCfg struct {
		Log          LogStaticCfg       `yaml:"LogConfig"`
		Dataset      DatasetStaticCfg   `yaml:"Dataset"`
		Detection    DetectionStaticCfg `yaml:"Detection"`
		Output       OutputStaticCfg    `yaml:"Output"`
		UserConfig   UserCfg            `yaml:"UserConfig"`
		Version      string
		ExactVersion string
	}

	//LogStaticCfg contains the configuration for logging
	LogStaticCfg struct {
		LogLevel  int    `yaml:"LogLevel" default:"2"`
		LogPath   string `yaml:"LogPath" default:"$HOME/.psxguard/logs"`
		LogToFile bool   `yaml:"LogToFile" default:"false"`
	}

	//DatasetStaticCfg describes the dataset directory and the parsing
	//defaults used for gateways missing from the attribute table
	DatasetStaticCfg struct {
		Path              string `yaml:"Path"`
		DefaultDelimiter  string `yaml:"DefaultDelimiter" default:","`
		DefaultDateFormat string `yaml:"DefaultDateFormat" default:"%d-%m-%Y %H:%M:%S"`
		GatewayTable      string `yaml:"GatewayTable" default:"psxattrs.csv"`
		SubscriberTable   string `yaml:"SubscriberTable" default:"subscribers.csv"`
		ClientTable       string `yaml:"ClientTable" default:"client.csv"`
		PlanTable         string `yaml:"PlanTable" default:"plan.json"`
		PhysicalTable     string `yaml:"PhysicalTable" default:"physical.csv"`
		CompanyTable      string `yaml:"CompanyTable" default:"company.csv"`
		ImportWorkers     int    `yaml:"ImportWorkers" default:"0"`
	}

	//DetectionStaticCfg is used to control the ratio anomaly scoring
	DetectionStaticCfg struct {
		AnomalyThreshold float64 `yaml:"AnomalyThreshold" default:"0.924"`
	}

	//OutputStaticCfg controls where detection results are written
	OutputStaticCfg struct {
		ResultPath string `yaml:"ResultPath" default:"result.csv"`
		SQLitePath string `yaml:"SQLitePath"`
	}

	//UserCfg holds user set preferences
	UserCfg struct {
		UpdateCheckFrequency int `yaml:"UpdateCheckFrequency" default:"14"`
	}
)

// readStaticConfigFile attempts to read the contents of the given cfgPath
func readStaticConfigFile(cfgPath string) ([]byte, error) {
	_, err := os.Stat(cfgPath)
	if os.IsNotExist(err) {
		return nil, err
	}

	contents, err := ioutil.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// parseStaticConfig loads the yaml from cfgFile into the provided config struct.
// It also fixes up misc. issues with the config and grabs the compiled in version info.
func parseStaticConfig(cfgFile []byte, config *StaticCfg) error {
	err := yaml.Unmarshal(cfgFile, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config: %s\n", err.Error())
		return err
	}

	// expand env variables, config is a pointer
	// so we have to call elem on the reflect value
	expandConfig(reflect.ValueOf(config).Elem())

	// grab the version constants set by the build process
	config.Version = Version
	config.ExactVersion = ExactVersion

	return nil
}

// loadStaticConfig loads the static config from the given path,
// initializing defaulted fields beforehand
func loadStaticConfig(cfgPath string) (*StaticCfg, error) {
	config := new(StaticCfg)

	if err := defaults.Set(config); err != nil {
		return config, err
	}

	cfgFile, err := readStaticConfigFile(cfgPath)
	if err != nil {
		return config, err
	}

	if err := parseStaticConfig(cfgFile, config); err != nil {
		return config, err
	}

	return config, nil
}
