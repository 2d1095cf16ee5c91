package config

import (
	"fmt"
	"os"
	"os/user"
	"reflect"

	"github.com/creasty/defaults"
)

//Version is filled at compile time with the git version of psxguard
var Version = "undefined"

//ExactVersion is filled at compile time with the exact git version of psxguard
var ExactVersion = "undefined"

type (
	//Config holds the configuration for the running system
	Config struct {
		R RunningCfg
		S StaticCfg
	}
)

//LoadConfig retrieves a configuration in order of precedence
func LoadConfig(cfgPath string) (*Config, error) {
	if cfgPath != "" {
		return loadSystemConfig(cfgPath)
	}

	// Get the user's homedir
	user, err := user.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not get user info: %s\n", err.Error())
	} else {
		homeConf := user.HomeDir + "/.psxguard/config.yaml"
		if _, err := os.Stat(homeConf); err == nil {
			return loadSystemConfig(homeConf)
		}
	}

	// If none of the other configs have worked, go for the global config
	if _, err := os.Stat("/etc/psxguard/config.yaml"); err == nil {
		return loadSystemConfig("/etc/psxguard/config.yaml")
	}

	// No config file installed, run on the compiled in defaults
	return loadDefaultConfig()
}

// loadDefaultConfig builds a config from the struct defaults alone
func loadDefaultConfig() (*Config, error) {
	var config = new(Config)

	static := new(StaticCfg)
	if err := defaults.Set(static); err != nil {
		return config, err
	}
	static.Version = Version
	static.ExactVersion = ExactVersion
	config.S = *static

	running, err := loadRunningConfig(static)
	if err != nil {
		return config, err
	}
	config.R = *running

	return config, nil
}

// loadSystemConfig attempts to parse a config file
func loadSystemConfig(cfgPath string) (*Config, error) {
	var config = new(Config)

	static, err := loadStaticConfig(cfgPath)
	if err != nil {
		return config, err
	}
	config.S = *static

	running, err := loadRunningConfig(static)
	if err != nil {
		return config, err
	}
	config.R = *running

	return config, nil
}

// expandConfig expands environment variables in config strings
func expandConfig(reflected reflect.Value) {
	for i := 0; i < reflected.NumField(); i++ {
		f := reflected.Field(i)
		// process sub configs
		if f.Kind() == reflect.Struct {
			expandConfig(f)
		} else if f.Kind() == reflect.String {
			f.SetString(os.ExpandEnv(f.String()))
		} else if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String {
			strs := f.Interface().([]string)
			for i, str := range strs {
				strs[i] = os.ExpandEnv(str)
			}
			f.Set(reflect.ValueOf(strs))
		}
	}
}
