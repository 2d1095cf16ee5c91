package config

import (
	"github.com/blang/semver"
)

type (
	//RunningCfg holds configuration options that are parsed at run time
	RunningCfg struct {
		Version semver.Version
	}
)

// loadRunningConfig deserializes data in the static config
func loadRunningConfig(config *StaticCfg) (*RunningCfg, error) {
	var outConfig = new(RunningCfg)
	var err error

	outConfig.Version, err = semver.ParseTolerant(config.Version)
	if err != nil {
		// accept builds that were not stamped with a version
		outConfig.Version = semver.Version{}
		err = nil
	}
	return outConfig, err
}
