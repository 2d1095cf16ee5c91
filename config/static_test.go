package config

import (
	"testing"

	"github.com/creasty/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticConfigDefaults(t *testing.T) {
	config := new(StaticCfg)
	err := defaults.Set(config)
	require.Nil(t, err)

	assert.Equal(t, ",", config.Dataset.DefaultDelimiter)
	assert.Equal(t, "%d-%m-%Y %H:%M:%S", config.Dataset.DefaultDateFormat)
	assert.Equal(t, "psxattrs.csv", config.Dataset.GatewayTable)
	assert.Equal(t, 0.924, config.Detection.AnomalyThreshold)
	assert.Equal(t, "result.csv", config.Output.ResultPath)
	assert.Equal(t, 2, config.Log.LogLevel)
	assert.Equal(t, 14, config.UserConfig.UpdateCheckFrequency)
}

func TestParseStaticConfigOverrides(t *testing.T) {
	cfgYaml := `
Dataset:
    Path: /srv/telecom
    DefaultDelimiter: ";"
Detection:
    AnomalyThreshold: 0.5
Output:
    ResultPath: out.csv
    SQLitePath: out.db
`
	config := new(StaticCfg)
	err := defaults.Set(config)
	require.Nil(t, err)

	err = parseStaticConfig([]byte(cfgYaml), config)
	require.Nil(t, err)

	assert.Equal(t, "/srv/telecom", config.Dataset.Path)
	assert.Equal(t, ";", config.Dataset.DefaultDelimiter)
	assert.Equal(t, 0.5, config.Detection.AnomalyThreshold)
	assert.Equal(t, "out.csv", config.Output.ResultPath)
	assert.Equal(t, "out.db", config.Output.SQLitePath)
	// untouched sections keep their defaults
	assert.Equal(t, "%d-%m-%Y %H:%M:%S", config.Dataset.DefaultDateFormat)
}

func TestLoadTestingConfig(t *testing.T) {
	conf, err := LoadTestingConfig()
	require.Nil(t, err)
	assert.Equal(t, "./telecom1000k", conf.S.Dataset.Path)
	assert.Equal(t, 0.924, conf.S.Detection.AnomalyThreshold)
	assert.Equal(t, "v0.0.0+testing", conf.S.Version)
	assert.Equal(t, uint64(0), conf.R.Version.Major)
}
