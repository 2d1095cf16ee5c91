package commands

import (
	"bytes"
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalabs/psxguard/resources"
)

func TestValidateDatasetDir(t *testing.T) {
	dir := t.TempDir()
	assert.Nil(t, validateDatasetDir(dir))

	assert.NotNil(t, validateDatasetDir(path.Join(dir, "missing")))

	filePath := path.Join(dir, "plain.csv")
	require.Nil(t, ioutil.WriteFile(filePath, []byte("x"), 0644))
	assert.NotNil(t, validateDatasetDir(filePath))
}

func TestLoadGatewaysOrDefaults(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, ioutil.WriteFile(path.Join(dir, "psxattrs.csv"),
		[]byte("PSX,Id,Delimiter,DateFormat\n0001,1,;,%Y-%m-%d %H:%M:%S\n"), 0644))

	res := resources.InitTestingResources(t)
	res.Config.S.Dataset.Path = dir
	buf := &bytes.Buffer{}
	res.Log.Out = buf

	gateways := loadGatewaysOrDefaults(res)
	require.Len(t, gateways, 1)
	assert.Equal(t, int64(1), gateways["0001"].Id)
	assert.NotContains(t, buf.String(), "Could not load gateway attribute table")
}

func TestLoadGatewaysOrDefaultsWarnsOnFallback(t *testing.T) {
	res := resources.InitTestingResources(t)
	res.Config.S.Dataset.Path = t.TempDir() // no psxattrs.csv here
	buf := &bytes.Buffer{}
	res.Log.Out = buf

	gateways := loadGatewaysOrDefaults(res)
	assert.Len(t, gateways, 0)
	assert.Contains(t, buf.String(), "Could not load gateway attribute table")
}
