package parser

import (
	"bytes"
	"io/ioutil"
	"math"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalabs/psxguard/parser/files"
	"github.com/arenalabs/psxguard/pkg/reference"
	"github.com/arenalabs/psxguard/resources"
)

func write(t *testing.T, dir string, name string, contents string) {
	t.Helper()
	err := ioutil.WriteFile(path.Join(dir, name), []byte(contents), 0644)
	require.Nil(t, err)
}

func TestFSImporterRun(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "psx_0001_a.csv",
		"IdSession,IdSubscriber,StartSession,UpTx,DownTx\n"+
			"s-1,sub-1,15-06-2024 13:45:10,100,200\n")
	write(t, dir, "psx_0002_b.txt",
		"IdSession;IdSubscriber;StartSession;UpTx;DownTx\n"+
			"s-2;sub-2;2024-06-15 14:00:00;300;400\n")

	res := resources.InitTestingResources(t)
	res.Config.S.Dataset.Path = dir

	gateways := reference.Gateways{
		"0001": {Id: 1, Delimiter: ",", DateFormat: "%d-%m-%Y %H:%M:%S"},
		"0002": {Id: 2, Delimiter: ";", DateFormat: "%Y-%m-%d %H:%M:%S"},
	}

	records, err := NewFSImporter(res, gateways).Run()
	require.Nil(t, err)
	require.Len(t, records, 2)

	// files contribute in sorted path order
	assert.Equal(t, "s-1", records[0].IdSession)
	assert.True(t, records[0].TurnOnValid)
	assert.Equal(t, int64(1), records[0].IdPSX)
	assert.Equal(t, "s-2", records[1].IdSession)
	assert.True(t, records[1].TurnOnValid)
	assert.Equal(t, 300.0, records[1].UpTx)
}

func TestFSImporterNoData(t *testing.T) {
	dir := t.TempDir()

	res := resources.InitTestingResources(t)
	res.Config.S.Dataset.Path = dir

	_, err := NewFSImporter(res, reference.Gateways{}).Run()
	assert.Equal(t, ErrNoDataAvailable, err)
}

func TestCheckMemoryWarnsOnOversizedDataset(t *testing.T) {
	res := resources.InitTestingResources(t)
	buf := &bytes.Buffer{}
	res.Log.Out = buf

	fs := NewFSImporter(res, reference.Gateways{})

	fs.checkMemory([]*files.IndexedFile{{Path: "a.csv", Size: math.MaxInt64}})
	assert.Contains(t, buf.String(), "Dataset is larger than total system memory")

	buf.Reset()
	fs.checkMemory([]*files.IndexedFile{{Path: "a.csv", Size: 1}})
	assert.NotContains(t, buf.String(), "larger than total system memory")
}

func TestFSImporterSkipsUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "psx_0001_a.csv",
		"IdSession,IdSubscriber,StartSession,UpTx,DownTx\n"+
			"s-1,sub-1,15-06-2024 13:45:10,100,200\n")
	// a bare quote makes the csv reader fail the whole file
	write(t, dir, "psx_0002_bad.csv",
		"IdSession,IdSubscriber\n"+
			"\"s-2,sub-2\n")

	res := resources.InitTestingResources(t)
	res.Config.S.Dataset.Path = dir

	records, err := NewFSImporter(res, reference.Gateways{}).Run()
	require.Nil(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "s-1", records[0].IdSession)
}
