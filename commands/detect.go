package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/arenalabs/psxguard/parser"
	"github.com/arenalabs/psxguard/pkg/anomaly"
	"github.com/arenalabs/psxguard/pkg/hourly"
	"github.com/arenalabs/psxguard/pkg/reference"
	"github.com/arenalabs/psxguard/pkg/report"
	"github.com/arenalabs/psxguard/pkg/streak"
	"github.com/arenalabs/psxguard/resources"
	"github.com/arenalabs/psxguard/util"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func init() {
	detectCommand := cli.Command{
		Name:  "detect",
		Usage: "Run the hacked account detection pipeline over a dataset directory",
		Flags: []cli.Flag{
			configFlag,
			datasetFlag,
			thresholdFlag,
			workersFlag,
		},
		Action: runDetect,
	}

	bootstrapCommands(detectCommand)
}

// runDetect drives the full pipeline: import, aggregate, score,
// streak detect, enrich, write
func runDetect(c *cli.Context) error {
	res := resources.InitResources(c.String("config"))
	applyDatasetOverrides(res, c)

	if res.Config.S.Dataset.Path == "" {
		return cli.NewExitError("Specify a dataset directory with -d or in the config file", -1)
	}
	if err := validateDatasetDir(res.Config.S.Dataset.Path); err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	threshold := res.Config.S.Detection.AnomalyThreshold
	if c.Float64("threshold") > 0 {
		threshold = c.Float64("threshold")
	}

	start := time.Now()
	res.Log.WithFields(log.Fields{
		"dataset":   res.Config.S.Dataset.Path,
		"threshold": threshold,
		"run_id":    res.RunID,
	}).Info("Starting detection run")
	fmt.Println("[+] Loading reference tables")

	refs, err := reference.LoadAll(&res.Config.S.Dataset, res.Log)
	if err != nil {
		return cli.NewExitError("Failed to load reference tables: "+err.Error(), -1)
	}

	fmt.Println("[+] Importing session logs")
	records, err := parser.NewFSImporter(res, refs.Gateways).Run()
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	fmt.Println("[+] Aggregating hourly traffic")
	buckets := hourly.Aggregate(records)

	fmt.Println("[+] Scoring upload/download ratios")
	scored := anomaly.Score(buckets, threshold)

	fmt.Println("[+] Detecting anomaly streaks")
	marked := streak.Detect(scored)
	hacked := streak.Hacked(marked)

	fmt.Println("[+] Enriching hacked buckets")
	rows := report.Enrich(hacked, refs, res.Log)

	resultPath := res.Config.S.Output.ResultPath
	if err := report.WriteCSVFile(resultPath, rows); err != nil {
		return cli.NewExitError("Failed to write results: "+err.Error(), -1)
	}

	if sqlitePath := res.Config.S.Output.SQLitePath; sqlitePath != "" {
		if err := flushSQLite(sqlitePath, rows); err != nil {
			return cli.NewExitError("Failed to write results to SQLite: "+err.Error(), -1)
		}
	}

	res.Log.WithFields(log.Fields{
		"records":        len(records),
		"buckets":        len(buckets),
		"hacked_buckets": len(hacked),
		"report_rows":    len(rows),
		"elapsed":        time.Since(start).String(),
		"run_id":         res.RunID,
	}).Info("Finished detection run")

	fmt.Printf("[-] %d records -> %d hourly buckets -> %d hacked -> %d report rows\n",
		len(records), len(buckets), len(hacked), len(rows))
	fmt.Printf("[-] Wrote %s in %s\n", resultPath, util.FormatDuration(time.Since(start)))
	return nil
}

func flushSQLite(path string, rows []report.Row) error {
	store, err := report.OpenSQLiteStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Flush(rows)
}

// validateDatasetDir checks that the configured dataset path names a directory
func validateDatasetDir(datasetPath string) error {
	if !util.Exists(datasetPath) {
		return errors.New("dataset directory " + datasetPath + " does not exist")
	}
	if !util.IsDir(datasetPath) {
		return errors.New("dataset path " + datasetPath + " is not a directory")
	}
	return nil
}

// applyDatasetOverrides copies command line dataset settings over the config
func applyDatasetOverrides(res *resources.Resources, c *cli.Context) {
	if c.String("dataset") != "" {
		res.Config.S.Dataset.Path = c.String("dataset")
	}
	if c.Int("workers") > 0 {
		res.Config.S.Dataset.ImportWorkers = c.Int("workers")
	}
}
