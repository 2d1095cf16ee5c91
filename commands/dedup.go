package commands

import (
	"fmt"

	"github.com/arenalabs/psxguard/pkg/report"
	"github.com/arenalabs/psxguard/resources"

	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "dedup",
		Usage: "Drop duplicate report rows, keeping the first row per subscriber id",
		Flags: []cli.Flag{
			configFlag,
			cli.StringFlag{
				Name:  "in, i",
				Usage: "Read the report from `FILE` instead of the configured result path",
				Value: "",
			},
			cli.StringFlag{
				Name:  "out, o",
				Usage: "Write the deduplicated report to `FILE`",
				Value: "result_deduped.csv",
			},
		},
		Action: dedupResults,
	}

	bootstrapCommands(command)
}

func dedupResults(c *cli.Context) error {
	res := resources.InitResources(c.String("config"))

	inPath := res.Config.S.Output.ResultPath
	if c.String("in") != "" {
		inPath = c.String("in")
	}

	rows, err := report.ReadCSVFile(inPath)
	if err != nil {
		return cli.NewExitError("Failed to read "+inPath+": "+err.Error(), -1)
	}

	deduped := report.Dedup(rows)

	outPath := c.String("out")
	if err := report.WriteCSVFile(outPath, deduped); err != nil {
		return cli.NewExitError("Failed to write "+outPath+": "+err.Error(), -1)
	}

	fmt.Printf("[-] %d rows in, %d rows out, removed %d duplicates\n",
		len(rows), len(deduped), len(rows)-len(deduped))
	fmt.Println("[-] Wrote " + outPath)
	return nil
}
