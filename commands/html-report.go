package commands

import (
	"github.com/arenalabs/psxguard/pkg/report"
	"github.com/arenalabs/psxguard/reporting"
	"github.com/arenalabs/psxguard/resources"

	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "html-report",
		Usage: "Create an html report of the hacked subscribers and open it",
		Flags: []cli.Flag{
			configFlag,
			cli.StringFlag{
				Name:  "file, f",
				Usage: "Read the report from `FILE` instead of the configured result path",
				Value: "",
			},
		},
		Action: htmlReport,
	}

	bootstrapCommands(command)
}

func htmlReport(c *cli.Context) error {
	res := resources.InitResources(c.String("config"))

	resultPath := res.Config.S.Output.ResultPath
	if c.String("file") != "" {
		resultPath = c.String("file")
	}

	rows, err := report.ReadCSVFile(resultPath)
	if err != nil {
		return cli.NewExitError("Failed to read "+resultPath+": "+err.Error(), -1)
	}

	err = reporting.PrintHTML(res.Config.S.Dataset.Path, rows)
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}
	return nil
}
