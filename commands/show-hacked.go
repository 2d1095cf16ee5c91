package commands

import (
	"os"

	"github.com/arenalabs/psxguard/pkg/report"
	"github.com/arenalabs/psxguard/resources"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "show-hacked",
		Usage: "Print the hacked subscriber report to standard out",
		Flags: []cli.Flag{
			configFlag,
			forHumansFlag,
			cli.StringFlag{
				Name:  "file, f",
				Usage: "Read the report from `FILE` instead of the configured result path",
				Value: "",
			},
		},
		Action: showHacked,
	}

	bootstrapCommands(command)
}

func showHacked(c *cli.Context) error {
	res := resources.InitResources(c.String("config"))

	resultPath := res.Config.S.Output.ResultPath
	if c.String("file") != "" {
		resultPath = c.String("file")
	}

	rows, err := report.ReadCSVFile(resultPath)
	if err != nil {
		return cli.NewExitError("Failed to read "+resultPath+": "+err.Error(), -1)
	}
	if len(rows) == 0 {
		return cli.NewExitError("No results were found in "+resultPath, -1)
	}

	if c.Bool("human-readable") {
		showHackedReport(rows)
		return nil
	}

	err = report.WriteCSV(os.Stdout, rows)
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}
	return nil
}

func showHackedReport(rows []report.Row) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Id", "UID", "Type", "Plan", "Enabled", "Turn On", "Traffic"})

	for _, row := range rows {
		enabled := "false"
		if row.Enabled {
			enabled = "true"
		}
		table.Append([]string{
			row.Id, row.UID, row.Type, row.IdPlan, enabled,
			row.TurnOn.UTC().Format(report.TurnOnFormat), f(row.Traffic),
		})
	}
	table.Render()
}
