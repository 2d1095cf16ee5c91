package commands

import (
	"fmt"

	"github.com/arenalabs/psxguard/config"

	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "version",
		Usage: "Show psxguard version",
		Flags: []cli.Flag{
			configFlag,
		},
		Action: showVersion,
	}

	bootstrapCommands(command)
}

func showVersion(c *cli.Context) error {
	fmt.Println(config.ExactVersion)
	fmt.Printf(updateCheck(c.String("config")))
	return nil
}
