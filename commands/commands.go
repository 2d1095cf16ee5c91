package commands

import (
	"runtime"
	"sort"

	"github.com/urfave/cli"
)

var (
	allCommands []cli.Command

	// below are some prebuilt flags that get used often in various commands

	// configFlag allows users to specify an alternate config file to use
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "Use a given `CONFIG_FILE` when running this command",
		Value: "",
	}

	// datasetFlag allows users to point a command at a dataset directory,
	// overriding the configured one
	datasetFlag = cli.StringFlag{
		Name:  "dataset, d",
		Usage: "Read session logs and reference tables from `DIR`",
		Value: "",
	}

	// thresholdFlag allows users to override the configured anomaly threshold
	thresholdFlag = cli.Float64Flag{
		Name:  "threshold, t",
		Usage: "Flag hourly buckets whose upload/download ratio exceeds `RATIO`",
		Value: 0,
	}

	// forHumansFlag prints the results in a human readable table
	forHumansFlag = cli.BoolFlag{
		Name:  "human-readable, H",
		Usage: "print a table for humans",
	}

	// workersFlag bounds the import worker pool
	workersFlag = cli.IntFlag{
		Name:  "workers, w",
		Usage: "Parse session logs with `N` concurrent workers (default: half the CPUs)",
		Value: 0,
	}
)

// bootstrapCommands simply adds a given command to the allCommands array
func bootstrapCommands(commands ...cli.Command) {
	for _, command := range commands {
		command.Before = func(c *cli.Context) error {
			// Get access to the running amount of cores
			runtime.GOMAXPROCS(runtime.NumCPU())
			return nil
		}
		allCommands = append(allCommands, command)
	}
}

// Commands provides all of the defined commands to the front end
func Commands() []cli.Command {
	sort.Sort(byName(allCommands))
	return allCommands
}

type byName []cli.Command

func (b byName) Len() int           { return len(b) }
func (b byName) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b byName) Less(i, j int) bool { return b[i].Name < b[j].Name }
