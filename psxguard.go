package main

import (
	"os"
	"runtime"

	"github.com/arenalabs/psxguard/commands"
	"github.com/arenalabs/psxguard/config"

	"github.com/urfave/cli"
)

// Entry point of psxguard
func main() {
	app := cli.NewApp()
	app.Name = "psxguard"
	app.Usage = "Find hacked subscriber accounts in PSX session logs."

	// Change the version string with updates so that a quick help command will
	// let the testers know what version they're on
	app.Version = config.Version

	cli.VersionPrinter = commands.GetVersionPrinter()

	// Define commands used with this application
	app.Commands = commands.Commands()

	runtime.GOMAXPROCS(runtime.NumCPU())
	app.Run(os.Args)
}
