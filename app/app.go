// Package app wires up the chronos command-line application.
package app

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chronos/internal/config"
)

const (
	envNoColor        = "NO_COLOR"
	envChronosNoColor = "CHRONOS_NO_COLOR"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the chronos app instance.
func Get() *cli.App {
	chronosApp := &cli.App{
		Name: "chronos",
		Usage: `
		Chronos tracks timed study sessions anchored to calendar dates and
		visualizes cumulative study time per day, week, and month across a
		year.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start a study session attributed to a calendar date",
				Action: startAction,
				Flags:  []cli.Flag{dateFlag, subjectFlag, detachFlag},
			},
			{
				Name:   "stop",
				Usage:  "Stop the active study session",
				Action: stopAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the active study session",
				Action: statusAction,
				Flags:  []cli.Flag{jsonFlag},
			},
			{
				Name:   "watch",
				Usage:  "Attach the live timer view to the active session",
				Action: watchAction,
			},
			{
				Name:   "list",
				Usage:  "List completed study sessions",
				Action: listAction,
				Flags:  []cli.Flag{dateFlag, reverseFlag, jsonFlag},
			},
			{
				Name:      "delete",
				Usage:     "Delete completed study sessions by id",
				ArgsUsage: "<id>...",
				Action:    deleteAction,
			},
			{
				Name:   "calendar",
				Usage:  "Show the yearly study calendar",
				Action: calendarAction,
				Flags:  []cli.Flag{yearFlag},
			},
			{
				Name:   "evolution",
				Usage:  "Chart cumulative study time per day, week, or month",
				Action: evolutionAction,
				Flags:  []cli.Flag{yearFlag, timeframeFlag, jsonFlag},
			},
		},
		Flags:  []cli.Flag{noColorFlag},
		Action: calendarAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return chronosApp
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()
	config.InitializeLogger()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if CHRONOS_NO_COLOR is set
	if _, exists := os.LookupEnv(envChronosNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting chronos")

	return nil
}
