package app

import (
	"github.com/urfave/cli/v2"
)

var (
	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Attribute the session to a calendar date: YYYY-MM-DD or a phrase like 'today' or 'yesterday' (defaults to today)",
	}

	subjectFlag = &cli.StringFlag{
		Name:    "subject",
		Aliases: []string{"s"},
		Usage:   "Label for the session (defaults to the configured subject)",
	}

	detachFlag = &cli.BoolFlag{
		Name:  "detach",
		Usage: "Start the session without attaching the live timer view",
	}

	yearFlag = &cli.IntFlag{
		Name:    "year",
		Aliases: []string{"y"},
		Usage:   "The year to visualize (defaults to the configured year)",
	}

	timeframeFlag = &cli.StringFlag{
		Name:    "timeframe",
		Aliases: []string{"t"},
		Usage:   "Bucketing granularity for the evolution chart: days, weeks, or months",
		Value:   "days",
	}

	reverseFlag = &cli.BoolFlag{
		Name:    "reverse",
		Aliases: []string{"r"},
		Usage:   "List the most recent sessions first",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
