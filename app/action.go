package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chronos/internal/config"
	"github.com/ayoisaiah/chronos/internal/models"
	"github.com/ayoisaiah/chronos/internal/timeutil"
	"github.com/ayoisaiah/chronos/internal/ui"
	"github.com/ayoisaiah/chronos/stats"
	"github.com/ayoisaiah/chronos/store"
	"github.com/ayoisaiah/chronos/timer"
)

// storeHelper opens the database and rehydrates the session store.
// Callers own the returned client and must close it.
func storeHelper() (*store.SessionStore, *store.Client, *config.Config, error) {
	cfg, err := config.New(config.WithViperConfig(config.ConfigFilePath()))
	if err != nil {
		return nil, nil, nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	client, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, nil, err
	}

	sessionStore, err := store.NewSessionStore(client)
	if err != nil {
		client.Close()
		return nil, nil, nil, err
	}

	return sessionStore, client, cfg, nil
}

// parseDateArg resolves a --date value to the YYYY-MM-DD format. Exact
// dates are taken as-is; anything else goes through the natural language
// parser, so phrases like "yesterday" work too.
func parseDateArg(value string) (string, error) {
	if value == "" {
		return timeutil.Today(), nil
	}

	if _, err := timeutil.ParseDate(value); err == nil {
		return value, nil
	}

	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: time.Now(),
	}, value)
	if err != nil {
		return "", fmt.Errorf("unable to parse date: %q", value)
	}

	return dt.Time.Format(models.DateFormat), nil
}

func yearArg(ctx *cli.Context, cfg *config.Config) int {
	if ctx.Int("year") != 0 {
		return ctx.Int("year")
	}

	return cfg.Calendar.Year
}

// startAction starts a new study session and, unless detached, attaches
// the live timer view to it.
func startAction(ctx *cli.Context) error {
	sessionStore, client, cfg, err := storeHelper()
	if err != nil {
		return err
	}
	defer client.Close()

	date, err := parseDateArg(ctx.String("date"))
	if err != nil {
		return err
	}

	subject := ctx.String("subject")
	if subject == "" {
		subject = cfg.Session.Subject
	}

	if err := sessionStore.Start(date, subject); err != nil {
		return err
	}

	if ctx.Bool("detach") {
		pterm.Success.Printfln("Session started for %s", date)
		return nil
	}

	return runTimer(sessionStore, cfg)
}

// stopAction stops the active session and reports its final duration.
func stopAction(_ *cli.Context) error {
	sessionStore, client, cfg, err := storeHelper()
	if err != nil {
		return err
	}
	defer client.Close()

	sess, err := sessionStore.Stop()
	if err != nil {
		return err
	}

	timer.SessionCompleted(cfg, sess)

	pterm.Success.Printfln(
		"Session completed: %s (%s) — %s",
		sess.Date,
		sess.Subject,
		timeutil.FormatDurationShort(sess.Duration),
	)

	return nil
}

// statusAction prints the state of the active session, if any.
func statusAction(ctx *cli.Context) error {
	sessionStore, client, _, err := storeHelper()
	if err != nil {
		return err
	}
	defer client.Close()

	sess, ok := sessionStore.ActiveSession()

	if ctx.Bool("json") {
		if !ok {
			pterm.Println("null")
			return nil
		}

		b, err := json.Marshal(sess)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if !ok {
		pterm.Info.Println("No active study session")
		return nil
	}

	pterm.Printfln(
		"%s • %s — %s",
		sess.Date,
		sess.Subject,
		timeutil.FormatDuration(sess.Elapsed(time.Now())),
	)

	return nil
}

// watchAction attaches the live timer view to a running session.
func watchAction(_ *cli.Context) error {
	sessionStore, client, cfg, err := storeHelper()
	if err != nil {
		return err
	}
	defer client.Close()

	return runTimer(sessionStore, cfg)
}

func runTimer(sessionStore *store.SessionStore, cfg *config.Config) error {
	t, err := timer.New(sessionStore, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(t)

	if _, err := p.Run(); err != nil {
		return err
	}

	return t.Err()
}

// listAction prints completed sessions, optionally limited to one date.
func listAction(ctx *cli.Context) error {
	sessionStore, client, cfg, err := storeHelper()
	if err != nil {
		return err
	}
	defer client.Close()

	sessions := sessionStore.Sessions()

	if ctx.String("date") != "" {
		date, err := parseDateArg(ctx.String("date"))
		if err != nil {
			return err
		}

		filtered := sessions[:0:0]

		for _, sess := range sessions {
			if sess.Date == date {
				filtered = append(filtered, sess)
			}
		}

		sessions = filtered
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(sessions) == 0 {
		pterm.Info.Println("No completed sessions found")
		return nil
	}

	stats.SessionsTable(
		os.Stdout,
		sessions,
		ctx.Bool("reverse"),
		cfg.Display.TwentyFourHour,
	)

	return nil
}

// deleteAction deletes the sessions with the given ids after
// confirmation.
func deleteAction(ctx *cli.Context) error {
	ids := ctx.Args().Slice()
	if len(ids) == 0 {
		return fmt.Errorf("provide at least one session id")
	}

	sessionStore, client, _, err := storeHelper()
	if err != nil {
		return err
	}
	defer client.Close()

	var confirmed bool

	err = huh.NewConfirm().
		Title(fmt.Sprintf("Delete %d session(s) permanently?", len(ids))).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	for _, id := range ids {
		if err := sessionStore.Delete(id); err != nil {
			return err
		}
	}

	pterm.Success.Println("Sessions deleted")

	return nil
}

// calendarAction renders the yearly calendar with the year's total.
func calendarAction(ctx *cli.Context) error {
	sessionStore, client, cfg, err := storeHelper()
	if err != nil {
		return err
	}
	defer client.Close()

	sessions := sessionStore.Sessions()

	var active *models.StudySession
	if sess, ok := sessionStore.ActiveSession(); ok {
		active = &sess
	}

	stats.Calendar(os.Stdout, sessions, active, yearArg(ctx, cfg))
	stats.YearSummary(os.Stdout, sessions, active, time.Now())

	return nil
}

// evolutionAction charts the bucket series for the year.
func evolutionAction(ctx *cli.Context) error {
	sessionStore, client, cfg, err := storeHelper()
	if err != nil {
		return err
	}
	defer client.Close()

	timeframe := stats.Timeframe(ctx.String("timeframe"))

	valid := false

	for _, tf := range stats.Timeframes {
		if tf == timeframe {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf(
			"invalid timeframe %q: want days, weeks, or months",
			ctx.String("timeframe"),
		)
	}

	sessions := sessionStore.Sessions()
	year := yearArg(ctx, cfg)

	if ctx.Bool("json") {
		b, err := json.Marshal(stats.BucketSeries(sessions, year, timeframe))
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return stats.Evolution(os.Stdout, sessions, year, timeframe)
}
