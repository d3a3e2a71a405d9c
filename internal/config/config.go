// Package config loads the chronos configuration and resolves the paths
// used for the database, config file, and log file.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"gopkg.in/natefinch/lumberjack.v2"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Session      SessionConfig
		Calendar     CalendarConfig
		Display      DisplayConfig
		Notification NotificationConfig
	}

	// SessionConfig holds session-related settings.
	SessionConfig struct {
		// Subject is the label applied to sessions started without one.
		Subject string
		// Cmd is an arbitrary command executed after a session is stopped.
		Cmd string
	}

	// CalendarConfig holds settings for the calendar and evolution views.
	CalendarConfig struct {
		// Year is the year the calendar and evolution views cover.
		Year int
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool
	}
)

const Version = "v0.1.0"

var (
	configDir      = "chronos"
	configFileName = "config.yml"
	dbFileName     = "chronos.db"
	logFileName    = "chronos.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the xdg paths for the config file, database,
// and log file. CHRONOS_ENV suffixes the file names so that development
// builds stay away from real data.
func InitializePaths() {
	chronosEnv := strings.TrimSpace(os.Getenv("CHRONOS_ENV"))
	if chronosEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", chronosEnv)
		dbFileName = fmt.Sprintf("chronos_%s.db", chronosEnv)
		logFileName = fmt.Sprintf("chronos_%s.log", chronosEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// InitializeLogger points the default slog logger at a size-rotated log
// file. Persistence failures are reported there rather than crashing the
// program.
func InitializeLogger() {
	w := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(handler))
}

// New creates a Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Session: SessionConfig{},
		Calendar: CalendarConfig{
			Year: time.Now().Year(),
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	return cfg, nil
}

// Option is a function that modifies Config.
type Option func(*Config) error
