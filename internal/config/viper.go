package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keySubject              = "session.subject"
	keySessionCmd           = "session.cmd"
	keyCalendarYear         = "calendar.year"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
)

// WithViperConfig returns an Option that loads configuration from Viper,
// writing the default config file when none exists yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			loadViperConfig(v, c)
			return nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		loadViperConfig(v, c)

		return nil
	}
}

// setupViper configures Viper defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keySubject, "Estudo Geral")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyCalendarYear, time.Now().Year())
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) {
	c.Session.Subject = v.GetString(keySubject)
	c.Session.Cmd = v.GetString(keySessionCmd)
	c.Calendar.Year = v.GetInt(keyCalendarYear)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Notification.Enabled = v.GetBool(keyNotificationsEnabled)
}
