package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/ledgerfield/internal/common"
)

// Configuration keys.
const (
	KeyDatabasePath     = "database.path"
	KeyLogLevel         = "logging.level"
	KeyLogFormat        = "logging.format"
	KeyFuzzyMaxDistance = "fuzzy.max_distance"
)

// DefaultDatabasePath is used when database.path is not configured.
const DefaultDatabasePath = "$HOME/.local/share/ledgerfield/ledgerfield.db"

// Settings holds the resolved application configuration.
type Settings struct {
	DatabasePath     string
	LogLevel         string
	LogFormat        string
	FuzzyMaxDistance int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyFuzzyMaxDistance, 0)
}

// Load reads the settings from v, expanding paths.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		DatabasePath:     v.GetString(KeyDatabasePath),
		LogLevel:         v.GetString(KeyLogLevel),
		LogFormat:        v.GetString(KeyLogFormat),
		FuzzyMaxDistance: v.GetInt(KeyFuzzyMaxDistance),
	}

	if s.DatabasePath == "" {
		s.DatabasePath = DefaultDatabasePath
	}
	s.DatabasePath = ExpandPath(s.DatabasePath)

	if s.FuzzyMaxDistance < 0 {
		return Settings{}, fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyFuzzyMaxDistance)
	}

	return s, nil
}
