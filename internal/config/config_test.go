package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ledgerfield/internal/common"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		v := viper.New()
		SetDefaults(v)

		s, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "ledgerfield", "ledgerfield.db"), s.DatabasePath)
		assert.Equal(t, "info", s.LogLevel)
		assert.Equal(t, "console", s.LogFormat)
		assert.Equal(t, 0, s.FuzzyMaxDistance)
	})

	t.Run("from file", func(t *testing.T) {
		dir := t.TempDir()
		cfg := filepath.Join(dir, "config.yaml")
		content := []byte("database:\n  path: " + filepath.Join(dir, "db.sqlite") + "\nfuzzy:\n  max_distance: 3\n")
		require.NoError(t, os.WriteFile(cfg, content, 0o600))

		v := viper.New()
		SetDefaults(v)
		v.SetConfigFile(cfg)
		require.NoError(t, v.ReadInConfig())

		s, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "db.sqlite"), s.DatabasePath)
		assert.Equal(t, 3, s.FuzzyMaxDistance)
	})

	t.Run("negative distance", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set(KeyFuzzyMaxDistance, -1)

		_, err := Load(v)
		assert.ErrorIs(t, err, common.ErrInvalidConfig)
	})
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LEDGER_DIR", "/var/lib/ledger")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "db.sqlite"), ExpandPath("~/db.sqlite"))
	assert.Equal(t, "/var/lib/ledger/db.sqlite", ExpandPath("$LEDGER_DIR/db.sqlite"))
}
