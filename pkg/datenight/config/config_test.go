package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

// isolate keeps the developer's own config and keyring out of the test.
func isolate(t *testing.T) {
	t.Helper()
	keyring.MockInit()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("datenight", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "session", cfg.Mode)
	assert.Equal(t, 0.0, cfg.Threshold)
	assert.Equal(t, 25, cfg.SessionLength)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "", cfg.Bank.Path)
	assert.Equal(t, "utf-8", cfg.Bank.Encoding)
	assert.Equal(t, 8.0, cfg.Display.CellWidth)
	assert.Equal(t, 16.0, cfg.Display.CellHeight)
	assert.Equal(t, 48, cfg.Display.CardWidth)
	assert.Equal(t, "", cfg.LogFile)
}

func TestLoad_Flags(t *testing.T) {
	isolate(t)

	fs := newFlags(t,
		"--mode", "endless",
		"--threshold", "75",
		"--length", "10",
		"--category", "fun",
		"--seed", "42",
		"--bank", "deck.yaml",
		"--encoding", "ISO-8859-1",
		"--log-file", "datenight.log",
	)
	cfg, err := Load(fs, nil)
	require.NoError(t, err)

	assert.Equal(t, "endless", cfg.Mode)
	assert.Equal(t, 75.0, cfg.Threshold)
	assert.Equal(t, 10, cfg.SessionLength)
	assert.Equal(t, "fun", cfg.Category)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "deck.yaml", cfg.Bank.Path)
	assert.Equal(t, "ISO-8859-1", cfg.Bank.Encoding)
	assert.Equal(t, "datenight.log", cfg.LogFile)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("DATENIGHT_MODE", "endless")
	t.Setenv("DATENIGHT_BANK_PATH", "/decks/us.txt")
	t.Setenv("DATENIGHT_DISPLAY_CELL_WIDTH", "10")
	t.Setenv("DATENIGHT_SEED", "7")

	cfg, err := Load(newFlags(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "endless", cfg.Mode)
	assert.Equal(t, "/decks/us.txt", cfg.Bank.Path)
	assert.Equal(t, 10.0, cfg.Display.CellWidth)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("datenight.yaml", []byte(`mode: endless
threshold: 60
bank:
  path: ours.deck
display:
  card_width: 40
`), 0644))

	cfg, err := Load(newFlags(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "endless", cfg.Mode)
	assert.Equal(t, 60.0, cfg.Threshold)
	assert.Equal(t, "ours.deck", cfg.Bank.Path)
	assert.Equal(t, 40, cfg.Display.CardWidth)
	assert.Equal(t, 16.0, cfg.Display.CellHeight)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session_length: 5\n"), 0644))

	cfg, err := Load(newFlags(t, "--config", path), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.SessionLength)

	_, err = Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")), nil)
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	prefs, err := NewPreferences(DefaultService)
	require.NoError(t, err)
	require.NoError(t, prefs.Set("mode", "endless"))
	require.NoError(t, prefs.Set("bank.path", "remembered.deck"))

	// Remembered values beat built-in defaults.
	cfg, err := Load(newFlags(t), prefs)
	require.NoError(t, err)
	assert.Equal(t, "endless", cfg.Mode)
	assert.Equal(t, "remembered.deck", cfg.Bank.Path)

	// The config file beats remembered values.
	require.NoError(t, os.WriteFile("datenight.yaml", []byte("bank:\n  path: file.deck\n"), 0644))
	cfg, err = Load(newFlags(t), prefs)
	require.NoError(t, err)
	assert.Equal(t, "file.deck", cfg.Bank.Path)

	// Env beats the file.
	t.Setenv("DATENIGHT_BANK_PATH", "env.deck")
	cfg, err = Load(newFlags(t), prefs)
	require.NoError(t, err)
	assert.Equal(t, "env.deck", cfg.Bank.Path)

	// Flags beat everything.
	cfg, err = Load(newFlags(t, "--bank", "flag.deck", "--mode", "session"), prefs)
	require.NoError(t, err)
	assert.Equal(t, "flag.deck", cfg.Bank.Path)
	assert.Equal(t, "session", cfg.Mode)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Mode:          "session",
			SessionLength: 25,
			Display:       Display{CellWidth: 8, CellHeight: 16, CardWidth: 48},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "endless", mutate: func(c *Config) { c.Mode = "endless" }},
		{name: "unknown mode", mutate: func(c *Config) { c.Mode = "blitz" }, wantErr: true},
		{name: "negative threshold", mutate: func(c *Config) { c.Threshold = -1 }, wantErr: true},
		{name: "empty session", mutate: func(c *Config) { c.SessionLength = 0 }, wantErr: true},
		{name: "zero cell width", mutate: func(c *Config) { c.Display.CellWidth = 0 }, wantErr: true},
		{name: "narrow card", mutate: func(c *Config) { c.Display.CardWidth = 10 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)

	_, err := Load(newFlags(t, "--mode", "blitz"), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
