package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ImGajeed76/datenight/pkg/datenight/config"
)

func TestNew_NoFileIsSilent(t *testing.T) {
	log, err := New(&config.Config{})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		wantDebug bool
	}{
		{name: "development", env: "local", wantDebug: true},
		{name: "production", env: "production", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "datenight.log")
			log, err := New(&config.Config{Env: tt.env, LogFile: path})
			require.NoError(t, err)

			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zap.DebugLevel))
			log.Info("card shown", zap.String("category", "deep"))
			_ = log.Sync()

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "card shown")
			assert.Contains(t, string(data), "deep")
		})
	}
}
