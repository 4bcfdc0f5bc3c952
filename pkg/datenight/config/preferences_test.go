package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestNewPreferences(t *testing.T) {
	tests := []struct {
		name    string
		service string
		wantErr bool
	}{
		{name: "named service", service: DefaultService},
		{name: "empty service", service: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPreferences(tt.service)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPreferences() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && p == nil {
				t.Error("NewPreferences() returned nil")
			}
		})
	}
}

func TestPreferences_SetGetDelete(t *testing.T) {
	keyring.MockInit()
	p, err := NewPreferences("datenight-test")
	require.NoError(t, err)

	assert.False(t, p.Exists("mode"))
	assert.Equal(t, "", p.Get("mode"))

	require.NoError(t, p.Set("mode", "endless"))
	assert.True(t, p.Exists("mode"))
	assert.Equal(t, "endless", p.Get("mode"))

	require.NoError(t, p.Delete("mode"))
	assert.False(t, p.Exists("mode"))
	assert.NoError(t, p.Delete("mode"), "deleting a missing key is fine")

	assert.Error(t, p.Set("", "x"))
	assert.Error(t, p.Delete(""))
	assert.Equal(t, "", p.Get(""))
	assert.False(t, p.Exists(""))
}

func TestPreferences_RememberAndForget(t *testing.T) {
	keyring.MockInit()
	p, err := NewPreferences("datenight-test")
	require.NoError(t, err)

	require.NoError(t, p.Remember(&Config{Mode: "endless", Bank: Bank{Path: "ours.deck"}}))
	assert.Equal(t, map[string]string{"mode": "endless", "bank.path": "ours.deck"}, p.All())

	// An empty value forgets the key instead of storing "".
	require.NoError(t, p.Remember(&Config{Mode: "session"}))
	assert.Equal(t, map[string]string{"mode": "session"}, p.All())

	require.NoError(t, p.Forget())
	assert.Empty(t, p.All())
	assert.False(t, p.Exists("mode"))

	// Forgetting again skips keys that are already gone.
	require.NoError(t, p.Forget())
}
