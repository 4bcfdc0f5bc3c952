package config

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// DefaultService namespaces the remembered preferences in the keyring.
const DefaultService = "datenight"

// Keys that may be remembered between runs. Session progress never is.
var RememberedKeys = []string{"mode", "bank.path"}

// Preferences stores remembered settings in the system keyring.
type Preferences struct {
	service string
}

// NewPreferences creates a Preferences instance for the given keyring service.
func NewPreferences(service string) (*Preferences, error) {
	if service == "" {
		return nil, fmt.Errorf("service name cannot be empty")
	}
	return &Preferences{
		service: service,
	}, nil
}

// Set stores a value under the given key.
func (p *Preferences) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	return keyring.Set(p.service, key, value)
}

// Get retrieves a remembered value. Returns an empty string if the key doesn't
// exist or the keyring can't be read.
func (p *Preferences) Get(key string) string {
	if key == "" {
		return ""
	}

	value, err := keyring.Get(p.service, key)
	if err != nil {
		return ""
	}
	return value
}

// Exists checks if a key has been remembered.
func (p *Preferences) Exists(key string) bool {
	if key == "" {
		return false
	}

	_, err := keyring.Get(p.service, key)
	return err == nil
}

// Delete forgets one key. Forgetting a key that was never stored is not an
// error.
func (p *Preferences) Delete(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	err := keyring.Delete(p.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// All returns every remembered, non-empty preference.
func (p *Preferences) All() map[string]string {
	out := make(map[string]string)
	for _, key := range RememberedKeys {
		if value := p.Get(key); value != "" {
			out[key] = value
		}
	}
	return out
}

// Remember stores the effective values of cfg that are worth keeping.
func (p *Preferences) Remember(cfg *Config) error {
	values := map[string]string{
		"mode":      cfg.Mode,
		"bank.path": cfg.Bank.Path,
	}
	for _, key := range RememberedKeys {
		value := values[key]
		if value == "" {
			if err := p.Delete(key); err != nil {
				return err
			}
			continue
		}
		if err := p.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Forget removes every remembered preference.
func (p *Preferences) Forget() error {
	for _, key := range RememberedKeys {
		if !p.Exists(key) {
			continue
		}
		if err := p.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
