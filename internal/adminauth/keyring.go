// Package adminauth stores the flit-admin API token in the OS keychain
// with a file fallback for headless environments.
package adminauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zalando/go-keyring"
)

const tokenKey = "api-token"

// ErrNoToken is returned when no token has been stored yet.
var ErrNoToken = errors.New("adminauth: no token stored; run `flit-admin login` first")

// TokenStore wraps the OS keychain with an optional file fallback.
// Fallback is intended for environments where no system keyring is
// available (CI, containers).
type TokenStore struct {
	service      string
	fallbackPath string
	mu           sync.Mutex
}

// NewTokenStore creates a token store. An empty service name defaults
// to "flit-admin".
func NewTokenStore(serviceName, fallbackPath string) *TokenStore {
	if strings.TrimSpace(serviceName) == "" {
		serviceName = "flit-admin"
	}
	return &TokenStore{
		service:      serviceName,
		fallbackPath: fallbackPath,
	}
}

// SetToken stores the admin API token.
func (t *TokenStore) SetToken(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("adminauth: token is required")
	}

	if err := keyring.Set(t.service, tokenKey, value); err == nil {
		return nil
	} else if !isKeyringUnavailable(err) {
		return fmt.Errorf("adminauth: keyring set: %w", err)
	}

	return t.setFallback(value)
}

// GetToken retrieves the stored admin API token.
func (t *TokenStore) GetToken() (string, error) {
	val, err := keyring.Get(t.service, tokenKey)
	if err == nil {
		return val, nil
	}
	if !isKeyringUnavailable(err) && !errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("adminauth: keyring get: %w", err)
	}

	fallback, ferr := t.getFallback()
	if ferr == nil {
		return fallback, nil
	}
	return "", ErrNoToken
}

// Delete removes the stored token from both backends.
func (t *TokenStore) Delete() error {
	kerr := keyring.Delete(t.service, tokenKey)
	if kerr != nil && errors.Is(kerr, keyring.ErrNotFound) {
		kerr = nil
	}
	ferr := t.deleteFallback()
	if kerr != nil && !isKeyringUnavailable(kerr) {
		return fmt.Errorf("adminauth: keyring delete: %w", kerr)
	}
	return ferr
}

func isKeyringUnavailable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "secret service") ||
		strings.Contains(msg, "dbus") ||
		strings.Contains(msg, "no keychain") ||
		strings.Contains(msg, "keyring backend not available")
}

type fallbackSecrets map[string]string

func (t *TokenStore) setFallback(value string) error {
	if strings.TrimSpace(t.fallbackPath) == "" {
		return fmt.Errorf("adminauth: keyring unavailable and no fallback path configured")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := t.readFallbackUnlocked()
	if err != nil {
		return err
	}
	data[tokenKey] = value
	return t.writeFallbackUnlocked(data)
}

func (t *TokenStore) getFallback() (string, error) {
	if strings.TrimSpace(t.fallbackPath) == "" {
		return "", fmt.Errorf("adminauth: fallback path not configured")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := t.readFallbackUnlocked()
	if err != nil {
		return "", err
	}
	val, ok := data[tokenKey]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return val, nil
}

func (t *TokenStore) deleteFallback() error {
	if strings.TrimSpace(t.fallbackPath) == "" {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := t.readFallbackUnlocked()
	if err != nil {
		return err
	}
	delete(data, tokenKey)
	return t.writeFallbackUnlocked(data)
}

func (t *TokenStore) readFallbackUnlocked() (fallbackSecrets, error) {
	out := fallbackSecrets{}
	raw, err := os.ReadFile(t.fallbackPath)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("adminauth: read fallback secrets: %w", err)
	}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("adminauth: decode fallback secrets: %w", err)
	}
	return out, nil
}

func (t *TokenStore) writeFallbackUnlocked(data fallbackSecrets) error {
	dir := filepath.Dir(t.fallbackPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("adminauth: mkdir fallback dir: %w", err)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("adminauth: encode fallback secrets: %w", err)
	}
	if err := os.WriteFile(t.fallbackPath, raw, 0o600); err != nil {
		return fmt.Errorf("adminauth: write fallback secrets: %w", err)
	}
	return nil
}
