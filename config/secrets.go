package config

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zalando/go-keyring"
)

// OSDTokenKey is the keyring service name for the OSD bridge token.
const OSDTokenKey = AppID + ".osd_token"

// GetOSDToken returns the OSD bridge token from the keyring, or "" when none is stored.
func (c *AppConfig) GetOSDToken() (string, error) {
	token, err := keyring.Get(OSDTokenKey, c.userid)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading osd token: %w", err)
	}
	return token, nil
}

// SetOSDToken stores the OSD bridge token. An empty token removes it.
func (c *AppConfig) SetOSDToken(token string) error {
	if token == "" {
		err := keyring.Delete(OSDTokenKey, c.userid)
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("deleting osd token: %w", err)
		}
		return nil
	}
	if err := keyring.Set(OSDTokenKey, c.userid, token); err != nil {
		return fmt.Errorf("saving osd token: %w", err)
	}
	return nil
}

// EnsureOSDToken returns the stored token, generating and storing a new one
// the first time it is needed.
func (c *AppConfig) EnsureOSDToken() (string, error) {
	token, err := c.GetOSDToken()
	if err != nil || token != "" {
		return token, err
	}
	token = uuid.NewString()
	if err := c.SetOSDToken(token); err != nil {
		return "", err
	}
	return token, nil
}
