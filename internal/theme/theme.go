// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme owns the persisted dark-mode flag.
//
// The controller is the only writer of the flag. Presentation reads the
// value once at startup via Initialize and thereafter reacts to the value
// returned by Toggle.
package theme

import "fmt"

// darkModeKey is the well-known preference key for the theme flag.
const darkModeKey = "dark_mode"

// Store is the key-value persistence capability the controller needs.
// *prefs.Store satisfies it.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Controller reads and writes the dark-mode preference.
type Controller struct {
	store Store
	dark  bool
}

// NewController creates a controller over the given store.
func NewController(store Store) *Controller {
	return &Controller{store: store}
}

// Initialize reads the stored flag once and returns it without writing.
// An absent key or unreadable store yields the default, false.
func (c *Controller) Initialize() bool {
	value, ok, err := c.store.Get(darkModeKey)
	if err != nil || !ok {
		c.dark = false
		return false
	}
	c.dark = value == "true"
	return c.dark
}

// Dark returns the current flag without touching the store.
func (c *Controller) Dark() bool {
	return c.dark
}

// Toggle inverts the flag, persists it immediately and returns the new
// value for presentation to apply.
func (c *Controller) Toggle() (bool, error) {
	c.dark = !c.dark
	value := "false"
	if c.dark {
		value = "true"
	}
	if err := c.store.Set(darkModeKey, value); err != nil {
		return c.dark, fmt.Errorf("failed to persist theme preference: %w", err)
	}
	return c.dark, nil
}
