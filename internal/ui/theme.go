package ui

import (
	"fmt"
	"sync"
)

const ThemeKey = "theme"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// KeyValueStore is the persisted client-side store the theme lives in.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

type ThemeState struct {
	mu    sync.Mutex
	store KeyValueStore
	theme Theme
}

// LoadTheme resolves the initial theme: unset means dark, "dark" means dark and
// anything else means light. The resolved value is written back.
func LoadTheme(store KeyValueStore) (*ThemeState, error) {
	saved, ok, err := store.Get(ThemeKey)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	theme := Dark
	if ok && saved != string(Dark) {
		theme = Light
	}
	ts := &ThemeState{store: store, theme: theme}
	if err := store.Set(ThemeKey, string(theme)); err != nil {
		return nil, fmt.Errorf("persist theme: %w", err)
	}
	return ts, nil
}

func (t *ThemeState) Current() Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.theme
}

func (t *ThemeState) IsDark() bool {
	return t.Current() == Dark
}

// Toggle flips the theme and persists it before returning.
func (t *ThemeState) Toggle() (Theme, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	next := Dark
	if t.theme == Dark {
		next = Light
	}
	if err := t.store.Set(ThemeKey, string(next)); err != nil {
		return t.theme, fmt.Errorf("persist theme: %w", err)
	}
	t.theme = next
	return next, nil
}
