package kv

import (
	"context"
	"errors"

	"training-polls/internal/store"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

// PrefsRepo holds cosmetic preferences; currently just the UI theme scalar.
type PrefsRepo struct {
	s store.Store
}

func NewPrefsRepo(s store.Store) *PrefsRepo {
	return &PrefsRepo{s: s}
}

// Theme returns the stored theme, defaulting to light.
func (r *PrefsRepo) Theme(ctx context.Context) (string, error) {
	var theme string
	ok, err := r.s.Get(ctx, store.KeyTheme, &theme)
	if err != nil {
		return "", err
	}
	if !ok || (theme != ThemeLight && theme != ThemeDark) {
		return ThemeLight, nil
	}
	return theme, nil
}

func (r *PrefsRepo) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}
	return r.s.Put(ctx, store.KeyTheme, theme)
}
