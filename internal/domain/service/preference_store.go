package service

import (
	"context"
	"errors"

	"neocart/internal/domain/entity"
)

// ErrPreferenceNotFound is returned when no value has been persisted yet.
var ErrPreferenceNotFound = errors.New("preference not found")

// Theme is the persisted presentation preference.
type Theme string

const (
	// ThemeDark is the default theme.
	ThemeDark Theme = "dark"
	// ThemeLight is the alternate theme.
	ThemeLight Theme = "light"
)

// IsValid checks if the Theme is a valid value.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// PreferenceStore persists the credential and theme preference across
// restarts, the gateway's analog of the browser's local storage.
type PreferenceStore interface {
	// SaveCredential persists the bearer credential.
	SaveCredential(ctx context.Context, credential entity.Credential) error

	// LoadCredential restores the persisted credential, or
	// ErrPreferenceNotFound when none was saved.
	LoadCredential(ctx context.Context) (entity.Credential, error)

	// ClearCredential removes the persisted credential. Clearing an absent
	// credential is not an error.
	ClearCredential(ctx context.Context) error

	// SaveTheme persists the theme preference.
	SaveTheme(ctx context.Context, theme Theme) error

	// LoadTheme restores the persisted theme, or ErrPreferenceNotFound when
	// none was saved.
	LoadTheme(ctx context.Context) (Theme, error)
}
