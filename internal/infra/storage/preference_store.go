// Package storage persists the credential and theme preference in a blob
// bucket, the gateway's analog of the browser's local storage.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"neocart/config"
	"neocart/internal/domain/entity"
	"neocart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered blob drivers: local filesystem for deployment, in-memory for tests.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const (
	credentialKey = "credential"
	themeKey      = "theme"
)

type preferenceStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for the preference store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured blob bucket and returns the preference store.
func New(params Params) (service.PreferenceStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &preferenceStore{bucket: bucket, logger: params.Logger}, nil
}

// NewWithBucket wraps an already opened bucket. Used by tests with the
// in-memory driver.
func NewWithBucket(bucket *blob.Bucket, logger *slog.Logger) service.PreferenceStore {
	return &preferenceStore{bucket: bucket, logger: logger}
}

// SaveCredential persists the bearer credential.
func (s *preferenceStore) SaveCredential(ctx context.Context, credential entity.Credential) error {
	if err := s.bucket.WriteAll(ctx, credentialKey, []byte(credential), nil); err != nil {
		return errors.Wrap(err, "failed to persist credential")
	}

	return nil
}

// LoadCredential restores the persisted credential.
func (s *preferenceStore) LoadCredential(ctx context.Context) (entity.Credential, error) {
	data, err := s.bucket.ReadAll(ctx, credentialKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", service.ErrPreferenceNotFound
		}

		return "", errors.Wrap(err, "failed to read persisted credential")
	}

	credential := entity.Credential(strings.TrimSpace(string(data)))
	if credential.IsZero() {
		return "", service.ErrPreferenceNotFound
	}

	return credential, nil
}

// ClearCredential removes the persisted credential.
func (s *preferenceStore) ClearCredential(ctx context.Context) error {
	if err := s.bucket.Delete(ctx, credentialKey); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to clear persisted credential")
	}

	return nil
}

// SaveTheme persists the theme preference.
func (s *preferenceStore) SaveTheme(ctx context.Context, theme service.Theme) error {
	if !theme.IsValid() {
		return errors.Errorf("invalid theme: %s", theme)
	}

	if err := s.bucket.WriteAll(ctx, themeKey, []byte(theme), nil); err != nil {
		return errors.Wrap(err, "failed to persist theme")
	}

	return nil
}

// LoadTheme restores the persisted theme.
func (s *preferenceStore) LoadTheme(ctx context.Context) (service.Theme, error) {
	data, err := s.bucket.ReadAll(ctx, themeKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", service.ErrPreferenceNotFound
		}

		return "", errors.Wrap(err, "failed to read persisted theme")
	}

	theme := service.Theme(strings.TrimSpace(string(data)))
	if !theme.IsValid() {
		s.logger.Warn("Ignoring invalid persisted theme", slog.String("theme", string(theme)))

		return "", service.ErrPreferenceNotFound
	}

	return theme, nil
}
