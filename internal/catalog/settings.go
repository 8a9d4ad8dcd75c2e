package catalog

import (
	"context"
	"fmt"

	"stylepins/internal/auth"
	"stylepins/internal/models"
)

// SettingsUpdate carries the fields to change. Nil link fields are left
// alone. NewPassword is only applied when non-empty and must equal
// ConfirmPassword; neither is ever stored as given.
type SettingsUpdate struct {
	WhatsApp  *string
	Instagram *string
	Telegram  *string
	YouTube   *string
	Pinterest *string

	NewPassword     string
	ConfirmPassword string
}

// UpdateSettings merges u into the settings record.
func (s *Store) UpdateSettings(ctx context.Context, u SettingsUpdate) error {
	if u.NewPassword != "" && u.NewPassword != u.ConfirmPassword {
		return ErrPasswordMismatch
	}

	password, scheme := u.NewPassword, auth.SchemePlain
	if password != "" && s.hasher != nil {
		hashed, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		password, scheme = hashed, s.hasher.Scheme()
	}

	return s.mutate(ctx, "update settings", func(next *models.CatalogState) (bool, error) {
		set := func(dst *string, v *string) {
			if v != nil {
				*dst = *v
			}
		}
		set(&next.Settings.WhatsApp, u.WhatsApp)
		set(&next.Settings.Instagram, u.Instagram)
		set(&next.Settings.Telegram, u.Telegram)
		set(&next.Settings.YouTube, u.YouTube)
		set(&next.Settings.Pinterest, u.Pinterest)
		if password != "" {
			next.Settings.Password = password
			next.Settings.PasswordScheme = scheme
		}
		return true, nil
	})
}
