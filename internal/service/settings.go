package service

import (
	"context"

	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/repo"
)

type SettingsService struct {
	Repo *repo.GormRepo
}

func (s *SettingsService) GetSettings(ctx context.Context) (*models.Setting, error) {
	return s.Repo.GetSettings(ctx)
}

func (s *SettingsService) UpdateSettings(ctx context.Context, setting *models.Setting) (*models.Setting, error) {
	return s.Repo.UpdateSettings(ctx, setting)
}

// WhatsappNumber returns the configured order-handoff destination. An empty
// string means the back office never configured one; callers treat that as a
// precondition failure, not as a destination.
func (s *SettingsService) WhatsappNumber(ctx context.Context) (string, error) {
	setting, err := s.Repo.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return setting.WhatsappNumber, nil
}
