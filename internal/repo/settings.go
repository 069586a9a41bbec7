package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/models"
)

// GetSettings returns the singleton settings row, falling back to defaults
// when nothing has been saved yet.
func (r *GormRepo) GetSettings(ctx context.Context) (*models.Setting, error) {
	var setting models.Setting
	err := r.DB.WithContext(ctx).First(&setting, "id = ?", models.DefaultSettingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Setting{ID: models.DefaultSettingID, StoreName: "Paint Connect"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *GormRepo) UpdateSettings(ctx context.Context, setting *models.Setting) (*models.Setting, error) {
	setting.ID = models.DefaultSettingID
	if err := r.DB.WithContext(ctx).Save(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}
