package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/repo"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	return s.Repo.CreateCategory(ctx, name)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}

	category, err := s.Repo.UpdateCategory(ctx, id, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return category, err
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return err
}

func (s *CategoryService) GetCategoriesForProduct(ctx context.Context, productID uuid.UUID) ([]models.Category, error) {
	return s.Repo.GetCategoriesForProduct(ctx, productID)
}

func (s *CategoryService) SetProductCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	err := s.Repo.SetProductCategories(ctx, productID, categoryIDs)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	return err
}
