package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/catalog"
	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/repo"
	"github.com/paintconnect/storefront/internal/util"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

// ProductPage is one slice of the filtered catalog. TotalCount and TotalPages
// always describe the whole filtered set, whatever page was asked for; a page
// past the end comes back with empty Items and the totals intact.
type ProductPage struct {
	Items      []models.Product `json:"items"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	TotalPages int64            `json:"total_pages"`
}

func (s *CatalogService) ListProducts(ctx context.Context, f catalog.Filter) (*ProductPage, error) {
	total, items, err := s.Repo.ListProducts(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Items:      items,
		TotalCount: total,
		Page:       f.Page,
		TotalPages: util.TotalPages(total, f.PageSize),
	}, nil
}

// NewestProducts is the storefront carousel: the regular listing path with an
// empty filter and a small page size.
func (s *CatalogService) NewestProducts(ctx context.Context, limit int) ([]models.Product, error) {
	f := catalog.NormalizeFilter("", nil, 1, limit)
	page, err := s.ListProducts(ctx, f)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return product, err
}

func validateProduct(prod *models.Product) error {
	if strings.TrimSpace(prod.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	if prod.Price != nil && *prod.Price < 0 {
		return fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}
	switch prod.Status {
	case "":
		prod.Status = models.StatusActive
	case models.StatusActive, models.StatusInactive:
	default:
		return fmt.Errorf("unknown status %q: %w", prod.Status, ErrValidation)
	}
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := validateProduct(prod); err != nil {
		return nil, err
	}
	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := validateProduct(prod); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateProduct(ctx, prod)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", prod.ID, ErrNotFound)
	}
	return updated, err
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return err
}
