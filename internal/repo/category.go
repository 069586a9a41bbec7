package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/models"
)

// Slugify derives the URL slug from a category name: lowercased, runs of
// whitespace become a single hyphen.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := models.Category{Name: name, Slug: Slugify(name)}
	if err := r.DB.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}

	category.Name = name
	category.Slug = Slugify(name)
	if err := r.DB.WithContext(ctx).Save(&category).Error; err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.ProductCategory{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormRepo) GetCategoriesForProduct(ctx context.Context, productID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := r.DB.WithContext(ctx).
		Model(&models.Category{}).
		Joins("JOIN product_categories pc ON pc.category_id = categories.id").
		Where("pc.product_id = ?", productID).
		Order("categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// SetProductCategories replaces the whole category set of a product, the way
// the admin dialog submits it. Replace-all inside one transaction keeps the
// at-most-once pair invariant without row-level upserts.
func (r *GormRepo) SetProductCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Product{}, "id = ?", productID).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductCategory{}).Error; err != nil {
			return err
		}

		if len(categoryIDs) == 0 {
			return nil
		}

		seen := make(map[uuid.UUID]struct{}, len(categoryIDs))
		rows := make([]models.ProductCategory, 0, len(categoryIDs))
		for _, categoryID := range categoryIDs {
			if _, ok := seen[categoryID]; ok {
				continue
			}
			seen[categoryID] = struct{}{}
			rows = append(rows, models.ProductCategory{ProductID: productID, CategoryID: categoryID})
		}

		return tx.Create(&rows).Error
	})
}
