package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/catalog"
	"github.com/paintconnect/storefront/internal/models"
)

// productScope builds the shared predicate set for a filter. Fetch and count
// both run through here so they always agree on the logical row set. Every
// user value travels as a bound parameter, nothing is spliced into SQL text.
func (r *GormRepo) productScope(ctx context.Context, f catalog.Filter) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&models.Product{})

	if f.HasCategories() {
		q = q.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Where("pc.category_id IN ?", f.CategoryIDs)
	}

	if f.HasSearch() {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(products.name) LIKE ? OR LOWER(products.code) LIKE ? OR LOWER(products.brand) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	return q
}

// ListProducts returns one page of the catalog plus the total count of the
// whole filtered set. A product joined through several requested categories is
// still one row and counts once.
func (r *GormRepo) ListProducts(ctx context.Context, f catalog.Filter) (int64, []models.Product, error) {
	var total int64
	count := r.productScope(ctx, f)
	if f.HasCategories() {
		count = count.Distinct("products.id")
	}
	if err := count.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	fetch := r.productScope(ctx, f)
	if f.HasCategories() {
		fetch = fetch.Distinct("products.*")
	}

	items := make([]models.Product, 0, f.PageSize)
	if err := fetch.
		Order("products.created_at DESC, products.id DESC").
		Offset(f.Offset()).
		Limit(f.PageSize).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *GormRepo) UpdateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	var existing models.Product
	if err := r.DB.WithContext(ctx).First(&existing, "id = ?", prod.ID).Error; err != nil {
		return nil, err
	}

	prod.CreatedAt = existing.CreatedAt
	if err := r.DB.WithContext(ctx).Save(prod).Error; err != nil {
		return nil, err
	}

	return prod, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductCategory{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
