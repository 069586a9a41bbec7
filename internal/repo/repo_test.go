package repo

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/models"
)

// newTestRepo opens a per-test in-memory database. cache=shared keeps the
// same database visible across gorm's pooled connections.
func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.ProductCategory{},
		&models.Setting{},
		&models.ContactMessage{},
		&models.User{},
		&models.RefreshToken{},
	))

	return &GormRepo{DB: db}
}

func ptr[T any](v T) *T { return &v }
