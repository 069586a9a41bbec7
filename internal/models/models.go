package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
)

// ImageList is stored as a JSON array so the ordering of product photos survives
// the round trip through the database.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value any) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("images: unsupported column type")
	}
}

type Product struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey"    json:"id"`
	Name          string        `gorm:"not null;index"          json:"name"`
	Code          *string       `json:"code,omitempty"`
	Brand         *string       `json:"brand,omitempty"`
	Color         *string       `json:"color,omitempty"`
	Size          *string       `json:"size,omitempty"`
	Price         *float64      `json:"price"`
	Description   string        `json:"description"`
	StockQuantity uint          `gorm:"not null;default:0"      json:"stock_quantity"`
	Status        ProductStatus `gorm:"not null;default:active" json:"status"`
	Images        ImageList     `gorm:"type:text"               json:"images"`
	CreatedAt     time.Time     `gorm:"index"                   json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"not null"             json:"name"`
	Slug string    `gorm:"uniqueIndex;not null" json:"slug"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ProductCategory links products to categories. A pair appears at most once and
// association rows go away together with either side.
type ProductCategory struct {
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

const DefaultSettingID = "default"

// Setting is a singleton row, id is always "default".
type Setting struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	WhatsappNumber string    `json:"whatsapp_number"`
	StoreName      string    `json:"store_name"`
	PhoneNumber    string    `json:"phone_number"`
	Address        string    `json:"address"`
	OpeningHours   string    `json:"opening_hours"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"   json:"id"`
	Name      string    `gorm:"not null"               json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     string    `gorm:"not null"               json:"phone"`
	Message   string    `gorm:"not null"               json:"message"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"index"                  json:"created_at"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Username     string    `gorm:"uniqueIndex;not null"  json:"username"`
	PasswordHash string    `gorm:"not null"              json:"-"`
	Role         string    `gorm:"not null;default:user" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Token     string    `gorm:"uniqueIndex;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt int64     `gorm:"not null"`
	Revoked   bool      `gorm:"not null;default:false"`
}
