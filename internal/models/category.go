package models

import (
	"strings"
	"time"

	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"

	"github.com/google/uuid"
)

// Category groups catalog products. Name uniqueness (case-insensitive) is
// enforced by the category service before any write, not by the store.
type Category struct {
	ID        string    `gorm:"primarykey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	NameRu    string    `gorm:"type:varchar(200)" json:"name_ru,omitempty"`
	Slug      string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}

// LocalizedName returns the category name for the locale with primary
// language fallback.
func (c *Category) LocalizedName(locale string) string {
	if locale == constants.LocaleRu && strings.TrimSpace(c.NameRu) != "" {
		return c.NameRu
	}
	return c.Name
}

// NewCategoryID mints a category identifier.
func NewCategoryID() string {
	return constants.CategoryIDPrefix + uuid.NewString()
}
