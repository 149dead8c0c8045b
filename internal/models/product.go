package models

import (
	"strings"
	"time"

	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"

	"github.com/google/uuid"
)

// Product is a catalog item. IDs are strings: server-created products carry
// the "p_" prefix, admin-local overrides the "local_" prefix. Both shapes
// share this type; provenance is tracked by which collection a record came
// from, never by a stored field.
type Product struct {
	ID            string      `gorm:"primarykey;type:varchar(64)" json:"id"`
	CategoryID    *string     `gorm:"type:varchar(64);index" json:"category_id"`
	Name          string      `gorm:"type:varchar(300);not null" json:"name"`
	NameRu        string      `gorm:"type:varchar(300)" json:"name_ru,omitempty"`
	Description   string      `gorm:"type:text" json:"description"`
	DescriptionRu string      `gorm:"type:text" json:"description_ru,omitempty"`
	Price         Money       `gorm:"type:decimal(20,0);not null;default:0" json:"price"`
	Image         string      `gorm:"type:varchar(500)" json:"image"`
	Images        StringArray `gorm:"type:json" json:"images,omitempty"` // up to 4 gallery URLs
	InStock       bool        `gorm:"default:true" json:"in_stock"`
	Specs         SpecList    `gorm:"type:json" json:"specs,omitempty"`
	SpecsRu       SpecList    `gorm:"type:json" json:"specs_ru,omitempty"`
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// LocalizedName returns the name for the locale, falling back to the
// primary language when the secondary one is absent.
func (p *Product) LocalizedName(locale string) string {
	if locale == constants.LocaleRu && strings.TrimSpace(p.NameRu) != "" {
		return p.NameRu
	}
	return p.Name
}

// LocalizedDescription returns the description for the locale with the
// same fallback rule as LocalizedName.
func (p *Product) LocalizedDescription(locale string) string {
	if locale == constants.LocaleRu && strings.TrimSpace(p.DescriptionRu) != "" {
		return p.DescriptionRu
	}
	return p.Description
}

// LocalizedSpecs returns the spec set for the locale, falling back to the
// primary-language specs when the secondary set is absent.
func (p *Product) LocalizedSpecs(locale string) SpecList {
	if locale == constants.LocaleRu && len(p.SpecsRu) > 0 {
		return p.SpecsRu
	}
	return p.Specs
}

// NewProductID mints a server-side product identifier.
func NewProductID() string {
	return constants.ProductIDPrefix + uuid.NewString()
}

// NewLocalProductID mints an identifier for an admin-local override record.
func NewLocalProductID() string {
	return constants.LocalProductIDPrefix + uuid.NewString()
}

// IsLocalProductID reports whether the identifier marks a local override.
func IsLocalProductID(id string) bool {
	return strings.HasPrefix(id, constants.LocalProductIDPrefix)
}
