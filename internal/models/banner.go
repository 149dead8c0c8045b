package models

import "time"

// Banner is a storefront promotion slide. Display order is list order as
// stored (SortOrder ascending); there are no uniqueness constraints.
type Banner struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(300);not null" json:"title"`
	Subtitle  string    `gorm:"type:varchar(500)" json:"subtitle"`
	Image     string    `gorm:"type:varchar(500);not null" json:"image"`
	Link      string    `gorm:"type:varchar(1000)" json:"link,omitempty"`
	Type      string    `gorm:"type:varchar(20);not null;default:'custom'" json:"type"` // sale / new / delivery / custom
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Banner) TableName() string {
	return "banners"
}
