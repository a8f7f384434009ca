package model

import "time"

// Category classifies publications. Icon and Color are presentation hints
// consumed by the public site (e.g. "🎨", "#2563eb").
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Icon      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string { return "categories" }
