package model

import "time"

// Visit is an append-only access-log row. One row is created on every
// publication read (by id or slug), with no dedup — rows are never updated
// or deleted.
type Visit struct {
	ID            uint   `gorm:"primaryKey"`
	PublicationID uint   `gorm:"index;not null"`
	IPAddress     string `gorm:"type:varchar(45)"`
	UserAgent     string
	CreatedAt     time.Time
}

func (Visit) TableName() string { return "visits" }
