package model

import "time"

// Tag is a flat label attached to publications via the publication_tags
// join table. Join rows are replaced wholesale on update, never diffed.
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Tag) TableName() string { return "tags" }
