package model

import "time"

// Comment belongs to a publication. Comments start unapproved and only
// surface publicly once a moderator flips IsApproved.
type Comment struct {
	ID            uint   `gorm:"primaryKey"`
	PublicationID uint   `gorm:"index;not null"`
	AuthorName    string `gorm:"not null"`
	Content       string `gorm:"type:text;not null"`
	IsApproved    bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time

	Reactions []Reaction `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string { return "comments" }

// Reaction is an emoji reaction on an approved comment.
type Reaction struct {
	ID        uint   `gorm:"primaryKey"`
	CommentID uint   `gorm:"index;not null"`
	Emoji     string `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
}

func (Reaction) TableName() string { return "reactions" }
