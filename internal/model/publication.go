package model

import "time"

// Publication statuses. Anything else arriving from a client is coerced to
// StatusDraft before validation (see dto.NormalizeStatus).
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Publication is a content item (article / media post) shown on the public
// site. Field names are the internal storage names; the Spanish public shape
// (titulo, descripcion, …) is produced by the dto mappers.
type Publication struct {
	ID             uint    `gorm:"primaryKey"`
	Title          string  `gorm:"not null"`
	Slug           string  `gorm:"uniqueIndex;not null"`
	Description    string  `gorm:"type:text"`
	Content        string  `gorm:"type:text;not null"`
	MainImage      *string
	VideoThumbnail *string
	Status         string `gorm:"type:varchar(20);not null;default:'draft'"`
	AuthorID       uint   `gorm:"index;not null"`
	CategoryID     *uint  `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Author   *User     `gorm:"foreignKey:AuthorID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Tags     []Tag     `gorm:"many2many:publication_tags;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE"`
	Visits   []Visit   `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE"`
}

func (Publication) TableName() string { return "publications" }
