package model

import "time"

// ContactMessage is a submission from the public contact form. A copy is
// mailed to the admin recipients asynchronously; the row is the source of
// truth for the dashboard inbox.
type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Subject   string `gorm:"not null"`
	Message   string `gorm:"type:text;not null"`
	IsRead    bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (ContactMessage) TableName() string { return "contact_messages" }

// ContactSubject is a selectable subject for the contact form dropdown.
type ContactSubject struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (ContactSubject) TableName() string { return "contact_subjects" }
