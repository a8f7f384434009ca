package model

import "time"

// Role names with moderation privileges. The DB may hold additional
// ordinary roles (e.g. "Docente", "Editor").
const (
	RoleAdmin      = "Administrador"
	RoleSuperAdmin = "Super Administrador"
)

// User is a dashboard account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"uniqueIndex;not null"`
	Username       string `gorm:"uniqueIndex;not null"`
	FullName       string `gorm:"not null"`
	PasswordHash   string `gorm:"not null"`
	RoleID         uint   `gorm:"index;not null"`
	LastConnection *time.Time
	RegisteredAt   time.Time `gorm:"autoCreateTime"`

	Role *Role `gorm:"foreignKey:RoleID"`
}

func (User) TableName() string { return "users" }

// Role is a named permission level referenced by users.
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (Role) TableName() string { return "roles" }
