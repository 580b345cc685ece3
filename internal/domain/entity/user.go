package entity

import "time"

// User represents a sales user mirrored from the central server so login
// keeps working offline. The server shares the bcrypt hash, never the
// password; offline login validates against it and issues no token.
type User struct {
	Code         string    `gorm:"primaryKey;size:20" json:"code"`
	Name         string    `gorm:"size:80;index" json:"name"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	Inactive     bool      `gorm:"not null;default:false" json:"inactive"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
