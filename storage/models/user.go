package models

import "time"

// User is the authentication identity. Accounts start inactive and become
// active once the activation link from the signup email is visited.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:150;uniqueIndex;not null"`
	Email        string `gorm:"size:254;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	IsActive     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
}
