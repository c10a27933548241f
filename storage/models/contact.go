package models

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:254;not null"`
	Subject   string `gorm:"size:200"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
