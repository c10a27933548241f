package models

import "time"

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	AuthorID  uint `gorm:"not null;index"`
	Author    User `gorm:"constraint:OnDelete:CASCADE"`
	PostID    uint `gorm:"not null;index"`
	Post      Post `gorm:"constraint:OnDelete:CASCADE"`
}
