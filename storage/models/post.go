package models

import "time"

// Post is one authored piece of content. CreatedAt is set on insert and
// never updated. Posts die with their author but survive their group.
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	AuthorID  uint      `gorm:"not null;index"`
	Author    User      `gorm:"constraint:OnDelete:CASCADE"`
	GroupID   *uint     `gorm:"index"`
	Group     *Group    `gorm:"constraint:OnDelete:SET NULL"`
	Image     string    `gorm:"size:255"`
}
