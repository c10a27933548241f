package models

// Group is a named community posts can optionally belong to.
type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:50;not null"`
	Slug        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}
