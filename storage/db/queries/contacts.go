package queries

import (
	"gorm.io/gorm"

	"yatube/storage/models"
)

func CreateContact(database *gorm.DB, contact *models.Contact) error {
	return database.Create(contact).Error
}
