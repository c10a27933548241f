package queries

import (
	"gorm.io/gorm"

	"yatube/storage/models"
)

func CreateGroup(database *gorm.DB, group *models.Group) error {
	return database.Create(group).Error
}

func GetGroupBySlug(database *gorm.DB, slug string) (models.Group, error) {
	var group models.Group
	err := database.Where("slug = ?", slug).First(&group).Error
	return group, err
}

// DeleteGroup detaches the group's posts before deleting it, so removing a
// community never destroys the content posted to it.
func DeleteGroup(database *gorm.DB, id uint) error {
	return database.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&models.Post{}).
			Where("group_id = ?", id).
			Update("group_id", nil).
			Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, id).Error
	})
}
