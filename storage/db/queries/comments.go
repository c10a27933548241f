package queries

import (
	"gorm.io/gorm"

	"yatube/storage/models"
)

func CreateComment(database *gorm.DB, comment *models.Comment) error {
	return database.Create(comment).Error
}

func GetPostComments(database *gorm.DB, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := database.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).
		Error
	return comments, err
}
