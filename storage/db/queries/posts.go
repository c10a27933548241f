package queries

import (
	"gorm.io/gorm"

	"yatube/storage/models"
)

func CreatePost(database *gorm.DB, post *models.Post) error {
	return database.Create(post).Error
}

func GetPost(database *gorm.DB, id uint) (models.Post, error) {
	var post models.Post
	err := database.
		Preload("Author").
		Preload("Group").
		First(&post, id).
		Error
	return post, err
}

// UpdatePost changes the mutable fields only. CreatedAt and AuthorID are
// fixed for the lifetime of a post.
func UpdatePost(database *gorm.DB, id uint, text string, groupID *uint, image string) error {
	return database.
		Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"text":     text,
			"group_id": groupID,
			"image":    image,
		}).
		Error
}

func DeletePost(database *gorm.DB, id uint) error {
	return database.Delete(&models.Post{}, id).Error
}

// GetFeedPosts selects the page of posts authored by any of authorIds,
// newest first. An empty author set yields an empty page without touching
// the posts table.
func GetFeedPosts(database *gorm.DB, authorIds []uint, limit int, offset int) ([]models.Post, error) {
	if len(authorIds) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := database.
		Preload("Author").
		Preload("Group").
		Where("author_id IN ?", authorIds).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).
		Error
	return posts, err
}

func CountFeedPosts(database *gorm.DB, authorIds []uint) (int64, error) {
	if len(authorIds) == 0 {
		return 0, nil
	}
	var count int64
	err := database.
		Model(&models.Post{}).
		Where("author_id IN ?", authorIds).
		Count(&count).
		Error
	return count, err
}

// GetLatestPosts is the global timeline used by the anonymous home page.
func GetLatestPosts(database *gorm.DB, limit int, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := database.
		Preload("Author").
		Preload("Group").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).
		Error
	return posts, err
}

func CountPosts(database *gorm.DB) (int64, error) {
	var count int64
	err := database.Model(&models.Post{}).Count(&count).Error
	return count, err
}

func GetAuthorPosts(database *gorm.DB, authorID uint, limit int, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := database.
		Preload("Author").
		Preload("Group").
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).
		Error
	return posts, err
}

func CountAuthorPosts(database *gorm.DB, authorID uint) (int64, error) {
	var count int64
	err := database.
		Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).
		Error
	return count, err
}

func GetGroupPosts(database *gorm.DB, groupID uint, limit int, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := database.
		Preload("Author").
		Preload("Group").
		Where("group_id = ?", groupID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).
		Error
	return posts, err
}

func CountGroupPosts(database *gorm.DB, groupID uint) (int64, error) {
	var count int64
	err := database.
		Model(&models.Post{}).
		Where("group_id = ?", groupID).
		Count(&count).
		Error
	return count, err
}
