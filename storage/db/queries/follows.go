package queries

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yatube/storage/models"
)

// CreateFollow inserts the edge with ON CONFLICT DO NOTHING on the composite
// unique index. Two concurrent calls for the same pair cannot both insert;
// the loser is silently absorbed, which is the wanted idempotent behavior.
func CreateFollow(database *gorm.DB, followerID uint, authorID uint) error {
	follow := models.Follow{
		FollowerID: followerID,
		AuthorID:   authorID,
	}
	return database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "author_id"}},
			DoNothing: true,
		}).
		Create(&follow).
		Error
}

// DeleteFollow removes the edge if present. Deleting an absent edge is not
// an error.
func DeleteFollow(database *gorm.DB, followerID uint, authorID uint) error {
	return database.
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&models.Follow{}).
		Error
}

func FollowExists(database *gorm.DB, followerID uint, authorID uint) (bool, error) {
	var count int64
	err := database.
		Model(&models.Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).
		Error
	return count > 0, err
}

// GetFollowedAuthorIds returns the ids of every author the user follows.
func GetFollowedAuthorIds(database *gorm.DB, followerID uint) ([]uint, error) {
	var authorIds []uint
	err := database.
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("author_id", &authorIds).
		Error
	return authorIds, err
}
