package queries

import (
	"time"

	"gorm.io/gorm"

	"yatube/storage/models"
)

func CreateUser(database *gorm.DB, user *models.User) error {
	return database.Create(user).Error
}

func GetUser(database *gorm.DB, id uint) (models.User, error) {
	var user models.User
	err := database.First(&user, id).Error
	return user, err
}

func GetUserByUsername(database *gorm.DB, username string) (models.User, error) {
	var user models.User
	err := database.Where("username = ?", username).First(&user).Error
	return user, err
}

func GetUserByEmail(database *gorm.DB, email string) (models.User, error) {
	var user models.User
	err := database.Where("email = ?", email).First(&user).Error
	return user, err
}

func ActivateUser(database *gorm.DB, id uint) error {
	return database.
		Model(&models.User{}).
		Where("id = ?", id).
		Update("is_active", true).
		Error
}

func DeleteUser(database *gorm.DB, id uint) error {
	return database.Delete(&models.User{}, id).Error
}

// DeleteInactiveUsersBefore removes accounts that never confirmed their
// activation link before the cutoff.
func DeleteInactiveUsersBefore(database *gorm.DB, cutoff time.Time) (int64, error) {
	result := database.
		Where("is_active = ? AND created_at < ?", false, cutoff).
		Delete(&models.User{})
	return result.RowsAffected, result.Error
}
