package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/config"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/models"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/utils"
)

// GetUserProfile returns the profile payload with a scan counter, so
// the client can show activity without a second request.
func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}

	var scanCount int64
	config.DB.Model(&models.ScanHistory{}).Where("user_id = ?", userID).Count(&scanCount)

	return map[string]interface{}{
		"id":           user.ID,
		"email":        user.Email,
		"full_name":    user.FullName,
		"member_since": user.CreatedAt.Format("2006-01-02"),
		"scan_count":   scanCount,
	}, nil
}

func UpdateUserProfile(userID uint, fullName, newPassword string) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return ErrNotFound
	}

	if fullName != "" {
		user.FullName = fullName
	}
	if newPassword != "" {
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
