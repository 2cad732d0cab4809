package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/config"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/models"
)

type FavoriteService struct{}

func NewFavoriteService() *FavoriteService {
	return &FavoriteService{}
}

func (s *FavoriteService) List(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

// Add saves a favorite; adding the same barcode twice is a no-op that
// returns the existing row.
func (s *FavoriteService) Add(userID uint, name, barcode, image, brand string) (*models.Favorite, error) {
	if barcode != "" {
		var existing models.Favorite
		err := config.DB.
			Where("user_id = ? AND barcode = ?", userID, barcode).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	favorite := &models.Favorite{
		UserID:  userID,
		Name:    name,
		Barcode: barcode,
		Image:   image,
		Brand:   brand,
	}
	if err := config.DB.Create(favorite).Error; err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *FavoriteService) Delete(userID, favoriteID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", favoriteID, userID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsFavorite reports whether the user has saved this barcode.
func (s *FavoriteService) IsFavorite(userID uint, barcode string) (bool, error) {
	var count int64
	err := config.DB.
		Model(&models.Favorite{}).
		Where("user_id = ? AND barcode = ?", userID, barcode).
		Count(&count).Error
	return count > 0, err
}
