package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/config"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/models"
)

type PantryService struct{}

func NewPantryService() *PantryService {
	return &PantryService{}
}

func (s *PantryService) List(userID uint) ([]models.PantryItem, error) {
	var items []models.PantryItem
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *PantryService) Add(userID uint, name, barcode string, quantity int, expiresAt *time.Time) (*models.PantryItem, error) {
	if quantity <= 0 {
		quantity = 1
	}
	item := &models.PantryItem{
		UserID:    userID,
		Name:      name,
		Barcode:   barcode,
		Quantity:  quantity,
		ExpiresAt: expiresAt,
	}
	if err := config.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PantryService) Update(userID, itemID uint, name string, quantity int, expiresAt *time.Time) (*models.PantryItem, error) {
	var item models.PantryItem
	err := config.DB.
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if name != "" {
		item.Name = name
	}
	if quantity > 0 {
		item.Quantity = quantity
	}
	if expiresAt != nil {
		item.ExpiresAt = expiresAt
	}
	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PantryService) Delete(userID, itemID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.PantryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListExpiringSoon returns items whose expiry falls within the next
// `days` days, soonest first. Items without an expiry never appear.
func (s *PantryService) ListExpiringSoon(userID uint, days int) ([]models.PantryItem, error) {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().AddDate(0, 0, days)
	var items []models.PantryItem
	err := config.DB.
		Where("user_id = ? AND expires_at IS NOT NULL AND expires_at <= ?", userID, cutoff).
		Order("expires_at ASC").
		Find(&items).Error
	return items, err
}
