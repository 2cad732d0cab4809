package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/config"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/models"
)

type ShoppingService struct{}

func NewShoppingService() *ShoppingService {
	return &ShoppingService{}
}

func (s *ShoppingService) List(userID uint) ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	err := config.DB.
		Where("user_id = ?", userID).
		Order("checked ASC, created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *ShoppingService) Add(userID uint, name, barcode string, quantity int) (*models.ShoppingItem, error) {
	if quantity <= 0 {
		quantity = 1
	}
	item := &models.ShoppingItem{
		UserID:   userID,
		Name:     name,
		Barcode:  barcode,
		Quantity: quantity,
	}
	if err := config.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleChecked flips an item between pending and done.
func (s *ShoppingService) ToggleChecked(userID, itemID uint) (*models.ShoppingItem, error) {
	var item models.ShoppingItem
	err := config.DB.
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	item.Checked = !item.Checked
	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ShoppingService) Delete(userID, itemID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.ShoppingItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearChecked removes every done item in one go.
func (s *ShoppingService) ClearChecked(userID uint) (int64, error) {
	res := config.DB.
		Where("user_id = ? AND checked = ?", userID, true).
		Delete(&models.ShoppingItem{})
	return res.RowsAffected, res.Error
}
