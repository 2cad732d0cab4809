package services

import (
	"github.com/ANNI69/Nutrscan-Fact-Scanner/config"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/models"
)

type HistoryService struct{}

func NewHistoryService() *HistoryService {
	return &HistoryService{}
}

func (s *HistoryService) ListScans(userID uint, page, limit int) ([]models.ScanHistory, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	var scans []models.ScanHistory
	err := config.DB.
		Preload("Product").
		Preload("Product.Nutrients").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&scans).Error
	return scans, err
}

func (s *HistoryService) DeleteScan(userID, scanID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", scanID, userID).
		Delete(&models.ScanHistory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *HistoryService) ClearScans(userID uint) (int64, error) {
	res := config.DB.
		Where("user_id = ?", userID).
		Delete(&models.ScanHistory{})
	return res.RowsAffected, res.Error
}
