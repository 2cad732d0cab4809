package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/config"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/models"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/utils"
)

type ProductService struct {
	off *OpenFoodFactsService
}

func NewProductService(off *OpenFoodFactsService) *ProductService {
	return &ProductService{off: off}
}

// GetProduct returns the stored product for a barcode with its nutrient
// rows, or ErrNotFound.
func (s *ProductService) GetProduct(barcode string) (*models.Product, error) {
	var product models.Product
	err := config.DB.
		Preload("Nutrients").
		Where("barcode = ?", barcode).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts pages through stored products, newest first.
func (s *ProductService) ListProducts(page, limit int) ([]models.Product, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	var products []models.Product
	err := config.DB.
		Offset((page - 1) * limit).
		Limit(limit).
		Order("updated_at DESC").
		Find(&products).Error
	return products, err
}

// NutrientView is a nutrient row with its human-readable name attached
// ("saturated-fat" -> "Saturated Fat").
type NutrientView struct {
	models.ProductNutrient
	DisplayName string `json:"display_name"`
}

// GetProductNutrients returns a product's nutrient rows, worst first.
func (s *ProductService) GetProductNutrients(productID uint) ([]NutrientView, error) {
	var nutrients []models.ProductNutrient
	err := config.DB.
		Where("product_id = ?", productID).
		Order("rated DESC").
		Find(&nutrients).Error
	if err != nil {
		return nil, err
	}

	views := make([]NutrientView, 0, len(nutrients))
	for _, n := range nutrients {
		views = append(views, NutrientView{
			ProductNutrient: n,
			DisplayName:     NutrientDisplayName(n.NameKey),
		})
	}
	return views, nil
}

// CheckProduct resolves a barcode to a rated product: validate the
// format, look the barcode up locally, and on a miss fetch from
// OpenFoodFacts, normalize, rate and persist. The product and its
// nutrient rows are created in one transaction; a payload with no
// rateable nutrients is rejected and nothing is stored.
func (s *ProductService) CheckProduct(barcode string) (*models.Product, error) {
	if !utils.CheckBarcodeFormat(barcode) {
		return nil, ErrInvalidBarcode
	}

	product, err := s.GetProduct(barcode)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	facts, err := s.off.FetchProduct(barcode)
	if err != nil {
		return nil, err
	}
	if len(facts.Nutrients) == 0 {
		return nil, utils.ErrNoRateableNutrients
	}

	ratedNutrients, productRate, err := utils.RateNutrients(facts.Nutrients)
	if err != nil {
		return nil, err
	}

	rows := make([]models.ProductNutrient, 0, len(ratedNutrients))
	for _, nutrient := range ratedNutrients {
		rows = append(rows, models.ProductNutrient{
			NameKey:  nutrient.Name,
			Amount:   nutrient.Amount,
			UnitName: nutrient.UnitName,
			Rated:    nutrient.Rate,
		})
	}

	newProduct := &models.Product{
		Barcode:     barcode,
		Name:        facts.Name,
		Image:       facts.Image,
		BrandOwner:  facts.BrandOwner,
		BrandName:   facts.BrandName,
		Ingredients: facts.Ingredients,
		ServingSize: facts.ServingSize,
		ServingUnit: facts.ServingUnit,
		Rated:       productRate,
		Nutrients:   rows,
	}
	if err := config.DB.Create(newProduct).Error; err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return s.GetProduct(barcode)
}

// RecordScan appends a scan-history entry and notifies the user's
// connected clients.
func (s *ProductService) RecordScan(userID, productID uint) (*models.ScanHistory, error) {
	entry := &models.ScanHistory{UserID: userID, ProductID: productID}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	ScanHub.BroadcastScan(userID, map[string]any{
		"event":      "scan",
		"product_id": productID,
		"scan_id":    entry.ID,
	})
	return entry, nil
}
