package models

import "gorm.io/gorm"

// A scanned product. Created once per unique barcode on the first
// successful lookup+rating; never updated afterwards.
type Product struct {
    gorm.Model
    Barcode       string `gorm:"type:varchar(13);uniqueIndex;not null"`
    Name          string `gorm:"not null"`
    Image         string
    BrandOwner    string
    BrandName     string
    Ingredients   string
    ServingSize   float64
    ServingUnit   string
    PackageWeight string
    Rated         int // overall 0-100 score, higher is worse
    Nutrients     []ProductNutrient
}

// One rated nutrient row, persisted together with its product.
// For the "additives" pseudo-nutrient, Amount holds the additive count
// and UnitName the space-joined E-codes.
type ProductNutrient struct {
    gorm.Model
    ProductID uint
    NameKey   string `gorm:"not null"`
    Amount    float64
    UnitName  string
    Rated     int
}
