package models

import "gorm.io/gorm"

// A bookmarked product; one row per user+barcode.
type Favorite struct {
    gorm.Model
    UserID  uint `gorm:"index;not null"`
    Name    string
    Barcode string
    Image   string
    Brand   string
}
