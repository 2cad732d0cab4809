package models

import "gorm.io/gorm"

type ShoppingItem struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"`
    Name     string `gorm:"not null"`
    Barcode  string
    Quantity int  `gorm:"default:1"`
    Checked  bool `gorm:"default:false"`
}
