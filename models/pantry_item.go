package models

import (
    "time"

    "gorm.io/gorm"
)

type PantryItem struct {
    gorm.Model
    UserID    uint   `gorm:"index;not null"`
    Name      string `gorm:"not null"`
    Barcode   string
    Quantity  int `gorm:"default:1"`
    ExpiresAt *time.Time
}
