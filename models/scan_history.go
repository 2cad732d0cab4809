package models

import "gorm.io/gorm"

// One scan event per user per product view.
type ScanHistory struct {
    gorm.Model
    UserID    uint `gorm:"index;not null"`
    ProductID uint `gorm:"not null"`
    Product   Product
}
