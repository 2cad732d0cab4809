package models

import (
    "time"

    "gorm.io/gorm"
)

// A day's diet plan with its planned meals.
type DietPlan struct {
    gorm.Model
    UserID         uint   `gorm:"index;not null"`
    Title          string `gorm:"not null"`
    Date           *time.Time
    CaloriesTarget int        `gorm:"default:2000"`
    Meals          []DietMeal `gorm:"foreignKey:PlanID"`
}

type DietMeal struct {
    gorm.Model
    PlanID   uint   `gorm:"index;not null"`
    Name     string `gorm:"not null"`
    Calories float64
    Protein  float64
    Carbs    float64
    Fat      float64
}
