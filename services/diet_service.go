package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/config"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/models"
)

type DietService struct{}

func NewDietService() *DietService {
	return &DietService{}
}

type DietMealRequest struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (s *DietService) ListPlans(userID uint) ([]models.DietPlan, error) {
	var plans []models.DietPlan
	err := config.DB.
		Preload("Meals").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *DietService) GetPlan(userID, planID uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := config.DB.
		Preload("Meals").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *DietService) CreatePlan(userID uint, title string, date *time.Time, caloriesTarget int, meals []DietMealRequest) (*models.DietPlan, error) {
	if caloriesTarget <= 0 {
		caloriesTarget = 2000
	}
	plan := &models.DietPlan{
		UserID:         userID,
		Title:          title,
		Date:           date,
		CaloriesTarget: caloriesTarget,
		Meals:          mealRows(meals),
	}
	if err := config.DB.Create(plan).Error; err != nil {
		return nil, err
	}
	return s.GetPlan(userID, plan.ID)
}

// UpdatePlan replaces the plan's fields and its full meal list.
func (s *DietService) UpdatePlan(userID, planID uint, title string, date *time.Time, caloriesTarget int, meals []DietMealRequest) (*models.DietPlan, error) {
	plan, err := s.GetPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	plan.Title = title
	plan.Date = date
	if caloriesTarget > 0 {
		plan.CaloriesTarget = caloriesTarget
	}
	if err := config.DB.Save(plan).Error; err != nil {
		return nil, err
	}

	if err := config.DB.
		Where("plan_id = ?", plan.ID).
		Delete(&models.DietMeal{}).Error; err != nil {
		return nil, err
	}
	for _, row := range mealRows(meals) {
		row.PlanID = plan.ID
		if err := config.DB.Create(&row).Error; err != nil {
			return nil, err
		}
	}

	return s.GetPlan(userID, planID)
}

func (s *DietService) DeletePlan(userID, planID uint) error {
	plan, err := s.GetPlan(userID, planID)
	if err != nil {
		return err
	}
	if err := config.DB.
		Where("plan_id = ?", plan.ID).
		Delete(&models.DietMeal{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(plan).Error
}

// startOfDay returns midnight of t's calendar day in t's location.
// Truncating by 24h would cut at UTC midnight instead, shifting meals
// logged near midnight into the wrong day for non-UTC users.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddMealToday appends a meal to today's plan, creating the plan on
// first use.
func (s *DietService) AddMealToday(userID uint, meal DietMealRequest) (*models.DietPlan, error) {
	today := startOfDay(time.Now())

	var plan models.DietPlan
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, today).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		plan = models.DietPlan{
			UserID:         userID,
			Title:          "Today",
			Date:           &today,
			CaloriesTarget: 2000,
		}
		if err := config.DB.Create(&plan).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	row := models.DietMeal{
		PlanID:   plan.ID,
		Name:     meal.Name,
		Calories: meal.Calories,
		Protein:  meal.Protein,
		Carbs:    meal.Carbs,
		Fat:      meal.Fat,
	}
	if err := config.DB.Create(&row).Error; err != nil {
		return nil, err
	}

	return s.GetPlan(userID, plan.ID)
}

func mealRows(meals []DietMealRequest) []models.DietMeal {
	rows := make([]models.DietMeal, 0, len(meals))
	for _, m := range meals {
		rows = append(rows, models.DietMeal{
			Name:     m.Name,
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
		})
	}
	return rows
}
