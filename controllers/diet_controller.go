package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/services"
)

type DietController struct {
	Diet *services.DietService
}

func NewDietController(diet *services.DietService) *DietController {
	return &DietController{Diet: diet}
}

type DietPlanInput struct {
	Title          string                     `json:"title" binding:"required"`
	Date           *time.Time                 `json:"date"`
	CaloriesTarget int                        `json:"calories_target"`
	Meals          []services.DietMealRequest `json:"meals"`
}

// GET /diet/plans
func (dc *DietController) ListPlans(c *gin.Context) {
	plans, err := dc.Diet.ListPlans(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GET /diet/plans/:id
func (dc *DietController) GetPlan(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	plan, err := dc.Diet.GetPlan(c.GetUint("userID"), uint(planID))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// POST /diet/plans
func (dc *DietController) CreatePlan(c *gin.Context) {
	var input DietPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := dc.Diet.CreatePlan(c.GetUint("userID"), input.Title, input.Date, input.CaloriesTarget, input.Meals)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// PUT /diet/plans/:id
func (dc *DietController) UpdatePlan(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	var input DietPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := dc.Diet.UpdatePlan(c.GetUint("userID"), uint(planID), input.Title, input.Date, input.CaloriesTarget, input.Meals)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DELETE /diet/plans/:id
func (dc *DietController) DeletePlan(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	err = dc.Diet.DeletePlan(c.GetUint("userID"), uint(planID))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// POST /diet/today/meals
func (dc *DietController) AddMealToday(c *gin.Context) {
	var input services.DietMealRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := dc.Diet.AddMealToday(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}
