package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/services"
)

type ShoppingController struct {
	Shopping *services.ShoppingService
}

func NewShoppingController(shopping *services.ShoppingService) *ShoppingController {
	return &ShoppingController{Shopping: shopping}
}

type ShoppingItemInput struct {
	Name     string `json:"name" binding:"required"`
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
}

// GET /shopping
func (sc *ShoppingController) List(c *gin.Context) {
	items, err := sc.Shopping.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /shopping
func (sc *ShoppingController) Add(c *gin.Context) {
	var input ShoppingItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := sc.Shopping.Add(c.GetUint("userID"), input.Name, input.Barcode, input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PATCH /shopping/:id/toggle
func (sc *ShoppingController) Toggle(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	item, err := sc.Shopping.ToggleChecked(c.GetUint("userID"), uint(itemID))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /shopping/:id
func (sc *ShoppingController) Delete(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	err = sc.Shopping.Delete(c.GetUint("userID"), uint(itemID))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// DELETE /shopping/checked
func (sc *ShoppingController) ClearChecked(c *gin.Context) {
	removed, err := sc.Shopping.ClearChecked(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
