package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/services"
)

type FavoriteController struct {
	Favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Favorites: favorites}
}

type FavoriteInput struct {
	Name    string `json:"name" binding:"required"`
	Barcode string `json:"barcode"`
	Image   string `json:"image"`
	Brand   string `json:"brand"`
}

// GET /favorites
func (fc *FavoriteController) List(c *gin.Context) {
	favorites, err := fc.Favorites.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// POST /favorites
func (fc *FavoriteController) Add(c *gin.Context) {
	var input FavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite, err := fc.Favorites.Add(c.GetUint("userID"), input.Name, input.Barcode, input.Image, input.Brand)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// GET /favorites/check/:barcode
func (fc *FavoriteController) Check(c *gin.Context) {
	isFavorite, err := fc.Favorites.IsFavorite(c.GetUint("userID"), c.Param("barcode"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
}

// DELETE /favorites/:id
func (fc *FavoriteController) Delete(c *gin.Context) {
	favoriteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid favorite id"})
		return
	}

	err = fc.Favorites.Delete(c.GetUint("userID"), uint(favoriteID))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
