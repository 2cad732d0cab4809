package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/services"
)

type AlternativeController struct {
	Alternatives *services.AlternativeService
	Products     *services.ProductService
}

func NewAlternativeController(alternatives *services.AlternativeService, products *services.ProductService) *AlternativeController {
	return &AlternativeController{Alternatives: alternatives, Products: products}
}

// GET /products/:barcode/alternatives?limit=3
func (ac *AlternativeController) FindAlternatives(c *gin.Context) {
	product, err := ac.Products.GetProduct(c.Param("barcode"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
	alternatives, err := ac.Alternatives.FindAlternatives(product.ID, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id":   product.ID,
		"alternatives": alternatives,
	})
}
