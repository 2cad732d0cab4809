package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/services"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/utils"
)

type ProductController struct {
	Products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

// GET /products/check/:barcode
//
// The scan pipeline: local store first, then OpenFoodFacts with rating
// and persistence. Authenticated requests also get a history entry.
func (pc *ProductController) CheckProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	product, err := pc.Products.CheckProduct(barcode)
	switch {
	case errors.Is(err, services.ErrInvalidBarcode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case errors.Is(err, utils.ErrNoRateableNutrients):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Product has no rateable nutrition data"})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if userID := c.GetUint("userID"); userID != 0 {
		if _, err := pc.Products.RecordScan(userID, product.ID); err != nil {
			// history is best-effort, the scan result still goes out
			c.Header("X-Scan-Recorded", "false")
		}
	}

	c.JSON(http.StatusOK, product)
}

// GET /products?page=1&limit=10
func (pc *ProductController) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := pc.Products.ListProducts(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "page": page, "limit": limit})
}

// GET /products/:barcode
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.Products.GetProduct(c.Param("barcode"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /products/:barcode/nutrients
func (pc *ProductController) GetProductNutrients(c *gin.Context) {
	product, err := pc.Products.GetProduct(c.Param("barcode"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	nutrients, err := pc.Products.GetProductNutrients(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": product.ID, "nutrients": nutrients})
}
