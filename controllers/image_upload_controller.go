package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/utils"
)

type BarcodeImageUploadInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /uploads/barcode  { "image_base64": "data:image/png;base64,..." }
//
// Stores a client-captured barcode photo so failed scans can be
// reviewed later.
func UploadBarcodeImage(c *gin.Context) {
	var input BarcodeImageUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBarcodeImage(input.ImageBase64, "scan")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
