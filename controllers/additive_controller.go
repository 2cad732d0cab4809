package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/utils"
)

type AnalyzeAdditivesInput struct {
	Ingredients string `json:"ingredients" binding:"required"`
}

// POST /additives/analyze  { "ingredients": "sugar, citric acid, ..." }
//
// Matches an ingredient list against the known additive table. Purely
// local, no provider calls.
func AnalyzeAdditives(c *gin.Context) {
	var input AnalyzeAdditivesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	additives := utils.DetectAdditives(input.Ingredients)
	c.JSON(http.StatusOK, gin.H{
		"additives": additives,
		"count":     len(additives),
	})
}
