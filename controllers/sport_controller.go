// File: /controllers/sport_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sportmate-api/models"
)

type SportController struct {
	db *gorm.DB
}

func NewSportController(db *gorm.DB) *SportController {
	return &SportController{db: db}
}

// GetSports lists the fixed sport catalog.
func (sc *SportController) GetSports(c *gin.Context) {
	var sports []models.Sport
	if err := sc.db.Order("id ASC").Find(&sports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sports": sports})
}
