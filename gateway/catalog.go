package gateway

import (
	"net/http"

	"github.com/example/homeli/pkg/catalog"
	"github.com/example/homeli/pkg/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (g *Gateway) listFoodItems(c *gin.Context) {
	q := catalog.Query{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	items, err := g.catalog.List(c.Request.Context(), q)
	if err != nil {
		g.logger.Error("Error fetching food items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch food items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

// seedFoodItems replaces the whole catalog with the built-in sample menu.
func (g *Gateway) seedFoodItems(c *gin.Context) {
	menu := models.SampleMenu()
	if err := g.catalog.ReplaceAll(c.Request.Context(), menu); err != nil {
		g.logger.Error("Error seeding food items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to seed food items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Food items seeded successfully",
		"count":   len(menu),
	})
}
