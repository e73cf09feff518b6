package gateway

import (
	"errors"
	"net/http"

	"github.com/example/homeli/pkg/cart"
	"github.com/example/homeli/pkg/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (g *Gateway) getCart(c *gin.Context) {
	userID := c.Param("userId")

	result, err := g.carts.Get(c.Request.Context(), userID)
	if err != nil {
		g.logger.Error("Error fetching cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

type addToCartRequest struct {
	UserID     string  `json:"userId"`
	FoodItemID string  `json:"foodItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}

func (g *Gateway) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := g.carts.AddItem(c.Request.Context(), req.UserID, models.CartItem{
		FoodItemID: req.FoodItemID,
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
	})
	if err != nil {
		g.logger.Error("Error adding to cart", zap.String("user_id", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to add to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"message": "Item added to cart",
	})
}

type updateCartRequest struct {
	UserID     string `json:"userId"`
	FoodItemID string `json:"foodItemId"`
	Quantity   int    `json:"quantity"`
}

func (g *Gateway) updateCartQuantity(c *gin.Context) {
	var req updateCartRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := g.carts.SetQuantity(c.Request.Context(), req.UserID, req.FoodItemID, req.Quantity)
	if errors.Is(err, cart.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart not found"})
		return
	}
	if err != nil {
		g.logger.Error("Error updating cart", zap.String("user_id", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

func (g *Gateway) removeFromCart(c *gin.Context) {
	userID := c.Param("userId")
	foodItemID := c.Param("foodItemId")

	result, err := g.carts.RemoveItem(c.Request.Context(), userID, foodItemID)
	if errors.Is(err, cart.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart not found"})
		return
	}
	if err != nil {
		g.logger.Error("Error removing item", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to remove item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// clearCart succeeds even when no cart exists for the user.
func (g *Gateway) clearCart(c *gin.Context) {
	userID := c.Param("userId")

	result, err := g.carts.Clear(c.Request.Context(), userID)
	if err != nil {
		g.logger.Error("Error clearing cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared successfully",
		"data": gin.H{
			"items":       result.Items,
			"totalAmount": result.TotalAmount,
		},
	})
}
