package gateway

import (
	"errors"
	"net/http"

	"github.com/example/homeli/pkg/models"
	"github.com/example/homeli/pkg/profile"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (g *Gateway) profileError(c *gin.Context, action string, err error) {
	if errors.Is(err, profile.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Entry not found"})
		return
	}
	g.logger.Error("Profile operation failed", zap.String("action", action), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to " + action})
}

// Addresses

func (g *Gateway) listAddresses(c *gin.Context) {
	list, err := g.profile.Addresses(c.Request.Context(), c.Param("userId"))
	if err != nil {
		g.profileError(c, "fetch addresses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) addAddress(c *gin.Context) {
	var addr models.Address
	if err := c.BindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	list, err := g.profile.AddAddress(c.Request.Context(), c.Param("userId"), addr)
	if err != nil {
		g.profileError(c, "add address", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) updateAddress(c *gin.Context) {
	var upd profile.AddressUpdate
	if err := c.BindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	list, err := g.profile.UpdateAddress(c.Request.Context(), c.Param("userId"), c.Param("id"), upd)
	if err != nil {
		g.profileError(c, "update address", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) deleteAddress(c *gin.Context) {
	list, err := g.profile.DeleteAddress(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		g.profileError(c, "delete address", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) setDefaultAddress(c *gin.Context) {
	list, err := g.profile.SetDefaultAddress(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		g.profileError(c, "set default address", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// Favorites

func (g *Gateway) listFavorites(c *gin.Context) {
	list, err := g.profile.Favorites(c.Request.Context(), c.Param("userId"))
	if err != nil {
		g.profileError(c, "fetch favorites", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) toggleFavorite(c *gin.Context) {
	var item models.FavoriteItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	list, isFavorite, err := g.profile.ToggleFavorite(c.Request.Context(), c.Param("userId"), item)
	if err != nil {
		g.profileError(c, "toggle favorite", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "isFavorite": isFavorite})
}

// Notifications

func (g *Gateway) listNotifications(c *gin.Context) {
	userID := c.Param("userId")
	list, err := g.profile.Notifications(c.Request.Context(), userID)
	if err != nil {
		g.profileError(c, "fetch notifications", err)
		return
	}

	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "unreadCount": unread})
}

func (g *Gateway) addNotification(c *gin.Context) {
	var n models.Notification
	if err := c.BindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	list, err := g.profile.AddNotification(c.Request.Context(), c.Param("userId"), n)
	if err != nil {
		g.profileError(c, "add notification", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) markNotificationRead(c *gin.Context) {
	list, err := g.profile.MarkNotificationRead(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		g.profileError(c, "mark notification read", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) markAllNotificationsRead(c *gin.Context) {
	list, err := g.profile.MarkAllNotificationsRead(c.Request.Context(), c.Param("userId"))
	if err != nil {
		g.profileError(c, "mark notifications read", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) clearNotification(c *gin.Context) {
	list, err := g.profile.ClearNotification(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		g.profileError(c, "clear notification", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) clearAllNotifications(c *gin.Context) {
	if err := g.profile.ClearAllNotifications(c.Request.Context(), c.Param("userId")); err != nil {
		g.profileError(c, "clear notifications", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": []models.Notification{}})
}

// Saved cards

func (g *Gateway) listCards(c *gin.Context) {
	list, err := g.profile.Cards(c.Request.Context(), c.Param("userId"))
	if err != nil {
		g.profileError(c, "fetch cards", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) addCard(c *gin.Context) {
	var card models.SavedCard
	if err := c.BindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	list, err := g.profile.AddCard(c.Request.Context(), c.Param("userId"), card)
	if err != nil {
		g.profileError(c, "add card", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) deleteCard(c *gin.Context) {
	list, err := g.profile.DeleteCard(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		g.profileError(c, "delete card", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) setDefaultCard(c *gin.Context) {
	list, err := g.profile.SetDefaultCard(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		g.profileError(c, "set default card", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// Saved UPI handles

func (g *Gateway) listUPIs(c *gin.Context) {
	list, err := g.profile.UPIs(c.Request.Context(), c.Param("userId"))
	if err != nil {
		g.profileError(c, "fetch UPI handles", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) addUPI(c *gin.Context) {
	var upi models.SavedUPI
	if err := c.BindJSON(&upi); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	list, err := g.profile.AddUPI(c.Request.Context(), c.Param("userId"), upi)
	if err != nil {
		g.profileError(c, "add UPI", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) deleteUPI(c *gin.Context) {
	list, err := g.profile.DeleteUPI(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		g.profileError(c, "delete UPI", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func (g *Gateway) setDefaultUPI(c *gin.Context) {
	list, err := g.profile.SetDefaultUPI(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		g.profileError(c, "set default UPI", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}
