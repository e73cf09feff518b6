package gateway

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/example/homeli/pkg/models"
	"github.com/example/homeli/pkg/orders"
	"github.com/example/homeli/pkg/paysim"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createOrderRequest struct {
	UserID          string             `json:"userId"`
	CustomerName    string             `json:"customerName"`
	PhoneNumber     string             `json:"phoneNumber"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Pincode         string             `json:"pincode"`
	Items           []models.OrderItem `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	DeliveryCharge  *float64           `json:"deliveryCharge"`
	TotalAmount     float64            `json:"totalAmount"`
	PaymentMethod   string             `json:"paymentMethod"`
	PaymentStatus   string             `json:"paymentStatus"`
	OrderStatus     string             `json:"orderStatus"`
	UPIID           string             `json:"upiId"`
	CardLast4       string             `json:"cardLast4"`
}

func (g *Gateway) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	deliveryCharge := 40.0
	if req.DeliveryCharge != nil {
		deliveryCharge = *req.DeliveryCharge
	}

	draft := &models.Order{
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		DeliveryAddress: req.DeliveryAddress,
		Pincode:         req.Pincode,
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		DeliveryCharge:  deliveryCharge,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   req.PaymentStatus,
		OrderStatus:     req.OrderStatus,
		UPIID:           req.UPIID,
		CardLast4:       req.CardLast4,
	}

	order, err := g.orders.Create(c.Request.Context(), draft)
	if err != nil {
		g.logger.Error("Error creating order", zap.Error(err))
		var verr *orders.ValidationError
		message := "Failed to create order"
		if errors.As(err, &verr) {
			message = verr.Reason
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": message,
		})
		return
	}

	// Hand upi/card orders to the simulated gateway. COD needs no online
	// confirmation. Fire-and-forget: the settlement outlives this request.
	if g.simulator != nil && order.PaymentMethod != models.PaymentCOD {
		userID := order.UserID
		if userID == "" {
			userID = "guest"
		}
		g.simulator.Settle(&paysim.SettlePayment{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			UserID:      userID,
			Method:      order.PaymentMethod,
			UPIID:       order.UPIID,
			CardLast4:   order.CardLast4,
			Amount:      order.TotalAmount,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"order": gin.H{
			"orderId":               order.ID,
			"orderNumber":           order.OrderNumber,
			"totalAmount":           order.TotalAmount,
			"paymentMethod":         order.PaymentMethod,
			"orderStatus":           order.OrderStatus,
			"estimatedDeliveryTime": order.EstimatedDeliveryTime,
		},
	})
}

func (g *Gateway) updateOrderPayment(c *gin.Context) {
	orderID := c.Param("orderId")

	var patch orders.PaymentPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := g.orders.UpdatePayment(c.Request.Context(), orderID, patch)
	if errors.Is(err, orders.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if err != nil {
		g.logger.Error("Error updating payment", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update payment",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment updated", "order": order})
}

type updateStatusRequest struct {
	OrderStatus        string `json:"orderStatus"`
	CancellationReason string `json:"cancellationReason"`
}

func (g *Gateway) updateOrderStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var req updateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := g.orders.UpdateStatus(c.Request.Context(), orderID, req.OrderStatus, req.CancellationReason)
	if errors.Is(err, orders.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if err != nil {
		g.logger.Error("Error updating status", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated", "order": order})
}

type cancelOrderRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

func (g *Gateway) cancelOrder(c *gin.Context) {
	orderID := c.Param("orderId")

	var req cancelOrderRequest
	// The cancel body is optional.
	_ = c.ShouldBindJSON(&req)

	order, err := g.orders.Cancel(c.Request.Context(), orderID, req.CancellationReason)
	if errors.Is(err, orders.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if errors.Is(err, orders.ErrNotCancellable) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Order cannot be cancelled at this stage",
		})
		return
	}
	if err != nil {
		g.logger.Error("Error cancelling order", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to cancel order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order cancelled", "order": order})
}

func (g *Gateway) getOrder(c *gin.Context) {
	orderID := c.Param("orderId")

	order, err := g.orders.Get(c.Request.Context(), orderID)
	if errors.Is(err, orders.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if err != nil {
		g.logger.Error("Error getting order", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (g *Gateway) ordersByPhone(c *gin.Context) {
	phone := c.Param("phoneNumber")

	result, err := g.orders.ByPhone(c.Request.Context(), phone)
	if err != nil {
		g.logger.Error("Error fetching orders by phone", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(result), "orders": result})
}

func (g *Gateway) ordersByUser(c *gin.Context) {
	userID := c.Param("userId")

	result, err := g.orders.ByUser(c.Request.Context(), userID)
	if err != nil {
		g.logger.Error("Error fetching orders by user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(result), "orders": result})
}

func (g *Gateway) listOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	result, total, err := g.orders.List(c.Request.Context(), orders.ListQuery{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		g.logger.Error("Error fetching all orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(result),
		"total":   total,
		"page":    page,
		"orders":  result,
	})
}
