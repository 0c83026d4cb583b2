package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sehatku/sehatku-api/middlewares"
	"github.com/sehatku/sehatku-api/models"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

// fulfillment transitions an admin may apply by hand; payment-driven states
// (paid, cancelled) belong to the webhook handler.
var allowedStatusTransitions = map[string]string{
	models.OrderStatusPaid:    models.OrderStatusShipped,
	models.OrderStatusShipped: models.OrderStatusCompleted,
}

func (oc *OrderController) GetMyOrders(ctx *gin.Context) {
	userID, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.Order
	result := oc.DB.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at " + sortParam(ctx)).
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func (oc *OrderController) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderId")

	var order models.Order
	if err := oc.DB.Preload("OrderItems").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	userID, _ := middlewares.UserID(ctx)
	if order.UserID != userID && !isAdmin(ctx) {
		sendErrorResponse(ctx, http.StatusForbidden, "You do not have access to this order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

func (oc *OrderController) GetOrders(ctx *gin.Context) {
	page, limit, offset := paginationParams(ctx, 15)

	query := oc.DB.Preload("OrderItems")
	if search := ctx.Query("search"); search != "" {
		query = query.Where("id LIKE ?", "%"+search+"%")
	}
	query = query.Order("created_at " + sortParam(ctx))

	var orders []models.Order
	if result := query.Limit(limit).Offset(offset).Find(&orders); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := oc.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("id LIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	totalPages := math.Ceil(float64(count) / float64(limit))
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderID := ctx.Param("orderId")
	var order models.Order
	if err := oc.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	if allowedStatusTransitions[order.Status] != body.Status {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cannot move order from "+order.Status+" to "+body.Status)
		return
	}

	if err := oc.DB.Model(&order).Update("status", body.Status).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

func (oc *OrderController) GetOrderPayments(ctx *gin.Context) {
	orderID := ctx.Param("orderId")

	var payments []models.Payment
	if result := oc.DB.Where("order_id = ?", orderID).Order("created_at desc").Find(&payments); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch payments.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"payments": payments})
}

func isAdmin(ctx *gin.Context) bool {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, ok := claims["role"].(string)
	return ok && role == "admin"
}
