package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/middlewares"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/paygate"
	"gorm.io/gorm"
)

type CheckoutController struct {
	DB          *gorm.DB
	Gateway     paygate.InvoiceCreator
	FrontendURL string
}

type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CheckoutRequest struct {
	Items           []CheckoutItem `json:"items"`
	ShippingAddress string         `json:"shipping_address"`
	ShippingName    string         `json:"shipping_name"`
	ShippingPhone   string         `json:"shipping_phone"`
	Notes           string         `json:"notes"`
}

// CreateInvoice validates the cart, persists the order and its items in one
// transaction, requests a hosted invoice from the gateway and records the
// payment. The gateway call is never rolled back: once an invoice exists it
// has been issued to the customer. Submitting the same cart twice creates two
// independent orders; there is no idempotency key.
func (cc *CheckoutController) CreateInvoice(ctx *gin.Context) {
	userID, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	if msg, ok := validateCheckout(req); !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, msg)
		return
	}

	// Every requested product must exist and be visible. Missing or inactive
	// products fail the whole cart; there are no partial orders.
	requested := distinctProductIDs(req.Items)
	var products []models.Product
	if err := cc.DB.Where("id IN ? AND is_active = ?", requested, true).Find(&products).Error; err != nil {
		log.Printf("Product lookup error: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if len(products) != len(requested) {
		sendErrorResponse(ctx, http.StatusBadRequest, "One or more products are unavailable")
		return
	}

	priceByID := make(map[string]models.Product, len(products))
	for _, p := range products {
		priceByID[p.ID] = p
	}

	var total int64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product := priceByID[line.ProductID]
		total += product.Price * int64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID:    product.ID,
			ProductTitle: product.TitleID,
			Quantity:     line.Quantity,
			UnitPrice:    product.Price,
		})
	}
	if total <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order total must be greater than zero")
		return
	}

	order := models.Order{
		UserID:          userID,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		ShippingName:    req.ShippingName,
		ShippingPhone:   req.ShippingPhone,
		Notes:           req.Notes,
		Status:          models.OrderStatusPending,
	}

	tx := cc.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to create order: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}
	for i := range items {
		items[i].OrderID = order.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			log.Printf("Failed to create order items for order %s: %v", order.ID, err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to save order: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	externalID := "ORDER-" + order.ID
	invoiceItems := make([]paygate.InvoiceItem, 0, len(items))
	for _, item := range items {
		invoiceItems = append(invoiceItems, paygate.InvoiceItem{
			Name:     item.ProductTitle,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}

	invoice, err := cc.Gateway.CreateInvoice(ctx.Request.Context(), paygate.CreateInvoiceRequest{
		ExternalID:         externalID,
		Amount:             total,
		Description:        fmt.Sprintf("Payment for order %s", order.ID),
		CustomerName:       req.ShippingName,
		CustomerPhone:      req.ShippingPhone,
		Items:              invoiceItems,
		SuccessRedirectURL: cc.FrontendURL + "/payment/success?order_id=" + order.ID,
		FailureRedirectURL: cc.FrontendURL + "/payment/failed?order_id=" + order.ID,
	})
	if err != nil {
		// The order and its items already exist. Mark the order instead of
		// deleting it so the failure is visible to the back office.
		log.Printf("Invoice creation failed for order %s: %v", order.ID, err)
		if dbErr := cc.DB.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusInvoiceFailed).Error; dbErr != nil {
			log.Printf("Failed to mark order %s as invoice_failed: %v", order.ID, dbErr)
		}
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create payment invoice")
		return
	}

	payment := models.Payment{
		UserID:     userID,
		OrderID:    order.ID,
		Amount:     total,
		Status:     models.PaymentStatusPending,
		InvoiceID:  invoice.ID,
		InvoiceURL: invoice.InvoiceURL,
		ExternalID: externalID,
	}
	if err := cc.DB.Create(&payment).Error; err != nil {
		// The invoice is already issued to the customer and cannot be
		// withdrawn, so the checkout still succeeds without a local payment
		// row.
		log.Printf("Failed to save payment for order %s (invoice %s): %v", order.ID, invoice.ID, err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":     true,
		"order_id":    order.ID,
		"payment_id":  payment.ID,
		"invoice_url": invoice.InvoiceURL,
		"invoice_id":  invoice.ID,
		"amount":      total,
		"expires_at":  invoice.ExpiryDate,
	})
}

func validateCheckout(req CheckoutRequest) (string, bool) {
	if len(req.Items) == 0 {
		return "items must not be empty", false
	}
	for _, item := range req.Items {
		if item.ProductID == "" {
			return "product_id is required for every item", false
		}
		if item.Quantity <= 0 {
			return "quantity must be a positive integer", false
		}
	}
	if req.ShippingAddress == "" {
		return "shipping_address is required", false
	}
	if req.ShippingName == "" {
		return "shipping_name is required", false
	}
	if req.ShippingPhone == "" {
		return "shipping_phone is required", false
	}
	return "", true
}

func distinctProductIDs(items []CheckoutItem) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}
