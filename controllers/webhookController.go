package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/paygate"
	"github.com/sehatku/sehatku-api/utils"
	"gorm.io/gorm"
)

type WebhookController struct {
	DB       *gorm.DB
	Verifier paygate.CallbackVerifier
	Notifier utils.Notifier
}

type WebhookPayload struct {
	ID             string `json:"id"`
	ExternalID     string `json:"external_id"`
	Status         string `json:"status"`
	Amount         int64  `json:"amount"`
	PaidAmount     int64  `json:"paid_amount"`
	PaidAt         string `json:"paid_at"`
	PayerEmail     string `json:"payer_email"`
	PaymentMethod  string `json:"payment_method"`
	PaymentChannel string `json:"payment_channel"`
}

// HandlePaymentWebhook reconciles an asynchronous invoice-status callback.
// The callback token is checked before the body is touched; a bad token is
// the only condition that rejects the call. Every processing failure after
// that is logged and acknowledged with 200, otherwise the gateway keeps
// redelivering the same event.
func (wc *WebhookController) HandlePaymentWebhook(ctx *gin.Context) {
	if !wc.Verifier.VerifyCallbackToken(ctx.GetHeader("x-callback-token")) {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Invalid callback token")
		return
	}

	var payload WebhookPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		log.Printf("Webhook payload binding error: %v", err)
		acknowledge(ctx)
		return
	}

	status, recognized := paygate.ParseCallbackStatus(payload.Status)
	if !recognized {
		log.Printf("Webhook for %s carries unknown status %q, ignoring", payload.ExternalID, payload.Status)
		acknowledge(ctx)
		return
	}

	// Payments are resolved by the gateway correlation string directly. An
	// external_id this platform never issued matches nothing and the event
	// is dropped.
	var payment models.Payment
	err := wc.DB.Where("external_id = ?", payload.ExternalID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Webhook for unknown external_id %s, no rows updated", payload.ExternalID)
		} else {
			log.Printf("Webhook payment lookup failed for %s: %v", payload.ExternalID, err)
		}
		acknowledge(ctx)
		return
	}

	switch status {
	case paygate.StatusPaid, paygate.StatusSettled:
		wc.applyPaid(payment, payload)
	case paygate.StatusExpired:
		wc.applyTransition(payment, models.PaymentStatusExpired, models.OrderStatusCancelled)
	case paygate.StatusFailed:
		wc.applyTransition(payment, models.PaymentStatusFailed, "")
	default:
		// Recognized but nothing to do (e.g. PENDING).
		log.Printf("Webhook for %s with status %s, no action taken", payload.ExternalID, status)
	}

	acknowledge(ctx)
}

func (wc *WebhookController) applyPaid(payment models.Payment, payload WebhookPayload) {
	paidAt := time.Now()
	if payload.PaidAt != "" {
		if ts, err := time.Parse(time.RFC3339, payload.PaidAt); err == nil {
			paidAt = ts
		} else {
			log.Printf("Webhook for %s has unparseable paid_at %q, using current time", payload.ExternalID, payload.PaidAt)
		}
	}

	err := wc.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status":          models.PaymentStatusPaid,
			"paid_at":         paidAt,
			"payer_email":     payload.PayerEmail,
			"payment_method":  payload.PaymentMethod,
			"payment_channel": payload.PaymentChannel,
		}
		if err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", payment.OrderID).
			Update("status", models.OrderStatusPaid).Error
	})
	if err != nil {
		log.Printf("Failed to apply paid transition for %s: %v", payload.ExternalID, err)
		return
	}

	var order models.Order
	if err := wc.DB.First(&order, "id = ?", payment.OrderID).Error; err == nil {
		payment.Status = models.PaymentStatusPaid
		payment.PaidAt = &paidAt
		if err := wc.Notifier.OrderPaid(order, payment); err != nil {
			log.Printf("Fulfillment notification for order %s failed: %v", order.ID, err)
		}
	}
}

// applyTransition updates the payment and, when orderStatus is non-empty,
// the owning order inside one transaction so the two tables cannot diverge
// under racing deliveries.
func (wc *WebhookController) applyTransition(payment models.Payment, paymentStatus, orderStatus string) {
	err := wc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).
			Update("status", paymentStatus).Error; err != nil {
			return err
		}
		if orderStatus == "" {
			return nil
		}
		return tx.Model(&models.Order{}).Where("id = ?", payment.OrderID).
			Update("status", orderStatus).Error
	})
	if err != nil {
		log.Printf("Failed to apply %s transition for payment %s: %v", paymentStatus, payment.ID, err)
	}
}

func acknowledge(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "ok"})
}
