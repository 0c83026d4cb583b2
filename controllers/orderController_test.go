package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/controllers"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderServer(db *gorm.DB) *gin.Engine {
	server := gin.New()
	orders := &controllers.OrderController{DB: db}
	checkout := &controllers.CheckoutController{DB: db, Gateway: &fakeGateway{}, FrontendURL: "https://shop.example.com"}
	routes.CheckoutRoutes(server, checkout, orders, testJWTSecret)
	routes.AdminRoutes(server, routes.AdminControllers{
		Orders:   orders,
		Products: &controllers.ProductController{DB: db},
		Articles: &controllers.ArticleController{DB: db},
		Doctors:  &controllers.DoctorController{DB: db},
		Webinars: &controllers.WebinarController{DB: db},
		Partners: &controllers.PartnerController{DB: db},
	}, testJWTSecret)
	return server
}

func seedOrderWithStatus(t *testing.T, db *gorm.DB, userID, status string) models.Order {
	t.Helper()

	order := models.Order{
		UserID:          userID,
		TotalAmount:     150000,
		ShippingAddress: "Jl. Gatot Subroto No. 5, Bandung",
		ShippingName:    "Siti Aminah",
		ShippingPhone:   "+628999888777",
		Status:          status,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func doRequest(server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestGetMyOrders_OnlyOwnOrders(t *testing.T) {
	db := setupTestDB(t)
	server := newOrderServer(db)
	seedOrderWithStatus(t, db, "user-1", models.OrderStatusPending)
	seedOrderWithStatus(t, db, "user-1", models.OrderStatusPaid)
	seedOrderWithStatus(t, db, "user-2", models.OrderStatusPending)

	rec := doRequest(server, http.MethodGet, "/api/orders", mintToken(t, "user-1", "customer"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 2)
	for _, order := range resp.Orders {
		assert.Equal(t, "user-1", order.UserID)
	}
}

func TestGetOrder_OwnershipEnforced(t *testing.T) {
	db := setupTestDB(t)
	server := newOrderServer(db)
	order := seedOrderWithStatus(t, db, "user-1", models.OrderStatusPending)

	rec := doRequest(server, http.MethodGet, "/api/orders/"+order.ID, mintToken(t, "user-2", "customer"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(server, http.MethodGet, "/api/orders/"+order.ID, mintToken(t, "user-1", "customer"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOrders_RequiresAdminRole(t *testing.T) {
	db := setupTestDB(t)
	server := newOrderServer(db)

	rec := doRequest(server, http.MethodGet, "/api/admin/orders", mintToken(t, "user-1", "customer"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(server, http.MethodGet, "/api/admin/orders", mintToken(t, "admin-1", "admin"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateOrderStatus_Transitions(t *testing.T) {
	db := setupTestDB(t)
	server := newOrderServer(db)
	admin := mintToken(t, "admin-1", "admin")

	tests := []struct {
		name     string
		from     string
		to       string
		wantCode int
	}{
		{"paid to shipped", models.OrderStatusPaid, models.OrderStatusShipped, http.StatusOK},
		{"shipped to completed", models.OrderStatusShipped, models.OrderStatusCompleted, http.StatusOK},
		{"pending to shipped rejected", models.OrderStatusPending, models.OrderStatusShipped, http.StatusBadRequest},
		{"paid to completed rejected", models.OrderStatusPaid, models.OrderStatusCompleted, http.StatusBadRequest},
		{"cancelled to shipped rejected", models.OrderStatusCancelled, models.OrderStatusShipped, http.StatusBadRequest},
		{"paid to paid rejected", models.OrderStatusPaid, models.OrderStatusPaid, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := seedOrderWithStatus(t, db, "user-1", tc.from)

			rec := doRequest(server, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status", admin,
				gin.H{"status": tc.to})
			assert.Equal(t, tc.wantCode, rec.Code, rec.Body.String())

			var got models.Order
			require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
			if tc.wantCode == http.StatusOK {
				assert.Equal(t, tc.to, got.Status)
			} else {
				assert.Equal(t, tc.from, got.Status)
			}
		})
	}
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	server := newOrderServer(db)

	rec := doRequest(server, http.MethodPatch, "/api/admin/orders/missing/status",
		mintToken(t, "admin-1", "admin"), gin.H{"status": models.OrderStatusShipped})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderPayments(t *testing.T) {
	db := setupTestDB(t)
	server := newOrderServer(db)
	order := seedOrderWithStatus(t, db, "user-1", models.OrderStatusPaid)
	require.NoError(t, db.Create(&models.Payment{
		UserID:     "user-1",
		OrderID:    order.ID,
		Amount:     order.TotalAmount,
		Status:     models.PaymentStatusPaid,
		ExternalID: "ORDER-" + order.ID,
	}).Error)

	rec := doRequest(server, http.MethodGet, "/api/admin/orders/"+order.ID+"/payments",
		mintToken(t, "admin-1", "admin"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Payments []models.Payment `json:"payments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, order.ID, resp.Payments[0].OrderID)
}
