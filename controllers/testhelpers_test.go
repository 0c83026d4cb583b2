package controllers_test

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sehatku/sehatku-api/initializers"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/paygate"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, initializers.SyncDatabase(db))
	return db
}

func mintToken(t *testing.T, userID, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   userID + "@example.com",
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

type fakeGateway struct {
	calls   []paygate.CreateInvoiceRequest
	invoice *paygate.Invoice
	err     error
}

func (f *fakeGateway) CreateInvoice(ctx context.Context, req paygate.CreateInvoiceRequest) (*paygate.Invoice, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	if f.invoice != nil {
		return f.invoice, nil
	}
	return &paygate.Invoice{
		ID:         "inv-" + req.ExternalID,
		InvoiceURL: "https://invoice.example.com/" + req.ExternalID,
		ExpiryDate: time.Now().Add(24 * time.Hour),
	}, nil
}

func seedProduct(t *testing.T, db *gorm.DB, id string, price int64, active bool) models.Product {
	t.Helper()

	product := models.Product{
		ID:       id,
		TitleID:  "Produk " + id,
		TitleEN:  "Product " + id,
		Category: "supplements",
		Price:    price,
		IsActive: active,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
