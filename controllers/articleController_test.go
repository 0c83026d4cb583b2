package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/controllers"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContentServer(db *gorm.DB) *gin.Engine {
	server := gin.New()
	articles := &controllers.ArticleController{DB: db}
	doctors := &controllers.DoctorController{DB: db}
	webinars := &controllers.WebinarController{DB: db}
	partners := &controllers.PartnerController{DB: db}
	routes.ContentRoutes(server, articles, doctors, webinars, partners)
	routes.AdminRoutes(server, routes.AdminControllers{
		Orders:   &controllers.OrderController{DB: db},
		Products: &controllers.ProductController{DB: db},
		Articles: articles,
		Doctors:  doctors,
		Webinars: webinars,
		Partners: partners,
	}, testJWTSecret)
	return server
}

func TestCreateArticle_BilingualFallbackAndPublishTimestamp(t *testing.T) {
	db := setupTestDB(t)
	server := newContentServer(db)
	admin := mintToken(t, "admin-1", "admin")

	rec := doRequest(server, http.MethodPost, "/api/admin/articles", admin, gin.H{
		"slug":      "tips-hidup-sehat",
		"titleId":   "Tips Hidup Sehat",
		"excerptId": "Ringkasan artikel",
		"contentId": "Isi artikel lengkap",
		"category":  "lifestyle",
		"published": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var article models.Article
	require.NoError(t, db.First(&article, "slug = ?", "tips-hidup-sehat").Error)
	assert.Equal(t, "Tips Hidup Sehat", article.TitleEN)
	assert.Equal(t, "Isi artikel lengkap", article.ContentEN)
	require.NotNil(t, article.PublishedAt)
}

func TestGetArticles_UnpublishedHidden(t *testing.T) {
	db := setupTestDB(t)
	server := newContentServer(db)
	require.NoError(t, db.Create(&models.Article{Slug: "draft", TitleID: "Draf", Published: false}).Error)
	require.NoError(t, db.Create(&models.Article{Slug: "live", TitleID: "Terbit", Published: true}).Error)

	rec := doRequest(server, http.MethodGet, "/api/articles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Articles []models.Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Articles, 1)
	assert.Equal(t, "live", resp.Articles[0].Slug)

	rec = doRequest(server, http.MethodGet, "/api/articles/draft", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(server, http.MethodGet, "/api/articles/live", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPartners_OrderedByDisplayOrder(t *testing.T) {
	db := setupTestDB(t)
	server := newContentServer(db)
	require.NoError(t, db.Create(&models.Partner{Name: "Klinik B", DisplayOrder: 2}).Error)
	require.NoError(t, db.Create(&models.Partner{Name: "Klinik A", DisplayOrder: 1}).Error)

	rec := doRequest(server, http.MethodGet, "/api/partners", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Partners []models.Partner `json:"partners"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Partners, 2)
	assert.Equal(t, "Klinik A", resp.Partners[0].Name)
}

func TestDoctors_OnlyActiveListed(t *testing.T) {
	db := setupTestDB(t)
	server := newContentServer(db)
	require.NoError(t, db.Create(&models.Doctor{Name: "dr. Ayu", SpecialtyID: "Umum", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Doctor{Name: "dr. Bagus", SpecialtyID: "Gigi", IsActive: false}).Error)

	rec := doRequest(server, http.MethodGet, "/api/doctors", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Doctors []models.Doctor `json:"doctors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Doctors, 1)
	assert.Equal(t, "dr. Ayu", resp.Doctors[0].Name)
}
