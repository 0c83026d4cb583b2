package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/utils"
	"gorm.io/gorm"
)

type ProductController struct {
	DB      *gorm.DB
	Storage utils.ImageStore
}

func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	if product.Price < 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "price must not be negative")
		return
	}
	applyProductFallbacks(&product)

	if err := pc.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	var existing models.Product
	if err := pc.DB.First(&existing, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch product", err)
		}
		return
	}

	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	if product.Price < 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "price must not be negative")
		return
	}
	applyProductFallbacks(&product)
	product.ID = existing.ID

	if err := pc.DB.Model(&existing).Select("*").Omit("id", "created_at").Updates(product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	if result := pc.DB.Delete(&models.Product{}, "id = ?", ctx.Param("id")); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully."})
}

// GetProducts lists active products only; the back office reads everything
// through GetAllProducts.
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	page, limit, offset := paginationParams(ctx, 12)

	query := pc.DB.Where("is_active = ?", true)
	if search := ctx.Query("search"); search != "" {
		query = query.Where("title_id LIKE ? OR title_en LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if result := query.Limit(limit).Offset(offset).Find(&products); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	var count int64
	pc.DB.Model(&models.Product{}).Where("is_active = ?", true).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{"total": count, "page": page, "limit": limit},
	})
}

func (pc *ProductController) GetAllProducts(ctx *gin.Context) {
	page, limit, offset := paginationParams(ctx, 15)

	var products []models.Product
	if result := pc.DB.Limit(limit).Offset(offset).Order("created_at desc").Find(&products); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	var count int64
	pc.DB.Model(&models.Product{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{"total": count, "page": page, "limit": limit},
	})
}

func (pc *ProductController) GetProduct(ctx *gin.Context) {
	var product models.Product
	result := pc.DB.First(&product, "id = ?", ctx.Param("id"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (pc *ProductController) UploadProductImage(ctx *gin.Context) {
	if pc.Storage == nil {
		respondWithError(ctx, http.StatusInternalServerError, "Image storage is not configured", nil)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	productID := ctx.PostForm("productId")
	if productID == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing productId", nil)
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	url, err := pc.Storage.UploadImage(ctx.Request.Context(), file, "products")
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	if err := pc.DB.Model(&product).Update("image_url", url).Error; err != nil {
		log.Printf("Error saving image url to database: %v", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save image", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "File uploaded", "url": url})
}

func applyProductFallbacks(product *models.Product) {
	product.TitleEN = utils.FallbackEN(product.TitleID, product.TitleEN)
	product.DescriptionEN = utils.FallbackEN(product.DescriptionID, product.DescriptionEN)
	if len(product.FeaturesEN) == 0 && len(product.FeaturesID) > 0 {
		product.FeaturesEN = product.FeaturesID
	}
}
