package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/utils"
	"gorm.io/gorm"
)

type WebinarController struct {
	DB      *gorm.DB
	Storage utils.ImageStore
}

func (wc *WebinarController) CreateWebinar(ctx *gin.Context) {
	var webinar models.Webinar
	if err := ctx.ShouldBindJSON(&webinar); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	applyWebinarFallbacks(&webinar)

	if err := wc.DB.Create(&webinar).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create webinar", err)
		return
	}

	ctx.JSON(http.StatusCreated, webinar)
}

func (wc *WebinarController) UpdateWebinar(ctx *gin.Context) {
	var existing models.Webinar
	if err := wc.DB.First(&existing, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Webinar not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch webinar", err)
		}
		return
	}

	var webinar models.Webinar
	if err := ctx.ShouldBindJSON(&webinar); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	applyWebinarFallbacks(&webinar)
	webinar.ID = existing.ID

	if err := wc.DB.Model(&existing).Select("*").Omit("id", "created_at").Updates(webinar).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update webinar", err)
		return
	}

	ctx.JSON(http.StatusOK, webinar)
}

func (wc *WebinarController) DeleteWebinar(ctx *gin.Context) {
	if result := wc.DB.Delete(&models.Webinar{}, "id = ?", ctx.Param("id")); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete webinar", result.Error)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Webinar deleted successfully."})
}

// GetWebinars lists active webinars, soonest start first.
func (wc *WebinarController) GetWebinars(ctx *gin.Context) {
	var webinars []models.Webinar
	result := wc.DB.Where("is_active = ?", true).
		Order("starts_at asc").
		Find(&webinars)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch webinars", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"webinars": webinars})
}

func (wc *WebinarController) UploadWebinarImage(ctx *gin.Context) {
	uploadEntityImage(ctx, wc.DB, wc.Storage, "webinars", &models.Webinar{})
}

func applyWebinarFallbacks(webinar *models.Webinar) {
	webinar.TitleEN = utils.FallbackEN(webinar.TitleID, webinar.TitleEN)
	webinar.DescriptionEN = utils.FallbackEN(webinar.DescriptionID, webinar.DescriptionEN)
}
