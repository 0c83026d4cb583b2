package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/utils"
	"gorm.io/gorm"
)

type PartnerController struct {
	DB      *gorm.DB
	Storage utils.ImageStore
}

func (pc *PartnerController) CreatePartner(ctx *gin.Context) {
	var partner models.Partner
	if err := ctx.ShouldBindJSON(&partner); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	partner.DescriptionEN = utils.FallbackEN(partner.DescriptionID, partner.DescriptionEN)

	if err := pc.DB.Create(&partner).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create partner", err)
		return
	}

	ctx.JSON(http.StatusCreated, partner)
}

func (pc *PartnerController) UpdatePartner(ctx *gin.Context) {
	var existing models.Partner
	if err := pc.DB.First(&existing, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Partner not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch partner", err)
		}
		return
	}

	var partner models.Partner
	if err := ctx.ShouldBindJSON(&partner); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	partner.DescriptionEN = utils.FallbackEN(partner.DescriptionID, partner.DescriptionEN)
	partner.ID = existing.ID

	if err := pc.DB.Model(&existing).Select("*").Omit("id", "created_at").Updates(partner).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update partner", err)
		return
	}

	ctx.JSON(http.StatusOK, partner)
}

func (pc *PartnerController) DeletePartner(ctx *gin.Context) {
	if result := pc.DB.Delete(&models.Partner{}, "id = ?", ctx.Param("id")); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete partner", result.Error)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Partner deleted successfully."})
}

func (pc *PartnerController) GetPartners(ctx *gin.Context) {
	var partners []models.Partner
	result := pc.DB.Order("display_order asc").Find(&partners)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch partners", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (pc *PartnerController) UploadPartnerLogo(ctx *gin.Context) {
	uploadEntityImageColumn(ctx, pc.DB, pc.Storage, "partners", &models.Partner{}, "logo_url")
}
