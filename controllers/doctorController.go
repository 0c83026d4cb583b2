package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/utils"
	"gorm.io/gorm"
)

type DoctorController struct {
	DB      *gorm.DB
	Storage utils.ImageStore
}

func (dc *DoctorController) CreateDoctor(ctx *gin.Context) {
	var doctor models.Doctor
	if err := ctx.ShouldBindJSON(&doctor); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	applyDoctorFallbacks(&doctor)

	if err := dc.DB.Create(&doctor).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create doctor", err)
		return
	}

	ctx.JSON(http.StatusCreated, doctor)
}

func (dc *DoctorController) UpdateDoctor(ctx *gin.Context) {
	var existing models.Doctor
	if err := dc.DB.First(&existing, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Doctor not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch doctor", err)
		}
		return
	}

	var doctor models.Doctor
	if err := ctx.ShouldBindJSON(&doctor); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	applyDoctorFallbacks(&doctor)
	doctor.ID = existing.ID

	if err := dc.DB.Model(&existing).Select("*").Omit("id", "created_at").Updates(doctor).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update doctor", err)
		return
	}

	ctx.JSON(http.StatusOK, doctor)
}

func (dc *DoctorController) DeleteDoctor(ctx *gin.Context) {
	if result := dc.DB.Delete(&models.Doctor{}, "id = ?", ctx.Param("id")); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete doctor", result.Error)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Doctor deleted successfully."})
}

func (dc *DoctorController) GetDoctors(ctx *gin.Context) {
	var doctors []models.Doctor
	result := dc.DB.Where("is_active = ?", true).Order("name asc").Find(&doctors)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch doctors", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (dc *DoctorController) UploadDoctorPhoto(ctx *gin.Context) {
	uploadEntityImageColumn(ctx, dc.DB, dc.Storage, "doctors", &models.Doctor{}, "photo_url")
}

func applyDoctorFallbacks(doctor *models.Doctor) {
	doctor.SpecialtyEN = utils.FallbackEN(doctor.SpecialtyID, doctor.SpecialtyEN)
	doctor.BioEN = utils.FallbackEN(doctor.BioID, doctor.BioEN)
}
