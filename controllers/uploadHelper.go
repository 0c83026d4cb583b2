package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/utils"
	"gorm.io/gorm"
)

// uploadEntityImage handles the shared multipart image flow for back-office
// content: validate the target row exists, push the file to the object
// store, persist the public URL on the row's image column.
func uploadEntityImage(ctx *gin.Context, db *gorm.DB, storage utils.ImageStore, prefix string, entity any) {
	uploadEntityImageColumn(ctx, db, storage, prefix, entity, "image_url")
}

func uploadEntityImageColumn(ctx *gin.Context, db *gorm.DB, storage utils.ImageStore, prefix string, entity any, column string) {
	if storage == nil {
		respondWithError(ctx, http.StatusInternalServerError, "Image storage is not configured", nil)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	id := ctx.PostForm("id")
	if id == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing id", nil)
		return
	}

	if err := db.First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Record not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate record", err)
		}
		return
	}

	url, err := storage.UploadImage(ctx.Request.Context(), file, prefix)
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	if err := db.Model(entity).Update(column, url).Error; err != nil {
		log.Printf("Error saving image url to database: %v", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save image", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "File uploaded", "url": url})
}
