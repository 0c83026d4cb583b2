package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/models"
	"github.com/sehatku/sehatku-api/utils"
	"gorm.io/gorm"
)

type ArticleController struct {
	DB      *gorm.DB
	Storage utils.ImageStore
}

func (ac *ArticleController) CreateArticle(ctx *gin.Context) {
	var article models.Article
	if err := ctx.ShouldBindJSON(&article); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	if article.Slug == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "slug is required")
		return
	}
	applyArticleFallbacks(&article)
	if article.Published && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := ac.DB.Create(&article).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create article", err)
		return
	}

	ctx.JSON(http.StatusCreated, article)
}

func (ac *ArticleController) UpdateArticle(ctx *gin.Context) {
	var existing models.Article
	if err := ac.DB.First(&existing, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Article not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch article", err)
		}
		return
	}

	var article models.Article
	if err := ctx.ShouldBindJSON(&article); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}
	applyArticleFallbacks(&article)
	article.ID = existing.ID
	if article.Published && article.PublishedAt == nil {
		if existing.PublishedAt != nil {
			article.PublishedAt = existing.PublishedAt
		} else {
			now := time.Now()
			article.PublishedAt = &now
		}
	}

	if err := ac.DB.Model(&existing).Select("*").Omit("id", "created_at").Updates(article).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update article", err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

func (ac *ArticleController) DeleteArticle(ctx *gin.Context) {
	if result := ac.DB.Delete(&models.Article{}, "id = ?", ctx.Param("id")); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete article", result.Error)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Article deleted successfully."})
}

func (ac *ArticleController) GetArticles(ctx *gin.Context) {
	page, limit, offset := paginationParams(ctx, 10)

	query := ac.DB.Where("published = ?", true)
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var articles []models.Article
	result := query.Order("published_at desc").Limit(limit).Offset(offset).Find(&articles)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch articles", result.Error)
		return
	}

	var count int64
	ac.DB.Model(&models.Article{}).Where("published = ?", true).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"metadata": gin.H{"total": count, "page": page, "limit": limit},
	})
}

func (ac *ArticleController) GetArticleBySlug(ctx *gin.Context) {
	var article models.Article
	result := ac.DB.First(&article, "slug = ? AND published = ?", ctx.Param("slug"), true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Article not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve article", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, article)
}

func (ac *ArticleController) UploadArticleImage(ctx *gin.Context) {
	uploadEntityImage(ctx, ac.DB, ac.Storage, "articles", &models.Article{})
}

func applyArticleFallbacks(article *models.Article) {
	article.TitleEN = utils.FallbackEN(article.TitleID, article.TitleEN)
	article.ExcerptEN = utils.FallbackEN(article.ExcerptID, article.ExcerptEN)
	article.ContentEN = utils.FallbackEN(article.ContentID, article.ContentEN)
}
