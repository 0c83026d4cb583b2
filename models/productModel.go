package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product carries parallel Indonesian/English columns. The English column is
// filled from the Indonesian one at write time when left blank, so reads never
// have to apply a fallback.
type Product struct {
	ID            string         `json:"id" gorm:"primaryKey;size:36"`
	TitleID       string         `json:"titleId" binding:"required"`
	TitleEN       string         `json:"titleEn"`
	DescriptionID string         `json:"descriptionId"`
	DescriptionEN string         `json:"descriptionEn"`
	Category      string         `json:"category" gorm:"index"`
	Price         int64          `json:"price" gorm:"check:price >= 0"`
	IsActive      bool           `json:"isActive" gorm:"index"`
	FeaturesID    datatypes.JSON `json:"featuresId"`
	FeaturesEN    datatypes.JSON `json:"featuresEn"`
	ImageURL      string         `json:"imageUrl"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
