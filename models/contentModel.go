package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;size:191"`
	TitleID     string     `json:"titleId" binding:"required"`
	TitleEN     string     `json:"titleEn"`
	ExcerptID   string     `json:"excerptId"`
	ExcerptEN   string     `json:"excerptEn"`
	ContentID   string     `json:"contentId" gorm:"type:text"`
	ContentEN   string     `json:"contentEn" gorm:"type:text"`
	Category    string     `json:"category" gorm:"index"`
	ImageURL    string     `json:"imageUrl"`
	Published   bool       `json:"published" gorm:"index"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type Doctor struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" binding:"required"`
	SpecialtyID string    `json:"specialtyId"`
	SpecialtyEN string    `json:"specialtyEn"`
	BioID       string    `json:"bioId" gorm:"type:text"`
	BioEN       string    `json:"bioEn" gorm:"type:text"`
	PhotoURL    string    `json:"photoUrl"`
	IsActive    bool      `json:"isActive" gorm:"index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

type Webinar struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	TitleID         string    `json:"titleId" binding:"required"`
	TitleEN         string    `json:"titleEn"`
	DescriptionID   string    `json:"descriptionId" gorm:"type:text"`
	DescriptionEN   string    `json:"descriptionEn" gorm:"type:text"`
	Speaker         string    `json:"speaker"`
	StartsAt        time.Time `json:"startsAt"`
	RegistrationURL string    `json:"registrationUrl"`
	ImageURL        string    `json:"imageUrl"`
	IsActive        bool      `json:"isActive" gorm:"index"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (w *Webinar) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

type Partner struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	Name          string    `json:"name" binding:"required"`
	DescriptionID string    `json:"descriptionId"`
	DescriptionEN string    `json:"descriptionEn"`
	WebsiteURL    string    `json:"websiteUrl"`
	LogoURL       string    `json:"logoUrl"`
	DisplayOrder  int       `json:"displayOrder" gorm:"index"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Partner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
