package dbmodels

import (
	"time"

	"jobportal-backend/models"
)

type Application struct {
	BaseModel
	ReferenceNumber string   `gorm:"type:varchar(50);uniqueIndex"`
	UserID          string   `gorm:"type:varchar(36);uniqueIndex:idx_user_vacancy"`
	User            *Account `gorm:"foreignKey:UserID"`
	VacancyID       string   `gorm:"type:varchar(36);uniqueIndex:idx_user_vacancy"`
	Vacancy         *Vacancy
	Status          models.ApplicationStatus `gorm:"type:varchar(50);default:submitted"`
	SubmittedAt     time.Time
	Documents       []ApplicationDocument `gorm:"foreignKey:ApplicationID"`
}

// ApplicationDocument links a submitted application to one of the applicant's
// documents. Ownership of the document is checked on submission.
type ApplicationDocument struct {
	ApplicationID string `gorm:"type:varchar(36);primaryKey"`
	DocumentID    string `gorm:"type:varchar(36);primaryKey"`
	Document      *Document
	CreatedAt     time.Time
}

// ApplicationSequence backs reference number generation, one counter row per
// year, bumped under a row lock inside the submission transaction.
type ApplicationSequence struct {
	Year   int `gorm:"primaryKey;autoIncrement:false"`
	LastNo int64
}
