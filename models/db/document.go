package dbmodels

import (
	"jobportal-backend/models"
)

// Document is an applicant-owned file record. One applicant may hold several
// documents of the same type.
type Document struct {
	BaseModel
	UserID       string              `gorm:"type:varchar(36);index"`
	User         *Account            `gorm:"foreignKey:UserID"`
	DocumentType models.DocumentType `gorm:"type:varchar(50)"`
	FileName     string              `gorm:"type:varchar(255)"`
	FilePath     string              `gorm:"type:varchar(512)"`
	FileSize     int64
	MimeType     string `gorm:"type:varchar(100)"`
}
