package dbmodels

import (
	"time"

	"github.com/lib/pq"

	"jobportal-backend/models"
)

type Vacancy struct {
	BaseModel
	PositionTitle     string `gorm:"type:varchar(255)"`
	PlaceOfAssignment string `gorm:"type:varchar(255)"`
	SalaryGrade       int
	MonthlySalary     int
	EmploymentType    models.EmploymentType `gorm:"type:varchar(50)"`
	Education         string
	Experience        string
	Training          string
	Eligibility       string
	Slots             int
	ApplicationDeadline time.Time
	RequiredDocuments   pq.StringArray `gorm:"type:text[]"`
	Status              models.VacancyStatus `gorm:"type:varchar(50)"`
	CreatedByID         string               `gorm:"type:varchar(36)"`
	CreatedBy           *Account             `gorm:"foreignKey:CreatedByID"`
}

// RequiredDocTypes returns the stored tags as typed document types.
func (v Vacancy) RequiredDocTypes() []models.DocumentType {
	result := make([]models.DocumentType, 0, len(v.RequiredDocuments))
	for _, tag := range v.RequiredDocuments {
		result = append(result, models.DocumentType(tag))
	}
	return result
}

// IsOpen is a wall-clock check done at read time, it is not enforced by the lifecycle status.
func (v Vacancy) IsOpen(now time.Time) bool {
	return v.Status == models.VacancyStatusPublished && now.Before(v.ApplicationDeadline)
}
