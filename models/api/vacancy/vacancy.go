package vacancyapimodels

import (
	"time"

	"github.com/pkg/errors"

	"jobportal-backend/models"
	apimodels "jobportal-backend/models/api"
	dbmodels "jobportal-backend/models/db"
)

type VacancyData struct {
	PositionTitle       string                `json:"position_title"`      // position title
	PlaceOfAssignment   string                `json:"place_of_assignment"` // office / place of assignment
	SalaryGrade         int                   `json:"salary_grade"`
	MonthlySalary       int                   `json:"monthly_salary"`
	EmploymentType      models.EmploymentType `json:"employment_type"`
	Education           string                `json:"education"`   // qualification: education
	Experience          string                `json:"experience"`  // qualification: work experience
	Training            string                `json:"training"`    // qualification: training hours
	Eligibility         string                `json:"eligibility"` // qualification: eligibility
	Slots               int                   `json:"slots"`
	ApplicationDeadline time.Time             `json:"application_deadline"`
	RequiredDocuments   []models.DocumentType `json:"required_documents"`
}

func (v VacancyData) Validate() error {
	if v.PositionTitle == "" {
		return errors.New("position title is required")
	}
	if err := v.EmploymentType.Validate(); err != nil {
		return err
	}
	if v.Slots < 0 {
		return errors.New("slot count must not be negative")
	}
	if v.ApplicationDeadline.IsZero() {
		return errors.New("application deadline is required")
	}
	for _, docType := range v.RequiredDocuments {
		if err := docType.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type VacancyView struct {
	VacancyData
	ID           string               `json:"id"`
	Status       models.VacancyStatus `json:"status"`
	StatusName   string               `json:"status_name"`
	IsOpen       bool                 `json:"is_open"` // wall-clock check at read time
	CreationDate time.Time            `json:"creation_date"`
}

func Convert(rec dbmodels.Vacancy) VacancyView {
	return VacancyView{
		VacancyData: VacancyData{
			PositionTitle:       rec.PositionTitle,
			PlaceOfAssignment:   rec.PlaceOfAssignment,
			SalaryGrade:         rec.SalaryGrade,
			MonthlySalary:       rec.MonthlySalary,
			EmploymentType:      rec.EmploymentType,
			Education:           rec.Education,
			Experience:          rec.Experience,
			Training:            rec.Training,
			Eligibility:         rec.Eligibility,
			Slots:               rec.Slots,
			ApplicationDeadline: rec.ApplicationDeadline,
			RequiredDocuments:   rec.RequiredDocTypes(),
		},
		ID:           rec.ID,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		IsOpen:       rec.IsOpen(time.Now()),
		CreationDate: rec.CreatedAt,
	}
}

type VacancyFilter struct {
	apimodels.Pagination
	Search         string                 `json:"search"` // matched against position title
	Statuses       []models.VacancyStatus `json:"statuses"`
	EmploymentType models.EmploymentType  `json:"employment_type"`
}

func (f VacancyFilter) Validate() error {
	for _, status := range f.Statuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	if f.EmploymentType != "" {
		return f.EmploymentType.Validate()
	}
	return nil
}

type StatusChangeRequest struct {
	Status models.VacancyStatus `json:"status"`
}

func (r StatusChangeRequest) Validate() error {
	return r.Status.Validate()
}
