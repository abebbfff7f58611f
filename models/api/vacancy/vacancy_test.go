package vacancyapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobportal-backend/models"
)

func validVacancyData() VacancyData {
	return VacancyData{
		PositionTitle:       "Administrative Officer II",
		PlaceOfAssignment:   "Regional Office",
		SalaryGrade:         11,
		EmploymentType:      models.EmploymentPermanent,
		Slots:               1,
		ApplicationDeadline: time.Now().Add(30 * 24 * time.Hour),
		RequiredDocuments:   []models.DocumentType{models.DocumentTypePds, models.DocumentTypeResume},
	}
}

func TestVacancyDataValidate(t *testing.T) {
	t.Run(`valid data passes`, func(t *testing.T) {
		require.NoError(t, validVacancyData().Validate())
	})

	t.Run(`position title is required`, func(t *testing.T) {
		data := validVacancyData()
		data.PositionTitle = ""
		require.Error(t, data.Validate())
	})

	t.Run(`unknown employment type is rejected`, func(t *testing.T) {
		data := validVacancyData()
		data.EmploymentType = models.EmploymentType("freelance")
		require.Error(t, data.Validate())
	})

	t.Run(`negative slot count is rejected`, func(t *testing.T) {
		data := validVacancyData()
		data.Slots = -1
		require.Error(t, data.Validate())
	})

	t.Run(`deadline is required`, func(t *testing.T) {
		data := validVacancyData()
		data.ApplicationDeadline = time.Time{}
		require.Error(t, data.Validate())
	})

	t.Run(`unknown required document tag is rejected`, func(t *testing.T) {
		data := validVacancyData()
		data.RequiredDocuments = append(data.RequiredDocuments, models.DocumentType("diploma"))
		require.Error(t, data.Validate())
	})
}
