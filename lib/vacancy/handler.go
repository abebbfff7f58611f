package vacancyhandler

import (
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"jobportal-backend/db"
	vacancystore "jobportal-backend/lib/vacancy/store"
	"jobportal-backend/models"
	vacancyapimodels "jobportal-backend/models/api/vacancy"
	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Create(userID string, data vacancyapimodels.VacancyData) (id string, err error)
	GetByID(id string) (item vacancyapimodels.VacancyView, err error)
	Update(id string, data vacancyapimodels.VacancyData) error
	Delete(id string) error
	List(filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, rowCount int64, err error)
	ChangeStatus(id, userID string, status models.VacancyStatus) error
	PublicList() (list []vacancyapimodels.VacancyView, err error)
	PublicGetByID(id string) (item vacancyapimodels.VacancyView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: vacancystore.NewInstance(db.DB),
	}
}

type impl struct {
	store vacancystore.Provider
}

func (i impl) Create(userID string, data vacancyapimodels.VacancyData) (id string, err error) {
	rec := dbmodels.Vacancy{
		PositionTitle:       data.PositionTitle,
		PlaceOfAssignment:   data.PlaceOfAssignment,
		SalaryGrade:         data.SalaryGrade,
		MonthlySalary:       data.MonthlySalary,
		EmploymentType:      data.EmploymentType,
		Education:           data.Education,
		Experience:          data.Experience,
		Training:            data.Training,
		Eligibility:         data.Eligibility,
		Slots:               data.Slots,
		ApplicationDeadline: data.ApplicationDeadline,
		RequiredDocuments:   toTags(data.RequiredDocuments),
		Status:              models.VacancyStatusDraft,
		CreatedByID:         userID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to create the vacancy")
		return "", errors.New("failed to create the vacancy")
	}
	return id, nil
}

func (i impl) GetByID(id string) (item vacancyapimodels.VacancyView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return item, err
	}
	if rec == nil {
		return item, errors.New("vacancy not found")
	}
	return vacancyapimodels.Convert(*rec), nil
}

func (i impl) Update(id string, data vacancyapimodels.VacancyData) error {
	updMap := map[string]interface{}{
		"position_title":       data.PositionTitle,
		"place_of_assignment":  data.PlaceOfAssignment,
		"salary_grade":         data.SalaryGrade,
		"monthly_salary":       data.MonthlySalary,
		"employment_type":      data.EmploymentType,
		"education":            data.Education,
		"experience":           data.Experience,
		"training":             data.Training,
		"eligibility":          data.Eligibility,
		"slots":                data.Slots,
		"application_deadline": data.ApplicationDeadline,
		"required_documents":   toTags(data.RequiredDocuments),
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) List(filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list vacancies")
		return nil, 0, errors.New("failed to list vacancies")
	}
	list = make([]vacancyapimodels.VacancyView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, vacancyapimodels.Convert(rec))
	}
	return list, rowCount, nil
}

// ChangeStatus moves the vacancy through its lifecycle. Any status may follow
// any other.
func (i impl) ChangeStatus(id, userID string, status models.VacancyStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("vacancy not found")
	}
	err = i.store.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		return err
	}
	log.
		WithField("vacancy_id", id).
		WithField("user_id", userID).
		WithField("old_status", rec.Status).
		WithField("new_status", status).
		Info("vacancy status changed")
	return nil
}

func (i impl) PublicList() (list []vacancyapimodels.VacancyView, err error) {
	recs, err := i.store.ListPublished(time.Now())
	if err != nil {
		log.WithError(err).Error("failed to list published vacancies")
		return nil, errors.New("failed to list published vacancies")
	}
	list = make([]vacancyapimodels.VacancyView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, vacancyapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) PublicGetByID(id string) (item vacancyapimodels.VacancyView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return item, err
	}
	if rec == nil || rec.Status != models.VacancyStatusPublished {
		return item, errors.New("vacancy not found")
	}
	return vacancyapimodels.Convert(*rec), nil
}

func toTags(docTypes []models.DocumentType) pq.StringArray {
	tags := make(pq.StringArray, 0, len(docTypes))
	for _, docType := range docTypes {
		tags = append(tags, string(docType))
	}
	return tags
}
