package applicationstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	applicationapimodels "jobportal-backend/models/api/application"
	dbmodels "jobportal-backend/models/db"
)

var ErrDuplicateApplication = errors.New("an application for this vacancy already exists")

type Provider interface {
	Create(tx *gorm.DB, rec dbmodels.Application) (id string, err error)
	CreateDocLinks(tx *gorm.DB, applicationID string, documentIDs []string) error
	GetByID(id string) (rec *dbmodels.Application, err error)
	GetByIDForUpdate(tx *gorm.DB, id string) (rec *dbmodels.Application, err error)
	UpdateStatus(tx *gorm.DB, id string, status interface{}) error
	ListByUser(userID string) (list []dbmodels.Application, err error)
	ListCount(filter applicationapimodels.ApplicationFilter) (count int64, err error)
	List(filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, err error)
	ListAll(filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, err error)
	ListDocuments(applicationID string) (list []dbmodels.Document, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(tx *gorm.DB, rec dbmodels.Application) (id string, err error) {
	err = tx.Omit(clause.Associations).Create(&rec).Error
	if err != nil {
		// the (user_id, vacancy_id) unique index closes the duplicate-apply race
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", ErrDuplicateApplication
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateDocLinks(tx *gorm.DB, applicationID string, documentIDs []string) error {
	for _, docID := range documentIDs {
		link := dbmodels.ApplicationDocument{
			ApplicationID: applicationID,
			DocumentID:    docID,
		}
		if err := tx.Omit(clause.Associations).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload("User").
		Preload("Vacancy").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// GetByIDForUpdate locks the application row until the surrounding
// transaction commits. Status transitions read the prior value through this
// lock so the history chain stays consistent under concurrent writers.
func (i impl) GetByIDForUpdate(tx *gorm.DB, id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) UpdateStatus(tx *gorm.DB, id string, status interface{}) error {
	result := tx.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.Application, err error) {
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("user_id = ?", userID).
		Preload("Vacancy").
		Order("submitted_at desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter applicationapimodels.ApplicationFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Application{}).
		Joins("left join accounts as a on applications.user_id = a.id")
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count applications")
	}
	return count, nil
}

func (i impl) List(filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.
		Model(dbmodels.Application{}).
		Joins("left join accounts as a on applications.user_id = a.id")
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Offset((page - 1) * limit).Limit(limit)
	err = tx.
		Preload("User").
		Preload("Vacancy").
		Order("applications.submitted_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// ListAll ignores pagination, used by the xlsx export.
func (i impl) ListAll(filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.
		Model(dbmodels.Application{}).
		Joins("left join accounts as a on applications.user_id = a.id")
	i.addFilter(tx, filter)
	err = tx.
		Preload("User").
		Preload("Vacancy").
		Order("applications.submitted_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListDocuments(applicationID string) (list []dbmodels.Document, err error) {
	err = i.db.
		Model(&dbmodels.Document{}).
		Joins("join application_documents as ad on ad.document_id = documents.id").
		Where("ad.application_id = ?", applicationID).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter applicationapimodels.ApplicationFilter) {
	if filter.VacancyID != "" {
		tx.Where("applications.vacancy_id = ?", filter.VacancyID)
	}
	if len(filter.Statuses) > 0 {
		tx.Where("applications.status IN (?)", filter.Statuses)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx.Where("applications.reference_number ilike ? OR a.first_name ilike ? OR a.last_name ilike ?",
			search, search, search)
	}
}
