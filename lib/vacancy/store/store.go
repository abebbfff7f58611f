package vacancystore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"jobportal-backend/models"
	vacancyapimodels "jobportal-backend/models/api/vacancy"
	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter vacancyapimodels.VacancyFilter) (count int64, err error)
	List(filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, err error)
	ListPublished(now time.Time) (list []dbmodels.Vacancy, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("vacancy not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Vacancy{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(filter vacancyapimodels.VacancyFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Vacancy{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count vacancies")
	}
	return count, nil
}

func (i impl) List(filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	tx := i.db.
		Model(dbmodels.Vacancy{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Offset((page - 1) * limit).Limit(limit)
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// ListPublished returns vacancies still open to applications. The deadline is
// a read-time wall-clock comparison.
func (i impl) ListPublished(now time.Time) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	err = i.db.
		Model(dbmodels.Vacancy{}).
		Where("status = ?", models.VacancyStatusPublished).
		Where("application_deadline > ?", now).
		Order("application_deadline").
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

func (i impl) addFilter(tx *gorm.DB, filter vacancyapimodels.VacancyFilter) {
	if filter.Search != "" {
		tx.Where("position_title ilike ?", "%"+filter.Search+"%")
	}
	if len(filter.Statuses) > 0 {
		tx.Where("status IN (?)", filter.Statuses)
	}
	if filter.EmploymentType != "" {
		tx.Where("employment_type = ?", filter.EmploymentType)
	}
}
