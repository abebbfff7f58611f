package applicationhistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Create(tx *gorm.DB, rec dbmodels.ApplicationStatusHistory) (id string, err error)
	List(applicationID string) (list []dbmodels.ApplicationStatusHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(tx *gorm.DB, rec dbmodels.ApplicationStatusHistory) (id string, err error) {
	err = tx.Omit(clause.Associations).Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(applicationID string) (list []dbmodels.ApplicationStatusHistory, err error) {
	err = i.db.
		Model(&dbmodels.ApplicationStatusHistory{}).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
