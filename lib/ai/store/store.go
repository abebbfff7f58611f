package ailogstore

import (
	dbmodels "jobportal-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AIRequestLog) error
	ListByUser(userID string) ([]dbmodels.AIRequestLog, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AIRequestLog) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) ListByUser(userID string) (list []dbmodels.AIRequestLog, err error) {
	err = i.db.
		Model(dbmodels.AIRequestLog{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
