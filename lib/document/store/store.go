package documentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Document) (id string, err error)
	GetByID(id string) (rec *dbmodels.Document, err error)
	ListByUser(userID string) (list []dbmodels.Document, err error)
	ListByIDs(userID string, ids []string) (list []dbmodels.Document, err error)
	Delete(userID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Document) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Document, error) {
	rec := dbmodels.Document{}
	err := i.db.
		Model(&dbmodels.Document{}).
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

func (i impl) ListByUser(userID string) (list []dbmodels.Document, err error) {
	err = i.db.
		Model(&dbmodels.Document{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

// ListByIDs only returns documents owned by the given user, so a forged id
// from another applicant is silently dropped and caught by the caller's
// count check.
func (i impl) ListByIDs(userID string, ids []string) (list []dbmodels.Document, err error) {
	if len(ids) == 0 {
		return []dbmodels.Document{}, nil
	}
	err = i.db.
		Model(&dbmodels.Document{}).
		Where("user_id = ?", userID).
		Where("id IN (?)", ids).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(userID, id string) error {
	tx := i.db.
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Delete(&dbmodels.Document{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("document not found")
	}
	return nil
}
