package accountstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"jobportal-backend/models"
	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Account) (id string, err error)
	GetByID(id string) (rec *dbmodels.Account, err error)
	FindByEmail(email string) (rec *dbmodels.Account, err error)
	ExistByEmail(email string) (exist bool, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByRole(role models.UserRole) (list []dbmodels.Account, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Account) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Account, error) {
	rec := dbmodels.Account{}
	err := i.db.
		Model(&dbmodels.Account{}).
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

func (i impl) FindByEmail(email string) (*dbmodels.Account, error) {
	rec := dbmodels.Account{}
	err := i.db.
		Model(&dbmodels.Account{}).
		Where("email = ?", email).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Account{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Account{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("account not found")
	}
	return nil
}

func (i impl) ListByRole(role models.UserRole) (list []dbmodels.Account, err error) {
	err = i.db.
		Model(&dbmodels.Account{}).
		Where("role = ?", role).
		Where("is_active = true").
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
