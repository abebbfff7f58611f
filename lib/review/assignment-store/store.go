package assignmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ReviewerAssignment) error
	Exists(applicationID, reviewerID string) (exist bool, err error)
	ListByReviewer(reviewerID string) (list []dbmodels.ReviewerAssignment, err error)
	ListByApplication(applicationID string) (list []dbmodels.ReviewerAssignment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

// Create ignores a repeated assignment of the same reviewer, duplicates carry
// no meaning.
func (i impl) Create(rec dbmodels.ReviewerAssignment) error {
	err := i.db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "application_id"}, {Name: "reviewer_id"}},
			DoNothing: true,
		}).
		Create(&rec).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to assign the reviewer")
	}
	return nil
}

func (i impl) Exists(applicationID, reviewerID string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.ReviewerAssignment{}).
		Where("application_id = ?", applicationID).
		Where("reviewer_id = ?", reviewerID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) ListByReviewer(reviewerID string) (list []dbmodels.ReviewerAssignment, err error) {
	err = i.db.
		Model(&dbmodels.ReviewerAssignment{}).
		Where("reviewer_id = ?", reviewerID).
		Preload("Application").
		Preload("Application.User").
		Preload("Application.Vacancy").
		Order("assigned_at desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.ReviewerAssignment, err error) {
	err = i.db.
		Model(&dbmodels.ReviewerAssignment{}).
		Where("application_id = ?", applicationID).
		Preload("Reviewer").
		Order("assigned_at").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
