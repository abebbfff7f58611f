package evaluationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.Evaluation) error
	GetByApplicationReviewer(applicationID, reviewerID string) (rec *dbmodels.Evaluation, err error)
	ListByApplication(applicationID string) (list []dbmodels.Evaluation, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

// Upsert is a single atomic statement against the (application_id,
// reviewer_id) unique index, so a reviewer submitting twice concurrently
// still ends up with exactly one row.
func (i impl) Upsert(rec dbmodels.Evaluation) error {
	err := i.db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "application_id"}, {Name: "reviewer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "recommendation", "remarks", "updated_at"}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to save the evaluation")
	}
	return nil
}

func (i impl) GetByApplicationReviewer(applicationID, reviewerID string) (*dbmodels.Evaluation, error) {
	rec := dbmodels.Evaluation{}
	err := i.db.
		Model(&dbmodels.Evaluation{}).
		Where("application_id = ?", applicationID).
		Where("reviewer_id = ?", reviewerID).
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

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Evaluation, err error) {
	err = i.db.
		Model(&dbmodels.Evaluation{}).
		Where("application_id = ?", applicationID).
		Preload("Reviewer").
		Order("created_at").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
