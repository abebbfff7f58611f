package reviewhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"jobportal-backend/db"
	accountstore "jobportal-backend/lib/account/store"
	applicationstore "jobportal-backend/lib/application/store"
	assignmentstore "jobportal-backend/lib/review/assignment-store"
	evaluationstore "jobportal-backend/lib/review/evaluation-store"
	"jobportal-backend/models"
	accountapimodels "jobportal-backend/models/api/account"
	evaluationapimodels "jobportal-backend/models/api/evaluation"
	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Assign(applicationID, reviewerID, assignedByID string) error
	AssignedList(reviewerID string) (list []evaluationapimodels.AssignmentView, err error)
	Evaluate(applicationID, reviewerID string, data evaluationapimodels.EvaluationData) error
	GetEvaluation(applicationID, reviewerID string) (view *evaluationapimodels.EvaluationView, err error)
	ListEvaluations(applicationID string) (list []evaluationapimodels.EvaluationView, err error)
	Reviewers() (list []accountapimodels.AccountView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		assignmentStore:  assignmentstore.NewInstance(db.DB),
		evaluationStore:  evaluationstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		accountStore:     accountstore.NewInstance(db.DB),
	}
}

type impl struct {
	assignmentStore  assignmentstore.Provider
	evaluationStore  evaluationstore.Provider
	applicationStore applicationstore.Provider
	accountStore     accountstore.Provider
}

// Assign links a reviewer to an application. Assignment never changes the
// application's status.
func (i impl) Assign(applicationID, reviewerID, assignedByID string) error {
	logger := log.
		WithField("application_id", applicationID).
		WithField("reviewer_id", reviewerID)
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load the application")
		return errors.New("failed to load the application")
	}
	if application == nil {
		return errors.New("application not found")
	}
	reviewer, err := i.accountStore.GetByID(reviewerID)
	if err != nil {
		logger.WithError(err).Error("failed to load the reviewer")
		return errors.New("failed to load the reviewer")
	}
	if reviewer == nil || reviewer.Role != models.UserRoleReviewer {
		return errors.New("reviewer not found")
	}
	rec := dbmodels.ReviewerAssignment{
		ApplicationID: applicationID,
		ReviewerID:    reviewerID,
		AssignedByID:  assignedByID,
		AssignedAt:    time.Now(),
	}
	if err = i.assignmentStore.Create(rec); err != nil {
		logger.WithError(err).Error("failed to assign the reviewer")
		return errors.New("failed to assign the reviewer")
	}
	logger.Info("reviewer assigned")
	return nil
}

func (i impl) AssignedList(reviewerID string) (list []evaluationapimodels.AssignmentView, err error) {
	recs, err := i.assignmentStore.ListByReviewer(reviewerID)
	if err != nil {
		log.WithError(err).WithField("reviewer_id", reviewerID).Error("failed to list assignments")
		return nil, errors.New("failed to list assignments")
	}
	list = make([]evaluationapimodels.AssignmentView, 0, len(recs))
	for _, rec := range recs {
		evaluation, evalErr := i.evaluationStore.GetByApplicationReviewer(rec.ApplicationID, reviewerID)
		if evalErr != nil {
			return nil, evalErr
		}
		list = append(list, evaluationapimodels.ConvertAssignment(rec, evaluation != nil))
	}
	return list, nil
}

// Evaluate validates and upserts the reviewer's assessment. Only the
// assigned reviewer may evaluate, and at most one row exists per
// (application, reviewer) pair.
func (i impl) Evaluate(applicationID, reviewerID string, data evaluationapimodels.EvaluationData) error {
	logger := log.
		WithField("application_id", applicationID).
		WithField("reviewer_id", reviewerID)
	if err := data.Validate(); err != nil {
		return err
	}
	assigned, err := i.assignmentStore.Exists(applicationID, reviewerID)
	if err != nil {
		logger.WithError(err).Error("failed to check the assignment")
		return errors.New("failed to check the assignment")
	}
	if !assigned {
		return errors.New("the application is not assigned to this reviewer")
	}
	rec := dbmodels.Evaluation{
		ApplicationID:  applicationID,
		ReviewerID:     reviewerID,
		Score:          data.Score,
		Recommendation: data.Recommendation,
		Remarks:        data.Remarks,
	}
	if err = i.evaluationStore.Upsert(rec); err != nil {
		logger.WithError(err).Error("failed to save the evaluation")
		return errors.New("failed to save the evaluation")
	}
	logger.WithField("score", data.Score).Info("evaluation saved")
	return nil
}

func (i impl) GetEvaluation(applicationID, reviewerID string) (view *evaluationapimodels.EvaluationView, err error) {
	rec, err := i.evaluationStore.GetByApplicationReviewer(applicationID, reviewerID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	converted := evaluationapimodels.Convert(*rec)
	return &converted, nil
}

func (i impl) ListEvaluations(applicationID string) (list []evaluationapimodels.EvaluationView, err error) {
	recs, err := i.evaluationStore.ListByApplication(applicationID)
	if err != nil {
		log.WithError(err).WithField("application_id", applicationID).Error("failed to list evaluations")
		return nil, errors.New("failed to list evaluations")
	}
	list = make([]evaluationapimodels.EvaluationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, evaluationapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) Reviewers() (list []accountapimodels.AccountView, err error) {
	recs, err := i.accountStore.ListByRole(models.UserRoleReviewer)
	if err != nil {
		log.WithError(err).Error("failed to list reviewer accounts")
		return nil, errors.New("failed to list reviewer accounts")
	}
	list = make([]accountapimodels.AccountView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, accountapimodels.Convert(rec))
	}
	return list, nil
}
