package reviewhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal-backend/models"
	applicationapimodels "jobportal-backend/models/api/application"
	evaluationapimodels "jobportal-backend/models/api/evaluation"
	dbmodels "jobportal-backend/models/db"
)

type fakeAssignmentStore struct {
	assignments map[string]bool // applicationID+"/"+reviewerID
}

func (f *fakeAssignmentStore) Create(rec dbmodels.ReviewerAssignment) error {
	f.assignments[rec.ApplicationID+"/"+rec.ReviewerID] = true
	return nil
}

func (f *fakeAssignmentStore) Exists(applicationID, reviewerID string) (bool, error) {
	return f.assignments[applicationID+"/"+reviewerID], nil
}

func (f *fakeAssignmentStore) ListByReviewer(reviewerID string) ([]dbmodels.ReviewerAssignment, error) {
	return nil, nil
}

func (f *fakeAssignmentStore) ListByApplication(applicationID string) ([]dbmodels.ReviewerAssignment, error) {
	return nil, nil
}

type fakeEvaluationStore struct {
	rows map[string]dbmodels.Evaluation // applicationID+"/"+reviewerID
}

func (f *fakeEvaluationStore) Upsert(rec dbmodels.Evaluation) error {
	f.rows[rec.ApplicationID+"/"+rec.ReviewerID] = rec
	return nil
}

func (f *fakeEvaluationStore) GetByApplicationReviewer(applicationID, reviewerID string) (*dbmodels.Evaluation, error) {
	rec, ok := f.rows[applicationID+"/"+reviewerID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeEvaluationStore) ListByApplication(applicationID string) ([]dbmodels.Evaluation, error) {
	list := []dbmodels.Evaluation{}
	for _, rec := range f.rows {
		if rec.ApplicationID == applicationID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeApplicationStore struct {
	applications map[string]dbmodels.Application
}

func (f *fakeApplicationStore) Create(tx *gorm.DB, rec dbmodels.Application) (string, error) {
	return "", nil
}

func (f *fakeApplicationStore) CreateDocLinks(tx *gorm.DB, applicationID string, documentIDs []string) error {
	return nil
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	rec, ok := f.applications[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeApplicationStore) GetByIDForUpdate(tx *gorm.DB, id string) (*dbmodels.Application, error) {
	return f.GetByID(id)
}

func (f *fakeApplicationStore) UpdateStatus(tx *gorm.DB, id string, status interface{}) error {
	return nil
}

func (f *fakeApplicationStore) ListByUser(userID string) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListCount(filter applicationapimodels.ApplicationFilter) (int64, error) {
	return 0, nil
}

func (f *fakeApplicationStore) List(filter applicationapimodels.ApplicationFilter) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListAll(filter applicationapimodels.ApplicationFilter) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListDocuments(applicationID string) ([]dbmodels.Document, error) {
	return nil, nil
}

type fakeAccountStore struct {
	accounts map[string]dbmodels.Account
}

func (f *fakeAccountStore) Create(rec dbmodels.Account) (string, error) {
	return rec.ID, nil
}

func (f *fakeAccountStore) GetByID(id string) (*dbmodels.Account, error) {
	rec, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAccountStore) FindByEmail(email string) (*dbmodels.Account, error) {
	return nil, nil
}

func (f *fakeAccountStore) ExistByEmail(email string) (bool, error) {
	return false, nil
}

func (f *fakeAccountStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeAccountStore) ListByRole(role models.UserRole) ([]dbmodels.Account, error) {
	list := []dbmodels.Account{}
	for _, rec := range f.accounts {
		if rec.Role == role {
			list = append(list, rec)
		}
	}
	return list, nil
}

func account(id string, role models.UserRole) dbmodels.Account {
	rec := dbmodels.Account{Role: role}
	rec.ID = id
	return rec
}

func application(id string) dbmodels.Application {
	rec := dbmodels.Application{Status: models.ApplicationStatusSubmitted}
	rec.ID = id
	return rec
}

func newTestHandler() (impl, *fakeEvaluationStore, *fakeAssignmentStore) {
	evaluations := &fakeEvaluationStore{rows: map[string]dbmodels.Evaluation{}}
	assignments := &fakeAssignmentStore{assignments: map[string]bool{}}
	handler := impl{
		assignmentStore:  assignments,
		evaluationStore:  evaluations,
		applicationStore: &fakeApplicationStore{applications: map[string]dbmodels.Application{"app-1": application("app-1")}},
		accountStore: &fakeAccountStore{accounts: map[string]dbmodels.Account{
			"rev-1": account("rev-1", models.UserRoleReviewer),
			"hr-1":  account("hr-1", models.UserRoleHR),
		}},
	}
	return handler, evaluations, assignments
}

func TestAssign(t *testing.T) {
	t.Run(`assignment to a reviewer succeeds`, func(t *testing.T) {
		handler, _, assignments := newTestHandler()
		require.NoError(t, handler.Assign("app-1", "rev-1", "hr-1"))
		exist, err := assignments.Exists("app-1", "rev-1")
		require.NoError(t, err)
		require.True(t, exist)
	})

	t.Run(`unknown application is rejected`, func(t *testing.T) {
		handler, _, _ := newTestHandler()
		require.Error(t, handler.Assign("missing", "rev-1", "hr-1"))
	})

	t.Run(`non-reviewer account is rejected`, func(t *testing.T) {
		handler, _, _ := newTestHandler()
		require.Error(t, handler.Assign("app-1", "hr-1", "hr-1"))
	})
}

func TestEvaluate(t *testing.T) {
	data := evaluationapimodels.EvaluationData{
		Score:          85,
		Recommendation: models.RecommendationNormal,
		Remarks:        "strong candidate",
	}

	t.Run(`unassigned reviewer is rejected`, func(t *testing.T) {
		handler, evaluations, _ := newTestHandler()
		require.Error(t, handler.Evaluate("app-1", "rev-1", data))
		require.Empty(t, evaluations.rows)
	})

	t.Run(`score out of range is rejected before persistence`, func(t *testing.T) {
		handler, evaluations, _ := newTestHandler()
		require.NoError(t, handler.Assign("app-1", "rev-1", "hr-1"))
		bad := data
		bad.Score = 150
		require.Error(t, handler.Evaluate("app-1", "rev-1", bad))
		require.Empty(t, evaluations.rows)
	})

	t.Run(`second evaluation replaces the first, one row remains`, func(t *testing.T) {
		handler, evaluations, _ := newTestHandler()
		require.NoError(t, handler.Assign("app-1", "rev-1", "hr-1"))
		require.NoError(t, handler.Evaluate("app-1", "rev-1", data))

		updated := data
		updated.Score = 60
		updated.Recommendation = models.RecommendationReview
		require.NoError(t, handler.Evaluate("app-1", "rev-1", updated))

		require.Len(t, evaluations.rows, 1)
		view, err := handler.GetEvaluation("app-1", "rev-1")
		require.NoError(t, err)
		require.NotNil(t, view)
		require.Equal(t, 60, view.Score)
		require.Equal(t, models.RecommendationReview, view.Recommendation)
	})
}
