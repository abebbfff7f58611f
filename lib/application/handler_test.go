package applicationhandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal-backend/lib/application/refnum"
	applicationstore "jobportal-backend/lib/application/store"
	"jobportal-backend/lib/notify"
	"jobportal-backend/models"
	applicationapimodels "jobportal-backend/models/api/application"
	vacancyapimodels "jobportal-backend/models/api/vacancy"
	dbmodels "jobportal-backend/models/db"
)

type fakeStore struct {
	applications map[string]dbmodels.Application
	docLinks     map[string][]string
}

func (f *fakeStore) Create(tx *gorm.DB, rec dbmodels.Application) (string, error) {
	for _, existing := range f.applications {
		if existing.UserID == rec.UserID && existing.VacancyID == rec.VacancyID {
			return "", applicationstore.ErrDuplicateApplication
		}
	}
	rec.ID = fmt.Sprintf("app-%d", len(f.applications)+1)
	f.applications[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) CreateDocLinks(tx *gorm.DB, applicationID string, documentIDs []string) error {
	f.docLinks[applicationID] = documentIDs
	return nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Application, error) {
	rec, ok := f.applications[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) GetByIDForUpdate(tx *gorm.DB, id string) (*dbmodels.Application, error) {
	return f.GetByID(id)
}

func (f *fakeStore) UpdateStatus(tx *gorm.DB, id string, status interface{}) error {
	rec := f.applications[id]
	rec.Status = status.(models.ApplicationStatus)
	f.applications[id] = rec
	return nil
}

func (f *fakeStore) ListByUser(userID string) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeStore) ListCount(filter applicationapimodels.ApplicationFilter) (int64, error) {
	return 0, nil
}

func (f *fakeStore) List(filter applicationapimodels.ApplicationFilter) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeStore) ListAll(filter applicationapimodels.ApplicationFilter) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeStore) ListDocuments(applicationID string) ([]dbmodels.Document, error) {
	return nil, nil
}

type fakeHistoryStore struct {
	rows []dbmodels.ApplicationStatusHistory
}

func (f *fakeHistoryStore) Create(tx *gorm.DB, rec dbmodels.ApplicationStatusHistory) (string, error) {
	f.rows = append(f.rows, rec)
	return fmt.Sprintf("hist-%d", len(f.rows)), nil
}

func (f *fakeHistoryStore) List(applicationID string) ([]dbmodels.ApplicationStatusHistory, error) {
	list := []dbmodels.ApplicationStatusHistory{}
	for _, rec := range f.rows {
		if rec.ApplicationID == applicationID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeDocumentStore struct {
	docs map[string]dbmodels.Document
}

func (f *fakeDocumentStore) Save(rec dbmodels.Document) (string, error) {
	return rec.ID, nil
}

func (f *fakeDocumentStore) GetByID(id string) (*dbmodels.Document, error) {
	rec, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeDocumentStore) ListByUser(userID string) ([]dbmodels.Document, error) {
	list := []dbmodels.Document{}
	for _, rec := range f.docs {
		if rec.UserID == userID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeDocumentStore) ListByIDs(userID string, ids []string) ([]dbmodels.Document, error) {
	list := []dbmodels.Document{}
	for _, id := range ids {
		rec, ok := f.docs[id]
		if ok && rec.UserID == userID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeDocumentStore) Delete(userID, id string) error {
	return nil
}

type fakeVacancyStore struct {
	vacancies map[string]dbmodels.Vacancy
}

func (f *fakeVacancyStore) Create(rec dbmodels.Vacancy) (string, error) {
	return rec.ID, nil
}

func (f *fakeVacancyStore) GetByID(id string) (*dbmodels.Vacancy, error) {
	rec, ok := f.vacancies[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeVacancyStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeVacancyStore) Delete(id string) error {
	return nil
}

func (f *fakeVacancyStore) ListCount(filter vacancyapimodels.VacancyFilter) (int64, error) {
	return 0, nil
}

func (f *fakeVacancyStore) List(filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	return nil, nil
}

func (f *fakeVacancyStore) ListPublished(now time.Time) ([]dbmodels.Vacancy, error) {
	return nil, nil
}

type fakeHandlerAccountStore struct {
	accounts map[string]dbmodels.Account
}

func (f *fakeHandlerAccountStore) Create(rec dbmodels.Account) (string, error) {
	return rec.ID, nil
}

func (f *fakeHandlerAccountStore) GetByID(id string) (*dbmodels.Account, error) {
	rec, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeHandlerAccountStore) FindByEmail(email string) (*dbmodels.Account, error) {
	return nil, nil
}

func (f *fakeHandlerAccountStore) ExistByEmail(email string) (bool, error) {
	return false, nil
}

func (f *fakeHandlerAccountStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeHandlerAccountStore) ListByRole(role models.UserRole) ([]dbmodels.Account, error) {
	return nil, nil
}

type statusChange struct {
	applicantID string
	oldStatus   models.ApplicationStatus
	newStatus   models.ApplicationStatus
}

type fakeNotifier struct {
	submitted     []string
	statusChanges []statusChange
}

func (f *fakeNotifier) ApplicationSubmitted(applicationID, refNumber, positionTitle string) {
	f.submitted = append(f.submitted, applicationID)
}

func (f *fakeNotifier) StatusChanged(applicantID, applicationID string, oldStatus, newStatus models.ApplicationStatus) {
	f.statusChanges = append(f.statusChanges, statusChange{
		applicantID: applicantID,
		oldStatus:   oldStatus,
		newStatus:   newStatus,
	})
}

func openVacancy(id string) dbmodels.Vacancy {
	rec := dbmodels.Vacancy{
		PositionTitle:       "Administrative Aide",
		Status:              models.VacancyStatusPublished,
		ApplicationDeadline: time.Now().Add(24 * time.Hour),
		RequiredDocuments:   pq.StringArray{"pds", "resume"},
	}
	rec.ID = id
	return rec
}

func userDoc(id, userID string, docType models.DocumentType) dbmodels.Document {
	rec := dbmodels.Document{UserID: userID, DocumentType: docType}
	rec.ID = id
	return rec
}

func newTestHandler() (impl, *fakeStore, *fakeHistoryStore, *fakeNotifier) {
	store := &fakeStore{
		applications: map[string]dbmodels.Application{},
		docLinks:     map[string][]string{},
	}
	history := &fakeHistoryStore{}
	notifier := &fakeNotifier{}
	notify.Instance = notifier

	handler := impl{
		store:        store,
		historyStore: history,
		documentStore: &fakeDocumentStore{docs: map[string]dbmodels.Document{
			"doc-1": userDoc("doc-1", "user-1", models.DocumentTypePds),
			"doc-2": userDoc("doc-2", "user-1", models.DocumentTypeResume),
		}},
		vacancyStore: &fakeVacancyStore{vacancies: map[string]dbmodels.Vacancy{
			"vac-1": openVacancy("vac-1"),
		}},
		accountStore: &fakeHandlerAccountStore{accounts: map[string]dbmodels.Account{
			"hr-1": {FirstName: "Ana", LastName: "Reyes", Role: models.UserRoleHR},
		}},
		runInTx: func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		},
	}
	seq := int64(0)
	handler.nextRefNumber = func(tx *gorm.DB, year int) (string, error) {
		seq++
		return refnum.Format(year, seq), nil
	}
	return handler, store, history, notifier
}

func TestSubmit(t *testing.T) {
	request := applicationapimodels.SubmitRequest{
		VacancyID:   "vac-1",
		DocumentIDs: []string{"doc-1", "doc-2"},
	}

	t.Run(`a complete selection creates the row, the links and the number`, func(t *testing.T) {
		handler, store, _, notifier := newTestHandler()
		result, err := handler.Submit("user-1", request)
		require.NoError(t, err)
		require.NotEmpty(t, result.ID)
		require.Equal(t, refnum.Format(time.Now().Year(), 1), result.ReferenceNumber)

		rec, ok := store.applications[result.ID]
		require.True(t, ok)
		require.Equal(t, models.ApplicationStatusSubmitted, rec.Status)
		require.Equal(t, result.ReferenceNumber, rec.ReferenceNumber)
		require.Equal(t, []string{"doc-1", "doc-2"}, store.docLinks[result.ID])
		require.Equal(t, []string{result.ID}, notifier.submitted)
	})

	t.Run(`a missing required type is rejected before any write`, func(t *testing.T) {
		handler, store, _, notifier := newTestHandler()
		partial := request
		partial.DocumentIDs = []string{"doc-1"}
		_, err := handler.Submit("user-1", partial)
		require.Error(t, err)
		require.Empty(t, store.applications)
		require.Empty(t, store.docLinks)
		require.Empty(t, notifier.submitted)
	})

	t.Run(`a closed vacancy is rejected`, func(t *testing.T) {
		handler, store, _, _ := newTestHandler()
		closed := openVacancy("vac-1")
		closed.ApplicationDeadline = time.Now().Add(-time.Hour)
		handler.vacancyStore = &fakeVacancyStore{vacancies: map[string]dbmodels.Vacancy{"vac-1": closed}}
		_, err := handler.Submit("user-1", request)
		require.Error(t, err)
		require.Empty(t, store.applications)
	})

	t.Run(`a second application for the same vacancy is rejected`, func(t *testing.T) {
		handler, store, _, _ := newTestHandler()
		_, err := handler.Submit("user-1", request)
		require.NoError(t, err)
		_, err = handler.Submit("user-1", request)
		require.ErrorIs(t, err, applicationstore.ErrDuplicateApplication)
		require.Len(t, store.applications, 1)
	})
}

func TestChangeStatus(t *testing.T) {
	submitAndGet := func(t *testing.T, handler impl, store *fakeStore) string {
		t.Helper()
		result, err := handler.Submit("user-1", applicationapimodels.SubmitRequest{
			VacancyID:   "vac-1",
			DocumentIDs: []string{"doc-1", "doc-2"},
		})
		require.NoError(t, err)
		return result.ID
	}

	t.Run(`the history row records the overwritten status`, func(t *testing.T) {
		handler, store, history, notifier := newTestHandler()
		id := submitAndGet(t, handler, store)

		err := handler.ChangeStatus(id, "hr-1", applicationapimodels.StatusChangeRequest{
			Status:  models.ApplicationStatusShortlisted,
			Remarks: "meets the minimum requirements",
		})
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusShortlisted, store.applications[id].Status)

		require.Len(t, history.rows, 1)
		row := history.rows[0]
		require.Equal(t, id, row.ApplicationID)
		require.NotNil(t, row.OldStatus)
		require.Equal(t, models.ApplicationStatusSubmitted, *row.OldStatus)
		require.Equal(t, models.ApplicationStatusShortlisted, row.NewStatus)
		require.Equal(t, "hr-1", row.ChangedByID)
		require.Equal(t, "Ana Reyes", row.ChangedByName)
		require.Equal(t, "meets the minimum requirements", row.Remarks)

		require.Equal(t, []statusChange{{
			applicantID: "user-1",
			oldStatus:   models.ApplicationStatusSubmitted,
			newStatus:   models.ApplicationStatusShortlisted,
		}}, notifier.statusChanges)
	})

	t.Run(`a second transition chains from the updated status`, func(t *testing.T) {
		handler, store, history, _ := newTestHandler()
		id := submitAndGet(t, handler, store)

		require.NoError(t, handler.ChangeStatus(id, "hr-1", applicationapimodels.StatusChangeRequest{
			Status: models.ApplicationStatusShortlisted,
		}))
		require.NoError(t, handler.ChangeStatus(id, "hr-1", applicationapimodels.StatusChangeRequest{
			Status: models.ApplicationStatusSelected,
		}))

		require.Len(t, history.rows, 2)
		require.NotNil(t, history.rows[1].OldStatus)
		require.Equal(t, models.ApplicationStatusShortlisted, *history.rows[1].OldStatus)
		require.Equal(t, models.ApplicationStatusSelected, history.rows[1].NewStatus)
	})

	t.Run(`an unknown application is rejected`, func(t *testing.T) {
		handler, _, history, _ := newTestHandler()
		err := handler.ChangeStatus("missing", "hr-1", applicationapimodels.StatusChangeRequest{
			Status: models.ApplicationStatusShortlisted,
		})
		require.Error(t, err)
		require.Empty(t, history.rows)
	})
}
