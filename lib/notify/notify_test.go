package notify

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"

	"jobportal-backend/lib/smtp"
	connectionhub "jobportal-backend/lib/ws/hub/connection-hub"
	"jobportal-backend/models"
	dbmodels "jobportal-backend/models/db"
	wsmodels "jobportal-backend/models/ws"
)

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

type fakePushStore struct {
	parked []dbmodels.PushData
}

func (f *fakePushStore) Create(rec dbmodels.PushData) error {
	f.parked = append(f.parked, rec)
	return nil
}

func (f *fakePushStore) List(userID string) ([]dbmodels.PushData, error) {
	return nil, nil
}

func (f *fakePushStore) Delete(ids []string) error {
	return nil
}

type fakeHub struct {
	connected map[string]bool
	sent      []wsmodels.ServerMessage
}

func (f *fakeHub) AddClient(userID string, conn *websocket.Conn) {}

func (f *fakeHub) DeleteClient(userID string) {}

func (f *fakeHub) SendMessage(msg wsmodels.ServerMessage) {
	f.sent = append(f.sent, msg)
}

func (f *fakeHub) SendClose(userID string) {}

func (f *fakeHub) IsConnected(userID string) bool {
	return f.connected[userID]
}

type fakeMailer struct {
	recipients []string
	subjects   []string
}

func (f *fakeMailer) SendEMail(to, message, subject string) error {
	f.recipients = append(f.recipients, to)
	f.subjects = append(f.subjects, subject)
	return nil
}

func staffAccount(id string, role models.UserRole) dbmodels.Account {
	rec := dbmodels.Account{Role: role, Email: id + "@agency.gov"}
	rec.ID = id
	return rec
}

func newTestHandler() (impl, *fakePushStore, *fakeHub, *fakeMailer) {
	pushes := &fakePushStore{}
	hub := &fakeHub{connected: map[string]bool{}}
	mailer := &fakeMailer{}
	connectionhub.Instance = hub
	smtp.Instance = mailer

	handler := impl{
		accountStore: &fakeAccountStore{accounts: map[string]dbmodels.Account{
			"hr-1":  staffAccount("hr-1", models.UserRoleHR),
			"hr-2":  staffAccount("hr-2", models.UserRoleHR),
			"rev-1": staffAccount("rev-1", models.UserRoleReviewer),
			"app-1": staffAccount("app-1", models.UserRoleApplicant),
		}},
		pushStore: pushes,
	}
	return handler, pushes, hub, mailer
}

func TestApplicationSubmitted(t *testing.T) {
	t.Run(`every hr account is notified, nobody else`, func(t *testing.T) {
		handler, pushes, hub, _ := newTestHandler()
		hub.connected["hr-1"] = true

		handler.ApplicationSubmitted("application-1", "APP-2026-000001", "Administrative Aide")

		require.Len(t, hub.sent, 1)
		require.Equal(t, "hr-1", hub.sent[0].ToUserID)
		require.Equal(t, string(models.PushCodeNewApplication), hub.sent[0].Code)
		require.Contains(t, hub.sent[0].Msg, "APP-2026-000001")

		require.Len(t, pushes.parked, 1)
		require.Equal(t, "hr-2", pushes.parked[0].UserID)
	})
}

func TestStatusChanged(t *testing.T) {
	t.Run(`offline applicant gets a parked push and an email`, func(t *testing.T) {
		handler, pushes, hub, mailer := newTestHandler()

		handler.StatusChanged("app-1", "application-1", models.ApplicationStatusSubmitted, models.ApplicationStatusShortlisted)

		require.Empty(t, hub.sent)
		require.Len(t, pushes.parked, 1)
		require.Equal(t, "app-1", pushes.parked[0].UserID)
		require.Equal(t, models.PushCodeStatusChanged, pushes.parked[0].Code)
		require.Contains(t, pushes.parked[0].Msg, "Submitted")
		require.Contains(t, pushes.parked[0].Msg, "Shortlisted")

		require.Equal(t, []string{"app-1@agency.gov"}, mailer.recipients)
	})

	t.Run(`unknown applicant sends nothing`, func(t *testing.T) {
		handler, pushes, _, mailer := newTestHandler()

		handler.StatusChanged("missing", "application-1", models.ApplicationStatusSubmitted, models.ApplicationStatusShortlisted)

		require.Empty(t, pushes.parked)
		require.Empty(t, mailer.recipients)
	})
}
