package notify

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"jobportal-backend/db"
	accountstore "jobportal-backend/lib/account/store"
	pushdatastore "jobportal-backend/lib/notify/push-store"
	"jobportal-backend/lib/smtp"
	connectionhub "jobportal-backend/lib/ws/hub/connection-hub"
	"jobportal-backend/models"
	dbmodels "jobportal-backend/models/db"
	wsmodels "jobportal-backend/models/ws"
)

type Provider interface {
	ApplicationSubmitted(applicationID, refNumber, positionTitle string)
	StatusChanged(applicantID, applicationID string, oldStatus, newStatus models.ApplicationStatus)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		accountStore: accountstore.NewInstance(db.DB),
		pushStore:    pushdatastore.NewInstance(db.DB),
	}
}

type impl struct {
	accountStore accountstore.Provider
	pushStore    pushdatastore.Provider
}

func (i impl) getLogger(applicationID string, code models.PushCode) *log.Entry {
	logger := log.
		WithField("application_id", applicationID).
		WithField("event_code", string(code))
	return logger
}

func (i impl) ApplicationSubmitted(applicationID, refNumber, positionTitle string) {
	logger := i.getLogger(applicationID, models.PushCodeNewApplication)
	hrList, err := i.accountStore.ListByRole(models.UserRoleHR)
	if err != nil {
		logger.WithError(err).Error("failed to list hr accounts")
		return
	}
	msg := fmt.Sprintf("New application %s for the position %s", refNumber, positionTitle)
	for _, hr := range hrList {
		i.sendPush(logger, hr.ID, models.PushCodeNewApplication, msg)
	}
}

func (i impl) StatusChanged(applicantID, applicationID string, oldStatus, newStatus models.ApplicationStatus) {
	logger := i.getLogger(applicationID, models.PushCodeStatusChanged)
	applicant, err := i.accountStore.GetByID(applicantID)
	if err != nil {
		logger.WithError(err).Error("failed to get the applicant account")
		return
	}
	if applicant == nil {
		logger.Error("applicant account not found")
		return
	}
	msg := fmt.Sprintf("Your application status changed from %s to %s", oldStatus.ToHuman(), newStatus.ToHuman())
	i.sendPush(logger, applicant.ID, models.PushCodeStatusChanged, msg)
	err = smtp.Instance.SendEMail(applicant.Email, msg, "Application status")
	if err != nil {
		logger.WithError(err).Error("failed to send the status email")
	}
}

// sendPush delivers over an open ws connection, otherwise parks the
// notification for the next connect.
func (i impl) sendPush(logger *log.Entry, userID string, code models.PushCode, msg string) {
	if connectionhub.Instance.IsConnected(userID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Code:     string(code),
			Msg:      msg,
		})
		return
	}
	err := i.pushStore.Create(dbmodels.PushData{
		UserID: userID,
		Code:   code,
		Msg:    msg,
	})
	if err != nil {
		logger.WithError(err).Error("failed to park the notification")
	}
}
