package aihandler

import (
	log "github.com/sirupsen/logrus"

	"jobportal-backend/config"
	"jobportal-backend/db"
	aiclient "jobportal-backend/lib/ai/client"
	ailogstore "jobportal-backend/lib/ai/store"
	"jobportal-backend/models"
	aiapimodels "jobportal-backend/models/api/ai"
	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Assist(userID string, request aiapimodels.AssistRequest) (resp aiapimodels.AssistResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		logStore: ailogstore.NewInstance(db.DB),
	}
}

type impl struct {
	logStore ailogstore.Provider
}

var systemPrompts = map[models.AssistPurpose]string{
	models.AssistPurposeJobSearch:   "You are an assistant on a government job portal. Help the applicant find suitable vacancies. Answer briefly and to the point.",
	models.AssistPurposeApplication: "You are an assistant on a government job portal. Guide the applicant through preparing and submitting a job application. Answer briefly and to the point.",
	models.AssistPurposeDocuments:   "You are an assistant on a government job portal. Explain which documents are required and how to prepare them. Answer briefly and to the point.",
	models.AssistPurposeGeneral:     "You are an assistant on a government job portal. Answer the applicant's question briefly and to the point.",
}

func (i impl) Assist(userID string, request aiapimodels.AssistRequest) (resp aiapimodels.AssistResponse, err error) {
	logger := log.
		WithField("user_id", userID).
		WithField("purpose", string(request.Purpose))
	answer, err := aiclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromptAndText(systemPrompts[request.Purpose], request.Context)
	logErr := i.logStore.Create(dbmodels.AIRequestLog{
		UserID:   userID,
		Purpose:  request.Purpose,
		Context:  request.Context,
		Response: answer,
		Success:  err == nil,
	})
	if logErr != nil {
		logger.WithError(logErr).Error("failed to log the assistant request")
	}
	if err != nil {
		logger.WithError(err).Error("failed to generate the assistant answer")
		return resp, err
	}
	resp.Text = answer
	return resp, nil
}
