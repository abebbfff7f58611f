package applicationhandler

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"jobportal-backend/db"
	accountstore "jobportal-backend/lib/account/store"
	applicationhistorystore "jobportal-backend/lib/application/history-store"
	"jobportal-backend/lib/application/refnum"
	applicationstore "jobportal-backend/lib/application/store"
	documentstore "jobportal-backend/lib/document/store"
	pdfexport "jobportal-backend/lib/export/pdf"
	xlsexport "jobportal-backend/lib/export/xls"
	"jobportal-backend/lib/notify"
	vacancystore "jobportal-backend/lib/vacancy/store"
	"jobportal-backend/models"
	applicationapimodels "jobportal-backend/models/api/application"
	documentapimodels "jobportal-backend/models/api/document"
	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Submit(userID string, request applicationapimodels.SubmitRequest) (result applicationapimodels.SubmitResponse, err error)
	Completeness(userID, vacancyID string, selectedIDs []string) (result applicationapimodels.CompletenessView, err error)
	ChangeStatus(id, userID string, request applicationapimodels.StatusChangeRequest) error
	GetByID(id string) (view applicationapimodels.ApplicationView, err error)
	GetOwn(userID, id string) (view applicationapimodels.ApplicationView, err error)
	ListMy(userID string) (list []applicationapimodels.ApplicationView, err error)
	List(filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	History(applicationID string) (list []applicationapimodels.HistoryView, err error)
	Documents(applicationID string) (list []documentapimodels.DocumentView, err error)
	ConfirmationSlip(userID, id string) (pdfFile []byte, err error)
	Export(filter applicationapimodels.ApplicationFilter) (file *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         applicationstore.NewInstance(db.DB),
		historyStore:  applicationhistorystore.NewInstance(db.DB),
		documentStore: documentstore.NewInstance(db.DB),
		vacancyStore:  vacancystore.NewInstance(db.DB),
		accountStore:  accountstore.NewInstance(db.DB),
		runInTx: func(fn func(tx *gorm.DB) error) error {
			return db.DB.Transaction(fn)
		},
		nextRefNumber: refnum.Next,
	}
}

type impl struct {
	store         applicationstore.Provider
	historyStore  applicationhistorystore.Provider
	documentStore documentstore.Provider
	vacancyStore  vacancystore.Provider
	accountStore  accountstore.Provider
	runInTx       func(fn func(tx *gorm.DB) error) error
	nextRefNumber func(tx *gorm.DB, year int) (string, error)
}

// Submit creates the application, its reference number and its document links
// in one transaction. Nothing is persisted when any step fails.
func (i impl) Submit(userID string, request applicationapimodels.SubmitRequest) (result applicationapimodels.SubmitResponse, err error) {
	logger := log.WithField("user_id", userID).WithField("vacancy_id", request.VacancyID)
	vacancy, err := i.vacancyStore.GetByID(request.VacancyID)
	if err != nil {
		logger.WithError(err).Error("failed to load the vacancy")
		return result, errors.New("failed to load the vacancy")
	}
	if vacancy == nil {
		return result, errors.New("vacancy not found")
	}
	now := time.Now()
	if !vacancy.IsOpen(now) {
		return result, errors.New("the vacancy is not accepting applications")
	}

	owned, err := i.documentStore.ListByIDs(userID, request.DocumentIDs)
	if err != nil {
		logger.WithError(err).Error("failed to load the selected documents")
		return result, errors.New("failed to load the selected documents")
	}
	if len(owned) != len(request.DocumentIDs) {
		return result, errors.New("a selected document was not found")
	}
	completeness := CheckCompleteness(vacancy.RequiredDocTypes(), owned, request.DocumentIDs)
	if !completeness.Complete {
		return result, errors.New("required documents are missing from the selection")
	}

	err = i.runInTx(func(tx *gorm.DB) error {
		referenceNumber, txErr := i.nextRefNumber(tx, now.Year())
		if txErr != nil {
			return errors.Wrap(txErr, "failed to generate the reference number")
		}
		rec := dbmodels.Application{
			ReferenceNumber: referenceNumber,
			UserID:          userID,
			VacancyID:       request.VacancyID,
			Status:          models.ApplicationStatusSubmitted,
			SubmittedAt:     now,
		}
		appID, txErr := i.store.Create(tx, rec)
		if txErr != nil {
			return txErr
		}
		if txErr = i.store.CreateDocLinks(tx, appID, request.DocumentIDs); txErr != nil {
			return txErr
		}
		result = applicationapimodels.SubmitResponse{
			ID:              appID,
			ReferenceNumber: referenceNumber,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, applicationstore.ErrDuplicateApplication) {
			return applicationapimodels.SubmitResponse{}, err
		}
		logger.WithError(err).Error("failed to submit the application")
		return applicationapimodels.SubmitResponse{}, errors.New("failed to submit the application")
	}
	logger.WithField("reference_number", result.ReferenceNumber).Info("application submitted")
	notify.Instance.ApplicationSubmitted(result.ID, result.ReferenceNumber, vacancy.PositionTitle)
	return result, nil
}

func (i impl) Completeness(userID, vacancyID string, selectedIDs []string) (result applicationapimodels.CompletenessView, err error) {
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return result, err
	}
	if vacancy == nil {
		return result, errors.New("vacancy not found")
	}
	owned, err := i.documentStore.ListByUser(userID)
	if err != nil {
		return result, err
	}
	return CheckCompleteness(vacancy.RequiredDocTypes(), owned, selectedIDs), nil
}

// ChangeStatus performs the transition and the history append in one
// transaction over a locked row, so the recorded old status always matches
// the value that was overwritten.
func (i impl) ChangeStatus(id, userID string, request applicationapimodels.StatusChangeRequest) error {
	logger := log.WithField("application_id", id).WithField("user_id", userID)
	actor, err := i.accountStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load the acting user")
		return errors.New("failed to load the acting user")
	}
	if actor == nil {
		return errors.New("acting user not found")
	}
	var oldStatus models.ApplicationStatus
	var applicantID string
	err = i.runInTx(func(tx *gorm.DB) error {
		rec, txErr := i.store.GetByIDForUpdate(tx, id)
		if txErr != nil {
			return txErr
		}
		if rec == nil {
			return errors.New("application not found")
		}
		oldStatus = rec.Status
		applicantID = rec.UserID
		if txErr = i.store.UpdateStatus(tx, id, request.Status); txErr != nil {
			return txErr
		}
		history := dbmodels.ApplicationStatusHistory{
			ApplicationID: id,
			OldStatus:     &oldStatus,
			NewStatus:     request.Status,
			ChangedByID:   userID,
			ChangedByName: actor.GetFullName(),
			Remarks:       request.Remarks,
		}
		_, txErr = i.historyStore.Create(tx, history)
		return txErr
	})
	if err != nil {
		logger.WithError(err).Error("failed to change the application status")
		return errors.New("failed to change the application status")
	}
	logger.
		WithField("old_status", oldStatus).
		WithField("new_status", request.Status).
		Info("application status changed")
	notify.Instance.StatusChanged(applicantID, id, oldStatus, request.Status)
	return nil
}

func (i impl) GetByID(id string) (view applicationapimodels.ApplicationView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, errors.New("application not found")
	}
	return applicationapimodels.Convert(*rec), nil
}

// GetOwn restricts the lookup to the applicant's own applications.
func (i impl) GetOwn(userID, id string) (view applicationapimodels.ApplicationView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, err
	}
	if rec == nil || rec.UserID != userID {
		return view, errors.New("application not found")
	}
	return applicationapimodels.Convert(*rec), nil
}

func (i impl) ListMy(userID string) (list []applicationapimodels.ApplicationView, err error) {
	recs, err := i.store.ListByUser(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to list applications")
		return nil, errors.New("failed to list applications")
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, applicationapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) List(filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list applications")
		return nil, 0, errors.New("failed to list applications")
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, applicationapimodels.Convert(rec))
	}
	return list, rowCount, nil
}

func (i impl) History(applicationID string) (list []applicationapimodels.HistoryView, err error) {
	recs, err := i.historyStore.List(applicationID)
	if err != nil {
		log.WithError(err).WithField("application_id", applicationID).Error("failed to list status history")
		return nil, errors.New("failed to list status history")
	}
	list = make([]applicationapimodels.HistoryView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, applicationapimodels.ConvertHistory(rec))
	}
	return list, nil
}

func (i impl) Documents(applicationID string) (list []documentapimodels.DocumentView, err error) {
	recs, err := i.store.ListDocuments(applicationID)
	if err != nil {
		return nil, err
	}
	list = make([]documentapimodels.DocumentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, documentapimodels.Convert(rec))
	}
	return list, nil
}

// ConfirmationSlip renders a PDF receipt for the applicant's own application.
func (i impl) ConfirmationSlip(userID, id string) (pdfFile []byte, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.UserID != userID {
		return nil, errors.New("application not found")
	}
	docs, err := i.store.ListDocuments(id)
	if err != nil {
		return nil, err
	}
	pdfFile, err = pdfexport.GenerateConfirmation(*rec, docs)
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("failed to generate the confirmation slip")
		return nil, errors.New("failed to generate the confirmation slip")
	}
	return pdfFile, nil
}

// Export writes the filtered list to an xlsx workbook. Pagination in the
// filter is ignored, the export always covers the whole match.
func (i impl) Export(filter applicationapimodels.ApplicationFilter) (file *bytes.Buffer, err error) {
	recs, err := i.store.ListAll(filter)
	if err != nil {
		log.WithError(err).Error("failed to list applications for the export")
		return nil, errors.New("failed to list applications for the export")
	}
	file, err = xlsexport.Instance.ExportApplicationList(recs)
	if err != nil {
		log.WithError(err).Error("failed to build the xlsx export")
		return nil, errors.New("failed to build the xlsx export")
	}
	return file, nil
}
