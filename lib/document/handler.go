package documenthandler

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"jobportal-backend/db"
	documentstore "jobportal-backend/lib/document/store"
	filestorage "jobportal-backend/lib/file-storage"
	"jobportal-backend/models"
	documentapimodels "jobportal-backend/models/api/document"
	dbmodels "jobportal-backend/models/db"
)

type Provider interface {
	Upload(ctx context.Context, userID string, docType models.DocumentType, fileName, mimeType string, file []byte) (view documentapimodels.DocumentView, err error)
	List(userID string) (list []documentapimodels.DocumentView, err error)
	Download(ctx context.Context, userID, id string) (fileName string, file []byte, err error)
	Delete(ctx context.Context, userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   documentstore.NewInstance(db.DB),
		storage: filestorage.Instance,
	}
}

type impl struct {
	store   documentstore.Provider
	storage filestorage.Provider
}

// Upload stores the object first and the record second, so a failed object
// write never leaves a dangling document row.
func (i impl) Upload(ctx context.Context, userID string, docType models.DocumentType, fileName, mimeType string, file []byte) (view documentapimodels.DocumentView, err error) {
	logger := log.WithField("user_id", userID).WithField("document_type", docType)
	if err = docType.Validate(); err != nil {
		return view, err
	}
	if len(file) == 0 {
		return view, errors.New("file is empty")
	}
	docID := uuid.NewString()
	path := filestorage.DocumentPath(userID, docID)
	err = i.storage.Upload(ctx, path, bytes.NewReader(file), int64(len(file)), mimeType)
	if err != nil {
		logger.WithError(err).Error("failed to upload the document")
		return view, errors.New("failed to upload the document")
	}
	rec := dbmodels.Document{
		BaseModel:    dbmodels.BaseModel{ID: docID},
		UserID:       userID,
		DocumentType: docType,
		FileName:     fileName,
		FilePath:     path,
		FileSize:     int64(len(file)),
		MimeType:     mimeType,
	}
	_, err = i.store.Save(rec)
	if err != nil {
		logger.WithError(err).Error("failed to save the document record")
		return view, errors.New("failed to save the document record")
	}
	return documentapimodels.Convert(rec), nil
}

func (i impl) List(userID string) (list []documentapimodels.DocumentView, err error) {
	recs, err := i.store.ListByUser(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to list documents")
		return nil, errors.New("failed to list documents")
	}
	list = make([]documentapimodels.DocumentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, documentapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) Download(ctx context.Context, userID, id string) (fileName string, file []byte, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil || rec.UserID != userID {
		return "", nil, errors.New("document not found")
	}
	file, err = i.storage.Download(ctx, rec.FilePath)
	if err != nil {
		log.WithError(err).WithField("document_id", id).Error("failed to download the document")
		return "", nil, errors.New("failed to download the document")
	}
	return rec.FileName, file, nil
}

func (i impl) Delete(ctx context.Context, userID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil || rec.UserID != userID {
		return errors.New("document not found")
	}
	if err = i.store.Delete(userID, id); err != nil {
		return err
	}
	if err = i.storage.Remove(ctx, rec.FilePath); err != nil {
		// the record is gone, the orphaned object is only logged
		log.WithError(err).WithField("path", rec.FilePath).Error("failed to remove the stored object")
	}
	return nil
}
