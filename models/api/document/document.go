package documentapimodels

import (
	"time"

	"jobportal-backend/models"
	dbmodels "jobportal-backend/models/db"
)

type DocumentView struct {
	ID           string              `json:"id"`
	DocumentType models.DocumentType `json:"document_type"`
	TypeName     string              `json:"type_name"`
	FileName     string              `json:"file_name"`
	FileSize     int64               `json:"file_size"`
	MimeType     string              `json:"mime_type"`
	UploadedAt   time.Time           `json:"uploaded_at"`
}

func Convert(rec dbmodels.Document) DocumentView {
	return DocumentView{
		ID:           rec.ID,
		DocumentType: rec.DocumentType,
		TypeName:     rec.DocumentType.ToHuman(),
		FileName:     rec.FileName,
		FileSize:     rec.FileSize,
		MimeType:     rec.MimeType,
		UploadedAt:   rec.CreatedAt,
	}
}
