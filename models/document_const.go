package models

import "github.com/pkg/errors"

// DocumentType is a typed tag at the data layer so the required-document list
// and stored document types cannot drift apart.
type DocumentType string

const (
	DocumentTypePds         DocumentType = "pds"
	DocumentTypeResume      DocumentType = "resume"
	DocumentTypeTranscript  DocumentType = "transcript"
	DocumentTypeEligibility DocumentType = "eligibility"
	DocumentTypeTraining    DocumentType = "training"
	DocumentTypeEmployment  DocumentType = "employment"
	DocumentTypePhoto       DocumentType = "photo"
	DocumentTypeOther       DocumentType = "other"
)

var documentTypeHumanName = map[DocumentType]string{
	DocumentTypePds:         "Personal Data Sheet",
	DocumentTypeResume:      "Resume",
	DocumentTypeTranscript:  "Transcript of Records",
	DocumentTypeEligibility: "Certificate of Eligibility",
	DocumentTypeTraining:    "Training Certificate",
	DocumentTypeEmployment:  "Certificate of Employment",
	DocumentTypePhoto:       "ID Photo",
	DocumentTypeOther:       "Other Document",
}

func (d DocumentType) ToHuman() string {
	if human, exist := documentTypeHumanName[d]; exist {
		return human
	}
	return string(d)
}

func (d DocumentType) Validate() error {
	if _, exist := documentTypeHumanName[d]; !exist {
		return errors.Errorf("unknown document type: %v", d)
	}
	return nil
}
