package applicationapimodels

import (
	"time"

	"github.com/pkg/errors"

	"jobportal-backend/models"
	apimodels "jobportal-backend/models/api"
	dbmodels "jobportal-backend/models/db"
)

type SubmitRequest struct {
	VacancyID   string   `json:"vacancy_id"`
	DocumentIDs []string `json:"document_ids"` // the applicant's documents attached to this application
}

func (r SubmitRequest) Validate() error {
	if r.VacancyID == "" {
		return errors.New("vacancy is required")
	}
	return nil
}

type SubmitResponse struct {
	ID              string `json:"id"`
	ReferenceNumber string `json:"reference_number"`
}

type ApplicationView struct {
	ID              string                   `json:"id"`
	ReferenceNumber string                   `json:"reference_number"`
	VacancyID       string                   `json:"vacancy_id"`
	PositionTitle   string                   `json:"position_title"`
	ApplicantName   string                   `json:"applicant_name"`
	Status          models.ApplicationStatus `json:"status"`
	StatusName      string                   `json:"status_name"`
	SubmittedAt     time.Time                `json:"submitted_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ID:              rec.ID,
		ReferenceNumber: rec.ReferenceNumber,
		VacancyID:       rec.VacancyID,
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		SubmittedAt:     rec.SubmittedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
	if rec.Vacancy != nil {
		view.PositionTitle = rec.Vacancy.PositionTitle
	}
	if rec.User != nil {
		view.ApplicantName = rec.User.GetFullName()
	}
	return view
}

type StatusChangeRequest struct {
	Status  models.ApplicationStatus `json:"status"`
	Remarks string                   `json:"remarks"`
}

func (r StatusChangeRequest) Validate() error {
	return r.Status.Validate()
}

type AssignReviewerRequest struct {
	ReviewerID string `json:"reviewer_id"`
}

func (r AssignReviewerRequest) Validate() error {
	if r.ReviewerID == "" {
		return errors.New("reviewer is required")
	}
	return nil
}

type ApplicationFilter struct {
	apimodels.Pagination
	VacancyID string                     `json:"vacancy_id"`
	Statuses  []models.ApplicationStatus `json:"statuses"`
	Search    string                     `json:"search"` // matched against reference number and applicant name
}

func (f ApplicationFilter) Validate() error {
	for _, status := range f.Statuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type HistoryView struct {
	OldStatus     *models.ApplicationStatus `json:"old_status"` // nil on the first transition
	NewStatus     models.ApplicationStatus  `json:"new_status"`
	ChangedByName string                    `json:"changed_by_name"`
	Remarks       string                    `json:"remarks"`
	CreatedAt     time.Time                 `json:"created_at"`
}

func ConvertHistory(rec dbmodels.ApplicationStatusHistory) HistoryView {
	return HistoryView{
		OldStatus:     rec.OldStatus,
		NewStatus:     rec.NewStatus,
		ChangedByName: rec.ChangedByName,
		Remarks:       rec.Remarks,
		CreatedAt:     rec.CreatedAt,
	}
}

// RequirementState tells the UI whether a required type needs an upload or
// just a selection.
type RequirementState string

const (
	RequirementSatisfied   RequirementState = "satisfied"
	RequirementNotSelected RequirementState = "not_selected" // uploaded but not picked
	RequirementNotUploaded RequirementState = "not_uploaded" // applicant has no document of this type
)

type RequirementView struct {
	DocumentType models.DocumentType `json:"document_type"`
	TypeName     string              `json:"type_name"`
	State        RequirementState    `json:"state"`
}

type CompletenessView struct {
	Complete     bool              `json:"complete"`
	Requirements []RequirementView `json:"requirements"`
}
