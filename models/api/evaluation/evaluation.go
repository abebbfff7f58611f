package evaluationapimodels

import (
	"time"

	"github.com/pkg/errors"

	"jobportal-backend/models"
	dbmodels "jobportal-backend/models/db"
)

type EvaluationData struct {
	Score          int                   `json:"score"` // 0..100
	Recommendation models.Recommendation `json:"recommendation"`
	Remarks        string                `json:"remarks"`
}

// Validate rejects out-of-range scores before anything is persisted.
func (e EvaluationData) Validate() error {
	if e.Score < 0 || e.Score > 100 {
		return errors.Errorf("score must be between 0 and 100, got %v", e.Score)
	}
	return e.Recommendation.Validate()
}

type EvaluationView struct {
	EvaluationData
	ID                 string    `json:"id"`
	ApplicationID      string    `json:"application_id"`
	ReviewerID         string    `json:"reviewer_id"`
	ReviewerName       string    `json:"reviewer_name"`
	RecommendationName string    `json:"recommendation_name"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func Convert(rec dbmodels.Evaluation) EvaluationView {
	view := EvaluationView{
		EvaluationData: EvaluationData{
			Score:          rec.Score,
			Recommendation: rec.Recommendation,
			Remarks:        rec.Remarks,
		},
		ID:                 rec.ID,
		ApplicationID:      rec.ApplicationID,
		ReviewerID:         rec.ReviewerID,
		RecommendationName: rec.Recommendation.ToHuman(),
		UpdatedAt:          rec.UpdatedAt,
	}
	if rec.Reviewer != nil {
		view.ReviewerName = rec.Reviewer.GetFullName()
	}
	return view
}

type AssignmentView struct {
	ApplicationID   string                   `json:"application_id"`
	ReferenceNumber string                   `json:"reference_number"`
	PositionTitle   string                   `json:"position_title"`
	ApplicantName   string                   `json:"applicant_name"`
	Status          models.ApplicationStatus `json:"status"`
	AssignedAt      time.Time                `json:"assigned_at"`
	Evaluated       bool                     `json:"evaluated"`
}

func ConvertAssignment(rec dbmodels.ReviewerAssignment, evaluated bool) AssignmentView {
	view := AssignmentView{
		ApplicationID: rec.ApplicationID,
		AssignedAt:    rec.AssignedAt,
		Evaluated:     evaluated,
	}
	if rec.Application != nil {
		view.ReferenceNumber = rec.Application.ReferenceNumber
		view.Status = rec.Application.Status
		if rec.Application.Vacancy != nil {
			view.PositionTitle = rec.Application.Vacancy.PositionTitle
		}
		if rec.Application.User != nil {
			view.ApplicantName = rec.Application.User.GetFullName()
		}
	}
	return view
}
