package models

import "github.com/pkg/errors"

type ApplicationStatus string

const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusSelected    ApplicationStatus = "selected"
	ApplicationStatusNotSelected ApplicationStatus = "not_selected"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusSubmitted:   "Submitted",
	ApplicationStatusUnderReview: "Under Review",
	ApplicationStatusShortlisted: "Shortlisted",
	ApplicationStatusInterview:   "For Interview",
	ApplicationStatusSelected:    "Selected",
	ApplicationStatusNotSelected: "Not Selected",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// Any status may follow any other, the UI ordering is a suggestion not a rule.
// Only membership in the enumeration is validated.
func (s ApplicationStatus) Validate() error {
	if _, exist := applicationStatusHumanName[s]; !exist {
		return errors.Errorf("unknown application status: %v", s)
	}
	return nil
}

type Recommendation string

const (
	RecommendationHigh     Recommendation = "highly_recommended"
	RecommendationNormal   Recommendation = "recommended"
	RecommendationReview   Recommendation = "for_further_review"
	RecommendationNegative Recommendation = "not_recommended"
)

var recommendationHumanName = map[Recommendation]string{
	RecommendationHigh:     "Highly Recommended",
	RecommendationNormal:   "Recommended",
	RecommendationReview:   "For Further Review",
	RecommendationNegative: "Not Recommended",
}

func (r Recommendation) ToHuman() string {
	if human, exist := recommendationHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r Recommendation) Validate() error {
	if _, exist := recommendationHumanName[r]; !exist {
		return errors.Errorf("unknown recommendation: %v", r)
	}
	return nil
}
