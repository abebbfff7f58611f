package models

import "github.com/pkg/errors"

type EmploymentType string

const (
	EmploymentPermanent EmploymentType = "permanent"
	EmploymentCos       EmploymentType = "cos"
	EmploymentJo        EmploymentType = "jo"
)

var employmentHumanName = map[EmploymentType]string{
	EmploymentPermanent: "Permanent",
	EmploymentCos:       "Contract of Service",
	EmploymentJo:        "Job Order",
}

func (e EmploymentType) ToHuman() string {
	if human, exist := employmentHumanName[e]; exist {
		return human
	}
	return string(e)
}

func (e EmploymentType) Validate() error {
	if _, exist := employmentHumanName[e]; !exist {
		return errors.Errorf("unknown employment type: %v", e)
	}
	return nil
}

type VacancyStatus string

const (
	VacancyStatusDraft     VacancyStatus = "draft"
	VacancyStatusPublished VacancyStatus = "published"
	VacancyStatusClosed    VacancyStatus = "closed"
	VacancyStatusArchived  VacancyStatus = "archived"
)

var vacancyStatusHumanName = map[VacancyStatus]string{
	VacancyStatusDraft:     "Draft",
	VacancyStatusPublished: "Published",
	VacancyStatusClosed:    "Closed",
	VacancyStatusArchived:  "Archived",
}

func (s VacancyStatus) ToHuman() string {
	if human, exist := vacancyStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// Vacancy lifecycle is not restricted to a transition graph, only enum membership is checked.
func (s VacancyStatus) Validate() error {
	if _, exist := vacancyStatusHumanName[s]; !exist {
		return errors.Errorf("unknown vacancy status: %v", s)
	}
	return nil
}
