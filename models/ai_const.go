package models

import "github.com/pkg/errors"

type AssistPurpose string

const (
	AssistPurposeJobSearch   AssistPurpose = "job_search"
	AssistPurposeApplication AssistPurpose = "application_help"
	AssistPurposeDocuments   AssistPurpose = "document_help"
	AssistPurposeGeneral     AssistPurpose = "general"
)

var assistPurposeHumanName = map[AssistPurpose]string{
	AssistPurposeJobSearch:   "Job Search",
	AssistPurposeApplication: "Application Help",
	AssistPurposeDocuments:   "Document Help",
	AssistPurposeGeneral:     "General Question",
}

func (p AssistPurpose) ToHuman() string {
	if human, exist := assistPurposeHumanName[p]; exist {
		return human
	}
	return string(p)
}

func (p AssistPurpose) Validate() error {
	if _, exist := assistPurposeHumanName[p]; !exist {
		return errors.Errorf("unknown assistant purpose: %v", p)
	}
	return nil
}
