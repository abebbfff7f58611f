package applicationhandler

import (
	"jobportal-backend/models"
	applicationapimodels "jobportal-backend/models/api/application"
	dbmodels "jobportal-backend/models/db"
)

// CheckCompleteness reports, for every required document type, whether the
// selection satisfies it. A type the applicant never uploaded and a type that
// is uploaded but not selected are reported distinctly, so the UI can offer
// "upload now" vs "select existing".
func CheckCompleteness(required []models.DocumentType, owned []dbmodels.Document, selectedIDs []string) applicationapimodels.CompletenessView {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}
	ownedTypes := map[models.DocumentType]bool{}
	selectedTypes := map[models.DocumentType]bool{}
	for _, doc := range owned {
		ownedTypes[doc.DocumentType] = true
		if selected[doc.ID] {
			selectedTypes[doc.DocumentType] = true
		}
	}

	result := applicationapimodels.CompletenessView{
		Complete:     true,
		Requirements: make([]applicationapimodels.RequirementView, 0, len(required)),
	}
	for _, docType := range required {
		state := applicationapimodels.RequirementSatisfied
		switch {
		case selectedTypes[docType]:
		case ownedTypes[docType]:
			state = applicationapimodels.RequirementNotSelected
			result.Complete = false
		default:
			state = applicationapimodels.RequirementNotUploaded
			result.Complete = false
		}
		result.Requirements = append(result.Requirements, applicationapimodels.RequirementView{
			DocumentType: docType,
			TypeName:     docType.ToHuman(),
			State:        state,
		})
	}
	return result
}
