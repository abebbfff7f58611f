package applicationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobportal-backend/models"
	applicationapimodels "jobportal-backend/models/api/application"
	dbmodels "jobportal-backend/models/db"
)

func ownedDoc(id string, docType models.DocumentType) dbmodels.Document {
	doc := dbmodels.Document{DocumentType: docType}
	doc.ID = id
	return doc
}

func requirementState(t *testing.T, view applicationapimodels.CompletenessView, docType models.DocumentType) applicationapimodels.RequirementState {
	t.Helper()
	for _, req := range view.Requirements {
		if req.DocumentType == docType {
			return req.State
		}
	}
	t.Fatalf("requirement for %s not reported", docType)
	return ""
}

func TestCheckCompleteness(t *testing.T) {
	required := []models.DocumentType{models.DocumentTypePds, models.DocumentTypeResume}

	t.Run(`missing type is reported as not uploaded`, func(t *testing.T) {
		owned := []dbmodels.Document{ownedDoc("doc-1", models.DocumentTypePds)}
		view := CheckCompleteness(required, owned, []string{"doc-1"})
		require.False(t, view.Complete)
		require.Equal(t, applicationapimodels.RequirementSatisfied, requirementState(t, view, models.DocumentTypePds))
		require.Equal(t, applicationapimodels.RequirementNotUploaded, requirementState(t, view, models.DocumentTypeResume))
	})

	t.Run(`owned but unselected type is reported distinctly`, func(t *testing.T) {
		owned := []dbmodels.Document{
			ownedDoc("doc-1", models.DocumentTypePds),
			ownedDoc("doc-2", models.DocumentTypeResume),
		}
		view := CheckCompleteness(required, owned, []string{"doc-1"})
		require.False(t, view.Complete)
		require.Equal(t, applicationapimodels.RequirementNotSelected, requirementState(t, view, models.DocumentTypeResume))
	})

	t.Run(`selection covering every required type passes`, func(t *testing.T) {
		owned := []dbmodels.Document{
			ownedDoc("doc-1", models.DocumentTypePds),
			ownedDoc("doc-2", models.DocumentTypeResume),
		}
		view := CheckCompleteness(required, owned, []string{"doc-1", "doc-2"})
		require.True(t, view.Complete)
		require.Len(t, view.Requirements, 2)
		for _, req := range view.Requirements {
			require.Equal(t, applicationapimodels.RequirementSatisfied, req.State)
		}
	})

	t.Run(`no requirements means always complete`, func(t *testing.T) {
		view := CheckCompleteness(nil, nil, nil)
		require.True(t, view.Complete)
		require.Empty(t, view.Requirements)
	})

	t.Run(`extra selected documents do not affect the verdict`, func(t *testing.T) {
		owned := []dbmodels.Document{
			ownedDoc("doc-1", models.DocumentTypePds),
			ownedDoc("doc-2", models.DocumentTypeResume),
			ownedDoc("doc-3", models.DocumentTypePhoto),
		}
		view := CheckCompleteness(required, owned, []string{"doc-1", "doc-2", "doc-3"})
		require.True(t, view.Complete)
	})
}
