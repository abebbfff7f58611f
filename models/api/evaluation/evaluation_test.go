package evaluationapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobportal-backend/models"
)

func TestEvaluationDataValidate(t *testing.T) {
	t.Run(`score out of range is rejected`, func(t *testing.T) {
		data := EvaluationData{Score: 150, Recommendation: models.RecommendationNormal}
		require.Error(t, data.Validate())

		data.Score = -1
		require.Error(t, data.Validate())
	})

	t.Run(`score bounds are accepted`, func(t *testing.T) {
		data := EvaluationData{Score: 0, Recommendation: models.RecommendationNormal}
		require.NoError(t, data.Validate())

		data.Score = 100
		require.NoError(t, data.Validate())
	})

	t.Run(`unknown recommendation is rejected`, func(t *testing.T) {
		data := EvaluationData{Score: 80, Recommendation: models.Recommendation("maybe")}
		require.Error(t, data.Validate())
	})
}
