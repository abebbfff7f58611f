package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationStatusValidate(t *testing.T) {
	t.Run(`every defined status is accepted`, func(t *testing.T) {
		for status := range applicationStatusHumanName {
			require.NoError(t, status.Validate())
		}
	})

	t.Run(`unknown status is rejected`, func(t *testing.T) {
		require.Error(t, ApplicationStatus("approved").Validate())
		require.Error(t, ApplicationStatus("").Validate())
	})
}
