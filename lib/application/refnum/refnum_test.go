package refnum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Run(`sequence is zero padded to six digits`, func(t *testing.T) {
		require.Equal(t, "APP-2026-000001", Format(2026, 1))
		require.Equal(t, "APP-2026-000042", Format(2026, 42))
	})

	t.Run(`sequence wider than six digits is kept whole`, func(t *testing.T) {
		require.Equal(t, "APP-2026-1234567", Format(2026, 1234567))
	})

	t.Run(`numbers are unique per year and sequence`, func(t *testing.T) {
		require.NotEqual(t, Format(2025, 7), Format(2026, 7))
		require.NotEqual(t, Format(2026, 7), Format(2026, 8))
	})
}
