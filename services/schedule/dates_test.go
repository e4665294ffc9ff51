package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateCanonicalIsIdempotent(t *testing.T) {
	got, err := NormalizeDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", got)

	again, err := NormalizeDate(got)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestNormalizeDateAcceptedFormats(t *testing.T) {
	cases := map[string]string{
		"2025-06-01":          "2025-06-01",
		" 2025-06-01 ":        "2025-06-01",
		"2025-06-01T09:30:00": "2025-06-01",
		"2025/06/01":          "2025-06-01",
		"06/01/2025":          "2025-06-01",
		"Jun 1, 2025":         "2025-06-01",
		"June 1, 2025":        "2025-06-01",
		"2025-06-01 09:30:00": "2025-06-01",
	}
	for input, want := range cases {
		got, err := NormalizeDate(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "tomorrow", "2025-13-40", "10:00"} {
		_, err := NormalizeDate(input)
		require.Error(t, err, "input %q", input)
		assert.IsType(t, InvalidDateError{}, err, "input %q", input)
	}
}

func TestPreviousDay(t *testing.T) {
	assert.Equal(t, "2025-05-31", previousDay("2025-06-01"))
	assert.Equal(t, "2024-12-31", previousDay("2025-01-01"))
}
