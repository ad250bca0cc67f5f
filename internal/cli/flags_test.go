package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAge(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.Local)

	t.Run("blank means no filter", func(t *testing.T) {
		cutoff, err := parseAge("", now)
		require.NoError(t, err)
		assert.Nil(t, cutoff)

		cutoff, err = parseAge("   ", now)
		require.NoError(t, err)
		assert.Nil(t, cutoff)
	})

	t.Run("absolute date", func(t *testing.T) {
		cutoff, err := parseAge("2026-01-15", now)
		require.NoError(t, err)
		require.NotNil(t, cutoff)
		assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local), *cutoff)
	})

	t.Run("day count", func(t *testing.T) {
		cutoff, err := parseAge("30d", now)
		require.NoError(t, err)
		require.NotNil(t, cutoff)
		assert.Equal(t, now.AddDate(0, 0, -30), *cutoff)
	})

	t.Run("duration", func(t *testing.T) {
		cutoff, err := parseAge("72h", now)
		require.NoError(t, err)
		require.NotNil(t, cutoff)
		assert.Equal(t, now.Add(-72*time.Hour), *cutoff)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := parseAge("soon", now)
		assert.Error(t, err)

		_, err = parseAge("2026-13-45", now)
		assert.Error(t, err)
	})
}
