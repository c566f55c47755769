package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rollcall/pkg/domain-errors"
)

func TestNewGPSRecord(t *testing.T) {
	verifiedAt := time.Date(2026, 3, 14, 10, 2, 0, 0, time.UTC)
	rec := NewGPSRecord("rec-1", "sess-1", "user-1", LocationVerification{
		Verified:   true,
		Coordinate: Coordinate{Latitude: 37.5665, Longitude: 126.9780},
		Address:    "서울특별시 중구",
		VerifiedAt: verifiedAt,
	})

	assert.Equal(t, StatusBeforeAttendance, rec.Status)
	assert.Equal(t, RecordTypeGPS, rec.Type)
	require.NotNil(t, rec.Verification)
	assert.True(t, rec.Verification.Verified)
	assert.Equal(t, verifiedAt, rec.Verification.VerifiedAt)
	assert.Empty(t, rec.Reason)
}

func TestNewReasonRecord(t *testing.T) {
	t.Run("whitespace-only reason is rejected", func(t *testing.T) {
		_, err := NewReasonRecord("rec-1", "sess-1", "user-1", "   ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAttendanceReasonRequired))
	})

	t.Run("valid reason yields pending approval", func(t *testing.T) {
		rec, err := NewReasonRecord("rec-1", "sess-1", "user-1", "지각합니다")
		require.NoError(t, err)
		assert.Equal(t, StatusPendingApproval, rec.Status)
		assert.Equal(t, RecordTypeReason, rec.Type)
		assert.Equal(t, "지각합니다", rec.Reason)
		assert.Nil(t, rec.Verification)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		rec, err := NewReasonRecord("rec-1", "sess-1", "user-1", "  overslept \n")
		require.NoError(t, err)
		assert.Equal(t, "overslept", rec.Reason)
	})
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"before_attendance", "pending_approval", "present", "late", "absent"} {
		st, err := ParseStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, st.String())
	}

	_, err := ParseStatus("approved")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

	_, err = ParseStatus("")
	require.Error(t, err)
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusBeforeAttendance.Terminal())
	assert.False(t, StatusPendingApproval.Terminal())
	assert.True(t, StatusPresent.Terminal())
	assert.True(t, StatusLate.Terminal())
	assert.True(t, StatusAbsent.Terminal())
}
