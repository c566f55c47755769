package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rollcall/pkg/domain-errors"
)

func TestGate_FailsClosedWhenUnauthorized(t *testing.T) {
	// Unauthorized must surface its own error, not fall through to the
	// reason-submission path as if the user were merely outside the fence.
	_, err := Gate(FenceSnapshot{Authorized: false, InsideFence: true}, WindowOnTime, ExpiryPolicyAllow)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeLocationNotAuthorized))
}

func TestGate_InsideFence(t *testing.T) {
	elig, err := Gate(FenceSnapshot{Authorized: true, InsideFence: true}, WindowOnTime, ExpiryPolicyAllow)
	require.NoError(t, err)
	assert.True(t, elig.GPSCheckIn)
	assert.False(t, elig.ReasonSubmission)
}

func TestGate_OutsideFence(t *testing.T) {
	elig, err := Gate(FenceSnapshot{Authorized: true, InsideFence: false}, WindowOnTime, ExpiryPolicyAllow)
	require.NoError(t, err)
	assert.False(t, elig.GPSCheckIn)
	assert.True(t, elig.ReasonSubmission)
}

func TestGate_ExpiryPolicies(t *testing.T) {
	snap := FenceSnapshot{Authorized: true, InsideFence: true}

	t.Run("allow keeps gps eligible after expiry", func(t *testing.T) {
		elig, err := Gate(snap, WindowExpired, ExpiryPolicyAllow)
		require.NoError(t, err)
		assert.True(t, elig.GPSCheckIn)
	})

	t.Run("block refuses gps after expiry and opens the reason path", func(t *testing.T) {
		elig, err := Gate(snap, WindowExpired, ExpiryPolicyBlock)
		require.NoError(t, err)
		assert.False(t, elig.GPSCheckIn)
		assert.True(t, elig.ReasonSubmission)
	})

	t.Run("block only bites in the expired window", func(t *testing.T) {
		for _, w := range []Window{WindowTooEarly, WindowOnTime, WindowLate} {
			elig, err := Gate(snap, w, ExpiryPolicyBlock)
			require.NoError(t, err)
			assert.True(t, elig.GPSCheckIn, string(w))
		}
	})
}
