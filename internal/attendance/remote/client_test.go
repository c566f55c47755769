package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/internal/attendance/models"
	dErrors "rollcall/pkg/domain-errors"
)

func TestClient_GetPendingAttendances(t *testing.T) {
	submitted := time.Date(2026, 3, 14, 10, 20, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/attendances/schedules/sched-1/pending", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]pendingRecordDTO{{
			RecordID:     "42",
			UserID:       "user-7",
			UserName:     "김민준",
			Nickname:     "mj",
			Organization: "연세대학교",
			Status:       "pending_approval",
			Reason:       "지각합니다",
			SubmittedAt:  submitted,
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	records, err := c.GetPendingAttendances(context.Background(), "sched-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "42", records[0].RecordID)
	assert.Equal(t, models.StatusPendingApproval, records[0].Status)
	assert.Equal(t, "지각합니다", records[0].Reason)
	assert.True(t, submitted.Equal(records[0].SubmittedAt))
}

func TestClient_GetPendingAttendances_RejectsUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]pendingRecordDTO{{RecordID: "1", Status: "mystery"}})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").GetPendingAttendances(context.Background(), "s")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestClient_CheckAttendance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/attendances/sheets/sheet-9/checkin", r.URL.Path)

		var body checkAttendanceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.InDelta(t, 37.5665, body.Latitude, 0.0001)
		assert.True(t, body.LocationVerified)

		_ = json.NewEncoder(w).Encode(recordIDResponse{RecordID: "rec-123"})
	}))
	defer srv.Close()

	id, err := NewClient(srv.URL, "").CheckAttendance(context.Background(), "sheet-9", 37.5665, 126.9780, true)
	require.NoError(t, err)
	assert.Equal(t, "rec-123", id)
}

func TestClient_ApproveAttendance_ErrorMapping(t *testing.T) {
	var status int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, "")

	status = http.StatusNoContent
	require.NoError(t, c.ApproveAttendance(context.Background(), "42"))

	status = http.StatusNotFound
	err := c.ApproveAttendance(context.Background(), "42")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	status = http.StatusInternalServerError
	err = c.RejectAttendance(context.Background(), "42")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeRemote))
}

func TestClient_ConnectionFailureIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // deliberately dead

	_, err := NewClient(srv.URL, "").GetMyHistory(context.Background())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeRemote))
}
