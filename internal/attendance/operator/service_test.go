package operator

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rollcall/internal/attendance/mocks"
	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/remote"
	dErrors "rollcall/pkg/domain-errors"
)

func newTestService(t *testing.T) (*Service, *mocks.MockAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	api := mocks.NewMockAPI(ctrl)
	svc := NewService(api, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return svc, api
}

func TestFetchPendingAttendances_FullReplace(t *testing.T) {
	svc, api := newTestService(t)
	records := []models.PendingAttendanceRecord{
		{RecordID: "41", UserID: "u1", Status: models.StatusPendingApproval},
		{RecordID: "42", UserID: "u2", Status: models.StatusPendingApproval},
	}
	api.EXPECT().GetPendingAttendances(gomock.Any(), "sched-1").Return(records, nil)

	got, err := svc.FetchPendingAttendances(context.Background(), "sched-1")
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestApproveAttendance_FailureLeavesNothingBehind(t *testing.T) {
	svc, api := newTestService(t)
	remoteErr := dErrors.New(dErrors.CodeRemote, "status 500")
	api.EXPECT().ApproveAttendance(gomock.Any(), "42").Return(remoteErr)

	err := svc.ApproveAttendance(context.Background(), "42")
	assert.ErrorIs(t, err, remoteErr)
}

func TestResolveBatch_MidBatchFailureKeepsPriorSuccesses(t *testing.T) {
	svc, api := newTestService(t)
	api.EXPECT().ApproveAttendance(gomock.Any(), "1").Return(nil)
	api.EXPECT().ApproveAttendance(gomock.Any(), "2").Return(dErrors.New(dErrors.CodeRemote, "boom"))
	api.EXPECT().RejectAttendance(gomock.Any(), "3").Return(nil)

	results := svc.ResolveBatch(context.Background(), []Decision{
		{RecordID: "1", Approve: true},
		{RecordID: "2", Approve: true},
		{RecordID: "3", Approve: false},
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	// No rollback and no short-circuit: the third call still ran.
	assert.NoError(t, results[2].Err)
}

func TestSessionAttendance_AssemblesAggregate(t *testing.T) {
	svc, api := newTestService(t)
	session := models.Session{ID: "sess-1", Title: "정기 러닝"}
	stats := remote.SessionStats{AttendanceRate: 0.85, AttendedCount: 17, TotalCount: 20}
	pending := []models.PendingAttendanceRecord{{RecordID: "42", Status: models.StatusPendingApproval}}

	api.EXPECT().GetSession(gomock.Any(), "sess-1").Return(session, nil)
	api.EXPECT().GetSessionStats(gomock.Any(), "sess-1").Return(stats, nil)
	api.EXPECT().GetPendingAttendances(gomock.Any(), "sched-1").Return(pending, nil)

	agg, err := svc.SessionAttendance(context.Background(), "sess-1", "sched-1")
	require.NoError(t, err)
	assert.Equal(t, session, agg.Session)
	assert.Equal(t, 0.85, agg.AttendanceRate)
	assert.Equal(t, 17, agg.AttendedCount)
	assert.Equal(t, 20, agg.TotalCount)
	assert.Equal(t, pending, agg.PendingMembers)
}

func TestSessionAttendance_AnyFetchFailureFailsTheAggregate(t *testing.T) {
	svc, api := newTestService(t)
	remoteErr := dErrors.New(dErrors.CodeRemote, "stats down")
	api.EXPECT().GetSession(gomock.Any(), "sess-1").Return(models.Session{}, nil).AnyTimes()
	api.EXPECT().GetSessionStats(gomock.Any(), "sess-1").Return(remote.SessionStats{}, remoteErr)
	api.EXPECT().GetPendingAttendances(gomock.Any(), "sched-1").Return(nil, nil).AnyTimes()

	_, err := svc.SessionAttendance(context.Background(), "sess-1", "sched-1")
	assert.ErrorIs(t, err, remoteErr)
}

// fakeBackend models the backend of record for the reconciliation scenario:
// approving a record removes it from the pending set server-side, so the next
// full fetch no longer contains it.
type fakeBackend struct {
	remote.API // nil; any method not overridden below panics

	mu      sync.Mutex
	pending map[string][]models.PendingAttendanceRecord
}

func newFakeBackend(scheduleID string, records ...models.PendingAttendanceRecord) *fakeBackend {
	return &fakeBackend{pending: map[string][]models.PendingAttendanceRecord{scheduleID: records}}
}

func (f *fakeBackend) GetPendingAttendances(_ context.Context, scheduleID string) ([]models.PendingAttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.PendingAttendanceRecord{}, f.pending[scheduleID]...), nil
}

func (f *fakeBackend) ApproveAttendance(_ context.Context, recordID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for scheduleID, records := range f.pending {
		kept := records[:0]
		for _, r := range records {
			if r.RecordID != recordID {
				kept = append(kept, r)
			}
		}
		f.pending[scheduleID] = kept
	}
	return nil
}

func TestApproveThenRefetch_RecordLeavesPendingList(t *testing.T) {
	backend := newFakeBackend("sched-1",
		models.PendingAttendanceRecord{RecordID: "42", UserID: "u1", Status: models.StatusPendingApproval},
		models.PendingAttendanceRecord{RecordID: "43", UserID: "u2", Status: models.StatusPendingApproval},
	)
	svc := NewService(backend, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	ctx := context.Background()

	before, err := svc.FetchPendingAttendances(ctx, "sched-1")
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, svc.ApproveAttendance(ctx, "42"))

	after, err := svc.FetchPendingAttendances(ctx, "sched-1")
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "43", after[0].RecordID)
}
