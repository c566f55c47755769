package challenger

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"rollcall/internal/attendance/mocks"
	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/policy"
	"rollcall/internal/audit"
	dErrors "rollcall/pkg/domain-errors"
)

var (
	sessionStart = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	testSession  = models.Session{
		ID:       "sess-1",
		Title:    "정기 러닝",
		StartsAt: sessionStart,
		EndsAt:   sessionStart.Add(2 * time.Hour),
		Place:    models.Coordinate{Latitude: 37.5665, Longitude: 126.9780},
	}
	hereCoord = models.Coordinate{Latitude: 37.5666, Longitude: 126.9781}
)

type ServiceSuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	api     *mocks.MockAPI
	loc     *mocks.MockProvider
	store   *audit.InMemoryStore
	service *Service
	now     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockAPI(s.ctrl)
	s.loc = mocks.NewMockProvider(s.ctrl)
	s.store = audit.NewInMemoryStore()
	s.now = sessionStart.Add(5 * time.Minute) // squarely on time
	s.service = NewService(s.api, s.loc,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditor(audit.NewPublisher(s.store)),
		WithClock(func() time.Time { return s.now }),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) TestRequestGPSAttendance_NotAuthorized() {
	// No remote expectation: the gate must fail before any call is attempted.
	s.loc.EXPECT().Authorized().Return(false)

	_, err := s.service.RequestGPSAttendance(context.Background(), testSession, "user-1", "sheet-1")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeLocationNotAuthorized))
}

func (s *ServiceSuite) TestRequestGPSAttendance_NoCoordinate() {
	s.loc.EXPECT().Authorized().Return(true)
	s.loc.EXPECT().Current().Return(models.Coordinate{}, false)

	_, err := s.service.RequestGPSAttendance(context.Background(), testSession, "user-1", "sheet-1")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeLocationFailed))
}

func (s *ServiceSuite) TestRequestGPSAttendance_OutsideFence() {
	s.loc.EXPECT().Authorized().Return(true)
	s.loc.EXPECT().Current().Return(hereCoord, true)
	s.loc.EXPECT().InsideGeofence().Return(false)

	_, err := s.service.RequestGPSAttendance(context.Background(), testSession, "user-1", "sheet-1")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeAttendanceOutOfRange))

	// The refused attempt still leaves an audit trace.
	events, aerr := s.store.ListByUser(context.Background(), "user-1")
	s.Require().NoError(aerr)
	s.Require().Len(events, 1)
	s.Equal(audit.ActionCheckInAttempted, events[0].Action)
	s.Equal(string(dErrors.CodeAttendanceOutOfRange), events[0].Outcome)
}

func (s *ServiceSuite) TestRequestGPSAttendance_Success() {
	s.loc.EXPECT().Authorized().Return(true)
	s.loc.EXPECT().Current().Return(hereCoord, true)
	s.loc.EXPECT().InsideGeofence().Return(true)
	s.api.EXPECT().
		CheckAttendance(gomock.Any(), "sheet-1", hereCoord.Latitude, hereCoord.Longitude, true).
		Return("rec-77", nil)

	rec, err := s.service.RequestGPSAttendance(context.Background(), testSession, "user-1", "sheet-1")
	s.Require().NoError(err)

	// Local placeholder only: the backend resolves present/late later.
	s.Equal(models.StatusBeforeAttendance, rec.Status)
	s.Equal(models.RecordTypeGPS, rec.Type)
	s.Equal("rec-77", rec.ID)
	s.Require().NotNil(rec.Verification)
	s.True(rec.Verification.Verified)
	s.Equal(hereCoord, rec.Verification.Coordinate)
	s.Equal(s.now, rec.Verification.VerifiedAt)
}

func (s *ServiceSuite) TestRequestGPSAttendance_ExpiredWindowBlockedByDefault() {
	s.now = sessionStart.Add(90 * time.Minute)
	s.loc.EXPECT().Authorized().Return(true)
	s.loc.EXPECT().Current().Return(hereCoord, true)
	s.loc.EXPECT().InsideGeofence().Return(true)

	_, err := s.service.RequestGPSAttendance(context.Background(), testSession, "user-1", "sheet-1")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeAttendanceWindowClosed))
}

func (s *ServiceSuite) TestRequestGPSAttendance_ExpiredWindowAllowedByPolicy() {
	service := NewService(s.api, s.loc,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return sessionStart.Add(90 * time.Minute) }),
		WithExpiryPolicy(policy.ExpiryPolicyAllow),
	)
	s.loc.EXPECT().Authorized().Return(true)
	s.loc.EXPECT().Current().Return(hereCoord, true)
	s.loc.EXPECT().InsideGeofence().Return(true)
	s.api.EXPECT().
		CheckAttendance(gomock.Any(), "sheet-1", hereCoord.Latitude, hereCoord.Longitude, true).
		Return("rec-88", nil)

	rec, err := service.RequestGPSAttendance(context.Background(), testSession, "user-1", "sheet-1")
	s.Require().NoError(err)
	s.Equal("rec-88", rec.ID)
}

func (s *ServiceSuite) TestRequestGPSAttendance_RemoteFailurePropagatesUnchanged() {
	remoteErr := dErrors.New(dErrors.CodeRemote, "POST /checkin: status 502")
	s.loc.EXPECT().Authorized().Return(true)
	s.loc.EXPECT().Current().Return(hereCoord, true)
	s.loc.EXPECT().InsideGeofence().Return(true)
	s.api.EXPECT().
		CheckAttendance(gomock.Any(), "sheet-1", hereCoord.Latitude, hereCoord.Longitude, true).
		Return("", remoteErr)

	_, err := s.service.RequestGPSAttendance(context.Background(), testSession, "user-1", "sheet-1")
	s.Require().ErrorIs(err, remoteErr)
}

func (s *ServiceSuite) TestSubmitLateReason_EmptyReason() {
	// Whitespace-only reason never reaches the backend.
	_, err := s.service.SubmitLateReason(context.Background(), testSession, "user-1", "   ", "sheet-1")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeAttendanceReasonRequired))
}

func (s *ServiceSuite) TestSubmitLateReason_Success() {
	s.api.EXPECT().SubmitReason(gomock.Any(), "sheet-1", "지각합니다").Return("rec-55", nil)

	rec, err := s.service.SubmitLateReason(context.Background(), testSession, "user-1", "지각합니다", "sheet-1")
	s.Require().NoError(err)
	s.Equal(models.StatusPendingApproval, rec.Status)
	s.Equal(models.RecordTypeReason, rec.Type)
	s.Equal("지각합니다", rec.Reason)
}

func (s *ServiceSuite) TestSubmitAbsentReason_TrimsBeforeSubmitting() {
	s.api.EXPECT().SubmitReason(gomock.Any(), "sheet-1", "family emergency").Return("rec-56", nil)

	rec, err := s.service.SubmitAbsentReason(context.Background(), testSession, "user-1", " family emergency \n", "sheet-1")
	s.Require().NoError(err)
	s.Equal("family emergency", rec.Reason)
}

func (s *ServiceSuite) TestIsWithinAttendanceTime() {
	s.now = sessionStart.Add(-10 * time.Minute)
	s.Equal(policy.WindowOnTime, s.service.IsWithinAttendanceTime(testSession))

	s.now = sessionStart.Add(-20 * time.Minute)
	s.Equal(policy.WindowTooEarly, s.service.IsWithinAttendanceTime(testSession))

	s.now = sessionStart.Add(45 * time.Minute)
	s.Equal(policy.WindowLate, s.service.IsWithinAttendanceTime(testSession))

	s.now = sessionStart.Add(90 * time.Minute)
	s.Equal(policy.WindowExpired, s.service.IsWithinAttendanceTime(testSession))
}

func (s *ServiceSuite) TestCurrentAddress() {
	s.loc.EXPECT().Current().Return(hereCoord, true)
	s.loc.EXPECT().ReverseGeocode(gomock.Any(), hereCoord).Return("서울특별시 중구 세종대로 110", nil)

	addr, err := s.service.CurrentAddress(context.Background())
	s.Require().NoError(err)
	s.Equal("서울특별시 중구 세종대로 110", addr)
}

func (s *ServiceSuite) TestCurrentAddress_NoFix() {
	s.loc.EXPECT().Current().Return(models.Coordinate{}, false)

	_, err := s.service.CurrentAddress(context.Background())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeLocationFailed))
}

func (s *ServiceSuite) TestStopGeofenceMonitoring_Idempotent() {
	s.loc.EXPECT().StopAllGeofenceMonitoring().Times(2)
	s.service.StopGeofenceMonitoring()
	s.service.StopGeofenceMonitoring()
}

func (s *ServiceSuite) TestFetchAvailableSchedules_Passthrough() {
	schedules := []models.AvailableAttendanceSchedule{{SheetID: "sheet-1", Session: testSession}}
	s.api.EXPECT().GetAvailableSchedules(gomock.Any()).Return(schedules, nil)

	got, err := s.service.FetchAvailableSchedules(context.Background())
	s.Require().NoError(err)
	s.Equal(schedules, got)
}
