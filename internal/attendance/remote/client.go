package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rollcall/internal/attendance/models"
	dErrors "rollcall/pkg/domain-errors"
)

// Client is the JSON/HTTP implementation of API. Timeouts are the transport's
// business: the embedded http.Client carries them, and this layer adds none.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for the backend at baseURL. token is sent as a
// bearer credential on every request.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Wire DTOs. Kept private; decoding funnels every status through
// models.ParseStatus so unknown lifecycle values are rejected at the boundary.

type scheduleDTO struct {
	SheetID   string    `json:"sheetId"`
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type historyItemDTO struct {
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	HeldAt    time.Time `json:"heldAt"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
}

type pendingRecordDTO struct {
	RecordID     string    `json:"recordId"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	Nickname     string    `json:"nickname"`
	Organization string    `json:"organization"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason,omitempty"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

type sessionDTO struct {
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type sessionStatsDTO struct {
	AttendanceRate float64 `json:"attendanceRate"`
	AttendedCount  int     `json:"attendedCount"`
	TotalCount     int     `json:"totalCount"`
}

type checkAttendanceRequest struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	LocationVerified bool    `json:"locationVerified"`
}

type submitReasonRequest struct {
	Reason string `json:"reason"`
}

type recordIDResponse struct {
	RecordID string `json:"recordId"`
}

func (c *Client) GetAvailableSchedules(ctx context.Context) ([]models.AvailableAttendanceSchedule, error) {
	var dtos []scheduleDTO
	if err := c.do(ctx, http.MethodGet, "/attendances/schedules", nil, &dtos); err != nil {
		return nil, err
	}
	schedules := make([]models.AvailableAttendanceSchedule, 0, len(dtos))
	for _, d := range dtos {
		schedules = append(schedules, models.AvailableAttendanceSchedule{
			SheetID: d.SheetID,
			Session: models.Session{
				ID:       d.SessionID,
				Title:    d.Title,
				StartsAt: d.StartsAt,
				EndsAt:   d.EndsAt,
				Place:    models.Coordinate{Latitude: d.Latitude, Longitude: d.Longitude},
			},
		})
	}
	return schedules, nil
}

func (c *Client) GetMyHistory(ctx context.Context) ([]models.AttendanceHistoryItem, error) {
	var dtos []historyItemDTO
	if err := c.do(ctx, http.MethodGet, "/attendances/me", nil, &dtos); err != nil {
		return nil, err
	}
	return historyFromDTOs(dtos)
}

func (c *Client) GetChallengerHistory(ctx context.Context, challengerID string) ([]models.AttendanceHistoryItem, error) {
	var dtos []historyItemDTO
	path := "/attendances/challengers/" + url.PathEscape(challengerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	return historyFromDTOs(dtos)
}

func historyFromDTOs(dtos []historyItemDTO) ([]models.AttendanceHistoryItem, error) {
	items := make([]models.AttendanceHistoryItem, 0, len(dtos))
	for _, d := range dtos {
		status, err := models.ParseStatus(d.Status)
		if err != nil {
			return nil, err
		}
		items = append(items, models.AttendanceHistoryItem{
			SessionID: d.SessionID,
			Title:     d.Title,
			HeldAt:    d.HeldAt,
			Type:      models.RecordType(d.Type),
			Status:    status,
		})
	}
	return items, nil
}

func (c *Client) GetPendingAttendances(ctx context.Context, scheduleID string) ([]models.PendingAttendanceRecord, error) {
	var dtos []pendingRecordDTO
	path := "/attendances/schedules/" + url.PathEscape(scheduleID) + "/pending"
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	records := make([]models.PendingAttendanceRecord, 0, len(dtos))
	for _, d := range dtos {
		status, err := models.ParseStatus(d.Status)
		if err != nil {
			return nil, err
		}
		records = append(records, models.PendingAttendanceRecord{
			RecordID:     d.RecordID,
			UserID:       d.UserID,
			UserName:     d.UserName,
			Nickname:     d.Nickname,
			Organization: d.Organization,
			Status:       status,
			Reason:       d.Reason,
			SubmittedAt:  d.SubmittedAt,
		})
	}
	return records, nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	var d sessionDTO
	if err := c.do(ctx, http.MethodGet, "/sessions/"+url.PathEscape(sessionID), nil, &d); err != nil {
		return models.Session{}, err
	}
	return models.Session{
		ID:       d.SessionID,
		Title:    d.Title,
		StartsAt: d.StartsAt,
		EndsAt:   d.EndsAt,
		Place:    models.Coordinate{Latitude: d.Latitude, Longitude: d.Longitude},
	}, nil
}

func (c *Client) GetSessionStats(ctx context.Context, sessionID string) (SessionStats, error) {
	var d sessionStatsDTO
	if err := c.do(ctx, http.MethodGet, "/sessions/"+url.PathEscape(sessionID)+"/stats", nil, &d); err != nil {
		return SessionStats{}, err
	}
	return SessionStats{
		AttendanceRate: d.AttendanceRate,
		AttendedCount:  d.AttendedCount,
		TotalCount:     d.TotalCount,
	}, nil
}

func (c *Client) CheckAttendance(ctx context.Context, sheetID string, latitude, longitude float64, locationVerified bool) (string, error) {
	var resp recordIDResponse
	path := "/attendances/sheets/" + url.PathEscape(sheetID) + "/checkin"
	err := c.do(ctx, http.MethodPost, path, checkAttendanceRequest{
		Latitude:         latitude,
		Longitude:        longitude,
		LocationVerified: locationVerified,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.RecordID, nil
}

func (c *Client) SubmitReason(ctx context.Context, sheetID, reason string) (string, error) {
	var resp recordIDResponse
	path := "/attendances/sheets/" + url.PathEscape(sheetID) + "/reason"
	if err := c.do(ctx, http.MethodPost, path, submitReasonRequest{Reason: reason}, &resp); err != nil {
		return "", err
	}
	return resp.RecordID, nil
}

func (c *Client) ApproveAttendance(ctx context.Context, recordID string) error {
	path := "/attendances/records/" + url.PathEscape(recordID) + "/approve"
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) RejectAttendance(ctx context.Context, recordID string) error {
	path := "/attendances/records/" + url.PathEscape(recordID) + "/reject"
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeRemote, method+" "+path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return dErrors.New(dErrors.CodeNotFound, method+" "+path)
	case resp.StatusCode >= 400:
		return dErrors.New(dErrors.CodeRemote, fmt.Sprintf("%s %s: status %d", method, path, resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return dErrors.Wrap(dErrors.CodeRemote, "decode "+method+" "+path, err)
	}
	return nil
}
