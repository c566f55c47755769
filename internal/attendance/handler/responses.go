package handler

import (
	"time"

	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/operator"
	dErrors "rollcall/pkg/domain-errors"
)

type checkInRequest struct {
	SheetID string `json:"sheetId"`
}

type reasonRequest struct {
	SheetID string `json:"sheetId"`
	Kind    string `json:"kind"` // late | absent
	Reason  string `json:"reason"`
}

type resolveBatchRequest struct {
	Decisions []struct {
		RecordID string `json:"recordId"`
		Approve  bool   `json:"approve"`
	} `json:"decisions"`
}

type addressResponse struct {
	Address string `json:"address"`
}

type sessionResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

type scheduleResponse struct {
	SheetID string          `json:"sheetId"`
	Session sessionResponse `json:"session"`
}

type scheduleListResponse struct {
	Schedules []scheduleResponse `json:"schedules"`
}

type historyItemResponse struct {
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	HeldAt    time.Time `json:"heldAt"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
}

type historyResponse struct {
	Items []historyItemResponse `json:"items"`
}

type verificationResponse struct {
	Verified   bool      `json:"verified"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Address    string    `json:"address,omitempty"`
	VerifiedAt time.Time `json:"verifiedAt"`
}

type recordResponse struct {
	ID           string                `json:"id"`
	SessionID    string                `json:"sessionId"`
	UserID       string                `json:"userId"`
	Type         string                `json:"type"`
	Status       string                `json:"status"`
	Reason       string                `json:"reason,omitempty"`
	Verification *verificationResponse `json:"verification,omitempty"`
}

type pendingRecordResponse struct {
	RecordID     string    `json:"recordId"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	Nickname     string    `json:"nickname,omitempty"`
	Organization string    `json:"organization,omitempty"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason,omitempty"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

type pendingListResponse struct {
	Pending []pendingRecordResponse `json:"pending"`
}

type aggregateResponse struct {
	Session        sessionResponse         `json:"session"`
	AttendanceRate float64                 `json:"attendanceRate"`
	AttendedCount  int                     `json:"attendedCount"`
	TotalCount     int                     `json:"totalCount"`
	PendingMembers []pendingRecordResponse `json:"pendingMembers"`
}

type batchItemResponse struct {
	RecordID string `json:"recordId"`
	Approved bool   `json:"approved"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItemResponse `json:"results"`
}

func toSessionResponse(s models.Session) sessionResponse {
	return sessionResponse{
		ID:       s.ID,
		Title:    s.Title,
		StartsAt: s.StartsAt,
		EndsAt:   s.EndsAt,
	}
}

func toScheduleListResponse(schedules []models.AvailableAttendanceSchedule) scheduleListResponse {
	out := scheduleListResponse{Schedules: make([]scheduleResponse, 0, len(schedules))}
	for _, s := range schedules {
		out.Schedules = append(out.Schedules, scheduleResponse{
			SheetID: s.SheetID,
			Session: toSessionResponse(s.Session),
		})
	}
	return out
}

func toHistoryResponse(items []models.AttendanceHistoryItem) historyResponse {
	out := historyResponse{Items: make([]historyItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, historyItemResponse{
			SessionID: item.SessionID,
			Title:     item.Title,
			HeldAt:    item.HeldAt,
			Type:      string(item.Type),
			Status:    string(item.Status),
		})
	}
	return out
}

func toRecordResponse(record models.AttendanceRecord) recordResponse {
	out := recordResponse{
		ID:        record.ID,
		SessionID: record.SessionID,
		UserID:    record.UserID,
		Type:      string(record.Type),
		Status:    string(record.Status),
		Reason:    record.Reason,
	}
	if v := record.Verification; v != nil {
		out.Verification = &verificationResponse{
			Verified:   v.Verified,
			Latitude:   v.Coordinate.Latitude,
			Longitude:  v.Coordinate.Longitude,
			Address:    v.Address,
			VerifiedAt: v.VerifiedAt,
		}
	}
	return out
}

func toPendingRecordResponse(p models.PendingAttendanceRecord) pendingRecordResponse {
	return pendingRecordResponse{
		RecordID:     p.RecordID,
		UserID:       p.UserID,
		UserName:     p.UserName,
		Nickname:     p.Nickname,
		Organization: p.Organization,
		Status:       string(p.Status),
		Reason:       p.Reason,
		SubmittedAt:  p.SubmittedAt,
	}
}

func toPendingListResponse(pending []models.PendingAttendanceRecord) pendingListResponse {
	out := pendingListResponse{Pending: make([]pendingRecordResponse, 0, len(pending))}
	for _, p := range pending {
		out.Pending = append(out.Pending, toPendingRecordResponse(p))
	}
	return out
}

func toAggregateResponse(a models.SessionAttendanceAggregate) aggregateResponse {
	out := aggregateResponse{
		Session:        toSessionResponse(a.Session),
		AttendanceRate: a.AttendanceRate,
		AttendedCount:  a.AttendedCount,
		TotalCount:     a.TotalCount,
		PendingMembers: make([]pendingRecordResponse, 0, len(a.PendingMembers)),
	}
	for _, p := range a.PendingMembers {
		out.PendingMembers = append(out.PendingMembers, toPendingRecordResponse(p))
	}
	return out
}

func toBatchResponse(results []operator.BatchResult) batchResponse {
	out := batchResponse{Results: make([]batchItemResponse, 0, len(results))}
	for _, res := range results {
		item := batchItemResponse{
			RecordID: res.RecordID,
			Approved: res.Approved,
			Success:  res.Err == nil,
		}
		if res.Err != nil {
			item.Error = string(dErrors.GetCode(res.Err))
		}
		out.Results = append(out.Results, item)
	}
	return out
}
