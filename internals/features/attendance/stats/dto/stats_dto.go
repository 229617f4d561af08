package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ========================================================
   Request parsing (query params) — tanggal format 2006-01-02
   ======================================================== */

type DateRange struct {
	Start time.Time
	End   time.Time
}

func ParseDateRange(c *fiber.Ctx) (DateRange, error) {
	const layout = "2006-01-02"
	startStr := strings.TrimSpace(c.Query("start_date"))
	endStr := strings.TrimSpace(c.Query("end_date"))
	if startStr == "" || endStr == "" {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, "start_date & end_date wajib diisi (YYYY-MM-DD)")
	}
	start, err := time.Parse(layout, startStr)
	if err != nil {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, "start_date tidak valid (YYYY-MM-DD)")
	}
	end, err := time.Parse(layout, endStr)
	if err != nil {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, "end_date tidak valid (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, "end_date sebelum start_date")
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseOptionalUUID membaca query param UUID opsional (nil kalau kosong).
func ParseOptionalUUID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" tidak valid")
	}
	return &id, nil
}

/* ========================================================
   Response shapes — selaras dgn payload RPC yang dikonsumsi
   dashboard (global + per-group, group stats, student stats).
   ======================================================== */

type OrgAnalyticsGlobal struct {
	TotalStudents int64 `json:"total_students"`
	TotalGroups   int64 `json:"total_groups"`
	AvgPercentage int64 `json:"avg_percentage"`
	Present       int64 `json:"present"`
	Absent        int64 `json:"absent"`
	Late          int64 `json:"late"`
	Justified     int64 `json:"justified"`
}

type OrgAnalyticsGroup struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Total      int64     `json:"total"`
	Present    int64     `json:"present"`
	Late       int64     `json:"late"`
	Absent     int64     `json:"absent"`
	Justified  int64     `json:"justified"`
	Percentage int64     `json:"percentage"`
}

type OrgAnalyticsResponse struct {
	Global OrgAnalyticsGlobal  `json:"global"`
	Groups []OrgAnalyticsGroup `json:"groups"`
}

type GroupStatsResponse struct {
	TotalSessions  int64   `json:"total_sessions"`
	AvgAttendance  float64 `json:"avg_attendance"`
	TotalPresent   int64   `json:"total_present"`
	TotalAbsent    int64   `json:"total_absent"`
	TotalLate      int64   `json:"total_late"`
	TotalJustified int64   `json:"total_justified"`
}

type StudentHistoryEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type StudentStatsResponse struct {
	TotalSessions        int64                 `json:"total_sessions"`
	AttendancePercentage float64               `json:"attendance_percentage"`
	History              []StudentHistoryEntry `json:"history"`
}
