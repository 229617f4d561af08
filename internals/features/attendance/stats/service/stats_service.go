package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/attendance/stats/dto"
	"presensiku_backend/internals/features/organizations/authz"
	groupModel "presensiku_backend/internals/features/school/groups/model"
)

/* ========================================================
   StatsService — padanan tiga RPC agregasi.

   Semua method mengecek membership caller DULU dan menolak
   (403) sebelum menyentuh data apa pun, supaya keberadaan
   org/grup tidak bocor lewat timing atau pesan error parsial.

   Query agregasi berjalan privileged (tanpa scope baca) —
   gate-nya adalah cek membership eksplisit di atas, persis
   seperti fungsi SECURITY DEFINER di sumber datanya.
   ======================================================== */

type StatsService struct{}

func NewStatsService() *StatsService { return &StatsService{} }

// groupOrgOrDeny: ambil org grup tanpa scope (RPC-style).
// Grup tidak ada → tetap 403, bukan 404 (konsisten dgn cek membership
// yang pasti gagal; tidak membedakan "tidak ada" dan "bukan milikmu").
func (s *StatsService) groupOrgOrDeny(db *gorm.DB, a *authz.Actor, groupID uuid.UUID) (uuid.UUID, error) {
	var g groupModel.GroupModel
	if err := db.Where("group_id = ?", groupID).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, authz.ErrNotAuthorized
		}
		return uuid.Nil, err
	}
	if err := authz.EnsureMember(a, g.GroupOrgID); err != nil {
		return uuid.Nil, err
	}
	return g.GroupOrgID, nil
}

/* --------------------------------------------------------
   (a) Analitik organisasi
-------------------------------------------------------- */

type orgGroupRow struct {
	ID        uuid.UUID `gorm:"column:id"`
	Name      string    `gorm:"column:name"`
	Type      string    `gorm:"column:type"`
	Total     int64     `gorm:"column:total"`
	Present   int64     `gorm:"column:present"`
	Late      int64     `gorm:"column:late"`
	Absent    int64     `gorm:"column:absent"`
	Justified int64     `gorm:"column:justified"`
}

func (s *StatsService) OrgAnalytics(
	db *gorm.DB,
	a *authz.Actor,
	orgID uuid.UUID,
	start, end time.Time,
	teacherID *uuid.UUID,
) (*dto.OrgAnalyticsResponse, error) {
	// 1) Otorisasi dulu, sebelum data apa pun.
	if err := authz.EnsureMember(a, orgID); err != nil {
		return nil, err
	}

	// 2) Non-admin dipaksa melihat grupnya sendiri (security override).
	role, hasRole := a.RoleIn(orgID)
	teacherID = ResolveTeacherFilter(role, hasRole, a.UserID, teacherID)

	// 3) Hitung per-group: sesi dalam rentang + record-nya
	//    (LEFT JOIN: grup tanpa sesi tetap muncul dengan nol).
	q := db.Table("groups AS g").
		Select(`g.group_id AS id, g.group_name AS name, g.group_type AS type,
			COUNT(ar.attendance_record_id) AS total,
			COUNT(ar.attendance_record_id) FILTER (WHERE ar.attendance_record_status = 'present')   AS present,
			COUNT(ar.attendance_record_id) FILTER (WHERE ar.attendance_record_status = 'late')      AS late,
			COUNT(ar.attendance_record_id) FILTER (WHERE ar.attendance_record_status = 'absent')    AS absent,
			COUNT(ar.attendance_record_id) FILTER (WHERE ar.attendance_record_status = 'justified') AS justified`).
		Joins(`LEFT JOIN sessions AS s
			ON s.session_group_id = g.group_id
			AND s.session_date BETWEEN ? AND ?`, start, end).
		Joins(`LEFT JOIN attendance_records AS ar
			ON ar.attendance_record_session_id = s.session_id`).
		Where("g.group_org_id = ? AND g.group_deleted_at IS NULL", orgID).
		Group("g.group_id, g.group_name, g.group_type")
	if teacherID != nil {
		q = q.Where("g.group_teacher_id = ?", *teacherID)
	}

	var rows []orgGroupRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	// 4) Persentase per-group (late = setengah hadir) + blok global.
	out := &dto.OrgAnalyticsResponse{Groups: make([]dto.OrgAnalyticsGroup, 0, len(rows))}
	var withRecords []int64
	for _, r := range rows {
		pct := WeightedPercentage(r.Present, r.Late, r.Total)
		if r.Total > 0 {
			withRecords = append(withRecords, pct)
		}
		out.Global.Present += r.Present
		out.Global.Absent += r.Absent
		out.Global.Late += r.Late
		out.Global.Justified += r.Justified
		out.Groups = append(out.Groups, dto.OrgAnalyticsGroup{
			ID: r.ID, Name: r.Name, Type: r.Type,
			Total: r.Total, Present: r.Present, Late: r.Late,
			Absent: r.Absent, Justified: r.Justified, Percentage: pct,
		})
	}
	out.Global.TotalGroups = int64(len(rows))
	out.Global.AvgPercentage = AveragePercentage(withRecords)

	if err := db.Table("students").
		Where("student_org_id = ? AND student_deleted_at IS NULL", orgID).
		Count(&out.Global.TotalStudents).Error; err != nil {
		return nil, err
	}

	return out, nil
}

/* --------------------------------------------------------
   (b) Statistik grup
   Hanya cek membership org (akses baca level grup memang
   terbuka untuk semua member — dipertahankan apa adanya).
-------------------------------------------------------- */

type groupTotalsRow struct {
	TotalSessions int64 `gorm:"column:total_sessions"`
	TotalRecords  int64 `gorm:"column:total_records"`
	Present       int64 `gorm:"column:present"`
	Absent        int64 `gorm:"column:absent"`
	Late          int64 `gorm:"column:late"`
	Justified     int64 `gorm:"column:justified"`
}

func (s *StatsService) GroupStats(
	db *gorm.DB,
	a *authz.Actor,
	groupID uuid.UUID,
	start, end time.Time,
) (*dto.GroupStatsResponse, error) {
	if _, err := s.groupOrgOrDeny(db, a, groupID); err != nil {
		return nil, err
	}

	// INNER JOIN: sesi tanpa record tidak dihitung sebagai sesi.
	var row groupTotalsRow
	err := db.Table("sessions AS s").
		Select(`COUNT(DISTINCT s.session_id) AS total_sessions,
			COUNT(ar.attendance_record_id) AS total_records,
			COUNT(ar.attendance_record_id) FILTER (WHERE ar.attendance_record_status = 'present')   AS present,
			COUNT(ar.attendance_record_id) FILTER (WHERE ar.attendance_record_status = 'absent')    AS absent,
			COUNT(ar.attendance_record_id) FILTER (WHERE ar.attendance_record_status = 'late')      AS late,
			COUNT(ar.attendance_record_id) FILTER (WHERE ar.attendance_record_status = 'justified') AS justified`).
		Joins("JOIN attendance_records AS ar ON ar.attendance_record_session_id = s.session_id").
		Where("s.session_group_id = ? AND s.session_date BETWEEN ? AND ?", groupID, start, end).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &dto.GroupStatsResponse{
		TotalSessions:  row.TotalSessions,
		AvgAttendance:  Percentage2(row.Present, row.TotalRecords),
		TotalPresent:   row.Present,
		TotalAbsent:    row.Absent,
		TotalLate:      row.Late,
		TotalJustified: row.Justified,
	}, nil
}

/* --------------------------------------------------------
   (c) Statistik siswa di dalam satu grup
   Statistik per-grup, bukan global: siswa yang terdaftar di
   beberapa grup dapat angka independen per grup.
-------------------------------------------------------- */

type studentTotalsRow struct {
	Total   int64 `gorm:"column:total"`
	Present int64 `gorm:"column:present"`
}

type studentHistoryRow struct {
	Date   time.Time `gorm:"column:date"`
	Status string    `gorm:"column:status"`
}

func (s *StatsService) StudentStats(
	db *gorm.DB,
	a *authz.Actor,
	studentID, groupID uuid.UUID,
) (*dto.StudentStatsResponse, error) {
	if _, err := s.groupOrgOrDeny(db, a, groupID); err != nil {
		return nil, err
	}

	var totals studentTotalsRow
	err := db.Table("attendance_records AS ar").
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE ar.attendance_record_status = 'present') AS present`).
		Joins("JOIN sessions AS s ON ar.attendance_record_session_id = s.session_id").
		Where("ar.attendance_record_student_id = ? AND s.session_group_id = ?", studentID, groupID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	var hist []studentHistoryRow
	err = db.Table("attendance_records AS ar").
		Select("s.session_date AS date, ar.attendance_record_status AS status").
		Joins("JOIN sessions AS s ON ar.attendance_record_session_id = s.session_id").
		Where("ar.attendance_record_student_id = ? AND s.session_group_id = ?", studentID, groupID).
		Order("s.session_date DESC").
		Limit(10).
		Find(&hist).Error
	if err != nil {
		return nil, err
	}

	out := &dto.StudentStatsResponse{
		TotalSessions:        totals.Total,
		AttendancePercentage: Percentage2(totals.Present, totals.Total),
		History:              make([]dto.StudentHistoryEntry, 0, len(hist)),
	}
	for _, h := range hist {
		out.History = append(out.History, dto.StudentHistoryEntry{
			Date:   h.Date.Format("2006-01-02"),
			Status: h.Status,
		})
	}
	return out, nil
}
