package controller

import (
	"testing"

	"gorm.io/gorm/clause"
)

func columnNames(cols []clause.Column) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Name)
	}
	return out
}

func assignedColumns(set clause.Set) map[string]bool {
	out := make(map[string]bool, len(set))
	for _, a := range set {
		out[a.Column.Name] = true
	}
	return out
}

// Submit ulang harus konvergen ke baris yang sama: target conflict sesi
// wajib persis unique index (group, date, class_index).
func TestSessionConflictTargets(t *testing.T) {
	c := sessionConflictClause()

	want := []string{"session_group_id", "session_date", "session_class_index"}
	got := columnNames(c.Columns)
	if len(got) != len(want) {
		t.Fatalf("conflict columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("conflict columns = %v, want %v", got, want)
		}
	}

	assigned := assignedColumns(c.DoUpdates)
	if !assigned["session_updated_at"] {
		t.Error("resubmit harus me-refresh session_updated_at")
	}
	for col := range assigned {
		if col != "session_updated_at" {
			t.Errorf("resubmit sesi tidak boleh menulis ulang %s", col)
		}
	}
}

// Per record: last write wins untuk status/keterangan/komentar saja —
// kunci (session, student) dan org tidak pernah ditimpa.
func TestRecordConflictTargets(t *testing.T) {
	c := recordConflictClause()

	want := []string{"attendance_record_session_id", "attendance_record_student_id"}
	got := columnNames(c.Columns)
	if len(got) != len(want) {
		t.Fatalf("conflict columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("conflict columns = %v, want %v", got, want)
		}
	}

	assigned := assignedColumns(c.DoUpdates)
	for _, col := range []string{
		"attendance_record_status",
		"attendance_record_justification",
		"attendance_record_comment",
		"attendance_record_updated_at",
	} {
		if !assigned[col] {
			t.Errorf("resubmit harus menimpa %s", col)
		}
	}
	for _, col := range []string{
		"attendance_record_session_id",
		"attendance_record_student_id",
		"attendance_record_org_id",
		"attendance_record_id",
	} {
		if assigned[col] {
			t.Errorf("kolom kunci %s tidak boleh ikut ditimpa", col)
		}
	}
	if c.DoNothing {
		t.Error("conflict harus DO UPDATE, bukan DO NOTHING — submit ulang wajib menimpa")
	}
}
