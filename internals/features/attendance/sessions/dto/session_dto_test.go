package dto

import (
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestTakeAttendanceRequestNormalize(t *testing.T) {
	req := TakeAttendanceRequest{
		GroupID: uuid.New(),
		Date:    "  2026-03-15 ",
		Records: []AttendanceEntry{
			{StudentID: uuid.New(), Status: " PRESENT "},
			{StudentID: uuid.New(), Status: "Justified", Justification: strPtr(" Justified "), Comment: strPtr("  llegó tarde  ")},
			{StudentID: uuid.New(), Status: "absent", Justification: strPtr("   "), Comment: strPtr("")},
		},
	}
	req.Normalize()

	if req.Date != "2026-03-15" {
		t.Errorf("Date = %q, want trimmed", req.Date)
	}
	if req.ClassIndex != 1 {
		t.Errorf("ClassIndex = %d, want default 1", req.ClassIndex)
	}
	if req.Records[0].Status != "present" {
		t.Errorf("Status = %q, want lowercase trimmed", req.Records[0].Status)
	}
	if req.Records[1].Justification == nil || *req.Records[1].Justification != "justified" {
		t.Errorf("Justification = %v, want normalized", req.Records[1].Justification)
	}
	if req.Records[1].Comment == nil || *req.Records[1].Comment != "llegó tarde" {
		t.Errorf("Comment = %v, want trimmed", req.Records[1].Comment)
	}
	if req.Records[2].Justification != nil {
		t.Error("justification whitespace-only harus jadi nil")
	}
	if req.Records[2].Comment != nil {
		t.Error("comment kosong harus jadi nil")
	}
}

func TestTakeAttendanceRequestClassIndexKept(t *testing.T) {
	req := TakeAttendanceRequest{ClassIndex: 3}
	req.Normalize()
	if req.ClassIndex != 3 {
		t.Errorf("ClassIndex = %d, want 3 (nilai eksplisit tidak di-reset)", req.ClassIndex)
	}
}

func TestDuplicateStudentID(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	req := TakeAttendanceRequest{Records: []AttendanceEntry{
		{StudentID: a, Status: "present"},
		{StudentID: b, Status: "late"},
		{StudentID: c, Status: "absent"},
	}}
	if id := req.DuplicateStudentID(); id != nil {
		t.Errorf("tanpa duplikat harus nil, dapat %s", id)
	}

	req.Records = append(req.Records, AttendanceEntry{StudentID: b, Status: "present"})
	id := req.DuplicateStudentID()
	if id == nil {
		t.Fatal("student yang muncul dua kali harus terdeteksi")
	}
	if *id != b {
		t.Errorf("DuplicateStudentID = %s, want %s", id, b)
	}
}

func TestParsedDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid", "2026-03-15", false},
		{"format salah", "15/03/2026", true},
		{"bukan tanggal", "2026-13-40", true},
		{"kosong", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := TakeAttendanceRequest{Date: tt.date}
			d, err := r.ParsedDate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsedDate(%q) harus error", tt.date)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsedDate(%q) error: %v", tt.date, err)
			}
			if got := d.Format("2006-01-02"); got != tt.date {
				t.Errorf("roundtrip = %q, want %q", got, tt.date)
			}
		})
	}
}
