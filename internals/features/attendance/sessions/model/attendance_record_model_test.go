package model

import "testing"

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []AttendanceStatus{
		AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusJustified,
	} {
		if !s.Valid() {
			t.Errorf("status %q harus valid", s)
		}
	}
	for _, s := range []AttendanceStatus{"", "PRESENT", "sick", "excused"} {
		if s.Valid() {
			t.Errorf("status %q harus invalid", s)
		}
	}
}

func TestJustificationValid(t *testing.T) {
	if !JustificationJustified.Valid() || !JustificationUnjustified.Valid() {
		t.Error("kedua nilai enum justification harus valid")
	}
	for _, j := range []Justification{"", "maybe", "Justified"} {
		if j.Valid() {
			t.Errorf("justification %q harus invalid", j)
		}
	}
}
