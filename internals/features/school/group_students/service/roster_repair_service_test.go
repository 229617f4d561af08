package service

import (
	"strings"
	"testing"
)

// Dua statement repair harus sama-sama mengambil nilai dari grup dan
// join lewat group_id; yang membedakan hanya predikatnya: backfill
// cuma menyentuh baris NULL, repair menyentuh baris yang menyimpang.
func TestRosterRepairStatements(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		contains []string
		excludes []string
	}{
		{
			name: "backfill hanya baris null",
			sql:  backfillOrgIDSQL,
			contains: []string{
				"SET group_student_org_id = g.group_org_id",
				"gs.group_student_group_id = g.group_id",
				"gs.group_student_org_id IS NULL",
			},
			excludes: []string{"IS DISTINCT FROM"},
		},
		{
			name: "repair hanya baris menyimpang",
			sql:  repairDivergentSQL,
			contains: []string{
				"SET group_student_org_id = g.group_org_id",
				"gs.group_student_group_id = g.group_id",
				"gs.group_student_org_id IS DISTINCT FROM g.group_org_id",
			},
			excludes: []string{"IS NULL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, frag := range tt.contains {
				if !strings.Contains(tt.sql, frag) {
					t.Errorf("statement kehilangan fragmen %q:\n%s", frag, tt.sql)
				}
			}
			for _, frag := range tt.excludes {
				if strings.Contains(tt.sql, frag) {
					t.Errorf("statement tidak boleh memuat %q:\n%s", frag, tt.sql)
				}
			}
			if !strings.HasPrefix(tt.sql, "UPDATE group_students gs") {
				t.Errorf("statement harus UPDATE group_students:\n%s", tt.sql)
			}
		})
	}
}
