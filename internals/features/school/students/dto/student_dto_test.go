package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestBulkCreateValidationRowsWithoutOrg(t *testing.T) {
	v := validator.New()
	req := BulkCreateStudentsRequest{
		StudentOrgID: uuid.New(),
		Students: []BulkStudentRow{
			{StudentFirstName: "Ana", StudentLastName: "García"},
			{StudentFirstName: "Luis", StudentLastName: "Pérez", StudentDocumentID: strPtr("DNI-1")},
		},
	}
	if err := v.Struct(&req); err != nil {
		t.Fatalf("payload import dengan baris tanpa org harus lolos validasi, got: %v", err)
	}

	if err := v.Struct(&BulkCreateStudentsRequest{Students: req.Students}); err == nil {
		t.Error("org level atas kosong harus gagal validasi")
	}
	if err := v.Struct(&BulkCreateStudentsRequest{
		StudentOrgID: uuid.New(),
		Students:     []BulkStudentRow{{StudentFirstName: "Ana"}},
	}); err == nil {
		t.Error("baris tanpa last name harus gagal validasi")
	}
}

func TestBulkCreateBatchDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		docs    []*string
		wantDup []int
	}{
		{"tanpa duplikat", []*string{strPtr("A1"), strPtr("B2"), nil}, nil},
		{"duplikat exact", []*string{strPtr("A1"), strPtr("A1"), strPtr("A1")}, []int{1, 2}},
		{"beda kapital bukan duplikat", []*string{strPtr("X1"), strPtr("x1")}, nil},
		{"nil tidak dihitung", []*string{nil, nil, strPtr("A1")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := BulkCreateStudentsRequest{StudentOrgID: uuid.New()}
			for _, d := range tt.docs {
				req.Students = append(req.Students, BulkStudentRow{
					StudentFirstName: "Ana", StudentLastName: "García", StudentDocumentID: d,
				})
			}
			got := req.BatchDuplicates()
			if len(got) != len(tt.wantDup) {
				t.Fatalf("BatchDuplicates = %v, want indeks %v", got, tt.wantDup)
			}
			for _, i := range tt.wantDup {
				if !got[i] {
					t.Errorf("indeks %d harus ditandai duplikat, got %v", i, got)
				}
			}
		})
	}
}

func TestBulkStudentRowNormalize(t *testing.T) {
	r := BulkStudentRow{
		StudentFirstName:  "  Ana ",
		StudentLastName:   " García  ",
		StudentDocumentID: strPtr("   "),
	}
	r.Normalize()
	if r.StudentFirstName != "Ana" || r.StudentLastName != "García" {
		t.Errorf("nama harus di-trim, got %q %q", r.StudentFirstName, r.StudentLastName)
	}
	if r.StudentDocumentID != nil {
		t.Error("document ID whitespace-only harus jadi nil")
	}

	orgID := uuid.New()
	m := r.ToModel(orgID)
	if m.StudentOrgID != orgID {
		t.Errorf("org harus dari level atas, got %s want %s", m.StudentOrgID, orgID)
	}
}
