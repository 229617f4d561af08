package dto

import (
	"strings"

	"github.com/google/uuid"

	model "presensiku_backend/internals/features/school/students/model"
)

/* =========================================
   Request
========================================= */

type CreateStudentRequest struct {
	StudentOrgID      uuid.UUID `json:"student_org_id" validate:"required"`
	StudentFirstName  string    `json:"student_first_name" validate:"required,min=1,max=120"`
	StudentLastName   string    `json:"student_last_name" validate:"required,min=1,max=120"`
	StudentDocumentID *string   `json:"student_document_id,omitempty" validate:"omitempty,max=60"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentFirstName = strings.TrimSpace(r.StudentFirstName)
	r.StudentLastName = strings.TrimSpace(r.StudentLastName)
	if r.StudentDocumentID != nil {
		v := strings.TrimSpace(*r.StudentDocumentID)
		if v == "" {
			r.StudentDocumentID = nil
		} else {
			r.StudentDocumentID = &v
		}
	}
}

func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentOrgID:      r.StudentOrgID,
		StudentFirstName:  r.StudentFirstName,
		StudentLastName:   r.StudentLastName,
		StudentDocumentID: r.StudentDocumentID,
	}
}

// Bulk (hasil import CSV di client — parsing file bukan urusan API).
// Org hanya di level atas; baris TIDAK membawa org sendiri supaya
// payload baris polos lolos validasi dan tidak ada org selundupan.
type BulkStudentRow struct {
	StudentFirstName  string  `json:"student_first_name" validate:"required,min=1,max=120"`
	StudentLastName   string  `json:"student_last_name" validate:"required,min=1,max=120"`
	StudentDocumentID *string `json:"student_document_id,omitempty" validate:"omitempty,max=60"`
}

func (r *BulkStudentRow) Normalize() {
	r.StudentFirstName = strings.TrimSpace(r.StudentFirstName)
	r.StudentLastName = strings.TrimSpace(r.StudentLastName)
	if r.StudentDocumentID != nil {
		v := strings.TrimSpace(*r.StudentDocumentID)
		if v == "" {
			r.StudentDocumentID = nil
		} else {
			r.StudentDocumentID = &v
		}
	}
}

func (r *BulkStudentRow) ToModel(orgID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentOrgID:      orgID,
		StudentFirstName:  r.StudentFirstName,
		StudentLastName:   r.StudentLastName,
		StudentDocumentID: r.StudentDocumentID,
	}
}

type BulkCreateStudentsRequest struct {
	StudentOrgID uuid.UUID        `json:"student_org_id" validate:"required"`
	Students     []BulkStudentRow `json:"students" validate:"required,min=1,max=500,dive"`
}

func (r *BulkCreateStudentsRequest) Normalize() {
	for i := range r.Students {
		r.Students[i].Normalize()
	}
}

// BatchDuplicates: indeks baris yang document ID-nya sudah muncul lebih
// awal di batch yang sama. Exact match — perbandingan yang sama dengan
// cek unik per-org di DB (kolomnya case-sensitive).
func (r *BulkCreateStudentsRequest) BatchDuplicates() map[int]bool {
	seen := make(map[string]bool, len(r.Students))
	dup := make(map[int]bool)
	for i := range r.Students {
		d := r.Students[i].StudentDocumentID
		if d == nil {
			continue
		}
		if seen[*d] {
			dup[i] = true
			continue
		}
		seen[*d] = true
	}
	return dup
}

type UpdateStudentRequest struct {
	StudentFirstName  *string `json:"student_first_name,omitempty" validate:"omitempty,min=1,max=120"`
	StudentLastName   *string `json:"student_last_name,omitempty" validate:"omitempty,min=1,max=120"`
	StudentDocumentID *string `json:"student_document_id,omitempty" validate:"omitempty,max=60"`
}

/* =========================================
   Response
========================================= */

type StudentResponse struct {
	StudentID         uuid.UUID `json:"student_id"`
	StudentOrgID      uuid.UUID `json:"student_org_id"`
	StudentFirstName  string    `json:"student_first_name"`
	StudentLastName   string    `json:"student_last_name"`
	StudentDocumentID *string   `json:"student_document_id,omitempty"`
}

func ToStudentResponse(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:         m.StudentID,
		StudentOrgID:      m.StudentOrgID,
		StudentFirstName:  m.StudentFirstName,
		StudentLastName:   m.StudentLastName,
		StudentDocumentID: m.StudentDocumentID,
	}
}
