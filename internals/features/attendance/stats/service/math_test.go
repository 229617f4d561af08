package service

import (
	"testing"

	"github.com/google/uuid"

	memberModel "presensiku_backend/internals/features/organizations/members/model"
)

func TestWeightedPercentage(t *testing.T) {
	tests := []struct {
		name                 string
		present, late, total int64
		want                 int64
	}{
		{"late dihitung setengah", 3, 1, 5, 70}, // (3 + 0.5) / 5 = 70%
		{"semua hadir", 5, 0, 5, 100},
		{"semua absen", 0, 0, 5, 0},
		{"hanya late", 0, 4, 4, 50},
		{"pembulatan half-up ke atas", 1, 0, 3, 33},  // 33.33 → 33
		{"pembulatan half-up dari .5", 1, 1, 3, 50},  // (1.5/3)*100 = 50
		{"pembulatan 66.67 ke atas", 2, 0, 3, 67},    // 66.67 → 67
		{"total nol aman", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightedPercentage(tt.present, tt.late, tt.total); got != tt.want {
				t.Errorf("WeightedPercentage(%d, %d, %d) = %d, want %d",
					tt.present, tt.late, tt.total, got, tt.want)
			}
		})
	}
}

func TestPercentage2(t *testing.T) {
	tests := []struct {
		name           string
		present, total int64
		want           float64
	}{
		{"tiga dari lima", 3, 5, 60.00},
		{"dua desimal", 1, 3, 33.33},
		{"dua pertiga", 2, 3, 66.67},
		{"penuh", 7, 7, 100.00},
		{"total nol aman", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage2(tt.present, tt.total); got != tt.want {
				t.Errorf("Percentage2(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}

func TestAveragePercentage(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want int64
	}{
		{"kosong berarti nol", nil, 0},
		{"satu group", []int64{70}, 70},
		{"rata-rata bulat", []int64{100, 50}, 75},
		{"half-up", []int64{70, 65}, 68}, // 67.5 → 68
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AveragePercentage(tt.in); got != tt.want {
				t.Errorf("AveragePercentage(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveTeacherFilter(t *testing.T) {
	caller := uuid.New()
	requested := uuid.New()

	t.Run("admin boleh filter guru lain", func(t *testing.T) {
		got := ResolveTeacherFilter(memberModel.RoleAdmin, true, caller, &requested)
		if got == nil || *got != requested {
			t.Errorf("admin: got %v, want %s", got, requested)
		}
	})
	t.Run("admin tanpa filter melihat semua", func(t *testing.T) {
		if got := ResolveTeacherFilter(memberModel.RoleAdmin, true, caller, nil); got != nil {
			t.Errorf("admin tanpa filter: got %v, want nil", got)
		}
	})
	t.Run("teacher dipaksa ke dirinya", func(t *testing.T) {
		got := ResolveTeacherFilter(memberModel.RoleTeacher, true, caller, &requested)
		if got == nil || *got != caller {
			t.Errorf("teacher: got %v, want %s", got, caller)
		}
	})
	t.Run("owner pun dipaksa ke dirinya", func(t *testing.T) {
		got := ResolveTeacherFilter(memberModel.RoleOwner, true, caller, &requested)
		if got == nil || *got != caller {
			t.Errorf("owner: got %v, want %s", got, caller)
		}
	})
	t.Run("tanpa role dipaksa ke dirinya", func(t *testing.T) {
		got := ResolveTeacherFilter("", false, caller, nil)
		if got == nil || *got != caller {
			t.Errorf("tanpa role: got %v, want %s", got, caller)
		}
	})
}
