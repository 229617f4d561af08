package service

import (
	"math"

	"github.com/google/uuid"

	memberModel "presensiku_backend/internals/features/organizations/members/model"
)

/* ========================================================
   Aritmetika persentase.

   Dua formula yang BEDA dan memang dipertahankan begitu:
   - analitik org  : late dihitung setengah hadir, dibulatkan
                     ke integer
   - group/student : late tidak dihitung, 2 desimal
   Pembulatan: half-up (input selalu non-negatif).
   ======================================================== */

func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// WeightedPercentage: round(((present + late*0.5) / total) * 100), 0 kalau total 0.
func WeightedPercentage(present, late, total int64) int64 {
	if total <= 0 {
		return 0
	}
	return roundHalfUp((float64(present) + 0.5*float64(late)) / float64(total) * 100)
}

// Percentage2: round((present/total)*100, 2), 0 kalau total 0.
func Percentage2(present, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return round2(float64(present) / float64(total) * 100)
}

// AveragePercentage: rata-rata (half-up) dari persentase per-group,
// hanya group dengan total>0 yang ikut; 0 kalau tidak ada.
func AveragePercentage(percentages []int64) int64 {
	if len(percentages) == 0 {
		return 0
	}
	var sum int64
	for _, p := range percentages {
		sum += p
	}
	return roundHalfUp(float64(sum) / float64(len(percentages)))
}

// ResolveTeacherFilter: kontrol keamanan, bukan default kenyamanan.
// Caller yang bukan admin SELALU dipaksa melihat grupnya sendiri,
// apa pun filter yang dia minta.
func ResolveTeacherFilter(role memberModel.MemberRole, hasRole bool, callerID uuid.UUID, requested *uuid.UUID) *uuid.UUID {
	if hasRole && role == memberModel.RoleAdmin {
		return requested
	}
	id := callerID
	return &id
}
