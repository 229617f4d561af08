package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/group_students/service"
)

// StartRosterConsistencyScheduler menjalankan cek konsistensi org_id
// roster tiap jam: hitung yang menyimpang, perbaiki, log hasilnya.
// Steady-state harusnya selalu 0 — angka >0 berarti ada jalur tulis
// yang lolos dari derivasi server-side.
func StartRosterConsistencyScheduler(db *gorm.DB) {
	repair := service.NewRosterRepairService()

	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		divergent, err := repair.CountDivergent(db)
		if err != nil {
			log.Printf("[ROSTER_CHECK] gagal hitung divergensi: %v", err)
			return
		}
		if divergent == 0 {
			return
		}
		log.Printf("⚠️ [ROSTER_CHECK] %d roster menyimpang dari org grupnya, memperbaiki...", divergent)
		fixed, err := repair.RepairDivergent(db)
		if err != nil {
			log.Printf("[ROSTER_CHECK] gagal repair: %v", err)
			return
		}
		log.Printf("✅ [ROSTER_CHECK] %d roster diperbaiki.", fixed)
	})
	if err != nil {
		log.Printf("[ROSTER_CHECK] gagal daftar cron: %v", err)
		return
	}
	c.Start()
	log.Println("⏱ Roster consistency scheduler aktif (hourly).")
}
