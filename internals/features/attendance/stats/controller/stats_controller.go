package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/attendance/stats/dto"
	"presensiku_backend/internals/features/attendance/stats/service"
	"presensiku_backend/internals/features/organizations/authz"
	helper "presensiku_backend/internals/helpers"
)

type StatsController struct {
	DB      *gorm.DB
	Service *service.StatsService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db, Service: service.NewStatsService()}
}

// GET /api/a/analytics/org/:org_id?start_date=&end_date=&teacher_id=
func (ctl *StatsController) GetOrgAnalytics(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	orgID, err := uuid.Parse(c.Params("org_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "org_id tidak valid")
	}
	rng, err := dto.ParseDateRange(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	teacherID, err := dto.ParseOptionalUUID(c, "teacher_id")
	if err != nil {
		return helper.FromError(c, err)
	}

	res, err := ctl.Service.OrgAnalytics(ctl.DB, a, orgID, rng.Start, rng.End, teacherID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Analitik organisasi", res)
}

// GET /api/a/analytics/group/:group_id?start_date=&end_date=
func (ctl *StatsController) GetGroupStats(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "group_id tidak valid")
	}
	rng, err := dto.ParseDateRange(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	res, err := ctl.Service.GroupStats(ctl.DB, a, groupID, rng.Start, rng.End)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Statistik grup", res)
}

// GET /api/a/analytics/student/:student_id/group/:group_id
func (ctl *StatsController) GetStudentStats(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "group_id tidak valid")
	}

	res, err := ctl.Service.StudentStats(ctl.DB, a, studentID, groupID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Statistik siswa", res)
}
