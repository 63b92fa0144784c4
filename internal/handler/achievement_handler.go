package handler

import (
	"net/http"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/middleware"

	"github.com/sirupsen/logrus"
)

// AchievementHandler handles achievements and the dashboard
type AchievementHandler struct {
	achievementService service.AchievementService
	dashboardService   service.DashboardService
	log                logrus.FieldLogger
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(
	achievementService service.AchievementService,
	dashboardService service.DashboardService,
	log logrus.FieldLogger,
) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
		dashboardService:   dashboardService,
		log:                log,
	}
}

// MyAchievements lists the caller's achievements, newest first
// @Summary My achievements
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Achievement
// @Router /api/achievements/my-achievements [get]
func (h *AchievementHandler) MyAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.achievementService.ListAchievements(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(achievements))
}

// CheckNew runs the achievement engine for the caller
// @Summary Check achievements
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,unlocked=[]entity.Achievement}
// @Router /api/achievements/check-new [get]
func (h *AchievementHandler) CheckNew(w http.ResponseWriter, r *http.Request) {
	unlocked, err := h.achievementService.Evaluate(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message  string                `json:"message"`
		Unlocked []*entity.Achievement `json:"unlocked"`
	}{
		Message:  "Achievements checked",
		Unlocked: nonNil(unlocked),
	})
}

// Stats returns the caller's dashboard statistics
// @Summary Dashboard stats
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.DashboardStats
// @Router /api/dashboard/stats [get]
func (h *AchievementHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
