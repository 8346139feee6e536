package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/expoconf/conference-portal/internal/application"
	"github.com/expoconf/conference-portal/internal/interface/middleware"
	"github.com/expoconf/conference-portal/pkg/response"
)

type AdminHandler struct {
	Svc    *application.StatsService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.StatsService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// Stats returns the dashboard aggregates; the conference list is not
// sorted for ranking, the dashboard slices its own top 5.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.AdminStats(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	payload := adminStatsPayload{
		TotalConferences:   stats.TotalConferences,
		TotalUsers:         stats.TotalUsers,
		TotalRegistrations: stats.TotalRegistrations,
		Conferences:        toConferencePayloads(stats.Conferences),
		RoomStats:          stats.RoomStats,
	}
	response.Success(c, http.StatusOK, payload, "admin stats", nil)
}
