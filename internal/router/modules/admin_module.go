package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expoconf/conference-portal/internal/container"
	handlers "github.com/expoconf/conference-portal/internal/interface/http"
	"github.com/expoconf/conference-portal/internal/interface/middleware"
)

// AdminModule serves the aggregate dashboard. The role gate lives in the
// service so non-admins get the domain error rather than a bare 401.
type AdminModule struct {
	Handler *handlers.AdminHandler
}

func NewAdminModule(h *handlers.AdminHandler) *AdminModule {
	return &AdminModule{Handler: h}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByCaller(), nil)

	rg.GET("/admin/stats", limiter, m.Handler.Stats)
}
