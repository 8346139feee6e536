package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expoconf/conference-portal/internal/container"
	handlers "github.com/expoconf/conference-portal/internal/interface/http"
	"github.com/expoconf/conference-portal/internal/interface/middleware"
	"github.com/expoconf/conference-portal/pkg/helpers"
)

// SponsorModule covers the sponsor directory, admin management and the
// sponsor-facing self endpoints under /sponsor.
type SponsorModule struct {
	Handler *handlers.SponsorHandler
	JWT     *helpers.JWTManager
}

func NewSponsorModule(h *handlers.SponsorHandler, jwt *helpers.JWTManager) *SponsorModule {
	return &SponsorModule{Handler: h, JWT: jwt}
}

func (m *SponsorModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	writeLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByCaller(), nil)

	rg.GET("/sponsors", readLimiter, m.Handler.List)
	rg.GET("/sponsors/:id", readLimiter, m.Handler.Get)

	rg.POST("/sponsors", writeLimiter, m.Handler.Create)
	rg.PUT("/sponsors/:id", writeLimiter, m.Handler.Update)
	rg.DELETE("/sponsors/:id", writeLimiter, m.Handler.Delete)
	rg.POST("/sponsors/:id/logo", writeLimiter, m.Handler.UploadLogo)

	// /sponsor/check answers for anonymous callers too, so it stays outside Auth.
	rg.GET("/sponsor/check", readLimiter, m.Handler.Check)

	auth := rg.Group("/sponsor")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.GET("/conferences", readLimiter, m.Handler.OwnConferences)
}
