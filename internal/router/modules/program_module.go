package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expoconf/conference-portal/internal/container"
	handlers "github.com/expoconf/conference-portal/internal/interface/http"
	"github.com/expoconf/conference-portal/internal/interface/middleware"
	"github.com/expoconf/conference-portal/pkg/helpers"
)

// ProgramModule exposes the personal program of the signed-in visitor.
type ProgramModule struct {
	Handler *handlers.ProgramHandler
	JWT     *helpers.JWTManager
}

func NewProgramModule(h *handlers.ProgramHandler, jwt *helpers.JWTManager) *ProgramModule {
	return &ProgramModule{Handler: h, JWT: jwt}
}

func (m *ProgramModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByCaller(), nil)

	auth := rg.Group("/programme")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.GET("", limiter, m.Handler.List)
	auth.POST("", limiter, m.Handler.Add)
	auth.DELETE("/:conferenceId", limiter, m.Handler.Remove)
}
