package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expoconf/conference-portal/internal/container"
	handlers "github.com/expoconf/conference-portal/internal/interface/http"
	"github.com/expoconf/conference-portal/internal/interface/middleware"
)

// ConferenceModule exposes the public catalogue and the editing endpoints.
// Identity is resolved by the engine-level Identify middleware; the services
// decide who may mutate what, so mutation routes stay registered without Auth
// and unauthorized callers get the domain error in the response body.
type ConferenceModule struct {
	Conferences *handlers.ConferenceHandler
	Rooms       *handlers.RoomHandler
}

func NewConferenceModule(c *handlers.ConferenceHandler, r *handlers.RoomHandler) *ConferenceModule {
	return &ConferenceModule{Conferences: c, Rooms: r}
}

func (m *ConferenceModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	writeLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByCaller(), nil)

	rg.GET("/rooms", readLimiter, m.Rooms.List)

	rg.GET("/conferences", readLimiter, m.Conferences.List)
	rg.GET("/conferences/search", readLimiter, m.Conferences.Search)
	rg.GET("/conferences/:id", readLimiter, m.Conferences.Get)

	rg.POST("/conferences", writeLimiter, m.Conferences.Create)
	rg.PUT("/conferences/:id", writeLimiter, m.Conferences.Update)
	rg.DELETE("/conferences/:id", writeLimiter, m.Conferences.Delete)
}
