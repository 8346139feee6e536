package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/expoconf/conference-portal/internal/domain/repository"
	"github.com/expoconf/conference-portal/pkg/response"
)

// RoomHandler serves the static room list used by the filter dropdowns.
type RoomHandler struct {
	Rooms  repository.RoomRepository
	Logger *logrus.Logger
}

func NewRoomHandler(rooms repository.RoomRepository, logger *logrus.Logger) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Logger: logger}
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.Rooms.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	out := make([]roomPayload, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomPayload(r))
	}
	response.Success(c, http.StatusOK, out, "rooms", nil)
}
