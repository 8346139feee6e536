package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/expoconf/conference-portal/internal/application"
	"github.com/expoconf/conference-portal/internal/interface/middleware"
	"github.com/expoconf/conference-portal/pkg/response"
	"github.com/expoconf/conference-portal/pkg/validation"
)

type ProgramHandler struct {
	Svc    *application.ProgramService
	Logger *logrus.Logger
}

func NewProgramHandler(svc *application.ProgramService, logger *logrus.Logger) *ProgramHandler {
	return &ProgramHandler{Svc: svc, Logger: logger}
}

type addToProgramRequest struct {
	ConferenceID string `json:"conferenceId" binding:"required"`
}

func (h *ProgramHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toProgramPayloads(items), "programme", nil)
}

func (h *ProgramHandler) Add(c *gin.Context) {
	var req addToProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Add(c.Request.Context(), middleware.CallerFrom(c), req.ConferenceID); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "conference ajoutée au programme", nil)
}

func (h *ProgramHandler) Remove(c *gin.Context) {
	if err := h.Svc.Remove(c.Request.Context(), middleware.CallerFrom(c), c.Param("conferenceId")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "conference retirée du programme", nil)
}
