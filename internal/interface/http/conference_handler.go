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

type ConferenceHandler struct {
	Svc    *application.ConferenceService
	Logger *logrus.Logger
}

func NewConferenceHandler(svc *application.ConferenceService, logger *logrus.Logger) *ConferenceHandler {
	return &ConferenceHandler{Svc: svc, Logger: logger}
}

type createConferenceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Speaker     string `json:"speaker" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	RoomID      string `json:"roomId" binding:"required"`
	MaxCapacity int    `json:"maxCapacity" binding:"required,gt=0"`
	SponsorID   string `json:"sponsorId"`
}

type updateConferenceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Speaker     *string `json:"speaker"`
	Date        *string `json:"date"`
	Duration    *int    `json:"duration"`
	RoomID      *string `json:"roomId"`
	MaxCapacity *int    `json:"maxCapacity"`
	SponsorID   *string `json:"sponsorId"`
}

// List is the public conference listing with optional day/room/speaker
// filters.
func (h *ConferenceHandler) List(c *gin.Context) {
	in := application.ListConferencesInput{
		Date:    c.Query("date"),
		RoomID:  c.Query("roomId"),
		Speaker: c.Query("speaker"),
	}
	confs, err := h.Svc.List(c.Request.Context(), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toConferencePayloads(confs), "conferences", nil)
}

func (h *ConferenceHandler) Get(c *gin.Context) {
	conf, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toConferencePayload(*conf), "conference", nil)
}

func (h *ConferenceHandler) Create(c *gin.Context) {
	var req createConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	conf, err := h.Svc.Create(c.Request.Context(), middleware.CallerFrom(c), application.CreateConferenceInput{
		Title:       req.Title,
		Description: req.Description,
		Speaker:     req.Speaker,
		Date:        req.Date,
		Duration:    req.Duration,
		RoomID:      req.RoomID,
		MaxCapacity: req.MaxCapacity,
		SponsorID:   req.SponsorID,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toConferencePayload(*conf), "conference created", nil)
}

func (h *ConferenceHandler) Update(c *gin.Context) {
	var req updateConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	conf, err := h.Svc.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), application.UpdateConferenceInput{
		Title:       req.Title,
		Description: req.Description,
		Speaker:     req.Speaker,
		Date:        req.Date,
		Duration:    req.Duration,
		RoomID:      req.RoomID,
		MaxCapacity: req.MaxCapacity,
		SponsorID:   req.SponsorID,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toConferencePayload(*conf), "conference updated", nil)
}

// Delete keeps the historical wire contract of this route: a bare
// {success:...} body, 400 for any business failure, 500 otherwise.
func (h *ConferenceHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	if businessError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("conference_id", c.Param("id")).Error("delete conference failed")
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": genericError})
}

// Search is the full-text search over title/speaker/description.
func (h *ConferenceHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 10)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
