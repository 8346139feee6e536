package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/expoconf/conference-portal/internal/application"
	"github.com/expoconf/conference-portal/internal/domain/entity"
	"github.com/expoconf/conference-portal/internal/interface/middleware"
	"github.com/expoconf/conference-portal/pkg/response"
	"github.com/expoconf/conference-portal/pkg/validation"
)

type SponsorHandler struct {
	Svc    *application.SponsorService
	Logger *logrus.Logger
}

func NewSponsorHandler(svc *application.SponsorService, logger *logrus.Logger) *SponsorHandler {
	return &SponsorHandler{Svc: svc, Logger: logger}
}

type createSponsorRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo" binding:"omitempty,url"`
	Website     string `json:"website" binding:"omitempty,url"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Level       string `json:"level" binding:"required,oneof=PLATINUM GOLD SILVER BRONZE"`
	UserID      string `json:"userId"`
}

type updateSponsorRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo" binding:"omitempty,url"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Level       *string `json:"level" binding:"omitempty,oneof=PLATINUM GOLD SILVER BRONZE"`
}

func (h *SponsorHandler) List(c *gin.Context) {
	sponsors, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	out := make([]sponsorPayload, 0, len(sponsors))
	for _, s := range sponsors {
		out = append(out, toSponsorPayload(s))
	}
	response.Success(c, http.StatusOK, out, "sponsors", nil)
}

func (h *SponsorHandler) Get(c *gin.Context) {
	sponsor, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toSponsorDetailsPayload(sponsor), "sponsor", nil)
}

func (h *SponsorHandler) Create(c *gin.Context) {
	var req createSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sponsor, err := h.Svc.Create(c.Request.Context(), middleware.CallerFrom(c), application.CreateSponsorInput{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		Email:       req.Email,
		Phone:       req.Phone,
		Level:       entity.SponsorLevel(req.Level),
		UserID:      req.UserID,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toSponsorPayload(*sponsor), "sponsor created", nil)
}

func (h *SponsorHandler) Update(c *gin.Context) {
	var req updateSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.UpdateSponsorInput{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		Email:       req.Email,
		Phone:       req.Phone,
	}
	if req.Level != nil {
		level := entity.SponsorLevel(*req.Level)
		in.Level = &level
	}
	sponsor, err := h.Svc.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toSponsorPayload(*sponsor), "sponsor updated", nil)
}

func (h *SponsorHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "sponsor deleted", nil)
}

// OwnConferences lists the caller's sponsored conferences; the not-found
// variant is how the front end learns the visitor is not a sponsor.
func (h *SponsorHandler) OwnConferences(c *gin.Context) {
	sponsor, err := h.Svc.OwnConferences(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toSponsorDetailsPayload(sponsor), "sponsor conferences", nil)
}

// Check keeps the historical wire contract of this route: a bare
// {isSponsor, sponsorId} body, {isSponsor:false} without a session.
func (h *SponsorHandler) Check(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		c.JSON(http.StatusOK, gin.H{"isSponsor": false})
		return
	}
	isSponsor, sponsorID, err := h.Svc.Check(c.Request.Context(), caller)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("sponsor check failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"isSponsor": false})
		return
	}
	var id any
	if isSponsor {
		id = sponsorID
	}
	c.JSON(http.StatusOK, gin.H{"isSponsor": isSponsor, "sponsorId": id})
}

// UploadLogo stores a sponsor logo and persists its public URL.
func (h *SponsorHandler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing logo file", nil)
		return
	}
	src, err := file.Open()
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	defer func() { _ = src.Close() }()

	sponsor, err := h.Svc.UploadLogo(
		c.Request.Context(),
		middleware.CallerFrom(c),
		c.Param("id"),
		file.Filename,
		file.Header.Get("Content-Type"),
		src,
	)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toSponsorPayload(*sponsor), "logo uploaded", nil)
}
