package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	repo "github.com/expoconf/conference-portal/internal/domain/repository"
	"github.com/expoconf/conference-portal/pkg/helpers"
)

// SponsorService covers the public sponsor listing, the admin CRUD and the
// sponsor-owner surface (own conferences, sponsor check, logo upload).
type SponsorService struct {
	Sponsors  repo.SponsorRepository
	Logger    *logrus.Logger
	GCS       *storage.Client
	GCSBucket string
}

func NewSponsorService(sponsors repo.SponsorRepository, logger *logrus.Logger, gcs *storage.Client, gcsBucket string) *SponsorService {
	return &SponsorService{Sponsors: sponsors, Logger: logger, GCS: gcs, GCSBucket: gcsBucket}
}

func (s *SponsorService) List(ctx context.Context) ([]entity.Sponsor, error) {
	return s.Sponsors.List(ctx)
}

func (s *SponsorService) Get(ctx context.Context, id string) (*entity.SponsorDetails, error) {
	return s.Sponsors.GetByID(ctx, id)
}

type CreateSponsorInput struct {
	Name        string
	Description string
	Logo        string
	Website     string
	Email       string
	Phone       string
	Level       entity.SponsorLevel
	UserID      string
}

func (s *SponsorService) Create(ctx context.Context, caller *entity.Identity, in CreateSponsorInput) (*entity.Sponsor, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	sponsor := &entity.Sponsor{
		Name:        in.Name,
		Description: in.Description,
		Logo:        in.Logo,
		Website:     in.Website,
		Email:       in.Email,
		Phone:       in.Phone,
		Level:       in.Level,
		UserID:      in.UserID,
	}
	if err := s.Sponsors.Create(ctx, sponsor); err != nil {
		return nil, err
	}
	return sponsor, nil
}

type UpdateSponsorInput struct {
	Name        *string
	Description *string
	Logo        *string
	Website     *string
	Email       *string
	Phone       *string
	Level       *entity.SponsorLevel
}

func (s *SponsorService) Update(ctx context.Context, caller *entity.Identity, id string, in UpdateSponsorInput) (*entity.Sponsor, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.Sponsors.Update(ctx, id, repo.SponsorUpdate{
		Name:        in.Name,
		Description: in.Description,
		Logo:        in.Logo,
		Website:     in.Website,
		Email:       in.Email,
		Phone:       in.Phone,
		Level:       in.Level,
	})
}

func (s *SponsorService) Delete(ctx context.Context, caller *entity.Identity, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	return s.Sponsors.Delete(ctx, id)
}

// OwnConferences resolves the sponsor owned by the caller and returns it
// with its conferences. ErrNoSponsorForUser is how the portal tells a plain
// visitor from a sponsor.
func (s *SponsorService) OwnConferences(ctx context.Context, caller *entity.Identity) (*entity.SponsorDetails, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	return s.Sponsors.ConferencesByUserID(ctx, caller.ID)
}

// Check reports whether the caller owns a sponsor profile. An anonymous
// caller is simply not a sponsor; only store failures are errors.
func (s *SponsorService) Check(ctx context.Context, caller *entity.Identity) (bool, string, error) {
	if caller == nil || caller.ID == "" {
		return false, "", nil
	}
	sponsor, err := s.Sponsors.GetByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, entity.ErrNoSponsorForUser) {
			return false, "", nil
		}
		return false, "", err
	}
	return true, sponsor.ID, nil
}

// UploadLogo stores the logo in GCS and persists its public URL.
func (s *SponsorService) UploadLogo(ctx context.Context, caller *entity.Identity, sponsorID, filename, contentType string, r io.Reader) (*entity.Sponsor, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("logos", sponsorID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	return s.Sponsors.Update(ctx, sponsorID, repo.SponsorUpdate{Logo: &url})
}
