package repository

import (
	"context"

	"github.com/expoconf/conference-portal/internal/domain/entity"
)

// SponsorUpdate is a partial update; nil fields are left untouched.
type SponsorUpdate struct {
	Name        *string
	Description *string
	Logo        *string
	Website     *string
	Email       *string
	Phone       *string
	Level       *entity.SponsorLevel
}

// SponsorRepository defines sponsor persistence. List is ordered by the
// level column ascending, which on the text column is alphabetic
// (BRONZE < GOLD < PLATINUM < SILVER), matching the historical listing.
type SponsorRepository interface {
	List(ctx context.Context) ([]entity.Sponsor, error)
	GetByID(ctx context.Context, id string) (*entity.SponsorDetails, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Sponsor, error)
	ConferencesByUserID(ctx context.Context, userID string) (*entity.SponsorDetails, error)
	OwnsConference(ctx context.Context, userID, conferenceID string) (bool, error)
	Create(ctx context.Context, s *entity.Sponsor) error
	Update(ctx context.Context, id string, upd SponsorUpdate) (*entity.Sponsor, error)
	Delete(ctx context.Context, id string) error
}
