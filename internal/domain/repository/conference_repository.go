package repository

import (
	"context"
	"time"

	"github.com/expoconf/conference-portal/internal/domain/entity"
)

// ConferenceFilter narrows the public conference listing. Date keeps the
// whole calendar day [Date, Date+24h); Speaker is a case-insensitive
// substring match.
type ConferenceFilter struct {
	Date    *time.Time
	RoomID  string
	Speaker string
}

// ConferenceUpdate is a partial update; nil fields are left untouched.
type ConferenceUpdate struct {
	Title       *string
	Description *string
	Speaker     *string
	Date        *time.Time
	Duration    *int
	RoomID      *string
	MaxCapacity *int
	SponsorID   *string
}

// ConferenceRepository defines conference persistence. List and GetByID
// return the read model with room and registration count included.
type ConferenceRepository interface {
	List(ctx context.Context, filter ConferenceFilter) ([]entity.ConferenceDetails, error)
	GetByID(ctx context.Context, id string) (*entity.ConferenceDetails, error)
	Create(ctx context.Context, c *entity.Conference) error
	Update(ctx context.Context, id string, upd ConferenceUpdate) (*entity.ConferenceDetails, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// RoomRepository exposes the static venue reference data.
type RoomRepository interface {
	List(ctx context.Context) ([]entity.Room, error)
	GetByID(ctx context.Context, id string) (*entity.Room, error)
}
