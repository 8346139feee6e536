package repository

import (
	"context"

	"github.com/expoconf/conference-portal/internal/domain/entity"
)

// ProgramRepository manages the user<->conference join. Add relies on the
// composite primary key and returns entity.ErrAlreadyInProgram on a
// duplicate; the application layer never pre-checks existence.
type ProgramRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.ProgramItem, error)
	Add(ctx context.Context, userID, conferenceID string) error
	Remove(ctx context.Context, userID, conferenceID string) error
	Count(ctx context.Context) (int, error)
}

// RoomOccupancy is the per-room aggregate input for admin statistics:
// a room with the summed registration counts of its conferences.
type RoomOccupancy struct {
	Room              entity.Room
	ConferenceCount   int
	TotalRegistration int
}

// StatsRepository gathers the raw rows the aggregation service reduces.
type StatsRepository interface {
	RoomOccupancies(ctx context.Context) ([]RoomOccupancy, error)
}
