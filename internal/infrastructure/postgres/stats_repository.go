package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expoconf/conference-portal/internal/domain/repository"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// RoomOccupancies returns one row per room with the number of conferences
// scheduled in it and the summed registrations across those conferences.
// Rooms without conferences are included with zero counts.
func (r *StatsRepository) RoomOccupancies(ctx context.Context) ([]repository.RoomOccupancy, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.name, r.capacity,
		       COUNT(DISTINCT c.id),
		       COUNT(uc.user_id)
		FROM rooms r
		LEFT JOIN conferences c ON c.room_id = r.id
		LEFT JOIN user_conferences uc ON uc.conference_id = c.id
		GROUP BY r.id, r.name, r.capacity
		ORDER BY r.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []repository.RoomOccupancy{}
	for rows.Next() {
		var o repository.RoomOccupancy
		err := rows.Scan(&o.Room.ID, &o.Room.Name, &o.Room.Capacity,
			&o.ConferenceCount, &o.TotalRegistration)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

var _ repository.StatsRepository = (*StatsRepository)(nil)
