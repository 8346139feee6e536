package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	"github.com/expoconf/conference-portal/internal/domain/repository"
)

// uniqueViolation is the Postgres error code raised when the composite
// primary key on user_conferences rejects a duplicate insert.
const uniqueViolation = "23505"

type ProgramRepository struct {
	pool *pgxpool.Pool
}

func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{pool: pool}
}

func (r *ProgramRepository) ListByUser(ctx context.Context, userID string) ([]entity.ProgramItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uc.user_id, uc.conference_id, uc.created_at, `+conferenceColumns+`
		FROM user_conferences uc
		JOIN conferences c ON c.id = uc.conference_id
		JOIN rooms r ON r.id = c.room_id
		WHERE uc.user_id = $1
		ORDER BY c.date ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.ProgramItem{}
	for rows.Next() {
		var item entity.ProgramItem
		d := &item.Conference
		err := rows.Scan(
			&item.UserID, &item.ConferenceID, &item.CreatedAt,
			&d.ID, &d.Title, &d.Description, &d.Speaker, &d.Date, &d.Duration,
			&d.RoomID, &d.MaxCapacity, &d.SponsorID,
			&d.CreatedAt, &d.UpdatedAt,
			&d.Room.ID, &d.Room.Name, &d.Room.Capacity,
			&d.Attendees,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Add inserts the join row and maps the unique-constraint violation to
// ErrAlreadyInProgram; the constraint is the duplicate check, there is no
// read-before-write.
func (r *ProgramRepository) Add(ctx context.Context, userID, conferenceID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_conferences (user_id, conference_id)
		VALUES ($1, $2)
	`, userID, conferenceID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrAlreadyInProgram
		}
		return err
	}
	return nil
}

func (r *ProgramRepository) Remove(ctx context.Context, userID, conferenceID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM user_conferences
		WHERE user_id = $1 AND conference_id = $2
	`, userID, conferenceID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrNotInProgram
	}
	return nil
}

func (r *ProgramRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_conferences`).Scan(&n)
	return n, err
}

var _ repository.ProgramRepository = (*ProgramRepository)(nil)
