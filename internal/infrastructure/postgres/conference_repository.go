package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	"github.com/expoconf/conference-portal/internal/domain/repository"
)

const conferenceColumns = `
	c.id, c.title, c.description, c.speaker, c.date, c.duration,
	c.room_id, c.max_capacity, COALESCE(c.sponsor_id::text, ''),
	c.created_at, c.updated_at,
	r.id, r.name, r.capacity,
	(SELECT COUNT(*) FROM user_conferences uc WHERE uc.conference_id = c.id)`

type ConferenceRepository struct {
	pool *pgxpool.Pool
}

func NewConferenceRepository(pool *pgxpool.Pool) *ConferenceRepository {
	return &ConferenceRepository{pool: pool}
}

// conferenceWhere builds the WHERE clause for the public listing. The date
// filter keeps the whole calendar day as a half-open interval.
func conferenceWhere(filter repository.ConferenceFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.Date != nil {
		day := filter.Date.Truncate(24 * time.Hour)
		args = append(args, day)
		conds = append(conds, fmt.Sprintf("c.date >= $%d", len(args)))
		args = append(args, day.Add(24*time.Hour))
		conds = append(conds, fmt.Sprintf("c.date < $%d", len(args)))
	}
	if filter.RoomID != "" {
		args = append(args, filter.RoomID)
		conds = append(conds, fmt.Sprintf("c.room_id = $%d", len(args)))
	}
	if filter.Speaker != "" {
		args = append(args, "%"+filter.Speaker+"%")
		conds = append(conds, fmt.Sprintf("c.speaker ILIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanConferenceDetails(row pgx.Row) (*entity.ConferenceDetails, error) {
	d := &entity.ConferenceDetails{}
	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.Speaker, &d.Date, &d.Duration,
		&d.RoomID, &d.MaxCapacity, &d.SponsorID,
		&d.CreatedAt, &d.UpdatedAt,
		&d.Room.ID, &d.Room.Name, &d.Room.Capacity,
		&d.Attendees,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *ConferenceRepository) List(ctx context.Context, filter repository.ConferenceFilter) ([]entity.ConferenceDetails, error) {
	where, args := conferenceWhere(filter)
	rows, err := r.pool.Query(ctx, `
		SELECT `+conferenceColumns+`
		FROM conferences c
		JOIN rooms r ON r.id = c.room_id`+where+`
		ORDER BY c.date ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.ConferenceDetails{}
	for rows.Next() {
		d, err := scanConferenceDetails(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *ConferenceRepository) GetByID(ctx context.Context, id string) (*entity.ConferenceDetails, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+conferenceColumns+`
		FROM conferences c
		JOIN rooms r ON r.id = c.room_id
		WHERE c.id = $1
	`, id)
	d, err := scanConferenceDetails(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrConferenceNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *ConferenceRepository) Create(ctx context.Context, c *entity.Conference) error {
	var sponsorID any
	if c.SponsorID != "" {
		sponsorID = c.SponsorID
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO conferences (title, description, speaker, date, duration, room_id, max_capacity, sponsor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, c.Title, c.Description, c.Speaker, c.Date, c.Duration, c.RoomID, c.MaxCapacity, sponsorID)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ConferenceRepository) Update(ctx context.Context, id string, upd repository.ConferenceUpdate) (*entity.ConferenceDetails, error) {
	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Speaker != nil {
		add("speaker", *upd.Speaker)
	}
	if upd.Date != nil {
		add("date", *upd.Date)
	}
	if upd.Duration != nil {
		add("duration", *upd.Duration)
	}
	if upd.RoomID != nil {
		add("room_id", *upd.RoomID)
	}
	if upd.MaxCapacity != nil {
		add("max_capacity", *upd.MaxCapacity)
	}
	if upd.SponsorID != nil {
		if *upd.SponsorID == "" {
			add("sponsor_id", nil)
		} else {
			add("sponsor_id", *upd.SponsorID)
		}
	}
	if len(set) > 0 {
		add("updated_at", time.Now())
		args = append(args, id)
		tag, err := r.pool.Exec(ctx, fmt.Sprintf(`
			UPDATE conferences SET %s WHERE id = $%d
		`, strings.Join(set, ", "), len(args)), args...)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, entity.ErrConferenceNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *ConferenceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM conferences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrConferenceNotFound
	}
	return nil
}

func (r *ConferenceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM conferences`).Scan(&n)
	return n, err
}

var _ repository.ConferenceRepository = (*ConferenceRepository)(nil)
