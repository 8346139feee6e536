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

const sponsorColumns = `
	s.id, s.name, s.description, s.logo, s.website, s.email, s.phone,
	s.level, COALESCE(s.user_id::text, ''), s.created_at, s.updated_at`

type SponsorRepository struct {
	pool *pgxpool.Pool
}

func NewSponsorRepository(pool *pgxpool.Pool) *SponsorRepository {
	return &SponsorRepository{pool: pool}
}

func scanSponsor(row pgx.Row) (*entity.Sponsor, error) {
	s := &entity.Sponsor{}
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.Logo, &s.Website, &s.Email,
		&s.Phone, &s.Level, &s.UserID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List orders by the level text column ascending; that is alphabetic
// (BRONZE, GOLD, PLATINUM, SILVER), matching the historical listing rather
// than a tier ranking.
func (r *SponsorRepository) List(ctx context.Context) ([]entity.Sponsor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+sponsorColumns+`
		FROM sponsors s
		ORDER BY s.level ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Sponsor{}
	for rows.Next() {
		s, err := scanSponsor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SponsorRepository) getSponsor(ctx context.Context, cond string, arg any) (*entity.Sponsor, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+sponsorColumns+`
		FROM sponsors s
		WHERE `+cond+` = $1
	`, arg)
	return scanSponsor(row)
}

func (r *SponsorRepository) conferencesOf(ctx context.Context, sponsorID string) ([]entity.ConferenceDetails, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+conferenceColumns+`
		FROM conferences c
		JOIN rooms r ON r.id = c.room_id
		WHERE c.sponsor_id = $1
		ORDER BY c.date ASC
	`, sponsorID)
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

func (r *SponsorRepository) GetByID(ctx context.Context, id string) (*entity.SponsorDetails, error) {
	s, err := r.getSponsor(ctx, "s.id", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSponsorNotFound
		}
		return nil, err
	}
	confs, err := r.conferencesOf(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return &entity.SponsorDetails{Sponsor: *s, Conferences: confs}, nil
}

func (r *SponsorRepository) GetByUserID(ctx context.Context, userID string) (*entity.Sponsor, error) {
	s, err := r.getSponsor(ctx, "s.user_id", userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNoSponsorForUser
		}
		return nil, err
	}
	return s, nil
}

func (r *SponsorRepository) ConferencesByUserID(ctx context.Context, userID string) (*entity.SponsorDetails, error) {
	s, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	confs, err := r.conferencesOf(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return &entity.SponsorDetails{Sponsor: *s, Conferences: confs}, nil
}

func (r *SponsorRepository) OwnsConference(ctx context.Context, userID, conferenceID string) (bool, error) {
	var owns bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM sponsors s
			JOIN conferences c ON c.sponsor_id = s.id
			WHERE s.user_id = $1 AND c.id = $2
		)
	`, userID, conferenceID).Scan(&owns)
	return owns, err
}

func (r *SponsorRepository) Create(ctx context.Context, s *entity.Sponsor) error {
	var userID any
	if s.UserID != "" {
		userID = s.UserID
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sponsors (name, description, logo, website, email, phone, level, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, s.Name, s.Description, s.Logo, s.Website, s.Email, s.Phone, s.Level, userID)
	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SponsorRepository) Update(ctx context.Context, id string, upd repository.SponsorUpdate) (*entity.Sponsor, error) {
	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Logo != nil {
		add("logo", *upd.Logo)
	}
	if upd.Website != nil {
		add("website", *upd.Website)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Level != nil {
		add("level", *upd.Level)
	}
	if len(set) > 0 {
		add("updated_at", time.Now())
		args = append(args, id)
		tag, err := r.pool.Exec(ctx, fmt.Sprintf(`
			UPDATE sponsors SET %s WHERE id = $%d
		`, strings.Join(set, ", "), len(args)), args...)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, entity.ErrSponsorNotFound
		}
	}
	s, err := r.getSponsor(ctx, "s.id", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSponsorNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *SponsorRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sponsors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrSponsorNotFound
	}
	return nil
}

var _ repository.SponsorRepository = (*SponsorRepository)(nil)
