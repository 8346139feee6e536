package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	"github.com/expoconf/conference-portal/internal/domain/repository"
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) List(ctx context.Context) ([]entity.Room, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, capacity FROM rooms ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Room{}
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	room := &entity.Room{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, capacity FROM rooms WHERE id = $1
	`, id).Scan(&room.ID, &room.Name, &room.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

var _ repository.RoomRepository = (*RoomRepository)(nil)
