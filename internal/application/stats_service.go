package application

import (
	"context"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	repo "github.com/expoconf/conference-portal/internal/domain/repository"
)

// RoomStat is the per-room aggregate shown on the admin dashboard.
type RoomStat struct {
	RoomID             string  `json:"roomId"`
	RoomName           string  `json:"roomName"`
	Capacity           int     `json:"capacity"`
	TotalRegistrations int     `json:"totalRegistrations"`
	OccupancyRate      float64 `json:"occupancyRate"`
}

// AdminStats is the aggregate payload for the admin dashboard. Conferences
// carries the full list; the dashboard slices its own top 5.
type AdminStats struct {
	TotalConferences   int                        `json:"totalConferences"`
	TotalUsers         int                        `json:"totalUsers"`
	TotalRegistrations int                        `json:"totalRegistrations"`
	Conferences        []entity.ConferenceDetails `json:"-"`
	RoomStats          []RoomStat                 `json:"roomStats"`
}

// StatsService reduces fetched rows into admin statistics. Pure aggregation,
// no persistence of its own.
type StatsService struct {
	Conferences repo.ConferenceRepository
	Users       repo.UserRepository
	Program     repo.ProgramRepository
	Stats       repo.StatsRepository
}

func NewStatsService(conferences repo.ConferenceRepository, users repo.UserRepository, program repo.ProgramRepository, stats repo.StatsRepository) *StatsService {
	return &StatsService{Conferences: conferences, Users: users, Program: program, Stats: stats}
}

// occupancyRate preserves the historical formula: average registrations per
// conference divided by room capacity, as a percentage. Zero when the room
// hosts no conferences.
func occupancyRate(totalRegistrations, conferenceCount, capacity int) float64 {
	if conferenceCount == 0 {
		return 0
	}
	return float64(totalRegistrations) / float64(conferenceCount) / float64(capacity) * 100
}

func (s *StatsService) AdminStats(ctx context.Context, caller *entity.Identity) (*AdminStats, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	totalConferences, err := s.Conferences.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRegistrations, err := s.Program.Count(ctx)
	if err != nil {
		return nil, err
	}

	conferences, err := s.Conferences.List(ctx, repo.ConferenceFilter{})
	if err != nil {
		return nil, err
	}

	occupancies, err := s.Stats.RoomOccupancies(ctx)
	if err != nil {
		return nil, err
	}
	roomStats := make([]RoomStat, 0, len(occupancies))
	for _, o := range occupancies {
		roomStats = append(roomStats, RoomStat{
			RoomID:             o.Room.ID,
			RoomName:           o.Room.Name,
			Capacity:           o.Room.Capacity,
			TotalRegistrations: o.TotalRegistration,
			OccupancyRate:      occupancyRate(o.TotalRegistration, o.ConferenceCount, o.Room.Capacity),
		})
	}

	return &AdminStats{
		TotalConferences:   totalConferences,
		TotalUsers:         totalUsers,
		TotalRegistrations: totalRegistrations,
		Conferences:        conferences,
		RoomStats:          roomStats,
	}, nil
}
