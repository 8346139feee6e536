package handlers

import (
	"time"

	"github.com/expoconf/conference-portal/internal/application"
	"github.com/expoconf/conference-portal/internal/domain/entity"
)

// JSON shapes mirror what the portal front end has always consumed
// (camelCase keys, nested room, attendee count).

type roomPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type conferencePayload struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Speaker     string      `json:"speaker"`
	Date        time.Time   `json:"date"`
	Duration    int         `json:"duration"`
	RoomID      string      `json:"roomId"`
	MaxCapacity int         `json:"maxCapacity"`
	SponsorID   string      `json:"sponsorId,omitempty"`
	Room        roomPayload `json:"room"`
	Attendees   int         `json:"attendees"`
}

type sponsorPayload struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Logo        string               `json:"logo,omitempty"`
	Website     string               `json:"website,omitempty"`
	Email       string               `json:"email,omitempty"`
	Phone       string               `json:"phone,omitempty"`
	Level       entity.SponsorLevel  `json:"level"`
	UserID      string               `json:"userId,omitempty"`
	Conferences []conferencePayload  `json:"conferences,omitempty"`
}

type programItemPayload struct {
	ConferenceID string             `json:"conferenceId"`
	AddedAt      time.Time          `json:"addedAt"`
	Conference   conferencePayload  `json:"conference"`
}

type adminStatsPayload struct {
	TotalConferences   int                    `json:"totalConferences"`
	TotalUsers         int                    `json:"totalUsers"`
	TotalRegistrations int                    `json:"totalRegistrations"`
	Conferences        []conferencePayload    `json:"conferencesWithStats"`
	RoomStats          []application.RoomStat `json:"roomStats"`
}

func toRoomPayload(r entity.Room) roomPayload {
	return roomPayload{ID: r.ID, Name: r.Name, Capacity: r.Capacity}
}

func toConferencePayload(d entity.ConferenceDetails) conferencePayload {
	return conferencePayload{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Speaker:     d.Speaker,
		Date:        d.Date,
		Duration:    d.Duration,
		RoomID:      d.RoomID,
		MaxCapacity: d.MaxCapacity,
		SponsorID:   d.SponsorID,
		Room:        toRoomPayload(d.Room),
		Attendees:   d.Attendees,
	}
}

func toConferencePayloads(ds []entity.ConferenceDetails) []conferencePayload {
	out := make([]conferencePayload, 0, len(ds))
	for _, d := range ds {
		out = append(out, toConferencePayload(d))
	}
	return out
}

func toSponsorPayload(s entity.Sponsor) sponsorPayload {
	return sponsorPayload{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Logo:        s.Logo,
		Website:     s.Website,
		Email:       s.Email,
		Phone:       s.Phone,
		Level:       s.Level,
		UserID:      s.UserID,
	}
}

func toSponsorDetailsPayload(s *entity.SponsorDetails) sponsorPayload {
	p := toSponsorPayload(s.Sponsor)
	p.Conferences = toConferencePayloads(s.Conferences)
	return p
}

func toProgramPayloads(items []entity.ProgramItem) []programItemPayload {
	out := make([]programItemPayload, 0, len(items))
	for _, it := range items {
		out = append(out, programItemPayload{
			ConferenceID: it.ConferenceID,
			AddedAt:      it.CreatedAt,
			Conference:   toConferencePayload(it.Conference),
		})
	}
	return out
}
