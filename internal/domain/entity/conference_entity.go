package entity

import "time"

// Conference is a scheduled talk. Duration is in minutes. SponsorID is
// empty for unsponsored talks.
type Conference struct {
	ID          string
	Title       string
	Description string
	Speaker     string
	Date        time.Time
	Duration    int
	RoomID      string
	MaxCapacity int
	SponsorID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ConferenceDetails is the read model returned by list/get operations:
// the conference, the room it is held in, and its registration count.
type ConferenceDetails struct {
	Conference
	Room      Room
	Attendees int
}

// ProgramEntry is the user<->conference join: "this user bookmarked this
// conference". (UserID, ConferenceID) is unique at the store level.
type ProgramEntry struct {
	UserID       string
	ConferenceID string
	CreatedAt    time.Time
}

// ProgramItem is a program entry expanded with its conference and room.
type ProgramItem struct {
	ProgramEntry
	Conference ConferenceDetails
}
