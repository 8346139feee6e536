package entity

import "time"

// SponsorLevel is the closed set of sponsorship tiers.
type SponsorLevel string

const (
	LevelPlatinum SponsorLevel = "PLATINUM"
	LevelGold     SponsorLevel = "GOLD"
	LevelSilver   SponsorLevel = "SILVER"
	LevelBronze   SponsorLevel = "BRONZE"
)

func (l SponsorLevel) Valid() bool {
	switch l {
	case LevelPlatinum, LevelGold, LevelSilver, LevelBronze:
		return true
	}
	return false
}

// Sponsor is a sponsoring company. UserID, when set, links the sponsor to
// the account allowed to edit its conferences; at most one sponsor per user
// (unique constraint on user_id).
type Sponsor struct {
	ID          string
	Name        string
	Description string
	Logo        string
	Website     string
	Email       string
	Phone       string
	Level       SponsorLevel
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SponsorDetails carries a sponsor together with its sponsored conferences.
type SponsorDetails struct {
	Sponsor
	Conferences []ConferenceDetails
}
