package entity

// Room is static venue reference data, seeded by admin tooling.
type Room struct {
	ID       string
	Name     string
	Capacity int
}
