package application

import (
	"context"
	"strconv"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	repo "github.com/expoconf/conference-portal/internal/domain/repository"
)

// In-memory repository fakes. Errors can be forced per fake through the
// failWith field to exercise the unexpected-failure paths.

type fakeConferenceRepo struct {
	conferences map[string]*entity.ConferenceDetails
	nextID      int
	lastFilter  repo.ConferenceFilter
	failWith    error
}

func newFakeConferenceRepo(confs ...entity.ConferenceDetails) *fakeConferenceRepo {
	r := &fakeConferenceRepo{conferences: map[string]*entity.ConferenceDetails{}}
	for i := range confs {
		c := confs[i]
		r.conferences[c.ID] = &c
	}
	return r
}

func (r *fakeConferenceRepo) List(_ context.Context, filter repo.ConferenceFilter) ([]entity.ConferenceDetails, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.lastFilter = filter
	out := make([]entity.ConferenceDetails, 0, len(r.conferences))
	for _, c := range r.conferences {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeConferenceRepo) GetByID(_ context.Context, id string) (*entity.ConferenceDetails, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	c, ok := r.conferences[id]
	if !ok {
		return nil, entity.ErrConferenceNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeConferenceRepo) Create(_ context.Context, c *entity.Conference) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	c.ID = "conf-" + strconv.Itoa(r.nextID)
	r.conferences[c.ID] = &entity.ConferenceDetails{Conference: *c}
	return nil
}

func (r *fakeConferenceRepo) Update(_ context.Context, id string, upd repo.ConferenceUpdate) (*entity.ConferenceDetails, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	c, ok := r.conferences[id]
	if !ok {
		return nil, entity.ErrConferenceNotFound
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Speaker != nil {
		c.Speaker = *upd.Speaker
	}
	if upd.Date != nil {
		c.Date = *upd.Date
	}
	if upd.Duration != nil {
		c.Duration = *upd.Duration
	}
	if upd.RoomID != nil {
		c.RoomID = *upd.RoomID
	}
	if upd.MaxCapacity != nil {
		c.MaxCapacity = *upd.MaxCapacity
	}
	if upd.SponsorID != nil {
		c.SponsorID = *upd.SponsorID
	}
	cp := *c
	return &cp, nil
}

func (r *fakeConferenceRepo) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.conferences[id]; !ok {
		return entity.ErrConferenceNotFound
	}
	delete(r.conferences, id)
	return nil
}

func (r *fakeConferenceRepo) Count(_ context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	return len(r.conferences), nil
}

type fakeSponsorRepo struct {
	sponsors map[string]*entity.Sponsor
	// ownership maps "userID/conferenceID" pairs
	owns     map[string]bool
	failWith error
}

func newFakeSponsorRepo(sponsors ...entity.Sponsor) *fakeSponsorRepo {
	r := &fakeSponsorRepo{sponsors: map[string]*entity.Sponsor{}, owns: map[string]bool{}}
	for i := range sponsors {
		s := sponsors[i]
		r.sponsors[s.ID] = &s
	}
	return r
}

func (r *fakeSponsorRepo) List(_ context.Context) ([]entity.Sponsor, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]entity.Sponsor, 0, len(r.sponsors))
	for _, s := range r.sponsors {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSponsorRepo) GetByID(_ context.Context, id string) (*entity.SponsorDetails, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	s, ok := r.sponsors[id]
	if !ok {
		return nil, entity.ErrSponsorNotFound
	}
	return &entity.SponsorDetails{Sponsor: *s}, nil
}

func (r *fakeSponsorRepo) GetByUserID(_ context.Context, userID string) (*entity.Sponsor, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, s := range r.sponsors {
		if s.UserID == userID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, entity.ErrNoSponsorForUser
}

func (r *fakeSponsorRepo) ConferencesByUserID(ctx context.Context, userID string) (*entity.SponsorDetails, error) {
	s, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entity.SponsorDetails{Sponsor: *s}, nil
}

func (r *fakeSponsorRepo) OwnsConference(_ context.Context, userID, conferenceID string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	return r.owns[userID+"/"+conferenceID], nil
}

func (r *fakeSponsorRepo) Create(_ context.Context, s *entity.Sponsor) error {
	if r.failWith != nil {
		return r.failWith
	}
	if s.ID == "" {
		s.ID = "sponsor-" + strconv.Itoa(len(r.sponsors)+1)
	}
	cp := *s
	r.sponsors[s.ID] = &cp
	return nil
}

func (r *fakeSponsorRepo) Update(_ context.Context, id string, upd repo.SponsorUpdate) (*entity.Sponsor, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	s, ok := r.sponsors[id]
	if !ok {
		return nil, entity.ErrSponsorNotFound
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.Logo != nil {
		s.Logo = *upd.Logo
	}
	if upd.Website != nil {
		s.Website = *upd.Website
	}
	if upd.Email != nil {
		s.Email = *upd.Email
	}
	if upd.Phone != nil {
		s.Phone = *upd.Phone
	}
	if upd.Level != nil {
		s.Level = *upd.Level
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSponsorRepo) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.sponsors[id]; !ok {
		return entity.ErrSponsorNotFound
	}
	delete(r.sponsors, id)
	return nil
}

type fakeProgramRepo struct {
	entries  map[string]bool // "userID/conferenceID"
	items    map[string][]entity.ProgramItem
	failWith error
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{entries: map[string]bool{}, items: map[string][]entity.ProgramItem{}}
}

func (r *fakeProgramRepo) ListByUser(_ context.Context, userID string) ([]entity.ProgramItem, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.items[userID], nil
}

func (r *fakeProgramRepo) Add(_ context.Context, userID, conferenceID string) error {
	if r.failWith != nil {
		return r.failWith
	}
	key := userID + "/" + conferenceID
	if r.entries[key] {
		return entity.ErrAlreadyInProgram
	}
	r.entries[key] = true
	return nil
}

func (r *fakeProgramRepo) Remove(_ context.Context, userID, conferenceID string) error {
	if r.failWith != nil {
		return r.failWith
	}
	key := userID + "/" + conferenceID
	if !r.entries[key] {
		return entity.ErrNotInProgram
	}
	delete(r.entries, key)
	return nil
}

func (r *fakeProgramRepo) Count(_ context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	return len(r.entries), nil
}

type fakeUserRepo struct {
	users    map[string]*entity.User
	failWith error
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for i := range users {
		u := users[i]
		r.users[u.ID] = &u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if u.ID == "" {
		u.ID = "user-" + strconv.Itoa(len(r.users)+1)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	return len(r.users), nil
}

type fakeStatsRepo struct {
	occupancies []repo.RoomOccupancy
	failWith    error
}

func (r *fakeStatsRepo) RoomOccupancies(_ context.Context) ([]repo.RoomOccupancy, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.occupancies, nil
}

type fakePublisher struct {
	published []any
	failWith  error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.published = append(p.published, body)
	return nil
}

func admin() *entity.Identity {
	return &entity.Identity{ID: "admin-1", Email: "admin@demo.com", Name: "Administrateur", Role: entity.RoleAdmin}
}

func visitor() *entity.Identity {
	return &entity.Identity{ID: "visitor-1", Email: "visiteur@demo.com", Name: "Visiteur Demo", Role: entity.RoleVisitor}
}
