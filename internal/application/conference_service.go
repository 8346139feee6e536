package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	repo "github.com/expoconf/conference-portal/internal/domain/repository"
)

// ConferenceService implements the public listing and the admin/sponsor
// mutations over conferences. Mutations keep the Elasticsearch index in
// sync on a best-effort basis.
type ConferenceService struct {
	Conferences repo.ConferenceRepository
	Sponsors    repo.SponsorRepository
	Logger      *logrus.Logger
	ES          *elasticsearch.Client
	ESIndex     string
}

func NewConferenceService(conferences repo.ConferenceRepository, sponsors repo.SponsorRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *ConferenceService {
	return &ConferenceService{
		Conferences: conferences,
		Sponsors:    sponsors,
		Logger:      logger,
		ES:          es,
		ESIndex:     esIndex,
	}
}

// dateLayouts accepted for conference dates; forms submit the
// datetime-local shape, API clients RFC 3339.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
}

func parseConferenceDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

type ListConferencesInput struct {
	Date    string // calendar day, 2006-01-02
	RoomID  string
	Speaker string
}

func (s *ConferenceService) List(ctx context.Context, in ListConferencesInput) ([]entity.ConferenceDetails, error) {
	filter := repo.ConferenceFilter{RoomID: in.RoomID, Speaker: in.Speaker}
	if in.Date != "" {
		day, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, err
		}
		filter.Date = &day
	}
	return s.Conferences.List(ctx, filter)
}

func (s *ConferenceService) Get(ctx context.Context, id string) (*entity.ConferenceDetails, error) {
	return s.Conferences.GetByID(ctx, id)
}

type CreateConferenceInput struct {
	Title       string
	Description string
	Speaker     string
	Date        string
	Duration    int
	RoomID      string
	MaxCapacity int
	SponsorID   string
}

func (s *ConferenceService) Create(ctx context.Context, caller *entity.Identity, in CreateConferenceInput) (*entity.ConferenceDetails, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	date, err := parseConferenceDate(in.Date)
	if err != nil {
		return nil, err
	}
	conf := &entity.Conference{
		Title:       in.Title,
		Description: in.Description,
		Speaker:     in.Speaker,
		Date:        date,
		Duration:    in.Duration,
		RoomID:      in.RoomID,
		MaxCapacity: in.MaxCapacity,
		SponsorID:   in.SponsorID,
	}
	if err := s.Conferences.Create(ctx, conf); err != nil {
		return nil, err
	}
	details, err := s.Conferences.GetByID(ctx, conf.ID)
	if err != nil {
		return nil, err
	}
	s.indexConference(ctx, details)
	return details, nil
}

type UpdateConferenceInput struct {
	Title       *string
	Description *string
	Speaker     *string
	Date        *string
	Duration    *int
	RoomID      *string
	MaxCapacity *int
	SponsorID   *string
}

func (s *ConferenceService) Update(ctx context.Context, caller *entity.Identity, id string, in UpdateConferenceInput) (*entity.ConferenceDetails, error) {
	if err := requireSponsorOwnerOrAdmin(ctx, s.Sponsors, caller, id); err != nil {
		return nil, err
	}
	upd := repo.ConferenceUpdate{
		Title:       in.Title,
		Description: in.Description,
		Speaker:     in.Speaker,
		Duration:    in.Duration,
		RoomID:      in.RoomID,
		MaxCapacity: in.MaxCapacity,
		SponsorID:   in.SponsorID,
	}
	if in.Date != nil {
		date, err := parseConferenceDate(*in.Date)
		if err != nil {
			return nil, err
		}
		upd.Date = &date
	}
	details, err := s.Conferences.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.indexConference(ctx, details)
	return details, nil
}

func (s *ConferenceService) Delete(ctx context.Context, caller *entity.Identity, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if err := s.Conferences.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *ConferenceService) indexConference(ctx context.Context, d *entity.ConferenceDetails) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          d.ID,
		"title":       d.Title,
		"description": d.Description,
		"speaker":     d.Speaker,
		"date":        d.Date.Format(time.RFC3339),
		"room":        d.Room.Name,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: d.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("conference_id", d.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("conference_id", d.ID).Warn("es index response error")
	}
}

func (s *ConferenceService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("conference_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match full-text search on title, speaker and
// description. It complements the exact filters of List.
func (s *ConferenceService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "speaker^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
