package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/expoconf/conference-portal/internal/application"
	"github.com/expoconf/conference-portal/internal/domain/entity"
	repo "github.com/expoconf/conference-portal/internal/domain/repository"
	"github.com/expoconf/conference-portal/internal/interface/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stub repositories with overridable functions; unset methods return the
// zero value so each test only fills in what it exercises.

type stubConferenceRepo struct {
	ListFn    func(ctx context.Context, filter repo.ConferenceFilter) ([]entity.ConferenceDetails, error)
	GetByIDFn func(ctx context.Context, id string) (*entity.ConferenceDetails, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (s *stubConferenceRepo) List(ctx context.Context, filter repo.ConferenceFilter) ([]entity.ConferenceDetails, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return []entity.ConferenceDetails{}, nil
}

func (s *stubConferenceRepo) GetByID(ctx context.Context, id string) (*entity.ConferenceDetails, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, entity.ErrConferenceNotFound
}

func (s *stubConferenceRepo) Create(context.Context, *entity.Conference) error { return nil }

func (s *stubConferenceRepo) Update(context.Context, string, repo.ConferenceUpdate) (*entity.ConferenceDetails, error) {
	return nil, entity.ErrConferenceNotFound
}

func (s *stubConferenceRepo) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *stubConferenceRepo) Count(context.Context) (int, error) { return 0, nil }

type stubSponsorRepo struct {
	GetByUserIDFn func(ctx context.Context, userID string) (*entity.Sponsor, error)
}

func (s *stubSponsorRepo) List(context.Context) ([]entity.Sponsor, error) { return nil, nil }

func (s *stubSponsorRepo) GetByID(context.Context, string) (*entity.SponsorDetails, error) {
	return nil, entity.ErrSponsorNotFound
}

func (s *stubSponsorRepo) GetByUserID(ctx context.Context, userID string) (*entity.Sponsor, error) {
	if s.GetByUserIDFn != nil {
		return s.GetByUserIDFn(ctx, userID)
	}
	return nil, entity.ErrNoSponsorForUser
}

func (s *stubSponsorRepo) ConferencesByUserID(context.Context, string) (*entity.SponsorDetails, error) {
	return nil, entity.ErrNoSponsorForUser
}

func (s *stubSponsorRepo) OwnsConference(context.Context, string, string) (bool, error) {
	return false, nil
}

func (s *stubSponsorRepo) Create(context.Context, *entity.Sponsor) error { return nil }

func (s *stubSponsorRepo) Update(context.Context, string, repo.SponsorUpdate) (*entity.Sponsor, error) {
	return nil, entity.ErrSponsorNotFound
}

func (s *stubSponsorRepo) Delete(context.Context, string) error { return nil }

// withIdentity injects a caller the way the session middleware would.
func withIdentity(id *entity.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != nil {
			c.Set(middleware.CtxIdentityKey, id)
		}
		c.Next()
	}
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{ID: "admin-1", Email: "admin@demo.com", Role: entity.RoleAdmin}
}

func visitorIdentity() *entity.Identity {
	return &entity.Identity{ID: "visitor-1", Email: "visiteur@demo.com", Role: entity.RoleVisitor}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestConferenceHandler_Delete(t *testing.T) {
	newRouter := func(store *stubConferenceRepo, caller *entity.Identity) *gin.Engine {
		svc := application.NewConferenceService(store, &stubSponsorRepo{}, nil, nil, "")
		h := NewConferenceHandler(svc, nil)
		r := gin.New()
		r.Use(withIdentity(caller))
		r.DELETE("/api/conferences/:id", h.Delete)
		return r
	}

	do := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/conferences/conf-1", nil)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("admin delete returns bare success", func(t *testing.T) {
		w := do(newRouter(&stubConferenceRepo{}, adminIdentity()))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true {
			t.Fatalf("expected {success:true}, got %v", body)
		}
		if _, ok := body["error"]; ok {
			t.Fatalf("expected no error key, got %v", body)
		}
	})

	t.Run("anonymous delete is a 400 business error", func(t *testing.T) {
		w := do(newRouter(&stubConferenceRepo{}, nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != false {
			t.Fatalf("expected success=false, got %v", body)
		}
		if body["error"] != "Accès non autorisé" {
			t.Fatalf("unexpected error %v", body["error"])
		}
	})

	t.Run("missing conference is a 400 business error", func(t *testing.T) {
		store := &stubConferenceRepo{DeleteFn: func(context.Context, string) error {
			return entity.ErrConferenceNotFound
		}}
		w := do(newRouter(store, adminIdentity()))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != "Conférence non trouvée" {
			t.Fatalf("unexpected error %v", body["error"])
		}
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		store := &stubConferenceRepo{DeleteFn: func(context.Context, string) error {
			return errors.New("connection reset")
		}}
		w := do(newRouter(store, adminIdentity()))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != "Erreur interne du serveur" {
			t.Fatalf("expected generic message, got %v", body["error"])
		}
	})
}

func TestSponsorHandler_Check(t *testing.T) {
	newRouter := func(store *stubSponsorRepo, caller *entity.Identity) *gin.Engine {
		svc := application.NewSponsorService(store, nil, nil, "")
		h := NewSponsorHandler(svc, nil)
		r := gin.New()
		r.Use(withIdentity(caller))
		r.GET("/api/sponsor/check", h.Check)
		return r
	}

	do := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sponsor/check", nil)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("sponsor owner", func(t *testing.T) {
		store := &stubSponsorRepo{GetByUserIDFn: func(context.Context, string) (*entity.Sponsor, error) {
			return &entity.Sponsor{ID: "sponsor-1", Name: "TechCorp"}, nil
		}}
		w := do(newRouter(store, visitorIdentity()))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["isSponsor"] != true || body["sponsorId"] != "sponsor-1" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("plain visitor", func(t *testing.T) {
		w := do(newRouter(&stubSponsorRepo{}, visitorIdentity()))

		body := decodeBody(t, w)
		if body["isSponsor"] != false {
			t.Fatalf("expected isSponsor=false, got %v", body)
		}
	})

	t.Run("anonymous caller gets isSponsor false without sponsorId", func(t *testing.T) {
		w := do(newRouter(&stubSponsorRepo{}, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["isSponsor"] != false {
			t.Fatalf("expected isSponsor=false, got %v", body)
		}
		if _, ok := body["sponsorId"]; ok {
			t.Fatalf("expected no sponsorId key, got %v", body)
		}
	})

	t.Run("store failure is a 500 with isSponsor false", func(t *testing.T) {
		store := &stubSponsorRepo{GetByUserIDFn: func(context.Context, string) (*entity.Sponsor, error) {
			return nil, errors.New("connection reset")
		}}
		w := do(newRouter(store, visitorIdentity()))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["isSponsor"] != false {
			t.Fatalf("expected isSponsor=false, got %v", body)
		}
	})
}

func TestConferenceHandler_List(t *testing.T) {
	t.Run("envelope carries conference payloads", func(t *testing.T) {
		store := &stubConferenceRepo{ListFn: func(_ context.Context, filter repo.ConferenceFilter) ([]entity.ConferenceDetails, error) {
			if filter.Speaker != "sarah" {
				t.Fatalf("expected speaker filter, got %+v", filter)
			}
			return []entity.ConferenceDetails{{
				Conference: entity.Conference{ID: "conf-1", Title: "Introduction à Next.js 14"},
				Room:       entity.Room{ID: "room-1", Name: "Salle A", Capacity: 100},
				Attendees:  2,
			}}, nil
		}}
		svc := application.NewConferenceService(store, &stubSponsorRepo{}, nil, nil, "")
		h := NewConferenceHandler(svc, nil)
		r := gin.New()
		r.GET("/api/conferences", h.List)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/conferences?speaker=sarah", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true {
			t.Fatalf("expected success envelope, got %v", body)
		}
		data, ok := body["data"].([]any)
		if !ok || len(data) != 1 {
			t.Fatalf("expected one conference, got %v", body["data"])
		}
		first := data[0].(map[string]any)
		if first["id"] != "conf-1" {
			t.Fatalf("unexpected conference %v", first)
		}
		if first["attendees"] != float64(2) {
			t.Fatalf("expected attendees 2, got %v", first["attendees"])
		}
		room, ok := first["room"].(map[string]any)
		if !ok || room["name"] != "Salle A" {
			t.Fatalf("expected embedded room, got %v", first["room"])
		}
	})

	t.Run("malformed date filter is a validation error", func(t *testing.T) {
		svc := application.NewConferenceService(&stubConferenceRepo{}, &stubSponsorRepo{}, nil, nil, "")
		h := NewConferenceHandler(svc, nil)
		r := gin.New()
		r.GET("/api/conferences", h.List)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/conferences?date=not-a-date", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 for unparseable date, got %d", w.Code)
		}
	})
}

func TestConferenceHandler_Create_Validation(t *testing.T) {
	svc := application.NewConferenceService(&stubConferenceRepo{}, &stubSponsorRepo{}, nil, nil, "")
	h := NewConferenceHandler(svc, nil)
	r := gin.New()
	r.Use(withIdentity(adminIdentity()))
	r.POST("/api/conferences", h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/conferences", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete payload, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Fatalf("expected error envelope, got %v", body)
	}
}
