package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expoconf/conference-portal/internal/domain/entity"
)

func TestConferenceService_List(t *testing.T) {
	t.Parallel()

	t.Run("forwards day filter", func(t *testing.T) {
		confs := newFakeConferenceRepo()
		svc := NewConferenceService(confs, newFakeSponsorRepo(), nil, nil, "")

		_, err := svc.List(context.Background(), ListConferencesInput{Date: "2024-03-15", RoomID: "room-1", Speaker: "sarah"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if confs.lastFilter.Date == nil {
			t.Fatalf("expected date filter to be set")
		}
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if !confs.lastFilter.Date.Equal(want) {
			t.Fatalf("expected date %v, got %v", want, confs.lastFilter.Date)
		}
		if confs.lastFilter.RoomID != "room-1" || confs.lastFilter.Speaker != "sarah" {
			t.Fatalf("unexpected filter: %+v", confs.lastFilter)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(), newFakeSponsorRepo(), nil, nil, "")
		if _, err := svc.List(context.Background(), ListConferencesInput{Date: "15/03/2024"}); err == nil {
			t.Fatalf("expected error for malformed date")
		}
	})
}

func TestConferenceService_Create(t *testing.T) {
	t.Parallel()

	input := CreateConferenceInput{
		Title:       "Introduction à Next.js 14",
		Description: "Découvrez les nouvelles fonctionnalités.",
		Speaker:     "Sarah Johnson",
		Date:        "2024-03-15T09:00:00Z",
		Duration:    90,
		RoomID:      "room-1",
		MaxCapacity: 80,
	}

	t.Run("admin creates conference", func(t *testing.T) {
		confs := newFakeConferenceRepo()
		svc := NewConferenceService(confs, newFakeSponsorRepo(), nil, nil, "")

		created, err := svc.Create(context.Background(), admin(), input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		want := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
		if !created.Date.Equal(want) {
			t.Fatalf("expected date %v, got %v", want, created.Date)
		}
	})

	t.Run("accepts datetime-local form dates", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(), newFakeSponsorRepo(), nil, nil, "")
		in := input
		in.Date = "2024-03-15T09:00"
		if _, err := svc.Create(context.Background(), admin(), in); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("visitor is rejected", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(), newFakeSponsorRepo(), nil, nil, "")
		if _, err := svc.Create(context.Background(), visitor(), input); !errors.Is(err, entity.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(), newFakeSponsorRepo(), nil, nil, "")
		if _, err := svc.Create(context.Background(), nil, input); !errors.Is(err, entity.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("rejects unparseable date", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(), newFakeSponsorRepo(), nil, nil, "")
		in := input
		in.Date = "demain"
		if _, err := svc.Create(context.Background(), admin(), in); err == nil {
			t.Fatalf("expected error for bad date")
		}
	})
}

func TestConferenceService_Update(t *testing.T) {
	t.Parallel()

	existing := entity.ConferenceDetails{
		Conference: entity.Conference{
			ID:      "conf-1",
			Title:   "Architecture Cloud Native",
			Speaker: "Marc Dubois",
			Date:    time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
		},
	}
	newTitle := "Architecture Cloud Native v2"

	t.Run("admin updates any conference", func(t *testing.T) {
		confs := newFakeConferenceRepo(existing)
		svc := NewConferenceService(confs, newFakeSponsorRepo(), nil, nil, "")

		updated, err := svc.Update(context.Background(), admin(), "conf-1", UpdateConferenceInput{Title: &newTitle})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if updated.Title != newTitle {
			t.Fatalf("expected title %q, got %q", newTitle, updated.Title)
		}
		if updated.Speaker != "Marc Dubois" {
			t.Fatalf("expected untouched speaker, got %q", updated.Speaker)
		}
	})

	t.Run("owning sponsor updates own conference", func(t *testing.T) {
		confs := newFakeConferenceRepo(existing)
		sponsors := newFakeSponsorRepo()
		sponsors.owns["visitor-1/conf-1"] = true
		svc := NewConferenceService(confs, sponsors, nil, nil, "")

		if _, err := svc.Update(context.Background(), visitor(), "conf-1", UpdateConferenceInput{Title: &newTitle}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		confs := newFakeConferenceRepo(existing)
		svc := NewConferenceService(confs, newFakeSponsorRepo(), nil, nil, "")

		if _, err := svc.Update(context.Background(), visitor(), "conf-1", UpdateConferenceInput{Title: &newTitle}); !errors.Is(err, entity.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("anonymous is not connected", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(existing), newFakeSponsorRepo(), nil, nil, "")
		if _, err := svc.Update(context.Background(), nil, "conf-1", UpdateConferenceInput{Title: &newTitle}); !errors.Is(err, entity.ErrNotConnected) {
			t.Fatalf("expected ErrNotConnected, got %v", err)
		}
	})
}

func TestConferenceService_Delete(t *testing.T) {
	t.Parallel()

	existing := entity.ConferenceDetails{Conference: entity.Conference{ID: "conf-1", Title: "DevOps Best Practices"}}

	t.Run("admin deletes", func(t *testing.T) {
		confs := newFakeConferenceRepo(existing)
		svc := NewConferenceService(confs, newFakeSponsorRepo(), nil, nil, "")

		if err := svc.Delete(context.Background(), admin(), "conf-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(confs.conferences) != 0 {
			t.Fatalf("expected conference removed")
		}
	})

	t.Run("missing conference", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(), newFakeSponsorRepo(), nil, nil, "")
		if err := svc.Delete(context.Background(), admin(), "ghost"); !errors.Is(err, entity.ErrConferenceNotFound) {
			t.Fatalf("expected ErrConferenceNotFound, got %v", err)
		}
	})

	t.Run("visitor is rejected", func(t *testing.T) {
		confs := newFakeConferenceRepo(existing)
		svc := NewConferenceService(confs, newFakeSponsorRepo(), nil, nil, "")

		if err := svc.Delete(context.Background(), visitor(), "conf-1"); !errors.Is(err, entity.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if len(confs.conferences) != 1 {
			t.Fatalf("expected conference to remain")
		}
	})
}
