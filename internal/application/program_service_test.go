package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	"github.com/expoconf/conference-portal/pkg/mailer"
)

func TestProgramService_Add(t *testing.T) {
	t.Parallel()

	conf := entity.ConferenceDetails{
		Conference: entity.Conference{
			ID:       "conf-1",
			Title:    "Machine Learning en Production",
			Speaker:  "Dr. Elena Rodriguez",
			Date:     time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC),
			Duration: 90,
		},
		Room: entity.Room{ID: "room-3", Name: "Salle C", Capacity: 60},
	}

	t.Run("adds and enqueues confirmation", func(t *testing.T) {
		program := newFakeProgramRepo()
		queue := &fakePublisher{}
		svc := NewProgramService(program, newFakeConferenceRepo(conf), nil, queue)

		if err := svc.Add(context.Background(), visitor(), "conf-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !program.entries["visitor-1/conf-1"] {
			t.Fatalf("expected entry stored")
		}
		if len(queue.published) != 1 {
			t.Fatalf("expected 1 job published, got %d", len(queue.published))
		}
		job, ok := queue.published[0].(mailer.EmailJob)
		if !ok {
			t.Fatalf("expected mailer.EmailJob, got %T", queue.published[0])
		}
		if job.To != "visiteur@demo.com" {
			t.Fatalf("expected recipient visiteur@demo.com, got %q", job.To)
		}
		if job.Template != mailer.TemplateProgramConfirmation {
			t.Fatalf("expected template %q, got %q", mailer.TemplateProgramConfirmation, job.Template)
		}
		if job.Data["Date"] != "15/03/2024 14:00" {
			t.Fatalf("unexpected formatted date %v", job.Data["Date"])
		}
		if job.Data["Room"] != "Salle C" {
			t.Fatalf("unexpected room %v", job.Data["Room"])
		}
	})

	t.Run("second add is a duplicate", func(t *testing.T) {
		program := newFakeProgramRepo()
		svc := NewProgramService(program, newFakeConferenceRepo(conf), nil, nil)

		if err := svc.Add(context.Background(), visitor(), "conf-1"); err != nil {
			t.Fatalf("first add failed: %v", err)
		}
		err := svc.Add(context.Background(), visitor(), "conf-1")
		if !errors.Is(err, entity.ErrAlreadyInProgram) {
			t.Fatalf("expected ErrAlreadyInProgram, got %v", err)
		}
		if err.Error() != "Conférence déjà dans votre programme" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("queue failure does not fail the add", func(t *testing.T) {
		program := newFakeProgramRepo()
		queue := &fakePublisher{failWith: errors.New("broker down")}
		svc := NewProgramService(program, newFakeConferenceRepo(conf), nil, queue)

		if err := svc.Add(context.Background(), visitor(), "conf-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("anonymous is not connected", func(t *testing.T) {
		svc := NewProgramService(newFakeProgramRepo(), newFakeConferenceRepo(conf), nil, nil)
		if err := svc.Add(context.Background(), nil, "conf-1"); !errors.Is(err, entity.ErrNotConnected) {
			t.Fatalf("expected ErrNotConnected, got %v", err)
		}
	})
}

func TestProgramService_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes existing entry", func(t *testing.T) {
		program := newFakeProgramRepo()
		program.entries["visitor-1/conf-1"] = true
		svc := NewProgramService(program, newFakeConferenceRepo(), nil, nil)

		if err := svc.Remove(context.Background(), visitor(), "conf-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if program.entries["visitor-1/conf-1"] {
			t.Fatalf("expected entry removed")
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		svc := NewProgramService(newFakeProgramRepo(), newFakeConferenceRepo(), nil, nil)
		if err := svc.Remove(context.Background(), visitor(), "conf-1"); !errors.Is(err, entity.ErrNotInProgram) {
			t.Fatalf("expected ErrNotInProgram, got %v", err)
		}
	})
}

func TestProgramService_List(t *testing.T) {
	t.Parallel()

	t.Run("requires session", func(t *testing.T) {
		svc := NewProgramService(newFakeProgramRepo(), newFakeConferenceRepo(), nil, nil)
		if _, err := svc.List(context.Background(), nil); !errors.Is(err, entity.ErrNotConnected) {
			t.Fatalf("expected ErrNotConnected, got %v", err)
		}
	})

	t.Run("returns the caller's entries", func(t *testing.T) {
		program := newFakeProgramRepo()
		program.items["visitor-1"] = []entity.ProgramItem{
			{ProgramEntry: entity.ProgramEntry{UserID: "visitor-1", ConferenceID: "conf-1"}},
		}
		svc := NewProgramService(program, newFakeConferenceRepo(), nil, nil)

		items, err := svc.List(context.Background(), visitor())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 1 || items[0].ConferenceID != "conf-1" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})
}
