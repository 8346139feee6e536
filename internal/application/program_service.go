package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	repo "github.com/expoconf/conference-portal/internal/domain/repository"
	"github.com/expoconf/conference-portal/pkg/mailer"
)

// Publisher is the queue used for confirmation emails. Satisfied by
// helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ProgramService manages a visitor's personal program. Duplicate detection
// is delegated to the store's composite key; Add never pre-checks.
type ProgramService struct {
	Program     repo.ProgramRepository
	Conferences repo.ConferenceRepository
	Logger      *logrus.Logger
	Queue       Publisher
}

func NewProgramService(program repo.ProgramRepository, conferences repo.ConferenceRepository, logger *logrus.Logger, queue Publisher) *ProgramService {
	return &ProgramService{
		Program:     program,
		Conferences: conferences,
		Logger:      logger,
		Queue:       queue,
	}
}

func (s *ProgramService) List(ctx context.Context, caller *entity.Identity) ([]entity.ProgramItem, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	return s.Program.ListByUser(ctx, caller.ID)
}

func (s *ProgramService) Add(ctx context.Context, caller *entity.Identity, conferenceID string) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	if err := s.Program.Add(ctx, caller.ID, conferenceID); err != nil {
		return err
	}
	s.sendConfirmation(ctx, caller, conferenceID)
	return nil
}

func (s *ProgramService) Remove(ctx context.Context, caller *entity.Identity, conferenceID string) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	return s.Program.Remove(ctx, caller.ID, conferenceID)
}

// sendConfirmation enqueues the confirmation email. Best effort: a queue
// failure never fails the add itself.
func (s *ProgramService) sendConfirmation(ctx context.Context, caller *entity.Identity, conferenceID string) {
	if s.Queue == nil || caller.Email == "" {
		return
	}
	conf, err := s.Conferences.GetByID(ctx, conferenceID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("conference_id", conferenceID).Warn("confirmation lookup failed")
		}
		return
	}
	job := mailer.EmailJob{
		To:       caller.Email,
		Template: mailer.TemplateProgramConfirmation,
		Data: map[string]any{
			"Name":     caller.Name,
			"Title":    conf.Title,
			"Speaker":  conf.Speaker,
			"Date":     conf.Date.Format("02/01/2006 15:04"),
			"Room":     conf.Room.Name,
			"Duration": conf.Duration,
		},
	}
	if err := s.Queue.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("conference_id", conferenceID).Warn("confirmation publish failed")
	}
}
