package router

import (
	"github.com/expoconf/conference-portal/internal/application"
	"github.com/expoconf/conference-portal/internal/container"
	pginfra "github.com/expoconf/conference-portal/internal/infrastructure/postgres"
	handlers "github.com/expoconf/conference-portal/internal/interface/http"
	"github.com/expoconf/conference-portal/internal/router/modules"
)

type Deps struct {
	Auth       *handlers.AuthHandler
	Conference *handlers.ConferenceHandler
	Room       *handlers.RoomHandler
	Sponsor    *handlers.SponsorHandler
	Program    *handlers.ProgramHandler
	Admin      *handlers.AdminHandler
}

func buildDeps() Deps {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(pool)
	rooms := pginfra.NewRoomRepository(pool)
	conferences := pginfra.NewConferenceRepository(pool)
	sponsors := pginfra.NewSponsorRepository(pool)
	program := pginfra.NewProgramRepository(pool)
	stats := pginfra.NewStatsRepository(pool)

	// keep the Publisher interface nil when no broker is configured
	var queue application.Publisher
	if pub := container.GetRabbitPub(); pub != nil {
		queue = pub
	}

	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetRedis(), logger)
	conferenceSvc := application.NewConferenceService(conferences, sponsors, logger, container.GetES(), cfg.ESConferencesIndex)
	sponsorSvc := application.NewSponsorService(sponsors, logger, container.GetGCS(), cfg.GCSBucket)
	programSvc := application.NewProgramService(program, conferences, logger, queue)
	statsSvc := application.NewStatsService(conferences, users, program, stats)

	return Deps{
		Auth:       handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure),
		Conference: handlers.NewConferenceHandler(conferenceSvc, logger),
		Room:       handlers.NewRoomHandler(rooms, logger),
		Sponsor:    handlers.NewSponsorHandler(sponsorSvc, logger),
		Program:    handlers.NewProgramHandler(programSvc, logger),
		Admin:      handlers.NewAdminHandler(statsSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(deps.Auth, jwt))
	r.Add(modules.NewConferenceModule(deps.Conference, deps.Room))
	r.Add(modules.NewSponsorModule(deps.Sponsor, jwt))
	r.Add(modules.NewProgramModule(deps.Program, jwt))
	r.Add(modules.NewAdminModule(deps.Admin))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
