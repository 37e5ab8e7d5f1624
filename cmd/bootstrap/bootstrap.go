package bootstrap

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"clinic-ops-client/config"
	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/infrastructure/remote"
	"clinic-ops-client/internal/infrastructure/session"
	"clinic-ops-client/internal/schedule"
	"clinic-ops-client/internal/store"
	"clinic-ops-client/internal/usecase"
	"clinic-ops-client/pkg/validator"
)

// App holds all dependencies for the client
type App struct {
	Config    *config.Config
	Log       *logrus.Logger
	Sessions  *session.Store
	Remote    *remote.Client
	Store     *store.Store
	Resolver  *schedule.Resolver
	Validator *validator.CustomValidator

	Auth          usecase.AuthUsecase
	Units         usecase.UnitUsecase
	Doctors       usecase.DoctorUsecase
	Patients      usecase.PatientUsecase
	Receptionists usecase.ReceptionistUsecase
	Specialties   usecase.SpecialtyUsecase
	Visits        usecase.VisitUsecase
	Appointments  usecase.AppointmentUsecase
	Constraints   usecase.ConstraintsUsecase
	Refresh       usecase.RefreshUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg)
	log.Debug("Configuration loaded")

	sessions, err := session.Open(cfg.Session.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	entityStore := store.New(seedConstraints(cfg, log))
	remoteClient := remote.NewClient(cfg.Remote, log)
	resolver := schedule.NewResolver(entityStore)
	customValidator := validator.NewValidator()
	strict := cfg.App.StrictReferences

	app := &App{
		Config:    cfg,
		Log:       log,
		Sessions:  sessions,
		Remote:    remoteClient,
		Store:     entityStore,
		Resolver:  resolver,
		Validator: customValidator,

		Auth:          usecase.NewAuthUsecase(sessions, remoteClient, log, customValidator),
		Units:         usecase.NewUnitUsecase(entityStore, remoteClient, log, customValidator),
		Doctors:       usecase.NewDoctorUsecase(entityStore, remoteClient, log, customValidator, strict),
		Patients:      usecase.NewPatientUsecase(entityStore, remoteClient, log, customValidator, strict),
		Receptionists: usecase.NewReceptionistUsecase(entityStore, remoteClient, log, customValidator, strict),
		Specialties:   usecase.NewSpecialtyUsecase(entityStore, remoteClient, log, customValidator, strict),
		Visits:        usecase.NewVisitUsecase(entityStore, remoteClient, log, customValidator, strict),
		Appointments:  usecase.NewAppointmentUsecase(entityStore, remoteClient, resolver, log, customValidator, strict),
		Constraints:   usecase.NewConstraintsUsecase(entityStore, log, customValidator),
		Refresh:       usecase.NewRefreshUsecase(entityStore, remoteClient, log),
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg *config.Config) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return logrus.StandardLogger()
}

// seedConstraints builds the initial scheduling policy from config,
// falling back to the built-in defaults when the config is unusable.
func seedConstraints(cfg *config.Config, log *logrus.Logger) entity.Constraints {
	seeded := entity.Constraints{
		StartHour:    cfg.Schedule.StartHour,
		EndHour:      cfg.Schedule.EndHour,
		SlotMinutes:  cfg.Schedule.SlotMinutes,
		AllowOverlap: cfg.Schedule.AllowOverlap,
	}

	probe := store.New(entity.DefaultConstraints())
	if err := probe.SetConstraints(seeded); err != nil {
		log.Warnf("Configured scheduling constraints are invalid, using defaults: %v", err)
		return entity.DefaultConstraints()
	}
	return seeded
}

// Close releases durable resources
func (app *App) Close() {
	if app.Sessions != nil {
		app.Sessions.Close()
	}
}
