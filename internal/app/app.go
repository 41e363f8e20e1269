package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lifefinance/navigator/internal/config"
	"github.com/lifefinance/navigator/internal/db"
	"github.com/lifefinance/navigator/internal/markdown"
	"github.com/lifefinance/navigator/internal/matching"
	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
	"github.com/lifefinance/navigator/internal/scheduler"
	"github.com/lifefinance/navigator/internal/service"
	"github.com/lifefinance/navigator/internal/service/planner"
	"github.com/lifefinance/navigator/internal/storage"
)

// notifyTimeout bounds one notification batch.
const notifyTimeout = 30 * time.Minute

type App struct {
	Cfg                   *config.Config
	DB                    *sqlx.DB
	Personas              []model.Persona
	AuthService           *service.AuthService
	KakaoService          *service.KakaoService
	EmailService          *service.EmailService
	SurveyService         *service.SurveyService
	ResultsService        *service.ResultsService
	NotificationService   *service.NotificationService
	SeedService           *service.SeedService
	AnalysisImportService *service.AnalysisImportService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Open(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a, err := build(cfg, database)
	if err != nil {
		_ = database.Close()
		return nil, err
	}
	return a, nil
}

func build(cfg *config.Config, database *sqlx.DB) (*App, error) {
	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	planRepository := repository.NewPlanRepository(database)
	analysisRepository := repository.NewAnalysisRepository(database)

	// Matching strategies
	personas := matching.Personas
	personaMatcher, err := matching.NewPersonaMatcher(cfg.PersonaStrategy, personas)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize persona matcher: %w", err)
	}
	articleMatcher, err := matching.NewArticleMatcher(cfg.ArticleStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize article matcher: %w", err)
	}

	planProvider, err := planner.NewProvider(cfg, planRepository)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize plan provider: %w", err)
	}

	// Analysis exports bucket is optional
	var store storage.ObjectStore
	if cfg.HasS3() {
		s3Storage, err := storage.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		store = s3Storage
	}

	// Notification channels
	mailer, err := service.NewMailer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}
	emailService := service.NewEmailService(mailer, markdown.NewParser(), cfg.AppURL, cfg.AppName)
	kakaoService := service.NewKakaoService(cfg.KakaoClientID, cfg.KakaoClientSecret, cfg.AppURL, userRepository)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.IsProduction(), cfg.JWTExpiry)
	surveyService := service.NewSurveyService(profileRepository)
	resultsService := service.NewResultsService(profileRepository, analysisRepository, planProvider, personaMatcher, articleMatcher)
	notificationService := service.NewNotificationService(userRepository, emailService, kakaoService)

	return &App{
		Cfg:                   cfg,
		DB:                    database,
		Personas:              personas,
		AuthService:           authService,
		KakaoService:          kakaoService,
		EmailService:          emailService,
		SurveyService:         surveyService,
		ResultsService:        resultsService,
		NotificationService:   notificationService,
		SeedService:           service.NewSeedService(planRepository),
		AnalysisImportService: service.NewAnalysisImportService(analysisRepository, store),
	}, nil
}

// Scheduler registers the report notification job. It is not started.
func (a *App) Scheduler() (*scheduler.Scheduler, error) {
	s, err := scheduler.New(a.Cfg.NotifyTimezone, notifyTimeout)
	if err != nil {
		return nil, err
	}

	err = s.Add(a.Cfg.NotifySchedule, scheduler.Job{
		Name: "report-notifications",
		Run: func(ctx context.Context) error {
			_, err := a.NotificationService.Run(ctx)
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
