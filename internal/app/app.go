package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"tagmill/internal/config"
	"tagmill/internal/services"
)

// App wires the completion provider and the pipeline services together.
// All dependencies are explicit; there is no package-level service handle.
type App struct {
	Config *config.Config

	CompletionService services.CompletionService

	EnrichmentService     *services.EnrichmentService
	TagUnificationService *services.TagUnificationService
	PostService           *services.PostService
	StatsService          *services.StatsService
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	app := &App{Config: cfg}

	app.initCompletionService()
	app.initCoreServices()
	if err := app.initStatsService(); err != nil {
		return nil, err
	}

	log.Debug("Application initialization complete.")
	return app, nil
}

func (a *App) initCompletionService() {
	cfg := a.Config
	a.CompletionService = services.NewOpenAICompletionService(
		cfg.LLM.APIKey,
		cfg.LLM.Model,
		cfg.LLM.BaseURL,
	)
}

func (a *App) initCoreServices() {
	a.EnrichmentService = services.NewEnrichmentService(a.CompletionService)
	a.TagUnificationService = services.NewTagUnificationService(a.CompletionService)
	a.PostService = services.NewPostService(a.EnrichmentService, a.TagUnificationService)
}

func (a *App) initStatsService() error {
	statsService, err := services.NewStatsService()
	if err != nil {
		return fmt.Errorf("init stats service: %w", err)
	}
	a.StatsService = statsService
	return nil
}
