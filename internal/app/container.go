// Package app provides the dependency injection container for the engine.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pulsemed/worklist/internal/domain"
	"github.com/pulsemed/worklist/internal/infra/config"
	"github.com/pulsemed/worklist/internal/infra/jsonstore"
	"github.com/pulsemed/worklist/internal/infra/logging"
	"github.com/pulsemed/worklist/internal/infra/memstore"
	"github.com/pulsemed/worklist/internal/infra/notify"
	"github.com/pulsemed/worklist/internal/usecase"
)

// Container provides dependency injection for the engine.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskStore
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	Notifier         domain.Notifier
	Audit            domain.Logger

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config *domain.Config
}

// New creates a Container from the config file at configPath.
// storeOverride forces the store type ("memory" or "json"); empty keeps the
// configured one. The CLI uses the json store so separate invocations share
// state; serve mode defaults to the in-memory store.
func New(configPath, storeOverride string) (*Container, error) {
	cfg, err := config.NewLoader(configPath).Load()
	if err != nil {
		return nil, err
	}
	if storeOverride != "" {
		cfg.Store.Type = storeOverride
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.Log.Level),
	}))

	var tasks domain.TaskStore
	var storeInit domain.StoreInitializer
	switch cfg.Store.Type {
	case "json":
		if cfg.Store.Path == "" {
			return nil, fmt.Errorf("store path is required for the json store")
		}
		store := jsonstore.New(cfg.Store.Path)
		tasks = store
		storeInit = store
	case "memory":
		store := memstore.New()
		tasks = store
		storeInit = store
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Store.Type)
	}

	var notifier domain.Notifier
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhook(cfg.Notify.WebhookURL, logger)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	audit := logging.New(cfg.Log.Dir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Clock:            domain.RealClock{},
		Notifier:         notifier,
		Audit:            audit,
		Logger:           logger,
		Config:           cfg,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, tasks domain.TaskStore, storeInit domain.StoreInitializer, clock domain.Clock, notifier domain.Notifier, audit domain.Logger, logger *slog.Logger) *Container {
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Clock:            clock,
		Notifier:         notifier,
		Audit:            audit,
		Logger:           logger,
		Config:           cfg,
	}
}

// UseCase factory methods

// SubmitTaskUseCase returns a new SubmitTask use case.
func (c *Container) SubmitTaskUseCase() *usecase.SubmitTask {
	return usecase.NewSubmitTask(c.Tasks, c.Clock, c.Audit)
}

// ListAvailableUseCase returns a new ListAvailable use case.
func (c *Container) ListAvailableUseCase() *usecase.ListAvailable {
	return usecase.NewListAvailable(c.Tasks)
}

// ListMineUseCase returns a new ListMine use case.
func (c *Container) ListMineUseCase() *usecase.ListMine {
	return usecase.NewListMine(c.Tasks)
}

// GetTaskUseCase returns a new GetTask use case.
func (c *Container) GetTaskUseCase() *usecase.GetTask {
	return usecase.NewGetTask(c.Tasks)
}

// AcquireTaskUseCase returns a new AcquireTask use case.
func (c *Container) AcquireTaskUseCase() *usecase.AcquireTask {
	return usecase.NewAcquireTask(c.Tasks, c.Clock, c.Audit, c.Config.Lease.Duration)
}

// ExtendLeaseUseCase returns a new ExtendLease use case.
func (c *Container) ExtendLeaseUseCase() *usecase.ExtendLease {
	return usecase.NewExtendLease(c.Tasks, c.Audit, c.Config.Lease.Extension)
}

// SaveDraftUseCase returns a new SaveDraft use case.
func (c *Container) SaveDraftUseCase() *usecase.SaveDraft {
	return usecase.NewSaveDraft(c.Tasks, c.Audit)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Clock, c.Notifier, c.Audit)
}

// ExpireLeasesUseCase returns a new ExpireLeases use case.
func (c *Container) ExpireLeasesUseCase() *usecase.ExpireLeases {
	return usecase.NewExpireLeases(c.Tasks, c.Clock, c.Audit)
}

// Sweeper returns a new Sweeper running at the configured interval.
func (c *Container) Sweeper() *usecase.Sweeper {
	return usecase.NewSweeper(c.ExpireLeasesUseCase(), c.Audit, c.Config.Lease.SweepInterval)
}
