package catalog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"reelview/internal/domain"
	"reelview/internal/eventbus"
)

// Service loads the movie catalog and reloads it on request
type Service interface {
	Load(ctx context.Context) (domain.Catalog, error)
	Reload(ctx context.Context) error
	Stop()
}

type service struct {
	bus  eventbus.EventBus
	path string // empty means the builtin dataset

	mu        sync.Mutex
	reloading bool
	wg        sync.WaitGroup
	cancel    context.CancelFunc
	ctx       context.Context
}

// NewService creates a catalog service reading from path, or the builtin
// dataset when path is empty. It answers CatalogReloadRequested events.
func NewService(bus eventbus.EventBus, path string) Service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &service{
		bus:    bus,
		path:   path,
		ctx:    ctx,
		cancel: cancel,
	}

	bus.Subscribe(eventbus.EventCatalogReloadRequested, func(e eventbus.DomainEvent) {
		if err := s.Reload(s.ctx); err != nil {
			zap.S().Debugf("Catalog reload skipped: %v", err)
		}
	})

	return s
}

// Load reads the catalog synchronously
func (s *service) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}
	if s.path == "" {
		return Default(), nil
	}
	return LoadFile(s.path)
}

// Reload re-reads the catalog in the background and publishes the outcome
func (s *service) Reload(ctx context.Context) error {
	s.mu.Lock()
	if err := s.ctx.Err(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("catalog service stopped: %w", err)
	}
	if s.reloading {
		s.mu.Unlock()
		return fmt.Errorf("reload already in progress")
	}
	s.reloading = true
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			s.reloading = false
			s.mu.Unlock()
		}()

		cat, err := s.Load(ctx)
		if err != nil {
			zap.S().Warnf("Catalog reload failed: %v", err)
			s.bus.Publish(eventbus.ErrorEvent{Message: "catalog reload failed", Err: err})
			return
		}

		zap.S().Infof("Catalog reloaded from %s: %d movies", cat.Source, len(cat.Movies))
		s.bus.Publish(eventbus.CatalogLoadedEvent{Catalog: cat})
	}()

	return nil
}

// Stop cancels any running reload and waits for it
func (s *service) Stop() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}
