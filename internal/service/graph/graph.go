package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alanyang/gaas-console/internal/domain/event"
	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
	portbus "github.com/alanyang/gaas-console/internal/port/eventbus"
	portgraph "github.com/alanyang/gaas-console/internal/port/graph"
)

// Service checks input the way the GaaS API does before spending a round trip,
// then announces successful changes on the event bus.
type Service struct {
	repo portgraph.Repository
	bus  portbus.EventBus
}

func NewService(repo portgraph.Repository, bus portbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Create(ctx context.Context, graphID, description string, storeType domaingraph.StoreType) (domaingraph.Graph, error) {
	if err := domaingraph.ValidateID(graphID); err != nil {
		return domaingraph.Graph{}, err
	}
	if err := domaingraph.ValidateDescription(description); err != nil {
		return domaingraph.Graph{}, err
	}
	if !storeType.Valid() {
		return domaingraph.Graph{}, &domaingraph.ValidationError{Detail: fmt.Sprintf("Unknown store type %q", storeType)}
	}

	if err := s.repo.Create(ctx, graphID, description, storeType); err != nil {
		return domaingraph.Graph{}, fmt.Errorf("create graph: %w", err)
	}
	s.publish(ctx, event.TypeGraphCreated, graphID)
	return domaingraph.New(graphID, description), nil
}

func (s *Service) Get(ctx context.Context, graphID string) (domaingraph.Graph, error) {
	g, err := s.repo.Get(ctx, graphID)
	if err != nil {
		return domaingraph.Graph{}, fmt.Errorf("get graph: %w", err)
	}
	return g, nil
}

func (s *Service) List(ctx context.Context) ([]domaingraph.Graph, error) {
	graphs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}
	return graphs, nil
}

func (s *Service) Delete(ctx context.Context, graphID string) error {
	if err := s.repo.Delete(ctx, graphID); err != nil {
		return fmt.Errorf("delete graph: %w", err)
	}
	s.publish(ctx, event.TypeGraphDeleted, graphID)
	return nil
}

func (s *Service) publish(ctx context.Context, t event.Type, graphID string) {
	if err := s.bus.Publish(ctx, event.New(t, graphID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish graph event", "type", t, "graph_id", graphID, "error", err)
	}
}
