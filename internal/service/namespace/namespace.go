package namespace

import (
	"context"
	"fmt"

	portgraph "github.com/alanyang/gaas-console/internal/port/graph"
)

type Service struct {
	repo portgraph.NamespaceRepository
}

func NewService(repo portgraph.NamespaceRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]string, error) {
	ns, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}
	return ns, nil
}
