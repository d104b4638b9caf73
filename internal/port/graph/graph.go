package graph

import (
	"context"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
)

//go:generate mockgen -destination=../../mocks/mock_graph.go -package=mocks -mock_names=Repository=MockGraphRepository,NamespaceRepository=MockNamespaceRepository . Repository,NamespaceRepository

// Repository manages graphs held by the GaaS API.
// [DIP] service/graph depends on this interface, not on the REST repositories.
type Repository interface {
	Create(ctx context.Context, graphID, description string, storeType domaingraph.StoreType) error
	Get(ctx context.Context, graphID string) (domaingraph.Graph, error)
	GetAll(ctx context.Context) ([]domaingraph.Graph, error)
	Delete(ctx context.Context, graphID string) error
}

// NamespaceRepository lists the namespaces graphs can be deployed into.
type NamespaceRepository interface {
	GetAll(ctx context.Context) ([]string, error)
}
