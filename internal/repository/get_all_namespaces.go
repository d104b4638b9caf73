package repository

import (
	"context"

	portgraph "github.com/alanyang/gaas-console/internal/port/graph"
	"github.com/alanyang/gaas-console/internal/port/rest"
)

var _ portgraph.NamespaceRepository = (*GetAllNamespacesRepo)(nil)

type GetAllNamespacesRepo struct {
	client *rest.Client
}

func NewGetAllNamespacesRepo(exec rest.Executor) *GetAllNamespacesRepo {
	return &GetAllNamespacesRepo{client: rest.NewClient(exec)}
}

// GetAll returns the namespaces exactly as the API lists them.
func (r *GetAllNamespacesRepo) GetAll(ctx context.Context) ([]string, error) {
	resp, err := r.client.Get().Namespaces().Execute(ctx)
	if err != nil {
		return nil, err
	}
	out, err := rest.Decode[[]string](resp)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}
