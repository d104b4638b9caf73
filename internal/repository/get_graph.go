package repository

import (
	"context"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
	"github.com/alanyang/gaas-console/internal/port/rest"
)

// graphByIDResponse keeps only the fields a Graph is built from.
type graphByIDResponse struct {
	GraphID     string `json:"graphId"`
	Description string `json:"description"`
}

type GetGraphRepo struct {
	client *rest.Client
}

func NewGetGraphRepo(exec rest.Executor) *GetGraphRepo {
	return &GetGraphRepo{client: rest.NewClient(exec)}
}

func (r *GetGraphRepo) Get(ctx context.Context, graphID string) (domaingraph.Graph, error) {
	resp, err := r.client.Get().Graphs(graphID).Execute(ctx)
	if err != nil {
		return domaingraph.Graph{}, err
	}
	out, err := rest.Decode[graphByIDResponse](resp)
	if err != nil {
		return domaingraph.Graph{}, err
	}
	return domaingraph.New(out.Data.GraphID, out.Data.Description), nil
}
