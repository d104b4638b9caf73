package repository

import (
	"context"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
	"github.com/alanyang/gaas-console/internal/port/rest"
)

type GetAllGraphsRepo struct {
	client *rest.Client
}

func NewGetAllGraphsRepo(exec rest.Executor) *GetAllGraphsRepo {
	return &GetAllGraphsRepo{client: rest.NewClient(exec)}
}

func (r *GetAllGraphsRepo) GetAll(ctx context.Context) ([]domaingraph.Graph, error) {
	resp, err := r.client.Get().Graphs().Execute(ctx)
	if err != nil {
		return nil, err
	}
	out, err := rest.Decode[[]graphByIDResponse](resp)
	if err != nil {
		return nil, err
	}
	graphs := make([]domaingraph.Graph, len(out.Data))
	for i, g := range out.Data {
		graphs[i] = domaingraph.New(g.GraphID, g.Description)
	}
	return graphs, nil
}
