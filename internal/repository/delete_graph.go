package repository

import (
	"context"

	"github.com/alanyang/gaas-console/internal/port/rest"
)

type DeleteGraphRepo struct {
	client *rest.Client
}

func NewDeleteGraphRepo(exec rest.Executor) *DeleteGraphRepo {
	return &DeleteGraphRepo{client: rest.NewClient(exec)}
}

func (r *DeleteGraphRepo) Delete(ctx context.Context, graphID string) error {
	_, err := r.client.Delete().Graphs(graphID).Execute(ctx)
	return err
}
