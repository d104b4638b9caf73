package repository

import (
	"context"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
	"github.com/alanyang/gaas-console/internal/port/rest"
)

// CreateSimpleGraphRequestBody is the wire body of a graph creation request.
type CreateSimpleGraphRequestBody struct {
	GraphID     string                `json:"graphId"`
	Description string                `json:"description"`
	StoreType   domaingraph.StoreType `json:"storeType"`
}

type CreateSimpleGraphRepo struct {
	client *rest.Client
}

func NewCreateSimpleGraphRepo(exec rest.Executor) *CreateSimpleGraphRepo {
	return &CreateSimpleGraphRepo{client: rest.NewClient(exec)}
}

// Create asks the API to provision a graph. The response body is discarded;
// success is the absence of an error. storeType is sent as given.
func (r *CreateSimpleGraphRepo) Create(ctx context.Context, graphID, description string, storeType domaingraph.StoreType) error {
	body := CreateSimpleGraphRequestBody{
		GraphID:     graphID,
		Description: description,
		StoreType:   storeType,
	}
	_, err := r.client.Post().Graphs().RequestBody(body).Execute(ctx)
	return err
}
