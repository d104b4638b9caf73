package repository

import (
	portgraph "github.com/alanyang/gaas-console/internal/port/graph"
	"github.com/alanyang/gaas-console/internal/port/rest"
)

var _ portgraph.Repository = (*Graphs)(nil)

// Graphs groups the per-operation graph repositories behind port/graph.Repository.
type Graphs struct {
	*CreateSimpleGraphRepo
	*GetGraphRepo
	*GetAllGraphsRepo
	*DeleteGraphRepo
}

func NewGraphs(exec rest.Executor) *Graphs {
	return &Graphs{
		CreateSimpleGraphRepo: NewCreateSimpleGraphRepo(exec),
		GetGraphRepo:          NewGetGraphRepo(exec),
		GetAllGraphsRepo:      NewGetAllGraphsRepo(exec),
		DeleteGraphRepo:       NewDeleteGraphRepo(exec),
	}
}
