package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	portgraph "github.com/alanyang/gaas-console/internal/port/graph"
)

var _ portgraph.NamespaceRepository = (*NamespaceCache)(nil)

const namespacesKey = "namespaces"

// NamespaceCache remembers the namespace list for ttl. Failures are returned
// as-is and never cached.
type NamespaceCache struct {
	next    portgraph.NamespaceRepository
	entries *expirable.LRU[string, []string]
}

func NewNamespaceCache(next portgraph.NamespaceRepository, ttl time.Duration) *NamespaceCache {
	return &NamespaceCache{
		next:    next,
		entries: expirable.NewLRU[string, []string](1, nil, ttl),
	}
}

func (c *NamespaceCache) GetAll(ctx context.Context) ([]string, error) {
	if ns, ok := c.entries.Get(namespacesKey); ok {
		return append([]string(nil), ns...), nil
	}

	ns, err := c.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	c.entries.Add(namespacesKey, append(make([]string, 0, len(ns)), ns...))
	return ns, nil
}

func (c *NamespaceCache) Invalidate() {
	c.entries.Purge()
}
