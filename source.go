package diorama

import (
	"context"

	"github.com/diorama-viz/diorama/postgres"
	"github.com/diorama-viz/diorama/qdrant"
)

// Source supplies a dataset: documents and their embedding vectors in
// matching order.
type Source interface {
	Load(ctx context.Context) ([]map[string]any, [][]float64, error)
}

// QdrantSource reads a Qdrant collection.
type QdrantSource struct {
	Client *qdrant.Client

	// Collection to scroll; empty uses the client's configured default.
	Collection string

	// Limit caps how many points are loaded; <= 0 loads everything.
	Limit int
}

func (s QdrantSource) Load(ctx context.Context) ([]map[string]any, [][]float64, error) {
	return s.Client.Load(ctx, s.Collection, s.Limit)
}

// PostgresSource reads the configured documents table.
type PostgresSource struct {
	DB *postgres.Postgres

	// Limit caps how many rows are loaded; <= 0 loads everything.
	Limit int
}

func (s PostgresSource) Load(ctx context.Context) ([]map[string]any, [][]float64, error) {
	return s.DB.Load(ctx, s.Limit)
}
