package postgres

import "time"

type Config struct {
	Connection        Connection
	ConnectionDetails ConnectionDetails

	// Table holds the embedded documents, one row per point.
	Table string

	// DocumentColumn is a jsonb column with the document payload.
	DocumentColumn string

	// EmbeddingColumn is a jsonb array column with the embedding vector.
	EmbeddingColumn string
}

type Connection struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string
	SSLMode  string
}

type ConnectionDetails struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConfig fills in the table shape and pool settings; connection
// details still have to be provided.
func DefaultConfig() Config {
	return Config{
		ConnectionDetails: ConnectionDetails{
			MaxOpenConns:    50,
			MaxIdleConns:    25,
			ConnMaxLifetime: 1 * time.Minute,
		},
		Table:           "documents",
		DocumentColumn:  "doc",
		EmbeddingColumn: "embedding",
	}
}
