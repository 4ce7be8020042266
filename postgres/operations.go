package postgres

import (
	"context"
	"encoding/json"
	"fmt"
)

// Load reads all rows from the configured table and decodes them into
// documents plus embedding vectors in matching order.
//
// limit caps how many rows are loaded; limit <= 0 loads everything.
func (p *Postgres) Load(ctx context.Context, limit int) ([]map[string]any, [][]float64, error) {
	sql := fmt.Sprintf("SELECT %s, %s FROM %s", p.cfg.DocumentColumn, p.cfg.EmbeddingColumn, p.cfg.Table)
	if limit > 0 {
		sql = fmt.Sprintf("%s LIMIT %d", sql, limit)
	}

	rows, err := p.Client.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: query %s: %w", p.cfg.Table, TranslateError(err))
	}
	defer rows.Close()

	var (
		documents  []map[string]any
		embeddings [][]float64
	)
	for rows.Next() {
		var docRaw, embRaw []byte
		if err := rows.Scan(&docRaw, &embRaw); err != nil {
			return nil, nil, fmt.Errorf("postgres: scan row %d: %w", len(documents), err)
		}

		doc := map[string]any{}
		if len(docRaw) > 0 {
			if err := json.Unmarshal(docRaw, &doc); err != nil {
				return nil, nil, fmt.Errorf("postgres: decode document in row %d: %w", len(documents), err)
			}
		}

		var embedding []float64
		if len(embRaw) > 0 {
			if err := json.Unmarshal(embRaw, &embedding); err != nil {
				return nil, nil, fmt.Errorf("postgres: decode embedding in row %d: %w", len(documents), err)
			}
		}

		documents = append(documents, doc)
		embeddings = append(embeddings, embedding)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("postgres: iterate rows: %w", err)
	}

	p.logger.Debug("Loaded documents from PostgreSQL", nil, map[string]interface{}{
		"table": p.cfg.Table,
		"rows":  len(documents),
	})
	return documents, embeddings, nil
}
