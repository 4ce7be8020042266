package qdrant

import (
	"context"
	"fmt"
	"log"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// Load scrolls an entire collection and returns its payload documents and
// embedding vectors in matching order.
//
// limit caps how many points are loaded; limit <= 0 loads the whole
// collection. Pass an empty collection name to use the configured default.
func (c *Client) Load(ctx context.Context, collection string, limit int) ([]map[string]any, [][]float64, error) {
	if collection == "" {
		collection = c.cfg.Collection
	}
	if collection == "" {
		return nil, nil, fmt.Errorf("[Qdrant] no collection configured")
	}

	batch := uint32(c.cfg.ScrollBatchSize)
	if batch == 0 {
		batch = 256
	}

	var (
		documents  []map[string]any
		embeddings [][]float64
		offset     *qdrant.PointId
	)

	for {
		resp, err := c.api.GetPointsClient().Scroll(ctx, &qdrant.ScrollPoints{
			CollectionName: collection,
			Limit:          &batch,
			Offset:         offset,
			WithPayload:    qdrant.NewWithPayload(true),
			WithVectors:    qdrant.NewWithVectors(true),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("[Qdrant] scroll failed: %w", err)
		}

		for _, point := range resp.GetResult() {
			vector, err := vectorFromPoint(point)
			if err != nil {
				return nil, nil, err
			}
			documents = append(documents, payloadToDocument(point.GetPayload()))
			embeddings = append(embeddings, vector)

			if limit > 0 && len(documents) >= limit {
				log.Printf("[Qdrant] Load stopped at limit (collection=%s, points=%d)", collection, len(documents))
				return documents, embeddings, nil
			}
		}

		offset = resp.GetNextPageOffset()
		if offset == nil {
			break
		}
	}

	log.Printf("[Qdrant] Load completed (collection=%s, points=%d)", collection, len(documents))
	return documents, embeddings, nil
}

// vectorFromPoint extracts the point's dense vector. Named vector
// configurations fall back to the default (unnamed) vector.
func vectorFromPoint(point *qdrant.RetrievedPoint) ([]float64, error) {
	out := point.GetVectors()
	if out == nil {
		return nil, fmt.Errorf("[Qdrant] point %s has no vectors", point.GetId())
	}

	if v := out.GetVector(); v != nil {
		return toFloat64s(v.GetData()), nil
	}
	if named := out.GetVectors(); named != nil {
		if v, ok := named.GetVectors()[""]; ok {
			return toFloat64s(v.GetData()), nil
		}
		return nil, fmt.Errorf("[Qdrant] point %s has only named vectors, default vector required", point.GetId())
	}
	return nil, fmt.Errorf("[Qdrant] point %s has no dense vector", point.GetId())
}

func toFloat64s(data []float32) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}
