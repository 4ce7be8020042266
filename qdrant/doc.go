// Package qdrant loads documents and their embedding vectors from a Qdrant
// collection.
//
// It wraps the official Qdrant Go client behind a small API: connect with a
// health check, then scroll a whole collection into payload documents plus
// their vectors. Payloads arrive as protobuf values and are converted to
// plain Go maps so the query and viz layers never see SDK types.
package qdrant
