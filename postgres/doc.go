// Package postgres loads documents and their embedding vectors from a
// PostgreSQL table.
//
// The expected shape is one row per point with a jsonb document column and
// a jsonb array embedding column. Table and column names are configurable,
// so any schema that can project into that shape works via a view.
//
// Connectivity goes through GORM; the wrapper only adds config, error
// translation and the row-to-document decoding.
package postgres
