// Package export persists rendered figure pages.
//
// A Sink takes a figure and stores its standalone HTML page somewhere a
// browser can reach: the local filesystem for ad-hoc use, or a MinIO/S3
// bucket when figures are shared from a service. Both sinks return the
// location of the written page.
package export
