// Package inaturalist implements the ObservationSource port against the
// public iNaturalist API: cursor-based id listing, per-id detail fetches,
// and reshaping of detail documents into frontmatter metadata.
//
// The API is public and unauthenticated but rate limited; the client
// paces every outbound request through a shared limiter.
package inaturalist
