// Package domain contains the core business entities for obsync:
// observations, their frontmatter metadata, sync run reports, settings,
// and the domain error values shared across layers.
package domain
