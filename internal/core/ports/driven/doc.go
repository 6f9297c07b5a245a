// Package driven defines the outbound ports: interfaces the core sync
// service depends on, implemented by adapters (the iNaturalist connector,
// the content file store, the run-history store, the config store).
package driven
