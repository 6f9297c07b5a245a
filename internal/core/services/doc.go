// Package services contains the core application services: the sync
// pipeline that reconciles fetched observations against the content
// store, and settings resolution from the config store.
package services
