// Package driving defines the inbound ports: interfaces through which
// the CLI drives the core services.
package driving
