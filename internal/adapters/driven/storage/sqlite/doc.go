// Package sqlite implements the RunStore port on a local SQLite
// database. It keeps a history of sync runs for the status command;
// nothing in the sync pipeline reads it back.
package sqlite
