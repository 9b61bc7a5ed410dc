// Package sqlite provides the session record store backed by SQLite.
package sqlite
