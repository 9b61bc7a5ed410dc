// Package storage declares persistence for browser session records.
//
// A record only maps a browser session id to the backend identity token so a
// session survives reloads and process restarts. Everything else a session
// holds is rebuilt from the backend.
package storage
