// Package auth implements the remote auth gateway: a client for the backend's
// /auth/v1 endpoints that owns the current session, persists it between runs,
// refreshes it before expiry and notifies subscribers of every change.
package auth
