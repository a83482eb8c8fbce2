// Package middleware provides the gin middleware used by the dashboard server.
package middleware
