// Package common contains shared constants and sentinel errors used across
// WordBridge components.
package common

// UsersCollection is the collection (or table) holding user records.
const UsersCollection = "users"

// APIPrefix is the path prefix every public endpoint is mounted under.
const APIPrefix = "/api"

// Endpoint paths relative to APIPrefix.
const (
	SignupPath    = "/signup"
	LoginPath     = "/login"
	TranslatePath = "/text"
)
