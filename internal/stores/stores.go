// Package stores implements the persistence layer on top of the document
// store. Each store wraps one collection behind an interface so handlers can
// be tested against mocks.
package stores

import "errors"

// Collection names in the application database.
const (
	UsersCollection    = "users"
	ProfilesCollection = "profiles"
	PostsCollection    = "posts"
)

// ErrNotFound is returned when no document matches the given filter.
var ErrNotFound = errors.New("stores: document not found")
