package entities

import "time"

// AdminSession is the operator session handed to admin handlers.
// The zero value is an unauthenticated session.
type AdminSession struct {
	Authenticated bool      `json:"authenticated"`
	Email         string    `json:"email,omitempty"`
	LoggedInAt    time.Time `json:"logged_in_at,omitempty"`
}
