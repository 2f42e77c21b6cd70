package models

import "time"

// Session is the single authenticated session of one client instance. The
// token is immutable after establishment; a new token only ever comes from
// a fresh credential exchange.
type Session struct {
	Token         string
	EstablishedAt time.Time
}
