package domain

import (
	"errors"
	"time"
)

var ErrDeveloperNotFound = errors.New("developer not found")

// Developer is a person bugs can be assigned to. Distinct from User: a
// developer does not necessarily hold an account.
type Developer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
