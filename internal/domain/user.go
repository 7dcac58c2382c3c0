package domain

import "time"

// User is a local profile. All other records are scoped to one user.
type User struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
