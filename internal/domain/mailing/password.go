package mailing

import "time"

// PasswordRecord is the singleton access-gate secret. It is written once and never updated.
type PasswordRecord struct {
	HashedPassword string
	CreatedAt      time.Time
}
