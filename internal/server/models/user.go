// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account. Users are never hard-deleted.
type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Role          string
	Skills        []string
	Availability  string
	BehaviorScore float64
	CreatedAt     time.Time
	LastActiveAt  time.Time
}
