package domain

import "time"

type User struct {
	ID           int
	Name         string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
