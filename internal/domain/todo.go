package domain

import "time"

type Todo struct {
	ID        int
	Todo      string
	Completed bool
	BoardID   int
	CreatedAt time.Time
}

type Feedback struct {
	ID          int
	Description string
	BoardID     int
	CreatedAt   time.Time
}
