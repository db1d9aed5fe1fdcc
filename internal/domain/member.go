package domain

import "time"

// Member is a registered member of a savings group.
type Member struct {
	CreatedAt    time.Time
	ID           string
	GroupID      string
	Name         string
	Phone        string
	IsGroupAdmin bool
}
